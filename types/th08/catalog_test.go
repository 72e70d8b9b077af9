package th08

import (
	"testing"

	"github.com/hakurei-works/thstat/types"
)

func TestCatalogHas222Cards(t *testing.T) {
	if len(SpellCards) != 222 {
		t.Fatalf("got %d cards, want 222", len(SpellCards))
	}
}

func TestCatalogSharedIDRangeAcrossDifficulties(t *testing.T) {
	// "Lamp Sign \"Firefly Phenomenon\"" spans ids 3-6, one per difficulty,
	// from a single declared starting id.
	want := []struct {
		id   uint16
		diff *Difficulty
	}{
		{3, Easy}, {4, Normal}, {5, Hard}, {6, Lunatic},
	}
	for _, w := range want {
		c, err := SpellByID(w.id)
		if err != nil {
			t.Fatalf("SpellByID(%d): %v", w.id, err)
		}
		if c.Difficulty != w.diff {
			t.Errorf("card %d difficulty = %v, want %v", w.id, c.Difficulty, w.diff)
		}
		if c.Name != `Lamp Sign "Firefly Phenomenon"` {
			t.Errorf("card %d name = %q", w.id, c.Name)
		}
		if c.Stage != StageOne || c.Type != types.Boss {
			t.Errorf("card %d stage/type mismatch", w.id)
		}
	}
}

func TestCatalogLastWordCards(t *testing.T) {
	c, err := SpellByID(222)
	if err != nil {
		t.Fatalf("SpellByID(222): %v", err)
	}
	if c.Stage != StageLastWord {
		t.Errorf("card 222 stage = %v, want Last Word", c.Stage)
	}
	if c.Difficulty != LastWord {
		t.Errorf("card 222 difficulty = %v, want Last Word", c.Difficulty)
	}
	if c.Name != `"Profound Danmaku Barrier -Phantasm, Foam, and Shadow-"` {
		t.Errorf("card 222 name = %q", c.Name)
	}
}

func TestCatalogOutOfRange(t *testing.T) {
	if _, err := SpellByID(0); err == nil {
		t.Errorf("expected error for id 0")
	}
	if _, err := SpellByID(223); err == nil {
		t.Errorf("expected error for id 223")
	}
}

func TestShotTypeByID(t *testing.T) {
	s, err := ShotTypeByID(0)
	if err != nil {
		t.Fatalf("ShotTypeByID(0): %v", err)
	}
	if s != BarrierTeam {
		t.Errorf("got %v, want BarrierTeam", s)
	}
	if _, err := ShotTypeByID(12); err == nil {
		t.Errorf("expected error for id 12")
	}
}

func TestStageByID(t *testing.T) {
	s, err := StageByID(9)
	if err != nil {
		t.Fatalf("StageByID(9): %v", err)
	}
	if s != StageLastWord {
		t.Errorf("got %v, want StageLastWord", s)
	}
	if !StageExtra.IsExtra() {
		t.Errorf("StageExtra.IsExtra() = false")
	}
}

func TestDifficultyByID(t *testing.T) {
	d, err := DifficultyByID(5)
	if err != nil {
		t.Fatalf("DifficultyByID(5): %v", err)
	}
	if d != LastWord {
		t.Errorf("got %v, want LastWord", d)
	}
}
