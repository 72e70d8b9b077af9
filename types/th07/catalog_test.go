package th07

import "testing"

func TestCatalogHas141Cards(t *testing.T) {
	if len(SpellCards) != 141 {
		t.Fatalf("got %d cards, want 141", len(SpellCards))
	}
}

func TestCatalogIDsAreSequentialFrom1(t *testing.T) {
	for i, c := range SpellCards {
		want := uint16(i + 1)
		if c.ID != want {
			t.Fatalf("SpellCards[%d].ID = %d, want %d", i, c.ID, want)
		}
	}
}

func TestSpellByID93(t *testing.T) {
	c, err := SpellByID(93)
	if err != nil {
		t.Fatalf("SpellByID(93): %v", err)
	}
	if c.Stage != StageSix {
		t.Errorf("card 93 stage = %v, want Stage 6", c.Stage)
	}
	if c.Difficulty != Easy {
		t.Errorf("card 93 difficulty = %v, want Easy", c.Difficulty)
	}
	if c.Name != `Losing Hometown "Death of One's Home -Wandering Soul-"` {
		t.Errorf("card 93 name = %q", c.Name)
	}
}

func TestSpellByIDOutOfRange(t *testing.T) {
	if _, err := SpellByID(0); err == nil {
		t.Errorf("expected error for id 0")
	}
	if _, err := SpellByID(142); err == nil {
		t.Errorf("expected error for id 142")
	}
}

func TestShotTypeByID(t *testing.T) {
	s, err := ShotTypeByID(0)
	if err != nil {
		t.Fatalf("ShotTypeByID(0): %v", err)
	}
	if s != ReimuA {
		t.Errorf("got %v, want ReimuA", s)
	}

	if _, err := ShotTypeByID(6); err == nil {
		t.Errorf("expected error for id 6")
	}
}

func TestStageProgressParsing(t *testing.T) {
	p, err := ParseStageProgress(0)
	if err != nil || p.Kind != NotStarted {
		t.Errorf("ParseStageProgress(0) = %+v, %v", p, err)
	}

	p, err = ParseStageProgress(4)
	if err != nil {
		t.Fatalf("ParseStageProgress(4): %v", err)
	}
	if p.Kind != LostAtStage || p.Stage != StageFour {
		t.Errorf("ParseStageProgress(4) = %+v, want LostAtStage(StageFour)", p)
	}

	p, err = ParseStageProgress(99)
	if err != nil || p.Kind != AllClear {
		t.Errorf("ParseStageProgress(99) = %+v, %v", p, err)
	}

	if _, err := ParseStageProgress(9); err == nil {
		t.Errorf("expected error for stage progress byte 9")
	}
}
