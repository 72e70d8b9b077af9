package th07

import (
	"testing"

	"github.com/hakurei-works/thstat/location"
	th07types "github.com/hakurei-works/thstat/types/th07"
)

type fakeBoss struct {
	lifebars uint8
	spellID  uint32
	active   bool
}

func (f fakeBoss) RemainingLifebars() uint8      { return f.lifebars }
func (f fakeBoss) ActiveSpellID() (uint32, bool) { return f.spellID, f.active }

func TestResolveMidbossNonspell(t *testing.T) {
	loc, ok := Resolve(th07types.StageOne, 2800, fakeBoss{lifebars: 2})
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocMidbossNonspell || loc.Index != 0 {
		t.Errorf("got %+v, want MidbossNonspell seq 0", loc)
	}
}

func TestResolveMidbossSpell(t *testing.T) {
	loc, ok := Resolve(th07types.StageOne, 2800, fakeBoss{active: true, spellID: 1})
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocMidbossSpell || loc.SpellID != 1 || loc.Index != 0 {
		t.Errorf("got %+v, want MidbossSpell seq 0 with spell 1", loc)
	}

	info, err := th07types.SpellByID(uint16(loc.SpellID))
	if err != nil {
		t.Fatalf("SpellByID(%d): %v", loc.SpellID, err)
	}
	if got := info.Name; len(got) < 10 || got[:10] != "Frost Sign" {
		t.Errorf("spell name = %q, want prefix \"Frost Sign\"", got)
	}
}

func TestResolveBasicSection(t *testing.T) {
	loc, ok := Resolve(th07types.StageOne, 1500, nil)
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocSection || loc.Index != 1 {
		t.Errorf("got %+v, want Section index 1", loc)
	}
}

func TestResolveMidbossFallsBackWithNoBoss(t *testing.T) {
	loc, ok := Resolve(th07types.StageOne, 2800, nil)
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocSection || loc.Index != 1 {
		t.Errorf("got %+v, want the preceding basic section", loc)
	}
}

func TestResolveStageSixOverrideName(t *testing.T) {
	loc, ok := Resolve(th07types.StageSix, 1200, nil)
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Name != "Spam" {
		t.Errorf("got name %q, want \"Spam\"", loc.Name)
	}
}

func TestResolveExcludesExtraAndPhantasm(t *testing.T) {
	if _, ok := Resolve(th07types.StageExtra, 0, nil); ok {
		t.Error("Extra stage should not resolve")
	}
	if _, ok := Resolve(th07types.StagePhantasm, 0, nil); ok {
		t.Error("Phantasm stage should not resolve")
	}
}

func TestResolveStartOfStage(t *testing.T) {
	loc, ok := Resolve(th07types.StageOne, 0, nil)
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocStart {
		t.Errorf("got %+v, want Start", loc)
	}
}
