package th08

import (
	"testing"

	"github.com/hakurei-works/thstat/location"
	th08types "github.com/hakurei-works/thstat/types/th08"
)

type fakeBoss struct {
	lifebars uint8
	spellID  uint32
	active   bool
}

func (f fakeBoss) RemainingLifebars() uint8      { return f.lifebars }
func (f fakeBoss) ActiveSpellID() (uint32, bool) { return f.spellID, f.active }

func TestResolveMidbossNonspell(t *testing.T) {
	loc, ok := Resolve(th08types.StageOne, 2500, fakeBoss{lifebars: 2})
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocMidbossNonspell || loc.Index != 0 {
		t.Errorf("got %+v, want MidbossNonspell seq 0", loc)
	}
}

func TestResolveMidbossSpell(t *testing.T) {
	loc, ok := Resolve(th08types.StageOne, 2500, fakeBoss{active: true, spellID: 1})
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocMidbossSpell || loc.SpellID != 1 || loc.Index != 0 {
		t.Errorf("got %+v, want MidbossSpell seq 0 with spell 1", loc)
	}
}

func TestResolveBossSecondSpell(t *testing.T) {
	loc, ok := Resolve(th08types.StageOne, 5200, fakeBoss{active: true, spellID: 7})
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocBossSpell || loc.SpellID != 7 || loc.Index != 1 {
		t.Errorf("got %+v, want BossSpell seq 1 with spell 7", loc)
	}
}

func TestResolveBasicSection(t *testing.T) {
	loc, ok := Resolve(th08types.StageOne, 600, nil)
	if !ok {
		t.Fatal("expected a resolved location")
	}
	if loc.Kind != location.LocSection || loc.Index != 0 {
		t.Errorf("got %+v, want Section seq 0", loc)
	}
}
