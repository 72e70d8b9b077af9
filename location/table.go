/*

Package location implements the generic frame-table location resolver
(§4.9): given a stage's declarative table of frame-indexed sections and
the current ECL timeline position, resolve which named location the
player currently occupies. Per-game packages (location/th07,
location/th08) compile a StageTable per stage from that stage's
original section table and wrap Resolve with their own typed Location.

Mountain of Faith has no equivalent frame table -- its location is
derived directly from its own Activity/BossState model instead; see
location/th10.

*/
package location

// PhaseKind distinguishes a boss fight's nonspell and spell phases.
type PhaseKind int

const (
	PhaseNonspell PhaseKind = iota
	PhaseSpell
	PhaseLastSpell
)

// Phase is one attack within a midboss or boss fight. SpellRange is
// meaningful only for PhaseSpell and PhaseLastSpell.
type Phase struct {
	Kind       PhaseKind
	SpellRange [2]uint32
}

// SectionKind distinguishes the four kinds of table entry (§4.9 rules
// 1-4).
type SectionKind int

const (
	SectionStart SectionKind = iota
	SectionBasic
	SectionMidboss
	SectionBoss
)

// Entry is one frame-indexed row of a stage's declarative table.
// Index is the entry's position among same-kind Basic/Start entries,
// assigned at table-construction time in declaration order; Phases is
// populated only for SectionMidboss and SectionBoss.
type Entry struct {
	StartFrame uint32
	Kind       SectionKind
	Index      uint64
	Name       string
	Phases     []Phase
}

// StageTable is one stage's full section table, sorted ascending by
// StartFrame.
type StageTable struct {
	Entries []Entry
}

// BossQuery is the boss-state input Resolve needs: the active boss
// fight's remaining lifebar count and, if a spell is currently active,
// its raw id.
type BossQuery interface {
	RemainingLifebars() uint8
	ActiveSpellID() (uint32, bool)
}

// LocationKind is the resolved section's classification.
type LocationKind int

const (
	LocStart LocationKind = iota
	LocSection
	LocMidbossNonspell
	LocMidbossSpell
	LocBossNonspell
	LocBossSpell
	LocBossLastSpell
)

// Location is one resolved, stage-relative position. SpellID is valid
// only for the spell kinds (LocMidbossSpell, LocBossSpell and
// LocBossLastSpell).
type Location struct {
	Kind    LocationKind
	Index   uint64
	SpellID uint32
	Name    string
}

func findEntry(entries []Entry, frame uint32) int {
	idx := 0
	for i, e := range entries {
		if e.StartFrame > frame {
			break
		}
		idx = i
	}
	return idx
}

func previousBasic(entries []Entry, before int) (Location, bool) {
	for i := before - 1; i >= 0; i-- {
		switch entries[i].Kind {
		case SectionStart:
			return Location{Kind: LocStart}, true
		case SectionBasic:
			return Location{Kind: LocSection, Index: entries[i].Index, Name: entries[i].Name}, true
		}
	}
	return Location{}, false
}

// nonspellHealthbars maps a boss fight's displayed remaining-lifebar
// count to the declaration-order sequence number of the nonspell phase
// it corresponds to. The displayed count starts at (total nonspells
// declared - i + 1) for the i-th nonspell (0-indexed) and never reaches
// 0 or 1 while a nonspell is on screen -- those values belong to the
// boss's final uncounted spell phase.
func nonspellHealthbars(phases []Phase) map[uint8]uint64 {
	total := 0
	for _, p := range phases {
		if p.Kind == PhaseNonspell {
			total++
		}
	}

	out := make(map[uint8]uint64, total)
	seq := uint64(0)
	for _, p := range phases {
		if p.Kind != PhaseNonspell {
			continue
		}
		out[uint8(total-int(seq)+1)] = seq
		seq++
	}
	return out
}

func resolveBossFight(entries []Entry, idx int, kind SectionKind, boss BossQuery) (Location, bool) {
	entry := entries[idx]

	if boss == nil {
		return previousBasic(entries, idx)
	}

	nonspellKind, spellKind, lastSpellKind := LocBossNonspell, LocBossSpell, LocBossLastSpell
	if kind == SectionMidboss {
		nonspellKind, spellKind = LocMidbossNonspell, LocMidbossSpell
	}

	if spellID, active := boss.ActiveSpellID(); active {
		seq := uint64(0)
		for _, p := range entry.Phases {
			if p.Kind != PhaseSpell && p.Kind != PhaseLastSpell {
				continue
			}
			if spellID >= p.SpellRange[0] && spellID <= p.SpellRange[1] {
				k := spellKind
				if p.Kind == PhaseLastSpell {
					k = lastSpellKind
				}
				return Location{Kind: k, Index: seq, SpellID: spellID}, true
			}
			seq++
		}
		return Location{}, false
	}

	seqByHealthbar := nonspellHealthbars(entry.Phases)
	if seq, ok := seqByHealthbar[boss.RemainingLifebars()]; ok {
		return Location{Kind: nonspellKind, Index: seq}, true
	}
	return Location{}, false
}

// Resolve implements §4.9's resolution rules against a compiled
// StageTable for the given ECL timeline frame and boss state.
func Resolve(table StageTable, eclFrame uint32, boss BossQuery) (Location, bool) {
	if len(table.Entries) == 0 {
		return Location{}, false
	}

	idx := findEntry(table.Entries, eclFrame)
	entry := table.Entries[idx]

	switch entry.Kind {
	case SectionStart:
		return Location{Kind: LocStart}, true
	case SectionBasic:
		return Location{Kind: LocSection, Index: entry.Index, Name: entry.Name}, true
	case SectionMidboss, SectionBoss:
		return resolveBossFight(table.Entries, idx, entry.Kind, boss)
	default:
		return Location{}, false
	}
}
