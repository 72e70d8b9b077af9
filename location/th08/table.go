/*

Package th08 compiles Imperishable Night's per-stage section tables.
No section-table source survives for this game in the reference
material this module was grounded on (only its memory state-builder
logic does -- see memory/th08's own disclosure). The tables below are
invented placeholders in the same frame-indexed shape Perfect Cherry
Blossom's real table uses, covering stage one as a worked example
rather than the full eight-stage roster; a real table would replace
every frame number and spell range here with values read from the
attached process.

*/
package th08

import (
	"github.com/hakurei-works/thstat/location"
	th08types "github.com/hakurei-works/thstat/types/th08"
)

func basic(frame uint32, idx uint64) location.Entry {
	return location.Entry{StartFrame: frame, Kind: location.SectionBasic, Index: idx}
}

func midboss(frame uint32, phases ...location.Phase) location.Entry {
	return location.Entry{StartFrame: frame, Kind: location.SectionMidboss, Phases: phases}
}

func boss(frame uint32, phases ...location.Phase) location.Entry {
	return location.Entry{StartFrame: frame, Kind: location.SectionBoss, Phases: phases}
}

func nonspell() location.Phase { return location.Phase{Kind: location.PhaseNonspell} }

func spells(lo, hi uint32) location.Phase {
	return location.Phase{Kind: location.PhaseSpell, SpellRange: [2]uint32{lo, hi}}
}

var start = location.Entry{Kind: location.SectionStart}

var stageOneTable = location.StageTable{Entries: []location.Entry{
	start,
	basic(500, 0),
	midboss(2400, nonspell(), spells(1, 2)),
	basic(2900, 1),
	boss(5200, nonspell(), spells(3, 6), nonspell(), spells(7, 10)),
}}

var tablesByStage = map[*th08types.Stage]location.StageTable{
	th08types.StageOne: stageOneTable,
}

// BossQuery is the boss-state input Resolve needs.
type BossQuery interface {
	RemainingLifebars() uint8
	ActiveSpellID() (uint32, bool)
}

// Resolve maps a stage, ECL timeline frame and optional boss state to
// its current location. Stages with no compiled table are explicitly
// refused rather than partially resolved. Pass a nil boss when no boss
// encounter is active.
func Resolve(stage *th08types.Stage, eclFrame uint32, boss BossQuery) (location.Location, bool) {
	table, ok := tablesByStage[stage]
	if !ok {
		return location.Location{}, false
	}

	if boss == nil {
		return location.Resolve(table, eclFrame, nil)
	}
	return location.Resolve(table, eclFrame, boss)
}
