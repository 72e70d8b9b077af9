/*

Package th07 compiles Perfect Cherry Blossom's per-stage section tables
and resolves a running game's current location from them (§4.9). The
tables below are transcribed directly from this game's reference
section-table definitions; they run through the shared
location.Resolve engine unchanged.

This game's Extra and Phantasm stages are explicitly excluded from
resolution (§9 redesign decision): Resolve returns (Location{}, false)
for either.

*/
package th07

import (
	"github.com/hakurei-works/thstat/location"
	th07types "github.com/hakurei-works/thstat/types/th07"
)

func basic(frame uint32, idx uint64, name string) location.Entry {
	return location.Entry{StartFrame: frame, Kind: location.SectionBasic, Index: idx, Name: name}
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
	basic(540, 0, ""),
	basic(1341, 1, ""),
	midboss(2656, nonspell(), spells(1, 2)),
	basic(3107, 2, ""),
	boss(5402, nonspell(), spells(3, 6), nonspell(), spells(7, 10)),
}}

var stageTwoTable = location.StageTable{Entries: []location.Entry{
	start,
	basic(390, 0, ""),
	midboss(2826, nonspell(), spells(11, 14)),
	basic(3366, 1, ""),
	boss(7647, nonspell(), spells(15, 18), nonspell(), spells(19, 22), spells(23, 28)),
}}

var stageThreeTable = location.StageTable{Entries: []location.Entry{
	start,
	basic(390, 0, ""),
	midboss(821, nonspell()),
	basic(854, 1, ""),
	basic(1805, 2, ""),
	midboss(1858, nonspell(), spells(27, 28)),
	boss(3393, nonspell(), spells(29, 32), nonspell(), spells(33, 36), nonspell(), spells(37, 40), spells(41, 44)),
}}

var stageFourTable = location.StageTable{Entries: []location.Entry{
	start,
	basic(80, 0, ""),
	basic(1948, 1, ""),
	basic(3028, 2, ""),
	basic(4288, 3, ""),
	midboss(7122, nonspell()),
	basic(7964, 4, ""),
	basic(10136, 5, ""),
	basic(11396, 6, ""),
	basic(13166, 7, ""),
	boss(14826, nonspell(), nonspell(), spells(45, 48), nonspell(), spells(49, 60), spells(61, 64), spells(65, 68)),
}}

var stageFiveTable = location.StageTable{Entries: []location.Entry{
	start,
	basic(440, 0, ""),
	basic(840, 1, ""),
	basic(2550, 2, ""),
	midboss(4820, nonspell(), spells(69, 72)),
	basic(4883, 3, ""),
	boss(6113, nonspell(), spells(73, 76), nonspell(), spells(77, 80), spells(81, 84), spells(85, 88)),
}}

var stageSixTable = location.StageTable{Entries: []location.Entry{
	start,
	basic(660, 0, ""),
	basic(1180, 1, "Spam"),
	midboss(1914, nonspell(), spells(89, 92)),
	boss(2518, nonspell(), spells(93, 96), nonspell(), spells(97, 100), nonspell(), spells(101, 104), nonspell(), spells(105, 108), spells(109, 112), spells(113, 115)),
}}

var tablesByStage = map[*th07types.Stage]location.StageTable{
	th07types.StageOne:   stageOneTable,
	th07types.StageTwo:   stageTwoTable,
	th07types.StageThree: stageThreeTable,
	th07types.StageFour:  stageFourTable,
	th07types.StageFive:  stageFiveTable,
	th07types.StageSix:   stageSixTable,
}

// BossQuery is the boss-state input Resolve needs. Resolve itself does
// not depend on memory/th07; ResolveFromMemory (adapter.go) adapts that
// package's BossState to this interface.
type BossQuery interface {
	RemainingLifebars() uint8
	ActiveSpellID() (uint32, bool)
}

// Resolve maps a stage, ECL timeline frame and optional boss state to
// its current location. Stages with no compiled table (Extra, Phantasm)
// and any unrecognized stage are explicitly refused rather than
// partially resolved. Pass a nil boss when no boss encounter is active.
func Resolve(stage *th07types.Stage, eclFrame uint32, boss BossQuery) (location.Location, bool) {
	table, ok := tablesByStage[stage]
	if !ok {
		return location.Location{}, false
	}

	if boss == nil {
		return location.Resolve(table, eclFrame, nil)
	}
	return location.Resolve(table, eclFrame, boss)
}
