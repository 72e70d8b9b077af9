/*

Package th10 resolves Mountain of Faith's current location. Unlike
Perfect Cherry Blossom and Imperishable Night, this game has no
frame-indexed section table at all -- its reference location resolver
reads the classification straight off the state-model builder's own
Activity/BossState values. This package mirrors that shape directly
rather than routing through the shared frame-table engine in
package location.

*/
package th10

import (
	"fmt"

	th10mem "github.com/hakurei-works/thstat/memory/th10"
	"github.com/hakurei-works/thstat/types"
	th10types "github.com/hakurei-works/thstat/types/th10"
)

// SectionKind distinguishes ordinary stage play from a midboss or boss
// encounter.
type SectionKind int

const (
	SectionStage SectionKind = iota
	SectionMidboss
	SectionBoss
)

// Location is one resolved position within a Mountain of Faith stage.
// Spell and HasSpell are meaningful only once the corresponding
// encounter's active card has actually engaged -- a midboss or boss
// fight with no spell active yet (only its nonspell intro phase) has
// HasSpell false.
type Location struct {
	Stage    *th10types.Stage
	Kind     SectionKind
	Spell    *th10types.SpellCardInfo
	HasSpell bool
}

// Name mirrors the reference resolver's own GameLocation::name: a named
// spell card if one is active, otherwise a generic per-stage/per-kind
// label.
func (l Location) Name() string {
	switch {
	case l.Kind == SectionStage:
		return l.Stage.Name
	case l.HasSpell:
		return l.Spell.Name
	case l.Kind == SectionMidboss:
		return fmt.Sprintf("%s Midboss", l.Stage.Name)
	default:
		return fmt.Sprintf("%s Boss", l.Stage.Name)
	}
}

// IsBossStart reports whether this location is a boss (not midboss)
// fight's spell phase -- a simplification of the reference resolver's
// own check, which additionally requires the spell be the first of its
// fight; this package's SpellCardInfo carries no sequence number to
// refine that further.
func (l Location) IsBossStart() bool {
	return l.Kind == SectionBoss && l.HasSpell && l.Spell.Type != types.Midboss
}

// Resolve maps a stage's current Activity (§ memory/th10 state model) to
// a Location. StageDialogue and PostDialogue have no corresponding
// location and are explicitly refused, matching the reference
// resolver's own behavior.
func Resolve(stage th10mem.StageState) (Location, bool) {
	switch stage.Activity.Kind {
	case th10mem.ActivityStageSection:
		return Location{Stage: stage.Stage, Kind: SectionStage}, true

	case th10mem.ActivityMidboss:
		spell, hasSpell := activeSpell(stage.Activity.BossState)
		return Location{Stage: stage.Stage, Kind: SectionMidboss, Spell: spell, HasSpell: hasSpell}, true

	case th10mem.ActivityBoss:
		spell, hasSpell := activeSpell(stage.Activity.BossState)
		return Location{Stage: stage.Stage, Kind: SectionBoss, Spell: spell, HasSpell: hasSpell}, true

	default:
		return Location{}, false
	}
}

func activeSpell(boss *th10mem.BossState) (*th10types.SpellCardInfo, bool) {
	if boss == nil || boss.ActiveSpell == nil {
		return nil, false
	}
	return boss.ActiveSpell.Spell.Spell.Info(), true
}
