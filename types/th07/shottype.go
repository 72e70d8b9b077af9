// Package th07 holds the concrete per-game enumerations for Perfect Cherry
// Blossom: ShotType, Stage, Difficulty, SpellID and the 141-entry spell
// card catalog, all in the Enum+table+ByID idiom used throughout this
// module.
package th07

import (
	"github.com/hakurei-works/thstat/types"
)

// Character is the playable character a ShotType belongs to, independent
// of its A/B option loadout.
type Character struct {
	types.Enum
}

var (
	CharacterReimu  = &Character{types.Enum{"Reimu Hakurei"}}
	CharacterMarisa = &Character{types.Enum{"Marisa Kirisame"}}
	CharacterSakuya = &Character{types.Enum{"Sakuya Izayoi"}}
)

// ShotType is one of the 6 playable shot loadouts.
type ShotType struct {
	types.Enum

	// ID as stored in the score file and attached process memory.
	ID uint8

	Character *Character
	IsTypeA   bool
}

// ShotTypes enumerates every ShotType in disk/memory id order.
var ShotTypes = []*ShotType{
	{types.Enum{"ReimuA"}, 0, CharacterReimu, true},
	{types.Enum{"ReimuB"}, 1, CharacterReimu, false},
	{types.Enum{"MarisaA"}, 2, CharacterMarisa, true},
	{types.Enum{"MarisaB"}, 3, CharacterMarisa, false},
	{types.Enum{"SakuyaA"}, 4, CharacterSakuya, true},
	{types.Enum{"SakuyaB"}, 5, CharacterSakuya, false},
}

// Named shot types.
var (
	ReimuA  = ShotTypes[0]
	ReimuB  = ShotTypes[1]
	MarisaA = ShotTypes[2]
	MarisaB = ShotTypes[3]
	SakuyaA = ShotTypes[4]
	SakuyaB = ShotTypes[5]
)

// ShotTypeByID returns the ShotType for a raw id, or an error if id has no
// corresponding shot type.
func ShotTypeByID(id uint8) (*ShotType, error) {
	if int(id) < len(ShotTypes) {
		return ShotTypes[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidShotType,
		Game:  types.PCB,
		Field: "shot_type",
		Value: id,
		Range: "0..=5",
	}
}

// Any wraps this ShotType as a cross-game types.AnyShot.
func (s *ShotType) Any() types.AnyShot {
	return types.AnyShot{Game: types.PCB, RawID: s.ID}
}
