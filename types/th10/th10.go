// Package th10 holds the concrete per-game enumerations for Mountain of
// Faith: ShotType (Reimu and Marisa, each with three shot variants),
// Difficulty, and the plain linear Stage progression with one Extra
// stage. Mountain of Faith has no branching stages and no Last
// Word/Phantasm-style sixth difficulty slot, so this package is
// considerably smaller than its Perfect Cherry Blossom and Imperishable
// Night counterparts.
package th10

import "github.com/hakurei-works/thstat/types"

// Character groups a ShotType's underlying playable character.
type Character struct {
	types.Enum
}

var (
	CharacterReimu  = &Character{types.Enum{"Reimu"}}
	CharacterMarisa = &Character{types.Enum{"Marisa"}}
)

// ShotType is one of Mountain of Faith's 6 loadouts: Reimu or Marisa,
// each in one of three shot variants.
type ShotType struct {
	types.Enum
	ID        uint8
	Character *Character
	Variant   byte // 'A', 'B', or 'C'
}

var ShotTypes = []*ShotType{
	{types.Enum{"ReimuA"}, 0, CharacterReimu, 'A'},
	{types.Enum{"ReimuB"}, 1, CharacterReimu, 'B'},
	{types.Enum{"ReimuC"}, 2, CharacterReimu, 'C'},
	{types.Enum{"MarisaA"}, 3, CharacterMarisa, 'A'},
	{types.Enum{"MarisaB"}, 4, CharacterMarisa, 'B'},
	{types.Enum{"MarisaC"}, 5, CharacterMarisa, 'C'},
}

var (
	ReimuA  = ShotTypes[0]
	ReimuB  = ShotTypes[1]
	ReimuC  = ShotTypes[2]
	MarisaA = ShotTypes[3]
	MarisaB = ShotTypes[4]
	MarisaC = ShotTypes[5]
)

// ShotTypeByID returns the ShotType for a raw id, or an error if id has
// no corresponding shot type.
func ShotTypeByID(id uint8) (*ShotType, error) {
	if int(id) < len(ShotTypes) {
		return ShotTypes[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidShotType,
		Game:  types.MoF,
		Field: "shot_type",
		Value: id,
		Range: "0..=5",
	}
}

// FromCharacterAndSubtype mirrors the attached process's own encoding: a
// character index (0 = Reimu, 1 = Marisa) plus a subtype index (0..=2
// for A/B/C) rather than one flat shot id.
func FromCharacterAndSubtype(character, subtype uint8) (*ShotType, error) {
	if character > 1 {
		return nil, &types.FieldError{
			Kind:  types.ErrInvalidOther,
			Game:  types.MoF,
			Field: "character",
			Value: character,
			Range: "0..=1",
		}
	}
	if subtype > 2 {
		return nil, &types.FieldError{
			Kind:  types.ErrInvalidOther,
			Game:  types.MoF,
			Field: "character_subtype",
			Value: subtype,
			Range: "0..=2",
		}
	}
	return ShotTypes[character*3+subtype], nil
}

// Any wraps this ShotType as a cross-game types.AnyShot.
func (s *ShotType) Any() types.AnyShot {
	return types.AnyShot{Game: types.MoF, RawID: s.ID}
}

// Difficulty is one of Mountain of Faith's 5 ordinary difficulty slots.
type Difficulty struct {
	types.Enum
	ID uint8
}

var Difficulties = []*Difficulty{
	{types.Enum{"Easy"}, 0},
	{types.Enum{"Normal"}, 1},
	{types.Enum{"Hard"}, 2},
	{types.Enum{"Lunatic"}, 3},
	{types.Enum{"Extra"}, 4},
}

var (
	Easy    = Difficulties[0]
	Normal  = Difficulties[1]
	Hard    = Difficulties[2]
	Lunatic = Difficulties[3]
	Extra   = Difficulties[4]
)

// DifficultyByID returns the Difficulty for a raw id, or an error if id
// has no corresponding difficulty.
func DifficultyByID(id uint8) (*Difficulty, error) {
	if int(id) < len(Difficulties) {
		return Difficulties[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidDifficulty,
		Game:  types.MoF,
		Field: "difficulty",
		Value: id,
		Range: "0..=4",
	}
}

// Stage is one of Mountain of Faith's 7 stage slots: a plain One..Six
// progression plus a single Extra stage, with no branching and no
// Last Word pseudo-stage.
type Stage struct {
	types.Enum
	ID uint8
}

var Stages = []*Stage{
	{types.Enum{"Stage 1"}, 0},
	{types.Enum{"Stage 2"}, 1},
	{types.Enum{"Stage 3"}, 2},
	{types.Enum{"Stage 4"}, 3},
	{types.Enum{"Stage 5"}, 4},
	{types.Enum{"Stage 6"}, 5},
	{types.Enum{"Extra Stage"}, 6},
}

var (
	StageOne   = Stages[0]
	StageTwo   = Stages[1]
	StageThree = Stages[2]
	StageFour  = Stages[3]
	StageFive  = Stages[4]
	StageSix   = Stages[5]
	StageExtra = Stages[6]
)

// StageByID returns the Stage for a raw id, or an error if id has no
// corresponding stage.
func StageByID(id uint8) (*Stage, error) {
	if int(id) < len(Stages) {
		return Stages[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidStage,
		Game:  types.MoF,
		Field: "stage",
		Value: id,
		Range: "0..=6",
	}
}

// IsExtra reports whether s is the Extra stage, which (like every other
// supported game) the location resolver explicitly refuses to resolve.
func (s *Stage) IsExtra() bool {
	return s == StageExtra
}

// HasMidboss reports whether stage id runs a dedicated midboss
// encounter. Stages Two and Four suppress their midboss once the run
// has passed game-state frame 900, tracked by the caller, not here.
func (s *Stage) HasMidboss() bool {
	return s == StageTwo || s == StageFour
}
