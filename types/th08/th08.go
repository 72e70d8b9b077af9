// Package th08 holds the concrete per-game enumerations for Imperishable
// Night: ShotType (4 two-character teams plus the 8 characters solo),
// Difficulty (including the Last Word difficulty slot), and Stage
// (including the branching Stage 4/Final splits and the Last Word
// pseudo-stage).
package th08

import "github.com/hakurei-works/thstat/types"

// ShotType is one of Imperishable Night's 12 playable loadouts: the 4
// two-character teams, or any of the 8 characters played solo.
type ShotType struct {
	types.Enum
	ID uint8
}

var ShotTypes = []*ShotType{
	{types.Enum{"Reimu & Yukari"}, 0},
	{types.Enum{"Marisa & Alice"}, 1},
	{types.Enum{"Sakuya & Remilia"}, 2},
	{types.Enum{"Youmu & Yuyuko"}, 3},
	{types.Enum{"Reimu"}, 4},
	{types.Enum{"Yukari"}, 5},
	{types.Enum{"Marisa"}, 6},
	{types.Enum{"Alice"}, 7},
	{types.Enum{"Sakuya"}, 8},
	{types.Enum{"Remilia"}, 9},
	{types.Enum{"Youmu"}, 10},
	{types.Enum{"Yuyuko"}, 11},
}

var (
	BarrierTeam = ShotTypes[0]
	MagicTeam   = ShotTypes[1]
	ScarletTeam = ShotTypes[2]
	GhostTeam   = ShotTypes[3]
	Reimu       = ShotTypes[4]
	Yukari      = ShotTypes[5]
	Marisa      = ShotTypes[6]
	Alice       = ShotTypes[7]
	Sakuya      = ShotTypes[8]
	Remilia     = ShotTypes[9]
	Youmu       = ShotTypes[10]
	Yuyuko      = ShotTypes[11]
)

// ShotTypeByID returns the ShotType for a raw id, or an error if id has no
// corresponding shot type.
func ShotTypeByID(id uint8) (*ShotType, error) {
	if int(id) < len(ShotTypes) {
		return ShotTypes[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidShotType,
		Game:  types.IN,
		Field: "shot_type",
		Value: id,
		Range: "0..=11",
	}
}

// Any wraps this ShotType as a cross-game types.AnyShot.
func (s *ShotType) Any() types.AnyShot {
	return types.AnyShot{Game: types.IN, RawID: s.ID}
}

// Difficulty is one of Imperishable Night's 6 difficulty slots: the 4
// ordinary difficulties, Extra, and Last Word (whose spell practice
// statistics are tracked as their own difficulty-like slot).
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
	{types.Enum{"Last Word"}, 5},
}

var (
	Easy     = Difficulties[0]
	Normal   = Difficulties[1]
	Hard     = Difficulties[2]
	Lunatic  = Difficulties[3]
	Extra    = Difficulties[4]
	LastWord = Difficulties[5]
)

// DifficultyByID returns the Difficulty for a raw id, or an error if id
// has no corresponding difficulty.
func DifficultyByID(id uint8) (*Difficulty, error) {
	if int(id) < len(Difficulties) {
		return Difficulties[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidDifficulty,
		Game:  types.IN,
		Field: "difficulty",
		Value: id,
		Range: "0..=5",
	}
}

// Stage is one of Imperishable Night's 10 stage slots. Stage 4 and the
// final stage each branch into two variants depending on the player's
// choices earlier in the run; Last Word is tracked as its own
// pseudo-stage rather than a difficulty of an existing one.
type Stage struct {
	types.Enum
	ID uint8
}

var Stages = []*Stage{
	{types.Enum{"Stage 1"}, 0},
	{types.Enum{"Stage 2"}, 1},
	{types.Enum{"Stage 3"}, 2},
	{types.Enum{"Stage 4 Uncanny"}, 3},
	{types.Enum{"Stage 4 Powerful"}, 4},
	{types.Enum{"Stage 5"}, 5},
	{types.Enum{"Final A"}, 6},
	{types.Enum{"Final B"}, 7},
	{types.Enum{"Extra Stage"}, 8},
	{types.Enum{"Last Word"}, 9},
}

var (
	StageOne      = Stages[0]
	StageTwo      = Stages[1]
	StageThree    = Stages[2]
	StageFourA    = Stages[3]
	StageFourB    = Stages[4]
	StageFive     = Stages[5]
	StageFinalA   = Stages[6]
	StageFinalB   = Stages[7]
	StageExtra    = Stages[8]
	StageLastWord = Stages[9]
)

// StageByID returns the Stage for a raw id, or an error if id has no
// corresponding stage.
func StageByID(id uint8) (*Stage, error) {
	if int(id) < len(Stages) {
		return Stages[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidStage,
		Game:  types.IN,
		Field: "stage",
		Value: id,
		Range: "0..=9",
	}
}

// IsExtra reports whether s is the Extra stage, which (together with
// Last Word) the location resolver explicitly refuses to resolve.
func (s *Stage) IsExtra() bool {
	return s == StageExtra
}
