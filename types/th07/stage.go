package th07

import "github.com/hakurei-works/thstat/types"

// Stage is one of Perfect Cherry Blossom's 8 stages, including Extra and
// Phantasm.
type Stage struct {
	types.Enum
	ID uint8
}

// Stages enumerates every Stage in memory/disk id order.
var Stages = []*Stage{
	{types.Enum{"Stage 1"}, 0},
	{types.Enum{"Stage 2"}, 1},
	{types.Enum{"Stage 3"}, 2},
	{types.Enum{"Stage 4"}, 3},
	{types.Enum{"Stage 5"}, 4},
	{types.Enum{"Stage 6"}, 5},
	{types.Enum{"Extra Stage"}, 6},
	{types.Enum{"Phantasm Stage"}, 7},
}

// Named stages.
var (
	StageOne      = Stages[0]
	StageTwo      = Stages[1]
	StageThree    = Stages[2]
	StageFour     = Stages[3]
	StageFive     = Stages[4]
	StageSix      = Stages[5]
	StageExtra    = Stages[6]
	StagePhantasm = Stages[7]
)

// StageByID returns the Stage for a raw id, or an error if id has no
// corresponding stage.
func StageByID(id uint8) (*Stage, error) {
	if int(id) < len(Stages) {
		return Stages[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidStage,
		Game:  types.PCB,
		Field: "stage",
		Value: id,
		Range: "0..=7",
	}
}

// IsExtraOrPhantasm reports whether s is one of the two bonus stages the
// location resolver explicitly refuses to resolve.
func (s *Stage) IsExtraOrPhantasm() bool {
	return s == StageExtra || s == StagePhantasm
}
