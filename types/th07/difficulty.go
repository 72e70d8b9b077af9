package th07

import "github.com/hakurei-works/thstat/types"

// Difficulty is one of the 6 difficulty settings Perfect Cherry Blossom
// tracks statistics under: the 4 ordinary difficulties plus the Extra and
// Phantasm stage's own slots.
type Difficulty struct {
	types.Enum
	ID uint8
}

// Difficulties enumerates every Difficulty in disk/memory id order.
var Difficulties = []*Difficulty{
	{types.Enum{"Easy"}, 0},
	{types.Enum{"Normal"}, 1},
	{types.Enum{"Hard"}, 2},
	{types.Enum{"Lunatic"}, 3},
	{types.Enum{"Extra"}, 4},
	{types.Enum{"Phantasm"}, 5},
}

// Named difficulties.
var (
	Easy     = Difficulties[0]
	Normal   = Difficulties[1]
	Hard     = Difficulties[2]
	Lunatic  = Difficulties[3]
	Extra    = Difficulties[4]
	Phantasm = Difficulties[5]
)

// DifficultyByID returns the Difficulty for a raw id, or an error if id
// has no corresponding difficulty.
func DifficultyByID(id uint8) (*Difficulty, error) {
	if int(id) < len(Difficulties) {
		return Difficulties[id], nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidDifficulty,
		Game:  types.PCB,
		Field: "difficulty",
		Value: id,
		Range: "0..=5",
	}
}

// StageProgressKind distinguishes the 3 shapes StageProgress can take.
type StageProgressKind int

const (
	NotStarted StageProgressKind = iota
	LostAtStage
	AllClear
)

// StageProgress is the sparse per-game stage-progress byte: 0 means the
// slot was never played, 1..=8 means the run ended partway through the
// named stage, and 99 means the run cleared.
type StageProgress struct {
	Kind  StageProgressKind
	Stage *Stage // only meaningful when Kind == LostAtStage
}

func (p StageProgress) String() string {
	switch p.Kind {
	case NotStarted:
		return "Not Started"
	case AllClear:
		return "All Clear"
	case LostAtStage:
		return p.Stage.String()
	default:
		return "Unknown"
	}
}

// ParseStageProgress decodes the raw on-disk stage-progress byte. A value
// outside the known sparse mapping is a hard parse error.
func ParseStageProgress(raw uint8) (StageProgress, error) {
	switch {
	case raw == 0:
		return StageProgress{Kind: NotStarted}, nil
	case raw >= 1 && raw <= 8:
		stage, err := StageByID(raw - 1)
		if err != nil {
			return StageProgress{}, err
		}
		return StageProgress{Kind: LostAtStage, Stage: stage}, nil
	case raw == 99:
		return StageProgress{Kind: AllClear}, nil
	default:
		return StageProgress{}, &types.FieldError{
			Kind:  types.ErrInvalidOther,
			Game:  types.PCB,
			Field: "stage_progress",
			Value: raw,
			Range: "0, 1..=8, 99",
		}
	}
}
