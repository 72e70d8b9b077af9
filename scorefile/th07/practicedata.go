package th07

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hakurei-works/thstat/types"
	"github.com/hakurei-works/thstat/types/th07"
)

// PracticeData identifies one (shot, difficulty, stage) practice-mode
// high score, read from a PSCR segment.
type PracticeData struct {
	AttemptCount    uint32
	BestScore       uint32
	ShotTypeValue   *th07.ShotType
	DifficultyValue *th07.Difficulty
	StageValue      *th07.Stage
}

func readPracticeData(r io.Reader) (PracticeData, error) {
	var skip [4]byte
	if _, err := io.ReadFull(r, skip[:]); err != nil {
		return PracticeData{}, fmt.Errorf("th07: reading practice data: %w", err)
	}

	// attempts(4) + high_score(4) + shot_type(1) + difficulty(1) + stage(1)
	// + trailing reserved byte(1).
	var buf [12]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return PracticeData{}, fmt.Errorf("th07: reading practice data: %w", err)
	}

	shotType, err := th07.ShotTypeByID(buf[8])
	if err != nil {
		return PracticeData{}, err
	}
	difficulty, err := th07.DifficultyByID(buf[9])
	if err != nil {
		return PracticeData{}, err
	}
	stage, err := th07.StageByID(buf[10])
	if err != nil {
		return PracticeData{}, err
	}

	return PracticeData{
		AttemptCount:    binary.LittleEndian.Uint32(buf[0:4]),
		BestScore:       binary.LittleEndian.Uint32(buf[4:8]),
		ShotTypeValue:   shotType,
		DifficultyValue: difficulty,
		StageValue:      stage,
	}, nil
}

// ShotType returns the wrapped per-shot value.
func (pd PracticeData) ShotType() types.AnyShot { return pd.ShotTypeValue.Any() }

// StageName satisfies scorefile.PracticeRecord.
func (pd PracticeData) StageName() string { return pd.StageValue.String() }

// DifficultyName satisfies scorefile.PracticeRecord.
func (pd PracticeData) DifficultyName() string { return pd.DifficultyValue.String() }

// HighScore satisfies scorefile.PracticeRecord.
func (pd PracticeData) HighScore() uint32 { return pd.BestScore }

// Attempts satisfies scorefile.PracticeRecord.
func (pd PracticeData) Attempts() uint32 { return pd.AttemptCount }
