package th08

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hakurei-works/thstat/types"
	"github.com/hakurei-works/thstat/types/th08"
)

// PracticeScore is one (stage, difficulty) practice record for a single
// shot type: a play count and a best score.
type PracticeScore struct {
	ShotTypeValue *th08.ShotType
	Stage         *th08.Stage
	DifficultyVal *th08.Difficulty
	AttemptCount  uint32
	BestScore     uint32
}

// ShotType is the shot type this record was practiced with.
func (ps PracticeScore) ShotType() types.AnyShot { return ps.ShotTypeValue.Any() }

// StageName is the stage's display name.
func (ps PracticeScore) StageName() string { return ps.Stage.Name }

// DifficultyName is the difficulty's display name.
func (ps PracticeScore) DifficultyName() string { return ps.DifficultyVal.Name }

// HighScore is the best score reached practicing this stage/difficulty.
func (ps PracticeScore) HighScore() uint32 { return ps.BestScore }

// Attempts is how many times this stage/difficulty has been practiced.
func (ps PracticeScore) Attempts() uint32 { return ps.AttemptCount }

// practiceStages and practiceDifficulties fix the flattening order the
// on-disk 45-entry play_counts/high_scores arrays are read in: stage is
// the outer loop, difficulty the inner one, exactly as the original
// decoder builds its (stage, difficulty) key for every array slot.
var practiceStages = []*th08.Stage{
	th08.StageOne, th08.StageTwo, th08.StageThree,
	th08.StageFourA, th08.StageFourB, th08.StageFive,
	th08.StageFinalA, th08.StageFinalB, th08.StageExtra,
}

var practiceDifficulties = []*th08.Difficulty{
	th08.Easy, th08.Normal, th08.Hard, th08.Lunatic, th08.Extra,
}

// readPracticeData reads one PSCR segment body and explodes its flat
// 45-entry arrays into one PracticeScore per (stage, difficulty) pair for
// the record's shot type.
func readPracticeData(r io.Reader) ([]PracticeScore, error) {
	var skip [4]byte
	if _, err := io.ReadFull(r, skip[:]); err != nil {
		return nil, fmt.Errorf("th08: reading practice data: %w", err)
	}

	const count = 45
	var playCountBuf [count * 4]byte
	if _, err := io.ReadFull(r, playCountBuf[:]); err != nil {
		return nil, fmt.Errorf("th08: reading practice data: %w", err)
	}
	var highScoreBuf [count * 4]byte
	if _, err := io.ReadFull(r, highScoreBuf[:]); err != nil {
		return nil, fmt.Errorf("th08: reading practice data: %w", err)
	}

	var shotByte [1]byte
	if _, err := io.ReadFull(r, shotByte[:]); err != nil {
		return nil, fmt.Errorf("th08: reading practice data: %w", err)
	}
	recordShot, err := th08.ShotTypeByID(shotByte[0])
	if err != nil {
		return nil, err
	}

	var tail [3]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return nil, fmt.Errorf("th08: reading practice data: %w", err)
	}

	scores := make([]PracticeScore, 0, count)
	i := 0
	for _, stage := range practiceStages {
		for _, difficulty := range practiceDifficulties {
			scores = append(scores, PracticeScore{
				ShotTypeValue: recordShot,
				Stage:         stage,
				DifficultyVal: difficulty,
				AttemptCount:  binary.LittleEndian.Uint32(playCountBuf[i*4 : i*4+4]),
				BestScore:     binary.LittleEndian.Uint32(highScoreBuf[i*4 : i*4+4]),
			})
			i++
		}
	}
	return scores, nil
}
