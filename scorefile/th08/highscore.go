package th08

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hakurei-works/thstat/scorefile"
	"github.com/hakurei-works/thstat/types/th08"
)

// HighScore is the HSCR segment: one ranking-table entry, carrying the
// same run-summary fields Perfect Cherry Blossom has plus Imperishable
// Night's expanded play statistics (point items, last word count, pause
// count, human rate) and the 222-entry spell card capture flag set (one
// byte per card).
type HighScore struct {
	Score      uint32
	Slow       float32
	ShotType   *th08.ShotType
	Difficulty *th08.Difficulty
	Progress   HighScoreProgress
	Name       [9]byte
	Date       scorefile.ShortDate
	Continues  uint16
	PlayerNum  uint8

	PlayTime   uint32
	PointItem  uint32
	MissCount  uint32
	BombCount  uint32
	LastSpells uint32
	PauseCount uint32
	TimePoints uint32
	HumanRate  uint32
	CardFlags  [222]byte
}

// HighScoreProgress is how far the run reached: one of the 9 stage slots,
// or AllClear. Unlike Perfect Cherry Blossom's StageProgress, Imperishable
// Night's on-disk progress byte carries no "lost at Last Word" marker --
// Last Word attempts are not summarized in the ranking table at all.
type HighScoreProgress struct {
	Stage    *th08.Stage
	AllClear bool
}

// highScoreProgressTable maps the on-disk progress byte (0..=8) to the
// stage reached; 99 means the run cleared the game.
var highScoreProgressTable = []*th08.Stage{
	th08.StageOne, th08.StageTwo, th08.StageThree,
	th08.StageFourA, th08.StageFourB, th08.StageFive,
	th08.StageFinalA, th08.StageFinalB, th08.StageExtra,
}

func parseHighScoreProgress(raw uint8) (HighScoreProgress, error) {
	if raw == 99 {
		return HighScoreProgress{AllClear: true}, nil
	}
	if int(raw) < len(highScoreProgressTable) {
		return HighScoreProgress{Stage: highScoreProgressTable[raw]}, nil
	}
	return HighScoreProgress{}, fmt.Errorf("th08: invalid high score progress byte %d", raw)
}

func readHighScore(r io.Reader) (HighScore, error) {
	var skip [4]byte
	if _, err := io.ReadFull(r, skip[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}

	var head [12]byte // score, slow, shot_type, difficulty, progress
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}

	var hs HighScore
	hs.Score = binary.LittleEndian.Uint32(head[0:4])
	hs.Slow = math.Float32frombits(binary.LittleEndian.Uint32(head[4:8]))

	shotType, err := th08.ShotTypeByID(head[8])
	if err != nil {
		return HighScore{}, err
	}
	hs.ShotType = shotType

	difficulty, err := th08.DifficultyByID(head[9])
	if err != nil {
		return HighScore{}, err
	}
	hs.Difficulty = difficulty

	progress, err := parseHighScoreProgress(head[10])
	if err != nil {
		return HighScore{}, err
	}
	hs.Progress = progress
	// head[11] is a trailing reserved byte.

	if _, err := io.ReadFull(r, hs.Name[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}

	date, err := scorefile.ReadShortDate(r)
	if err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}
	hs.Date = date

	var continues [2]byte
	if _, err := io.ReadFull(r, continues[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}
	hs.Continues = binary.LittleEndian.Uint16(continues[:])

	var pad1 [28]byte
	if _, err := io.ReadFull(r, pad1[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}

	var playerNum [1]byte
	if _, err := io.ReadFull(r, playerNum[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}
	hs.PlayerNum = playerNum[0]

	var pad2 [31]byte
	if _, err := io.ReadFull(r, pad2[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}

	var stats [32]byte // play_time, point_item, skip(4), miss_count, bomb_count
	if _, err := io.ReadFull(r, stats[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}
	hs.PlayTime = binary.LittleEndian.Uint32(stats[0:4])
	hs.PointItem = binary.LittleEndian.Uint32(stats[4:8])
	// stats[8:12] is a reserved gap.
	hs.MissCount = binary.LittleEndian.Uint32(stats[12:16])
	hs.BombCount = binary.LittleEndian.Uint32(stats[16:20])
	hs.LastSpells = binary.LittleEndian.Uint32(stats[20:24])
	hs.PauseCount = binary.LittleEndian.Uint32(stats[24:28])
	hs.TimePoints = binary.LittleEndian.Uint32(stats[28:32])

	var humanRate [4]byte
	if _, err := io.ReadFull(r, humanRate[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}
	hs.HumanRate = binary.LittleEndian.Uint32(humanRate[:])

	if _, err := io.ReadFull(r, hs.CardFlags[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}

	var tail [2]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return HighScore{}, fmt.Errorf("th08: reading high score: %w", err)
	}

	return hs, nil
}
