package th07

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hakurei-works/thstat/scorefile"
	"github.com/hakurei-works/thstat/types/th07"
)

// StoredTime is the hours/minutes/seconds/milliseconds breakdown stored
// for running time and play time in a PlayData record.
type StoredTime struct {
	Hours, Minutes, Seconds, Milliseconds uint32
}

func readStoredTime(r io.Reader) (StoredTime, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return StoredTime{}, fmt.Errorf("th07: reading stored time: %w", err)
	}
	return StoredTime{
		Hours:        binary.LittleEndian.Uint32(buf[0:4]),
		Minutes:      binary.LittleEndian.Uint32(buf[4:8]),
		Seconds:      binary.LittleEndian.Uint32(buf[8:12]),
		Milliseconds: binary.LittleEndian.Uint32(buf[12:16]),
	}, nil
}

// PlayCount is one (per-difficulty, or total at index 6) attempt/clear
// tally carried in a PlayData record.
type PlayCount struct {
	TotalAttempts uint32
	Attempts      [6]uint32 // indexed by ShotType.ID
	Retries       uint32
	Clears        uint32
	Continues     uint32
	Practices     uint32
}

func readPlayCount(r io.Reader) (PlayCount, error) {
	var buf [44]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return PlayCount{}, fmt.Errorf("th07: reading play count: %w", err)
	}

	pc := PlayCount{TotalAttempts: binary.LittleEndian.Uint32(buf[0:4])}
	for i := 0; i < 6; i++ {
		pc.Attempts[i] = binary.LittleEndian.Uint32(buf[4+4*i : 8+4*i])
	}
	pc.Retries = binary.LittleEndian.Uint32(buf[28:32])
	pc.Clears = binary.LittleEndian.Uint32(buf[32:36])
	pc.Continues = binary.LittleEndian.Uint32(buf[36:40])
	pc.Practices = binary.LittleEndian.Uint32(buf[40:44])
	return pc, nil
}

// AttemptsFor returns the attempt count recorded for shot.
func (pc PlayCount) AttemptsFor(shot *th07.ShotType) uint32 {
	return pc.Attempts[shot.ID]
}

// HighScore is one ranked entry from the HSCR segment.
type HighScore struct {
	Score      uint32
	Slow       float32
	ShotType   *th07.ShotType
	Difficulty *th07.Difficulty
	Progress   th07.StageProgress
	Name       [9]byte
	Date       scorefile.ShortDate
	Continues  uint16
}

// NameString decodes the first 8 bytes of the fixed-size name buffer,
// matching the original decoder's own 8-of-9 byte slice (the 9th byte is
// reserved padding, not part of the displayed name).
func (h HighScore) NameString() string {
	return string(h.Name[:8])
}

func readHighScore(r io.Reader) (HighScore, error) {
	var skip [4]byte
	if _, err := io.ReadFull(r, skip[:]); err != nil {
		return HighScore{}, fmt.Errorf("th07: reading high score: %w", err)
	}

	var fixed [10]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return HighScore{}, fmt.Errorf("th07: reading high score: %w", err)
	}
	score := binary.LittleEndian.Uint32(fixed[0:4])
	slow := math.Float32frombits(binary.LittleEndian.Uint32(fixed[4:8]))

	shotType, err := th07.ShotTypeByID(fixed[8])
	if err != nil {
		return HighScore{}, err
	}
	difficulty, err := th07.DifficultyByID(fixed[9])
	if err != nil {
		return HighScore{}, err
	}

	var progressByte [1]byte
	if _, err := io.ReadFull(r, progressByte[:]); err != nil {
		return HighScore{}, fmt.Errorf("th07: reading high score: %w", err)
	}
	progress, err := th07.ParseStageProgress(progressByte[0])
	if err != nil {
		return HighScore{}, err
	}

	var name [9]byte
	if _, err := io.ReadFull(r, name[:]); err != nil {
		return HighScore{}, fmt.Errorf("th07: reading high score: %w", err)
	}

	date, err := scorefile.ReadShortDate(r)
	if err != nil {
		return HighScore{}, err
	}

	var continuesBuf [2]byte
	if _, err := io.ReadFull(r, continuesBuf[:]); err != nil {
		return HighScore{}, fmt.Errorf("th07: reading high score: %w", err)
	}

	return HighScore{
		Score:      score,
		Slow:       slow,
		ShotType:   shotType,
		Difficulty: difficulty,
		Progress:   progress,
		Name:       name,
		Date:       date,
		Continues:  binary.LittleEndian.Uint16(continuesBuf[:]),
	}, nil
}
