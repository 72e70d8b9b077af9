package th07

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hakurei-works/thstat/types/th07"
)

// ClearData is one shot type's per-difficulty story/practice clear flag
// bitset, read from a CLRD segment.
type ClearData struct {
	StoryFlags    [6]byte
	PracticeFlags [6]byte
	ShotType      *th07.ShotType
}

func readClearData(r io.Reader) (ClearData, error) {
	var buf [20]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return ClearData{}, fmt.Errorf("th07: reading clear data: %w", err)
	}

	var cd ClearData
	copy(cd.StoryFlags[:], buf[4:10])
	copy(cd.PracticeFlags[:], buf[10:16])
	shotType, err := th07.ShotTypeByID(byte(binary.LittleEndian.Uint32(buf[16:20])))
	if err != nil {
		return ClearData{}, err
	}
	cd.ShotType = shotType
	return cd, nil
}

// StoryFlag returns the story-mode clear flag for d.
func (cd ClearData) StoryFlag(d *th07.Difficulty) byte {
	return cd.StoryFlags[d.ID]
}

// PracticeFlag returns the practice-mode clear flag for d.
func (cd ClearData) PracticeFlag(d *th07.Difficulty) byte {
	return cd.PracticeFlags[d.ID]
}
