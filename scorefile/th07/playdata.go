package th07

import (
	"fmt"
	"io"

	"github.com/hakurei-works/thstat/types/th07"
)

// PlayData is the PLST segment: aggregate running/play time plus, per
// difficulty (and a 7th total slot), the attempt/clear/continue/practice
// tallies.
type PlayData struct {
	RunningTime StoredTime
	PlayTime    StoredTime
	PlayCounts  [7]PlayCount
}

func readPlayData(r io.Reader) (PlayData, error) {
	var skip [4]byte
	if _, err := io.ReadFull(r, skip[:]); err != nil {
		return PlayData{}, fmt.Errorf("th07: reading play data: %w", err)
	}

	runningTime, err := readStoredTime(r)
	if err != nil {
		return PlayData{}, err
	}
	playTime, err := readStoredTime(r)
	if err != nil {
		return PlayData{}, err
	}

	var pd PlayData
	pd.RunningTime = runningTime
	pd.PlayTime = playTime
	for i := range pd.PlayCounts {
		pc, err := readPlayCount(r)
		if err != nil {
			return PlayData{}, err
		}
		pd.PlayCounts[i] = pc
	}
	return pd, nil
}

// PlayCountFor returns the PlayCount for difficulty d.
func (pd PlayData) PlayCountFor(d *th07.Difficulty) PlayCount {
	return pd.PlayCounts[d.ID]
}

// TotalPlayCount returns the 7th ("total across every difficulty") slot.
func (pd PlayData) TotalPlayCount() PlayCount {
	return pd.PlayCounts[6]
}
