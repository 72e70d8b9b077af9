package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocationResolveFilterDebounce(t *testing.T) {
	// Scenario E5: min_dwell=500ms. Snapshots at t=0,100,200,300,400,1000
	// with locations A,B,B,B,B,B. Expected: one commit to B, timestamped
	// at t=600ms (the instant B had held for 500ms of play time).
	base := time.Unix(0, 0)
	counter := NewGameTimeCounter(base, false)
	at := func(ms int) EventTime { return counter.Now(base.Add(time.Duration(ms) * time.Millisecond)) }

	filter := NewLocationResolveFilter(500*time.Millisecond, at(0), "A")

	ticks := []struct {
		ms       int
		location string
	}{
		{100, "B"},
		{200, "B"},
		{300, "B"},
		{400, "B"},
		{1000, "B"},
	}

	commits := 0
	var committedPlayTime time.Duration
	for _, tick := range ticks {
		if filter.UpdateLocation(at(tick.ms), tick.location) {
			commits++
			committedPlayTime = filter.CommittedAt().PlayTime()
		}
	}

	require.Equal(t, 1, commits)
	require.Equal(t, 600*time.Millisecond, committedPlayTime)

	loc, ok := filter.Committed()
	require.True(t, ok)
	require.Equal(t, "B", loc)
}

func TestLocationResolveFilterResetsOnChange(t *testing.T) {
	base := time.Unix(0, 0)
	counter := NewGameTimeCounter(base, false)
	at := func(ms int) EventTime { return counter.Now(base.Add(time.Duration(ms) * time.Millisecond)) }

	filter := NewLocationResolveFilter(500*time.Millisecond, at(0), "A")
	filter.UpdateLocation(at(100), "B")

	// Flickers back to A before B ever dwells long enough to commit;
	// this restarts A's own candidacy clock at t=300.
	require.False(t, filter.UpdateLocation(at(300), "A"), "should not commit on a flicker back to the original location")
	require.False(t, filter.UpdateLocation(at(700), "A"), "only 400ms has passed since A's candidacy restarted")

	_, ok := filter.Committed()
	require.False(t, ok, "should have no commit yet")

	// A has now genuinely held since t=300; by t=900 that's 600ms >= 500ms.
	require.True(t, filter.UpdateLocation(at(900), "A"), "A has held for 500ms since t=300")
	require.Equal(t, 800*time.Millisecond, filter.CommittedAt().PlayTime())
}

func TestLocationResolveFilterSeeded(t *testing.T) {
	base := time.Unix(0, 0)
	counter := NewGameTimeCounter(base, false)
	now := counter.Now(base)

	filter := NewSeededLocationResolveFilter(500*time.Millisecond, now, "Fixed")
	loc, ok := filter.Committed()
	require.True(t, ok)
	require.Equal(t, "Fixed", loc)
}
