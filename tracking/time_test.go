package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGameTimeCounterPauseAccounting(t *testing.T) {
	// Scenario E4: start at t=0 unpaused, pause at t=1000ms, unpause at
	// t=3000ms, observe at t=4000ms. Expected: game_time ~= 4000ms,
	// play_time ~= 2000ms.
	base := time.Unix(0, 0)
	counter := NewGameTimeCounter(base, false)

	counter.Update(base.Add(1000*time.Millisecond), true)
	counter.Update(base.Add(3000*time.Millisecond), false)

	at := counter.Now(base.Add(4000 * time.Millisecond))
	require.Equal(t, 4000*time.Millisecond, at.GameTime())
	require.Equal(t, 2000*time.Millisecond, at.PlayTime())
}

func TestGameTimeCounterStartsPaused(t *testing.T) {
	base := time.Unix(0, 0)
	counter := NewGameTimeCounter(base, true)

	at := counter.Now(base.Add(100 * time.Millisecond))
	require.Zero(t, at.PlayTime(), "play time should stay 0 while paused from start")
	require.Equal(t, 100*time.Millisecond, at.GameTime())
}

func TestEventTimePlayTimeBetweenIsSymmetric(t *testing.T) {
	base := time.Unix(0, 0)
	counter := NewGameTimeCounter(base, false)
	early := counter.Now(base.Add(100 * time.Millisecond))
	late := counter.Now(base.Add(300 * time.Millisecond))

	require.Equal(t, 200*time.Millisecond, early.PlayTimeBetween(late))
	require.Equal(t, 200*time.Millisecond, late.PlayTimeBetween(early))
}
