package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fullConfig() Config {
	return Config{
		TrackLives:     true,
		LivesMode:      LivesStock,
		TrackBombs:     true,
		BombsMode:      BombsStock,
		TrackContinues: true,
		TrackPause:     true,
	}
}

func TestStartRunAndFullUpdateCycle(t *testing.T) {
	base := time.Unix(0, 0)
	tracker := StartRun[string](fullConfig(), base, false, 100*time.Millisecond, 3, 3, 0)

	tick := base.Add(200 * time.Millisecond)
	u := tracker.BeginUpdate(tick)
	u.PushGameSpecificEvent("border-start")
	u.UpdateLocation("Stage One", true)
	u.UpdateLives(2) // miss
	u.UpdateBombs(3) // unaffected
	u.UpdateContinues(0)
	u.UpdatePause(false)
	u.Finish()

	out := tracker.RunExited(tick)
	require.Len(t, out.Events, 2, "want game-specific + miss")
	require.Equal(t, EventGameSpecific, out.Events[0].Kind)
	require.Equal(t, "border-start", out.Events[0].GameSpecific)
	require.Equal(t, EventMiss, out.Events[1].Kind)
}

func TestFinishPanicsOnIncompleteUpdate(t *testing.T) {
	base := time.Unix(0, 0)
	tracker := StartRun[string](fullConfig(), base, false, 100*time.Millisecond, 3, 3, 0)

	u := tracker.BeginUpdate(base)
	u.UpdateLocation("X", true)
	u.UpdateLives(3)
	// bombs/continues/pause never updated.

	require.Panics(t, func() { u.Finish() }, "Finish should panic when a tracked quantity was never updated")
}

func TestUpdateLivesPanicsWhenNotTracked(t *testing.T) {
	cfg := Config{TrackPause: true}
	base := time.Unix(0, 0)
	tracker := StartRun[string](cfg, base, false, 100*time.Millisecond, 0, 0, 0)
	u := tracker.BeginUpdate(base)

	require.Panics(t, func() { u.UpdateLives(1) })
}

func TestRunKindMismatchPanics(t *testing.T) {
	base := time.Unix(0, 0)
	tracker := StartStagePractice[string](fullConfig(), base, false, 100*time.Millisecond, "Stage Start", 3, 3, 0)

	require.Panics(t, func() { tracker.RunCleared(base) }, "RunCleared should panic on a stage-practice tracker")
}

func TestSpellPracticeIgnoresLocationUpdates(t *testing.T) {
	base := time.Unix(0, 0)
	tracker := StartSpellPractice[string](fullConfig(), base, false, 100*time.Millisecond, "Frost Sign", 3, 3, 0)

	u := tracker.BeginUpdate(base.Add(50 * time.Millisecond))
	u.UpdateLocation("somewhere else", true) // must be ignored
	u.UpdateLives(3)
	u.UpdateBombs(3)
	u.UpdateContinues(0)
	u.UpdatePause(false)
	u.Finish() // must not panic even though UpdateLocation was never meaningfully called

	loc, ok := tracker.Location()
	require.True(t, ok)
	require.Equal(t, "Frost Sign", loc, "fixed spell-practice location should never change")
}

func TestPauseAccountingThroughUpdate(t *testing.T) {
	// Scenario E4 driven through the full Update/Finish cycle rather
	// than GameTimeCounter directly.
	base := time.Unix(0, 0)
	tracker := StartRun[string](fullConfig(), base, false, 100*time.Millisecond, 3, 3, 0)

	step := func(ms int, paused bool) {
		now := base.Add(time.Duration(ms) * time.Millisecond)
		u := tracker.BeginUpdate(now)
		u.UpdateLocation("Stage One", true)
		u.UpdateLives(3)
		u.UpdateBombs(3)
		u.UpdateContinues(0)
		u.UpdatePause(paused)
		u.Finish()
	}

	step(1000, true)
	step(3000, false)
	step(4000, false)

	out := tracker.RunExited(base.Add(4000 * time.Millisecond))

	var sawPause, sawUnpause bool
	for _, e := range out.Events {
		switch e.Kind {
		case EventPause:
			sawPause = true
		case EventUnpause:
			sawUnpause = true
		}
	}
	require.True(t, sawPause)
	require.True(t, sawUnpause)
	require.Equal(t, 4000*time.Millisecond, out.Elapsed.GameTime())
	require.Equal(t, 2000*time.Millisecond, out.Elapsed.PlayTime())
}
