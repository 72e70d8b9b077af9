package tracking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBombsFromPowerSuppressesMissDrop(t *testing.T) {
	// Scenario E3: lives decrease by 1 AND power decreases by 16 in the
	// same tick, bomb tracker in "derive from power" mode. A miss alone
	// must not also be reported as a bomb.
	bombs := NewBombsTracker(BombsFromPower, 100)
	require.False(t, bombs.Update(84, true), "a power drop explained by a miss should not report a bomb")
}

func TestBombsFromPowerReportsUnexplainedDrop(t *testing.T) {
	bombs := NewBombsTracker(BombsFromPower, 100)
	require.True(t, bombs.Update(84, false), "a power drop with no miss should report a bomb")
}

func TestLivesStockMissOnDecrease(t *testing.T) {
	lives := NewLivesTracker(LivesStock, 3)
	require.False(t, lives.Update(3), "unchanged lives should not report a miss")
	require.True(t, lives.Update(2), "decreased lives should report a miss")
}

func TestLivesMissCountOnIncrease(t *testing.T) {
	lives := NewLivesTracker(LivesMissCount, 0)
	require.True(t, lives.Update(1), "increased miss counter should report a miss")
}

func TestContinuesTrackerOnIncrease(t *testing.T) {
	continues := NewContinuesTracker(0)
	require.False(t, continues.Update(0), "unchanged continues should not report a use")
	require.True(t, continues.Update(1), "increased continues should report a use")
}

func TestPauseTrackerTransitions(t *testing.T) {
	pause := NewPauseTracker(false)

	pausedNow, unpausedNow := pause.Update(true)
	require.True(t, pausedNow)
	require.False(t, unpausedNow)

	pausedNow, unpausedNow = pause.Update(true)
	require.False(t, pausedNow)
	require.False(t, unpausedNow)

	pausedNow, unpausedNow = pause.Update(false)
	require.False(t, pausedNow)
	require.True(t, unpausedNow)
}
