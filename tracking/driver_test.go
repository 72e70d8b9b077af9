package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeInspector struct {
	active     bool
	initReady  bool
	ticksLeft  int
	terminateN int
}

func (f *fakeInspector) RunIsActive() (bool, error) { return f.active, nil }

func (f *fakeInspector) Init(now time.Time) (*TrackerState[string], bool, error) {
	if !f.initReady {
		return nil, false, nil
	}
	return StartRun[string](fullConfig(), now, false, 100*time.Millisecond, 3, 3, 0), true, nil
}

func (f *fakeInspector) Tick(tracker *TrackerState[string], now time.Time) (TickKind, Output[string], error) {
	if f.ticksLeft > 0 {
		f.ticksLeft--
		u := tracker.BeginUpdate(now)
		u.UpdateLocation("Stage One", true)
		u.UpdateLives(3)
		u.UpdateBombs(3)
		u.UpdateContinues(0)
		u.UpdatePause(false)
		u.Finish()
		return TickContinue, Output[string]{}, nil
	}
	out := tracker.RunCleared(now)
	return TickFinished, out, nil
}

func (f *fakeInspector) Terminate(tracker *TrackerState[string], now time.Time) Output[string] {
	f.terminateN++
	return tracker.RunExited(now)
}

func TestDriverFullLifecycle(t *testing.T) {
	inspector := &fakeInspector{active: true, initReady: true, ticksLeft: 1}
	driver := NewDriver[string](inspector, nil)
	base := time.Unix(0, 0)

	_, ok, err := driver.Tick(base)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, DriverWaitingForInit, driver.Phase())

	// Not enough time has passed for the warm-up delay yet.
	_, ok, _ = driver.Tick(base.Add(500 * time.Millisecond))
	require.False(t, ok)
	require.Equal(t, DriverWaitingForInit, driver.Phase(), "still waiting before warm-up elapses")

	_, ok, _ = driver.Tick(base.Add(1100 * time.Millisecond))
	require.False(t, ok)
	require.Equal(t, DriverActive, driver.Phase(), "active once warm-up has elapsed")

	_, ok, _ = driver.Tick(base.Add(1200 * time.Millisecond))
	require.False(t, ok, "should not finish yet, one tick remains")

	out, ok, err := driver.Tick(base.Add(1300 * time.Millisecond))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, out.Cleared)
	require.Equal(t, DriverWaitingForGame, driver.Phase(), "back to WaitingForGame after completion")
}

func TestDriverCloseTerminatesActiveRun(t *testing.T) {
	inspector := &fakeInspector{active: true, initReady: true, ticksLeft: 100}
	driver := NewDriver[string](inspector, nil)
	base := time.Unix(0, 0)

	driver.Tick(base)
	driver.Tick(base.Add(1100 * time.Millisecond))
	require.Equal(t, DriverActive, driver.Phase())

	out, ok := driver.Close(base.Add(1200 * time.Millisecond))
	require.True(t, ok, "Close should report an in-progress run")
	require.False(t, out.Cleared, "process-exit termination should report not cleared")
	require.Equal(t, 1, inspector.terminateN)
	require.Equal(t, DriverWaitingForGame, driver.Phase())
}

func TestDriverCloseNoopWhenNotActive(t *testing.T) {
	inspector := &fakeInspector{active: false}
	driver := NewDriver[string](inspector, nil)
	_, ok := driver.Close(time.Unix(0, 0))
	require.False(t, ok, "Close should be a no-op when no run is active")
}

func TestDriverReturnsToWaitingForGameIfProcessDropsDuringWarmup(t *testing.T) {
	inspector := &fakeInspector{active: true, initReady: true}
	driver := NewDriver[string](inspector, nil)
	base := time.Unix(0, 0)

	driver.Tick(base)
	require.Equal(t, DriverWaitingForInit, driver.Phase())

	inspector.active = false
	driver.Tick(base.Add(200 * time.Millisecond))
	require.Equal(t, DriverWaitingForGame, driver.Phase(), "should drop back once the run disappears mid warm-up")
}
