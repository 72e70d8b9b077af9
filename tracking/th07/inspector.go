package th07

import (
	"time"

	"github.com/hakurei-works/thstat/memory"
	th07mem "github.com/hakurei-works/thstat/memory/th07"
	"github.com/hakurei-works/thstat/tracking"
)

// Inspector drives the generic tracking.Driver against an attached
// Perfect Cherry Blossom process.
type Inspector struct {
	handle memory.ProcessHandle
	access *th07mem.MemoryAccess
	active *ActiveRun
}

// NewInspector builds an Inspector reading through access from handle.
func NewInspector(handle memory.ProcessHandle, access *th07mem.MemoryAccess) *Inspector {
	return &Inspector{handle: handle, access: access}
}

func (i *Inspector) snapshot() (th07mem.GameState, error) {
	snap, err := i.access.ReadSnapshot(i.handle)
	if err != nil {
		return th07mem.GameState{}, err
	}
	return th07mem.NewGameState(snap)
}

// RunIsActive reports whether a run worth tracking is currently in
// progress.
func (i *Inspector) RunIsActive() (bool, error) {
	if !i.handle.IsRunning() {
		return false, nil
	}
	snap, err := i.access.ReadSnapshot(i.handle)
	if err != nil {
		return false, err
	}
	return th07mem.RunIsActive(snap), nil
}

// Init builds the tracker for a run once the driver's warm-up delay has
// elapsed, reading the run's starting state fresh.
func (i *Inspector) Init(now time.Time) (*tracking.TrackerState[Loc], bool, error) {
	state, err := i.snapshot()
	if err != nil {
		return nil, false, err
	}
	if state.Run == nil {
		return nil, false, nil
	}
	i.active = NewActiveRun(state.Run, now)
	return i.active.tracker, true, nil
}

// Tick folds the current snapshot into the active run, reporting
// whether the run continues, is merely loading between stages, or has
// ended.
func (i *Inspector) Tick(tracker *tracking.TrackerState[Loc], now time.Time) (tracking.TickKind, tracking.Output[Loc], error) {
	state, err := i.snapshot()
	if err != nil {
		return tracking.TickContinue, tracking.Output[Loc]{}, err
	}

	switch state.Kind {
	case th07mem.KindInGame:
		i.active.Update(state.Run, now)
		return tracking.TickContinue, tracking.Output[Loc]{}, nil
	case th07mem.KindLoadingStage:
		return tracking.TickLoadingStage, tracking.Output[Loc]{}, nil
	case th07mem.KindGameOver:
		return tracking.TickFinished, i.active.Finish(now, state.Cleared), nil
	case th07mem.KindRetryingGame:
		return tracking.TickFinished, i.active.Finish(now, false), nil
	default:
		return tracking.TickFinished, i.active.Finish(now, false), nil
	}
}

// Terminate ends the active run when the attached process disappears
// mid-run, always reporting a clear as not achieved.
func (i *Inspector) Terminate(tracker *tracking.TrackerState[Loc], now time.Time) tracking.Output[Loc] {
	return i.active.Finish(now, false)
}
