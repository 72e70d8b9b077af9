package tracking

import (
	"time"

	"go.uber.org/zap"
)

// DriverPhase is the current state of a Driver's three-state FSM (§4.12).
type DriverPhase int

const (
	DriverWaitingForGame DriverPhase = iota
	DriverWaitingForInit
	DriverActive
)

func (p DriverPhase) String() string {
	switch p {
	case DriverWaitingForGame:
		return "WaitingForGame"
	case DriverWaitingForInit:
		return "WaitingForInit"
	case DriverActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// warmup is the delay between detecting an active game and constructing
// a tracker for it, giving the attached process time to finish writing
// its own internal state after "start" is pressed (§4.12).
const warmup = 1000 * time.Millisecond

// TickKind is what Inspector.Tick observed this poll.
type TickKind int

const (
	TickContinue TickKind = iota
	TickLoadingStage
	TickFinished
)

// Inspector is the game-specific glue a Driver polls each tick; it
// bridges the attached process's memory reader to the generic tracker
// engine.
type Inspector[L comparable] interface {
	// RunIsActive reports whether a run is currently active in the
	// attached process -- the WaitingForGame/WaitingForInit query.
	RunIsActive() (bool, error)

	// Init attempts to construct a tracker for the run now that the
	// warm-up delay has elapsed. ok is false if the attached process's
	// state was not yet usable and initialization should be retried
	// next tick.
	Init(now time.Time) (tracker *TrackerState[L], ok bool, err error)

	// Tick reads the attached process's current state and dispatches
	// into tracker, returning what happened this poll. When kind is
	// TickFinished, output is the tracker's final output.
	Tick(tracker *TrackerState[L], now time.Time) (kind TickKind, output Output[L], err error)

	// Terminate ends tracking for tracker outside the normal Tick flow
	// (the attached process exited mid-run); it must call whichever of
	// TrackerState's termination methods matches tracker.Kind().
	Terminate(tracker *TrackerState[L], now time.Time) Output[L]
}

// Driver is the per-attached-process tracking loop (T2): it detects a
// run starting, waits out the warm-up delay, then feeds ticks into a
// TrackerState until the run ends, yielding its Output.
type Driver[L comparable] struct {
	phase     DriverPhase
	waitStart time.Time
	tracker   *TrackerState[L]
	inspector Inspector[L]
	log       *zap.Logger
}

// NewDriver creates a driver in its initial WaitingForGame phase. logger
// may be nil, in which case the driver logs nothing -- callers outside a
// long-lived CLI loop have no reason to wire one up.
func NewDriver[L comparable](inspector Inspector[L], logger *zap.Logger) *Driver[L] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver[L]{phase: DriverWaitingForGame, inspector: inspector, log: logger}
}

// Phase reports the driver's current FSM state.
func (d *Driver[L]) Phase() DriverPhase { return d.phase }

// Tick advances the driver by one poll. ok is true only when a run just
// concluded, in which case output carries its result.
func (d *Driver[L]) Tick(now time.Time) (output Output[L], ok bool, err error) {
	switch d.phase {
	case DriverWaitingForGame:
		active, err := d.inspector.RunIsActive()
		if err != nil {
			d.log.Warn("run-is-active check failed", zap.Error(err))
			return Output[L]{}, false, err
		}
		if active {
			d.log.Debug("run detected, entering warm-up")
			d.phase = DriverWaitingForInit
			d.waitStart = now
		}
		return Output[L]{}, false, nil

	case DriverWaitingForInit:
		active, err := d.inspector.RunIsActive()
		if err != nil {
			d.log.Warn("run-is-active check failed during warm-up", zap.Error(err))
			return Output[L]{}, false, err
		}
		if !active {
			d.log.Debug("run disappeared during warm-up")
			d.phase = DriverWaitingForGame
			return Output[L]{}, false, nil
		}
		if now.Sub(d.waitStart) >= warmup {
			tracker, ready, err := d.inspector.Init(now)
			if err != nil {
				d.log.Warn("tracker initialization failed", zap.Error(err))
				return Output[L]{}, false, err
			}
			if ready {
				d.tracker = tracker
				d.phase = DriverActive
			}
		}
		return Output[L]{}, false, nil

	case DriverActive:
		kind, out, err := d.inspector.Tick(d.tracker, now)
		if err != nil {
			d.log.Warn("tick failed on active tracker", zap.Error(err))
			return Output[L]{}, false, err
		}
		if kind == TickFinished {
			d.tracker = nil
			d.phase = DriverWaitingForGame
			return out, true, nil
		}
		return Output[L]{}, false, nil

	default:
		return Output[L]{}, false, nil
	}
}

// Close terminates tracking for any run in progress, as on attached
// process exit, reporting its output if one was active.
func (d *Driver[L]) Close(now time.Time) (output Output[L], ok bool) {
	if d.phase != DriverActive || d.tracker == nil {
		return Output[L]{}, false
	}
	d.log.Info("attached process gone, terminating active run")
	out := d.inspector.Terminate(d.tracker, now)
	d.tracker = nil
	d.phase = DriverWaitingForGame
	return out, true
}
