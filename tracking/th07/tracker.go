package th07

import (
	"time"

	"github.com/hakurei-works/thstat/location"
	th07loc "github.com/hakurei-works/thstat/location/th07"
	th07mem "github.com/hakurei-works/thstat/memory/th07"
	"github.com/hakurei-works/thstat/tracking"
)

// Loc is the location type this game's tracker is parameterized over.
type Loc = location.Location

// minLocationDwell matches this game's own location-debounce window.
const minLocationDwell = 750 * time.Millisecond

// borderBreakThreshold is the play-time duration a border run must
// survive to count as broken rather than ended clean.
const borderBreakThreshold = 8750 * time.Millisecond

func config() tracking.Config {
	return tracking.Config{
		TrackLives:     true,
		LivesMode:      tracking.LivesMissCount,
		TrackBombs:     true,
		BombsMode:      tracking.BombsUseCount,
		TrackContinues: true,
		TrackPause:     true,
	}
}

func livesInitial(p *th07mem.PlayerState) uint8 {
	if p.TotalMisses > 255 {
		return 255
	}
	return uint8(p.TotalMisses)
}

func bombsInitial(p *th07mem.PlayerState) uint16 {
	if p.TotalBombs > 65535 {
		return 65535
	}
	return uint16(p.TotalBombs)
}

// trackedState is the piece of a run's progress this package needs to
// remember between ticks that the generic engine has no notion of: the
// border meter's engage time, if any is currently running.
type trackedState struct {
	borderSince *tracking.EventTime
}

// ActiveRun is one in-progress Perfect Cherry Blossom run under
// tracking: the generic engine's TrackerState plus this game's own
// border-meter bookkeeping.
type ActiveRun struct {
	tracker *tracking.TrackerState[Loc]
	state   trackedState
}

func startLocation(run *th07mem.RunState) Loc {
	loc, ok := th07loc.ResolveFromMemory(&run.Stage)
	if !ok {
		return Loc{}
	}
	return loc
}

// NewActiveRun starts tracking a freshly-observed run, dispatching to
// stage practice or a full run depending on the run's own practice flag.
func NewActiveRun(run *th07mem.RunState, now time.Time) *ActiveRun {
	cfg := config()
	var tracker *tracking.TrackerState[Loc]
	if run.Practice {
		tracker = tracking.StartStagePractice[Loc](cfg, now, run.Paused, minLocationDwell,
			startLocation(run), livesInitial(&run.Player), bombsInitial(&run.Player), run.Player.ContinuesUsed)
	} else {
		tracker = tracking.StartRun[Loc](cfg, now, run.Paused, minLocationDwell,
			livesInitial(&run.Player), bombsInitial(&run.Player), run.Player.ContinuesUsed)
	}

	state := trackedState{}
	if run.Player.BorderActive {
		t := tracker.Now(now)
		state.borderSince = &t
	}

	return &ActiveRun{tracker: tracker, state: state}
}

type borderChange int

const (
	borderUnchanged borderChange = iota
	borderStarted
	borderEnded
)

// updateBorder folds a fresh border-active reading into this run's
// border bookkeeping. If the border just ended, elapsed reports how long
// it ran for.
func (a *ActiveRun) updateBorder(now tracking.EventTime, active bool) (change borderChange, elapsed time.Duration) {
	switch {
	case active && a.state.borderSince == nil:
		a.state.borderSince = &now
		return borderStarted, 0
	case !active && a.state.borderSince != nil:
		since := *a.state.borderSince
		elapsed = now.PlayTimeBetween(since)
		a.state.borderSince = nil
		return borderEnded, elapsed
	default:
		return borderUnchanged, 0
	}
}

// Update folds one freshly-read RunState into the run's tracker. Events
// produced this tick (border, miss, bomb, continue, pause) accumulate on
// the underlying tracker and surface in the Output returned by Finish.
func (a *ActiveRun) Update(run *th07mem.RunState, now time.Time) {
	u := a.tracker.BeginUpdate(now)

	loc, ok := th07loc.ResolveFromMemory(&run.Stage)
	u.UpdateLocation(loc, ok)

	if change, elapsed := a.updateBorder(u.Now(), run.Player.BorderActive); change != borderUnchanged {
		switch change {
		case borderStarted:
			push(u, Event{Kind: BorderStart})
		case borderEnded:
			push(u, Event{Kind: BorderEnd, Broken: elapsed >= borderBreakThreshold})
		}
	}

	u.UpdateLives(livesInitial(&run.Player))
	u.UpdateBombs(bombsInitial(&run.Player))
	u.UpdateContinues(run.Player.ContinuesUsed)
	u.UpdatePause(run.Paused)

	u.Finish()
}

// Finish ends the run, dispatching to the matching termination method
// for the kind of tracker this run was started as.
func (a *ActiveRun) Finish(now time.Time, cleared bool) tracking.Output[Loc] {
	switch a.tracker.Kind() {
	case tracking.RunStagePractice:
		return a.tracker.FinishStagePractice(now)
	case tracking.RunSpellPractice:
		return a.tracker.FinishSpellPractice(now)
	default:
		if cleared {
			return a.tracker.RunCleared(now)
		}
		return a.tracker.RunExited(now)
	}
}
