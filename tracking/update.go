package tracking

import "time"

// Update drives one tick's worth of changes into a TrackerState. Obtain
// one via TrackerState.BeginUpdate, push whatever events apply, update
// each tracked quantity, and call Finish exactly once. Finish panics if a
// quantity this tracker was configured to track was never updated, or if
// a full/stage-practice tracker's location was never updated -- the
// fixed per-tick order is §4.11's: game-specific events, location, lives,
// bombs, continues, pause.
type Update[L comparable] struct {
	state *TrackerState[L]
	now   time.Time
	at    EventTime

	justMissed bool

	locationDone  bool
	livesDone     bool
	bombsDone     bool
	continuesDone bool
	pauseDone     bool
	finished      bool
}

// BeginUpdate starts a new tick's update.
func (s *TrackerState[L]) BeginUpdate(now time.Time) *Update[L] {
	return &Update[L]{
		state:        s,
		now:          now,
		at:           s.time.Now(now),
		locationDone: s.kind == RunSpellPractice,
	}
}

// Now returns this update's EventTime.
func (u *Update[L]) Now() EventTime { return u.at }

func (u *Update[L]) push(e Event) {
	e.Time = u.at
	u.state.events = append(u.state.events, e)
}

// PushEvent appends a standard (non-game-specific) event.
func (u *Update[L]) PushEvent(kind EventKind) {
	if kind == EventGameSpecific {
		panic("tracking: use PushGameSpecificEvent for game-specific events")
	}
	u.push(Event{Kind: kind})
}

// PushGameSpecificEvent appends a game-specific event carrying an
// arbitrary per-game payload.
func (u *Update[L]) PushGameSpecificEvent(payload any) {
	u.push(Event{Kind: EventGameSpecific, GameSpecific: payload})
}

// UpdateLocation feeds a freshly resolved location (ok false if none
// resolved this tick) into the debouncer, committing a location change
// and updating the tracker's current location if the dwell threshold was
// crossed. A no-op for spell-practice trackers, whose location is fixed.
func (u *Update[L]) UpdateLocation(location L, ok bool) {
	if u.state.kind != RunSpellPractice && ok {
		if u.state.filter.UpdateLocation(u.at, location) {
			if loc, has := u.state.filter.Committed(); has {
				u.state.location, u.state.hasLocation = loc, has
			}
		}
	}
	u.locationDone = true
}

// ExitLocation records that no location could be resolved this tick.
func (u *Update[L]) ExitLocation() {
	u.state.hasLocation = false
	u.locationDone = true
}

// UpdateLives feeds a fresh lives reading, pushing Miss if detected.
// Panics if this tracker was not configured to track lives.
func (u *Update[L]) UpdateLives(value uint8) {
	if u.state.lives == nil {
		panic("tracking: lives is not tracked by this tracker")
	}
	if u.state.lives.Update(value) {
		u.justMissed = true
		u.PushEvent(EventMiss)
	}
	u.livesDone = true
}

// UpdateBombs feeds a fresh bombs (or power, in BombsFromPower mode)
// reading, pushing Bomb if detected. Panics if this tracker was not
// configured to track bombs.
func (u *Update[L]) UpdateBombs(value uint16) {
	if u.state.bombs == nil {
		panic("tracking: bombs is not tracked by this tracker")
	}
	if u.state.bombs.Update(value, u.justMissed) {
		u.PushEvent(EventBomb)
	}
	u.bombsDone = true
}

// UpdateContinues feeds a fresh continues-used reading, pushing Continue
// if detected. Panics if this tracker was not configured to track
// continues.
func (u *Update[L]) UpdateContinues(value uint8) {
	if u.state.continues == nil {
		panic("tracking: continues is not tracked by this tracker")
	}
	if u.state.continues.Update(value) {
		u.PushEvent(EventContinue)
	}
	u.continuesDone = true
}

// UpdatePause feeds a fresh paused reading, pushing Pause/Unpause on
// transition and adjusting the tracker's timer. A no-op (but still
// satisfies Finish's completeness check) if this tracker was not
// configured to track pause.
func (u *Update[L]) UpdatePause(paused bool) {
	if u.state.pause != nil {
		pausedNow, unpausedNow := u.state.pause.Update(paused)
		switch {
		case pausedNow:
			u.PushEvent(EventPause)
			u.state.time.Pause(u.now)
		case unpausedNow:
			u.PushEvent(EventUnpause)
			u.state.time.Unpause(u.now)
		}
	}
	u.pauseDone = true
}

// Finish completes the update, panicking if any quantity this tracker
// tracks (or, for full/stage-practice runs, the location) was never fed
// a reading this tick.
func (u *Update[L]) Finish() {
	if u.finished {
		panic("tracking: Finish called twice on the same update")
	}
	if !u.locationDone {
		panic("tracking: location not updated before Finish")
	}
	if u.state.lives != nil && !u.livesDone {
		panic("tracking: lives not updated before Finish")
	}
	if u.state.bombs != nil && !u.bombsDone {
		panic("tracking: bombs not updated before Finish")
	}
	if u.state.continues != nil && !u.continuesDone {
		panic("tracking: continues not updated before Finish")
	}
	if u.state.pause != nil && !u.pauseDone {
		panic("tracking: pause not updated before Finish")
	}
	u.finished = true
}
