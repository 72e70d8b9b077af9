package tracking

import "time"

// RunKind tags what a TrackerState was started for; every termination
// method checks it matches and panics otherwise (§4.11: "the type must
// enforce that the run-kind tag matches; violation is a fatal invariant
// check").
type RunKind int

const (
	RunFull RunKind = iota
	RunStagePractice
	RunSpellPractice
)

func (k RunKind) String() string {
	switch k {
	case RunFull:
		return "FullRun"
	case RunStagePractice:
		return "StagePractice"
	case RunSpellPractice:
		return "SpellPractice"
	default:
		return "Unknown"
	}
}

// Config selects which of the four orthogonal tracked quantities (§4.11)
// a TrackerState owns, and their starting values. A nil mode pointer
// (expressed here via the Track* bools) means that quantity is not
// tracked at all, mirroring the reference builder's NotTracked marker
// type -- UpdateLives, UpdateBombs and UpdateContinues panic for an
// untracked quantity rather than silently accepting it; UpdatePause is a
// no-op when pause is not tracked.
type Config struct {
	TrackLives bool
	LivesMode  LivesMode

	TrackBombs bool
	BombsMode  BombsMode

	TrackContinues bool

	TrackPause bool
}

// Output is what a terminated TrackerState hands back to its caller: the
// run's full event log plus its final committed location and elapsed
// time.
type Output[L comparable] struct {
	Kind        RunKind
	Cleared     bool
	Events      []Event
	Elapsed     EventTime
	Location    L
	HasLocation bool
}

// TrackerState owns one run's timer, location debouncer, tracked-quantity
// witnesses, and accumulated event log (§3.3).
type TrackerState[L comparable] struct {
	kind   RunKind
	time   *GameTimeCounter
	filter *LocationResolveFilter[L]

	lives     *LivesTracker
	bombs     *BombsTracker
	continues *ContinuesTracker
	pause     *PauseTracker

	events      []Event
	location    L
	hasLocation bool
}

func newTrackerState[L comparable](kind RunKind, cfg Config, now time.Time, initialPaused bool, livesInitial uint8, bombsInitial uint16, continuesInitial uint8) *TrackerState[L] {
	s := &TrackerState[L]{
		kind: kind,
		time: NewGameTimeCounter(now, cfg.TrackPause && initialPaused),
	}
	if cfg.TrackLives {
		s.lives = NewLivesTracker(cfg.LivesMode, livesInitial)
	}
	if cfg.TrackBombs {
		s.bombs = NewBombsTracker(cfg.BombsMode, bombsInitial)
	}
	if cfg.TrackContinues {
		s.continues = NewContinuesTracker(continuesInitial)
	}
	if cfg.TrackPause {
		s.pause = NewPauseTracker(initialPaused)
	}
	return s
}

// StartRun begins tracking a full run.
func StartRun[L comparable](cfg Config, now time.Time, initialPaused bool, minLocationDwell time.Duration, livesInitial uint8, bombsInitial uint16, continuesInitial uint8) *TrackerState[L] {
	s := newTrackerState[L](RunFull, cfg, now, initialPaused, livesInitial, bombsInitial, continuesInitial)
	var zero L
	s.filter = NewLocationResolveFilter(minLocationDwell, s.time.StartTime(), zero)
	return s
}

// StartStagePractice begins tracking a stage-practice run, seeded with
// the practiced stage's start location.
func StartStagePractice[L comparable](cfg Config, now time.Time, initialPaused bool, minLocationDwell time.Duration, startLocation L, livesInitial uint8, bombsInitial uint16, continuesInitial uint8) *TrackerState[L] {
	s := newTrackerState[L](RunStagePractice, cfg, now, initialPaused, livesInitial, bombsInitial, continuesInitial)
	s.filter = NewLocationResolveFilter(minLocationDwell, s.time.StartTime(), startLocation)
	return s
}

// StartSpellPractice begins tracking a spell-practice run. Its location
// is fixed at construction and every subsequent UpdateLocation call is a
// no-op for it.
func StartSpellPractice[L comparable](cfg Config, now time.Time, initialPaused bool, minLocationDwell time.Duration, location L, livesInitial uint8, bombsInitial uint16, continuesInitial uint8) *TrackerState[L] {
	s := newTrackerState[L](RunSpellPractice, cfg, now, initialPaused, livesInitial, bombsInitial, continuesInitial)
	s.filter = NewSeededLocationResolveFilter(minLocationDwell, s.time.StartTime(), location)
	s.location, s.hasLocation = location, true
	return s
}

// Kind reports what this tracker was started as.
func (s *TrackerState[L]) Kind() RunKind { return s.kind }

// Now derives the current EventTime from this tracker's clock.
func (s *TrackerState[L]) Now(now time.Time) EventTime { return s.time.Now(now) }

// Location returns the tracker's current committed location, if any.
func (s *TrackerState[L]) Location() (L, bool) { return s.location, s.hasLocation }

func (s *TrackerState[L]) drain(now time.Time, cleared bool) Output[L] {
	return Output[L]{
		Kind:        s.kind,
		Cleared:     cleared,
		Events:      s.events,
		Elapsed:     s.time.Now(now),
		Location:    s.location,
		HasLocation: s.hasLocation,
	}
}

// RunCleared terminates a full run that was cleared.
func (s *TrackerState[L]) RunCleared(now time.Time) Output[L] {
	requireKind(s.kind, RunFull, "RunCleared")
	return s.drain(now, true)
}

// RunExited terminates a full run that was not cleared (quit or the
// attached process exited mid-run).
func (s *TrackerState[L]) RunExited(now time.Time) Output[L] {
	requireKind(s.kind, RunFull, "RunExited")
	return s.drain(now, false)
}

// FinishStagePractice terminates a stage-practice run.
func (s *TrackerState[L]) FinishStagePractice(now time.Time) Output[L] {
	requireKind(s.kind, RunStagePractice, "FinishStagePractice")
	return s.drain(now, false)
}

// FinishSpellPractice terminates a spell-practice run.
func (s *TrackerState[L]) FinishSpellPractice(now time.Time) Output[L] {
	requireKind(s.kind, RunSpellPractice, "FinishSpellPractice")
	return s.drain(now, false)
}

func requireKind(actual, expected RunKind, method string) {
	if actual != expected {
		panic("tracking: " + method + " called on a tracker started as " + actual.String())
	}
}
