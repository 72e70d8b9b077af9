package tracking

// LivesMode selects how a miss is detected from the raw lives value a
// game exposes.
type LivesMode int

const (
	// LivesStock treats the value as a remaining-lives counter: a miss
	// is a decrease.
	LivesStock LivesMode = iota
	// LivesMissCount treats the value as a cumulative miss counter: a
	// miss is an increase.
	LivesMissCount
)

// LivesTracker detects Miss events from successive lives readings.
type LivesTracker struct {
	mode  LivesMode
	value uint8
}

func NewLivesTracker(mode LivesMode, initial uint8) *LivesTracker {
	return &LivesTracker{mode: mode, value: initial}
}

// Update reports whether this reading represents a miss.
func (t *LivesTracker) Update(value uint8) bool {
	old := t.value
	t.value = value
	if t.mode == LivesMissCount {
		return value > old
	}
	return value < old
}

// BombsMode selects how a bomb use is detected.
type BombsMode int

const (
	// BombsStock treats the value as a remaining-bombs counter: a bomb
	// use is a decrease.
	BombsStock BombsMode = iota
	// BombsUseCount treats the value as a cumulative bomb-use counter: a
	// bomb use is an increase.
	BombsUseCount
	// BombsFromPower is for games with no bomb counter at all: a bomb
	// use is inferred from a power decrease not already explained by a
	// miss in the same tick.
	BombsFromPower
)

// BombsTracker detects Bomb events from successive bomb (or power)
// readings.
type BombsTracker struct {
	mode  BombsMode
	value uint16
}

func NewBombsTracker(mode BombsMode, initial uint16) *BombsTracker {
	return &BombsTracker{mode: mode, value: initial}
}

// Update reports whether this reading represents a bomb use. justMissed
// suppresses a power-drop false positive in BombsFromPower mode, where a
// miss also drops power but should not itself be reported as a bomb.
func (t *BombsTracker) Update(value uint16, justMissed bool) bool {
	old := t.value
	t.value = value
	switch t.mode {
	case BombsUseCount:
		return value > old
	case BombsFromPower:
		return value < old && !justMissed
	default:
		return value < old
	}
}

// ContinuesTracker detects Continue events from a cumulative
// continues-used counter.
type ContinuesTracker struct {
	value uint8
}

func NewContinuesTracker(initial uint8) *ContinuesTracker {
	return &ContinuesTracker{value: initial}
}

func (t *ContinuesTracker) Update(value uint8) bool {
	old := t.value
	t.value = value
	return value > old
}

// PauseTracker detects Pause/Unpause transitions from a paused boolean.
type PauseTracker struct {
	paused bool
}

func NewPauseTracker(initial bool) *PauseTracker {
	return &PauseTracker{paused: initial}
}

func (t *PauseTracker) Paused() bool { return t.paused }

// Update reports which of the two transitions, if any, just happened.
// At most one of pausedNow/unpausedNow is ever true.
func (t *PauseTracker) Update(paused bool) (pausedNow, unpausedNow bool) {
	old := t.paused
	t.paused = paused
	return !old && paused, old && !paused
}
