// Package tracking turns a stream of polled RunState snapshots into a
// sequence of gameplay events (misses, bombs, continues, pauses, location
// changes) plus game-specific extras, independent of which game produced
// the snapshots.
package tracking

import "time"

// EventTime is the timestamp attached to every emitted Event: an instant
// suitable for duration arithmetic, a wall-clock timestamp, and both the
// elapsed game time and elapsed *play* time (which excludes time spent
// paused) since the owning GameTimeCounter started.
//
// Unlike the reference implementation, which stamps these ambiently via
// Instant::now()/SystemTime::now() inside GameTimeCounter's own methods,
// every method here takes the current time as an explicit parameter. This
// keeps the whole package free of a hidden wall-clock dependency, so
// tracker behavior (including the debounce scenarios below) can be
// verified against a sequence of chosen instants rather than real time.
type EventTime struct {
	instant   time.Time
	timestamp time.Time
	gameTime  time.Duration
	playTime  time.Duration
}

func (e EventTime) Instant() time.Time      { return e.instant }
func (e EventTime) Timestamp() time.Time    { return e.timestamp }
func (e EventTime) GameTime() time.Duration { return e.gameTime }
func (e EventTime) PlayTime() time.Duration { return e.playTime }

// TimeBetween returns the absolute wall-clock duration between two event
// times, regardless of which came first.
func (e EventTime) TimeBetween(other EventTime) time.Duration {
	return absDuration(e.instant.Sub(other.instant))
}

// PlayTimeBetween returns the absolute play-time duration between two
// event times, regardless of which came first.
func (e EventTime) PlayTimeBetween(other EventTime) time.Duration {
	return absDuration(e.playTime - other.playTime)
}

// advance returns a copy of e as though d more time had passed with no
// pause in between -- used by LocationResolveFilter to stamp a commit at
// the instant its dwell threshold was actually crossed, rather than at
// the instant a poll happened to notice it.
func (e EventTime) advance(d time.Duration) EventTime {
	return EventTime{
		instant:   e.instant.Add(d),
		timestamp: e.timestamp.Add(d),
		gameTime:  e.gameTime + d,
		playTime:  e.playTime + d,
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// GameTimeCounter is the clock backing every EventTime a tracker produces:
// it remembers when a run started and how much of its life has been spent
// paused.
type GameTimeCounter struct {
	startInstant time.Time
	startStamp   time.Time
	pauseTotal   time.Duration
	pauseStart   time.Time
	paused       bool
}

// NewGameTimeCounter starts a counter at now, optionally already paused.
func NewGameTimeCounter(now time.Time, paused bool) *GameTimeCounter {
	c := &GameTimeCounter{startInstant: now, startStamp: now}
	if paused {
		c.paused = true
		c.pauseStart = now
	}
	return c
}

func (c *GameTimeCounter) pauseDurationAt(now time.Time) time.Duration {
	if c.paused {
		return c.pauseTotal + now.Sub(c.pauseStart)
	}
	return c.pauseTotal
}

// StartTime returns the EventTime this counter started at; its GameTime
// and PlayTime are both always zero.
func (c *GameTimeCounter) StartTime() EventTime {
	return EventTime{instant: c.startInstant, timestamp: c.startStamp}
}

// TotalPauseTime returns the accumulated pause duration as of now.
func (c *GameTimeCounter) TotalPauseTime(now time.Time) time.Duration {
	return c.pauseDurationAt(now)
}

// Now derives an EventTime for the current instant.
func (c *GameTimeCounter) Now(now time.Time) EventTime {
	gameTime := now.Sub(c.startInstant)
	playTime := gameTime - c.pauseDurationAt(now)
	return EventTime{
		instant:   now,
		timestamp: c.startStamp.Add(gameTime),
		gameTime:  gameTime,
		playTime:  playTime,
	}
}

// Pause marks the counter as paused, starting at now. Idempotent.
func (c *GameTimeCounter) Pause(now time.Time) {
	if !c.paused {
		c.paused = true
		c.pauseStart = now
	}
}

// Unpause marks the counter as no longer paused. Idempotent.
func (c *GameTimeCounter) Unpause(now time.Time) {
	if c.paused {
		c.pauseTotal += now.Sub(c.pauseStart)
		c.paused = false
	}
}

// Update sets the counter's pause state from a plain boolean, pausing or
// unpausing as needed.
func (c *GameTimeCounter) Update(now time.Time, paused bool) {
	if paused {
		c.Pause(now)
	} else {
		c.Unpause(now)
	}
}
