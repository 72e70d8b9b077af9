/*

Package th07 wires the generic tracking engine to Perfect Cherry
Blossom: it turns a poll of this game's RunState into miss, bomb,
continue, pause and border-meter events, debouncing location changes
over a 750ms dwell and treating a border run of 8750ms or longer as
broken rather than ended clean.

*/
package th07

import "github.com/hakurei-works/thstat/tracking"

// EventKind distinguishes this game's one extension to the generic
// event set: the border meter's start and end.
type EventKind int

const (
	BorderStart EventKind = iota
	BorderEnd
)

func (k EventKind) String() string {
	switch k {
	case BorderStart:
		return "Border Start"
	case BorderEnd:
		return "Border End"
	default:
		return "unknown border event"
	}
}

// Event is this game's game-specific payload, carried inside a generic
// tracking.Event whose Kind is tracking.EventGameSpecific.
type Event struct {
	Kind EventKind
	// Broken is only meaningful for BorderEnd: true if the border ran
	// for 8750ms or longer of play time before it ended, which this
	// game treats as a break rather than a clean finish.
	Broken bool
}

func (e Event) String() string {
	if e.Kind == BorderEnd && e.Broken {
		return "Border Break"
	}
	return e.Kind.String()
}

// push records a border event on an in-progress update.
func push(u *tracking.Update[Loc], e Event) {
	u.PushGameSpecificEvent(e)
}
