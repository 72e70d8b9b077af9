package tracking

// EventKind distinguishes the fixed set of quantity-tracker events from
// an open-ended game-specific extra (§4.11's "open sum type").
type EventKind int

const (
	EventMiss EventKind = iota
	EventBomb
	EventContinue
	EventPause
	EventUnpause
	EventGameSpecific
)

func (k EventKind) String() string {
	switch k {
	case EventMiss:
		return "Miss"
	case EventBomb:
		return "Bomb"
	case EventContinue:
		return "Continue"
	case EventPause:
		return "Pause"
	case EventUnpause:
		return "Unpause"
	case EventGameSpecific:
		return "GameSpecific"
	default:
		return "Unknown"
	}
}

// Event is one emitted tracker event. GameSpecific is populated only when
// Kind is EventGameSpecific; its dynamic type is whatever per-game payload
// the driver pushed (e.g. th07's border-start/border-end variants).
type Event struct {
	Kind         EventKind
	Time         EventTime
	GameSpecific any
}
