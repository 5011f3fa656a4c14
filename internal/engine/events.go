package engine

// EventKind tags a notification emitted by the match.
type EventKind uint8

const (
	// EventCapture fires on every resolved ordinary capture.
	EventCapture EventKind = iota
	// EventImpulse fires when an impulse resolves (never on begin/cancel).
	EventImpulse
	// EventMatchOver fires exactly once, when the result becomes terminal.
	EventMatchOver
)

// Event is a state-transition notification. The shell drains these once
// per frame to trigger sound and visual feedback; the engine itself never
// acts on them.
type Event struct {
	Kind   EventKind
	Side   Side        // capture and impulse events
	Mode   ImpulseMode // impulse events only
	Result Result      // match-over events only
}

func (m *Match) emit(e Event) {
	m.events = append(m.events, e)
}

// TakeEvents returns all notifications queued since the previous call and
// clears the queue.
func (m *Match) TakeEvents() []Event {
	ev := m.events
	m.events = nil
	return ev
}
