package sim

// eventLogCap is the number of entries kept for the debug panel.
const eventLogCap = 60

// Event is a single line in the event log.
type Event struct {
	Tick    int
	Ball    Color
	Message string
}

// EventLog is a ring buffer of recent events for on-screen display.
type EventLog struct {
	entries []Event
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]Event, eventLogCap),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (el *EventLog) Add(tick int, ball Color, msg string) {
	el.entries[el.head] = Event{
		Tick:    tick,
		Ball:    ball,
		Message: msg,
	}
	el.head = (el.head + 1) % eventLogCap
	if el.count < eventLogCap {
		el.count++
	}
}

// Len returns the number of stored entries.
func (el *EventLog) Len() int { return el.count }

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []Event {
	result := make([]Event, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + eventLogCap) % eventLogCap
		result[i] = el.entries[idx]
	}
	return result
}

// Last returns up to n of the newest entries, oldest first.
func (el *EventLog) Last(n int) []Event {
	all := el.Recent()
	if n < len(all) {
		all = all[len(all)-n:]
	}
	return all
}
