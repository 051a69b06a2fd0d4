// Package input defines normalized input events and the per-frame queue
// that carries them from the window to the simulation.
package input

// EventType identifies what an Event carries.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseButton
	EventScroll
)

// Button is a pointer button id.
type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// Action is the edge of a button transition.
type Action uint8

const (
	ActionPress Action = iota + 1
	ActionRelease
)

// Key is a keyboard key independent of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyG
	KeyP
)

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     Key
	Button  Button
	Action  Action
	X, Y    float64 // pointer position in window pixels
	ScrollX float64
	ScrollY float64 // positive away from the user
	Width   int
	Height  int
}

// Queue buffers events between polls. It is drained once per frame and
// is not safe for concurrent use.
type Queue struct {
	events []Event
	spare  []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
		spare:  make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns the pending events in arrival order and empties the queue.
// The returned slice is valid until the next call to Drain.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events, q.spare = q.spare[:0], out
	return out
}
