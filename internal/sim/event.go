package sim

import "gonum.org/v1/gonum/spatial/r2"

// EventType classifies a collision event.
type EventType uint8

const (
	EventBounce  EventType = iota + 1 // body reflected off the play area edge
	EventDespawn                      // body left the play area and was removed
	EventHit                          // point landed inside a body
	EventOverlap                      // two bodies' boxes intersect
)

// String returns a short event name for logs.
func (t EventType) String() string {
	switch t {
	case EventBounce:
		return "bounce"
	case EventDespawn:
		return "despawn"
	case EventHit:
		return "hit"
	case EventOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// Event is produced during a tick and consumed in the same tick.
type Event struct {
	Type  EventType
	A     BodyID
	B     BodyID // second body for EventOverlap
	Kind  Kind   // kind of A
	Axes  Axes   // boundary axes for EventBounce and EventDespawn
	Point r2.Vec
}
