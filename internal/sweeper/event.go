package sweeper

import "chosenoffset.com/sonarsweep/internal/render"

// EventKind identifies an input event delivered to the screen.
type EventKind int

const (
	EventKeyUp EventKind = iota
	EventPointerMove
	EventButtonUp
)

func (k EventKind) String() string {
	switch k {
	case EventKeyUp:
		return "key_up"
	case EventPointerMove:
		return "pointer_move"
	case EventButtonUp:
		return "button_up"
	default:
		return "unknown"
	}
}

// Event is one input event. X and Y are window coordinates with a top-left
// origin, as the host reports them.
type Event struct {
	Kind   EventKind
	Key    render.Key         // EventKeyUp
	Button render.MouseButton // EventButtonUp
	X, Y   int                // EventPointerMove, EventButtonUp
}

// KeyUp builds a key release event.
func KeyUp(key render.Key) Event {
	return Event{Kind: EventKeyUp, Key: key}
}

// PointerMove builds a pointer motion event.
func PointerMove(x, y int) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// ButtonUp builds a pointer button release event.
func ButtonUp(button render.MouseButton, x, y int) Event {
	return Event{Kind: EventButtonUp, Button: button, X: x, Y: y}
}
