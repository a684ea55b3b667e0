package joystick

// TouchID identifies the finger a touch event belongs to. the value is opaque
// to the Controller, it is only ever compared for equality
type TouchID int64

// EventType distinguishes the three touch events the Controller understands
type EventType int

const (
	TouchDown EventType = iota
	TouchUp
	TouchMove
)

// TouchEvent is a single touch event as delivered by the event source. the
// position is either in screen pixels or, when Normalized is true, in the
// range 0.0 to 1.0 on both axes. normalized positions are scaled by the
// window size stored in the Controller
type TouchEvent struct {
	Type       EventType
	ID         TouchID
	Pos        Vector2
	Normalized bool
}
