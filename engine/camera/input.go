package camera

import "math"

// PointerKind identifies a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	// PointerLeave is sent when the pointer exits the view; it ends any drag.
	PointerLeave
)

// PointerEvent is a mouse or pen event in view pixels.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// WheelEvent is a scroll event. Positive Amount scrolls down (zooms out).
type WheelEvent struct {
	Amount float64
}

// TouchKind identifies a touch event.
type TouchKind int

const (
	TouchStart TouchKind = iota
	TouchMove
	TouchEnd
)

// TouchPoint is one active finger in view pixels.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// TouchEvent carries every finger still on the surface after the change.
type TouchEvent struct {
	Kind    TouchKind
	Touches []TouchPoint
}

// pinchDistance returns the distance between the first two touches.
func (e TouchEvent) pinchDistance() float64 {
	if len(e.Touches) < 2 {
		return 0
	}
	return math.Hypot(e.Touches[0].X-e.Touches[1].X, e.Touches[0].Y-e.Touches[1].Y)
}

// InputSource delivers raw pointer, wheel and touch events from the host toolkit.
// Callbacks are invoked on the same thread that drives Tick.
type InputSource interface {
	// SetPointerCallback sets the function receiving pointer events.
	//
	// Parameters:
	//   - callback: function receiving each pointer event (or nil to disable)
	SetPointerCallback(callback func(PointerEvent))

	// SetWheelCallback sets the function receiving scroll events.
	//
	// Parameters:
	//   - callback: function receiving each wheel event (or nil to disable)
	SetWheelCallback(callback func(WheelEvent))

	// SetTouchCallback sets the function receiving touch events.
	//
	// Parameters:
	//   - callback: function receiving each touch event (or nil to disable)
	SetTouchCallback(callback func(TouchEvent))
}
