package camera

// Delta is an incremental orbit change produced by a gesture.
type Delta struct {
	// Azimuth is added to the orbit azimuth in radians.
	Azimuth float64
	// Polar is added to the orbit polar angle in radians.
	Polar float64
	// Radius is added to the orbit radius (wheel zoom).
	Radius float64
	// ZoomFactor multiplies the orbit radius (pinch zoom). Values <= 0 mean no scaling.
	ZoomFactor float64
}

// RotateDelta builds a Delta that only changes angles.
func RotateDelta(azimuth, polar float64) Delta {
	return Delta{Azimuth: azimuth, Polar: polar, ZoomFactor: 1}
}

// GestureAdapter turns raw pointer, wheel and touch events into orbit deltas.
// It never touches an Orbit; the caller decides whether a delta is applied.
//
// Horizontal drag rotates the azimuth (-dx * sensitivity), vertical drag tilts the
// polar angle (dy * sensitivity). Wheel zoom is linear in the scroll amount, pinch
// zoom is the ratio of successive finger distances.
type GestureAdapter struct {
	mouseSensitivity float64
	touchSensitivity float64
	zoomSpeed        float64

	dragging     bool
	hasPointer   bool
	lastX, lastY float64

	touchCount        int
	hasTouch          bool
	touchX, touchY    float64
	lastPinchDistance float64
}

// NewGestureAdapter creates an adapter with the given scaling factors.
//
// Parameters:
//   - mouseSensitivity: radians per pixel of pointer drag
//   - touchSensitivity: radians per pixel of single-finger drag
//   - zoomSpeed: radius units per unit of wheel scroll
//
// Returns:
//   - *GestureAdapter: the new adapter
func NewGestureAdapter(mouseSensitivity, touchSensitivity, zoomSpeed float64) *GestureAdapter {
	return &GestureAdapter{
		mouseSensitivity: mouseSensitivity,
		touchSensitivity: touchSensitivity,
		zoomSpeed:        zoomSpeed,
	}
}

// Dragging reports whether a pointer drag or touch gesture is in progress.
func (g *GestureAdapter) Dragging() bool {
	return g.dragging || g.touchCount > 0
}

// Reset drops every baseline and ends any gesture in progress.
func (g *GestureAdapter) Reset() {
	g.dragging = false
	g.hasPointer = false
	g.touchCount = 0
	g.hasTouch = false
	g.lastPinchDistance = 0
}

// Pointer consumes a pointer event.
//
// Parameters:
//   - e: the pointer event
//
// Returns:
//   - Delta: the rotation produced by the event
//   - bool: false if the event produced no delta
func (g *GestureAdapter) Pointer(e PointerEvent) (Delta, bool) {
	switch e.Kind {
	case PointerDown:
		g.dragging = true
		g.seedPointer(e.X, e.Y)
	case PointerMove:
		if !g.dragging {
			return Delta{}, false
		}
		if !g.hasPointer {
			g.seedPointer(e.X, e.Y)
			return Delta{}, false
		}
		dx, dy := e.X-g.lastX, e.Y-g.lastY
		g.lastX, g.lastY = e.X, e.Y
		return g.rotate(dx, dy, g.mouseSensitivity), true
	case PointerUp, PointerLeave:
		g.dragging = false
		g.hasPointer = false
	}
	return Delta{}, false
}

// Wheel consumes a scroll event. Every event produces a proportional radius delta.
//
// Parameters:
//   - e: the wheel event
//
// Returns:
//   - Delta: the radius change
//   - bool: false if the amount was zero
func (g *GestureAdapter) Wheel(e WheelEvent) (Delta, bool) {
	if e.Amount == 0 {
		return Delta{}, false
	}
	return Delta{Radius: e.Amount * g.zoomSpeed, ZoomFactor: 1}, true
}

// Touch consumes a touch event. One finger rotates, two fingers pinch-zoom.
// Any change in finger count re-seeds the baseline and yields no delta.
//
// Parameters:
//   - e: the touch event with all fingers still down
//
// Returns:
//   - Delta: the rotation or zoom factor produced
//   - bool: false if the event only (re)established a baseline
func (g *GestureAdapter) Touch(e TouchEvent) (Delta, bool) {
	n := len(e.Touches)
	if e.Kind != TouchMove || n != g.touchCount || !g.hasTouch {
		g.seedTouch(e)
		return Delta{}, false
	}

	switch n {
	case 1:
		t := e.Touches[0]
		dx, dy := t.X-g.touchX, t.Y-g.touchY
		g.touchX, g.touchY = t.X, t.Y
		return g.rotate(dx, dy, g.touchSensitivity), true
	case 2:
		d := e.pinchDistance()
		prev := g.lastPinchDistance
		if d <= 0 || prev <= 0 {
			g.seedTouch(e)
			return Delta{}, false
		}
		g.lastPinchDistance = d
		return Delta{ZoomFactor: prev / d}, true
	}
	return Delta{}, false
}

func (g *GestureAdapter) rotate(dx, dy, sensitivity float64) Delta {
	return RotateDelta(-dx*sensitivity, dy*sensitivity)
}

func (g *GestureAdapter) seedPointer(x, y float64) {
	g.lastX, g.lastY = x, y
	g.hasPointer = true
}

func (g *GestureAdapter) seedTouch(e TouchEvent) {
	g.touchCount = len(e.Touches)
	g.hasTouch = g.touchCount > 0
	g.lastPinchDistance = 0
	switch g.touchCount {
	case 0:
	case 1:
		g.touchX, g.touchY = e.Touches[0].X, e.Touches[0].Y
	default:
		g.lastPinchDistance = e.pinchDistance()
	}
}
