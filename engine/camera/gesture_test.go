package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGestureDragSignConvention(t *testing.T) {
	g := NewGestureAdapter(0.01, 0.01, 0.01)

	_, ok := g.Pointer(PointerEvent{Kind: PointerDown, X: 100, Y: 100})
	assert.False(t, ok, "pointer down only seeds the baseline")
	assert.True(t, g.Dragging())

	d, ok := g.Pointer(PointerEvent{Kind: PointerMove, X: 90, Y: 105})
	require.True(t, ok)
	assert.InDelta(t, 0.1, d.Azimuth, 1e-12)
	assert.InDelta(t, 0.05, d.Polar, 1e-12)
	assert.Equal(t, 0.0, d.Radius)
	assert.Equal(t, 1.0, d.ZoomFactor)
}

func TestGestureDragRoundTrip(t *testing.T) {
	g := NewGestureAdapter(0.013, 0.01, 0.01)
	g.Pointer(PointerEvent{Kind: PointerDown, X: 0, Y: 0})

	total := 0.0
	for _, x := range []float64{25, 50, 75, 50, 25, 0} {
		d, ok := g.Pointer(PointerEvent{Kind: PointerMove, X: x, Y: 0})
		require.True(t, ok)
		total += d.Azimuth
	}
	assert.InDelta(t, 0, total, 1e-12)
}

func TestGestureMoveWithoutDragIsIgnored(t *testing.T) {
	g := NewGestureAdapter(0.01, 0.01, 0.01)
	_, ok := g.Pointer(PointerEvent{Kind: PointerMove, X: 10, Y: 10})
	assert.False(t, ok)
	assert.False(t, g.Dragging())
}

func TestGestureLeaveResetsBaseline(t *testing.T) {
	g := NewGestureAdapter(0.01, 0.01, 0.01)
	g.Pointer(PointerEvent{Kind: PointerDown, X: 0, Y: 0})
	g.Pointer(PointerEvent{Kind: PointerLeave, X: 0, Y: 0})
	assert.False(t, g.Dragging())

	_, ok := g.Pointer(PointerEvent{Kind: PointerMove, X: 500, Y: 500})
	assert.False(t, ok, "moves after leave must not produce a jump")

	g.Pointer(PointerEvent{Kind: PointerDown, X: 500, Y: 500})
	d, ok := g.Pointer(PointerEvent{Kind: PointerMove, X: 510, Y: 500})
	require.True(t, ok)
	assert.InDelta(t, -0.1, d.Azimuth, 1e-12)
}

func TestGestureWheelIsProportional(t *testing.T) {
	g := NewGestureAdapter(0.01, 0.01, 0.002)

	d, ok := g.Wheel(WheelEvent{Amount: 100})
	require.True(t, ok)
	assert.InDelta(t, 0.2, d.Radius, 1e-12)

	d, ok = g.Wheel(WheelEvent{Amount: -3})
	require.True(t, ok, "small scrolls still zoom")
	assert.InDelta(t, -0.006, d.Radius, 1e-12)

	_, ok = g.Wheel(WheelEvent{})
	assert.False(t, ok)
}

func TestGestureSingleTouchRotates(t *testing.T) {
	g := NewGestureAdapter(0.01, 0.02, 0.01)
	_, ok := g.Touch(TouchEvent{Kind: TouchStart, Touches: []TouchPoint{{ID: 1, X: 10, Y: 10}}})
	assert.False(t, ok)

	d, ok := g.Touch(TouchEvent{Kind: TouchMove, Touches: []TouchPoint{{ID: 1, X: 20, Y: 15}}})
	require.True(t, ok)
	assert.InDelta(t, -0.2, d.Azimuth, 1e-12)
	assert.InDelta(t, 0.1, d.Polar, 1e-12)
}

func TestGesturePinchIsMultiplicative(t *testing.T) {
	g := NewGestureAdapter(0.01, 0.01, 0.01)
	two := func(kind TouchKind, gap float64) TouchEvent {
		return TouchEvent{Kind: kind, Touches: []TouchPoint{{ID: 1, X: 0, Y: 0}, {ID: 2, X: gap, Y: 0}}}
	}

	_, ok := g.Touch(two(TouchStart, 100))
	assert.False(t, ok)

	d, ok := g.Touch(two(TouchMove, 200))
	require.True(t, ok)
	assert.InDelta(t, 0.5, d.ZoomFactor, 1e-12, "spreading fingers halves the radius")

	d, ok = g.Touch(two(TouchMove, 100))
	require.True(t, ok)
	assert.InDelta(t, 2.0, d.ZoomFactor, 1e-12)
}

func TestGestureTouchCountChangeResetsBaseline(t *testing.T) {
	g := NewGestureAdapter(0.01, 0.01, 0.01)
	g.Touch(TouchEvent{Kind: TouchStart, Touches: []TouchPoint{{ID: 1, X: 0, Y: 0}}})
	g.Touch(TouchEvent{Kind: TouchMove, Touches: []TouchPoint{{ID: 1, X: 5, Y: 0}}})

	// A second finger lands far away mid-gesture.
	_, ok := g.Touch(TouchEvent{Kind: TouchMove, Touches: []TouchPoint{{ID: 1, X: 5, Y: 0}, {ID: 2, X: 400, Y: 0}}})
	assert.False(t, ok, "count change suppresses the delta")

	// Lifting it leaves finger 2 as the only touch; no jump from finger 1's baseline.
	_, ok = g.Touch(TouchEvent{Kind: TouchEnd, Touches: []TouchPoint{{ID: 2, X: 400, Y: 0}}})
	assert.False(t, ok)

	d, ok := g.Touch(TouchEvent{Kind: TouchMove, Touches: []TouchPoint{{ID: 2, X: 401, Y: 0}}})
	require.True(t, ok)
	assert.InDelta(t, -0.01, d.Azimuth, 1e-12)

	g.Touch(TouchEvent{Kind: TouchEnd})
	assert.False(t, g.Dragging())
}

func TestGestureReset(t *testing.T) {
	g := NewGestureAdapter(0.01, 0.01, 0.01)
	g.Pointer(PointerEvent{Kind: PointerDown, X: 0, Y: 0})
	g.Reset()
	_, ok := g.Pointer(PointerEvent{Kind: PointerMove, X: 50, Y: 0})
	assert.False(t, ok)
}
