package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-avatar/engine/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerTranslation(t *testing.T) {
	w := newEngineWindow()
	var got []camera.PointerEvent
	w.SetPointerCallback(func(e camera.PointerEvent) { got = append(got, e) })

	w.handlePrimaryButton(true, 10, 20)
	w.handleCursorPos(15, 22)
	w.handlePrimaryButton(false, 15, 22)
	w.handleCursorEnter(true, 0, 0)
	w.handleCursorEnter(false, -1, 5)

	require.Len(t, got, 4)
	assert.Equal(t, camera.PointerEvent{Kind: camera.PointerDown, X: 10, Y: 20}, got[0])
	assert.Equal(t, camera.PointerEvent{Kind: camera.PointerMove, X: 15, Y: 22}, got[1])
	assert.Equal(t, camera.PointerUp, got[2].Kind)
	assert.Equal(t, camera.PointerLeave, got[3].Kind)
}

func TestScrollTranslation(t *testing.T) {
	w := newEngineWindow(WithScrollScale(50))
	var got []camera.WheelEvent
	w.SetWheelCallback(func(e camera.WheelEvent) { got = append(got, e) })

	w.handleScroll(1)
	w.handleScroll(-2)
	w.handleScroll(0)

	require.Len(t, got, 2)
	assert.Equal(t, -50.0, got[0].Amount, "scrolling up zooms in")
	assert.Equal(t, 100.0, got[1].Amount)
}

func TestScrollScaleIgnoresNonPositive(t *testing.T) {
	w := newEngineWindow(WithScrollScale(0))
	assert.Equal(t, 100.0, w.scrollScale)
}

func TestCallbacksAreOptional(t *testing.T) {
	w := newEngineWindow()
	assert.NotPanics(t, func() {
		w.handlePrimaryButton(true, 0, 0)
		w.handleScroll(3)
		w.handleFramebufferSize(800, 600)
	})
}

func TestResizeAndAspect(t *testing.T) {
	w := newEngineWindow(WithSize(1600, 900))
	assert.InDelta(t, 16.0/9.0, float64(w.Aspect()), 1e-6)

	var width, height int
	w.SetResizeCallback(func(wd, ht int) { width, height = wd, ht })
	w.handleFramebufferSize(1000, 500)
	assert.Equal(t, 1000, width)
	assert.Equal(t, 500, height)
	assert.Equal(t, float32(2), w.Aspect())

	w.handleFramebufferSize(0, 0)
	assert.Equal(t, float32(1), w.Aspect(), "minimized windows keep a usable aspect")
}

func TestSizeOptions(t *testing.T) {
	w := newEngineWindow(WithSize(200, 100), WithSizeLimits(400, 300, 1920, 1080))
	assert.Equal(t, 400, w.Width(), "initial size is clamped into the limits")
	assert.Equal(t, 300, w.Height())
	assert.Equal(t, 1920, w.maxWidth)

	w = newEngineWindow(WithSize(4000, 3000), WithSizeLimits(400, 300, 1920, 1080))
	assert.Equal(t, 1920, w.Width())
	assert.Equal(t, 1080, w.Height())

	w = newEngineWindow(WithSize(-1, 600), WithSizeLimits(800, 600, 640, 480))
	assert.Equal(t, 1280, w.Width(), "invalid sizes keep the defaults")
	assert.Equal(t, 320, w.minWidth, "inverted limits are ignored")
	assert.Equal(t, 3840, w.maxWidth)
}

func TestWindowIsInputSource(t *testing.T) {
	var src camera.InputSource = newEngineWindow()
	var touched bool
	src.SetTouchCallback(func(camera.TouchEvent) { touched = true })
	assert.False(t, touched)
	assert.False(t, newEngineWindow().IsRunning(), "no platform window yet")
}
