package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-avatar/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
//
// A Window is a camera.InputSource: the left mouse button, cursor motion, cursor
// leave and the scroll wheel are translated into camera pointer and wheel events.
type Window interface {
	camera.InputSource

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Aspect returns width / height, or 1 while the window is minimized.
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// scrollScale converts one scroll notch into wheel amount units.
	scrollScale float64

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)

	// onPointer receives primary button and cursor events.
	onPointer func(camera.PointerEvent)

	// onWheel receives scroll events. Positive amounts zoom out.
	onWheel func(camera.WheelEvent)

	// onTouch receives touch events. GLFW has no touch input, so it is only stored.
	onTouch func(camera.TouchEvent)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (not yet spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// newEngineWindow applies defaults and options without touching the platform layer.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:       "Avatar Camera",
		maxWidth:    3840,
		maxHeight:   2160,
		minWidth:    320,
		minHeight:   240,
		width:       1280,
		height:      720,
		scrollScale: 100,
	}
	for _, opt := range options {
		opt(w)
	}
	w.width = max(w.minWidth, min(w.width, w.maxWidth))
	w.height = max(w.minHeight, min(w.height, w.maxHeight))
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetPointerCallback(callback func(camera.PointerEvent)) {
	w.onPointer = callback
}

func (w *engineWindow) SetWheelCallback(callback func(camera.WheelEvent)) {
	w.onWheel = callback
}

func (w *engineWindow) SetTouchCallback(callback func(camera.TouchEvent)) {
	w.onTouch = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) Aspect() float32 {
	if w.width <= 0 || w.height <= 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

// --- platform event translation ---

// handlePrimaryButton forwards a left button press or release at the cursor position.
func (w *engineWindow) handlePrimaryButton(pressed bool, x, y float64) {
	kind := camera.PointerUp
	if pressed {
		kind = camera.PointerDown
	}
	w.emitPointer(kind, x, y)
}

// handleCursorPos forwards cursor motion.
func (w *engineWindow) handleCursorPos(x, y float64) {
	w.emitPointer(camera.PointerMove, x, y)
}

// handleCursorEnter forwards the cursor leaving the client area. Entering needs no event
// because the next press re-seeds the drag baseline.
func (w *engineWindow) handleCursorEnter(entered bool, x, y float64) {
	if !entered {
		w.emitPointer(camera.PointerLeave, x, y)
	}
}

// handleScroll converts a vertical scroll offset into a wheel event. GLFW reports
// scrolling up as positive, which must zoom in, so the sign is flipped.
func (w *engineWindow) handleScroll(yoff float64) {
	if w.onWheel == nil || yoff == 0 {
		return
	}
	w.onWheel(camera.WheelEvent{Amount: -yoff * w.scrollScale})
}

// handleFramebufferSize records pixel dimensions and notifies the resize callback.
func (w *engineWindow) handleFramebufferSize(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (w *engineWindow) emitPointer(kind camera.PointerKind, x, y float64) {
	if w.onPointer != nil {
		w.onPointer(camera.PointerEvent{Kind: kind, X: x, Y: y})
	}
}
