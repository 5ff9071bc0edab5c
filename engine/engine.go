package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-avatar/engine/profiler"
	"github.com/Carmen-Shannon/oxy-avatar/engine/window"
)

// engine implements the Engine interface.
// Drives one frame per window message loop iteration on the window's OS thread.
type engine struct {
	mu *sync.Mutex

	running  bool
	quitOnce sync.Once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback  func(deltaTime, now float64)
	resizeCallback func(width, height int)

	// lastFrame is the wall time of the previous frame; zero before the first frame.
	lastFrame time.Time
	// clock is the render-loop clock in seconds, the sum of clamped frame deltas.
	clock float64
	// maxDelta caps a single frame delta so stalls do not skip animation.
	maxDelta float64

	frameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the engine.
// It runs the frame loop and owns the window.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers the function called once per frame, after window events
	// for that frame have been dispatched.
	//
	// Parameters:
	//   - callback: receives the frame delta and the render-loop clock, both in seconds
	SetFrameCallback(callback func(deltaTime, now float64))

	// SetResizeCallback registers the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Clock returns the render-loop clock in seconds.
	//
	// Returns:
	//   - float64: seconds of rendered time since the first frame
	Clock() float64

	// Run starts the frame loop (blocks until the window closes or Quit is called).
	Run()

	// Quit stops the frame loop and closes the window.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, frame limit)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:       &sync.Mutex{},
		profiler: profiler.NewProfiler(),
		maxDelta: 0.1,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(e.handleResize)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] Run called without a window")
		return
	}
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.window.SetUpdateCallback(func() {
		if !e.isRunning() {
			return
		}
		start := time.Now()
		e.frame(start)
		e.limit(start)
	})
	e.window.ProcessMessages()
	e.Quit()
}

// Quit stops the frame loop and closes the window.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		if e.window != nil && e.window.IsRunning() {
			if err := e.window.Close(); err != nil {
				log.Printf("[Engine] close window: %v", err)
			}
		}
	})
}

func (e *engine) isRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// frame advances the render-loop clock to wall time now and runs the frame callback.
// The first frame has a zero delta.
func (e *engine) frame(now time.Time) {
	dt := 0.0
	if !e.lastFrame.IsZero() {
		dt = now.Sub(e.lastFrame).Seconds()
		if dt < 0 {
			dt = 0
		}
		if e.maxDelta > 0 && dt > e.maxDelta {
			dt = e.maxDelta
		}
	}
	e.lastFrame = now
	e.clock += dt

	if e.frameCallback != nil {
		e.frameCallback(dt, e.clock)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// limit sleeps out the remainder of the frame budget when a frame limit is set.
func (e *engine) limit(start time.Time) {
	if e.frameLimit <= 0 {
		return
	}
	if remaining := e.frameLimit - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}
}

func (e *engine) handleResize(width, height int) {
	if e.resizeCallback != nil {
		e.resizeCallback(width, height)
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetFrameCallback registers the function called each frame.
func (e *engine) SetFrameCallback(callback func(deltaTime, now float64)) {
	e.frameCallback = callback
}

// SetResizeCallback registers the function called on framebuffer resize.
func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func (e *engine) Clock() float64 {
	return e.clock
}

// frameDuration converts a frame rate cap into a minimum frame duration.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
