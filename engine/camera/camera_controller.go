package camera

import "github.com/go-gl/mathgl/mgl64"

// Info is a read-only snapshot of the controller for display. It holds no references
// into controller state.
type Info struct {
	// Mode is the identifier of the last selected mode.
	Mode string
	// Position is the camera position last written to the target.
	Position mgl64.Vec3
	// Target is the look-at point last written to the target.
	Target mgl64.Vec3
	// Distance is the length between Position and Target.
	Distance float64
	// FieldOfView is the field of view in degrees last written to the target.
	FieldOfView float64
	// AutoRotate reports whether idle auto-rotation is enabled.
	AutoRotate bool
	// AutoRotateSpeed is the auto-rotation speed in radians per second.
	AutoRotateSpeed float64
	// Transitioning reports whether a mode transition is in flight.
	Transitioning bool
}

// CameraController is the single writer of the avatar camera pose.
//
// It runs in one of two states. In Idle-Manual, gestures and auto-rotation drive the
// orbit and the orbit pose is written every frame. In Transitioning, a TransitionAnimator
// owns the pose and gestures are ignored; when the transition completes the orbit is
// resynchronized from the final pose and the controller returns to Idle-Manual.
type CameraController interface {
	// SetMode switches to a registered shot. Unknown identifiers are logged and leave
	// the camera untouched. With animate false the camera snaps to the shot; otherwise
	// it eases there from the pose currently on screen, replacing any transition in flight.
	//
	// Parameters:
	//   - id: the mode identifier
	//   - animate: whether to animate the switch
	//
	// Returns:
	//   - error: ErrUnknownMode if id is not registered
	SetMode(id string, animate bool) error

	// HandleGestureDelta applies an orbit delta and writes the result to the target
	// immediately. Deltas are dropped while a transition is in flight.
	//
	// Parameters:
	//   - delta: the orbit change to apply
	//
	// Returns:
	//   - bool: true if the delta was applied
	HandleGestureDelta(delta Delta) bool

	// HandlePointer routes a pointer event through the gesture adapter.
	//
	// Parameters:
	//   - e: the pointer event
	HandlePointer(e PointerEvent)

	// HandleWheel routes a scroll event through the gesture adapter.
	//
	// Parameters:
	//   - e: the wheel event
	HandleWheel(e WheelEvent)

	// HandleTouch routes a touch event through the gesture adapter.
	//
	// Parameters:
	//   - e: the touch event
	HandleTouch(e TouchEvent)

	// SetAutoRotate enables or disables idle rotation around the target.
	// Manual drags keep working and compose with the rotation.
	//
	// Parameters:
	//   - enabled: whether auto-rotation runs
	//   - speed: radians per second added to the azimuth
	SetAutoRotate(enabled bool, speed float64)

	// Tick is the per-frame entry point. It advances a transition in flight (or the
	// auto-rotation when idle) and writes the resulting pose to the target.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//   - now: render-loop clock in seconds
	Tick(deltaTime, now float64)

	// CancelTransition stops a transition in flight where it is. The orbit resumes
	// from the pose last written to the target.
	CancelTransition()

	// ResetToDefault snaps to the default mode and restores the initial azimuth,
	// polar angle and radius.
	ResetToDefault()

	// CurrentInfo returns a snapshot of the controller state.
	//
	// Returns:
	//   - Info: copy of the current mode, pose and flags
	CurrentInfo() Info

	// Spherical returns the orbit coordinates.
	//
	// Returns:
	//   - azimuth, polar: angles in radians
	//   - radius: distance from the orbit target
	Spherical() (azimuth, polar, radius float64)

	// ActiveTransition returns the transition in flight, if any.
	//
	// Returns:
	//   - Transition: the transition in flight
	//   - bool: false if the controller is idle
	ActiveTransition() (Transition, bool)

	// Modes returns the selectable mode identifiers in registration order.
	//
	// Returns:
	//   - []string: mode identifiers
	Modes() []string
}
