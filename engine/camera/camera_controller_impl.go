package camera

import (
	"log"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// framedTolerance is the distance under which a mode pose counts as already inside the orbit bounds.
const framedTolerance = 1e-9

// homeState is the orbit captured from the default mode at construction.
type homeState struct {
	azimuth, polar, radius float64
	target                 mgl64.Vec3
	fov                    float64
}

// cameraControllerImpl is the single implementation of CameraController.
// It owns the orbit and the transition animator and holds a non-owning target.
type cameraControllerImpl struct {
	mu *sync.Mutex

	target   CameraTarget
	registry *ModeRegistry
	logger   *log.Logger

	orbit    *Orbit
	gestures *GestureAdapter
	animator *TransitionAnimator

	// Orbit constraints
	bounds OrbitBounds

	// Gesture scaling
	mouseSensitivity float64
	touchSensitivity float64
	zoomSpeed        float64

	autoRotate      bool
	autoRotateSpeed float64

	initialMode string
	mode        string
	fov         float64
	current     Pose
	clock       float64
	home        homeState
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller framing the initial mode and writes that
// pose to target. When input is non-nil the controller subscribes to its events.
//
// Parameters:
//   - target: the camera to drive (not owned)
//   - input: the raw event source, or nil when events are forwarded manually
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(target CameraTarget, input InputSource, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		target: target,
		logger: log.Default(),

		bounds: DefaultOrbitBounds(),

		mouseSensitivity: 0.01,
		touchSensitivity: 0.01,
		zoomSpeed:        0.01,

		autoRotateSpeed: 0.5,
		initialMode:     ModeDefault,
	}

	for _, option := range options {
		option(cc)
	}

	if cc.registry == nil {
		cc.registry = NewDefaultModeRegistry()
	}
	cc.gestures = NewGestureAdapter(cc.mouseSensitivity, cc.touchSensitivity, cc.zoomSpeed)
	cc.animator = NewTransitionAnimator()

	homePose := DefaultModes()[0].Pose
	if m, err := cc.registry.Get(ModeDefault); err == nil {
		homePose = m.Pose
	}
	cc.orbit = NewOrbit(cc.bounds, 0, math.Pi/2, cc.bounds.MinDistance, homePose.Target)
	cc.orbit.SetFromPose(homePose)
	cc.home = homeState{
		azimuth: cc.orbit.Azimuth(),
		polar:   cc.orbit.Polar(),
		radius:  cc.orbit.Radius(),
		target:  cc.orbit.Target(),
		fov:     homePose.FieldOfView,
	}
	cc.mode = ModeDefault
	cc.fov = homePose.FieldOfView

	if cc.initialMode != ModeDefault {
		if m, err := cc.registry.Get(cc.initialMode); err != nil {
			cc.logger.Printf("[Camera] initial mode ignored: %v", err)
		} else {
			cc.snapLocked(m)
		}
	}
	cc.writeOrbitLocked()

	if input != nil {
		input.SetPointerCallback(cc.HandlePointer)
		input.SetWheelCallback(cc.HandleWheel)
		input.SetTouchCallback(cc.HandleTouch)
	}
	return cc
}

// --- internal helpers ---

// snapLocked moves the orbit straight to a mode pose. Caller must hold the mutex.
func (cc *cameraControllerImpl) snapLocked(m Mode) {
	cc.animator.Cancel()
	if !cc.orbit.SetFromPose(m.Pose) {
		cc.logger.Printf("[Camera] mode %q has a degenerate pose; keeping previous angles", m.ID)
	}
	cc.fov = m.Pose.FieldOfView
	cc.mode = m.ID
}

// framedPoseLocked returns p as the orbit would hold it once settled, clamped to the
// orbit bounds, so a transition ends exactly where the next idle frame begins.
// Poses already inside the bounds are returned unchanged. Caller must hold the mutex.
func (cc *cameraControllerImpl) framedPoseLocked(id string, p Pose) Pose {
	scratch := *cc.orbit
	if !scratch.SetFromPose(p) {
		cc.logger.Printf("[Camera] mode %q has a degenerate pose; keeping previous angles", id)
	}
	framed := scratch.Pose(p.FieldOfView)
	if framed.ApproxEqual(p, framedTolerance) {
		return p
	}
	return framed
}

// writeOrbitLocked writes the orbit pose to the target. Caller must hold the mutex.
func (cc *cameraControllerImpl) writeOrbitLocked() {
	cc.writePoseLocked(cc.orbit.Pose(cc.fov))
}

// writePoseLocked records and writes a pose. Caller must hold the mutex.
func (cc *cameraControllerImpl) writePoseLocked(p Pose) {
	cc.current = p
	p.apply(cc.target)
}

// applyDeltaLocked applies a gesture delta unless a transition owns the pose.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) applyDeltaLocked(d Delta) bool {
	if cc.animator.Active() {
		return false
	}
	cc.orbit.ApplyDelta(d.Azimuth, d.Polar, d.Radius)
	cc.orbit.ApplyZoomFactor(d.ZoomFactor)
	cc.writeOrbitLocked()
	return true
}

// --- CameraController implementation ---

func (cc *cameraControllerImpl) SetMode(id string, animate bool) error {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	m, err := cc.registry.Get(id)
	if err != nil {
		cc.logger.Printf("[Camera] SetMode ignored: %v", err)
		return err
	}

	if !animate {
		cc.snapLocked(m)
		cc.writeOrbitLocked()
		return nil
	}

	// Start from what is on screen, which is the mid-flight pose if a transition is running.
	cc.animator.Start(cc.current, cc.framedPoseLocked(m.ID, m.Pose), m.TransitionDuration, cc.clock)
	cc.mode = m.ID
	return nil
}

func (cc *cameraControllerImpl) HandleGestureDelta(delta Delta) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.applyDeltaLocked(delta)
}

func (cc *cameraControllerImpl) HandlePointer(e PointerEvent) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if d, ok := cc.gestures.Pointer(e); ok {
		cc.applyDeltaLocked(d)
	}
}

func (cc *cameraControllerImpl) HandleWheel(e WheelEvent) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if d, ok := cc.gestures.Wheel(e); ok {
		cc.applyDeltaLocked(d)
	}
}

func (cc *cameraControllerImpl) HandleTouch(e TouchEvent) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if d, ok := cc.gestures.Touch(e); ok {
		cc.applyDeltaLocked(d)
	}
}

func (cc *cameraControllerImpl) SetAutoRotate(enabled bool, speed float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.autoRotate = enabled
	cc.autoRotateSpeed = speed
}

func (cc *cameraControllerImpl) Tick(deltaTime, now float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.clock = now

	if cc.animator.Active() {
		pose, done := cc.animator.Advance(now)
		cc.fov = pose.FieldOfView
		if done && !cc.orbit.SetFromPose(pose) {
			cc.logger.Printf("[Camera] transition to %q ended on a degenerate pose; keeping previous angles", cc.mode)
		}
		cc.writePoseLocked(pose)
		return
	}

	if cc.autoRotate && deltaTime > 0 {
		cc.orbit.ApplyDelta(cc.autoRotateSpeed*deltaTime, 0, 0)
	}
	cc.writeOrbitLocked()
}

func (cc *cameraControllerImpl) CancelTransition() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.animator.Active() {
		return
	}
	cc.animator.Cancel()
	cc.fov = cc.current.FieldOfView
	cc.orbit.SetFromPose(cc.current)
	cc.writeOrbitLocked()
}

func (cc *cameraControllerImpl) ResetToDefault() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if m, err := cc.registry.Get(ModeDefault); err == nil {
		cc.snapLocked(m)
	} else {
		cc.animator.Cancel()
		cc.mode = ModeDefault
	}
	cc.gestures.Reset()
	cc.orbit.SetTarget(cc.home.target)
	cc.orbit.Set(cc.home.azimuth, cc.home.polar, cc.home.radius)
	cc.fov = cc.home.fov
	cc.writeOrbitLocked()
}

func (cc *cameraControllerImpl) CurrentInfo() Info {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return Info{
		Mode:            cc.mode,
		Position:        cc.current.Position,
		Target:          cc.current.Target,
		Distance:        cc.current.Distance(),
		FieldOfView:     cc.current.FieldOfView,
		AutoRotate:      cc.autoRotate,
		AutoRotateSpeed: cc.autoRotateSpeed,
		Transitioning:   cc.animator.Active(),
	}
}

func (cc *cameraControllerImpl) Spherical() (azimuth, polar, radius float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbit.Azimuth(), cc.orbit.Polar(), cc.orbit.Radius()
}

func (cc *cameraControllerImpl) ActiveTransition() (Transition, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.animator.Current()
}

func (cc *cameraControllerImpl) Modes() []string {
	return cc.registry.IDs()
}
