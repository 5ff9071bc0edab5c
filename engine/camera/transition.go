package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-avatar/common"
)

// completionEpsilon absorbs clock rounding so a transition ticked for exactly its
// duration in float steps still completes on that tick.
const completionEpsilon = 1e-9

// Transition is an in-flight interpolation between two poses on the render-loop clock.
type Transition struct {
	From     Pose
	To       Pose
	Start    float64
	Duration float64
}

// TransitionAnimator eases the camera from one pose to another over a fixed duration.
// Timestamps are render-loop seconds, so a backgrounded window does not skip the animation.
// Starting a new transition replaces any transition in flight.
type TransitionAnimator struct {
	active  bool
	current Transition
}

// NewTransitionAnimator creates an idle animator.
func NewTransitionAnimator() *TransitionAnimator {
	return &TransitionAnimator{}
}

// Start begins a transition, cancelling any transition in flight.
//
// Parameters:
//   - from: the pose at progress 0
//   - to: the pose at progress 1
//   - duration: length in seconds; non-positive values complete on the next Advance
//   - now: render-loop timestamp in seconds
func (a *TransitionAnimator) Start(from, to Pose, duration, now float64) {
	a.current = Transition{From: from, To: to, Start: now, Duration: duration}
	a.active = true
}

// Cancel stops the transition in flight without snapping to its end pose.
func (a *TransitionAnimator) Cancel() {
	a.active = false
	a.current = Transition{}
}

// Active reports whether a transition is in flight.
func (a *TransitionAnimator) Active() bool {
	return a.active
}

// Current returns the transition in flight and whether there is one.
func (a *TransitionAnimator) Current() (Transition, bool) {
	return a.current, a.active
}

// Progress returns the linear progress in [0, 1] at now, or 0 when idle.
//
// Parameters:
//   - now: render-loop timestamp in seconds
//
// Returns:
//   - float64: clamp((now - start) / duration, 0, 1); 0 if now is NaN
func (a *TransitionAnimator) Progress(now float64) float64 {
	if !a.active {
		return 0
	}
	if a.current.Duration <= 0 {
		return 1
	}
	t := (now - a.current.Start) / a.current.Duration
	if math.IsNaN(t) {
		return 0
	}
	t = common.Clamp(t, 0, 1)
	if t >= 1-completionEpsilon {
		return 1
	}
	return t
}

// Advance computes the eased pose at now. Position, target and field of view are
// interpolated independently with an ease-in-out cubic. When progress reaches 1 the
// exact end pose is returned, done is true and the animator becomes idle.
//
// Parameters:
//   - now: render-loop timestamp in seconds
//
// Returns:
//   - Pose: the pose to render this frame
//   - bool: true if the transition completed on this call
func (a *TransitionAnimator) Advance(now float64) (Pose, bool) {
	if !a.active {
		return Pose{}, false
	}
	t := a.Progress(now)
	if t >= 1 {
		end := a.current.To
		a.Cancel()
		return end, true
	}
	return a.current.From.Lerp(a.current.To, common.EaseInOutCubic(t)), false
}
