package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-avatar/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose fully describes a camera framing: where the camera sits, the point it looks at,
// and its vertical field of view in degrees.
type Pose struct {
	Position    mgl64.Vec3
	Target      mgl64.Vec3
	FieldOfView float64
}

// NewPose builds a Pose from raw components.
//
// Parameters:
//   - px, py, pz: camera position
//   - tx, ty, tz: look-at target
//   - fov: vertical field of view in degrees
//
// Returns:
//   - Pose: the assembled pose
func NewPose(px, py, pz, tx, ty, tz, fov float64) Pose {
	return Pose{
		Position:    mgl64.Vec3{px, py, pz},
		Target:      mgl64.Vec3{tx, ty, tz},
		FieldOfView: fov,
	}
}

// Distance returns the distance between the camera position and its target.
func (p Pose) Distance() float64 {
	return p.Position.Sub(p.Target).Len()
}

// Lerp interpolates position, target and field of view independently toward to.
//
// Parameters:
//   - to: the pose reached at t = 1
//   - t: interpolation factor
//
// Returns:
//   - Pose: the interpolated pose
func (p Pose) Lerp(to Pose, t float64) Pose {
	return Pose{
		Position:    p.Position.Add(to.Position.Sub(p.Position).Mul(t)),
		Target:      p.Target.Add(to.Target.Sub(p.Target).Mul(t)),
		FieldOfView: common.Lerp(p.FieldOfView, to.FieldOfView, t),
	}
}

// ApproxEqual reports whether two poses match within tolerance on every component.
//
// Parameters:
//   - o: the pose to compare against
//   - tolerance: maximum absolute difference per component
//
// Returns:
//   - bool: true if all components are within tolerance
func (p Pose) ApproxEqual(o Pose, tolerance float64) bool {
	for i := range 3 {
		if math.Abs(p.Position[i]-o.Position[i]) > tolerance || math.Abs(p.Target[i]-o.Target[i]) > tolerance {
			return false
		}
	}
	return math.Abs(p.FieldOfView-o.FieldOfView) <= tolerance
}

// apply writes the pose into a camera target.
func (p Pose) apply(target CameraTarget) {
	if target == nil {
		return
	}
	target.SetPosition(p.Position.X(), p.Position.Y(), p.Position.Z())
	target.SetLookAt(p.Target.X(), p.Target.Y(), p.Target.Z())
	target.SetFieldOfView(p.FieldOfView)
}
