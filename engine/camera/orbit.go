package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-avatar/common"
	"github.com/go-gl/mathgl/mgl64"
)

// degenerateRadius is the offset length below which a pose cannot be inverted to angles.
const degenerateRadius = 1e-9

// OrbitBounds holds the clamping limits of an Orbit.
type OrbitBounds struct {
	// MinPolar and MaxPolar bound the polar angle in radians, measured from +Y.
	MinPolar, MaxPolar float64
	// Epsilon keeps the polar angle strictly inside (MinPolar, MaxPolar) so the
	// look-at direction never aligns with the up axis.
	Epsilon float64
	// MinDistance and MaxDistance bound the orbit radius.
	MinDistance, MaxDistance float64
}

// DefaultOrbitBounds returns the limits used by the avatar view.
func DefaultOrbitBounds() OrbitBounds {
	return OrbitBounds{
		MinPolar:    0,
		MaxPolar:    math.Pi,
		Epsilon:     0.01,
		MinDistance: 1,
		MaxDistance: 10,
	}
}

// Orbit holds spherical coordinates around a target point.
//
// Azimuth is kept in [0, 2π) and never clamped. Polar is kept in
// [MinPolar+Epsilon, MaxPolar-Epsilon] and Radius in [MinDistance, MaxDistance].
type Orbit struct {
	azimuth float64
	polar   float64
	radius  float64
	target  mgl64.Vec3

	bounds OrbitBounds
}

// NewOrbit creates an orbit at the given angles and radius, clamped to bounds.
//
// Parameters:
//   - bounds: clamping limits
//   - azimuth: horizontal angle in radians
//   - polar: vertical angle from +Y in radians
//   - radius: distance from the target
//   - target: the point orbited around
//
// Returns:
//   - *Orbit: the new orbit state
func NewOrbit(bounds OrbitBounds, azimuth, polar, radius float64, target mgl64.Vec3) *Orbit {
	o := &Orbit{bounds: bounds, target: target}
	o.Set(azimuth, polar, radius)
	return o
}

// Azimuth returns the horizontal angle in radians, in [0, 2π).
func (o *Orbit) Azimuth() float64 { return o.azimuth }

// Polar returns the vertical angle from +Y in radians.
func (o *Orbit) Polar() float64 { return o.polar }

// Radius returns the distance from the target.
func (o *Orbit) Radius() float64 { return o.radius }

// Target returns the orbited point.
func (o *Orbit) Target() mgl64.Vec3 { return o.target }

// Bounds returns the clamping limits.
func (o *Orbit) Bounds() OrbitBounds { return o.bounds }

// SetTarget moves the orbited point without changing the spherical coordinates.
func (o *Orbit) SetTarget(t mgl64.Vec3) { o.target = t }

// Set assigns all three spherical coordinates, normalizing and clamping them.
// A NaN coordinate or an infinite azimuth keeps its previous value. Infinite polar and
// radius values saturate at the bounds.
func (o *Orbit) Set(azimuth, polar, radius float64) {
	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) {
		azimuth = o.azimuth
	}
	o.azimuth = common.WrapAngle(azimuth)
	o.polar = o.clampPolar(polar)
	o.radius = o.clampRadius(radius)
}

// ApplyDelta adds the deltas then normalizes azimuth and clamps polar and radius.
//
// Parameters:
//   - deltaAzimuth: radians added to the azimuth
//   - deltaPolar: radians added to the polar angle
//   - deltaRadius: distance added to the radius
func (o *Orbit) ApplyDelta(deltaAzimuth, deltaPolar, deltaRadius float64) {
	o.Set(o.azimuth+deltaAzimuth, o.polar+deltaPolar, o.radius+deltaRadius)
}

// ApplyZoomFactor multiplies the radius by factor and clamps it.
// Non-positive or non-finite factors are ignored.
//
// Parameters:
//   - factor: radius multiplier
func (o *Orbit) ApplyZoomFactor(factor float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	o.radius = o.clampRadius(o.radius * factor)
}

// Position returns the Cartesian camera position for the current coordinates:
// target + radius * (sin(polar)cos(azimuth), cos(polar), sin(polar)sin(azimuth)).
func (o *Orbit) Position() mgl64.Vec3 {
	sinP, cosP := math.Sincos(o.polar)
	sinA, cosA := math.Sincos(o.azimuth)
	return o.target.Add(mgl64.Vec3{sinP * cosA, cosP, sinP * sinA}.Mul(o.radius))
}

// Pose converts the orbit to a camera pose with the given field of view.
// The look-at target is always the orbit target.
//
// Parameters:
//   - fov: field of view in degrees carried into the pose
//
// Returns:
//   - Pose: the Cartesian pose
func (o *Orbit) Pose(fov float64) Pose {
	return Pose{Position: o.Position(), Target: o.target, FieldOfView: fov}
}

// SetFromPose resynchronizes the orbit from a Cartesian pose. The target is always
// adopted. If the position coincides with the target the sphere cannot be inverted:
// azimuth, polar and radius keep their previous values and false is returned.
//
// Parameters:
//   - pose: the pose to invert
//
// Returns:
//   - bool: false if the pose was degenerate
func (o *Orbit) SetFromPose(pose Pose) bool {
	o.target = pose.Target
	offset := pose.Position.Sub(pose.Target)
	r := offset.Len()
	if r < degenerateRadius || math.IsNaN(r) {
		return false
	}
	polar := math.Acos(common.Clamp(offset.Y()/r, -1, 1))
	azimuth := o.azimuth
	// Straight above or below the target the azimuth is undefined; keep the previous one.
	if math.Hypot(offset.X(), offset.Z()) > degenerateRadius {
		azimuth = math.Atan2(offset.Z(), offset.X())
	}
	o.Set(azimuth, polar, r)
	return true
}

func (o *Orbit) clampPolar(p float64) float64 {
	if math.IsNaN(p) {
		p = o.polar
	}
	return common.Clamp(p, o.bounds.MinPolar+o.bounds.Epsilon, o.bounds.MaxPolar-o.bounds.Epsilon)
}

func (o *Orbit) clampRadius(r float64) float64 {
	if math.IsNaN(r) {
		r = o.radius
	}
	return common.Clamp(r, o.bounds.MinDistance, o.bounds.MaxDistance)
}
