package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-avatar/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitClampingInvariant(t *testing.T) {
	bounds := DefaultOrbitBounds()
	o := NewOrbit(bounds, 0, math.Pi/2, 5, mgl64.Vec3{0, 1, 0})
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		scale := math.Pow(10, float64(rng.Intn(5)-1))
		o.ApplyDelta(
			(rng.Float64()*2-1)*scale*10,
			(rng.Float64()*2-1)*scale,
			(rng.Float64()*2-1)*scale*5,
		)
		require.GreaterOrEqual(t, o.Polar(), bounds.MinPolar+bounds.Epsilon)
		require.LessOrEqual(t, o.Polar(), bounds.MaxPolar-bounds.Epsilon)
		require.Greater(t, o.Polar(), bounds.MinPolar)
		require.Less(t, o.Polar(), bounds.MaxPolar)
		require.GreaterOrEqual(t, o.Radius(), bounds.MinDistance)
		require.LessOrEqual(t, o.Radius(), bounds.MaxDistance)
		require.GreaterOrEqual(t, o.Azimuth(), 0.0)
		require.Less(t, o.Azimuth(), common.TwoPi)
	}
}

func TestOrbitAzimuthIsNeverClamped(t *testing.T) {
	o := NewOrbit(DefaultOrbitBounds(), 0, math.Pi/2, 5, mgl64.Vec3{})
	for i := 0; i < 8; i++ {
		o.ApplyDelta(math.Pi/4, 0, 0)
	}
	assert.InDelta(t, 0, math.Abs(common.AngleDelta(0, o.Azimuth())), 1e-9)

	o.ApplyDelta(-3*math.Pi/2, 0, 0)
	assert.InDelta(t, math.Pi/2, o.Azimuth(), 1e-9)
}

func TestOrbitCartesianFormula(t *testing.T) {
	target := mgl64.Vec3{1, 2, 3}
	o := NewOrbit(DefaultOrbitBounds(), 0, math.Pi/2, 2, target)
	p := o.Pose(50)
	assert.InDelta(t, 3, p.Position.X(), 1e-12)
	assert.InDelta(t, 2, p.Position.Y(), 1e-12)
	assert.InDelta(t, 3, p.Position.Z(), 1e-12)
	assert.Equal(t, target, p.Target)
	assert.Equal(t, 50.0, p.FieldOfView)

	o.Set(math.Pi/2, math.Pi/2, 2)
	assert.InDelta(t, 5, o.Position().Z(), 1e-12)

	o.Set(0, 0.5, 2)
	assert.InDelta(t, 2+2*math.Cos(0.5), o.Position().Y(), 1e-12)
}

func TestOrbitRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bounds := DefaultOrbitBounds()
	for i := 0; i < 500; i++ {
		az := rng.Float64() * common.TwoPi
		polar := bounds.MinPolar + bounds.Epsilon + rng.Float64()*(bounds.MaxPolar-bounds.MinPolar-2*bounds.Epsilon)
		radius := bounds.MinDistance + rng.Float64()*(bounds.MaxDistance-bounds.MinDistance)
		target := mgl64.Vec3{rng.Float64()*4 - 2, rng.Float64() * 2, rng.Float64()*4 - 2}

		src := NewOrbit(bounds, az, polar, radius, target)
		dst := NewOrbit(bounds, 1, 1, 3, mgl64.Vec3{})
		require.True(t, dst.SetFromPose(src.Pose(60)))

		assert.InDelta(t, 0, common.AngleDelta(src.Azimuth(), dst.Azimuth()), 1e-6)
		assert.InDelta(t, src.Polar(), dst.Polar(), 1e-6)
		assert.InDelta(t, src.Radius(), dst.Radius(), 1e-6)
		assert.True(t, src.Target().ApproxEqualThreshold(dst.Target(), 1e-9))
	}
}

func TestOrbitSetFromDegeneratePose(t *testing.T) {
	o := NewOrbit(DefaultOrbitBounds(), 1.2, 0.8, 4, mgl64.Vec3{})
	ok := o.SetFromPose(NewPose(0, 1, 0, 0, 1, 0, 45))

	assert.False(t, ok)
	assert.InDelta(t, 1.2, o.Azimuth(), 1e-12)
	assert.InDelta(t, 0.8, o.Polar(), 1e-12)
	assert.InDelta(t, 4, o.Radius(), 1e-12)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, o.Target())
}

func TestOrbitSetFromPoseAboveTargetKeepsAzimuth(t *testing.T) {
	o := NewOrbit(DefaultOrbitBounds(), 2.0, 1.0, 4, mgl64.Vec3{})
	require.True(t, o.SetFromPose(NewPose(0, 3, 0, 0, 0, 0, 45)))

	assert.InDelta(t, 2.0, o.Azimuth(), 1e-12)
	assert.InDelta(t, o.Bounds().MinPolar+o.Bounds().Epsilon, o.Polar(), 1e-12)
	assert.InDelta(t, 3, o.Radius(), 1e-12)
}

func TestOrbitApplyZoomFactor(t *testing.T) {
	o := NewOrbit(DefaultOrbitBounds(), 0, 1, 4, mgl64.Vec3{})

	o.ApplyZoomFactor(0.5)
	assert.InDelta(t, 2, o.Radius(), 1e-12)

	o.ApplyZoomFactor(0.5)
	o.ApplyZoomFactor(0.5)
	assert.Equal(t, o.Bounds().MinDistance, o.Radius())

	for _, bad := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		o.ApplyZoomFactor(bad)
		assert.Equal(t, o.Bounds().MinDistance, o.Radius())
	}

	o.ApplyZoomFactor(100)
	assert.Equal(t, o.Bounds().MaxDistance, o.Radius())
}

func TestOrbitIgnoresNaNDeltas(t *testing.T) {
	o := NewOrbit(DefaultOrbitBounds(), 1, 1, 4, mgl64.Vec3{})
	o.ApplyDelta(0, math.NaN(), math.NaN())
	assert.InDelta(t, 1, o.Polar(), 1e-12)
	assert.InDelta(t, 4, o.Radius(), 1e-12)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		o.ApplyDelta(bad, 0, 0)
		assert.InDelta(t, 1, o.Azimuth(), 1e-12, "azimuth delta %v", bad)
	}
}
