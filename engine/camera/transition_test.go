package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-avatar/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fromPose = NewPose(0, 1.5, 5, 0, 1, 0, 60)
	toPose   = NewPose(0, 1.2, 2, 0, 1.2, 0, 45)
)

func TestTransitionBoundaries(t *testing.T) {
	a := NewTransitionAnimator()
	a.Start(fromPose, toPose, 0.8, 10)
	require.True(t, a.Active())

	p, done := a.Advance(10)
	assert.False(t, done)
	assert.True(t, p.ApproxEqual(fromPose, 1e-12))
	assert.Equal(t, 0.0, a.Progress(10))

	p, done = a.Advance(10.8)
	assert.True(t, done)
	assert.Equal(t, toPose, p)
	assert.False(t, a.Active())
}

func TestTransitionEasedMidpoint(t *testing.T) {
	a := NewTransitionAnimator()
	a.Start(fromPose, toPose, 1, 0)

	p, done := a.Advance(0.25)
	require.False(t, done)
	eased := common.EaseInOutCubic(0.25)
	assert.InDelta(t, common.Lerp(5, 2, eased), p.Position.Z(), 1e-12)
	assert.InDelta(t, common.Lerp(1, 1.2, eased), p.Target.Y(), 1e-12)
	assert.InDelta(t, common.Lerp(60, 45, eased), p.FieldOfView, 1e-12)

	p, _ = a.Advance(0.5)
	assert.InDelta(t, 52.5, p.FieldOfView, 1e-12)
}

func TestTransitionProgressIsMonotonic(t *testing.T) {
	a := NewTransitionAnimator()
	a.Start(fromPose, toPose, 0.8, 0)

	prevZ := fromPose.Position.Z()
	for i := 1; i <= 8; i++ {
		p, done := a.Advance(float64(i) * 0.1)
		assert.LessOrEqual(t, p.Position.Z(), prevZ)
		prevZ = p.Position.Z()
		assert.Equal(t, i == 8, done)
	}
}

func TestTransitionClampsBeforeStart(t *testing.T) {
	a := NewTransitionAnimator()
	a.Start(fromPose, toPose, 1, 5)
	p, done := a.Advance(4)
	assert.False(t, done)
	assert.True(t, p.ApproxEqual(fromPose, 1e-12))
}

func TestTransitionNonFiniteClockKeepsPoseValid(t *testing.T) {
	a := NewTransitionAnimator()
	a.Start(fromPose, toPose, 1, 0)

	assert.Equal(t, 0.0, a.Progress(math.NaN()))
	p, done := a.Advance(math.NaN())
	assert.False(t, done)
	assert.True(t, p.ApproxEqual(fromPose, 1e-12))

	p, done = a.Advance(math.Inf(1))
	assert.True(t, done)
	assert.Equal(t, toPose, p)
}

func TestTransitionRestartReplacesInFlight(t *testing.T) {
	a := NewTransitionAnimator()
	a.Start(fromPose, toPose, 1, 0)
	mid, _ := a.Advance(0.5)

	full := NewPose(0, 1, 7, 0, 0.9, 0, 50)
	a.Start(mid, full, 1, 0.5)
	tr, ok := a.Current()
	require.True(t, ok)
	assert.Equal(t, mid, tr.From)
	assert.Equal(t, full, tr.To)

	p, done := a.Advance(1.5)
	assert.True(t, done)
	assert.Equal(t, full, p)
}

func TestTransitionCancelDoesNotSnap(t *testing.T) {
	a := NewTransitionAnimator()
	a.Start(fromPose, toPose, 1, 0)
	a.Advance(0.3)
	a.Cancel()

	assert.False(t, a.Active())
	_, done := a.Advance(5)
	assert.False(t, done)
	assert.Equal(t, 0.0, a.Progress(5))
}

func TestTransitionZeroDurationCompletesImmediately(t *testing.T) {
	a := NewTransitionAnimator()
	a.Start(fromPose, toPose, 0, 3)
	p, done := a.Advance(3)
	assert.True(t, done)
	assert.Equal(t, toPose, p)
}
