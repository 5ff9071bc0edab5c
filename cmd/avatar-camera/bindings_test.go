package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/Carmen-Shannon/oxy-avatar/common"
	"github.com/Carmen-Shannon/oxy-avatar/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBindings(t *testing.T) (*keyBindings, camera.CameraController, *camera.GPUTarget, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	target := camera.NewGPUTarget()
	controller := camera.NewCameraController(target, nil, camera.WithLogger(logger))
	return newKeyBindings(controller, logger), controller, target, &logs
}

func TestDigitSelectsModeInOrder(t *testing.T) {
	b, controller, _, _ := newTestBindings(t)

	b.keyDown(common.Key2)
	info := controller.CurrentInfo()
	assert.Equal(t, camera.ModeCloseup, info.Mode)
	assert.True(t, info.Transitioning)

	b.keyDown(common.Key9)
	assert.Equal(t, camera.ModeCloseup, controller.CurrentInfo().Mode, "digits past the registry are ignored")
}

func TestShiftDigitSnaps(t *testing.T) {
	b, controller, target, _ := newTestBindings(t)

	b.keyDown(common.KeyLeftShift)
	b.keyDown(common.KeyLeftShift) // key repeat
	b.keyDown(common.Key4)
	info := controller.CurrentInfo()
	assert.Equal(t, camera.ModeSide, info.Mode)
	assert.False(t, info.Transitioning)
	assert.InDelta(t, 4, target.Uniform().CameraPosition[0], 1e-4)

	b.keyUp(common.KeyLeftShift)
	b.keyDown(common.Key1)
	assert.True(t, controller.CurrentInfo().Transitioning)
}

func TestControlKeys(t *testing.T) {
	b, controller, _, logs := newTestBindings(t)

	b.keyDown(common.KeyA)
	assert.True(t, controller.CurrentInfo().AutoRotate)
	b.keyDown(common.KeyA)
	assert.False(t, controller.CurrentInfo().AutoRotate)

	b.keyDown(common.Key3)
	b.keyDown(common.KeySpace)
	assert.False(t, controller.CurrentInfo().Transitioning)

	b.keyDown(common.KeyR)
	assert.Equal(t, camera.ModeDefault, controller.CurrentInfo().Mode)

	b.keyDown(common.KeyI)
	assert.Contains(t, logs.String(), "[Camera] mode=default")
}

func TestFramingMonitorLogsChanges(t *testing.T) {
	var logs bytes.Buffer
	target := camera.NewGPUTarget()
	controller := camera.NewCameraController(target, nil, camera.WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	m := newFramingMonitor(target, avatarCenter, avatarRadius, log.New(&logs, "", 0))

	require.True(t, m.check())
	assert.Empty(t, logs.String())

	// Look away from the avatar.
	target.SetLookAt(0, 1.5, 20)
	assert.False(t, m.check())
	assert.Contains(t, logs.String(), "out of frame")

	controller.Tick(0, 0)
	assert.True(t, m.check())
	assert.Contains(t, logs.String(), "back in frame")
}
