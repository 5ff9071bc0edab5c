package main

import (
	"log"

	"github.com/Carmen-Shannon/oxy-avatar/common"
	"github.com/Carmen-Shannon/oxy-avatar/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// keyBindings maps keyboard input onto controller commands.
// Keys 1-9 select the registered modes in order (Shift snaps instead of animating),
// R resets, A toggles auto-rotation, Space cancels a transition and I logs the camera state.
type keyBindings struct {
	controller camera.CameraController
	logger     *log.Logger
	// held Shift keys; key repeat re-sends presses
	shift map[uint32]bool
}

func newKeyBindings(controller camera.CameraController, logger *log.Logger) *keyBindings {
	return &keyBindings{controller: controller, logger: logger, shift: make(map[uint32]bool)}
}

func (b *keyBindings) keyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyLeftShift, common.KeyRightShift:
		b.shift[keyCode] = true
		return
	case common.KeyR:
		b.controller.ResetToDefault()
		return
	case common.KeyA:
		info := b.controller.CurrentInfo()
		b.controller.SetAutoRotate(!info.AutoRotate, info.AutoRotateSpeed)
		return
	case common.KeySpace:
		b.controller.CancelTransition()
		return
	case common.KeyI:
		b.logInfo()
		return
	}

	idx, ok := common.DigitIndex(keyCode)
	if !ok {
		return
	}
	ids := b.controller.Modes()
	if idx >= len(ids) {
		return
	}
	// Unknown ids are logged by the controller.
	_ = b.controller.SetMode(ids[idx], len(b.shift) == 0)
}

func (b *keyBindings) keyUp(keyCode uint32) {
	switch keyCode {
	case common.KeyLeftShift, common.KeyRightShift:
		delete(b.shift, keyCode)
	}
}

func (b *keyBindings) logInfo() {
	info := b.controller.CurrentInfo()
	b.logger.Printf("[Camera] mode=%s position=(%.2f, %.2f, %.2f) target=(%.2f, %.2f, %.2f) distance=%.2f fov=%.1f auto_rotate=%t transitioning=%t",
		info.Mode,
		info.Position.X(), info.Position.Y(), info.Position.Z(),
		info.Target.X(), info.Target.Y(), info.Target.Z(),
		info.Distance, info.FieldOfView, info.AutoRotate, info.Transitioning)
}

// frustumSource is implemented by camera.GPUTarget.
type frustumSource interface {
	Frustum() common.Frustum
}

// framingMonitor logs when the avatar's bounding sphere leaves or re-enters the view.
type framingMonitor struct {
	source  frustumSource
	center  mgl32.Vec3
	radius  float32
	logger  *log.Logger
	inFrame bool
}

func newFramingMonitor(source frustumSource, center mgl32.Vec3, radius float32, logger *log.Logger) *framingMonitor {
	return &framingMonitor{source: source, center: center, radius: radius, logger: logger, inFrame: true}
}

// check compares the avatar bounds against the current frustum and reports changes.
//
// Returns:
//   - bool: true if any part of the avatar is visible
func (m *framingMonitor) check() bool {
	visible := m.source.Frustum().IntersectsSphere(m.center, m.radius)
	if visible != m.inFrame {
		if visible {
			m.logger.Printf("[Camera] avatar back in frame")
		} else {
			m.logger.Printf("[Camera] avatar out of frame")
		}
		m.inFrame = visible
	}
	return visible
}
