package camera

import "log"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRegistry sets the mode table. Defaults to NewDefaultModeRegistry.
//
// Parameters:
//   - registry: the populated mode registry
//
// Returns:
//   - CameraControllerOption: functional option to set the registry
func WithRegistry(registry *ModeRegistry) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.registry = registry
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - CameraControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds.MinDistance = min
		cc.bounds.MaxDistance = max
	}
}

// WithPolarBounds sets the polar angle limits, measured in radians from +Y.
//
// Parameters:
//   - min: smallest polar angle (0 = straight above the target)
//   - max: largest polar angle (π = straight below the target)
//
// Returns:
//   - CameraControllerOption: functional option to set polar bounds
func WithPolarBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds.MinPolar = min
		cc.bounds.MaxPolar = max
	}
}

// WithPolarEpsilon sets the margin kept between the polar angle and its bounds.
//
// Parameters:
//   - epsilon: margin in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the polar margin
func WithPolarEpsilon(epsilon float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds.Epsilon = epsilon
	}
}

// WithMouseSensitivity sets the pointer drag sensitivity.
//
// Parameters:
//   - sensitivity: radians per pixel
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithTouchSensitivity sets the single-finger drag sensitivity.
//
// Parameters:
//   - sensitivity: radians per pixel
//
// Returns:
//   - CameraControllerOption: functional option to set touch sensitivity
func WithTouchSensitivity(sensitivity float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.touchSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the wheel zoom multiplier.
//
// Parameters:
//   - speed: radius units per unit of scroll
//
// Returns:
//   - CameraControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithAutoRotate sets the initial auto-rotation state.
//
// Parameters:
//   - enabled: whether idle rotation runs
//   - speed: radians per second
//
// Returns:
//   - CameraControllerOption: functional option to set auto-rotation
func WithAutoRotate(enabled bool, speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.autoRotate = enabled
		cc.autoRotateSpeed = speed
	}
}

// WithInitialMode sets the mode framed at construction. Defaults to ModeDefault.
//
// Parameters:
//   - id: the mode identifier
//
// Returns:
//   - CameraControllerOption: functional option to set the initial mode
func WithInitialMode(id string) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.initialMode = id
	}
}

// WithLogger sets the logger used for recoverable errors. Defaults to log.Default().
//
// Parameters:
//   - logger: the destination logger
//
// Returns:
//   - CameraControllerOption: functional option to set the logger
func WithLogger(logger *log.Logger) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if logger != nil {
			cc.logger = logger
		}
	}
}

// WithClock sets the render-loop timestamp the controller starts at.
//
// Parameters:
//   - now: render-loop clock in seconds
//
// Returns:
//   - CameraControllerOption: functional option to set the start clock
func WithClock(now float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.clock = now
	}
}
