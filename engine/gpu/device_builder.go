package gpu

import "github.com/cogentcore/webgpu/wgpu"

// DeviceBuilderOption is a functional option for configuring a Device.
type DeviceBuilderOption func(*deviceImpl)

// WithForceFallbackAdapter requests the software fallback adapter.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - DeviceBuilderOption: option function to apply
func WithForceFallbackAdapter(force bool) DeviceBuilderOption {
	return func(d *deviceImpl) {
		d.forceFallbackAdapter = force
	}
}

// WithPresentMode sets the surface present mode. Defaults to PresentModeVSync.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - DeviceBuilderOption: option function to apply
func WithPresentMode(mode PresentMode) DeviceBuilderOption {
	return func(d *deviceImpl) {
		d.presentMode = mode
	}
}

// WithClearColor sets the background color the surface is cleared to each frame.
//
// Parameters:
//   - r, g, b: color components in [0, 1]
//
// Returns:
//   - DeviceBuilderOption: option function to apply
func WithClearColor(r, g, b float64) DeviceBuilderOption {
	return func(d *deviceImpl) {
		d.clearColor = wgpu.Color{R: r, G: g, B: b, A: 1.0}
	}
}
