package camera

import "github.com/cogentcore/webgpu/wgpu"

// GPUTargetOption is a functional option for configuring a GPUTarget.
type GPUTargetOption func(*GPUTarget)

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - GPUTargetOption: a function that sets the up vector
func WithUp(x, y, z float32) GPUTargetOption {
	return func(g *GPUTarget) {
		g.up = [3]float32{x, y, z}
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - GPUTargetOption: a function that sets the aspect ratio
func WithAspect(aspect float32) GPUTargetOption {
	return func(g *GPUTarget) {
		g.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - GPUTargetOption: a function that sets the near plane
func WithNear(near float32) GPUTargetOption {
	return func(g *GPUTarget) {
		g.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - GPUTargetOption: a function that sets the far plane
func WithFar(far float32) GPUTargetOption {
	return func(g *GPUTarget) {
		g.far = far
	}
}

// WithBuffer sets the uniform buffer the target uploads into.
//
// Parameters:
//   - buffer: uniform buffer with CopyDst usage
//   - offset: byte offset of the uniform inside the buffer
//
// Returns:
//   - GPUTargetOption: a function that sets the buffer
func WithBuffer(buffer *wgpu.Buffer, offset uint64) GPUTargetOption {
	return func(g *GPUTarget) {
		g.buffer = buffer
		g.bufferOffset = offset
	}
}
