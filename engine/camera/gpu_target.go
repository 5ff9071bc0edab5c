package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-avatar/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// clipDepthRemap maps OpenGL clip depth [-1, 1] to the WebGPU range [0, 1].
var clipDepthRemap = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// UniformWrite is a staged upload of the camera uniform into a GPU buffer.
type UniformWrite struct {
	Buffer *wgpu.Buffer
	Offset uint64
	Data   []byte
}

// GPUTarget is a CameraTarget backed by a WebGPU uniform buffer. Pose setters only
// record the new values; matrices are rebuilt lazily and the uniform is uploaded at
// most once per Flush.
type GPUTarget struct {
	mu *sync.Mutex

	up [3]float32

	position [3]float32
	lookAt   [3]float32
	fovDeg   float32
	aspect   float32
	near     float32
	far      float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	buffer       *wgpu.Buffer
	bufferOffset uint64

	matricesDirty bool
	uploadDirty   bool
}

// Compile-time interface compliance check
var _ CameraTarget = &GPUTarget{}

// NewGPUTarget creates a GPU camera target with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the target
//
// Returns:
//   - *GPUTarget: the newly created target
func NewGPUTarget(options ...GPUTargetOption) *GPUTarget {
	g := &GPUTarget{
		mu:            &sync.Mutex{},
		up:            [3]float32{0, 1, 0},
		lookAt:        [3]float32{0, 0, 0},
		position:      [3]float32{0, 0, 1},
		fovDeg:        60,
		aspect:        1,
		near:          0.01,
		far:           100,
		matricesDirty: true,
		uploadDirty:   true,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *GPUTarget) SetPosition(x, y, z float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float32{float32(x), float32(y), float32(z)}
	g.markDirty()
}

func (g *GPUTarget) SetLookAt(x, y, z float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lookAt = [3]float32{float32(x), float32(y), float32(z)}
	g.markDirty()
}

func (g *GPUTarget) SetFieldOfView(degrees float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fovDeg = float32(degrees)
	g.markDirty()
}

// SetAspect sets the aspect ratio (width / height), typically from a resize callback.
//
// Parameters:
//   - aspect: the aspect ratio
func (g *GPUTarget) SetAspect(aspect float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if aspect <= 0 {
		return
	}
	g.aspect = aspect
	g.markDirty()
}

// SetBuffer sets the uniform buffer written by Flush.
//
// Parameters:
//   - buffer: a buffer created with BufferUsageUniform | BufferUsageCopyDst
//   - offset: byte offset of the uniform inside the buffer
func (g *GPUTarget) SetBuffer(buffer *wgpu.Buffer, offset uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buffer = buffer
	g.bufferOffset = offset
	g.uploadDirty = true
}

// ViewMatrix returns the current view matrix.
func (g *GPUTarget) ViewMatrix() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateMatrices()
	return g.viewMatrix
}

// ProjectionMatrix returns the current projection matrix (WebGPU depth range).
func (g *GPUTarget) ProjectionMatrix() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateMatrices()
	return g.projectionMatrix
}

// ViewProjectionMatrix returns projection * view.
func (g *GPUTarget) ViewProjectionMatrix() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateMatrices()
	return g.viewProjectionMatrix
}

// Frustum returns the view frustum of the current pose, used to check that the
// avatar stays in frame.
func (g *GPUTarget) Frustum() common.Frustum {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateMatrices()
	return common.ExtractFrustum(g.viewProjectionMatrix)
}

// Uniform returns the uniform block for the current pose.
//
// Returns:
//   - GPUCameraUniform: view-projection, position, fov and look-at
func (g *GPUTarget) Uniform() GPUCameraUniform {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.uniform()
}

// Pending returns the staged upload if the pose changed since the last Flush.
//
// Returns:
//   - UniformWrite: buffer, offset and serialized uniform
//   - bool: false if nothing changed
func (g *GPUTarget) Pending() (UniformWrite, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.uploadDirty {
		return UniformWrite{}, false
	}
	u := g.uniform()
	return UniformWrite{Buffer: g.buffer, Offset: g.bufferOffset, Data: u.Marshal()}, true
}

// Flush uploads the uniform through queue if the pose changed. Call once per frame
// after the controller Tick.
//
// Parameters:
//   - queue: the device queue
//
// Returns:
//   - bool: true if a write was submitted
func (g *GPUTarget) Flush(queue *wgpu.Queue) bool {
	w, ok := g.Pending()
	if !ok || queue == nil || w.Buffer == nil {
		return false
	}
	queue.WriteBuffer(w.Buffer, w.Offset, w.Data)

	g.mu.Lock()
	g.uploadDirty = false
	g.mu.Unlock()
	return true
}

// markDirty flags matrices and upload as stale. Caller must hold the mutex.
func (g *GPUTarget) markDirty() {
	g.matricesDirty = true
	g.uploadDirty = true
}

// uniform assembles the uniform block. Caller must hold the mutex.
func (g *GPUTarget) uniform() GPUCameraUniform {
	g.updateMatrices()
	return GPUCameraUniform{
		ViewProj:       g.viewProjectionMatrix,
		CameraPosition: g.position,
		FovY:           mgl32.DegToRad(g.fovDeg),
		LookAt:         g.lookAt,
	}
}

// updateMatrices recalculates view, projection and view-projection when the pose changed.
// Caller must hold the mutex.
func (g *GPUTarget) updateMatrices() {
	if !g.matricesDirty {
		return
	}
	g.viewMatrix = mgl32.LookAtV(mgl32.Vec3(g.position), mgl32.Vec3(g.lookAt), mgl32.Vec3(g.up))
	g.projectionMatrix = clipDepthRemap.Mul4(mgl32.Perspective(mgl32.DegToRad(g.fovDeg), g.aspect, g.near, g.far))
	g.viewProjectionMatrix = g.projectionMatrix.Mul4(g.viewMatrix)
	g.matricesDirty = false
}
