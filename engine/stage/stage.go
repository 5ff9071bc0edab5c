// Package stage draws the placeholder scene the avatar camera frames: a ground grid and
// the avatar's bounding sphere, both transformed by the camera uniform.
package stage

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-avatar/engine/camera"
	"github.com/Carmen-Shannon/oxy-avatar/engine/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderSource is the WGSL for the stage lines. Colors fade with distance from the
// camera look-at point so the framed subject stays brightest.
const ShaderSource = camera.GPUCameraUniformSource + `
@group(0) @binding(0) var<uniform> camera: CameraUniform;

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec3<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) color: vec3<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = camera.view_proj * vec4<f32>(position, 1.0);
    let fade = clamp(1.0 - distance(position, camera.look_at) / 12.0, 0.25, 1.0);
    out.color = color * fade;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(in.color, 1.0);
}
`

// Stage owns the line geometry and the pipeline that draws it.
type Stage struct {
	device      gpu.Device
	pipeline    gpu.Pipeline
	vertices    *wgpu.Buffer
	vertexCount uint32

	gridHalfExtent float32
	gridDivisions  int
	gridColor      mgl32.Vec3
	axisColor      mgl32.Vec3

	avatarCenter mgl32.Vec3
	avatarRadius float32
	avatarColor  mgl32.Vec3
}

// New builds the stage geometry, uploads it and registers its pipeline against the
// camera uniform buffer.
//
// Parameters:
//   - device: the GPU device
//   - uniform: the camera uniform buffer written by camera.GPUTarget
//   - options: functional options to configure the stage
//
// Returns:
//   - *Stage: the stage, ready to Draw inside a frame
//   - error: error if the vertex buffer or pipeline cannot be created
func New(device gpu.Device, uniform *wgpu.Buffer, options ...StageOption) (*Stage, error) {
	s := newStage(options...)
	s.device = device

	vertices := s.Geometry()
	buf, err := device.CreateVertexBuffer("Stage Vertices", Marshal(vertices))
	if err != nil {
		return nil, fmt.Errorf("stage: %w", err)
	}

	var u camera.GPUCameraUniform
	p := gpu.NewPipeline("Stage", ShaderSource,
		gpu.WithTopology(wgpu.PrimitiveTopologyLineList),
		gpu.WithVertexLayout(VertexLayout()),
		gpu.WithUniformSize(uint64(u.Size())),
	)
	if err := device.RegisterPipeline(p, uniform); err != nil {
		if buf != nil {
			buf.Release()
		}
		return nil, fmt.Errorf("stage: %w", err)
	}

	s.pipeline = p
	s.vertices = buf
	s.vertexCount = uint32(len(vertices))
	return s, nil
}

// newStage applies defaults and options without touching the GPU.
func newStage(options ...StageOption) *Stage {
	s := &Stage{
		gridHalfExtent: 5,
		gridDivisions:  10,
		gridColor:      mgl32.Vec3{0.35, 0.35, 0.4},
		axisColor:      mgl32.Vec3{0.6, 0.6, 0.7},
		avatarCenter:   mgl32.Vec3{0, 0.9, 0},
		avatarRadius:   0.9,
		avatarColor:    mgl32.Vec3{0.95, 0.6, 0.3},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Geometry returns the grid followed by the avatar bounds as a line list.
func (s *Stage) Geometry() []Vertex {
	vertices := Grid(s.gridHalfExtent, s.gridDivisions, s.gridColor, s.axisColor)
	return append(vertices, WireSphere(s.avatarCenter, s.avatarRadius, 5, 4, 32, s.avatarColor)...)
}

// Draw records the stage into the open frame pass. Call between BeginFrame and EndFrame.
func (s *Stage) Draw() {
	s.device.Draw(s.pipeline, s.vertices, s.vertexCount)
}

// Release frees the vertex buffer. The pipeline is released with the device.
func (s *Stage) Release() {
	if s.vertices != nil {
		s.vertices.Release()
		s.vertices = nil
	}
}
