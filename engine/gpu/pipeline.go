package gpu

import "github.com/cogentcore/webgpu/wgpu"

// Pipeline describes a render pipeline drawing one vertex buffer with the camera uniform
// bound at @group(0) @binding(0). It holds its GPU objects once registered with a Device.
type Pipeline interface {
	// Key returns the label used for the pipeline and its GPU objects.
	Key() string

	// Source returns the WGSL source holding both entry points.
	Source() string

	// VertexEntryPoint returns the vertex shader entry point name.
	VertexEntryPoint() string

	// FragmentEntryPoint returns the fragment shader entry point name.
	FragmentEntryPoint() string

	// VertexLayout returns the layout of vertex buffer slot 0.
	VertexLayout() wgpu.VertexBufferLayout

	// UniformSize returns the minimum binding size of the camera uniform in bytes.
	UniformSize() uint64

	// DepthTestEnabled returns whether fragments are depth tested.
	DepthTestEnabled() bool

	// DepthWriteEnabled returns whether fragments write depth.
	DepthWriteEnabled() bool

	// CullMode returns the face culling mode.
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology.
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order.
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask.
	WriteMask() wgpu.ColorWriteMask

	// Ready reports whether the pipeline has been registered and can be drawn.
	Ready() bool
}

type pipelineImpl struct {
	key                string
	source             string
	vertexEntryPoint   string
	fragmentEntryPoint string
	vertexLayout       wgpu.VertexBufferLayout
	uniformSize        uint64

	depthTestEnabled  bool
	depthWriteEnabled bool
	cullMode          wgpu.CullMode
	topology          wgpu.PrimitiveTopology
	frontFace         wgpu.FrontFace
	writeMask         wgpu.ColorWriteMask

	// set by Device.RegisterPipeline
	module          *wgpu.ShaderModule
	bindGroupLayout *wgpu.BindGroupLayout
	pipelineLayout  *wgpu.PipelineLayout
	renderPipeline  *wgpu.RenderPipeline
	bindGroup       *wgpu.BindGroup
}

var _ Pipeline = &pipelineImpl{}

// NewPipeline creates an unregistered render pipeline description.
//
// Parameters:
//   - key: label for the pipeline
//   - source: WGSL source with a vertex and a fragment entry point
//   - options: functional options to configure the pipeline
//
// Returns:
//   - Pipeline: the pipeline, to be passed to Device.RegisterPipeline
func NewPipeline(key, source string, options ...PipelineBuilderOption) Pipeline {
	p := &pipelineImpl{
		key:                key,
		source:             source,
		vertexEntryPoint:   "vs_main",
		fragmentEntryPoint: "fs_main",
		uniformSize:        uniformAlignment,
		depthTestEnabled:   true,
		depthWriteEnabled:  true,
		cullMode:           wgpu.CullModeNone,
		topology:           wgpu.PrimitiveTopologyTriangleList,
		frontFace:          wgpu.FrontFaceCCW,
		writeMask:          wgpu.ColorWriteMaskAll,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pipelineImpl) Key() string {
	return p.key
}

func (p *pipelineImpl) Source() string {
	return p.source
}

func (p *pipelineImpl) VertexEntryPoint() string {
	return p.vertexEntryPoint
}

func (p *pipelineImpl) FragmentEntryPoint() string {
	return p.fragmentEntryPoint
}

func (p *pipelineImpl) VertexLayout() wgpu.VertexBufferLayout {
	return p.vertexLayout
}

func (p *pipelineImpl) UniformSize() uint64 {
	return p.uniformSize
}

func (p *pipelineImpl) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipelineImpl) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipelineImpl) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipelineImpl) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipelineImpl) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipelineImpl) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipelineImpl) Ready() bool {
	return p.renderPipeline != nil && p.bindGroup != nil
}

// release frees the GPU objects created at registration.
func (p *pipelineImpl) release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.renderPipeline != nil {
		p.renderPipeline.Release()
		p.renderPipeline = nil
	}
	if p.pipelineLayout != nil {
		p.pipelineLayout.Release()
		p.pipelineLayout = nil
	}
	if p.bindGroupLayout != nil {
		p.bindGroupLayout.Release()
		p.bindGroupLayout = nil
	}
	if p.module != nil {
		p.module.Release()
		p.module = nil
	}
}

// depthCompare returns the depth comparison used by the pipeline.
func (p *pipelineImpl) depthCompare() wgpu.CompareFunction {
	if !p.depthTestEnabled {
		return wgpu.CompareFunctionAlways
	}
	return wgpu.CompareFunctionLess
}
