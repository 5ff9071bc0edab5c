package gpu

import "github.com/cogentcore/webgpu/wgpu"

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipelineImpl)

// WithEntryPoints sets the vertex and fragment entry point names. Defaults to vs_main and fs_main.
//
// Parameters:
//   - vertex: the vertex entry point
//   - fragment: the fragment entry point
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithEntryPoints(vertex, fragment string) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		if vertex != "" {
			p.vertexEntryPoint = vertex
		}
		if fragment != "" {
			p.fragmentEntryPoint = fragment
		}
	}
}

// WithVertexLayout sets the layout of vertex buffer slot 0.
//
// Parameters:
//   - layout: stride, step mode and attributes of the vertex buffer
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithVertexLayout(layout wgpu.VertexBufferLayout) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.vertexLayout = layout
	}
}

// WithUniformSize sets the minimum binding size of the camera uniform, rounded up to 16 bytes.
//
// Parameters:
//   - size: the uniform struct size in bytes
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithUniformSize(size uint64) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.uniformSize = alignUniformSize(size)
	}
}

// WithDepthTestEnabled sets whether fragments are depth tested.
//
// Parameters:
//   - enabled: true to test depth
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether fragments write depth.
//
// Parameters:
//   - enabled: true to write depth
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.depthWriteEnabled = enabled
	}
}

// WithCullMode sets the face culling mode.
//
// Parameters:
//   - mode: the cull mode (e.g., wgpu.CullModeNone, wgpu.CullModeBack)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: the topology (e.g., wgpu.PrimitiveTopologyLineList)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.topology = topology
	}
}

// WithFrontFace sets the front face winding order.
//
// Parameters:
//   - frontFace: the winding order (e.g., wgpu.FrontFaceCCW)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.frontFace = frontFace
	}
}

// WithWriteMask sets the color write mask.
//
// Parameters:
//   - writeMask: the color write mask
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.writeMask = writeMask
	}
}
