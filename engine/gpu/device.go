package gpu

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrFrameInFlight is returned by BeginFrame when the previous surface texture has not
// been presented yet.
var ErrFrameInFlight = errors.New("previous frame surface not yet presented")

// uniformAlignment is the size granularity WebGPU requires for uniform buffer bindings.
const uniformAlignment = 16

// depthFormat is the format of the depth attachment every frame pass carries.
const depthFormat = wgpu.TextureFormatDepth24Plus

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// Device owns the WebGPU instance, surface, adapter, device and queue for one window.
// It creates the camera uniform and vertex buffers, registers pipelines that read the
// camera uniform, and clears, draws and presents the surface each frame.
type Device interface {
	// Device returns the logical device.
	Device() *wgpu.Device

	// Queue returns the device queue used for buffer uploads.
	Queue() *wgpu.Queue

	// ConfigureSurface (re)creates the swapchain and depth buffer for the given pixel size.
	// Zero sizes (minimized windows) are ignored.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	//
	// Returns:
	//   - error: error if the depth buffer could not be created
	ConfigureSurface(width, height int) error

	// CreateUniformBuffer allocates a uniform buffer that can be written from the queue.
	// The size is rounded up to the uniform alignment.
	//
	// Parameters:
	//   - label: debug label
	//   - size: requested size in bytes
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer
	//   - error: error if allocation fails
	CreateUniformBuffer(label string, size uint64) (*wgpu.Buffer, error)

	// CreateVertexBuffer allocates a vertex buffer and uploads data into it.
	//
	// Parameters:
	//   - label: debug label
	//   - data: the vertex bytes
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer
	//   - error: error if data is empty or allocation fails
	CreateVertexBuffer(label string, data []byte) (*wgpu.Buffer, error)

	// RegisterPipeline creates the shader module, layouts and render pipeline for p and
	// binds uniform at @group(0) @binding(0). The device releases them on Release.
	//
	// Parameters:
	//   - p: a pipeline created with NewPipeline
	//   - uniform: the camera uniform buffer
	//
	// Returns:
	//   - error: error if p is foreign, uniform is nil, or a GPU object cannot be created
	RegisterPipeline(p Pipeline, uniform *wgpu.Buffer) error

	// Draw records a non-indexed draw of vertexCount vertices into the open frame pass.
	// It does nothing outside BeginFrame/EndFrame or for unregistered pipelines.
	//
	// Parameters:
	//   - p: a registered pipeline
	//   - vertices: the vertex buffer for slot 0
	//   - vertexCount: number of vertices to draw
	Draw(p Pipeline, vertices *wgpu.Buffer, vertexCount uint32)

	// BeginFrame acquires the next surface texture and opens a render pass clearing color and depth.
	//
	// Returns:
	//   - error: ErrFrameInFlight or an acquisition error; the frame must be skipped
	BeginFrame() error

	// EndFrame closes the render pass and submits it.
	EndFrame()

	// Present presents the acquired surface texture.
	Present()

	// Release frees every GPU object owned by the device.
	Release()
}

type deviceImpl struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	forceFallbackAdapter bool
	presentMode          PresentMode
	clearColor           wgpu.Color

	configured    bool
	surfaceFormat wgpu.TextureFormat
	depthTexture  *wgpu.Texture
	depthView     *wgpu.TextureView

	pipelines []*pipelineImpl

	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ Device = &deviceImpl{}

// NewDevice creates the WebGPU device chain for a window surface.
//
// Parameters:
//   - surfaceDescriptor: the platform surface descriptor from the window
//   - options: functional options to configure the device
//
// Returns:
//   - Device: the new device
//   - error: error if no adapter or device could be obtained
func NewDevice(surfaceDescriptor *wgpu.SurfaceDescriptor, options ...DeviceBuilderOption) (Device, error) {
	if surfaceDescriptor == nil {
		return nil, errors.New("gpu: nil surface descriptor")
	}
	runtime.LockOSThread()

	d := &deviceImpl{
		mu:          &sync.Mutex{},
		presentMode: PresentModeVSync,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
	for _, opt := range options {
		opt(d)
	}

	d.instance = wgpu.CreateInstance(nil)
	d.surface = d.instance.CreateSurface(surfaceDescriptor)

	a, err := d.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: d.forceFallbackAdapter,
		CompatibleSurface:    d.surface,
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("gpu: request adapter: %w", err)
	}
	d.adapter = a

	capabilities := d.surface.GetCapabilities(a)
	if len(capabilities.Formats) == 0 || len(capabilities.AlphaModes) == 0 {
		d.Release()
		return nil, errors.New("gpu: surface is not supported by the adapter")
	}
	d.surfaceFormat = capabilities.Formats[0]

	dev, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Avatar Camera Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("gpu: request device: %w", err)
	}
	d.device = dev
	d.queue = dev.GetQueue()

	return d, nil
}

func (d *deviceImpl) Device() *wgpu.Device {
	return d.device
}

func (d *deviceImpl) Queue() *wgpu.Queue {
	return d.queue
}

func (d *deviceImpl) ConfigureSurface(width, height int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if width <= 0 || height <= 0 {
		return nil
	}

	capabilities := d.surface.GetCapabilities(d.adapter)
	d.surface.Configure(d.adapter, d.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      d.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: toWGPUPresentMode(d.presentMode),
		AlphaMode:   capabilities.AlphaModes[0],
	})

	d.releaseDepth()
	depthTexture, err := d.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        depthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		d.configured = false
		return fmt.Errorf("gpu: create depth texture: %w", err)
	}
	depthView, err := depthTexture.CreateView(nil)
	if err != nil {
		depthTexture.Release()
		d.configured = false
		return fmt.Errorf("gpu: create depth view: %w", err)
	}
	d.depthTexture = depthTexture
	d.depthView = depthView
	d.configured = true
	return nil
}

func (d *deviceImpl) CreateUniformBuffer(label string, size uint64) (*wgpu.Buffer, error) {
	buf, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label,
		Size:             alignUniformSize(size),
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create buffer %q: %w", label, err)
	}
	return buf, nil
}

func (d *deviceImpl) CreateVertexBuffer(label string, data []byte) (*wgpu.Buffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("gpu: vertex buffer %q has no data", label)
	}
	buf, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label,
		Size:             uint64(len(data)),
		Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create buffer %q: %w", label, err)
	}
	d.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

func (d *deviceImpl) RegisterPipeline(p Pipeline, uniform *wgpu.Buffer) error {
	impl, ok := p.(*pipelineImpl)
	if !ok || impl == nil {
		return errors.New("gpu: pipeline was not created with NewPipeline")
	}
	if uniform == nil {
		return fmt.Errorf("gpu: pipeline %q: nil uniform buffer", impl.key)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.device == nil {
		return fmt.Errorf("gpu: pipeline %q: device released", impl.key)
	}
	if err := d.createPipeline(impl, uniform); err != nil {
		impl.release()
		return fmt.Errorf("gpu: pipeline %q: %w", impl.key, err)
	}
	d.pipelines = append(d.pipelines, impl)
	return nil
}

// createPipeline builds the GPU objects of p. Caller must hold the mutex.
func (d *deviceImpl) createPipeline(p *pipelineImpl, uniform *wgpu.Buffer) error {
	var err error
	p.module, err = d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: p.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: p.source,
		},
	})
	if err != nil {
		return err
	}

	p.bindGroupLayout, err = d.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: p.key + " Camera Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: p.uniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}

	p.pipelineLayout, err = d.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.key,
		BindGroupLayouts: []*wgpu.BindGroupLayout{p.bindGroupLayout},
	})
	if err != nil {
		return err
	}

	p.renderPipeline, err = d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.key + " Render Pipeline",
		Layout: p.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     p.module,
			EntryPoint: p.vertexEntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{p.vertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     p.module,
			EntryPoint: p.fragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    d.surfaceFormat,
					WriteMask: p.writeMask,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.topology,
			FrontFace: p.frontFace,
			CullMode:  p.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: p.depthWriteEnabled,
			DepthCompare:      p.depthCompare(),
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return err
	}

	p.bindGroup, err = d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  p.key + " Camera Bind Group",
		Layout: p.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uniform,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	return nil
}

func (d *deviceImpl) Draw(p Pipeline, vertices *wgpu.Buffer, vertexCount uint32) {
	impl, ok := p.(*pipelineImpl)
	if !ok || impl == nil || !impl.Ready() || vertices == nil || vertexCount == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.framePass == nil {
		return
	}
	d.framePass.SetPipeline(impl.renderPipeline)
	d.framePass.SetBindGroup(0, impl.bindGroup, nil)
	d.framePass.SetVertexBuffer(0, vertices, 0, wgpu.WholeSize)
	d.framePass.Draw(vertexCount, 1, 0, 0)
}

func (d *deviceImpl) BeginFrame() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.configured || d.depthView == nil {
		return errors.New("gpu: surface not configured")
	}
	if d.frameSurface != nil {
		return ErrFrameInFlight
	}

	surfaceTexture, err := d.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: d.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            d.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})

	d.frameEncoder = encoder
	d.framePass = pass
	d.frameSurface = surfaceTexture
	d.frameView = view
	return nil
}

func (d *deviceImpl) EndFrame() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.framePass == nil {
		return
	}
	d.framePass.End()

	commandBuffer, err := d.frameEncoder.Finish(nil)
	if err != nil {
		d.frameEncoder.Release()
		d.releaseFrameTargets()
		d.frameEncoder = nil
		d.framePass = nil
		return
	}

	d.queue.Submit(commandBuffer)

	commandBuffer.Release()
	d.frameEncoder.Release()
	d.frameEncoder = nil
	d.framePass = nil
}

func (d *deviceImpl) Present() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.frameSurface == nil {
		return
	}
	d.surface.Present()
	d.releaseFrameTargets()
}

func (d *deviceImpl) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.releaseFrameTargets()
	for _, p := range d.pipelines {
		p.release()
	}
	d.pipelines = nil
	d.releaseDepth()
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.surface != nil {
		d.surface.Release()
		d.surface = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
}

// releaseFrameTargets drops the acquired surface texture and its view. Caller must hold the mutex.
func (d *deviceImpl) releaseFrameTargets() {
	if d.frameView != nil {
		d.frameView.Release()
		d.frameView = nil
	}
	if d.frameSurface != nil {
		d.frameSurface.Release()
		d.frameSurface = nil
	}
}

// releaseDepth drops the depth attachment. Caller must hold the mutex.
func (d *deviceImpl) releaseDepth() {
	if d.depthView != nil {
		d.depthView.Release()
		d.depthView = nil
	}
	if d.depthTexture != nil {
		d.depthTexture.Release()
		d.depthTexture = nil
	}
}

// alignUniformSize rounds size up to the uniform binding granularity.
func alignUniformSize(size uint64) uint64 {
	if size == 0 {
		return uniformAlignment
	}
	return (size + uniformAlignment - 1) / uniformAlignment * uniformAlignment
}

func toWGPUPresentMode(mode PresentMode) wgpu.PresentMode {
	switch mode {
	case PresentModeUncapped:
		return wgpu.PresentModeImmediate
	default:
		return wgpu.PresentModeFifo
	}
}
