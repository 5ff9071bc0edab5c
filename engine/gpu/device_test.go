package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignUniformSize(t *testing.T) {
	tests := []struct {
		in, want uint64
	}{
		{0, 16},
		{1, 16},
		{16, 16},
		{17, 32},
		{96, 96},
		{100, 112},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, alignUniformSize(tt.in), "size %d", tt.in)
	}
}

func TestPresentModeMapping(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, toWGPUPresentMode(PresentModeVSync))
	assert.Equal(t, wgpu.PresentModeImmediate, toWGPUPresentMode(PresentModeUncapped))
}

func TestNewDeviceRejectsNilSurface(t *testing.T) {
	d, err := NewDevice(nil)
	require.Error(t, err)
	assert.Nil(t, d)
}

func TestBuilderOptions(t *testing.T) {
	d := &deviceImpl{}
	WithForceFallbackAdapter(true)(d)
	WithPresentMode(PresentModeUncapped)(d)
	WithClearColor(0.2, 0.3, 0.4)(d)

	assert.True(t, d.forceFallbackAdapter)
	assert.Equal(t, PresentModeUncapped, d.presentMode)
	assert.Equal(t, wgpu.Color{R: 0.2, G: 0.3, B: 0.4, A: 1}, d.clearColor)
}
