package stage

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the size of one marshaled Vertex in bytes.
const VertexStride = 24

// Vertex is one colored line endpoint. Matches the vs_main inputs of ShaderSource.
type Vertex struct {
	Position mgl32.Vec3 // @location(0)
	Color    mgl32.Vec3 // @location(1)
}

// VertexLayout returns the vertex buffer layout for Vertex.
//
// Returns:
//   - wgpu.VertexBufferLayout: position then color, both vec3<f32>
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		},
	}
}

// Marshal serializes vertices into a little-endian byte buffer for GPU upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: len(vertices) * VertexStride bytes
func Marshal(vertices []Vertex) []byte {
	buf := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		base := i * VertexStride
		for c := range 3 {
			binary.LittleEndian.PutUint32(buf[base+c*4:], math.Float32bits(v.Position[c]))
			binary.LittleEndian.PutUint32(buf[base+12+c*4:], math.Float32bits(v.Color[c]))
		}
	}
	return buf
}

// Grid returns a square line grid on the y=0 plane centered on the origin.
// The two center lines use axisColor.
//
// Parameters:
//   - halfExtent: distance from the center to each edge
//   - divisions: number of cells per side; values below 1 are treated as 1
//   - color: line color
//   - axisColor: color of the lines through the origin
//
// Returns:
//   - []Vertex: a line list, two vertices per line
func Grid(halfExtent float32, divisions int, color, axisColor mgl32.Vec3) []Vertex {
	divisions = max(divisions, 1)
	step := 2 * halfExtent / float32(divisions)
	vertices := make([]Vertex, 0, 4*(divisions+1))
	for i := 0; i <= divisions; i++ {
		offset := -halfExtent + float32(i)*step
		c := color
		if 2*i == divisions {
			c = axisColor
		}
		vertices = append(vertices,
			Vertex{Position: mgl32.Vec3{offset, 0, -halfExtent}, Color: c},
			Vertex{Position: mgl32.Vec3{offset, 0, halfExtent}, Color: c},
			Vertex{Position: mgl32.Vec3{-halfExtent, 0, offset}, Color: c},
			Vertex{Position: mgl32.Vec3{halfExtent, 0, offset}, Color: c},
		)
	}
	return vertices
}

// WireSphere returns latitude rings and meridians of a sphere. It stands in for the
// avatar's bounding volume.
//
// Parameters:
//   - center: sphere center
//   - radius: sphere radius
//   - rings: number of latitude rings, excluding the poles
//   - meridians: number of full meridian circles
//   - segments: line segments per circle; values below 3 are treated as 3
//   - color: line color
//
// Returns:
//   - []Vertex: a line list, two vertices per segment
func WireSphere(center mgl32.Vec3, radius float32, rings, meridians, segments int, color mgl32.Vec3) []Vertex {
	segments = max(segments, 3)
	vertices := make([]Vertex, 0, 2*segments*(max(rings, 0)+max(meridians, 0)))

	circle := func(point func(angle float64) mgl32.Vec3) {
		for s := range segments {
			a0 := 2 * math.Pi * float64(s) / float64(segments)
			a1 := 2 * math.Pi * float64(s+1) / float64(segments)
			vertices = append(vertices,
				Vertex{Position: center.Add(point(a0)), Color: color},
				Vertex{Position: center.Add(point(a1)), Color: color},
			)
		}
	}

	for r := 1; r <= rings; r++ {
		polar := math.Pi * float64(r) / float64(rings+1)
		y := float32(math.Cos(polar)) * radius
		ringRadius := float32(math.Sin(polar)) * radius
		circle(func(a float64) mgl32.Vec3 {
			return mgl32.Vec3{ringRadius * float32(math.Cos(a)), y, ringRadius * float32(math.Sin(a))}
		})
	}
	for m := range meridians {
		// Full circles, so half a turn covers every meridian.
		heading := math.Pi * float64(m) / float64(meridians)
		dx, dz := float32(math.Cos(heading)), float32(math.Sin(heading))
		circle(func(a float64) mgl32.Vec3 {
			h := float32(math.Cos(a)) * radius
			return mgl32.Vec3{h * dx, float32(math.Sin(a)) * radius, h * dz}
		})
	}
	return vertices
}
