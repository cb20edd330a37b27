package surface

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// Vertex is the GPU vertex layout: position, normal, colormap
// parameter and texture coordinates. Field order matches VertexLayout.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Value    float32
	UV       [2]float32
}

// vertexStride is the packed size of Vertex in bytes.
const vertexStride = 36

// PlotType selects how grid coordinates map into 3D space.
type PlotType uint8

const (
	// Cartesian maps x and y to the horizontal plane and z to height.
	Cartesian PlotType = iota
	// Spherical wraps the grid onto a unit sphere: x drives latitude,
	// y longitude, z only the colormap.
	Spherical
)

// Mesh is a triangulated surface ready for upload or CPU projection.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	XCount   int
	YCount   int
}

// BuildMesh triangulates the data grid: one vertex per sample, two
// triangles per cell sharing the diagonal.
func BuildMesh(d Data, plot PlotType) Mesh {
	xc, yc := d.XCount(), d.YCount()
	if xc < 2 || yc < 2 {
		return Mesh{}
	}
	verts := make([]Vertex, 0, xc*yc)
	for yi := 0; yi < yc; yi++ {
		for xi := 0; xi < xc; xi++ {
			nx := d.NormalizeX(d.X[xi])
			ny := d.NormalizeY(d.Y[yi])
			nz := d.NormalizeZ(d.At(xi, yi))
			var pos [3]float32
			switch plot {
			case Spherical:
				phi := nx * math.Pi / 2
				theta := ny * math.Pi
				pos = [3]float32{
					float32(math.Cos(phi) * math.Sin(theta)),
					float32(math.Sin(phi)),
					float32(math.Cos(phi) * math.Cos(theta)),
				}
			default:
				pos = [3]float32{float32(nx), float32(nz - 0.5), float32(ny)}
			}
			verts = append(verts, Vertex{
				Position: pos,
				Normal:   [3]float32{0, 1, 0},
				Value:    float32(nz),
				UV: [2]float32{
					float32(xi) / float32(xc-1),
					float32(yi) / float32(yc-1),
				},
			})
		}
	}
	computeNormals(verts, xc, yc)

	indices := make([]uint32, 0, (xc-1)*(yc-1)*6)
	for yi := 0; yi < yc-1; yi++ {
		for xi := 0; xi < xc-1; xi++ {
			i00 := uint32(yi*xc + xi)
			i10 := i00 + 1
			i01 := uint32((yi+1)*xc + xi)
			i11 := i01 + 1
			indices = append(indices, i00, i10, i01, i10, i11, i01)
		}
	}
	return Mesh{Vertices: verts, Indices: indices, XCount: xc, YCount: yc}
}

// IsEmpty reports whether the mesh has no geometry.
func (m Mesh) IsEmpty() bool { return len(m.Vertices) == 0 }

// computeNormals assigns per-vertex normals from the cross product of
// central-difference tangents, forward or backward at the edges.
// Normals always point up out of the surface.
func computeNormals(verts []Vertex, xc, yc int) {
	at := func(xi, yi int) [3]float32 {
		return verts[yi*xc+xi].Position
	}
	for yi := 0; yi < yc; yi++ {
		for xi := 0; xi < xc; xi++ {
			pos := at(xi, yi)
			var dx, dy [3]float32
			switch {
			case xi == 0:
				dx = sub3(at(xi+1, yi), pos)
			case xi == xc-1:
				dx = sub3(pos, at(xi-1, yi))
			default:
				dx = scale3(sub3(at(xi+1, yi), at(xi-1, yi)), 0.5)
			}
			switch {
			case yi == 0:
				dy = sub3(at(xi, yi+1), pos)
			case yi == yc-1:
				dy = sub3(pos, at(xi, yi-1))
			default:
				dy = scale3(sub3(at(xi, yi+1), at(xi, yi-1)), 0.5)
			}
			n := normalize3(cross3(dy, dx))
			if n[1] < 0 {
				n = scale3(n, -1)
			}
			verts[yi*xc+xi].Normal = n
		}
	}
}

// WireframeIndices builds a line-list index buffer over the grid
// edges of a mesh with the given dimensions.
func WireframeIndices(xc, yc int) []uint32 {
	out := make([]uint32, 0, 2*(yc*(xc-1)+(yc-1)*xc))
	for yi := 0; yi < yc; yi++ {
		for xi := 0; xi < xc-1; xi++ {
			i := uint32(yi*xc + xi)
			out = append(out, i, i+1)
		}
	}
	for yi := 0; yi < yc-1; yi++ {
		for xi := 0; xi < xc; xi++ {
			i := uint32(yi*xc + xi)
			out = append(out, i, i+uint32(xc))
		}
	}
	return out
}

// VertexLayout describes the vertex buffer for pipeline creation.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
				{Format: gputypes.VertexFormatFloat32, Offset: 24, ShaderLocation: 2},   // value
				{Format: gputypes.VertexFormatFloat32x2, Offset: 28, ShaderLocation: 3}, // uv
			},
		},
	}
}

// Buffer metadata for the upload path.
const (
	IndexFormat       = gputypes.IndexFormatUint32
	SurfaceTopology   = gputypes.PrimitiveTopologyTriangleList
	WireframeTopology = gputypes.PrimitiveTopologyLineList
)

// VertexBufferUsage is the usage for mesh vertex buffers.
const VertexBufferUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst

// IndexBufferUsage is the usage for mesh index buffers.
const IndexBufferUsage = gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst

// UniformBufferUsage is the usage for the shading uniform block.
const UniformBufferUsage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst

// VertexBytes packs the vertex slice little-endian for upload.
func (m Mesh) VertexBytes() []byte {
	out := make([]byte, 0, len(m.Vertices)*vertexStride)
	var buf [4]byte
	put := func(f float32) {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		out = append(out, buf[:]...)
	}
	for _, v := range m.Vertices {
		put(v.Position[0])
		put(v.Position[1])
		put(v.Position[2])
		put(v.Normal[0])
		put(v.Normal[1])
		put(v.Normal[2])
		put(v.Value)
		put(v.UV[0])
		put(v.UV[1])
	}
	return out
}

// IndexBytes packs the index slice little-endian for upload.
func (m Mesh) IndexBytes() []byte {
	out := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(out[i*4:], idx)
	}
	return out
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale3(a [3]float32, k float32) [3]float32 {
	return [3]float32{a[0] * k, a[1] * k, a[2] * k}
}

func cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func normalize3(a [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(dot3(a, a))))
	if l == 0 {
		return [3]float32{}
	}
	return scale3(a, 1/l)
}
