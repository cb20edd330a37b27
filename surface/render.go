package surface

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/gogpu/viz"
	"github.com/gogpu/viz/contour"
)

// Renderer holds the shading parameters shared by the CPU and GPU
// paths.
type Renderer struct {
	Colormap Colormap
	Ambient  float64
	Diffuse  float64
	LightDir [3]float32
	Opacity  float64
}

// NewRenderer returns the default shading: viridis, 0.3 ambient,
// 0.7 diffuse, light from (1, 1, 1).
func NewRenderer() Renderer {
	return Renderer{
		Colormap: Viridis,
		Ambient:  0.3,
		Diffuse:  0.7,
		LightDir: normalize3([3]float32{1, 1, 1}),
		Opacity:  1,
	}
}

// RenderedTriangle is one shaded, screen-space triangle.
type RenderedTriangle struct {
	Points [3]viz.Point
	Depth  float64
	Color  viz.RGBA
}

// Render projects and shades the mesh for the given camera, returning
// triangles sorted far to near so a renderer can paint them in order.
func (r Renderer) Render(m Mesh, cam Camera, width, height float64) []RenderedTriangle {
	type projected struct {
		pt    viz.Point
		depth float64
		ok    bool
	}
	screen := make([]projected, len(m.Vertices))
	for i, v := range m.Vertices {
		pt, depth, ok := cam.ProjectToScreen(v.Position, width, height)
		screen[i] = projected{pt: pt, depth: depth, ok: ok}
	}
	light := normalize3(r.LightDir)
	out := make([]RenderedTriangle, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		sa, sb, sc := screen[a], screen[b], screen[c]
		if !sa.ok || !sb.ok || !sc.ok {
			continue
		}
		va, vb, vc := m.Vertices[a], m.Vertices[b], m.Vertices[c]
		value := float64(va.Value+vb.Value+vc.Value) / 3
		normal := normalize3([3]float32{
			va.Normal[0] + vb.Normal[0] + vc.Normal[0],
			va.Normal[1] + vb.Normal[1] + vc.Normal[1],
			va.Normal[2] + vb.Normal[2] + vc.Normal[2],
		})
		lambert := math.Max(0, float64(dot3(normal, light)))
		shade := math.Min(1, r.Ambient+r.Diffuse*lambert)
		base := r.Colormap.At(value)
		color := viz.RGB(base.R*shade, base.G*shade, base.B*shade).WithAlpha(r.Opacity)
		out = append(out, RenderedTriangle{
			Points: [3]viz.Point{sa.pt, sb.pt, sc.pt},
			Depth:  (sa.depth + sb.depth + sc.depth) / 3,
			Color:  color,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}

// TrianglePath converts painter-sorted triangles into a single path,
// one closed subpath per triangle.
func TrianglePath(tris []RenderedTriangle) *viz.Path {
	p := viz.NewPath()
	for _, t := range tris {
		p.MoveTo(t.Points[0].X, t.Points[0].Y)
		p.LineTo(t.Points[1].X, t.Points[1].Y)
		p.LineTo(t.Points[2].X, t.Points[2].Y)
		p.Close()
	}
	return p
}

// Isolines traces contour lines of the z field at the given normalized
// levels (0..1) and lifts them onto the surface. Each returned
// polyline is a run of world-space positions matching the mesh.
func Isolines(d Data, levels []float64) [][][3]float32 {
	xc, yc := d.XCount(), d.YCount()
	if xc < 2 || yc < 2 {
		return nil
	}
	// Contour on the normalized field keeps levels in colormap space.
	values := make([]float64, xc*yc)
	for i, z := range d.Z {
		values[i] = d.NormalizeZ(z)
	}
	grid, err := contour.NewGrid(values, xc, yc)
	if err != nil {
		return nil
	}
	var out [][][3]float32
	lift := func(pts []viz.Point, level float64) [][3]float32 {
		run := make([][3]float32, len(pts))
		for i, pt := range pts {
			// Fractional grid coordinates interpolate the axis vectors.
			run[i] = [3]float32{
				float32(d.NormalizeX(sampleAxis(d.X, pt.X))),
				float32(level - 0.5),
				float32(d.NormalizeY(sampleAxis(d.Y, pt.Y))),
			}
		}
		return run
	}
	for _, c := range grid.Contours(levels) {
		for _, ring := range c.Rings {
			out = append(out, lift(ring.Points, c.Value))
		}
		for _, line := range c.Lines {
			out = append(out, lift(line, c.Value))
		}
	}
	return out
}

// IsolineLevels returns evenly stepped normalized levels, the default
// overlay spacing.
func IsolineLevels(step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var out []float64
	for v := step; v < 1; v += step {
		out = append(out, v)
	}
	return out
}

func sampleAxis(axis []float64, pos float64) float64 {
	i := int(math.Floor(pos))
	if i < 0 {
		return axis[0]
	}
	if i >= len(axis)-1 {
		return axis[len(axis)-1]
	}
	frac := pos - float64(i)
	return axis[i] + frac*(axis[i+1]-axis[i])
}

// Uniforms is the shading uniform block uploaded alongside the mesh.
// The layout is std140-compatible: a mat4 followed by four vec4 slots.
type Uniforms struct {
	ViewProj      Mat4
	LightDir      [3]float32
	Ambient       float32
	Diffuse       float32
	Opacity       float32
	ColormapIndex uint32
	Flags         uint32
}

// Uniform flag bits.
const (
	FlagWireframe uint32 = 1 << iota
	FlagIsolines
)

// UniformBlockSize is the byte size of the packed uniform block.
const UniformBlockSize = 96

// Bytes packs the block little-endian for upload.
func (u Uniforms) Bytes() []byte {
	out := make([]byte, 0, UniformBlockSize)
	var buf [4]byte
	putF := func(f float32) {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		out = append(out, buf[:]...)
	}
	putU := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:], v)
		out = append(out, buf[:]...)
	}
	for _, f := range u.ViewProj {
		putF(f)
	}
	putF(u.LightDir[0])
	putF(u.LightDir[1])
	putF(u.LightDir[2])
	putF(u.Ambient)
	putF(u.Diffuse)
	putF(u.Opacity)
	putU(u.ColormapIndex)
	putU(u.Flags)
	return out
}

// BuildUniforms assembles the block from a renderer and camera.
func (r Renderer) BuildUniforms(cam Camera, flags uint32) Uniforms {
	return Uniforms{
		ViewProj:      cam.ViewProjection(),
		LightDir:      normalize3(r.LightDir),
		Ambient:       float32(r.Ambient),
		Diffuse:       float32(r.Diffuse),
		Opacity:       float32(r.Opacity),
		ColormapIndex: r.Colormap.ShaderIndex(),
		Flags:         flags,
	}
}
