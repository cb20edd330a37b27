package surface

import (
	"math"
	"testing"
)

func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func paraboloid() Data {
	return FromFunction(-1, 1, -1, 1, 10, 10, func(x, y float64) float64 {
		return x*x + y*y
	})
}

func TestFromFunction(t *testing.T) {
	d := paraboloid()
	if d.XCount() != 10 || d.YCount() != 10 {
		t.Fatalf("grid = %dx%d", d.XCount(), d.YCount())
	}
	if d.zMin < 0 || d.zMax > 2 {
		t.Errorf("z range = [%v, %v]", d.zMin, d.zMax)
	}
}

func TestNewDataDimensionMismatch(t *testing.T) {
	if _, err := NewData([]float64{0, 1}, []float64{0, 1}, []float64{0}); err == nil {
		t.Error("expected dimension error")
	}
}

func TestNormalizeLinear(t *testing.T) {
	d := FromFunction(0, 100, -2, 2, 11, 5, func(x, y float64) float64 {
		return x + y
	})
	if got := d.NormalizeX(0); !within(got, -1, 1e-9) {
		t.Errorf("NormalizeX(0) = %v", got)
	}
	if got := d.NormalizeX(100); !within(got, 1, 1e-9) {
		t.Errorf("NormalizeX(100) = %v", got)
	}
	if got := d.NormalizeX(50); !within(got, 0, 1e-9) {
		t.Errorf("NormalizeX(50) = %v", got)
	}
	// z spans [-2, 102].
	if got := d.NormalizeZ(-2); !within(got, 0, 1e-9) {
		t.Errorf("NormalizeZ(min) = %v", got)
	}
	if got := d.NormalizeZ(102); !within(got, 1, 1e-9) {
		t.Errorf("NormalizeZ(max) = %v", got)
	}
}

func TestNormalizeLog(t *testing.T) {
	d := FromFunction(10, 1000, 0, 1, 3, 2, func(_, _ float64) float64 {
		return 0
	}).LogX(true)
	// Geometric mean maps to the middle.
	if got := d.NormalizeX(100); !within(got, 0, 1e-9) {
		t.Errorf("log NormalizeX(100) = %v", got)
	}
	if got := d.NormalizeX(10); !within(got, -1, 1e-9) {
		t.Errorf("log NormalizeX(10) = %v", got)
	}

	dz := d.ZRange(10, 1000).LogZ(true)
	if got := dz.NormalizeZ(100); !within(got, 0.5, 1e-9) {
		t.Errorf("log NormalizeZ(100) = %v", got)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	d := FromFunction(0, 1, 0, 1, 2, 2, func(_, _ float64) float64 {
		return 7
	})
	if got := d.NormalizeZ(7); !within(got, 0.5, 1e-9) {
		t.Errorf("constant field NormalizeZ = %v, want 0.5", got)
	}
}

func TestBuildMeshCounts(t *testing.T) {
	m := BuildMesh(paraboloid(), Cartesian)
	if len(m.Vertices) != 100 {
		t.Errorf("vertices = %d, want 100", len(m.Vertices))
	}
	if len(m.Indices) != 9*9*6 {
		t.Errorf("indices = %d, want %d", len(m.Indices), 9*9*6)
	}
	if m.XCount != 10 || m.YCount != 10 {
		t.Errorf("mesh grid = %dx%d", m.XCount, m.YCount)
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBuildMeshTooSmall(t *testing.T) {
	d, _ := NewData([]float64{0}, []float64{0}, []float64{1})
	if m := BuildMesh(d, Cartesian); !m.IsEmpty() {
		t.Error("1x1 grid should produce an empty mesh")
	}
}

func TestFlatSurfaceNormals(t *testing.T) {
	d := FromFunction(-1, 1, -1, 1, 5, 5, func(_, _ float64) float64 {
		return 0
	})
	m := BuildMesh(d, Cartesian)
	for i, v := range m.Vertices {
		if v.Normal[1] < 0.9 {
			t.Errorf("vertex %d normal = %v, want up", i, v.Normal)
		}
	}
}

func TestSphericalMeshOnUnitSphere(t *testing.T) {
	m := BuildMesh(paraboloid(), Spherical)
	for i, v := range m.Vertices {
		r := math.Sqrt(float64(dot3(v.Position, v.Position)))
		if !within(r, 1, 1e-5) {
			t.Errorf("vertex %d radius = %v", i, r)
		}
	}
}

func TestWireframeIndices(t *testing.T) {
	// 3x3 grid: 6 horizontal + 6 vertical segments.
	got := WireframeIndices(3, 3)
	if len(got) != 24 {
		t.Errorf("3x3 wireframe has %d indices, want 24", len(got))
	}
	// Every pair connects grid-adjacent vertices.
	for i := 0; i+1 < len(got); i += 2 {
		a, b := int(got[i]), int(got[i+1])
		dx := abs(a%3 - b%3)
		dy := abs(a/3 - b/3)
		if dx+dy != 1 {
			t.Errorf("edge %d-%d is not grid adjacent", a, b)
		}
	}
	if got := WireframeIndices(2, 2); len(got) != 8 {
		t.Errorf("2x2 wireframe has %d indices, want 8", len(got))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestBufferEncoding(t *testing.T) {
	m := BuildMesh(paraboloid(), Cartesian)
	if got := len(m.VertexBytes()); got != len(m.Vertices)*vertexStride {
		t.Errorf("vertex bytes = %d", got)
	}
	if got := len(m.IndexBytes()); got != len(m.Indices)*4 {
		t.Errorf("index bytes = %d", got)
	}
	layout := VertexLayout()
	if layout[0].ArrayStride != vertexStride {
		t.Errorf("stride = %d", layout[0].ArrayStride)
	}
	if len(layout[0].Attributes) != 4 {
		t.Errorf("attributes = %d", len(layout[0].Attributes))
	}
}

func TestColormapBounds(t *testing.T) {
	maps := []Colormap{Viridis, Plasma, Inferno, Magma, Turbo, Heat, CoolWarm, Spectral, RdBu}
	for _, cm := range maps {
		for i := 0; i <= 20; i++ {
			c := cm.At(float64(i) / 20)
			if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
				t.Errorf("%v at %v out of range: %+v", cm, float64(i)/20, c)
			}
		}
		// Clamped outside [0, 1].
		if cm.At(-1) != cm.At(0) || cm.At(2) != cm.At(1) {
			t.Errorf("%v does not clamp t", cm)
		}
	}
}

func TestColormapReferencePoints(t *testing.T) {
	c := Viridis.At(0)
	if !within(c.R, 0.2777, 0.01) || !within(c.G, 0.0054, 0.01) || !within(c.B, 0.3340, 0.01) {
		t.Errorf("viridis(0) = %+v", c)
	}
	h := Heat.At(0)
	if h.R != 0 || h.G != 0 || h.B != 0 {
		t.Errorf("heat(0) = %+v, want black", h)
	}
	h = Heat.At(1)
	if h.R != 1 || h.G != 1 || h.B != 1 {
		t.Errorf("heat(1) = %+v, want white", h)
	}
	mid := CoolWarm.At(0.5)
	if !within(mid.R, 0.87, 1e-9) || !within(mid.G, 0.87, 1e-9) {
		t.Errorf("coolwarm midpoint = %+v", mid)
	}
	// The diverging ramps hit their middle anchor exactly.
	neutral := RdBu.At(0.5)
	if !within(neutral.R, neutral.G, 1e-9) || !within(neutral.G, neutral.B, 1e-9) {
		t.Errorf("rdbu midpoint not neutral: %+v", neutral)
	}
}

func TestCameraProjectsCenter(t *testing.T) {
	cam := NewCamera()
	pt, depth, ok := cam.ProjectToScreen([3]float32{0, 0, 0}, 800, 600)
	if !ok {
		t.Fatal("center not visible")
	}
	if !within(pt.X, 400, 1e-3) || !within(pt.Y, 300, 1e-3) {
		t.Errorf("center projects to %v", pt)
	}
	if depth <= 0 || depth >= 1 {
		t.Errorf("depth = %v", depth)
	}
	// A point behind the eye is rejected.
	if _, _, ok := cam.ProjectToScreen([3]float32{4, 4, 4}, 800, 600); ok {
		t.Error("point behind camera reported visible")
	}
}

func TestOrthographicModesProject(t *testing.T) {
	for _, mode := range []Mode{Orthographic, Isometric, Oblique} {
		cam := NewCamera()
		cam.Mode = mode
		pt, _, ok := cam.ProjectToScreen([3]float32{0, 0, 0}, 800, 600)
		if !ok {
			t.Errorf("mode %d: center not visible", mode)
			continue
		}
		if !within(pt.X, 400, 1e-3) || !within(pt.Y, 300, 1e-3) {
			t.Errorf("mode %d: center projects to %v", mode, pt)
		}
	}
}

func TestOrthographicZoomShrinksExtent(t *testing.T) {
	cam := NewCamera()
	cam.Mode = Orthographic
	at := func(zoom float32) float64 {
		cam.Zoom = zoom
		pt, _, _ := cam.ProjectToScreen([3]float32{0.5, 0, 0}, 800, 600)
		return math.Abs(pt.X - 400)
	}
	if at(2) <= at(1) {
		t.Error("zooming in should spread points apart")
	}
}

func TestOrbitControls(t *testing.T) {
	o := NewOrbit()
	start := o.EyePosition()
	o.Rotate(50, 20)
	moved := o.EyePosition()
	if length3(sub3(start, moved)) < 0.01 {
		t.Error("rotate did not move the eye")
	}
	d0 := o.Distance
	o.Zoom(1)
	if o.Distance >= d0 {
		t.Error("zoom in did not reduce distance")
	}
	o.Rotate(0, 1e6)
	if o.Elevation > o.MaxElevation {
		t.Error("elevation not clamped")
	}
	o.Reset()
	if length3(sub3(o.EyePosition(), start)) > 1e-3 {
		t.Error("reset did not restore the viewpoint")
	}
}

func TestRenderPainterOrder(t *testing.T) {
	m := BuildMesh(paraboloid(), Cartesian)
	r := NewRenderer()
	tris := r.Render(m, NewCamera(), 800, 600)
	if len(tris) == 0 {
		t.Fatal("no triangles rendered")
	}
	for i := 1; i < len(tris); i++ {
		if tris[i].Depth > tris[i-1].Depth+1e-9 {
			t.Fatalf("triangle %d out of painter order", i)
		}
	}
	p := TrianglePath(tris)
	if p.IsEmpty() {
		t.Error("triangle path is empty")
	}
}

func TestRenderOpacity(t *testing.T) {
	m := BuildMesh(paraboloid(), Cartesian)
	r := NewRenderer()
	r.Opacity = 0.5
	tris := r.Render(m, NewCamera(), 800, 600)
	if tris[0].Color.A != 0.5 {
		t.Errorf("alpha = %v", tris[0].Color.A)
	}
}

func TestIsolines(t *testing.T) {
	d := paraboloid()
	runs := Isolines(d, []float64{0.5})
	if len(runs) == 0 {
		t.Fatal("no isolines at mid level")
	}
	for _, run := range runs {
		if len(run) < 2 {
			t.Fatal("degenerate isoline run")
		}
		for _, p := range run {
			// Level 0.5 sits at mesh height 0.
			if !within(float64(p[1]), 0, 1e-5) {
				t.Errorf("isoline height = %v, want 0", p[1])
			}
		}
	}
}

func TestIsolineLevels(t *testing.T) {
	levels := IsolineLevels(0.25)
	want := []float64{0.25, 0.5, 0.75}
	if len(levels) != len(want) {
		t.Fatalf("levels = %v", levels)
	}
	for i := range want {
		if !within(levels[i], want[i], 1e-9) {
			t.Errorf("level %d = %v", i, levels[i])
		}
	}
}

func TestUniformBlock(t *testing.T) {
	r := NewRenderer()
	u := r.BuildUniforms(NewCamera(), FlagWireframe)
	b := u.Bytes()
	if len(b) != UniformBlockSize {
		t.Errorf("uniform block = %d bytes, want %d", len(b), UniformBlockSize)
	}
	if u.Flags&FlagWireframe == 0 {
		t.Error("wireframe flag lost")
	}
}
