package contour

import (
	"math"
	"testing"

	"github.com/gogpu/viz"
)

func mustGrid(t *testing.T, values []float64, w, h int) Grid {
	t.Helper()
	g, err := NewGrid(values, w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid([]float64{1, 2, 3}, 2, 2); err == nil {
		t.Error("expected dimension error")
	}
	if _, err := NewGrid([]float64{1, 2}, 2, 1); err == nil {
		t.Error("expected minimum-size error")
	}
}

func TestSaddleSingleCell(t *testing.T) {
	// One cell with the high values on the anti-diagonal. The center
	// averages exactly to the threshold, connecting the high diagonal.
	g := mustGrid(t, []float64{0, 2, 2, 0}, 2, 2)
	c := g.Contour(1)
	if len(c.Rings) != 0 {
		t.Fatalf("got %d rings, want 0", len(c.Rings))
	}
	if len(c.Lines) != 2 {
		t.Fatalf("got %d open lines, want 2", len(c.Lines))
	}
	wantSegments := [][]viz.Point{
		{viz.Pt(0.5, 0), viz.Pt(0, 0.5)},
		{viz.Pt(1, 0.5), viz.Pt(0.5, 1)},
	}
	for i, want := range wantSegments {
		got := c.Lines[i]
		if len(got) != 2 {
			t.Fatalf("line %d has %d points", i, len(got))
		}
		for k := range want {
			if got[k].Distance(want[k]) > 1e-9 {
				t.Errorf("line %d point %d = %v, want %v", i, k, got[k], want[k])
			}
		}
	}
	// The two segments do not intersect.
	if segmentsIntersect(c.Lines[0][0], c.Lines[0][1], c.Lines[1][0], c.Lines[1][1]) {
		t.Error("saddle segments intersect")
	}
}

func segmentsIntersect(a, b, c, d viz.Point) bool {
	side := func(p, q, r viz.Point) float64 {
		return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	}
	return side(a, b, c)*side(a, b, d) < 0 && side(c, d, a)*side(c, d, b) < 0
}

func TestClosedRingAroundIsland(t *testing.T) {
	values := []float64{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}
	g := mustGrid(t, values, 4, 4)
	c := g.Contour(0.5)
	if len(c.Rings) != 1 {
		t.Fatalf("got %d rings, want 1", len(c.Rings))
	}
	if len(c.Lines) != 0 {
		t.Errorf("got %d open lines, want 0", len(c.Lines))
	}
	ring := c.Rings[0]
	if !ring.Closed() {
		t.Error("ring is not closed")
	}
	if len(ring.Points) < 4 {
		t.Errorf("ring has %d points, want >= 4", len(ring.Points))
	}
	// Interior is above threshold: counter-clockwise, positive area.
	if ring.Area() <= 0 {
		t.Errorf("ring area = %v, want positive", ring.Area())
	}
	if !ring.Contains(viz.Pt(1.5, 1.5)) {
		t.Error("ring should contain the island center")
	}
	if ring.Contains(viz.Pt(0.1, 0.1)) {
		t.Error("ring should not contain the grid corner")
	}
}

func TestContoursMultipleThresholds(t *testing.T) {
	values := []float64{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	g := mustGrid(t, values, 3, 3)
	cs := g.Contours([]float64{0.25, 0.5, 0.75})
	if len(cs) != 3 {
		t.Fatalf("got %d contours", len(cs))
	}
	for i, c := range cs {
		if len(c.Rings) != 1 {
			t.Errorf("threshold %d: %d rings, want 1", i, len(c.Rings))
		}
	}
	// Higher thresholds hug the peak: strictly smaller area.
	a0 := cs[0].Rings[0].Area()
	a2 := cs[2].Rings[0].Area()
	if !(a0 > a2 && a2 > 0) {
		t.Errorf("areas not shrinking: %v vs %v", a0, a2)
	}
}

func TestRingClosureProperty(t *testing.T) {
	// Pseudo-random smooth field; every emitted ring must be closed
	// with at least 4 vertices.
	const w, h = 12, 10
	values := make([]float64, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			values[j*w+i] = math.Sin(float64(i)*0.9) * math.Cos(float64(j)*0.7)
		}
	}
	g := mustGrid(t, values, w, h)
	for _, th := range []float64{-0.5, -0.1, 0.2, 0.6} {
		c := g.Contour(th)
		for ri, ring := range c.Rings {
			if !ring.Closed() {
				t.Errorf("threshold %v ring %d not closed", th, ri)
			}
			if len(ring.Points) < 4 {
				t.Errorf("threshold %v ring %d has %d points", th, ri, len(ring.Points))
			}
		}
		for li, line := range c.Lines {
			if len(line) < 2 {
				t.Errorf("threshold %v line %d has %d points", th, li, len(line))
			}
		}
	}
}

func TestExplicitCoordinates(t *testing.T) {
	values := []float64{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}
	g := mustGrid(t, values, 4, 4)
	// Log-spaced frequency columns.
	g, err := g.XValues([]float64{20, 200, 2000, 20000})
	if err != nil {
		t.Fatal(err)
	}
	g = g.Y(0, 30)
	c := g.Contour(0.5)
	if len(c.Rings) != 1 {
		t.Fatalf("got %d rings", len(c.Rings))
	}
	for _, pt := range c.Rings[0].Points {
		if pt.X < 20 || pt.X > 20000 {
			t.Errorf("x = %v outside explicit coordinates", pt.X)
		}
		if pt.Y < 0 || pt.Y > 30 {
			t.Errorf("y = %v outside linear range", pt.Y)
		}
	}
	// A crossing halfway between columns 0 and 1 lands halfway in
	// output space: 20 + 0.5*(200-20) = 110.
	minX := math.Inf(1)
	for _, pt := range c.Rings[0].Points {
		minX = math.Min(minX, pt.X)
	}
	if !within(minX, 110, 1e-9) {
		t.Errorf("leftmost crossing x = %v, want 110", minX)
	}
}

func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestXValuesLengthMismatch(t *testing.T) {
	g := mustGrid(t, make([]float64, 4), 2, 2)
	if _, err := g.XValues([]float64{1, 2, 3}); err == nil {
		t.Error("expected dimension error")
	}
}

func TestBands(t *testing.T) {
	values := []float64{
		0, 0, 0,
		0, 2, 0,
		0, 0, 0,
	}
	g := mustGrid(t, values, 3, 3)
	bands := g.Bands([]float64{0.5, 1.0, 1.5})
	if len(bands) != 2 {
		t.Fatalf("got %d bands, want 2", len(bands))
	}
	if bands[0].Lower != 0.5 || bands[0].Upper != 1.0 {
		t.Errorf("band 0 = [%v, %v]", bands[0].Lower, bands[0].Upper)
	}
	if got := bands[0].MidValue(); !within(got, 0.75, 1e-12) {
		t.Errorf("MidValue = %v, want 0.75", got)
	}
	for bi, b := range bands {
		if len(b.Polygons) == 0 {
			t.Errorf("band %d has no polygons", bi)
		}
		for pi, poly := range b.Polygons {
			if !poly.Closed() {
				t.Errorf("band %d polygon %d not closed", bi, pi)
			}
		}
	}
}

func TestBandsSingleThreshold(t *testing.T) {
	g := mustGrid(t, make([]float64, 4), 2, 2)
	if got := g.Bands([]float64{0.5}); got != nil {
		t.Errorf("single threshold should yield no bands, got %d", len(got))
	}
}

func TestBandAllInsideCell(t *testing.T) {
	// Every sample inside the band: one full-cell polygon.
	g := mustGrid(t, []float64{1, 1, 1, 1}, 2, 2)
	bands := g.Bands([]float64{0, 2})
	if len(bands) != 1 || len(bands[0].Polygons) != 1 {
		t.Fatalf("bands = %+v", bands)
	}
	poly := bands[0].Polygons[0]
	if got := math.Abs(poly.Area()); !within(got, 1, 1e-9) {
		t.Errorf("cell polygon area = %v, want 1", got)
	}
}

func TestHeatmap(t *testing.T) {
	values := []float64{
		0, 1,
		2, 3,
	}
	g := mustGrid(t, values, 2, 2).X(0, 10).Y(0, 20)
	ramp := func(v float64) viz.RGBA { return viz.RGBA{R: v, A: 1} }
	cells := g.Heatmap(ramp)
	if len(cells) != 1 {
		t.Fatalf("got %d cells, want 1", len(cells))
	}
	c := cells[0]
	if c.X0 != 0 || c.Y0 != 0 || c.X1 != 10 || c.Y1 != 20 {
		t.Errorf("bounds = (%v,%v)-(%v,%v)", c.X0, c.Y0, c.X1, c.Y1)
	}
	if !within(c.Value, 1.5, 1e-12) {
		t.Errorf("Value = %v, want corner mean 1.5", c.Value)
	}
	if !within(c.Color.R, 1.5, 1e-12) {
		t.Errorf("Color.R = %v, want 1.5", c.Color.R)
	}
}

func TestHeatmapSharedEdges(t *testing.T) {
	values := make([]float64, 9)
	g := mustGrid(t, values, 3, 3).X(0, 2).Y(0, 2)
	cells := g.Heatmap(nil)
	if len(cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(cells))
	}
	// Cell 0 right edge coincides with cell 1 left edge exactly.
	if cells[0].X1 != cells[1].X0 {
		t.Errorf("adjacent cells do not share an edge: %v vs %v",
			cells[0].X1, cells[1].X0)
	}
}

func TestTriangles(t *testing.T) {
	cells := []HeatmapCell{{X0: 0, Y0: 0, X1: 1, Y1: 1, Color: viz.Black}}
	verts := Triangles(cells)
	if len(verts) != 6 {
		t.Fatalf("got %d vertices, want 6", len(verts))
	}
	// Both triangles wind counter-clockwise.
	for tri := 0; tri < 2; tri++ {
		a, b, c := verts[tri*3], verts[tri*3+1], verts[tri*3+2]
		cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if cross <= 0 {
			t.Errorf("triangle %d winds clockwise", tri)
		}
	}
}
