package viz

import (
	"math"
	"testing"
)

func TestPathElements(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.Close()

	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("got %d elements, want 4", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Error("first element should be MoveTo")
	}
	if _, ok := elems[3].(Close); !ok {
		t.Error("last element should be Close")
	}
	if p.CurrentPoint() != Pt(0, 0) {
		t.Errorf("Close should return to subpath start, got %v", p.CurrentPoint())
	}
}

func TestFlattenPolyline(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 0)
	p.LineTo(5, 5)

	lines := p.Flatten(0.1)
	if len(lines) != 1 {
		t.Fatalf("got %d polylines, want 1", len(lines))
	}
	want := []Point{{0, 0}, {5, 0}, {5, 5}}
	for i, pt := range want {
		if lines[0][i] != pt {
			t.Errorf("vertex %d = %v, want %v", i, lines[0][i], pt)
		}
	}
}

func TestFlattenCubicTolerance(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 100)

	const tol = 0.25
	lines := p.Flatten(tol)
	if len(lines) != 1 {
		t.Fatalf("got %d polylines, want 1", len(lines))
	}
	// Every flattened vertex must lie near the circle. The cubic
	// approximation itself is accurate to ~0.02% of the radius.
	for _, pt := range lines[0] {
		r := pt.Length()
		if math.Abs(r-100) > tol+0.1 {
			t.Fatalf("vertex %v is %v from the circle", pt, math.Abs(r-100))
		}
	}
	// Close repeats the first vertex.
	first, last := lines[0][0], lines[0][len(lines[0])-1]
	if first.Distance(last) > 1e-9 {
		t.Error("closed subpath should end at its first vertex")
	}
}

func TestArcFlatten(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 10, 0, math.Pi/2)

	lines := p.Flatten(0.05)
	if len(lines) != 1 {
		t.Fatalf("got %d polylines, want 1", len(lines))
	}
	poly := lines[0]
	if poly[0].Distance(Pt(10, 0)) > 1e-9 {
		t.Errorf("arc should start at (10,0), got %v", poly[0])
	}
	end := poly[len(poly)-1]
	if end.Distance(Pt(0, 10)) > 1e-9 {
		t.Errorf("arc should end at (0,10), got %v", end)
	}
	for _, pt := range poly {
		if math.Abs(pt.Length()-10) > 0.06 {
			t.Fatalf("vertex %v off the arc", pt)
		}
	}
}

func TestTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 0)
	p.LineTo(2, 0)

	q := p.Transform(Translate(10, 5).Multiply(Scale(2, 2)))
	elems := q.Elements()
	if got := elems[0].(MoveTo).Point; got != Pt(12, 5) {
		t.Errorf("transformed MoveTo = %v, want (12,5)", got)
	}
	if got := elems[1].(LineTo).Point; got != Pt(14, 5) {
		t.Errorf("transformed LineTo = %v, want (14,5)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, -2).Multiply(Rotate(0.7)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("matrix should be invertible")
	}
	p := Pt(4.2, -1.7)
	back := inv.TransformPoint(m.TransformPoint(p))
	if back.Distance(p) > 1e-9 {
		t.Errorf("round-trip = %v, want %v", back, p)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("singular matrix should not invert")
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	if d := Pt(5, 3).SegmentDistance(a, b); math.Abs(d-3) > 1e-9 {
		t.Errorf("distance = %v, want 3", d)
	}
	if d := Pt(-4, 0).SegmentDistance(a, b); math.Abs(d-4) > 1e-9 {
		t.Errorf("distance past endpoint = %v, want 4", d)
	}
}
