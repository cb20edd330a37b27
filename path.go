package viz

import "math"

// PathElement represents a single element in a path command stream.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ArcTo draws a circular arc around Center from Start to End angle
// (radians). When Clockwise is false the arc sweeps counter-clockwise.
type ArcTo struct {
	Center    Point
	Radius    float64
	Start     float64
	End       float64
	Clockwise bool
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path accumulates an ordered stream of path commands in local 2D
// coordinates. Consumers either walk Elements directly or flatten
// curves to polylines with a chord tolerance of their choosing.
//
// Keeping the geometry as a command stream rather than painting
// immediately lets it be cached, transformed, or re-rasterized without
// redoing the shape math.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Arc appends a circular arc around (cx, cy) from angle1 to angle2
// in radians, sweeping counter-clockwise when angle2 > angle1.
// A line is first drawn to the arc's start point if the path already
// has a current point; otherwise the arc starts a new subpath.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	start := Pt(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	if len(p.elements) == 0 {
		p.MoveTo(start.X, start.Y)
	} else if p.current.Distance(start) > 1e-12 {
		p.LineTo(start.X, start.Y)
	}
	p.elements = append(p.elements, ArcTo{
		Center:    Pt(cx, cy),
		Radius:    r,
		Start:     angle1,
		End:       angle2,
		Clockwise: angle2 < angle1,
	})
	p.current = Pt(cx+r*math.Cos(angle2), cy+r*math.Sin(angle2))
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements in insertion order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path holds no commands.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Transform returns a copy of the path with the matrix applied to all
// points. Arc commands are converted to cubic segments first, since a
// general affine transform does not preserve circular arcs.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case ArcTo:
			for _, c := range arcToCubics(e) {
				c1 := m.TransformPoint(c.Control1)
				c2 := m.TransformPoint(c.Control2)
				pt := m.TransformPoint(c.Point)
				result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			}
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Flatten converts the path to polylines with the given chord
// tolerance. Each subpath becomes one vertex slice; a Close command
// repeats the subpath's first vertex at the end.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out     [][]Point
		cur     []Point
		start   Point
		current Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			cur = append(cur, e.Point)
			start = e.Point
			current = e.Point
		case LineTo:
			cur = append(cur, e.Point)
			current = e.Point
		case QuadTo:
			// Promote to cubic and subdivide.
			c1 := current.Lerp(e.Control, 2.0/3.0)
			c2 := e.Point.Lerp(e.Control, 2.0/3.0)
			cur = appendCubic(cur, current, c1, c2, e.Point, tolerance)
			current = e.Point
		case CubicTo:
			cur = appendCubic(cur, current, e.Control1, e.Control2, e.Point, tolerance)
			current = e.Point
		case ArcTo:
			cur = appendArc(cur, e, tolerance)
			current = Pt(e.Center.X+e.Radius*math.Cos(e.End), e.Center.Y+e.Radius*math.Sin(e.End))
		case Close:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
			current = start
		}
	}
	flush()
	return out
}

// appendCubic subdivides a cubic Bezier by recursive de Casteljau
// splitting until the control polygon is within tolerance of the chord.
func appendCubic(dst []Point, p0, c1, c2, p1 Point, tolerance float64) []Point {
	if cubicFlat(p0, c1, c2, p1, tolerance) {
		return append(dst, p1)
	}
	// Split at t = 0.5.
	ab := p0.Lerp(c1, 0.5)
	bc := c1.Lerp(c2, 0.5)
	cd := c2.Lerp(p1, 0.5)
	abc := ab.Lerp(bc, 0.5)
	bcd := bc.Lerp(cd, 0.5)
	mid := abc.Lerp(bcd, 0.5)
	dst = appendCubic(dst, p0, ab, abc, mid, tolerance)
	return appendCubic(dst, mid, bcd, cd, p1, tolerance)
}

// cubicFlat reports whether the control points are within tolerance of
// the chord from p0 to p1.
func cubicFlat(p0, c1, c2, p1 Point, tolerance float64) bool {
	d1 := c1.SegmentDistance(p0, p1)
	d2 := c2.SegmentDistance(p0, p1)
	return d1 <= tolerance && d2 <= tolerance
}

// appendArc flattens a circular arc into line segments whose chord
// error stays within tolerance.
func appendArc(dst []Point, a ArcTo, tolerance float64) []Point {
	sweep := a.End - a.Start
	if sweep == 0 || a.Radius <= 0 {
		return dst
	}
	// Chord error for a segment spanning dθ is r·(1-cos(dθ/2)).
	maxStep := 2 * math.Acos(math.Max(-1, 1-tolerance/math.Max(a.Radius, tolerance)))
	if maxStep <= 0 || math.IsNaN(maxStep) {
		maxStep = math.Pi / 16
	}
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := a.Start + sweep*float64(i)/float64(n)
		dst = append(dst, Pt(
			a.Center.X+a.Radius*math.Cos(t),
			a.Center.Y+a.Radius*math.Sin(t),
		))
	}
	return dst
}

// arcToCubics converts an arc command to cubic Bezier segments of at
// most 90 degrees each.
func arcToCubics(a ArcTo) []CubicTo {
	sweep := a.End - a.Start
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	out := make([]CubicTo, 0, n)
	for i := 0; i < n; i++ {
		a1 := a.Start + float64(i)*step
		a2 := a1 + step
		// Control point offset for a cubic approximation of the arc.
		alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)

		p1 := Pt(a.Center.X+a.Radius*cos1, a.Center.Y+a.Radius*sin1)
		p2 := Pt(a.Center.X+a.Radius*cos2, a.Center.Y+a.Radius*sin2)

		out = append(out, CubicTo{
			Control1: Pt(p1.X-alpha*a.Radius*sin1, p1.Y+alpha*a.Radius*cos1),
			Control2: Pt(p2.X+alpha*a.Radius*sin2, p2.Y-alpha*a.Radius*cos2),
			Point:    p2,
		})
	}
	return out
}
