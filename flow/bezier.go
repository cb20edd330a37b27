package flow

import "github.com/gogpu/viz"

// flattenTolerance is the curve flattening tolerance used for
// connection hit testing, in pixels.
const flattenTolerance = 2.0

// HorizontalBezier returns the control points of the S-curve used for
// connections: horizontal tangents at both ports, control points at
// the midpoint x.
func HorizontalBezier(from, to viz.Point) (p0, p1, p2, p3 viz.Point) {
	midX := (from.X + to.X) / 2
	return from, viz.Pt(midX, from.Y), viz.Pt(midX, to.Y), to
}

// ConnectionPath flattens the connection curve between two ports into
// a polyline within the tolerance.
func ConnectionPath(from, to viz.Point, tolerance float64) []viz.Point {
	p0, p1, p2, p3 := HorizontalBezier(from, to)
	points := []viz.Point{p0}
	return flattenCubic(p0, p1, p2, p3, tolerance, points)
}

// flattenCubic subdivides with de Casteljau until both control points
// sit within the tolerance of the chord.
func flattenCubic(p0, p1, p2, p3 viz.Point, tolerance float64, points []viz.Point) []viz.Point {
	d1 := lineDistance(p1, p0, p3)
	d2 := lineDistance(p2, p0, p3)
	if d1+d2 < tolerance {
		return append(points, p3)
	}
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	points = flattenCubic(p0, p01, p012, mid, tolerance, points)
	return flattenCubic(mid, p123, p23, p3, tolerance, points)
}

// lineDistance is the perpendicular distance from p to the infinite
// line through a and b.
func lineDistance(p, a, b viz.Point) float64 {
	d := b.Sub(a)
	lengthSq := d.Dot(d)
	if lengthSq < 1e-10 {
		return p.Distance(a)
	}
	cross := p.Sub(a).Cross(d)
	if cross < 0 {
		cross = -cross
	}
	return cross / d.Length()
}
