package geo

import (
	"math"

	"github.com/gogpu/viz"
)

// Geometry is a GeoJSON-like geometry value. Coordinates are
// [lon, lat] pairs in degrees.
type Geometry interface{ geometry() }

// Point is a single coordinate, rendered as a small circle.
type Point [2]float64

// LineString is an open sequence of coordinates.
type LineString [][2]float64

// Polygon is a list of rings; the first is the exterior, the rest
// holes. Rings need not repeat their first coordinate.
type Polygon [][][2]float64

// MultiPolygon is a list of polygons.
type MultiPolygon [][][][2]float64

// Collection groups geometries, standing in for a GeoJSON feature
// collection.
type Collection []Geometry

func (Point) geometry()        {}
func (LineString) geometry()   {}
func (Polygon) geometry()      {}
func (MultiPolygon) geometry() {}
func (Collection) geometry()   {}

// PathBuilder walks geometry through a projection and emits path
// commands. Lines crossing the antimeridian or the projection's clip
// circle are split; an optional rectangular clip extent trims the
// projected output.
type PathBuilder struct {
	proj        Projection
	pointRadius float64
	clip        *clipRect
}

type clipRect struct {
	x0, y0, x1, y1 float64
}

// NewPath returns a builder over the given projection.
func NewPath(p Projection) PathBuilder {
	return PathBuilder{proj: p, pointRadius: 4.5}
}

// PointRadius sets the circle radius used for Point geometry.
func (b PathBuilder) PointRadius(r float64) PathBuilder {
	b.pointRadius = r
	return b
}

// ClipExtent clips projected output to the rectangle [x0,x1]×[y0,y1].
func (b PathBuilder) ClipExtent(x0, y0, x1, y1 float64) PathBuilder {
	b.clip = &clipRect{
		x0: math.Min(x0, x1), y0: math.Min(y0, y1),
		x1: math.Max(x0, x1), y1: math.Max(y0, y1),
	}
	return b
}

// Path renders the geometry into a command stream.
func (b PathBuilder) Path(g Geometry) *viz.Path {
	p := viz.NewPath()
	b.emit(p, g)
	return p
}

func (b PathBuilder) emit(p *viz.Path, g Geometry) {
	switch g := g.(type) {
	case Point:
		if pt, ok := b.proj.Project(g[0], g[1]); ok {
			p.Circle(pt.X, pt.Y, b.pointRadius)
		}
	case LineString:
		for _, run := range b.projectLine([][2]float64(g)) {
			emitRun(p, run, false)
		}
	case Polygon:
		b.emitPolygon(p, g)
	case MultiPolygon:
		for _, poly := range g {
			b.emitPolygon(p, Polygon(poly))
		}
	case Collection:
		for _, child := range g {
			b.emit(p, child)
		}
	}
}

func (b PathBuilder) emitPolygon(p *viz.Path, poly Polygon) {
	for _, ring := range poly {
		coords := closeRing(ring)
		runs := b.projectLine(coords)
		// A ring that survives in one piece stays closed; clipped
		// fragments degrade to open lines.
		for _, run := range runs {
			closed := len(runs) == 1 && len(run) > 2 &&
				run[0].Distance(run[len(run)-1]) < 1e-9
			emitRun(p, run, closed)
		}
	}
}

func closeRing(ring [][2]float64) [][2]float64 {
	if len(ring) > 1 && ring[0] != ring[len(ring)-1] {
		out := make([][2]float64, len(ring)+1)
		copy(out, ring)
		out[len(ring)] = ring[0]
		return out
	}
	return ring
}

func emitRun(p *viz.Path, run []viz.Point, closed bool) {
	if len(run) < 2 {
		return
	}
	if closed {
		run = run[:len(run)-1]
	}
	p.MoveTo(run[0].X, run[0].Y)
	for _, pt := range run[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.Close()
	}
}

// projectLine splits, clips and projects a coordinate sequence into
// screen-space polylines.
func (b PathBuilder) projectLine(coords [][2]float64) [][]viz.Point {
	var out [][]viz.Point
	for _, seg := range splitAntimeridian(coords) {
		for _, vis := range b.clipToCap(seg) {
			run := make([]viz.Point, 0, len(vis))
			for _, c := range vis {
				if pt, ok := b.proj.Project(c[0], c[1]); ok {
					run = append(run, pt)
				}
			}
			if b.clip != nil {
				out = append(out, clipPolyline(run, *b.clip)...)
			} else if len(run) >= 2 {
				out = append(out, run)
			}
		}
	}
	return out
}

// splitAntimeridian breaks segments whose shorter arc crosses ±180°
// longitude, inserting the crossing point on both sides.
func splitAntimeridian(coords [][2]float64) [][][2]float64 {
	if len(coords) < 2 {
		return nil
	}
	var parts [][][2]float64
	cur := [][2]float64{coords[0]}
	for i := 1; i < len(coords); i++ {
		a, c := coords[i-1], coords[i]
		dλ := c[0] - a[0]
		if math.Abs(dλ) > 180 {
			// Unwrap the far endpoint onto this side.
			unwrapped := c[0] - math.Copysign(360, dλ)
			edge := math.Copysign(180, a[0])
			t := (edge - a[0]) / (unwrapped - a[0])
			lat := a[1] + t*(c[1]-a[1])
			cur = append(cur, [2]float64{edge, lat})
			parts = append(parts, cur)
			cur = [][2]float64{{-edge, lat}, c}
		} else {
			cur = append(cur, c)
		}
	}
	if len(cur) >= 2 {
		parts = append(parts, cur)
	}
	return parts
}

// clipToCap splits a line at the projection's clip circle, keeping
// visible runs. Boundary crossings are located by bisection along the
// great circle.
func (b PathBuilder) clipToCap(coords [][2]float64) [][][2]float64 {
	if b.proj.clipAngle <= 0 {
		return [][][2]float64{coords}
	}
	visible := func(c [2]float64) bool {
		λ, φ := b.proj.rotation.Apply(c[0]*deg2rad, c[1]*deg2rad)
		return b.proj.visible(λ, φ)
	}
	var parts [][][2]float64
	var cur [][2]float64
	flush := func() {
		if len(cur) >= 2 {
			parts = append(parts, cur)
		}
		cur = nil
	}
	prevVis := visible(coords[0])
	if prevVis {
		cur = append(cur, coords[0])
	}
	for i := 1; i < len(coords); i++ {
		a, c := coords[i-1], coords[i]
		vis := visible(c)
		switch {
		case prevVis && vis:
			cur = append(cur, c)
		case prevVis && !vis:
			cur = append(cur, capCrossing(a, c, visible))
			flush()
		case !prevVis && vis:
			cur = append(cur, capCrossing(c, a, visible), c)
		}
		prevVis = vis
	}
	flush()
	return parts
}

// capCrossing bisects the great circle from visible point a toward
// hidden point b, returning a point just inside the boundary.
func capCrossing(a, b [2]float64, visible func([2]float64) bool) [2]float64 {
	interp := Interpolate(a[0], a[1], b[0], b[1])
	lo, hi := 0.0, 1.0
	for i := 0; i < 32; i++ {
		mid := (lo + hi) / 2
		lon, lat := interp(mid)
		if visible([2]float64{lon, lat}) {
			lo = mid
		} else {
			hi = mid
		}
	}
	lon, lat := interp(lo)
	return [2]float64{lon, lat}
}

// clipPolyline trims a projected polyline to a rectangle with
// Liang-Barsky segment clipping, splitting at exits.
func clipPolyline(run []viz.Point, r clipRect) [][]viz.Point {
	var out [][]viz.Point
	var cur []viz.Point
	flush := func() {
		if len(cur) >= 2 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i := 1; i < len(run); i++ {
		a, b := run[i-1], run[i]
		ca, cb, ok := clipSegment(a, b, r)
		if !ok {
			flush()
			continue
		}
		if len(cur) == 0 || cur[len(cur)-1].Distance(ca) > 1e-9 {
			flush()
			cur = append(cur, ca)
		}
		cur = append(cur, cb)
		if cb != b {
			flush()
		}
	}
	flush()
	return out
}

// clipSegment is Liang-Barsky: returns the clipped endpoints, ok false
// when the segment lies entirely outside.
func clipSegment(a, b viz.Point, r clipRect) (viz.Point, viz.Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	if clip(-dx, a.X-r.x0) && clip(dx, r.x1-a.X) &&
		clip(-dy, a.Y-r.y0) && clip(dy, r.y1-a.Y) {
		return viz.Pt(a.X+t0*dx, a.Y+t0*dy), viz.Pt(a.X+t1*dx, a.Y+t1*dy), true
	}
	return viz.Point{}, viz.Point{}, false
}
