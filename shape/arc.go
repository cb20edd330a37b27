package shape

import (
	"math"
	"sort"

	"github.com/gogpu/viz"
)

const (
	tau        = 2 * math.Pi
	angleEps   = 1e-12
	fullCircle = tau - 1e-6
)

// polar converts a clock-style angle (0 at 12 o'clock, increasing
// clockwise) and radius to a point.
func polar(angle, r float64) viz.Point {
	return viz.Pt(r*math.Sin(angle), -r*math.Cos(angle))
}

// mathAngle converts a clock-style angle to the standard
// counter-clockwise-from-positive-x convention used by Path.Arc.
func mathAngle(angle float64) float64 {
	return angle - math.Pi/2
}

// Arc generates annular sector paths, optionally with rounded corners
// and angular padding. Angles are measured clockwise from 12 o'clock.
type Arc struct {
	inner, outer float64
	start, end   float64
	corner       float64
	pad          float64
}

// NewArc creates an arc generator with zero radii and angles.
func NewArc() Arc {
	return Arc{}
}

// InnerRadius sets the inner radius (0 for a pie wedge).
func (a Arc) InnerRadius(r float64) Arc { a.inner = r; return a }

// OuterRadius sets the outer radius.
func (a Arc) OuterRadius(r float64) Arc { a.outer = r; return a }

// StartAngle sets the start angle in radians.
func (a Arc) StartAngle(v float64) Arc { a.start = v; return a }

// EndAngle sets the end angle in radians.
func (a Arc) EndAngle(v float64) Arc { a.end = v; return a }

// CornerRadius sets the corner rounding radius. It is clamped to half
// the ring thickness.
func (a Arc) CornerRadius(r float64) Arc { a.corner = r; return a }

// PadAngle sets the total angular gap reserved around the sector.
func (a Arc) PadAngle(v float64) Arc { a.pad = v; return a }

// Centroid returns the midpoint of the sector, useful for label
// placement.
func (a Arc) Centroid() viz.Point {
	r := (a.inner + a.outer) / 2
	return polar((a.start+a.end)/2, r)
}

// Path generates the sector outline. Degenerate sectors (outer radius
// not above inner, or zero sweep) yield an empty path.
func (a Arc) Path() *viz.Path {
	p := viz.NewPath()
	r0, r1 := a.inner, a.outer
	if r0 < 0 {
		r0 = 0
	}
	da := a.end - a.start
	if r1 <= r0 || math.Abs(da) < angleEps {
		return p
	}

	// Full ring: two concentric circles (or one when there is no hole).
	if math.Abs(da) >= fullCircle {
		p.Circle(0, 0, r1)
		if r0 > angleEps {
			p.Circle(0, 0, r0)
		}
		return p
	}

	a0, a1 := a.start, a.end
	if a1 < a0 {
		a0, a1 = a1, a0
	}

	// Angular padding, scaled per radius so the gap width stays
	// roughly constant across the ring.
	if a.pad > 0 {
		padRadius := math.Sqrt((r0*r0 + r1*r1) / 2)
		p1 := a.pad / 2 * padRadius / r1
		a0o, a1o := a0+p1, a1-p1
		var a0i, a1i float64
		if r0 > angleEps {
			p0 := a.pad / 2 * padRadius / r0
			a0i, a1i = a0+p0, a1-p0
		} else {
			a0i, a1i = (a0+a1)/2, (a0+a1)/2
		}
		if a0o > a1o {
			a0o = (a0 + a1) / 2
			a1o = a0o
		}
		if a0i > a1i {
			a0i = (a0 + a1) / 2
			a1i = a0i
		}
		return a.sectorPath(p, r0, r1, a0i, a1i, a0o, a1o)
	}
	return a.sectorPath(p, r0, r1, a0, a1, a0, a1)
}

// sectorPath emits the outline with separate inner and outer angular
// extents (they differ when padding is applied).
func (a Arc) sectorPath(p *viz.Path, r0, r1, a0i, a1i, a0o, a1o float64) *viz.Path {
	rc := a.corner
	if rc > (r1-r0)/2 {
		rc = (r1 - r0) / 2
	}
	// Rounding must fit inside the sweep on both rings.
	if rc > angleEps {
		dOut := math.Asin(rc / (r1 - rc))
		if 2*dOut > a1o-a0o {
			rc = 0
		} else if r0 > angleEps {
			dIn := math.Asin(rc / (r0 + rc))
			if 2*dIn > a1i-a0i {
				rc = 0
			}
		}
	}

	if rc <= angleEps {
		start := polar(a0o, r1)
		p.MoveTo(start.X, start.Y)
		p.Arc(0, 0, r1, mathAngle(a0o), mathAngle(a1o))
		if r0 > angleEps {
			inner := polar(a1i, r0)
			p.LineTo(inner.X, inner.Y)
			p.Arc(0, 0, r0, mathAngle(a1i), mathAngle(a0i))
		} else {
			p.LineTo(0, 0)
		}
		p.Close()
		return p
	}

	dOut := math.Asin(rc / (r1 - rc))

	// Outer edge with two rounded corners. Each corner circle sits at
	// radius r1-rc, tangent to both the radial edge and the outer ring.
	c1 := polar(a0o+dOut, r1-rc)
	t1 := polar(a0o, (r1-rc)*math.Cos(dOut))
	p.MoveTo(t1.X, t1.Y)
	cornerArc(p, c1, rc, t1, polar(a0o+dOut, r1))
	p.Arc(0, 0, r1, mathAngle(a0o+dOut), mathAngle(a1o-dOut))
	c2 := polar(a1o-dOut, r1-rc)
	t2 := polar(a1o, (r1-rc)*math.Cos(dOut))
	cornerArc(p, c2, rc, polar(a1o-dOut, r1), t2)

	if r0 > angleEps {
		dIn := math.Asin(rc / (r0 + rc))
		c3 := polar(a1i-dIn, r0+rc)
		t3 := polar(a1i, (r0+rc)*math.Cos(dIn))
		p.LineTo(t3.X, t3.Y)
		cornerArc(p, c3, rc, t3, polar(a1i-dIn, r0))
		p.Arc(0, 0, r0, mathAngle(a1i-dIn), mathAngle(a0i+dIn))
		c4 := polar(a0i+dIn, r0+rc)
		t4 := polar(a0i, (r0+rc)*math.Cos(dIn))
		cornerArc(p, c4, rc, polar(a0i+dIn, r0), t4)
	} else {
		p.LineTo(0, 0)
	}
	p.Close()
	return p
}

// cornerArc appends the corner circle arc from point `from` to point
// `to`, both of which lie on the circle centered at c with radius rc.
func cornerArc(p *viz.Path, c viz.Point, rc float64, from, to viz.Point) {
	start := math.Atan2(from.Y-c.Y, from.X-c.X)
	end := math.Atan2(to.Y-c.Y, to.X-c.X)
	// Take the short way around.
	for end-start > math.Pi {
		end -= tau
	}
	for start-end > math.Pi {
		end += tau
	}
	p.Arc(c.X, c.Y, rc, start, end)
}

// PieSlice is one computed wedge of a pie layout.
type PieSlice struct {
	Index      int // position in the input values
	Value      float64
	StartAngle float64
	EndAngle   float64
	PadAngle   float64
}

// PieSort selects how pie slices are ordered around the circle.
type PieSort int

const (
	// PieSortNone keeps input order.
	PieSortNone PieSort = iota
	// PieSortAscending orders slices by increasing value.
	PieSortAscending
	// PieSortDescending orders slices by decreasing value.
	PieSortDescending
)

// Pie computes start and end angles for a set of values. Non-positive
// values produce zero-width slices. The returned slice is indexed like
// the input regardless of sort order.
type Pie struct {
	start, end float64
	pad        float64
	sortBy     PieSort
}

// NewPie creates a pie layout spanning the full circle.
func NewPie() Pie {
	return Pie{start: 0, end: tau}
}

// StartAngle sets the overall start angle (default 0).
func (g Pie) StartAngle(v float64) Pie { g.start = v; return g }

// EndAngle sets the overall end angle (default 2π).
func (g Pie) EndAngle(v float64) Pie { g.end = v; return g }

// PadAngle reserves a fixed angular gap per slice.
func (g Pie) PadAngle(v float64) Pie { g.pad = v; return g }

// Sort sets the angular ordering of slices.
func (g Pie) Sort(s PieSort) Pie { g.sortBy = s; return g }

// Layout computes the slice angles for values.
func (g Pie) Layout(values []float64) []PieSlice {
	n := len(values)
	out := make([]PieSlice, n)
	if n == 0 {
		return out
	}
	sum := 0.0
	for i, v := range values {
		out[i] = PieSlice{Index: i, Value: v}
		if v > 0 {
			sum += v
		}
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	switch g.sortBy {
	case PieSortAscending:
		sort.SliceStable(order, func(a, b int) bool {
			return values[order[a]] < values[order[b]]
		})
	case PieSortDescending:
		sort.SliceStable(order, func(a, b int) bool {
			return values[order[a]] > values[order[b]]
		})
	}

	// Each slice's extent includes its pad; the arc generator shrinks
	// the drawn wedge by PadAngle. Extents therefore tile the full
	// start..end span exactly.
	da := g.end - g.start
	pad := math.Min(g.pad, math.Abs(da)/float64(n))
	var unit float64
	if sum > 0 {
		unit = (da - float64(n)*math.Copysign(pad, da)) / sum
	}
	angle := g.start
	for _, i := range order {
		out[i].StartAngle = angle
		v := values[i]
		if v > 0 && unit != 0 {
			angle += v * unit
		}
		angle += math.Copysign(pad, da)
		out[i].EndAngle = angle
		out[i].PadAngle = pad
	}
	if sum > 0 {
		out[order[n-1]].EndAngle = g.end
	}
	return out
}
