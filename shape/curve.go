package shape

import (
	"math"

	"github.com/gogpu/viz"
)

// Curve turns a run of sample points into path commands. Segment
// appends one contiguous run; when cont is true the run continues an
// existing subpath with a line instead of starting a new one.
type Curve interface {
	Segment(p *viz.Path, pts []viz.Point, cont bool)
}

func openSegment(p *viz.Path, pt viz.Point, cont bool) {
	if cont {
		p.LineTo(pt.X, pt.Y)
	} else {
		p.MoveTo(pt.X, pt.Y)
	}
}

// CurveLinear connects points with straight lines.
var CurveLinear Curve = linearCurve{}

type linearCurve struct{}

func (linearCurve) Segment(p *viz.Path, pts []viz.Point, cont bool) {
	if len(pts) == 0 {
		return
	}
	openSegment(p, pts[0], cont)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
}

// CurveStep changes y at the midpoint between adjacent x positions.
var CurveStep Curve = stepCurve{where: 0.5}

// CurveStepBefore changes y before moving in x.
var CurveStepBefore Curve = stepCurve{where: 0}

// CurveStepAfter changes y after moving in x.
var CurveStepAfter Curve = stepCurve{where: 1}

type stepCurve struct {
	where float64 // fraction of the x span at which y switches
}

func (c stepCurve) Segment(p *viz.Path, pts []viz.Point, cont bool) {
	if len(pts) == 0 {
		return
	}
	openSegment(p, pts[0], cont)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		switch c.where {
		case 0:
			p.LineTo(a.X, b.Y)
		case 1:
			p.LineTo(b.X, a.Y)
		default:
			mx := a.X + (b.X-a.X)*c.where
			p.LineTo(mx, a.Y)
			p.LineTo(mx, b.Y)
		}
		p.LineTo(b.X, b.Y)
	}
}

// CurveBasis draws a cubic B-spline. The curve does not pass through
// interior control points but starts and ends at the run's endpoints.
var CurveBasis Curve = basisCurve{}

type basisCurve struct{}

func (basisCurve) Segment(p *viz.Path, pts []viz.Point, cont bool) {
	n := len(pts)
	if n == 0 {
		return
	}
	openSegment(p, pts[0], cont)
	if n == 1 {
		return
	}
	if n == 2 {
		p.LineTo(pts[1].X, pts[1].Y)
		return
	}
	p.LineTo((5*pts[0].X+pts[1].X)/6, (5*pts[0].Y+pts[1].Y)/6)
	basisPoint := func(p0, p1, p2 viz.Point) {
		p.CubicTo(
			(2*p0.X+p1.X)/3, (2*p0.Y+p1.Y)/3,
			(p0.X+2*p1.X)/3, (p0.Y+2*p1.Y)/3,
			(p0.X+4*p1.X+p2.X)/6, (p0.Y+4*p1.Y+p2.Y)/6,
		)
	}
	for i := 2; i < n; i++ {
		basisPoint(pts[i-2], pts[i-1], pts[i])
	}
	basisPoint(pts[n-2], pts[n-1], pts[n-1])
	p.LineTo(pts[n-1].X, pts[n-1].Y)
}

// CurveCardinal draws a cardinal spline through every point. Tension 0
// is the classic Catmull-Rom shape; tension 1 degenerates to straight
// lines.
func CurveCardinal(tension float64) Curve {
	return cardinalCurve{k: (1 - tension) / 6}
}

type cardinalCurve struct {
	k float64
}

func (c cardinalCurve) Segment(p *viz.Path, pts []viz.Point, cont bool) {
	n := len(pts)
	if n == 0 {
		return
	}
	openSegment(p, pts[0], cont)
	if n == 1 {
		return
	}
	for i := 0; i < n-1; i++ {
		p0 := pts[maxInt(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[minInt(i+2, n-1)]
		p.CubicTo(
			p1.X+c.k*(p2.X-p0.X), p1.Y+c.k*(p2.Y-p0.Y),
			p2.X-c.k*(p3.X-p1.X), p2.Y-c.k*(p3.Y-p1.Y),
			p2.X, p2.Y,
		)
	}
}

// CurveCatmullRom draws a Catmull-Rom spline with the given
// parameterization exponent: 0 is uniform, 0.5 centripetal (avoids
// self-intersection), 1 chordal.
func CurveCatmullRom(alpha float64) Curve {
	return catmullRomCurve{alpha: alpha}
}

type catmullRomCurve struct {
	alpha float64
}

func (c catmullRomCurve) Segment(p *viz.Path, pts []viz.Point, cont bool) {
	const eps = 1e-12
	if c.alpha == 0 {
		// Uniform parameterization coincides with a tension-0 cardinal.
		cardinalCurve{k: 1.0 / 6}.Segment(p, pts, cont)
		return
	}
	n := len(pts)
	if n == 0 {
		return
	}
	openSegment(p, pts[0], cont)
	if n == 1 {
		return
	}
	dist := func(a, b viz.Point) float64 {
		return math.Pow(a.Distance(b), c.alpha)
	}
	for i := 0; i < n-1; i++ {
		p0 := pts[maxInt(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[minInt(i+2, n-1)]

		l01 := dist(p0, p1)
		l12 := dist(p1, p2)
		l23 := dist(p2, p3)
		l01x2 := l01 * l01
		l12x2 := l12 * l12
		l23x2 := l23 * l23

		c1 := p1
		if l01 > eps {
			a := 2*l01x2 + 3*l01*l12 + l12x2
			d := 3 * l01 * (l01 + l12)
			c1 = viz.Pt(
				(p1.X*a-p0.X*l12x2+p2.X*l01x2)/d,
				(p1.Y*a-p0.Y*l12x2+p2.Y*l01x2)/d,
			)
		}
		c2 := p2
		if l23 > eps {
			b := 2*l23x2 + 3*l23*l12 + l12x2
			d := 3 * l23 * (l23 + l12)
			c2 = viz.Pt(
				(p2.X*b+p1.X*l23x2-p3.X*l12x2)/d,
				(p2.Y*b+p1.Y*l23x2-p3.Y*l12x2)/d,
			)
		}
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
	}
}

// CurveMonotoneX draws a cubic spline that preserves monotonicity in y
// when the input is monotone in x, so the curve never overshoots the
// data.
var CurveMonotoneX Curve = monotoneCurve{}

// CurveMonotoneY is CurveMonotoneX with the roles of x and y swapped.
var CurveMonotoneY Curve = monotoneYCurve{}

type monotoneCurve struct{}

func (monotoneCurve) Segment(p *viz.Path, pts []viz.Point, cont bool) {
	n := len(pts)
	if n == 0 {
		return
	}
	openSegment(p, pts[0], cont)
	if n == 1 {
		return
	}
	if n == 2 {
		p.LineTo(pts[1].X, pts[1].Y)
		return
	}
	tangents := monotoneTangents(pts)
	for i := 0; i < n-1; i++ {
		x0, y0 := pts[i].X, pts[i].Y
		x1, y1 := pts[i+1].X, pts[i+1].Y
		dx := (x1 - x0) / 3
		p.CubicTo(x0+dx, y0+dx*tangents[i], x1-dx, y1-dx*tangents[i+1], x1, y1)
	}
}

type monotoneYCurve struct{}

func (monotoneYCurve) Segment(p *viz.Path, pts []viz.Point, cont bool) {
	swapped := make([]viz.Point, len(pts))
	for i, pt := range pts {
		swapped[i] = viz.Pt(pt.Y, pt.X)
	}
	mirror := viz.NewPath()
	monotoneCurve{}.Segment(mirror, swapped, false)
	for i, el := range mirror.Elements() {
		switch e := el.(type) {
		case viz.MoveTo:
			if i == 0 {
				openSegment(p, viz.Pt(e.Point.Y, e.Point.X), cont)
			} else {
				p.MoveTo(e.Point.Y, e.Point.X)
			}
		case viz.LineTo:
			p.LineTo(e.Point.Y, e.Point.X)
		case viz.CubicTo:
			p.CubicTo(e.Control1.Y, e.Control1.X, e.Control2.Y, e.Control2.X,
				e.Point.Y, e.Point.X)
		}
	}
}

// monotoneTangents computes Fritsch-Carlson tangents that keep each
// cubic segment within the range of its endpoints.
func monotoneTangents(pts []viz.Point) []float64 {
	n := len(pts)
	t := make([]float64, n)
	slope3 := func(p0, p1, p2 viz.Point) float64 {
		h0 := p1.X - p0.X
		h1 := p2.X - p1.X
		s0 := safeSlope(p1.Y-p0.Y, h0, h1)
		s1 := safeSlope(p2.Y-p1.Y, h1, h0)
		pw := (s0*h1 + s1*h0) / (h0 + h1)
		m := (sign(s0) + sign(s1)) *
			math.Min(math.Abs(s0), math.Min(math.Abs(s1), 0.5*math.Abs(pw)))
		if math.IsNaN(m) {
			return 0
		}
		return m
	}
	for i := 1; i < n-1; i++ {
		t[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	slope2 := func(p0, p1 viz.Point, tangent float64) float64 {
		h := p1.X - p0.X
		if h == 0 {
			return tangent
		}
		return (3*(p1.Y-p0.Y)/h - tangent) / 2
	}
	t[0] = slope2(pts[0], pts[1], t[1])
	t[n-1] = slope2(pts[n-2], pts[n-1], t[n-2])
	return t
}

// safeSlope divides by a signed zero when the step vanishes so the
// resulting infinity carries the sign of the neighboring step.
func safeSlope(dy, h, other float64) float64 {
	if h == 0 && other < 0 {
		h = math.Copysign(0, -1)
	}
	return dy / h
}

func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// CurveNatural draws a natural cubic spline: C2-continuous with zero
// second derivative at the endpoints.
var CurveNatural Curve = naturalCurve{}

type naturalCurve struct{}

func (naturalCurve) Segment(p *viz.Path, pts []viz.Point, cont bool) {
	n := len(pts)
	if n == 0 {
		return
	}
	openSegment(p, pts[0], cont)
	if n == 1 {
		return
	}
	if n == 2 {
		p.LineTo(pts[1].X, pts[1].Y)
		return
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, pt := range pts {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	ax, bx := naturalControls(xs)
	ay, by := naturalControls(ys)
	for i := 0; i < n-1; i++ {
		p.CubicTo(ax[i], ay[i], bx[i], by[i], xs[i+1], ys[i+1])
	}
}

// naturalControls solves the tridiagonal system for the two interior
// Bezier control values of each natural-spline segment.
func naturalControls(x []float64) (a, b []float64) {
	n := len(x) - 1
	a = make([]float64, n)
	b = make([]float64, n)
	r := make([]float64, n)

	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]

	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}
	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
