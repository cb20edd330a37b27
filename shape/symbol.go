package shape

import (
	"math"

	"github.com/gogpu/viz"
)

// SymbolType identifies a plot marker shape.
type SymbolType int

const (
	SymbolCircle SymbolType = iota
	SymbolCross
	SymbolDiamond
	SymbolSquare
	SymbolStar
	SymbolTriangleUp
	SymbolTriangleDown
	SymbolTriangleLeft
	SymbolTriangleRight
	SymbolWye
)

// Symbol generates a centered marker path of the given type whose
// filled area is `area` square units, so markers of different types
// read as the same visual weight.
func Symbol(t SymbolType, area float64) *viz.Path {
	p := viz.NewPath()
	if area <= 0 {
		return p
	}
	switch t {
	case SymbolCircle:
		p.Circle(0, 0, math.Sqrt(area/math.Pi))
	case SymbolCross:
		symbolCross(p, area)
	case SymbolDiamond:
		symbolDiamond(p, area)
	case SymbolSquare:
		w := math.Sqrt(area)
		p.Rectangle(-w/2, -w/2, w, w)
	case SymbolStar:
		symbolStar(p, area)
	case SymbolTriangleUp:
		symbolTriangle(p, area, 0)
	case SymbolTriangleDown:
		symbolTriangle(p, area, math.Pi)
	case SymbolTriangleLeft:
		symbolTriangle(p, area, -math.Pi/2)
	case SymbolTriangleRight:
		symbolTriangle(p, area, math.Pi/2)
	case SymbolWye:
		symbolWye(p, area)
	}
	return p
}

// symbolCross draws a plus sign built from five squares of side 2r.
func symbolCross(p *viz.Path, area float64) {
	r := math.Sqrt(area/5) / 2
	p.MoveTo(-3*r, -r)
	p.LineTo(-r, -r)
	p.LineTo(-r, -3*r)
	p.LineTo(r, -3*r)
	p.LineTo(r, -r)
	p.LineTo(3*r, -r)
	p.LineTo(3*r, r)
	p.LineTo(r, r)
	p.LineTo(r, 3*r)
	p.LineTo(-r, 3*r)
	p.LineTo(-r, r)
	p.LineTo(-3*r, r)
	p.Close()
}

// symbolDiamond draws a rhombus with a 1:√3 aspect.
func symbolDiamond(p *viz.Path, area float64) {
	tan30 := math.Sqrt(1.0 / 3.0)
	y := math.Sqrt(area / (2 * tan30))
	x := y * tan30
	p.MoveTo(0, -y)
	p.LineTo(x, 0)
	p.LineTo(0, y)
	p.LineTo(-x, 0)
	p.Close()
}

// symbolStar draws a five-pointed star. The inner radius is the outer
// radius divided by the squared golden ratio, the classic pentagram
// proportion.
func symbolStar(p *viz.Path, area float64) {
	phi := (1 + math.Sqrt(5)) / 2
	kr := 1 / (phi * phi)
	// Ten origin triangles with alternating radii and 36° apex angles.
	outer := math.Sqrt(area / (5 * kr * math.Sin(math.Pi/5)))
	inner := outer * kr
	for i := 0; i < 10; i++ {
		a := -math.Pi/2 + float64(i)*math.Pi/5
		r := outer
		if i%2 == 1 {
			r = inner
		}
		x, y := r*math.Cos(a), r*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
}

// symbolTriangle draws an equilateral triangle pointing up, rotated by
// rot radians.
func symbolTriangle(p *viz.Path, area, rot float64) {
	// Circumradius of an equilateral triangle of the given area.
	cr := math.Sqrt(area * 4 / (3 * math.Sqrt(3)))
	for i := 0; i < 3; i++ {
		a := -math.Pi/2 + rot + float64(i)*tau/3
		x, y := cr*math.Cos(a), cr*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
}

// symbolWye draws a three-armed Y with threefold symmetry.
func symbolWye(p *viz.Path, area float64) {
	const (
		c = -0.5               // cos 120°
		s = 0.8660254037844386 // sin 120°
	)
	k := 1 / math.Sqrt(12)
	a := (k/2 + 1) * 3
	r := math.Sqrt(area / a)
	x0, y0 := r/2, r*k
	x1, y1 := x0, r*k+r

	pts := [][2]float64{
		{x0, y0}, {x1, y1}, {-x1, y1},
	}
	// Rotate the arm twice by 120° to close the outline.
	var outline [][2]float64
	rot := func(q [2]float64, n int) [2]float64 {
		for i := 0; i < n; i++ {
			q = [2]float64{c*q[0] - s*q[1], s*q[0] + c*q[1]}
		}
		return q
	}
	for n := 0; n < 3; n++ {
		for _, q := range pts {
			outline = append(outline, rot(q, n))
		}
	}
	for i, q := range outline {
		if i == 0 {
			p.MoveTo(q[0], q[1])
		} else {
			p.LineTo(q[0], q[1])
		}
	}
	p.Close()
}
