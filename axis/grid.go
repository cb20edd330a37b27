package axis

import (
	"math"

	"github.com/gogpu/viz"
)

// GridLayout is the positioned grid geometry. Vertical lines span the
// y range at x tick positions; horizontal lines the other way around.
// Dots sit at the cross product of the two tick sets.
type GridLayout struct {
	Vertical   [][2]viz.Point
	Horizontal [][2]viz.Point
	Dots       []viz.Point
}

// Grid computes background guide lines from a pair of scales.
type Grid struct {
	x, y Scale

	vertical   bool
	horizontal bool
	dots       bool

	tickCount int
	xValues   []float64
	yValues   []float64
}

// NewGrid creates a grid over the plot area the two scales define.
// Lines are on and dots off until toggled.
func NewGrid(x, y Scale) Grid {
	return Grid{x: x, y: y, vertical: true, horizontal: true, tickCount: 10}
}

// Vertical toggles lines at x tick positions.
func (g Grid) Vertical(on bool) Grid {
	g.vertical = on
	return g
}

// Horizontal toggles lines at y tick positions.
func (g Grid) Horizontal(on bool) Grid {
	g.horizontal = on
	return g
}

// Dots toggles intersection dots.
func (g Grid) Dots(on bool) Grid {
	g.dots = on
	return g
}

// Ticks sets the approximate tick count per axis.
func (g Grid) Ticks(count int) Grid {
	g.tickCount = count
	return g
}

// XValues sets explicit x line positions, overriding the scale ticks.
func (g Grid) XValues(values []float64) Grid {
	g.xValues = values
	return g
}

// YValues sets explicit y line positions.
func (g Grid) YValues(values []float64) Grid {
	g.yValues = values
	return g
}

// Layout positions the enabled lines and dots.
func (g Grid) Layout() GridLayout {
	xTicks := g.xValues
	if xTicks == nil {
		xTicks = g.x.Ticks(g.tickCount)
	}
	yTicks := g.yValues
	if yTicks == nil {
		yTicks = g.y.Ticks(g.tickCount)
	}

	xr0, xr1 := g.x.RangeValues()
	yr0, yr1 := g.y.RangeValues()
	xLo, xHi := math.Min(xr0, xr1), math.Max(xr0, xr1)
	yLo, yHi := math.Min(yr0, yr1), math.Max(yr0, yr1)

	var out GridLayout
	if g.vertical {
		for _, t := range xTicks {
			px := g.x.Value(t)
			if px < xLo || px > xHi {
				continue
			}
			out.Vertical = append(out.Vertical, [2]viz.Point{viz.Pt(px, yLo), viz.Pt(px, yHi)})
		}
	}
	if g.horizontal {
		for _, t := range yTicks {
			py := g.y.Value(t)
			if py < yLo || py > yHi {
				continue
			}
			out.Horizontal = append(out.Horizontal, [2]viz.Point{viz.Pt(xLo, py), viz.Pt(xHi, py)})
		}
	}
	if g.dots {
		for _, tx := range xTicks {
			px := g.x.Value(tx)
			if px < xLo || px > xHi {
				continue
			}
			for _, ty := range yTicks {
				py := g.y.Value(ty)
				if py < yLo || py > yHi {
					continue
				}
				out.Dots = append(out.Dots, viz.Pt(px, py))
			}
		}
	}
	return out
}
