// Package shape generates path geometry for common chart marks: lines,
// areas, stacked series, arcs and pies, plot symbols, grouped bars and
// chord diagrams. Generators are value-semantics builders that emit
// command streams; rasterization happens elsewhere.
package shape

import (
	"github.com/gogpu/viz"
)

// Line generates a polyline (or spline) path from arbitrary data using
// x/y accessors. Points for which the defined accessor returns false
// break the path into separate subpaths.
type Line[D any] struct {
	x, y    func(D) float64
	defined func(D) bool
	curve   Curve
}

// NewLine creates a line generator with the given accessors and a
// linear curve.
func NewLine[D any](x, y func(D) float64) Line[D] {
	return Line[D]{x: x, y: y, curve: CurveLinear}
}

// Defined sets the predicate that marks points as present. Missing
// points split the line into gaps.
func (l Line[D]) Defined(f func(D) bool) Line[D] {
	l.defined = f
	return l
}

// Curve sets the curve interpolator (default CurveLinear).
func (l Line[D]) Curve(c Curve) Line[D] {
	l.curve = c
	return l
}

// Path generates the line path for data.
func (l Line[D]) Path(data []D) *viz.Path {
	p := viz.NewPath()
	for _, run := range definedRuns(data, l.defined) {
		pts := make([]viz.Point, len(run))
		for i, d := range run {
			pts[i] = viz.Pt(l.x(d), l.y(d))
		}
		l.curve.Segment(p, pts, false)
	}
	return p
}

// Area generates a closed band between two y accessors: the upper edge
// traced forward, the lower edge traced backward.
type Area[D any] struct {
	x, y0, y1 func(D) float64
	defined   func(D) bool
	curve     Curve
}

// NewArea creates an area generator. y0 is the baseline edge, y1 the
// top edge.
func NewArea[D any](x, y0, y1 func(D) float64) Area[D] {
	return Area[D]{x: x, y0: y0, y1: y1, curve: CurveLinear}
}

// Defined sets the predicate that marks points as present.
func (a Area[D]) Defined(f func(D) bool) Area[D] {
	a.defined = f
	return a
}

// Curve sets the curve interpolator applied to both edges.
func (a Area[D]) Curve(c Curve) Area[D] {
	a.curve = c
	return a
}

// Path generates the area path for data. Each defined run becomes one
// closed subpath.
func (a Area[D]) Path(data []D) *viz.Path {
	p := viz.NewPath()
	for _, run := range definedRuns(data, a.defined) {
		if len(run) == 0 {
			continue
		}
		upper := make([]viz.Point, len(run))
		lower := make([]viz.Point, len(run))
		for i, d := range run {
			x := a.x(d)
			upper[i] = viz.Pt(x, a.y1(d))
			lower[len(run)-1-i] = viz.Pt(x, a.y0(d))
		}
		a.curve.Segment(p, upper, false)
		a.curve.Segment(p, lower, true)
		p.Close()
	}
	return p
}

// definedRuns splits data into maximal runs of defined points. A nil
// predicate treats every point as defined.
func definedRuns[D any](data []D, defined func(D) bool) [][]D {
	if defined == nil {
		if len(data) == 0 {
			return nil
		}
		return [][]D{data}
	}
	var runs [][]D
	start := -1
	for i, d := range data {
		if defined(d) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, data[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, data[start:])
	}
	return runs
}
