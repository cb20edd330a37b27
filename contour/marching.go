package contour

import (
	"math"

	"github.com/gogpu/viz"
)

// Ring is a closed contour polygon. The first point is repeated at the
// end.
type Ring struct {
	Points []viz.Point
}

// Closed reports whether the ring's first and last points coincide.
func (r Ring) Closed() bool {
	if len(r.Points) < 2 {
		return false
	}
	return pointsEqual(r.Points[0], r.Points[len(r.Points)-1])
}

// Area returns the signed area of the ring: positive for
// counter-clockwise winding.
func (r Ring) Area() float64 {
	if len(r.Points) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(r.Points)-1; i++ {
		p0, p1 := r.Points[i], r.Points[i+1]
		sum += p0.X*p1.Y - p1.X*p0.Y
	}
	return sum / 2
}

// Contains reports whether pt lies inside the ring (even-odd rule).
func (r Ring) Contains(pt viz.Point) bool {
	inside := false
	n := len(r.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r.Points[i], r.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = true
		}
	}
	return inside
}

// Contour is the level set at one threshold: closed rings for regions
// interior to the grid, plus open polylines where the level set meets
// the grid boundary.
type Contour struct {
	Value float64
	Rings []Ring
	Lines [][]viz.Point
}

// Lines and rings trace cell edges in a fixed order:
// edge 0 bottom, 1 right, 2 top, 3 left; case bits mark corners at or
// above threshold: bit0 (i,j), bit1 (i+1,j), bit2 (i+1,j+1),
// bit3 (i,j+1).
const (
	edgeBottom = 0
	edgeRight  = 1
	edgeTop    = 2
	edgeLeft   = 3
)

// Contours generates one contour per threshold.
func (g Grid) Contours(thresholds []float64) []Contour {
	out := make([]Contour, len(thresholds))
	for i, t := range thresholds {
		out[i] = g.Contour(t)
	}
	return out
}

// Contour traces the level set at the given threshold.
func (g Grid) Contour(threshold float64) Contour {
	c := Contour{Value: threshold}
	// Four edge slots per cell; interior edges carry two ids, one per
	// adjacent cell, both marked as a trace passes through.
	visited := make([]bool, g.Width*g.Height*4)

	for j := 0; j < g.Height-1; j++ {
		for i := 0; i < g.Width-1; i++ {
			cs := g.cellCase(i, j, threshold)
			if cs == 0 || cs == 15 {
				continue
			}
			for _, edge := range crossingEdges(cs) {
				if visited[g.edgeID(i, j, edge)] {
					continue
				}
				pts, closed := g.trace(threshold, i, j, edge, visited)
				pts = dedupe(pts)
				if closed {
					if len(pts) >= 3 {
						pts = append(pts, pts[0])
						ring := Ring{Points: pts}
						g.orient(&ring, threshold)
						c.Rings = append(c.Rings, ring)
					}
				} else if len(pts) >= 2 {
					c.Lines = append(c.Lines, pts)
				}
			}
		}
	}
	return c
}

func (g Grid) edgeID(i, j, edge int) int {
	return (j*g.Width+i)*4 + edge
}

// cellCase computes the 4-bit marching squares case for the cell with
// lower-left sample (i, j).
func (g Grid) cellCase(i, j int, threshold float64) int {
	cs := 0
	if g.at(i, j) >= threshold {
		cs |= 1
	}
	if g.at(i+1, j) >= threshold {
		cs |= 2
	}
	if g.at(i+1, j+1) >= threshold {
		cs |= 4
	}
	if g.at(i, j+1) >= threshold {
		cs |= 8
	}
	return cs
}

// centerAbove resolves saddle ambiguity: the cell center takes the
// average of the four corners.
func (g Grid) centerAbove(i, j int, threshold float64) bool {
	avg := (g.at(i, j) + g.at(i+1, j) + g.at(i+1, j+1) + g.at(i, j+1)) / 4
	return avg >= threshold
}

// crossingEdges lists the edges the contour crosses for a case.
func crossingEdges(cs int) []int {
	switch cs {
	case 1, 14:
		return []int{edgeBottom, edgeLeft}
	case 2, 13:
		return []int{edgeBottom, edgeRight}
	case 3, 12:
		return []int{edgeRight, edgeLeft}
	case 4, 11:
		return []int{edgeRight, edgeTop}
	case 6, 9:
		return []int{edgeBottom, edgeTop}
	case 7, 8:
		return []int{edgeTop, edgeLeft}
	case 5, 10:
		return []int{edgeBottom, edgeRight, edgeTop, edgeLeft}
	}
	return nil
}

// exitEdge pairs an entry edge with its exit within one cell. Saddles
// (cases 5 and 10) split according to the average-center rule.
func exitEdge(entry, cs int, centerAbove bool) (int, bool) {
	pair := func(a, b int) (int, bool) {
		switch entry {
		case a:
			return b, true
		case b:
			return a, true
		}
		return 0, false
	}
	switch cs {
	case 1, 14:
		return pair(edgeBottom, edgeLeft)
	case 2, 13:
		return pair(edgeBottom, edgeRight)
	case 4, 11:
		return pair(edgeRight, edgeTop)
	case 8, 7:
		return pair(edgeTop, edgeLeft)
	case 3, 12:
		return pair(edgeRight, edgeLeft)
	case 6, 9:
		return pair(edgeBottom, edgeTop)
	case 5:
		// Corners (i,j) and (i+1,j+1) above.
		if centerAbove {
			if e, ok := pair(edgeBottom, edgeRight); ok {
				return e, true
			}
			return pair(edgeTop, edgeLeft)
		}
		if e, ok := pair(edgeBottom, edgeLeft); ok {
			return e, true
		}
		return pair(edgeRight, edgeTop)
	case 10:
		// Corners (i+1,j) and (i,j+1) above.
		if centerAbove {
			if e, ok := pair(edgeBottom, edgeLeft); ok {
				return e, true
			}
			return pair(edgeRight, edgeTop)
		}
		if e, ok := pair(edgeBottom, edgeRight); ok {
			return e, true
		}
		return pair(edgeTop, edgeLeft)
	}
	return 0, false
}

// trace follows one level-set component from a starting edge. It
// reports whether the component closed on itself; otherwise both loose
// ends terminate at the grid boundary.
func (g Grid) trace(threshold float64, startI, startJ, startEdge int, visited []bool) ([]viz.Point, bool) {
	pts, closed := g.traceDirection(threshold, startI, startJ, startEdge, visited)
	if closed {
		return pts, true
	}
	// Open component: walk the other way from the start edge and
	// prepend.
	if bi, bj, bEdge, ok := g.adjacent(startI, startJ, startEdge); ok {
		back, _ := g.traceDirection(threshold, bi, bj, bEdge, visited)
		if len(back) > 1 {
			back = back[1:] // shared start-edge point
			rev := make([]viz.Point, 0, len(back)+len(pts))
			for i := len(back) - 1; i >= 0; i-- {
				rev = append(rev, back[i])
			}
			pts = append(rev, pts...)
		}
	}
	return pts, false
}

// traceDirection walks cell to cell until the component closes or
// leaves the grid.
func (g Grid) traceDirection(threshold float64, startI, startJ, startEdge int, visited []bool) ([]viz.Point, bool) {
	var pts []viz.Point
	i, j, entry := startI, startJ, startEdge

	for {
		id := g.edgeID(i, j, entry)
		if visited[id] {
			// Back at an edge this trace already marked: closed loop.
			return pts, i == startI && j == startJ && entry == startEdge
		}
		visited[id] = true

		if pt, ok := g.edgePoint(i, j, entry, threshold); ok {
			pts = append(pts, pt)
		}

		cs := g.cellCase(i, j, threshold)
		exit, ok := exitEdge(entry, cs, g.centerAbove(i, j, threshold))
		if !ok {
			return pts, false
		}
		visited[g.edgeID(i, j, exit)] = true

		ni, nj, nEntry, ok := g.adjacent(i, j, exit)
		if !ok {
			// Boundary: keep the terminal crossing so open lines end
			// exactly where the level set leaves the grid.
			if pt, hit := g.edgePoint(i, j, exit, threshold); hit {
				pts = append(pts, pt)
			}
			return pts, false
		}
		if ni == startI && nj == startJ && nEntry == startEdge {
			return pts, true
		}
		i, j, entry = ni, nj, nEntry
	}
}

// adjacent crosses an exit edge into the neighboring cell, returning
// that cell's entry edge. ok is false at the grid boundary.
func (g Grid) adjacent(i, j, exit int) (ni, nj, entry int, ok bool) {
	switch exit {
	case edgeBottom:
		if j > 0 {
			return i, j - 1, edgeTop, true
		}
	case edgeRight:
		if i+1 < g.Width-1 {
			return i + 1, j, edgeLeft, true
		}
	case edgeTop:
		if j+1 < g.Height-1 {
			return i, j + 1, edgeBottom, true
		}
	case edgeLeft:
		if i > 0 {
			return i - 1, j, edgeRight, true
		}
	}
	return 0, 0, 0, false
}

// edgePoint interpolates the level crossing along a cell edge.
func (g Grid) edgePoint(i, j, edge int, threshold float64) (viz.Point, bool) {
	var x0, y0, x1, y1, v0, v1 float64
	switch edge {
	case edgeBottom:
		v0, v1 = g.at(i, j), g.at(i+1, j)
		x0, y0, x1, y1 = float64(i), float64(j), float64(i+1), float64(j)
	case edgeRight:
		v0, v1 = g.at(i+1, j), g.at(i+1, j+1)
		x0, y0, x1, y1 = float64(i+1), float64(j), float64(i+1), float64(j+1)
	case edgeTop:
		v0, v1 = g.at(i+1, j+1), g.at(i, j+1)
		x0, y0, x1, y1 = float64(i+1), float64(j+1), float64(i), float64(j+1)
	case edgeLeft:
		v0, v1 = g.at(i, j+1), g.at(i, j)
		x0, y0, x1, y1 = float64(i), float64(j+1), float64(i), float64(j)
	default:
		return viz.Point{}, false
	}
	if math.Abs(v1-v0) < 1e-10 {
		return viz.Point{}, false
	}
	t := (threshold - v0) / (v1 - v0)
	if t < 0 || t > 1 {
		return viz.Point{}, false
	}
	return g.point(x0+t*(x1-x0), y0+t*(y1-y0)), true
}

// orient makes rings enclosing above-threshold regions wind
// counter-clockwise (positive area) and rings enclosing holes wind the
// other way.
func (g Grid) orient(r *Ring, threshold float64) {
	for j := 0; j < g.Height; j++ {
		for i := 0; i < g.Width; i++ {
			if !r.Contains(g.point(float64(i), float64(j))) {
				continue
			}
			above := g.at(i, j) >= threshold
			if above != (r.Area() > 0) {
				for a, b := 0, len(r.Points)-1; a < b; a, b = a+1, b-1 {
					r.Points[a], r.Points[b] = r.Points[b], r.Points[a]
				}
			}
			return
		}
	}
}

func pointsEqual(a, b viz.Point) bool {
	const eps = 1e-10
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// dedupe removes consecutive duplicate points, which appear when
// samples sit exactly on the threshold.
func dedupe(pts []viz.Point) []viz.Point {
	out := pts[:0]
	for _, pt := range pts {
		if len(out) == 0 || !pointsEqual(out[len(out)-1], pt) {
			out = append(out, pt)
		}
	}
	return out
}
