package shape

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
)

// ChordGroup is the angular span allotted to one node of a chord
// diagram, proportional to its total outgoing flow.
type ChordGroup struct {
	Index      int
	Value      float64
	StartAngle float64
	EndAngle   float64
}

// ChordSub is one directed half of a ribbon: the angular slice of the
// source (or target) group given to this flow.
type ChordSub struct {
	Index      int // group owning the slice
	SubIndex   int // group at the other end
	Value      float64
	StartAngle float64
	EndAngle   float64
}

// ChordRibbon connects two subgroup slices.
type ChordRibbon struct {
	Source ChordSub
	Target ChordSub
}

// Chord computes a chord diagram layout from a square flow matrix:
// matrix[i][j] is the flow from node i to node j. padAngle is the gap
// between adjacent groups. Ribbons are emitted for every pair with
// non-zero combined flow, keyed so that Source.Value >= Target.Value.
func Chord(matrix [][]float64, padAngle float64) ([]ChordGroup, []ChordRibbon, error) {
	n := len(matrix)
	for i, row := range matrix {
		if len(row) != n {
			return nil, nil, fmt.Errorf("%w: chord matrix row %d has %d entries, want %d",
				viz.ErrDimensionMismatch, i, len(row), n)
		}
	}
	if n == 0 {
		return nil, nil, nil
	}

	groupSums := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			groupSums[i] += matrix[i][j]
			total += matrix[i][j]
		}
	}
	if total == 0 {
		return nil, nil, fmt.Errorf("%w: chord matrix has no flow", viz.ErrEmpty)
	}
	k := (tau - padAngle*float64(n)) / total

	groups := make([]ChordGroup, n)
	// Per-group slice cursors, advanced as subgroups are laid out.
	subStart := make([][]float64, n)
	angle := 0.0
	for i := 0; i < n; i++ {
		groups[i] = ChordGroup{
			Index:      i,
			Value:      groupSums[i],
			StartAngle: angle,
			EndAngle:   angle + groupSums[i]*k,
		}
		subStart[i] = make([]float64, n)
		a := angle
		for j := 0; j < n; j++ {
			subStart[i][j] = a
			a += matrix[i][j] * k
		}
		angle = groups[i].EndAngle + padAngle
	}

	sub := func(i, j int) ChordSub {
		return ChordSub{
			Index:      i,
			SubIndex:   j,
			Value:      matrix[i][j],
			StartAngle: subStart[i][j],
			EndAngle:   subStart[i][j] + matrix[i][j]*k,
		}
	}

	var ribbons []ChordRibbon
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if matrix[i][j] == 0 && matrix[j][i] == 0 {
				continue
			}
			s, t := sub(i, j), sub(j, i)
			if t.Value > s.Value {
				s, t = t, s
			}
			ribbons = append(ribbons, ChordRibbon{Source: s, Target: t})
		}
	}
	return groups, ribbons, nil
}

// RibbonPath generates the closed outline of a ribbon at the given
// radius: an arc along the source slice, a quadratic pull through the
// center to the target slice, an arc along it, and a pull back.
func RibbonPath(r ChordRibbon, radius float64) *viz.Path {
	p := viz.NewPath()
	if radius <= 0 {
		return p
	}
	s0 := polar(r.Source.StartAngle, radius)
	p.MoveTo(s0.X, s0.Y)
	p.Arc(0, 0, radius, mathAngle(r.Source.StartAngle), mathAngle(r.Source.EndAngle))
	if r.Source.Index == r.Target.Index &&
		math.Abs(r.Source.StartAngle-r.Target.StartAngle) < angleEps {
		// Self-loop: a single slice pulled through the center.
		p.QuadraticTo(0, 0, s0.X, s0.Y)
		p.Close()
		return p
	}
	t0 := polar(r.Target.StartAngle, radius)
	p.QuadraticTo(0, 0, t0.X, t0.Y)
	p.Arc(0, 0, radius, mathAngle(r.Target.StartAngle), mathAngle(r.Target.EndAngle))
	p.QuadraticTo(0, 0, s0.X, s0.Y)
	p.Close()
	return p
}
