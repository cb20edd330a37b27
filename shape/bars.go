package shape

import (
	"github.com/gogpu/viz/scale"
)

// BarDatum is one long-form observation for a grouped bar chart.
type BarDatum struct {
	Group  string
	Series string
	Value  float64
}

// Bar is one laid-out bar: its source datum plus the position and
// width along the group axis. The value axis is the caller's concern.
type Bar struct {
	BarDatum
	X     float64 // start along the group axis
	Width float64
}

// GroupedBars clusters long-form data into per-group bars: an outer
// band scale positions groups, an inner band scale positions series
// within each group. Group and series order follow first appearance in
// the data.
type GroupedBars struct {
	r0, r1   float64
	padOuter float64 // padding between groups
	padInner float64 // padding between bars within a group
}

// NewGroupedBars creates a layout over the unit range with typical
// paddings.
func NewGroupedBars() GroupedBars {
	return GroupedBars{r0: 0, r1: 1, padOuter: 0.2, padInner: 0.05}
}

// Range sets the extent of the group axis in output units.
func (g GroupedBars) Range(r0, r1 float64) GroupedBars {
	g.r0, g.r1 = r0, r1
	return g
}

// GroupPadding sets the band padding between groups, in [0, 1].
func (g GroupedBars) GroupPadding(p float64) GroupedBars {
	g.padOuter = p
	return g
}

// BarPadding sets the band padding between bars inside a group, in
// [0, 1].
func (g GroupedBars) BarPadding(p float64) GroupedBars {
	g.padInner = p
	return g
}

// Layout computes bar positions. The result preserves input order.
func (g GroupedBars) Layout(data []BarDatum) []Bar {
	groups := appearanceOrder(data, func(d BarDatum) string { return d.Group })
	series := appearanceOrder(data, func(d BarDatum) string { return d.Series })

	outer := scale.NewBand[string]().
		Domain(groups).
		Range(g.r0, g.r1).
		Padding(g.padOuter)
	inner := scale.NewBand[string]().
		Domain(series).
		Range(0, outer.Bandwidth()).
		Padding(g.padInner)

	out := make([]Bar, len(data))
	for i, d := range data {
		gx, _ := outer.Value(d.Group)
		sx, _ := inner.Value(d.Series)
		out[i] = Bar{BarDatum: d, X: gx + sx, Width: inner.Bandwidth()}
	}
	return out
}

// appearanceOrder collects distinct keys in first-appearance order.
func appearanceOrder(data []BarDatum, key func(BarDatum) string) []string {
	seen := make(map[string]bool, len(data))
	var out []string
	for _, d := range data {
		k := key(d)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
