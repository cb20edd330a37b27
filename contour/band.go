package contour

import (
	"math"
	"sort"

	"github.com/gogpu/viz"
)

// Band is the filled region between two consecutive thresholds,
// expressed as closed polygons (cell fragments stitched by shared
// edges are left to the renderer's fill rule; adjacent fragments share
// edges exactly so no seams appear).
type Band struct {
	Lower    float64
	Upper    float64
	Polygons []Ring
}

// MidValue is the band's center level, the usual color sample point.
func (b Band) MidValue() float64 {
	return (b.Lower + b.Upper) / 2
}

// Bands generates a filled band for each pair of consecutive
// thresholds. thresholds must be ascending.
func (g Grid) Bands(thresholds []float64) []Band {
	if len(thresholds) < 2 {
		return nil
	}
	out := make([]Band, 0, len(thresholds)-1)
	for i := 0; i < len(thresholds)-1; i++ {
		out = append(out, g.band(thresholds[i], thresholds[i+1]))
	}
	return out
}

func (g Grid) band(lower, upper float64) Band {
	b := Band{Lower: lower, Upper: upper}
	for j := 0; j < g.Height-1; j++ {
		for i := 0; i < g.Width-1; i++ {
			if poly, ok := g.cellBandPolygon(i, j, lower, upper); ok {
				if !pointsEqual(poly[0], poly[len(poly)-1]) {
					poly = append(poly, poly[0])
				}
				b.Polygons = append(b.Polygons, Ring{Points: poly})
			}
		}
	}
	return b
}

// classify buckets a value against the band: 0 below, 1 inside, 2
// above.
func classify(v, lower, upper float64) int {
	switch {
	case v < lower:
		return 0
	case v > upper:
		return 2
	}
	return 1
}

// cellBandPolygon clips one cell against the band by walking its
// outline and inserting threshold crossings.
func (g Grid) cellBandPolygon(i, j int, lower, upper float64) ([]viz.Point, bool) {
	vals := [4]float64{g.at(i, j), g.at(i+1, j), g.at(i+1, j+1), g.at(i, j+1)}
	var cls [4]int
	allBelow, allAbove, allIn := true, true, true
	for k, v := range vals {
		cls[k] = classify(v, lower, upper)
		allBelow = allBelow && cls[k] == 0
		allAbove = allAbove && cls[k] == 2
		allIn = allIn && cls[k] == 1
	}
	if allBelow || allAbove {
		return nil, false
	}

	corners := [4]viz.Point{
		g.point(float64(i), float64(j)),
		g.point(float64(i+1), float64(j)),
		g.point(float64(i+1), float64(j+1)),
		g.point(float64(i), float64(j+1)),
	}
	if allIn {
		return corners[:], true
	}

	var pts []viz.Point
	for e := 0; e < 4; e++ {
		cur, next := e, (e+1)%4
		if cls[cur] == 1 {
			pts = append(pts, corners[cur])
		}
		diff := vals[next] - vals[cur]
		if math.Abs(diff) < 1e-10 {
			continue
		}
		type crossing struct {
			t  float64
			pt viz.Point
		}
		var crossings []crossing
		addCrossing := func(level float64) {
			t := (level - vals[cur]) / diff
			if t < 0 || t > 1 {
				return
			}
			crossings = append(crossings, crossing{
				t:  t,
				pt: corners[cur].Lerp(corners[next], t),
			})
		}
		if (cls[cur] == 0) != (cls[next] == 0) {
			addCrossing(lower)
		}
		if (cls[cur] == 2) != (cls[next] == 2) {
			addCrossing(upper)
		}
		sort.Slice(crossings, func(a, b int) bool {
			return crossings[a].t < crossings[b].t
		})
		for _, c := range crossings {
			pts = append(pts, c.pt)
		}
	}

	pts = dedupe(pts)
	if len(pts) < 3 {
		return nil, false
	}
	return pts, true
}
