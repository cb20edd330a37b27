package geo

import "math"

// Graticule generates meridian and parallel lines for map reference
// grids. Parallels stop short of the poles; the outline meridians at
// ±180° always run pole to pole.
type Graticule struct {
	stepLon, stepLat float64
	latExtent        float64 // parallels span [-latExtent, latExtent]
	precision        float64 // degrees between samples along a line
}

// NewGraticule returns a 10°×10° graticule with parallels to ±80° and
// 2.5° sampling.
func NewGraticule() Graticule {
	return Graticule{stepLon: 10, stepLat: 10, latExtent: 80, precision: 2.5}
}

// Step sets the spacing between meridians and parallels.
func (g Graticule) Step(lon, lat float64) Graticule {
	if lon > 0 {
		g.stepLon = lon
	}
	if lat > 0 {
		g.stepLat = lat
	}
	return g
}

// Precision sets the sampling interval in degrees. Finer precision
// tracks curved projections more closely.
func (g Graticule) Precision(deg float64) Graticule {
	if deg > 0 {
		g.precision = deg
	}
	return g
}

// Lines returns every graticule line as a LineString.
func (g Graticule) Lines() []LineString {
	var out []LineString
	for lon := -180.0; lon <= 180+epsilon; lon += g.stepLon {
		out = append(out, g.meridian(lon))
	}
	for lat := -g.latExtent; lat <= g.latExtent+epsilon; lat += g.stepLat {
		out = append(out, g.parallel(lat))
	}
	return out
}

// Geometry returns the graticule as a single collection, ready for a
// PathBuilder.
func (g Graticule) Geometry() Collection {
	lines := g.Lines()
	c := make(Collection, len(lines))
	for i, l := range lines {
		c[i] = l
	}
	return c
}

func (g Graticule) meridian(lon float64) LineString {
	lo, hi := -g.latExtent, g.latExtent
	// Boundary meridians close the sphere outline.
	if math.Abs(math.Abs(lon)-180) < epsilon {
		lo, hi = -90, 90
	}
	return sampleLine(lo, hi, g.precision, func(lat float64) [2]float64 {
		return [2]float64{lon, lat}
	})
}

func (g Graticule) parallel(lat float64) LineString {
	return sampleLine(-180, 180, g.precision, func(lon float64) [2]float64 {
		return [2]float64{lon, lat}
	})
}

func sampleLine(lo, hi, step float64, at func(float64) [2]float64) LineString {
	n := int(math.Ceil((hi - lo) / step))
	if n < 1 {
		n = 1
	}
	out := make(LineString, 0, n+1)
	for i := 0; i <= n; i++ {
		v := lo + (hi-lo)*float64(i)/float64(n)
		out = append(out, at(v))
	}
	return out
}
