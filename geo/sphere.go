// Package geo projects geographic coordinates onto the plane and
// walks GeoJSON-like geometry into path command streams. Angles at the
// public API are degrees; the math below runs in radians.
package geo

import (
	"math"
)

const (
	deg2rad     = math.Pi / 180
	rad2deg     = 180 / math.Pi
	earthRadius = 6371.0088 // mean Earth radius, km
	epsilon     = 1e-10
)

// Distance returns the great-circle distance between two lon/lat
// pairs (degrees) in radians of arc. Multiply by a sphere radius for
// a length.
func Distance(lon0, lat0, lon1, lat1 float64) float64 {
	φ0, φ1 := lat0*deg2rad, lat1*deg2rad
	dφ := (lat1 - lat0) * deg2rad
	dλ := (lon1 - lon0) * deg2rad
	s := math.Sin(dφ/2)*math.Sin(dφ/2) +
		math.Cos(φ0)*math.Cos(φ1)*math.Sin(dλ/2)*math.Sin(dλ/2)
	return 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
}

// DistanceKm is Distance scaled to kilometers on the mean Earth
// radius.
func DistanceKm(lon0, lat0, lon1, lat1 float64) float64 {
	return Distance(lon0, lat0, lon1, lat1) * earthRadius
}

// Length returns the sum of great-circle segment distances along a
// line, in radians of arc.
func Length(line [][2]float64) float64 {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += Distance(line[i-1][0], line[i-1][1], line[i][0], line[i][1])
	}
	return total
}

// cartesian converts lon/lat radians to a unit vector.
func cartesian(λ, φ float64) [3]float64 {
	cosφ := math.Cos(φ)
	return [3]float64{cosφ * math.Cos(λ), cosφ * math.Sin(λ), math.Sin(φ)}
}

// spherical converts a unit vector back to lon/lat radians.
func spherical(v [3]float64) (λ, φ float64) {
	return math.Atan2(v[1], v[0]), math.Asin(clamp1(v[2]))
}

func clamp1(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// Interpolate returns a spherical linear interpolator between two
// lon/lat pairs (degrees). The returned function traces the great
// circle at constant speed.
func Interpolate(lon0, lat0, lon1, lat1 float64) func(t float64) (lon, lat float64) {
	a := cartesian(lon0*deg2rad, lat0*deg2rad)
	b := cartesian(lon1*deg2rad, lat1*deg2rad)
	dot := clamp1(a[0]*b[0] + a[1]*b[1] + a[2]*b[2])
	ω := math.Acos(dot)
	if ω < epsilon {
		return func(float64) (float64, float64) { return lon0, lat0 }
	}
	sinω := math.Sin(ω)
	return func(t float64) (float64, float64) {
		ka := math.Sin((1-t)*ω) / sinω
		kb := math.Sin(t*ω) / sinω
		λ, φ := spherical([3]float64{
			ka*a[0] + kb*b[0],
			ka*a[1] + kb*b[1],
			ka*a[2] + kb*b[2],
		})
		return λ * rad2deg, φ * rad2deg
	}
}

// Centroid returns the spherical centroid of a set of lon/lat pairs
// (degrees): the normalized vector sum. ok is false when the points
// cancel out (e.g. two antipodes).
func Centroid(points [][2]float64) (lon, lat float64, ok bool) {
	var sum [3]float64
	for _, p := range points {
		v := cartesian(p[0]*deg2rad, p[1]*deg2rad)
		sum[0] += v[0]
		sum[1] += v[1]
		sum[2] += v[2]
	}
	norm := math.Sqrt(sum[0]*sum[0] + sum[1]*sum[1] + sum[2]*sum[2])
	if norm < epsilon {
		return 0, 0, false
	}
	λ, φ := spherical([3]float64{sum[0] / norm, sum[1] / norm, sum[2] / norm})
	return λ * rad2deg, φ * rad2deg, true
}

// Area returns the spherical area of a polygon ring (lon/lat degrees,
// closed or open) in steradians, by summing the spherical excess.
func Area(ring [][2]float64) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	if ring[0] == ring[n-1] {
		ring = ring[:n-1]
		n--
		if n < 3 {
			return 0
		}
	}
	// L'Huilier via the shoelace on the sphere: sum of angles between
	// consecutive edge normals.
	sum := 0.0
	prev := ring[n-1]
	λ0, φ0 := prev[0]*deg2rad, prev[1]*deg2rad
	for _, p := range ring {
		λ1, φ1 := p[0]*deg2rad, p[1]*deg2rad
		sum += (λ1 - λ0) * (2 + math.Sin(φ0) + math.Sin(φ1))
		λ0, φ0 = λ1, φ1
	}
	return math.Abs(sum) / 2
}

// Contains reports whether the lon/lat point (degrees) lies inside the
// polygon ring, by great-circle ray casting along the point's parallel.
func Contains(ring [][2]float64, lon, lat float64) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		yi, yj := ring[i][1], ring[j][1]
		xi, xj := ring[i][0], ring[j][0]
		if (yi > lat) != (yj > lat) &&
			lon < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
