package geo

import (
	"math"

	"github.com/gogpu/viz"
)

// raw is a unit-scale projection in rotated radians: planar x right,
// y up. ok is false outside the projection's domain.
type raw interface {
	project(λ, φ float64) (x, y float64, ok bool)
	invert(x, y float64) (λ, φ float64, ok bool)
}

// Projection wraps a raw projection with rotation, scale, translation
// and an optional clip angle, mirroring the common d3 projection
// surface. The value is immutable; setters return copies.
type Projection struct {
	raw       raw
	scale     float64
	tx, ty    float64
	rotation  Rotation
	clipAngle float64 // degrees from the projection center, 0 = none
	cx, cy    float64 // raw-plane offset of the configured center
}

func newProjection(r raw) Projection {
	return Projection{raw: r, scale: 1}
}

// Scale sets the output scale factor (default 1).
func (p Projection) Scale(k float64) Projection {
	p.scale = k
	return p
}

// Translate sets the output offset of the projection center.
func (p Projection) Translate(x, y float64) Projection {
	p.tx, p.ty = x, y
	return p
}

// Rotate sets the spherical rotation applied before projecting.
func (p Projection) Rotate(lambda, phi, gamma float64) Projection {
	p.rotation = Rotation{Lambda: lambda, Phi: phi, Gamma: gamma}
	return p
}

// Center places the given lon/lat (degrees) at the translate point.
func (p Projection) Center(lon, lat float64) Projection {
	λ, φ := p.rotation.Apply(lon*deg2rad, lat*deg2rad)
	if x, y, ok := p.raw.project(λ, φ); ok {
		p.cx, p.cy = x, y
	}
	return p
}

// ClipAngle sets the small-circle clip radius in degrees from the
// projection center; 0 disables clipping.
func (p Projection) ClipAngle(deg float64) Projection {
	p.clipAngle = deg
	return p
}

// visible reports whether a rotated coordinate is inside the clip
// circle.
func (p Projection) visible(λ, φ float64) bool {
	if p.clipAngle <= 0 {
		return true
	}
	// Angular distance from the rotated center (0, 0).
	cosc := math.Cos(φ) * math.Cos(λ)
	return cosc >= math.Cos(p.clipAngle*deg2rad)
}

// Project maps lon/lat degrees to output coordinates. ok is false when
// the point is outside the projection's domain or clip circle.
func (p Projection) Project(lon, lat float64) (viz.Point, bool) {
	λ, φ := p.rotation.Apply(lon*deg2rad, lat*deg2rad)
	if !p.visible(λ, φ) {
		return viz.Point{}, false
	}
	x, y, ok := p.raw.project(λ, φ)
	if !ok {
		return viz.Point{}, false
	}
	// Screen y grows downward.
	return viz.Pt(p.tx+p.scale*(x-p.cx), p.ty-p.scale*(y-p.cy)), true
}

// Invert maps output coordinates back to lon/lat degrees.
func (p Projection) Invert(pt viz.Point) (lon, lat float64, ok bool) {
	if p.scale == 0 {
		return 0, 0, false
	}
	x := (pt.X-p.tx)/p.scale + p.cx
	y := (p.ty-pt.Y)/p.scale + p.cy
	λ, φ, ok := p.raw.invert(x, y)
	if !ok {
		return 0, 0, false
	}
	λ, φ = p.rotation.Invert(λ, φ)
	return λ * rad2deg, φ * rad2deg, true
}

// mercatorLatLimit keeps the Mercator pole singularity out of range.
const mercatorLatLimit = 85 * deg2rad

// NewMercator returns a Mercator projection.
func NewMercator() Projection { return newProjection(mercatorRaw{}) }

type mercatorRaw struct{}

func (mercatorRaw) project(λ, φ float64) (float64, float64, bool) {
	if φ > mercatorLatLimit {
		φ = mercatorLatLimit
	} else if φ < -mercatorLatLimit {
		φ = -mercatorLatLimit
	}
	return λ, math.Log(math.Tan(math.Pi/4 + φ/2)), true
}

func (mercatorRaw) invert(x, y float64) (float64, float64, bool) {
	return x, 2*math.Atan(math.Exp(y)) - math.Pi/2, true
}

// NewEquirectangular returns the identity plate carrée projection.
func NewEquirectangular() Projection { return newProjection(equirectangularRaw{}) }

type equirectangularRaw struct{}

func (equirectangularRaw) project(λ, φ float64) (float64, float64, bool) {
	return λ, φ, true
}

func (equirectangularRaw) invert(x, y float64) (float64, float64, bool) {
	if math.Abs(y) > math.Pi/2 {
		return 0, 0, false
	}
	return x, y, true
}

// NewOrthographic returns an orthographic projection of the visible
// hemisphere.
func NewOrthographic() Projection {
	return newProjection(orthographicRaw{}).ClipAngle(90)
}

type orthographicRaw struct{}

func (orthographicRaw) project(λ, φ float64) (float64, float64, bool) {
	if math.Cos(φ)*math.Cos(λ) < 0 {
		return 0, 0, false
	}
	return math.Cos(φ) * math.Sin(λ), math.Sin(φ), true
}

func (orthographicRaw) invert(x, y float64) (float64, float64, bool) {
	ρ := math.Hypot(x, y)
	if ρ > 1 {
		return 0, 0, false
	}
	c := math.Asin(ρ)
	sinc, cosc := math.Sin(c), math.Cos(c)
	if ρ < epsilon {
		return 0, 0, true
	}
	φ := math.Asin(clamp1(y * sinc / ρ))
	λ := math.Atan2(x*sinc, ρ*cosc)
	return λ, φ, true
}

// NewStereographic returns a stereographic projection from the
// antipode.
func NewStereographic() Projection { return newProjection(stereographicRaw{}) }

type stereographicRaw struct{}

func (stereographicRaw) project(λ, φ float64) (float64, float64, bool) {
	cosφ := math.Cos(φ)
	k := 1 + cosφ*math.Cos(λ)
	if k < epsilon {
		return 0, 0, false
	}
	return 2 * math.Sin(λ) * cosφ / k, 2 * math.Sin(φ) / k, true
}

func (stereographicRaw) invert(x, y float64) (float64, float64, bool) {
	x, y = x/2, y/2
	ρ := math.Hypot(x, y)
	c := 2 * math.Atan(ρ)
	sinc, cosc := math.Sin(c), math.Cos(c)
	if ρ < epsilon {
		return 0, 0, true
	}
	φ := math.Asin(clamp1(y * sinc / ρ))
	λ := math.Atan2(x*sinc, ρ*cosc)
	return λ, φ, true
}

// NewConicEqualArea returns an Albers-style conic with the given
// standard parallels (degrees).
func NewConicEqualArea(parallel0, parallel1 float64) Projection {
	return newProjection(newConicRaw(parallel0, parallel1))
}

type conicRaw struct {
	n, c, ρ0 float64
}

func newConicRaw(p0deg, p1deg float64) conicRaw {
	φ0, φ1 := p0deg*deg2rad, p1deg*deg2rad
	sinφ0 := math.Sin(φ0)
	n := (sinφ0 + math.Sin(φ1)) / 2
	if math.Abs(n) < epsilon {
		// Degenerate to cylindrical equal area at the equator.
		n = sinφ0
		if math.Abs(n) < epsilon {
			n = epsilon
		}
	}
	c := 1 + sinφ0*(2*n-sinφ0)
	return conicRaw{n: n, c: c, ρ0: math.Sqrt(c) / n}
}

func (r conicRaw) project(λ, φ float64) (float64, float64, bool) {
	s := r.c - 2*r.n*math.Sin(φ)
	if s < 0 {
		return 0, 0, false
	}
	ρ := math.Sqrt(s) / r.n
	return ρ * math.Sin(λ*r.n), r.ρ0 - ρ*math.Cos(λ*r.n), true
}

func (r conicRaw) invert(x, y float64) (float64, float64, bool) {
	ρ0y := r.ρ0 - y
	ρ := math.Hypot(x, ρ0y)
	if r.n < 0 {
		ρ = -ρ
		x, ρ0y = -x, -ρ0y
	}
	φarg := (r.c - ρ*ρ*r.n*r.n) / (2 * r.n)
	if φarg < -1 || φarg > 1 {
		return 0, 0, false
	}
	return math.Atan2(x, ρ0y) / r.n, math.Asin(φarg), true
}

// NewTransverseMercator returns the Mercator projection rotated 90°
// so the central meridian plays the role of the equator.
func NewTransverseMercator() Projection { return newProjection(transverseMercatorRaw{}) }

type transverseMercatorRaw struct{}

func (transverseMercatorRaw) project(λ, φ float64) (float64, float64, bool) {
	// Gauss sphere form: the Mercator cylinder tangent along the
	// central meridian instead of the equator.
	b := math.Cos(φ) * math.Sin(λ)
	if math.Abs(math.Abs(b)-1) < epsilon {
		return 0, 0, false
	}
	return math.Atanh(b), math.Atan2(math.Sin(φ), math.Cos(φ)*math.Cos(λ)), true
}

func (transverseMercatorRaw) invert(x, y float64) (float64, float64, bool) {
	φ := math.Asin(clamp1(math.Sin(y) / math.Cosh(x)))
	λ := math.Atan2(math.Sinh(x), math.Cos(y))
	return λ, φ, true
}

// NewAlbers returns the standard Albers conic for the conterminous
// United States: parallels 29.5° and 45.5°, rotated to -96° central
// meridian.
func NewAlbers() Projection {
	return NewConicEqualArea(29.5, 45.5).Rotate(96, 0, 0).Center(-96.6, 38.7)
}

// AlbersUSA composes the conterminous-US Albers projection with
// Alaska and Hawaii insets spliced into fixed subrectangles below the
// southwest, the familiar wall-map layout. Scale and translate apply
// to the composite.
type AlbersUSA struct {
	lower48 Projection
	alaska  Projection
	hawaii  Projection
	scale   float64
	tx, ty  float64
}

// NewAlbersUSA returns the composite projection at unit scale.
func NewAlbersUSA() AlbersUSA {
	return AlbersUSA{
		lower48: NewAlbers(),
		alaska:  NewConicEqualArea(55, 65).Rotate(154, 0, 0).Center(-156, 58.5),
		hawaii:  NewConicEqualArea(8, 18).Rotate(157, 0, 0).Center(-160, 19.9),
		scale:   1,
	}
}

// Scale sets the composite scale.
func (a AlbersUSA) Scale(k float64) AlbersUSA {
	a.scale = k
	return a
}

// Translate sets the composite offset.
func (a AlbersUSA) Translate(x, y float64) AlbersUSA {
	a.tx, a.ty = x, y
	return a
}

// Inset placement in composite units, matching the conventional
// wall-map arrangement (Alaska at 35% size).
const (
	alaskaScale        = 0.35
	alaskaDX, alaskaDY = -0.35, 0.22
	hawaiiDX, hawaiiDY = -0.18, 0.25
)

// Project routes points to the lower-48 plane or an inset by region.
func (a AlbersUSA) Project(lon, lat float64) (viz.Point, bool) {
	switch {
	case lat > 50 && lon < -128:
		pt, ok := a.alaska.Project(lon, lat)
		if !ok {
			return viz.Point{}, false
		}
		return viz.Pt(
			a.tx+a.scale*(pt.X*alaskaScale+alaskaDX),
			a.ty+a.scale*(pt.Y*alaskaScale+alaskaDY),
		), true
	case lat < 25 && lon < -150:
		pt, ok := a.hawaii.Project(lon, lat)
		if !ok {
			return viz.Point{}, false
		}
		return viz.Pt(
			a.tx+a.scale*(pt.X+hawaiiDX),
			a.ty+a.scale*(pt.Y+hawaiiDY),
		), true
	}
	pt, ok := a.lower48.Project(lon, lat)
	if !ok {
		return viz.Point{}, false
	}
	return viz.Pt(a.tx+a.scale*pt.X, a.ty+a.scale*pt.Y), true
}
