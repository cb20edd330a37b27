package geo

import "math"

// Rotation composes three spherical rotations: λ about the polar axis,
// φ tilting the pole, γ spinning about the new center. Angles are
// degrees. The zero value is the identity.
type Rotation struct {
	Lambda float64
	Phi    float64
	Gamma  float64
}

// IsIdentity reports whether the rotation leaves coordinates
// unchanged.
func (r Rotation) IsIdentity() bool {
	return r.Lambda == 0 && r.Phi == 0 && r.Gamma == 0
}

// Apply rotates lon/lat radians forward.
func (r Rotation) Apply(λ, φ float64) (float64, float64) {
	if r.IsIdentity() {
		return λ, φ
	}
	λ += r.Lambda * deg2rad
	return rotatePhiGamma(λ, φ, r.Phi*deg2rad, r.Gamma*deg2rad)
}

// Invert undoes Apply.
func (r Rotation) Invert(λ, φ float64) (float64, float64) {
	if r.IsIdentity() {
		return λ, φ
	}
	λ, φ = rotatePhiGamma(λ, φ, 0, -r.Gamma*deg2rad)
	λ, φ = rotatePhiGammaBack(λ, φ, -r.Phi*deg2rad)
	return normalizeLambda(λ - r.Lambda*deg2rad), φ
}

// rotatePhiGamma applies the φ then γ rotations to spherical
// coordinates.
func rotatePhiGamma(λ, φ, dφ, dγ float64) (float64, float64) {
	cosφ, sinφ := math.Cos(φ), math.Sin(φ)
	x := math.Cos(λ) * cosφ
	y := math.Sin(λ) * cosφ
	z := sinφ

	cosdφ, sindφ := math.Cos(dφ), math.Sin(dφ)
	k := z*cosdφ + x*sindφ
	x2 := x*cosdφ - z*sindφ

	cosdγ, sindγ := math.Cos(dγ), math.Sin(dγ)
	y2 := y*cosdγ - k*sindγ
	z2 := k*cosdγ + y*sindγ

	return math.Atan2(y2, x2), math.Asin(clamp1(z2))
}

// rotatePhiGammaBack applies only a φ rotation (used on the inverse
// path, after γ is undone).
func rotatePhiGammaBack(λ, φ, dφ float64) (float64, float64) {
	return rotatePhiGamma(λ, φ, dφ, 0)
}

func normalizeLambda(λ float64) float64 {
	for λ > math.Pi {
		λ -= 2 * math.Pi
	}
	for λ < -math.Pi {
		λ += 2 * math.Pi
	}
	return λ
}
