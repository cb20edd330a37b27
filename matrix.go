package viz

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply returns the matrix product m * n.
// The resulting transformation applies n first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transformation, and false when the matrix
// is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}
