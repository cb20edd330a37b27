package interp

import "math"

// View is a camera view: a center point and the width of the visible
// world-space window.
type View struct {
	CX, CY float64
	Width  float64
}

// rho controls the zoom-out curvature of the Van Wijk & Nuij path.
// √2 is their recommended value for a natural feel.
const rho = math.Sqrt2

// Zoom returns an interpolator along the smooth zoom-and-pan path of
// Van Wijk & Nuij between two views, plus a recommended duration in
// milliseconds scaled from the path's arclength.
//
// The path zooms out just far enough that the pan between the two
// centers reads as a single smooth motion.
func Zoom(a, b View) (Interpolator[View], float64) {
	const rho2 = rho * rho
	const rho4 = rho2 * rho2

	ux0, uy0, w0 := a.CX, a.CY, a.Width
	ux1, uy1, w1 := b.CX, b.CY, b.Width
	dx := ux1 - ux0
	dy := uy1 - uy0
	d2 := dx*dx + dy*dy

	var (
		interp func(t float64) View
		S      float64
	)

	if d2 < 1e-12 {
		// Coincident centers: pure exponential zoom.
		S = math.Abs(math.Log(w1/w0)) / rho
		interp = func(t float64) View {
			return View{
				CX:    ux0,
				CY:    uy0,
				Width: w0 * math.Exp(rho*t*S),
			}
		}
		if w1 < w0 {
			interp = func(t float64) View {
				return View{
					CX:    ux0,
					CY:    uy0,
					Width: w0 * math.Exp(-rho*t*S),
				}
			}
		}
	} else {
		d1 := math.Sqrt(d2)
		b0 := (w1*w1 - w0*w0 + rho4*d2) / (2 * w0 * rho2 * d1)
		b1 := (w1*w1 - w0*w0 - rho4*d2) / (2 * w1 * rho2 * d1)
		r0 := math.Log(math.Sqrt(b0*b0+1) - b0)
		r1 := math.Log(math.Sqrt(b1*b1+1) - b1)
		S = (r1 - r0) / rho

		interp = func(t float64) View {
			s := t * S
			coshr0 := math.Cosh(r0)
			u := w0 / (rho2 * d1) * (coshr0*math.Tanh(rho*s+r0) - math.Sinh(r0))
			return View{
				CX:    ux0 + u*dx,
				CY:    uy0 + u*dy,
				Width: w0 * coshr0 / math.Cosh(rho*s+r0),
			}
		}
	}

	duration := S * 1000 / rho
	if math.IsNaN(duration) || duration < 0 {
		duration = 0
	}
	return func(t float64) View {
		if t <= 0 {
			return a
		}
		if t >= 1 {
			return b
		}
		return interp(t)
	}, duration
}
