package interp

import "math"

// Easing functions map t in [0, 1] to an eased parameter. All easings
// map 0 to 0 and 1 to 1; elastic and back overshoot in between.

// EaseLinear is the identity easing.
func EaseLinear(t float64) float64 { return t }

// EaseQuadIn accelerates from zero velocity.
func EaseQuadIn(t float64) float64 { return t * t }

// EaseQuadOut decelerates to zero velocity.
func EaseQuadOut(t float64) float64 { return t * (2 - t) }

// EaseQuadInOut accelerates then decelerates.
func EaseQuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseCubicIn accelerates cubically.
func EaseCubicIn(t float64) float64 { return t * t * t }

// EaseCubicOut decelerates cubically.
func EaseCubicOut(t float64) float64 {
	t--
	return t*t*t + 1
}

// EaseCubicInOut accelerates then decelerates cubically.
func EaseCubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// EaseSinIn eases in along a quarter sine wave.
func EaseSinIn(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

// EaseSinOut eases out along a quarter sine wave.
func EaseSinOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// EaseSinInOut eases along a half sine wave.
func EaseSinInOut(t float64) float64 { return (1 - math.Cos(math.Pi*t)) / 2 }

// EaseExpIn eases in exponentially.
func EaseExpIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// EaseExpOut eases out exponentially.
func EaseExpOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseExpInOut eases in then out exponentially.
func EaseExpInOut(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// EaseCircleIn eases in along a quarter circle.
func EaseCircleIn(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

// EaseCircleOut eases out along a quarter circle.
func EaseCircleOut(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

// EaseCircleInOut eases along two quarter circles.
func EaseCircleInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return (1 - math.Sqrt(1-t*t)) / 2
	}
	t -= 2
	return (math.Sqrt(1-t*t) + 1) / 2
}

// EaseElasticOut overshoots like a released spring.
func EaseElasticOut(t float64) float64 {
	const period = 0.3
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t-period/4)*(2*math.Pi)/period) + 1
}

// EaseElasticIn is the mirrored elastic easing.
func EaseElasticIn(t float64) float64 {
	return 1 - EaseElasticOut(1-t)
}

// EaseBackIn pulls back before accelerating.
func EaseBackIn(t float64) float64 {
	const s = 1.70158
	return t * t * ((s+1)*t - s)
}

// EaseBackOut overshoots the target before settling.
func EaseBackOut(t float64) float64 {
	const s = 1.70158
	t--
	return t*t*((s+1)*t+s) + 1
}

// EaseBounceOut bounces like a dropped ball coming to rest.
func EaseBounceOut(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// EaseBounceIn is the mirrored bounce easing.
func EaseBounceIn(t float64) float64 {
	return 1 - EaseBounceOut(1-t)
}
