package surface

import (
	"math"

	"github.com/gogpu/viz"
)

// Colormap selects a t -> color ramp for surface shading. The
// sequential maps use polynomial fits that track the tabulated
// references closely enough for display; the diverging maps
// interpolate ColorBrewer anchors.
type Colormap uint8

const (
	Viridis Colormap = iota
	Plasma
	Inferno
	Magma
	Turbo
	Heat
	CoolWarm
	Spectral
	RdBu
)

// ShaderIndex returns the stable index used to select the ramp inside
// a shader uniform.
func (c Colormap) ShaderIndex() uint32 { return uint32(c) }

func (c Colormap) String() string {
	switch c {
	case Viridis:
		return "viridis"
	case Plasma:
		return "plasma"
	case Inferno:
		return "inferno"
	case Magma:
		return "magma"
	case Turbo:
		return "turbo"
	case Heat:
		return "heat"
	case CoolWarm:
		return "coolwarm"
	case Spectral:
		return "spectral"
	case RdBu:
		return "rdbu"
	}
	return "unknown"
}

// At evaluates the ramp at t, clamped to [0, 1].
func (c Colormap) At(t float64) viz.RGBA {
	t = math.Max(0, math.Min(1, t))
	switch c {
	case Plasma:
		return poly5(t,
			[6]float64{0.0504, 1.3656, 0.4324, -6.8475, 5.5523, -0.5571},
			[6]float64{0.0298, 0.0099, 2.2891, -6.4044, 5.4343, -1.3609},
			[6]float64{0.5280, 1.8654, -6.4178, 10.0276, -6.5861, 1.5724})
	case Inferno:
		return poly5(t,
			[6]float64{0.0002, 0.4366, 4.1934, -13.6829, 16.1821, -6.1307},
			[6]float64{0.0003, 0.0888, 3.5044, -8.7954, 8.4731, -2.2655},
			[6]float64{0.0139, 2.0252, -6.4560, 10.8598, -9.6524, 3.2059})
	case Magma:
		return poly6(t,
			[7]float64{-0.0021, 0.2517, 8.3537, -27.6687, 52.1761, -50.7685, 18.6557},
			[7]float64{-0.0007, 0.6775, -3.5777, 14.2647, -27.9436, 29.0466, -11.4898},
			[7]float64{-0.0054, 2.4940, 0.3145, -13.6492, 12.9442, 4.2342, -5.6020})
	case Turbo:
		r := 0.13572 + t*(4.6153+t*(-42.6592+t*(138.5676+t*(-152.3494+t*59.2859))))
		g := 0.09140 + t*(2.2537+t*(0.6487+t*(-23.3910+t*(38.3522-t*18.0858))))
		b := 0.10667 + t*(12.5925+t*(-60.5820+t*(109.7316+t*(-88.2949+t*26.7236))))
		return clampRGB(r, g, b)
	case Heat:
		return clampRGB(3*t, 3*t-1, 3*t-2)
	case CoolWarm:
		if t < 0.5 {
			s := t / 0.5
			return viz.RGB(0.23+0.64*s, 0.30+0.57*s, 0.75+0.12*s)
		}
		s := (t - 0.5) / 0.5
		return viz.RGB(0.87-0.16*s, 0.87-0.85*s, 0.87-0.72*s)
	case Spectral:
		return rampAt(spectralAnchors, t)
	case RdBu:
		return rampAt(rdbuAnchors, t)
	}
	return poly6(t,
		[7]float64{0.2777, 0.1050, -0.3308, -4.6342, 6.2282, 4.7763, -5.4354},
		[7]float64{0.0054, 0.6387, 0.3143, -5.7991, 14.1799, -13.7451, 4.6456},
		[7]float64{0.3340, 0.2383, 0.5287, -19.3324, 56.6905, -65.3530, 26.3124})
}

func poly5(t float64, r, g, b [6]float64) viz.RGBA {
	eval := func(c [6]float64) float64 {
		return c[0] + t*(c[1]+t*(c[2]+t*(c[3]+t*(c[4]+t*c[5]))))
	}
	return clampRGB(eval(r), eval(g), eval(b))
}

func poly6(t float64, r, g, b [7]float64) viz.RGBA {
	eval := func(c [7]float64) float64 {
		return c[0] + t*(c[1]+t*(c[2]+t*(c[3]+t*(c[4]+t*(c[5]+t*c[6])))))
	}
	return clampRGB(eval(r), eval(g), eval(b))
}

func clampRGB(r, g, b float64) viz.RGBA {
	cl := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	return viz.RGB(cl(r), cl(g), cl(b))
}

// ColorBrewer 11-class anchors.
var spectralAnchors = hexRamp(
	0x9e0142, 0xd53e4f, 0xf46d43, 0xfdae61, 0xfee08b, 0xffffbf,
	0xe6f598, 0xabdda4, 0x66c2a5, 0x3288bd, 0x5e4fa2)

var rdbuAnchors = hexRamp(
	0x67001f, 0xb2182b, 0xd6604d, 0xf4a582, 0xfddbc7, 0xf7f7f7,
	0xd1e5f0, 0x92c5de, 0x4393c3, 0x2166ac, 0x053061)

func hexRamp(values ...uint32) []viz.RGBA {
	out := make([]viz.RGBA, len(values))
	for i, v := range values {
		out[i] = viz.FromHex(v)
	}
	return out
}

func rampAt(anchors []viz.RGBA, t float64) viz.RGBA {
	n := len(anchors)
	pos := t * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		return anchors[n-1]
	}
	return anchors[i].Lerp(anchors[i+1], pos-float64(i))
}
