package viz

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. RGBA is immutable: all
// transformations return a new color.
type RGBA struct {
	R, G, B, A float64
}

// DefaultColor is the default series color, tableau steel blue.
var DefaultColor = FromHex(0x1f77b4)

// RGB creates an opaque color from RGB components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromHex creates a color from a 24-bit 0xRRGGBB value.
func FromHex(hex uint32) RGBA {
	return RGBA{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// FromHexA creates a color from a 32-bit 0xRRGGBBAA value.
func FromHexA(hex uint32) RGBA {
	return RGBA{
		R: float64(hex>>24&0xff) / 255,
		G: float64(hex>>16&0xff) / 255,
		B: float64(hex>>8&0xff) / 255,
		A: float64(hex&0xff) / 255,
	}
}

// ToHex returns the 24-bit 0xRRGGBB value of the color, ignoring alpha.
// FromHex(h).ToHex() == h for every 24-bit h.
func (c RGBA) ToHex() uint32 {
	return channel8(c.R)<<16 | channel8(c.G)<<8 | channel8(c.B)
}

// ToHexA returns the 32-bit 0xRRGGBBAA value of the color.
func (c RGBA) ToHexA() uint32 {
	return channel8(c.R)<<24 | channel8(c.G)<<16 | channel8(c.B)<<8 | channel8(c.A)
}

func channel8(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint32(math.Round(v * 255))
}

// Named looks up a color by its SVG 1.1 name ("steelblue", "tomato"…).
// The second return value is false for unknown names.
func Named(name string) (RGBA, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return RGBA{}, false
	}
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}, true
}

// RGBA implements the image/color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	// Premultiplied 16-bit channels, as color.Color requires.
	r = uint32(clamp01(c.R*c.A) * 65535)
	g = uint32(clamp01(c.G*c.A) * 65535)
	b = uint32(clamp01(c.B*c.A) * 65535)
	a = uint32(clamp01(c.A) * 65535)
	return
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	af := float64(a) / 65535
	return RGBA{
		R: float64(r) / 65535 / af,
		G: float64(g) / 65535 / af,
		B: float64(b) / 65535 / af,
		A: af,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// Lerp performs linear interpolation between two colors per channel.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// HSL creates a color from hue [0, 360), saturation [0, 1] and
// lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = chroma, x, 0
	case h < 2.0/6:
		r, g, b = x, chroma, 0
	case h < 3.0/6:
		r, g, b = 0, chroma, x
	case h < 4.0/6:
		r, g, b = 0, x, chroma
	case h < 5.0/6:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB(r+m, g+m, b+m)
}

// ToHSL returns the hue [0, 360), saturation and lightness of the color.
func (c RGBA) ToHSL() (h, s, l float64) {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	l = (maxC + minC) / 2
	d := maxC - minC
	if d == 0 {
		return 0, 0, l
	}
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}
	switch maxC {
	case c.R:
		h = math.Mod((c.G-c.B)/d, 6)
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return
}

// Luminance returns the WCAG relative luminance of the color.
func (c RGBA) Luminance() float64 {
	lin := func(v float64) float64 {
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// Brighter returns a brighter copy of the color. k is the number of
// brightening steps; k=1 multiplies each channel by 1/0.7.
func (c RGBA) Brighter(k float64) RGBA {
	f := math.Pow(1/0.7, k)
	return RGBA{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
		A: c.A,
	}
}

// Darker returns a darker copy of the color. k is the number of
// darkening steps; k=1 multiplies each channel by 0.7.
func (c RGBA) Darker(k float64) RGBA {
	f := math.Pow(0.7, k)
	return RGBA{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
