package core

import colorful "github.com/lucasb-eyer/go-colorful"

// RGB is a 24-bit pixel color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Lerp linearly interpolates each channel from a to b. t is clamped to [0,1].
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Scale multiplies each channel by v clamped to [0,1].
func (c RGB) Scale(v float64) RGB {
	if v <= 0 {
		return RGB{}
	}
	if v > 1 {
		v = 1
	}
	return RGB{
		R: uint8(float64(c.R) * v),
		G: uint8(float64(c.G) * v),
		B: uint8(float64(c.B) * v),
	}
}

// HSV converts hue [0,360), saturation and value [0,1] to an RGB pixel.
func HSV(h, s, v float64) RGB {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return RGB{R: r, G: g, B: b}
}

// Clamp01 limits v to the unit interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
