package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha scaled by a in [0,1].
// The colour channels are scaled too since ebiten expects premultiplied alpha.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// HealthColor picks green, yellow or red for a health bar by remaining share.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return color.RGBA{0, 255, 0, 255}
	case ratio > 0.25:
		return color.RGBA{255, 255, 0, 255}
	default:
		return color.RGBA{255, 0, 0, 255}
	}
}
