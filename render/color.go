package render

import "image/color"

// RGB stores explicit 8-bit color channels, decoupled from any frontend
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBWhite     = RGB{255, 255, 255}
	RGBSky       = RGB{64, 224, 208}
	RGBPipe      = RGB{34, 139, 34}
	RGBGold      = RGB{255, 215, 0}
	RGBRed       = RGB{220, 20, 60}
	RGBGrey      = RGB{180, 180, 180}
	RGBBird      = RGB{255, 200, 0}
	RGBSlowPower = RGB{30, 90, 200}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// RGBA converts to an opaque image/color value
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
