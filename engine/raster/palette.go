package raster

import (
	"image/color"

	"github.com/1siamBot/snake-engine/engine/core"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	ColorBackground = color.RGBA{255, 255, 255, 255}
	ColorFood       = color.RGBA{255, 0, 0, 255}
	ColorHead       = color.RGBA{0x2e, 0xcc, 0x71, 255}
	ColorWall       = color.RGBA{0x66, 0x66, 0x66, 255}
	ColorSpike      = color.RGBA{0xff, 0x44, 0x44, 255}
	ColorPortal     = color.RGBA{0x99, 0x33, 0xff, 255}
	ColorEye        = color.RGBA{255, 255, 255, 255}
	ColorPupil      = color.RGBA{0, 0, 0, 255}
	ColorText       = color.RGBA{20, 25, 35, 255}
	ColorShade      = color.RGBA{0, 0, 0, 150}
)

// BodyHue returns the hue in degrees of body segment i
func BodyHue(i int) float64 {
	return float64((120 + i*5) % 360)
}

// BodyColor is the HSL(hue, 70%, 50%) gradient along the body
func BodyColor(i int) color.RGBA {
	r, g, b := colorful.Hsl(BodyHue(i), 0.7, 0.5).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// ObstacleColor returns the fill of an obstacle kind
func ObstacleColor(k core.ObstacleKind) color.RGBA {
	switch k {
	case core.KindWall:
		return ColorWall
	case core.KindSpike:
		return ColorSpike
	case core.KindPortal:
		return ColorPortal
	}
	return ColorText
}
