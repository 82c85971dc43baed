package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flappy/asset"
)

// RGB color definitions for the scene
var (
	RgbSky   = tcell.NewRGBColor(78, 192, 202)  // Daylight cyan
	RgbCloud = tcell.NewRGBColor(233, 252, 217) // Pale green-white

	RgbPipeBody    = tcell.NewRGBColor(115, 191, 46) // Pipe green
	RgbPipeShade   = tcell.NewRGBColor(84, 140, 34)  // Right side shadow
	RgbPipeLight   = tcell.NewRGBColor(158, 228, 89) // Left side highlight
	RgbPipeLip     = tcell.NewRGBColor(96, 168, 38)  // Cap at the gap
	RgbPipeOutline = tcell.NewRGBColor(84, 56, 71)   // Dark outline

	RgbGround       = tcell.NewRGBColor(222, 216, 149) // Sand
	RgbGroundStripe = tcell.NewRGBColor(200, 190, 120) // Darker sand stripe
	RgbGrass        = tcell.NewRGBColor(115, 191, 46)  // Grass edge

	RgbScore       = tcell.NewRGBColor(255, 255, 255) // White
	RgbBannerText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbBannerBg    = tcell.NewRGBColor(84, 56, 71)    // Dark plum
	RgbGameOver    = tcell.NewRGBColor(240, 100, 30)  // Orange
	RgbHintText    = tcell.NewRGBColor(40, 40, 40)    // Dark text on sand
	RgbPointerMode = tcell.NewRGBColor(255, 220, 0)   // Yellow indicator
)

// SpriteColor converts a sprite pixel to a terminal color
func SpriteColor(c asset.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Dim darkens a color by factor in [0, 1]
func Dim(c tcell.Color, factor float64) tcell.Color {
	factor = min(max(factor, 0), 1)
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(float64(r)*factor),
		int32(float64(g)*factor),
		int32(float64(b)*factor),
	)
}
