package object

import colorful "github.com/lucasb-eyer/go-colorful"

// Scene palette.
var (
	ColorBlack     = rgb(0, 0, 0)
	ColorWhite     = rgb(255, 255, 255)
	ColorRed       = rgb(255, 0, 0)
	ColorOrange    = rgb(255, 165, 0)
	ColorYellow    = rgb(255, 255, 0)
	ColorGray      = rgb(128, 128, 128)
	ColorDarkGray  = rgb(64, 64, 64)
	ColorBrown     = rgb(139, 69, 19)
	ColorSkyBlue   = rgb(135, 206, 235)
	ColorFireRed   = rgb(255, 69, 0)
	ColorDustBrown = rgb(160, 82, 45)
	ColorGround    = rgb(48, 38, 28)
)

// DestructionColor marks a destroyed building.
var DestructionColor = ColorRed

var (
	explosionColors = []colorful.Color{ColorRed, ColorOrange, ColorYellow}
	fireColors      = []colorful.Color{ColorFireRed, ColorOrange, ColorYellow}
	buildingColors  = []colorful.Color{ColorGray, ColorDarkGray, ColorBrown}
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
