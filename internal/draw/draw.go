// Package draw rasterizes the scene onto a colored half-block terminal canvas.
package draw

import colorful "github.com/lucasb-eyer/go-colorful"

// Shade characters from lightest to darkest.
// Used when the terminal has no color support.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	idx := int(intensity * float64(len(Shades)-1))
	return Shades[idx]
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Luminance returns the perceived lightness of c in [0, 1].
func Luminance(c colorful.Color) float64 {
	l, _, _ := c.Clamped().Lab()
	if l < 0 {
		return 0
	}
	if l > 1 {
		return 1
	}
	return l
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
