package draw

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Label is a run of text placed over the canvas at a terminal cell.
type Label struct {
	Col, Row int // 1-based terminal position
	Text     string
	Color    colorful.Color
}

// Canvas is a color buffer with 2x vertical resolution using half-block characters.
// Drawing methods take logical coordinates and scale them to terminal pixels.
type Canvas struct {
	termWidth      int              // Actual terminal columns
	termHeight     int              // Actual terminal rows
	subPixelHeight int              // termHeight * 2
	pixels         []colorful.Color // Flat slice: [y * termWidth + x]
	labels         []Label

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	seqCache map[seqKey]string
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the scene.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		seqCache:      make(map[seqKey]string),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]colorful.Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear fills every pixel with bg and drops all labels.
func (c *Canvas) Clear(bg colorful.Color) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
	c.labels = c.labels[:0]
}

// Size returns the logical dimensions.
func (c *Canvas) Size() (float64, float64) {
	return c.logicalWidth, c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// Pixel returns the color at terminal pixel (px, py), black when out of range.
func (c *Canvas) Pixel(px, py int) colorful.Color {
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return colorful.Color{}
	}
	return c.pixels[py*c.termWidth+px]
}

// Labels returns the text placed since the last Clear.
func (c *Canvas) Labels() []Label {
	return c.labels
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

// Text places s with its first character at logical (x, y).
func (c *Canvas) Text(x, y float64, s string, color colorful.Color) {
	col, row := c.LogicalToTerminal(x, y)
	c.labels = append(c.labels, Label{Col: col, Row: row, Text: s, Color: color})
}

// blend mixes color into the pixel at terminal coordinates (no scaling).
func (c *Canvas) blend(px, py int, color colorful.Color, alpha float64) {
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight || alpha <= 0 {
		return
	}
	i := py*c.termWidth + px
	if alpha >= 1 {
		c.pixels[i] = color
		return
	}
	c.pixels[i] = c.pixels[i].BlendRgb(color, alpha)
}

// toPixel returns the terminal pixel containing the logical point.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y * c.scaleY))
}
