package draw

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// seqKey identifies a cached SGR color parameter.
type seqKey struct {
	rgb     uint32
	bg      bool
	profile termenv.Profile
}

// maxSeqCache bounds the color sequence cache; blended colors are unbounded.
const maxSeqCache = 4096

// colorSeq returns the SGR parameters for color in profile, e.g. "38;2;255;0;0".
func (c *Canvas) colorSeq(color colorful.Color, bg bool, profile termenv.Profile) string {
	r, g, b := color.Clamped().RGB255()
	key := seqKey{rgb: uint32(r)<<16 | uint32(g)<<8 | uint32(b), bg: bg, profile: profile}
	if seq, ok := c.seqCache[key]; ok {
		return seq
	}
	if len(c.seqCache) >= maxSeqCache {
		clear(c.seqCache)
	}
	seq := profile.Color(colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()).Sequence(bg)
	c.seqCache[key] = seq
	return seq
}

// Render writes the canvas through cw. Each terminal cell shows its top
// pixel as the foreground of an upper half block and its bottom pixel as
// the background. Style sequences are only emitted when the colors change.
// Labels are drawn last, over the pixels they cover.
func (c *Canvas) Render(cw *ChunkWriter, profile termenv.Profile) {
	if profile == termenv.Ascii {
		c.renderShades(cw)
		return
	}

	var lastFg, lastBg string
	styled := false

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		cw.MoveCursor(1, row+1)
		for col := 0; col < c.termWidth; col++ {
			fg := c.colorSeq(c.pixels[topOffset+col], false, profile)
			bg := c.colorSeq(c.pixels[bottomOffset+col], true, profile)
			if !styled || fg != lastFg || bg != lastBg {
				writeSGR(cw, fg, bg)
				lastFg, lastBg = fg, bg
				styled = true
			}
			cw.WriteRune(BlockUpperHalf)
		}
	}

	for _, l := range c.labels {
		c.renderLabel(cw, l, profile)
	}
	cw.WriteString(termenv.CSI + termenv.ResetSeq + "m")
}

// renderLabel writes a label clipped to the canvas, keeping the cell's
// top pixel color as its background.
func (c *Canvas) renderLabel(cw *ChunkWriter, l Label, profile termenv.Profile) {
	if l.Row < 1 || l.Row > c.termHeight {
		return
	}
	col := l.Col
	placed := false
	for _, r := range l.Text {
		if col > c.termWidth {
			return
		}
		if col >= 1 {
			if !placed {
				cw.MoveCursor(col, l.Row)
				placed = true
			}
			if profile != termenv.Ascii {
				bgPixel := c.pixels[(l.Row-1)*2*c.termWidth+col-1]
				writeSGR(cw, c.colorSeq(l.Color, false, profile), c.colorSeq(bgPixel, true, profile))
			}
			cw.WriteRune(r)
		}
		col++
	}
}

// renderShades draws each cell as a shade character of its average lightness.
func (c *Canvas) renderShades(cw *ChunkWriter) {
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		cw.MoveCursor(1, row+1)
		for col := 0; col < c.termWidth; col++ {
			l := (Luminance(c.pixels[topOffset+col]) + Luminance(c.pixels[bottomOffset+col])) / 2
			cw.WriteRune(ShadeLevel(l))
		}
	}
	for _, l := range c.labels {
		c.renderLabel(cw, l, termenv.Ascii)
	}
}

// writeSGR emits one combined select-graphic-rendition sequence.
func writeSGR(cw *ChunkWriter, fg, bg string) {
	if fg == "" && bg == "" {
		return
	}
	var b strings.Builder
	b.WriteString(termenv.CSI)
	b.WriteString(fg)
	if fg != "" && bg != "" {
		b.WriteByte(';')
	}
	b.WriteString(bg)
	b.WriteByte('m')
	cw.WriteString(b.String())
}
