package draw

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FillRect fills a logical rectangle. Rectangles thinner than a pixel
// still cover one pixel so thin lines stay visible.
func (c *Canvas) FillRect(x, y, w, h float64, color colorful.Color, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	// Pixels whose centres fall inside the rectangle.
	x0 := int(math.Round(x * c.scaleX))
	x1 := int(math.Round((x + w) * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	y1 := int(math.Round((y + h) * c.scaleY))
	if x1 <= x0 {
		x0 = int(math.Floor(x * c.scaleX))
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y0 = int(math.Floor(y * c.scaleY))
		y1 = y0 + 1
	}

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, color, alpha)
		}
	}
}

// StrokeRect outlines a logical rectangle with the given line width.
func (c *Canvas) StrokeRect(x, y, w, h, width float64, color colorful.Color, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	width = max(width, 0)
	c.FillRect(x, y, w, width, color, alpha)
	c.FillRect(x, y+h-width, w, width, color, alpha)
	c.FillRect(x, y, width, h, color, alpha)
	c.FillRect(x+w-width, y, width, h, color, alpha)
}

// FillCircle fills a logical disk. The centre pixel is always set, so
// tiny particles remain visible after scaling.
func (c *Canvas) FillCircle(cx, cy, r float64, color colorful.Color, alpha float64) {
	if r <= 0 {
		return
	}
	centerX, centerY := c.toPixel(cx, cy)
	covered := false

	py0 := max(int(math.Floor((cy-r)*c.scaleY)), 0)
	py1 := min(int(math.Ceil((cy+r)*c.scaleY)), c.subPixelHeight-1)
	for py := py0; py <= py1; py++ {
		dy := (float64(py)+0.5)/c.scaleY - cy
		if math.Abs(dy) > r {
			continue
		}
		half := math.Sqrt(r*r - dy*dy)
		px0 := int(math.Ceil((cx-half)*c.scaleX - 0.5))
		px1 := int(math.Floor((cx+half)*c.scaleX - 0.5))
		if py == centerY && px0 <= centerX && centerX <= px1 {
			covered = true
		}
		for px := max(px0, 0); px <= min(px1, c.termWidth-1); px++ {
			c.blend(px, py, color, alpha)
		}
	}

	if !covered {
		c.blend(centerX, centerY, color, alpha)
	}
}

// StrokeCircle draws a logical ring of the given width centred on radius r.
// The band is never thinner than one pixel on screen.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, color colorful.Color, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	minHalf := 0.5 / math.Min(c.scaleX, c.scaleY)
	half := math.Max(width/2, minHalf)
	inner := math.Max(r-half, 0)
	outer := r + half
	inner2, outer2 := inner*inner, outer*outer

	px0 := max(int(math.Floor((cx-outer)*c.scaleX)), 0)
	px1 := min(int(math.Ceil((cx+outer)*c.scaleX)), c.termWidth-1)
	py0 := max(int(math.Floor((cy-outer)*c.scaleY)), 0)
	py1 := min(int(math.Ceil((cy+outer)*c.scaleY)), c.subPixelHeight-1)

	for py := py0; py <= py1; py++ {
		dy := (float64(py)+0.5)/c.scaleY - cy
		for px := px0; px <= px1; px++ {
			dx := (float64(px)+0.5)/c.scaleX - cx
			d2 := dx*dx + dy*dy
			if d2 >= inner2 && d2 <= outer2 {
				c.blend(px, py, color, alpha)
			}
		}
	}
}

// Line draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) Line(x1f, y1f, x2f, y2f float64, color colorful.Color, alpha float64) {
	x1, y1 := c.toPixel(x1f, y1f)
	x2, y2 := c.toPixel(x2f, y2f)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.blend(x1, y1, color, alpha)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}
