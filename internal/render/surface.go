// Package render composes a simulation view onto a drawing surface.
package render

import colorful "github.com/lucasb-eyer/go-colorful"

// Surface is a drawing target in the scene's logical coordinates.
// Alpha is in [0, 1]; widths are in logical units.
type Surface interface {
	Size() (width, height float64)
	FillRect(x, y, w, h float64, c colorful.Color, alpha float64)
	StrokeRect(x, y, w, h, width float64, c colorful.Color, alpha float64)
	FillCircle(cx, cy, r float64, c colorful.Color, alpha float64)
	StrokeCircle(cx, cy, r, width float64, c colorful.Color, alpha float64)
	Line(x1, y1, x2, y2 float64, c colorful.Color, alpha float64)
	Text(x, y float64, s string, c colorful.Color)
}
