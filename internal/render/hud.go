package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/object"
	"github.com/tomz197/impact/internal/sim"
)

// HUD panel layout.
const (
	hudX, hudY          = 10, 10
	hudWidth, hudHeight = 300, 400
	hudLineStart        = 60
	hudLineHeight       = 25
	hudPadding          = 10
	hudAlpha            = 0.7
)

// Controls legend layout, anchored to the bottom right corner.
const (
	legendWidth      = 200
	legendHeight     = 150
	legendLineHeight = 20
)

var printer = message.NewPrinter(language.English)

// Controls lists the key bindings shown in the legend.
var Controls = []string{
	"SPACE  pause/resume",
	"D      toggle HUD",
	"E      toggle effects",
	"R      reset",
	"+/-    speed",
	"Q      quit",
}

// HUDLines formats the effect parameters and clock for the HUD panel.
func HUDLines(v sim.View) []string {
	km := func(units float64) float64 { return effect.Kilometres(units, v.Scale) }
	p := v.Params
	return []string{
		printer.Sprintf("Energy: %.2f Mt", p.EnergyMegatons),
		printer.Sprintf("Total destruction: %.1f km", km(p.TotalDestructionRadius)),
		printer.Sprintf("Severe destruction: %.1f km", km(p.SevereDestructionRadius)),
		printer.Sprintf("Moderate destruction: %.1f km", km(p.ModerateDestructionRadius)),
		printer.Sprintf("Fire radius: %.1f km", km(p.FireRadius)),
		printer.Sprintf("Dust radius: %.1f km", km(p.DustRadius)),
		printer.Sprintf("Earthquake: M %.1f", p.EarthquakeMagnitude),
		printer.Sprintf("Tsunami: %.1f m", p.TsunamiHeight),
		printer.Sprintf("Fatalities: %d", p.Fatalities),
		printer.Sprintf("Injuries: %d", p.Injuries),
		printer.Sprintf("Time: %.2f s", v.Elapsed),
		printer.Sprintf("Speed: %.2gx  %s", v.Speed, v.State),
	}
}

func drawHUD(s Surface, v sim.View) {
	s.FillRect(hudX, hudY, hudWidth, hudHeight, object.ColorBlack, hudAlpha)
	s.StrokeRect(hudX, hudY, hudWidth, hudHeight, outlineWidth, object.ColorWhite, 1)
	s.Text(hudX+hudPadding, hudY+hudPadding, "IMPACT EFFECTS", object.ColorYellow)

	for i, line := range HUDLines(v) {
		s.Text(hudX+hudPadding, float64(hudLineStart+i*hudLineHeight), line, object.ColorWhite)
	}
}

func drawLegend(s Surface) {
	w, h := s.Size()
	x, y := w-legendWidth, h-legendHeight
	s.FillRect(x, y, legendWidth-hudPadding, legendHeight-hudPadding, object.ColorBlack, hudAlpha)
	for i, line := range Controls {
		s.Text(x+hudPadding, y+hudPadding+float64(i*legendLineHeight), line, object.ColorWhite)
	}
}
