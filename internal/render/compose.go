package render

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/impact/internal/object"
	"github.com/tomz197/impact/internal/sim"
)

// Scene layout, in logical units.
const (
	skyBands       = 40
	horizonWidth   = 3
	outlineWidth   = 1
	zoneWidth      = 2
	ringWidth      = 3
	ringAlpha      = 100.0 / 255
	sparksPerRuin  = 5
	sparkMaxRadius = 3
)

var (
	skyTop    = object.ColorSkyBlue
	skyBottom = colorful.Color{R: 240.0 / 255, G: 248.0 / 255, B: 1}
)

// Composer draws views in back-to-front order. It owns the randomness
// used for purely decorative detail, so drawing never touches the
// simulation's random source.
type Composer struct {
	rng    *rand.Rand
	easing ease.TweenFunc
}

// NewComposer creates a composer with a seeded decoration source.
func NewComposer(seed uint64) *Composer {
	return &Composer{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		easing: ease.Linear,
	}
}

// Compose draws v onto s: background, buildings, effects, HUD and legend.
func (c *Composer) Compose(s Surface, v sim.View) {
	c.drawBackground(s)
	c.drawBuildings(s, v.Buildings)

	if v.ShowEffects && v.Loaded {
		drawZones(s, v)
		drawParticles(s, v.Explosion)
		drawParticles(s, v.Fire)
		drawParticles(s, v.Dust)
		drawShockWaves(s, v.ShockWaves)
	}

	if v.ShowHUD {
		drawHUD(s, v)
	}
	drawLegend(s)

	if v.State == sim.StateIdle {
		w, h := s.Size()
		msg := "Waiting for impact data..."
		s.Text(w/2-float64(len(msg))*5, h/2, msg, object.ColorWhite)
	}
}

// drawBackground paints the sky gradient over the top half, the horizon
// line and the ground below it.
func (c *Composer) drawBackground(s Surface) {
	w, h := s.Size()
	horizon := h / 2
	band := horizon / skyBands

	tween := gween.New(0, 1, skyBands-1, c.easing)
	for i := 0; i < skyBands; i++ {
		t, _ := tween.Set(float32(i))
		s.FillRect(0, float64(i)*band, w, band, skyTop.BlendRgb(skyBottom, float64(t)), 1)
	}

	s.FillRect(0, horizon, w, h-horizon, object.ColorGround, 1)
	s.FillRect(0, horizon-horizonWidth/2.0, w, horizonWidth, object.ColorBrown, 1)
}

// drawBuildings renders intact buildings with an outline and destroyed
// ones as dark rubble with a few flickering sparks.
func (c *Composer) drawBuildings(s Surface, buildings []object.Building) {
	for _, b := range buildings {
		if !b.Destroyed {
			s.FillRect(b.X, b.Y, b.Width, b.Height, b.Color, 1)
			s.StrokeRect(b.X, b.Y, b.Width, b.Height, outlineWidth, object.ColorBlack, 1)
			continue
		}

		s.FillRect(b.X, b.Y, b.Width, b.Height, object.ColorDarkGray, 1)
		for i := 0; i < sparksPerRuin; i++ {
			x := b.X + c.rng.Float64()*b.Width
			y := b.Y + c.rng.Float64()*b.Height
			r := 1 + c.rng.Float64()*(sparkMaxRadius-1)
			s.FillCircle(x, y, r, b.Color, 1)
		}
	}
}

// drawZones outlines the destruction zones, outermost first.
func drawZones(s Surface, v sim.View) {
	zones := []struct {
		radius float64
		color  colorful.Color
	}{
		{v.Params.ModerateDestructionRadius, object.ColorYellow},
		{v.Params.SevereDestructionRadius, object.ColorOrange},
		{v.Params.TotalDestructionRadius, object.ColorRed},
	}
	for _, z := range zones {
		if z.radius > 0 {
			s.StrokeCircle(v.ImpactX, v.ImpactY, z.radius, zoneWidth, z.color, 1)
		}
	}
}

// drawParticles shrinks and fades particles with their remaining life.
// Particles whose scaled size reaches zero are skipped.
func drawParticles(s Surface, particles []object.Particle) {
	for _, p := range particles {
		size := p.DrawSize()
		if size <= 0 {
			continue
		}
		s.FillCircle(p.X, p.Y, float64(size), p.Color, p.Opacity())
	}
}

// drawShockWaves fades each ring's stroke with its remaining life.
func drawShockWaves(s Surface, waves []object.ShockWave) {
	for _, w := range waves {
		alpha := ringAlpha * w.LifeFraction()
		if alpha <= 0 || w.Radius <= 0 {
			continue
		}
		s.StrokeCircle(w.X, w.Y, w.Radius, ringWidth, w.Color, alpha)
	}
}
