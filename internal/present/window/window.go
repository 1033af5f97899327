// Package window runs the simulation in a desktop window with ebiten.
package window

import (
	"context"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/input"
	"github.com/tomz197/impact/internal/loop"
	"github.com/tomz197/impact/internal/render"
	"github.com/tomz197/impact/internal/sim"
)

// Title is the window title.
const Title = "Impact"

// Game adapts a session to ebiten's fixed-rate Update/Draw cycle.
type Game struct {
	ctx      context.Context
	session  *sim.Session
	composer *render.Composer
	loads    <-chan effect.Record
	logger   *log.Logger

	keys []ebiten.Key
	now  func() time.Time
	last time.Time
}

// NewGame wraps s. The game ends when ctx is cancelled. loads may be nil.
func NewGame(ctx context.Context, s *sim.Session, composer *render.Composer, loads <-chan effect.Record, logger *log.Logger) *Game {
	if composer == nil {
		composer = render.NewComposer(1)
	}
	return &Game{ctx: ctx, session: s, composer: composer, loads: loads, logger: logger, now: time.Now}
}

// Run opens the window and blocks until it is closed or the session quits.
func Run(g *Game) error {
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(sim.ViewWidth, sim.ViewHeight)
	ebiten.SetTPS(sim.TargetFPS)
	return ebiten.RunGame(g)
}

// Update advances the session by the wall time since the previous tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])

	g.session.Frame(g.frameDelta(sim.TargetFrameTime), keyEvents(g.keys))
	if g.session.StopRequested() {
		return ebiten.Termination
	}
	if _, open := loop.DrainLoads(g.session, g.loads, g.logger); !open {
		g.loads = nil
	}
	return nil
}

// frameDelta returns the seconds since the last call, clamped to
// sim.MaxFrameDelta. The first call returns first.
func (g *Game) frameDelta(first time.Duration) float64 {
	t := g.now()
	d := first
	if !g.last.IsZero() {
		d = loop.ClampDelta(t.Sub(g.last), sim.MaxFrameDelta)
	}
	g.last = t
	return d.Seconds()
}

// Draw composes the current view onto the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.composer.Compose(surface{screen}, g.session.View())
}

// Layout keeps the logical viewport whatever the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return sim.ViewWidth, sim.ViewHeight
}

// keyEvents maps the keys pressed this tick to session events.
func keyEvents(keys []ebiten.Key) []input.Event {
	var events []input.Event
	for _, k := range keys {
		var ev input.Event
		switch k {
		case ebiten.KeyQ, ebiten.KeyEscape:
			ev = input.Quit
		case ebiten.KeySpace, ebiten.KeyP:
			ev = input.TogglePause
		case ebiten.KeyD, ebiten.KeyH:
			ev = input.ToggleHUD
		case ebiten.KeyE:
			ev = input.ToggleEffects
		case ebiten.KeyR:
			ev = input.Reset
		case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
			ev = input.SpeedUp
		case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
			ev = input.SpeedDown
		}
		if ev != input.EventNone {
			events = append(events, ev)
		}
	}
	return events
}

// surface draws on an ebiten image with anti-aliased vector paths.
type surface struct {
	dst *ebiten.Image
}

func (s surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s surface) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), toNRGBA(c, alpha), false)
}

func (s surface) StrokeRect(x, y, w, h, width float64, c colorful.Color, alpha float64) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), toNRGBA(c, alpha), false)
}

func (s surface) FillCircle(cx, cy, r float64, c colorful.Color, alpha float64) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), toNRGBA(c, alpha), true)
}

func (s surface) StrokeCircle(cx, cy, r, width float64, c colorful.Color, alpha float64) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(width), toNRGBA(c, alpha), true)
}

func (s surface) Line(x1, y1, x2, y2 float64, c colorful.Color, alpha float64) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c, alpha), true)
}

// Text uses the debug font, which is always white.
func (s surface) Text(x, y float64, str string, _ colorful.Color) {
	ebitenutil.DebugPrintAt(s.dst, str, int(x), int(y))
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	a := min(max(alpha, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

var (
	_ ebiten.Game    = (*Game)(nil)
	_ render.Surface = surface{}
)
