// Package ansi presents a simulation on an ANSI terminal using half-block
// characters, for local TTYs and SSH sessions alike.
package ansi

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/tomz197/impact/internal/draw"
	"github.com/tomz197/impact/internal/object"
	"github.com/tomz197/impact/internal/render"
	"github.com/tomz197/impact/internal/sim"
)

// Terminal draws frames to w. It implements loop.Presenter.
type Terminal struct {
	w        io.Writer
	size     draw.TermSizeFunc
	profile  termenv.Profile
	composer *render.Composer

	canvas *draw.Canvas
	cw     *draw.ChunkWriter

	// Layout of the previous frame, -1 before the first one.
	renderW, renderH int
	offCol, offRow   int
}

// Options configures a Terminal. Zero values select the defaults.
type Options struct {
	Size     draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Profile  termenv.Profile   // Zero is TrueColor
	Composer *render.Composer  // Defaults to a composer seeded with 1
}

// NewTerminal creates a presenter writing to w.
func NewTerminal(w io.Writer, opts Options) *Terminal {
	if opts.Size == nil {
		opts.Size = draw.DefaultTermSizeFunc
	}
	if opts.Composer == nil {
		opts.Composer = render.NewComposer(1)
	}
	return &Terminal{
		w:        w,
		size:     opts.Size,
		profile:  opts.Profile,
		composer: opts.Composer,
		canvas:   draw.NewScaledCanvas(1, 1, sim.ViewWidth, sim.ViewHeight),
		cw:       draw.NewChunkWriter(w, 0, 0),
		renderW:  -1,
		renderH:  -1,
	}
}

// Start hides the cursor and clears the screen.
func (t *Terminal) Start() {
	draw.HideCursor(t.w)
	draw.ClearScreen(t.w)
}

// Stop restores the cursor and leaves a clean screen behind.
func (t *Terminal) Stop() {
	draw.ResetStyle(t.w)
	draw.ClearScreen(t.w)
	draw.ShowCursor(t.w)
}

// Present composes v and writes it as one chunked frame.
func (t *Terminal) Present(v sim.View) error {
	if err := t.updateScreen(); err != nil {
		return err
	}

	t.canvas.Clear(object.ColorBlack)
	t.composer.Compose(t.canvas, v)
	t.canvas.Render(t.cw, t.profile)

	if err := t.cw.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// updateScreen follows terminal resizes. On an actual change the terminal
// is cleared to remove residue outside the new render area and the
// border is redrawn.
func (t *Terminal) updateScreen() error {
	termWidth, termHeight, err := t.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	renderW, renderH, offCol, offRow := draw.FitTerminal(max(termWidth, 1), max(termHeight, 1))

	if renderW == t.renderW && renderH == t.renderH && offCol == t.offCol && offRow == t.offRow {
		return nil
	}
	t.renderW, t.renderH, t.offCol, t.offRow = renderW, renderH, offCol, offRow

	draw.ClearScreen(t.cw)
	t.canvas.Resize(renderW, renderH)
	t.cw.SetOffset(offCol, offRow)
	draw.RenderBorder(t.cw, renderW, renderH, offCol, offRow)
	return nil
}

// environ adapts a KEY=value list to termenv.Environ.
type environ []string

func (e environ) Environ() []string { return e }

func (e environ) Getenv(key string) string {
	prefix := key + "="
	for i := len(e) - 1; i >= 0; i-- {
		if v, ok := strings.CutPrefix(e[i], prefix); ok {
			return v
		}
	}
	return ""
}

// ProfileFor detects the color profile of a remote terminal from its
// TERM name and the environment the client sent.
func ProfileFor(w io.Writer, term string, env []string) termenv.Profile {
	vars := append(environ{}, env...)
	if term != "" {
		vars = append(vars, "TERM="+term)
	}
	out := termenv.NewOutput(w, termenv.WithEnvironment(vars), termenv.WithTTY(true))
	return out.EnvColorProfile()
}
