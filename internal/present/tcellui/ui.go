// Package tcellui runs the simulation on a tcell screen: half-block cells
// for drawing and tcell key events for input.
package tcellui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/impact/internal/draw"
	"github.com/tomz197/impact/internal/input"
	"github.com/tomz197/impact/internal/object"
	"github.com/tomz197/impact/internal/render"
	"github.com/tomz197/impact/internal/sim"
)

// UI is both the input source and the presenter of a frame loop.
type UI struct {
	screen   tcell.Screen
	composer *render.Composer
	canvas   *draw.Canvas
	queue    input.Queue
	styles   map[[2]colorful.Color]tcell.Style
}

// New initializes screen and takes ownership of it. Close releases it.
func New(screen tcell.Screen, composer *render.Composer) (*UI, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	if composer == nil {
		composer = render.NewComposer(1)
	}
	return &UI{
		screen:   screen,
		composer: composer,
		canvas:   draw.NewScaledCanvas(1, 1, sim.ViewWidth, sim.ViewHeight),
		styles:   make(map[[2]colorful.Color]tcell.Style),
	}, nil
}

// NewDefault opens the process terminal.
func NewDefault(composer *render.Composer) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return New(screen, composer)
}

// Close restores the terminal.
func (u *UI) Close() {
	u.screen.Fini()
}

// Poll translates the pending tcell events without blocking.
func (u *UI) Poll() []input.Event {
	for u.screen.HasPendingEvent() {
		ev := u.screen.PollEvent()
		if ev == nil {
			u.queue.Push(input.Quit)
			break
		}
		u.handleEvent(ev)
	}
	return u.queue.Poll()
}

func (u *UI) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e := keyEvent(ev); e != input.EventNone {
			u.queue.Push(e)
		}
	case *tcell.EventResize:
		u.screen.Sync()
	}
}

// keyEvent maps a key press to a session event.
func keyEvent(ev *tcell.EventKey) input.Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		return input.KeyEvent(ev.Rune())
	}
	return input.EventNone
}

// Present composes v and paints it as half-block cells, centred when the
// terminal exceeds the maximum render size.
func (u *UI) Present(v sim.View) error {
	termW, termH := u.screen.Size()
	if termW <= 0 || termH <= 0 {
		return nil
	}
	renderW, renderH, offCol, offRow := draw.FitTerminal(termW, termH)
	u.canvas.Resize(renderW, renderH)
	u.canvas.Clear(object.ColorBlack)
	u.composer.Compose(u.canvas, v)

	for row := 0; row < renderH; row++ {
		for col := 0; col < renderW; col++ {
			top := u.canvas.Pixel(col, row*2)
			bottom := u.canvas.Pixel(col, row*2+1)
			u.screen.SetContent(offCol+col, offRow+row, draw.BlockUpperHalf, nil, u.style(top, bottom))
		}
	}

	for _, l := range u.canvas.Labels() {
		row := l.Row - 1
		if row < 0 || row >= renderH {
			continue
		}
		col := l.Col - 1
		for _, r := range l.Text {
			if col >= renderW {
				break
			}
			if col >= 0 {
				bg := u.canvas.Pixel(col, row*2)
				u.screen.SetContent(offCol+col, offRow+row, r, nil, u.style(l.Color, bg))
			}
			col++
		}
	}

	u.screen.Show()
	return nil
}

// style returns a cached style with the given foreground and background.
func (u *UI) style(fg, bg colorful.Color) tcell.Style {
	key := [2]colorful.Color{fg, bg}
	if st, ok := u.styles[key]; ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(toColor(fg)).Background(toColor(bg))
	if len(u.styles) >= 4096 {
		clear(u.styles)
	}
	u.styles[key] = st
	return st
}

func toColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
