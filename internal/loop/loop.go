// Package loop drives a simulation session at a fixed frame rate.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/input"
	"github.com/tomz197/impact/internal/sim"
)

// Presenter shows one frame of the simulation.
type Presenter interface {
	Present(v sim.View) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(v sim.View) error

// Present calls f(v).
func (f PresenterFunc) Present(v sim.View) error { return f(v) }

// Options tunes Run. Zero values select the defaults.
type Options struct {
	FrameTime time.Duration        // Defaults to sim.TargetFrameTime
	MaxDelta  time.Duration        // Defaults to sim.MaxFrameDelta
	Loads     <-chan effect.Record // New effect data, applied between frames
	Logger    *log.Logger

	// Clock hooks, replaced in tests.
	Now   func() time.Time
	Sleep func(time.Duration)
}

func (o Options) withDefaults() Options {
	if o.FrameTime <= 0 {
		o.FrameTime = sim.TargetFrameTime
	}
	if o.MaxDelta <= 0 {
		o.MaxDelta = sim.MaxFrameDelta
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	return o
}

// Run executes the Step → Input → Load → Present cycle until the session
// requests a stop or ctx is cancelled. It returns the first presenter error.
func Run(ctx context.Context, s *sim.Session, src input.Source, p Presenter, opts Options) error {
	opts = opts.withDefaults()
	loads := opts.Loads
	lastTime := opts.Now()

	for !s.StopRequested() {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := opts.Now()
		dt := ClampDelta(frameStart.Sub(lastTime), opts.MaxDelta)
		lastTime = frameStart

		// ===== UPDATE + INPUT PHASE =====
		s.Frame(dt.Seconds(), src.Poll())
		if s.StopRequested() {
			break
		}

		if _, open := DrainLoads(s, loads, opts.Logger); !open {
			loads = nil
		}

		// ===== DRAW PHASE =====
		if err := p.Present(s.View()); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := opts.Now().Sub(frameStart)
		if elapsed < opts.FrameTime {
			opts.Sleep(opts.FrameTime - elapsed)
		}
	}

	return nil
}

// ClampDelta bounds a frame delta to [0, limit].
func ClampDelta(d, limit time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > limit {
		return limit
	}
	return d
}

// DrainLoads applies every pending record without blocking: each one is
// loaded and the session reset so it detonates with the new data.
// Returns how many records were applied and whether loads is still open.
// A nil channel counts as open and never yields.
func DrainLoads(s *sim.Session, loads <-chan effect.Record, logger *log.Logger) (int, bool) {
	if loads == nil {
		return 0, true
	}
	n := 0
	for {
		select {
		case rec, ok := <-loads:
			if !ok {
				return n, false
			}
			s.Load(rec)
			s.Reset()
			n++
			if logger != nil {
				logger.Info("Loaded impact data", "energy_mt", rec.EnergyMegatons, "total_km", rec.TotalDestructionZone)
			}
		default:
			return n, true
		}
	}
}
