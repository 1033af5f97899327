package sim

import (
	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/object"
)

// View is a read-only snapshot of a session for presenters. The entity
// slices alias session storage and are only valid until the next Step.
type View struct {
	Screen           object.Screen
	ImpactX, ImpactY float64
	Params           effect.Params
	Scale            float64
	Loaded           bool
	State            State
	Elapsed          float64
	Speed            float64
	ShowHUD          bool
	ShowEffects      bool

	Explosion  []object.Particle
	Fire       []object.Particle
	Dust       []object.Particle
	ShockWaves []object.ShockWave
	Buildings  []object.Building
}

// View snapshots the session for drawing.
func (s *Session) View() View {
	x, y := s.screen.Center()
	return View{
		Screen:      s.screen,
		ImpactX:     x,
		ImpactY:     y,
		Params:      s.params,
		Scale:       s.scale,
		Loaded:      s.loaded,
		State:       s.State(),
		Elapsed:     s.clock.Elapsed(),
		Speed:       s.clock.Speed(),
		ShowHUD:     s.showHUD,
		ShowEffects: s.showEffects,
		Explosion:   s.explosion,
		Fire:        s.fire,
		Dust:        s.dust,
		ShockWaves:  s.waves,
		Buildings:   s.skyline,
	}
}

// ParticleCount is the number of live particles of every kind.
func (v View) ParticleCount() int {
	return len(v.Explosion) + len(v.Fire) + len(v.Dust)
}
