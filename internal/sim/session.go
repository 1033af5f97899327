// Package sim owns the state of one impact simulation: the clock, the
// entity collections and the derived effect parameters.
package sim

import (
	"math/rand/v2"

	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/input"
	"github.com/tomz197/impact/internal/object"
)

// State is the session's playback state.
type State uint8

const (
	StateIdle State = iota // No effect data loaded yet
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Screen     object.Screen // Defaults to ViewWidth x ViewHeight
	Scale      float64       // Screen units per km, defaults to effect.DefaultScale
	Buildings  int           // Defaults to BuildingCount
	Rand       object.Rand   // Defaults to a randomly seeded PCG
	OnDetonate func(effect.Params)
}

// Session holds all mutable simulation state. It is not safe for
// concurrent use: one frame loop owns it.
type Session struct {
	screen     object.Screen
	scale      float64
	buildings  int
	rng        object.Rand
	onDetonate func(effect.Params)

	clock   *Clock
	params  effect.Params
	loaded  bool
	started bool

	// Data loaded after the last detonation, applied by Start or Reset.
	pending    effect.Params
	hasPending bool

	showHUD     bool
	showEffects bool
	stop        bool

	explosion []object.Particle
	fire      []object.Particle
	dust      []object.Particle
	waves     []object.ShockWave
	skyline   []object.Building
}

// NewSession creates an idle session with a fresh skyline.
func NewSession(opts Options) *Session {
	if opts.Screen.Width <= 0 || opts.Screen.Height <= 0 {
		opts.Screen = object.NewScreen(ViewWidth, ViewHeight)
	}
	if !(opts.Scale > 0) {
		opts.Scale = effect.DefaultScale
	}
	if opts.Buildings <= 0 {
		opts.Buildings = BuildingCount
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &Session{
		screen:      opts.Screen,
		scale:       opts.Scale,
		buildings:   opts.Buildings,
		rng:         opts.Rand,
		onDetonate:  opts.OnDetonate,
		clock:       NewClock(),
		showHUD:     true,
		showEffects: true,
	}
	s.skyline = object.NewSkyline(s.rng, s.screen, s.buildings)
	return s
}

// SpawnParticle implements object.Spawner.
func (s *Session) SpawnParticle(p object.Particle) {
	switch p.Kind {
	case object.KindExplosion:
		s.explosion = append(s.explosion, p)
	case object.KindFire:
		s.fire = append(s.fire, p)
	case object.KindDust:
		s.dust = append(s.dust, p)
	}
}

// SpawnShockWave implements object.Spawner.
func (s *Session) SpawnShockWave(w object.ShockWave) {
	s.waves = append(s.waves, w)
}

// Load derives the effect parameters from rec. Before the first start
// they apply at once; afterwards the running scene keeps its parameters
// until Start or Reset detonates with the new ones.
func (s *Session) Load(rec effect.Record) {
	p := effect.Derive(rec, s.scale)
	s.loaded = true
	if !s.started {
		s.params = p
		return
	}
	s.pending, s.hasPending = p, true
}

// Loaded reports whether effect data has been loaded.
func (s *Session) Loaded() bool { return s.loaded }

// Params returns the derived effect parameters.
func (s *Session) Params() effect.Params { return s.params }

// Start begins the simulation with the loaded data. It does nothing
// without data, or once started unless newer data is waiting, in which
// case it resets with that data.
func (s *Session) Start() {
	if !s.loaded {
		return
	}
	if s.started {
		if s.hasPending {
			s.Reset()
		}
		return
	}
	s.clock.Reset()
	s.clearEffects()
	s.detonate()
}

// Reset zeroes the clock, clears all effects, rebuilds the skyline and,
// when data is loaded, detonates again.
func (s *Session) Reset() {
	if s.hasPending {
		s.params, s.hasPending = s.pending, false
	}
	s.clock.Reset()
	s.clearEffects()
	s.skyline = object.NewSkyline(s.rng, s.screen, s.buildings)
	if s.loaded {
		s.detonate()
	}
}

func (s *Session) clearEffects() {
	s.explosion = s.explosion[:0]
	s.fire = s.fire[:0]
	s.dust = s.dust[:0]
	s.waves = s.waves[:0]
}

// detonate runs the three spawners at the impact point.
func (s *Session) detonate() {
	s.started = true
	x, y := s.screen.Center()
	object.SpawnExplosion(x, y, s.params.TotalDestructionRadius, s.rng, s)
	object.SpawnFire(x, y, s.params.FireRadius, s.screen, s.rng, s)
	object.SpawnDust(x, y, s.params.DustRadius, s.screen, s.rng, s)
	if s.onDetonate != nil {
		s.onDetonate(s.params)
	}
}

// State returns the playback state.
func (s *Session) State() State {
	switch {
	case !s.started:
		return StateIdle
	case s.clock.Paused():
		return StatePaused
	default:
		return StateRunning
	}
}

// Pause stops time.
func (s *Session) Pause() { s.clock.Pause() }

// Resume restarts time.
func (s *Session) Resume() { s.clock.Resume() }

// TogglePause flips between running and paused.
func (s *Session) TogglePause() { s.clock.Toggle() }

// ToggleHUD shows or hides the parameter panel.
func (s *Session) ToggleHUD() { s.showHUD = !s.showHUD }

// ToggleEffects shows or hides zones, particles and rings.
func (s *Session) ToggleEffects() { s.showEffects = !s.showEffects }

// SpeedUp doubles the speed multiplier up to MaxSpeed.
func (s *Session) SpeedUp() { s.clock.SetSpeed(s.clock.Speed() * SpeedFactor) }

// SpeedDown halves the speed multiplier down to MinSpeed.
func (s *Session) SpeedDown() { s.clock.SetSpeed(s.clock.Speed() / SpeedFactor) }

// RequestStop asks the frame loop to exit.
func (s *Session) RequestStop() { s.stop = true }

// StopRequested reports whether RequestStop was called.
func (s *Session) StopRequested() bool { return s.stop }

// Elapsed returns the simulated seconds since the last start or reset.
func (s *Session) Elapsed() float64 { return s.clock.Elapsed() }

// Speed returns the current speed multiplier.
func (s *Session) Speed() float64 { return s.clock.Speed() }

// Step advances the simulation by dt real seconds. Integration uses dt
// as is; the speed multiplier only scales the clock. Expired entities are
// pruned every call, including while paused.
func (s *Session) Step(dt float64) {
	if s.started && s.clock.Advance(dt) {
		object.AdvanceParticles(s.explosion, dt)
		object.AdvanceParticles(s.fire, dt)
		object.AdvanceParticles(s.dust, dt)
		object.AdvanceShockWaves(s.waves, dt)

		if s.clock.Elapsed() > DestructionDelay {
			x, y := s.screen.Center()
			DestroyWithin(s.skyline, x, y, s.params.TotalDestructionRadius)
		}
	}

	s.explosion = object.PruneParticles(s.explosion)
	s.fire = object.PruneParticles(s.fire)
	s.dust = object.PruneParticles(s.dust)
	s.waves = object.PruneShockWaves(s.waves)
}

// Apply performs the session operation bound to ev.
func (s *Session) Apply(ev input.Event) {
	switch ev {
	case input.TogglePause:
		s.TogglePause()
	case input.ToggleHUD:
		s.ToggleHUD()
	case input.ToggleEffects:
		s.ToggleEffects()
	case input.Reset:
		s.Reset()
	case input.Quit:
		s.RequestStop()
	case input.SpeedUp:
		s.SpeedUp()
	case input.SpeedDown:
		s.SpeedDown()
	}
}

// Frame steps the simulation then applies the frame's input events.
func (s *Session) Frame(dt float64, events []input.Event) {
	s.Step(dt)
	for _, ev := range events {
		s.Apply(ev)
	}
}
