package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/input"
	"github.com/tomz197/impact/internal/object"
)

const frame = 1.0 / 60

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(7, 11))
	}
	return NewSession(opts)
}

// wideRecord destroys every building of the default skyline.
func wideRecord() effect.Record {
	rec := effect.Example()
	rec.TotalDestructionZone = 100
	return rec
}

func countDestroyed(buildings []object.Building) int {
	n := 0
	for _, b := range buildings {
		if b.Destroyed {
			n++
		}
	}
	return n
}

func checkLifetimes(t *testing.T, v View) {
	t.Helper()
	for _, group := range [][]object.Particle{v.Explosion, v.Fire, v.Dust} {
		for _, p := range group {
			if p.Lifetime <= 0 || p.Lifetime > p.MaxLifetime {
				t.Fatalf("particle lifetime %v outside (0, %v]", p.Lifetime, p.MaxLifetime)
			}
		}
	}
	for _, w := range v.ShockWaves {
		if w.Lifetime <= 0 || w.Lifetime > w.MaxLifetime {
			t.Fatalf("ring lifetime %v outside (0, %v]", w.Lifetime, w.MaxLifetime)
		}
	}
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession(t, Options{})
	if s.State() != StateIdle {
		t.Errorf("State = %v, want idle", s.State())
	}

	s.Start()
	s.Step(1)
	s.Reset()
	v := s.View()
	if v.State != StateIdle {
		t.Errorf("State without data = %v, want idle", v.State)
	}
	if v.ParticleCount() != 0 || len(v.ShockWaves) != 0 {
		t.Errorf("idle session spawned %d particles, %d rings", v.ParticleCount(), len(v.ShockWaves))
	}
	if v.Elapsed != 0 {
		t.Errorf("idle Elapsed = %v, want 0", v.Elapsed)
	}
	if len(v.Buildings) != BuildingCount {
		t.Errorf("buildings = %d, want %d", len(v.Buildings), BuildingCount)
	}
}

func TestSessionStartSpawns(t *testing.T) {
	detonations := 0
	s := newTestSession(t, Options{OnDetonate: func(effect.Params) { detonations++ }})
	s.Load(effect.Example())
	s.Start()
	s.Start() // no-op once started

	v := s.View()
	if v.State != StateRunning {
		t.Errorf("State = %v, want running", v.State)
	}
	if len(v.Explosion) != object.ExplosionParticles {
		t.Errorf("explosion particles = %d, want %d", len(v.Explosion), object.ExplosionParticles)
	}
	if len(v.ShockWaves) != object.ShockWaveRings {
		t.Errorf("rings = %d, want %d", len(v.ShockWaves), object.ShockWaveRings)
	}
	if len(v.Fire) > object.FireParticles || len(v.Dust) > object.DustParticles {
		t.Errorf("fire/dust over cap: %d/%d", len(v.Fire), len(v.Dust))
	}
	if detonations != 1 {
		t.Errorf("detonations = %d, want 1", detonations)
	}
	if v.ImpactX != 600 || v.ImpactY != 400 {
		t.Errorf("impact point = (%v, %v), want (600, 400)", v.ImpactX, v.ImpactY)
	}
}

func TestSessionEmptyRecord(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(effect.Record{})
	if s.Params() != (effect.Params{}) {
		t.Errorf("Params = %+v, want zero", s.Params())
	}

	s.Start()
	v := s.View()
	if len(v.Explosion) != object.ExplosionParticles {
		t.Errorf("explosion particles = %d, want %d", len(v.Explosion), object.ExplosionParticles)
	}
	for _, w := range v.ShockWaves {
		if w.MaxRadius != 0 {
			t.Errorf("ring max radius = %v, want 0", w.MaxRadius)
		}
	}
}

func TestSessionDestructionDelay(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(wideRecord())
	s.Start()

	for s.Elapsed() < DestructionDelay-frame {
		s.Step(frame)
		if n := countDestroyed(s.View().Buildings); n != 0 {
			t.Fatalf("%d buildings destroyed at %.3fs", n, s.Elapsed())
		}
	}

	for i := 0; i < 10; i++ {
		s.Step(frame)
	}
	if n := countDestroyed(s.View().Buildings); n != BuildingCount {
		t.Errorf("destroyed = %d after delay, want %d", n, BuildingCount)
	}
}

func TestSessionPauseFreezesState(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(effect.Example())
	s.Start()
	s.Step(frame)
	s.Pause()

	before := s.View()
	elapsed := before.Elapsed
	first := before.Explosion[0]
	count := before.ParticleCount()

	for i := 0; i < 600; i++ {
		s.Frame(frame, nil)
	}

	after := s.View()
	if after.State != StatePaused {
		t.Errorf("State = %v, want paused", after.State)
	}
	if after.Elapsed != elapsed {
		t.Errorf("Elapsed changed while paused: %v -> %v", elapsed, after.Elapsed)
	}
	if after.ParticleCount() != count || after.Explosion[0] != first {
		t.Error("particles changed while paused")
	}

	s.Resume()
	s.Step(frame)
	if s.Elapsed() <= elapsed {
		t.Error("elapsed did not advance after resume")
	}
}

func TestSessionLifetimeInvariant(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(effect.Example())
	s.Start()

	for i := 0; i < 12*60; i++ {
		s.Step(frame)
		checkLifetimes(t, s.View())
	}

	v := s.View()
	if v.ParticleCount() != 0 || len(v.ShockWaves) != 0 {
		t.Errorf("after 12s: %d particles and %d rings remain", v.ParticleCount(), len(v.ShockWaves))
	}
}

func TestSessionLargeStepPrunesEverything(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(effect.Example())
	s.Start()
	s.Step(11)

	v := s.View()
	if v.ParticleCount() != 0 || len(v.ShockWaves) != 0 {
		t.Errorf("expired entities kept: %d particles, %d rings", v.ParticleCount(), len(v.ShockWaves))
	}
}

func TestSessionReset(t *testing.T) {
	detonations := 0
	s := newTestSession(t, Options{OnDetonate: func(effect.Params) { detonations++ }})
	s.Load(wideRecord())
	s.Start()
	for i := 0; i < 60; i++ {
		s.Step(frame)
	}
	if countDestroyed(s.View().Buildings) == 0 {
		t.Fatal("expected destroyed buildings before reset")
	}

	s.Reset()
	v := s.View()
	if v.Elapsed != 0 {
		t.Errorf("Elapsed after reset = %v, want 0", v.Elapsed)
	}
	if n := countDestroyed(v.Buildings); n != 0 {
		t.Errorf("%d buildings destroyed after reset", n)
	}
	if len(v.Buildings) != BuildingCount {
		t.Errorf("buildings = %d, want %d", len(v.Buildings), BuildingCount)
	}
	if len(v.Explosion) != object.ExplosionParticles || len(v.ShockWaves) != object.ShockWaveRings {
		t.Errorf("reset spawned %d particles, %d rings", len(v.Explosion), len(v.ShockWaves))
	}
	for _, p := range v.Explosion {
		if p.Lifetime != p.MaxLifetime {
			t.Fatal("reset kept an aged particle")
		}
	}
	if detonations != 2 {
		t.Errorf("detonations = %d, want 2", detonations)
	}
}

func TestSessionResetWhilePaused(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(effect.Example())
	s.Start()
	s.Step(1)
	s.TogglePause()
	s.Reset()

	if s.State() != StatePaused {
		t.Errorf("State after reset = %v, want paused", s.State())
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed = %v, want 0", s.Elapsed())
	}
}

func TestSessionSpeedScalesClockOnly(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(effect.Example())
	s.Start()
	s.SpeedUp()
	s.SpeedUp()
	s.SpeedUp()
	if s.Speed() != MaxSpeed {
		t.Fatalf("Speed = %v, want %v", s.Speed(), MaxSpeed)
	}

	s.Step(0.5)
	if s.Elapsed() != 2 {
		t.Errorf("Elapsed = %v, want 2", s.Elapsed())
	}
	// Ring 0 expands at 100 units/s of real time.
	if r := s.View().ShockWaves[0].Radius; r != 50 {
		t.Errorf("ring radius = %v, want 50", r)
	}

	for i := 0; i < 10; i++ {
		s.SpeedDown()
	}
	if s.Speed() != MinSpeed {
		t.Errorf("Speed = %v, want %v", s.Speed(), MinSpeed)
	}
}

func TestSessionApplyEvents(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(effect.Example())
	s.Start()

	s.Frame(frame, []input.Event{input.ToggleHUD, input.ToggleEffects, input.TogglePause})
	v := s.View()
	if v.ShowHUD || v.ShowEffects {
		t.Error("HUD and effects should be hidden")
	}
	if v.State != StatePaused {
		t.Errorf("State = %v, want paused", v.State)
	}
	if s.StopRequested() {
		t.Error("stop requested too early")
	}

	s.Frame(frame, []input.Event{input.Quit})
	if !s.StopRequested() {
		t.Error("quit event did not request stop")
	}
}

func TestSessionFrameStepsBeforeEvents(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Load(effect.Example())
	s.Start()

	// The pause lands after this frame's advance.
	s.Frame(0.1, []input.Event{input.TogglePause})
	if s.Elapsed() != 0.1 {
		t.Errorf("Elapsed = %v, want 0.1", s.Elapsed())
	}
	s.Frame(0.1, nil)
	if s.Elapsed() != 0.1 {
		t.Errorf("Elapsed while paused = %v, want 0.1", s.Elapsed())
	}
}

func TestSessionLoadWhileRunningWaitsForStart(t *testing.T) {
	s := newTestSession(t, Options{})
	small := effect.Example()
	small.TotalDestructionZone = 1
	s.Load(small)
	s.Start()
	s.Step(frame)

	s.Load(wideRecord())
	if got := s.Params().TotalDestructionRadius; got != 10 {
		t.Fatalf("params switched before start: total = %v, want 10", got)
	}
	for i := 0; i < 40; i++ {
		s.Step(frame)
	}
	if got := countDestroyed(s.View().Buildings); got != 0 {
		t.Errorf("destroyed = %d with the old radius, want 0", got)
	}

	s.Start()
	v := s.View()
	if got := v.Params.TotalDestructionRadius; got != 1000 {
		t.Errorf("total = %v after start, want 1000", got)
	}
	if v.Elapsed != 0 {
		t.Errorf("elapsed = %v after start, want 0", v.Elapsed)
	}
	if len(v.ShockWaves) != 5 || v.ShockWaves[0].MaxRadius != 1000 {
		t.Errorf("rings not relaunched with the new radius: %+v", v.ShockWaves)
	}

	for i := 0; i < 40; i++ {
		s.Step(frame)
	}
	if got := countDestroyed(s.View().Buildings); got != len(s.View().Buildings) {
		t.Errorf("destroyed = %d, want all %d", got, len(s.View().Buildings))
	}

	// Nothing pending: a second Start is a no-op.
	elapsed := s.Elapsed()
	s.Start()
	if s.Elapsed() != elapsed {
		t.Errorf("Start without new data reset the clock")
	}
}
