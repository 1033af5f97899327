package object

import (
	"math"
	"math/rand/v2"
	"testing"
)

type collector struct {
	particles []Particle
	waves     []ShockWave
}

func (c *collector) SpawnParticle(p Particle)   { c.particles = append(c.particles, p) }
func (c *collector) SpawnShockWave(w ShockWave) { c.waves = append(c.waves, w) }

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

var testScreen = NewScreen(1200, 800)

func TestSpawnExplosionCounts(t *testing.T) {
	c := &collector{}
	SpawnExplosion(600, 400, 52, newTestRand(), c)

	if len(c.particles) != ExplosionParticles {
		t.Errorf("particles = %d, want %d", len(c.particles), ExplosionParticles)
	}
	if len(c.waves) != ShockWaveRings {
		t.Errorf("rings = %d, want %d", len(c.waves), ShockWaveRings)
	}
}

func TestSpawnExplosionParticleRanges(t *testing.T) {
	c := &collector{}
	SpawnExplosion(600, 400, 52, newTestRand(), c)

	for i, p := range c.particles {
		if p.X != 600 || p.Y != 400 {
			t.Errorf("particle %d spawned at (%v, %v), want impact point", i, p.X, p.Y)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < 50-epsilon || speed > 200+epsilon {
			t.Errorf("particle %d speed = %v, want [50, 200]", i, speed)
		}
		if p.Lifetime < 1 || p.Lifetime > 3 {
			t.Errorf("particle %d lifetime = %v, want [1, 3]", i, p.Lifetime)
		}
		if p.Lifetime != p.MaxLifetime {
			t.Errorf("particle %d lifetime %v != max %v", i, p.Lifetime, p.MaxLifetime)
		}
		if p.Size < 2 || p.Size > 8 {
			t.Errorf("particle %d size = %d, want [2, 8]", i, p.Size)
		}
		if p.Kind != KindExplosion {
			t.Errorf("particle %d kind = %v, want explosion", i, p.Kind)
		}
		if p.Color != ColorRed && p.Color != ColorOrange && p.Color != ColorYellow {
			t.Errorf("particle %d color %v not in explosion palette", i, p.Color)
		}
	}
}

func TestSpawnExplosionRings(t *testing.T) {
	c := &collector{}
	SpawnExplosion(600, 400, 52, newTestRand(), c)

	for i, w := range c.waves {
		wantMax := 52 * float64(i+1)
		if w.MaxRadius != wantMax {
			t.Errorf("ring %d max radius = %v, want %v", i, w.MaxRadius, wantMax)
		}
		if i > 0 && w.MaxRadius <= c.waves[i-1].MaxRadius {
			t.Errorf("ring %d max radius %v not above ring %d", i, w.MaxRadius, i-1)
		}
		if w.Speed != 100+50*float64(i) {
			t.Errorf("ring %d speed = %v, want %v", i, w.Speed, 100+50*float64(i))
		}
		wantLife := 3 - 0.5*float64(i)
		if w.Lifetime != wantLife || w.MaxLifetime != wantLife {
			t.Errorf("ring %d lifetime = %v/%v, want %v", i, w.Lifetime, w.MaxLifetime, wantLife)
		}
		if w.Lifetime <= 0 {
			t.Errorf("ring %d lifetime must be positive", i)
		}
		if w.Radius != 0 || w.X != 600 || w.Y != 400 {
			t.Errorf("ring %d should start at the impact point with zero radius: %+v", i, w)
		}
	}
}

func TestSpawnFireWithinBoundsAndCap(t *testing.T) {
	for _, radius := range []float64{0, 85, 5000} {
		c := &collector{}
		SpawnFire(600, 400, radius, testScreen, newTestRand(), c)

		if len(c.particles) > FireParticles {
			t.Errorf("radius %v: %d fire particles, cap is %d", radius, len(c.particles), FireParticles)
		}
		for _, p := range c.particles {
			if !testScreen.Contains(p.X, p.Y) {
				t.Errorf("radius %v: particle outside viewport at (%v, %v)", radius, p.X, p.Y)
			}
			if p.VX < -20 || p.VX > 20 || p.VY < -30 || p.VY > -10 {
				t.Errorf("radius %v: velocity (%v, %v) out of range", radius, p.VX, p.VY)
			}
			if p.Lifetime < 2 || p.Lifetime > 5 || p.Lifetime != p.MaxLifetime {
				t.Errorf("radius %v: lifetime %v/%v out of range", radius, p.Lifetime, p.MaxLifetime)
			}
			if p.Size < 1 || p.Size > 4 {
				t.Errorf("radius %v: size %d out of range", radius, p.Size)
			}
			if p.Kind != KindFire {
				t.Errorf("radius %v: kind = %v", radius, p.Kind)
			}
		}
	}
}

func TestSpawnFireInsideDisk(t *testing.T) {
	c := &collector{}
	SpawnFire(600, 400, 85, testScreen, newTestRand(), c)

	if len(c.particles) != FireParticles {
		t.Errorf("fully visible disk should keep all %d particles, got %d", FireParticles, len(c.particles))
	}
	for _, p := range c.particles {
		if d := math.Hypot(p.X-600, p.Y-400); d > 85+epsilon {
			t.Errorf("particle %v units from impact, radius 85", d)
		}
	}
}

func TestSpawnFireDiscardsOffscreen(t *testing.T) {
	c := &collector{}
	// Huge radius from a corner: most placements land off screen.
	SpawnFire(0, 0, 10000, testScreen, newTestRand(), c)
	if len(c.particles) >= FireParticles {
		t.Errorf("expected off-screen placements to be dropped, got %d", len(c.particles))
	}
}

func TestSpawnDustWithinBoundsAndCap(t *testing.T) {
	c := &collector{}
	SpawnDust(600, 400, 1830, testScreen, newTestRand(), c)

	if len(c.particles) > DustParticles {
		t.Errorf("%d dust particles, cap is %d", len(c.particles), DustParticles)
	}
	if len(c.particles) == 0 {
		t.Error("expected some dust inside the viewport")
	}
	for _, p := range c.particles {
		if !testScreen.Contains(p.X, p.Y) {
			t.Errorf("particle outside viewport at (%v, %v)", p.X, p.Y)
		}
		if p.VX < -10 || p.VX > 10 || p.VY < -5 || p.VY > 5 {
			t.Errorf("velocity (%v, %v) out of range", p.VX, p.VY)
		}
		if p.Lifetime < 5 || p.Lifetime > 10 || p.Lifetime != p.MaxLifetime {
			t.Errorf("lifetime %v/%v out of range", p.Lifetime, p.MaxLifetime)
		}
		if p.Alpha < 0.3 || p.Alpha > 0.8 {
			t.Errorf("alpha %v out of range", p.Alpha)
		}
		if p.Size < 1 || p.Size > 3 {
			t.Errorf("size %d out of range", p.Size)
		}
		if p.Color != ColorDustBrown || p.Kind != KindDust {
			t.Errorf("unexpected dust particle %+v", p)
		}
	}
}

func TestSpawnZeroRadiusStaysAtImpact(t *testing.T) {
	c := &collector{}
	SpawnDust(600, 400, 0, testScreen, newTestRand(), c)

	if len(c.particles) != DustParticles {
		t.Errorf("zero radius dust = %d, want %d", len(c.particles), DustParticles)
	}
	for _, p := range c.particles {
		if p.X != 600 || p.Y != 400 {
			t.Errorf("zero radius particle at (%v, %v)", p.X, p.Y)
		}
	}
}

func TestSpawnNilSpawner(t *testing.T) {
	r := newTestRand()
	SpawnExplosion(0, 0, 1, r, nil)
	SpawnFire(0, 0, 1, testScreen, r, nil)
	SpawnDust(0, 0, 1, testScreen, r, nil)
}
