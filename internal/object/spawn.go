package object

import (
	"math"

	"github.com/tomz197/impact/internal/physics"
)

// Population sizes.
const (
	ExplosionParticles = 100
	ShockWaveRings     = 5
	FireParticles      = 50
	DustParticles      = 200
)

// Explosion burst ranges.
const (
	explosionMinSpeed    = 50.0
	explosionMaxSpeed    = 200.0
	explosionMinLifetime = 1.0
	explosionMaxLifetime = 3.0
	explosionMinSize     = 2
	explosionMaxSize     = 8
)

// Ring i gets speed ringBaseSpeed+i*ringSpeedStep and lifetime
// ringBaseLifetime-i*ringLifetimeStep, so inner rings outlive outer ones.
const (
	ringBaseSpeed    = 100.0
	ringSpeedStep    = 50.0
	ringBaseLifetime = 3.0
	ringLifetimeStep = 0.5
)

// SpawnExplosion bursts ExplosionParticles particles out of (x, y) and
// launches ShockWaveRings nested rings sized off the total destruction radius.
func SpawnExplosion(x, y, totalRadius float64, r Rand, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < ExplosionParticles; i++ {
		angle := uniform(r, 0, 2*math.Pi)
		speed := uniform(r, explosionMinSpeed, explosionMaxSpeed)
		lifetime := uniform(r, explosionMinLifetime, explosionMaxLifetime)

		vx := math.Cos(angle) * speed
		vy := math.Sin(angle) * speed

		color := pick(r, explosionColors)
		size := intBetween(r, explosionMinSize, explosionMaxSize)
		spawner.SpawnParticle(newParticle(KindExplosion, x, y, vx, vy, lifetime, color, size))
	}

	for i := 0; i < ShockWaveRings; i++ {
		lifetime := ringBaseLifetime - float64(i)*ringLifetimeStep
		spawner.SpawnShockWave(ShockWave{
			X:           x,
			Y:           y,
			MaxRadius:   totalRadius * float64(i+1),
			Speed:       ringBaseSpeed + float64(i)*ringSpeedStep,
			Lifetime:    lifetime,
			MaxLifetime: lifetime,
			Color:       ColorYellow,
		})
	}
}

// SpawnFire scatters up to FireParticles embers inside the fire radius.
// Placements outside the screen are dropped, not retried.
func SpawnFire(x, y, radius float64, screen Screen, r Rand, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < FireParticles; i++ {
		px, py := physics.PolarOffset(x, y, uniform(r, 0, 2*math.Pi), uniform(r, 0, radius))
		if !screen.Contains(px, py) {
			continue
		}

		vx := uniform(r, -20, 20)
		vy := uniform(r, -30, -10) // Embers rise
		lifetime := uniform(r, 2, 5)
		color := pick(r, fireColors)
		size := intBetween(r, 1, 4)
		spawner.SpawnParticle(newParticle(KindFire, px, py, vx, vy, lifetime, color, size))
	}
}

// SpawnDust scatters up to DustParticles translucent motes inside the dust
// radius. Placements outside the screen are dropped, not retried.
func SpawnDust(x, y, radius float64, screen Screen, r Rand, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < DustParticles; i++ {
		px, py := physics.PolarOffset(x, y, uniform(r, 0, 2*math.Pi), uniform(r, 0, radius))
		if !screen.Contains(px, py) {
			continue
		}

		vx := uniform(r, -10, 10)
		vy := uniform(r, -5, 5)
		lifetime := uniform(r, 5, 10)
		size := intBetween(r, 1, 3)
		p := newParticle(KindDust, px, py, vx, vy, lifetime, ColorDustBrown, size)
		p.Alpha = uniform(r, 0.3, 0.8)
		spawner.SpawnParticle(p)
	}
}
