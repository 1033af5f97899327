package object

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParticleKind selects a particle's gravity and fade rule.
type ParticleKind uint8

const (
	KindExplosion ParticleKind = iota
	KindFire
	KindDust
)

// Downward acceleration per kind, in units/s².
const (
	explosionGravity = 50.0
	fireGravity      = 20.0
)

// Gravity returns the vertical velocity gained per second.
func (k ParticleKind) Gravity() float64 {
	switch k {
	case KindExplosion:
		return explosionGravity
	case KindFire:
		return fireGravity
	default:
		return 0
	}
}

func (k ParticleKind) String() string {
	switch k {
	case KindExplosion:
		return "explosion"
	case KindFire:
		return "fire"
	case KindDust:
		return "dust"
	default:
		return "unknown"
	}
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Color       colorful.Color
	Size        int     // Base radius
	Alpha       float64 // Opacity multiplier, 1 except for dust
	Kind        ParticleKind
}

// newParticle creates a particle whose max lifetime equals its lifetime.
func newParticle(kind ParticleKind, x, y, vx, vy, lifetime float64, color colorful.Color, size int) Particle {
	return Particle{
		X:           x,
		Y:           y,
		VX:          vx,
		VY:          vy,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
		Color:       color,
		Size:        size,
		Alpha:       1,
		Kind:        kind,
	}
}

// Update moves the particle and applies its gravity.
// Returns true once the particle has expired.
func (p *Particle) Update(dt float64) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Lifetime -= dt
	p.VY += p.Kind.Gravity() * dt
	return p.Lifetime <= 0
}

// LifeFraction is lifetime/max_lifetime clamped to [0, 1].
func (p Particle) LifeFraction() float64 {
	return lifeFraction(p.Lifetime, p.MaxLifetime)
}

// DrawSize is the base size scaled by the life fraction, rounded down.
// Zero means the particle is not drawn.
func (p Particle) DrawSize() int {
	return int(math.Floor(float64(p.Size) * p.LifeFraction()))
}

// Opacity is the draw alpha. Explosion and fire particles only shrink;
// dust fades with its life fraction scaled by the alpha multiplier.
func (p Particle) Opacity() float64 {
	if p.Kind != KindDust {
		return 1
	}
	return p.LifeFraction() * p.Alpha
}

// AdvanceParticles updates every particle by dt without removing any.
func AdvanceParticles(particles []Particle, dt float64) {
	for i := range particles {
		particles[i].Update(dt)
	}
}

// PruneParticles drops expired particles, reusing the backing array.
func PruneParticles(particles []Particle) []Particle {
	kept := particles[:0]
	for _, p := range particles {
		if p.Lifetime > 0 {
			kept = append(kept, p)
		}
	}
	clear(particles[len(kept):])
	return kept
}

func lifeFraction(lifetime, maxLifetime float64) float64 {
	if maxLifetime <= 0 || lifetime <= 0 {
		return 0
	}
	f := lifetime / maxLifetime
	if f > 1 {
		return 1
	}
	return f
}
