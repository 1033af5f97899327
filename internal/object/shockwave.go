package object

import colorful "github.com/lucasb-eyer/go-colorful"

// ShockWave is an expanding ring centred on the impact point.
type ShockWave struct {
	X, Y        float64 // Origin
	Radius      float64
	MaxRadius   float64 // Target radius the ring is launched towards
	Speed       float64 // Expansion in units/s
	Lifetime    float64
	MaxLifetime float64
	Color       colorful.Color
}

// Update expands the ring. Returns true once the ring has expired.
func (w *ShockWave) Update(dt float64) bool {
	w.Radius += w.Speed * dt
	w.Lifetime -= dt
	return w.Lifetime <= 0
}

// LifeFraction is lifetime/max_lifetime clamped to [0, 1].
func (w ShockWave) LifeFraction() float64 {
	return lifeFraction(w.Lifetime, w.MaxLifetime)
}

// AdvanceShockWaves updates every ring by dt without removing any.
func AdvanceShockWaves(waves []ShockWave, dt float64) {
	for i := range waves {
		waves[i].Update(dt)
	}
}

// PruneShockWaves drops expired rings, reusing the backing array.
func PruneShockWaves(waves []ShockWave) []ShockWave {
	kept := waves[:0]
	for _, w := range waves {
		if w.Lifetime > 0 {
			kept = append(kept, w)
		}
	}
	clear(waves[len(kept):])
	return kept
}
