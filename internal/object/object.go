// Package object defines the entities of the impact scene (particles, shock
// waves, buildings) and the spawners that populate them.
package object

// Spawner receives entities created by the spawn functions.
type Spawner interface {
	SpawnParticle(p Particle)
	SpawnShockWave(w ShockWave)
}

// Rand is the random source spawners draw from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Screen represents the logical viewport dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen of the given size with its center filled in.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Contains reports whether (x, y) lies inside the screen, edges included.
func (s Screen) Contains(x, y float64) bool {
	return x >= 0 && x <= float64(s.Width) && y >= 0 && y <= float64(s.Height)
}

// Center returns the screen center as floats.
func (s Screen) Center() (float64, float64) {
	return float64(s.CenterX), float64(s.CenterY)
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intBetween draws an integer from [lo, hi], both ends included.
func intBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}
