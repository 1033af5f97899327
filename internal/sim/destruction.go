package sim

import (
	"github.com/tomz197/impact/internal/object"
	"github.com/tomz197/impact/internal/physics"
)

// DestroyWithin destroys every standing building whose centre lies within
// radius of (x, y), boundary included. Returns how many fell this call.
// Already destroyed buildings are skipped, so repeated calls are no-ops.
func DestroyWithin(buildings []object.Building, x, y, radius float64) int {
	destroyed := 0
	for i := range buildings {
		b := &buildings[i]
		if b.Destroyed {
			continue
		}
		cx, cy := b.Center()
		if physics.PointInCircle(cx, cy, x, y, radius) {
			b.Destroy()
			destroyed++
		}
	}
	return destroyed
}
