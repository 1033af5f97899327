package object

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/impact/internal/physics"
)

// Skyline generation ranges.
const (
	minBuildingHeight = 50
	maxBuildingHeight = 200
	minBuildingWidth  = 30
	maxBuildingWidth  = 80
)

// Building is a rectangle standing on the bottom edge of the screen.
type Building struct {
	X, Y          float64
	Width, Height float64
	Color         colorful.Color
	Destroyed     bool
}

// Center returns the centre of the building's rectangle.
func (b Building) Center() (float64, float64) {
	return physics.RectCenter(b.X, b.Y, b.Width, b.Height)
}

// Destroy marks the building destroyed. Destruction is permanent.
func (b *Building) Destroy() {
	b.Destroyed = true
	b.Color = DestructionColor
}

// NewSkyline creates count buildings at random positions along the bottom of
// the screen with random sizes and materials.
func NewSkyline(r Rand, screen Screen, count int) []Building {
	buildings := make([]Building, 0, count)
	for i := 0; i < count; i++ {
		x := intBetween(r, 0, screen.Width)
		h := intBetween(r, minBuildingHeight, maxBuildingHeight)
		w := intBetween(r, minBuildingWidth, maxBuildingWidth)
		buildings = append(buildings, Building{
			X:      float64(x),
			Y:      float64(screen.Height - h),
			Width:  float64(w),
			Height: float64(h),
			Color:  pick(r, buildingColors),
		})
	}
	return buildings
}
