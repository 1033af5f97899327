package sim

import "time"

// Simulation configuration constants.
// All tunable parameters are centralized here for easy adjustment.

// Viewport (logical units, independent of the presenter's pixel size)
const (
	ViewWidth  = 1200
	ViewHeight = 800
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 250 * time.Millisecond // Longer gaps (suspend, debugger) are clamped
)

// Scene
const (
	BuildingCount    = 20
	DestructionDelay = 0.5 // Seconds of simulated time before buildings fall
)

// Playback speed
const (
	DefaultSpeed = 1.0
	MinSpeed     = 0.25
	MaxSpeed     = 4.0
	SpeedFactor  = 2.0 // Multiplier applied by SpeedUp/SpeedDown
)
