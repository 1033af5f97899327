package sim

// Clock accumulates simulated time. While paused it does not advance.
type Clock struct {
	elapsed float64
	paused  bool
	speed   float64
}

// NewClock returns a running clock at DefaultSpeed.
func NewClock() *Clock {
	return &Clock{speed: DefaultSpeed}
}

// Advance adds dt scaled by the speed multiplier and reports whether the
// clock is running. A paused clock ignores dt.
func (c *Clock) Advance(dt float64) bool {
	if c.paused {
		return false
	}
	c.elapsed += dt * c.speed
	return true
}

// Elapsed returns the simulated seconds since the last reset.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Pause stops the clock.
func (c *Clock) Pause() { c.paused = true }

// Resume restarts the clock.
func (c *Clock) Resume() { c.paused = false }

// Toggle flips between paused and running.
func (c *Clock) Toggle() { c.paused = !c.paused }

// Speed returns the speed multiplier.
func (c *Clock) Speed() float64 { return c.speed }

// SetSpeed sets the multiplier, clamped to [MinSpeed, MaxSpeed].
func (c *Clock) SetSpeed(speed float64) {
	switch {
	case !(speed >= MinSpeed):
		speed = MinSpeed
	case speed > MaxSpeed:
		speed = MaxSpeed
	}
	c.speed = speed
}

// Reset zeroes elapsed time. Pause state and speed are kept.
func (c *Clock) Reset() {
	c.elapsed = 0
}
