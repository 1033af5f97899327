package sim

import "testing"

func TestClockAdvance(t *testing.T) {
	c := NewClock()
	if !c.Advance(0.5) {
		t.Error("running clock should report advance")
	}
	if c.Elapsed() != 0.5 {
		t.Errorf("Elapsed = %v, want 0.5", c.Elapsed())
	}

	c.SetSpeed(2)
	c.Advance(0.25)
	if c.Elapsed() != 1 {
		t.Errorf("Elapsed at 2x = %v, want 1", c.Elapsed())
	}
}

func TestClockPausedForTenSeconds(t *testing.T) {
	c := NewClock()
	c.Advance(1)
	c.Pause()

	for i := 0; i < 600; i++ {
		if c.Advance(1.0 / 60) {
			t.Fatal("paused clock reported advance")
		}
	}
	if c.Elapsed() != 1 {
		t.Errorf("Elapsed after pause = %v, want 1", c.Elapsed())
	}

	c.Resume()
	c.Advance(0.5)
	if c.Elapsed() != 1.5 {
		t.Errorf("Elapsed after resume = %v, want 1.5", c.Elapsed())
	}
}

func TestClockSetSpeedClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{0.1, MinSpeed},
		{-3, MinSpeed},
		{10, MaxSpeed},
		{MaxSpeed, MaxSpeed},
	}
	for _, tt := range tests {
		c := NewClock()
		c.SetSpeed(tt.in)
		if c.Speed() != tt.want {
			t.Errorf("SetSpeed(%v) -> %v, want %v", tt.in, c.Speed(), tt.want)
		}
	}
}

func TestClockResetKeepsPauseAndSpeed(t *testing.T) {
	c := NewClock()
	c.SetSpeed(2)
	c.Advance(3)
	c.Toggle()
	c.Reset()

	if c.Elapsed() != 0 {
		t.Errorf("Elapsed after reset = %v, want 0", c.Elapsed())
	}
	if !c.Paused() {
		t.Error("reset should keep the clock paused")
	}
	if c.Speed() != 2 {
		t.Errorf("Speed after reset = %v, want 2", c.Speed())
	}
}
