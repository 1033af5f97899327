package window

import (
	"context"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/impact/internal/input"
	"github.com/tomz197/impact/internal/object"
	"github.com/tomz197/impact/internal/sim"
)

func TestKeyEvents(t *testing.T) {
	keys := []ebiten.Key{ebiten.KeyP, ebiten.KeyA, ebiten.KeyEqual, ebiten.KeyR, ebiten.KeyEscape}
	got := keyEvents(keys)
	want := []input.Event{input.TogglePause, input.SpeedUp, input.Reset, input.Quit}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestToNRGBA(t *testing.T) {
	c := toNRGBA(object.ColorOrange, 0.5)
	if c.R != 255 || c.G != 165 || c.B != 0 {
		t.Errorf("rgb = %d,%d,%d, want 255,165,0", c.R, c.G, c.B)
	}
	if c.A != 128 {
		t.Errorf("alpha = %d, want 128", c.A)
	}
	if a := toNRGBA(object.ColorWhite, 3).A; a != 255 {
		t.Errorf("clamped alpha = %d, want 255", a)
	}
}

func TestFrameDeltaFollowsWallClock(t *testing.T) {
	clock := time.Unix(1000, 0)
	g := NewGame(context.Background(), sim.NewSession(sim.Options{}), nil, nil, nil)
	g.now = func() time.Time { return clock }

	if dt := g.frameDelta(sim.TargetFrameTime); dt != sim.TargetFrameTime.Seconds() {
		t.Errorf("first dt = %v, want %v", dt, sim.TargetFrameTime.Seconds())
	}
	clock = clock.Add(40 * time.Millisecond)
	if dt := g.frameDelta(sim.TargetFrameTime); dt != 0.04 {
		t.Errorf("slow tick dt = %v, want 0.04", dt)
	}
	clock = clock.Add(5 * time.Second)
	if dt := g.frameDelta(sim.TargetFrameTime); dt != sim.MaxFrameDelta.Seconds() {
		t.Errorf("stalled tick dt = %v, want %v", dt, sim.MaxFrameDelta.Seconds())
	}
	clock = clock.Add(-time.Second)
	if dt := g.frameDelta(sim.TargetFrameTime); dt != 0 {
		t.Errorf("backwards clock dt = %v, want 0", dt)
	}
}
