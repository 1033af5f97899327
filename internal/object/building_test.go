package object

import "testing"

func TestNewSkyline(t *testing.T) {
	buildings := NewSkyline(newTestRand(), testScreen, 20)
	if len(buildings) != 20 {
		t.Fatalf("buildings = %d, want 20", len(buildings))
	}

	for i, b := range buildings {
		if b.Destroyed {
			t.Errorf("building %d starts destroyed", i)
		}
		if b.X < 0 || b.X > 1200 {
			t.Errorf("building %d x = %v, want [0, 1200]", i, b.X)
		}
		if b.Height < 50 || b.Height > 200 {
			t.Errorf("building %d height = %v, want [50, 200]", i, b.Height)
		}
		if b.Width < 30 || b.Width > 80 {
			t.Errorf("building %d width = %v, want [30, 80]", i, b.Width)
		}
		if b.Y+b.Height != 800 {
			t.Errorf("building %d does not stand on the ground: y=%v h=%v", i, b.Y, b.Height)
		}
		if b.Color != ColorGray && b.Color != ColorDarkGray && b.Color != ColorBrown {
			t.Errorf("building %d color %v not a building material", i, b.Color)
		}
	}
}

func TestBuildingDestroy(t *testing.T) {
	b := Building{X: 10, Y: 20, Width: 40, Height: 60, Color: ColorGray}
	b.Destroy()
	if !b.Destroyed {
		t.Error("building should be destroyed")
	}
	if b.Color != DestructionColor {
		t.Errorf("color = %v, want destruction color", b.Color)
	}

	cx, cy := b.Center()
	if cx != 30 || cy != 50 {
		t.Errorf("Center = (%v, %v), want (30, 50)", cx, cy)
	}
}

func TestScreenContains(t *testing.T) {
	if !testScreen.Contains(0, 0) || !testScreen.Contains(1200, 800) {
		t.Error("edges should be inside")
	}
	if testScreen.Contains(-0.1, 10) || testScreen.Contains(10, 800.1) {
		t.Error("points past the edge should be outside")
	}
	cx, cy := testScreen.Center()
	if cx != 600 || cy != 400 {
		t.Errorf("Center = (%v, %v), want (600, 400)", cx, cy)
	}
}
