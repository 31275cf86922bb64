package core

import "testing"

func TestFitViewportKeepsAspect(t *testing.T) {
	// A 400x800 world is square in cells because cells are twice as tall as wide.
	v := FitViewport(NewRect(0, 1, 80, 22), 400, 800)

	if v.Area.H != 22 || v.Area.W != 22 {
		t.Fatalf("Area = %+v, expected 22x22", v.Area)
	}
	if v.Area.X != 29 || v.Area.Y != 1 {
		t.Errorf("Area origin = (%d, %d), expected centered at (29, 1)", v.Area.X, v.Area.Y)
	}
}

func TestFitViewportNarrowArea(t *testing.T) {
	v := FitViewport(NewRect(0, 0, 10, 40), 400, 800)

	if v.Area.W != 10 {
		t.Errorf("Area.W = %d, expected 10", v.Area.W)
	}
	if v.Area.H != 10 {
		t.Errorf("Area.H = %d, expected 10", v.Area.H)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := FitViewport(NewRect(0, 0, 40, 40), 400, 800)

	for _, cell := range [][2]int{{0, 0}, {10, 5}, {39, 39}} {
		p := v.ToWorld(cell[0], cell[1])
		x, y := v.ToScreen(p)
		if x != cell[0] || y != cell[1] {
			t.Errorf("ToScreen(ToWorld(%d, %d)) = (%d, %d)", cell[0], cell[1], x, y)
		}
	}

	if v.Visible(V(-60, 100)) {
		t.Error("point left of the world should not be visible")
	}
	if !v.Visible(V(200, 400)) {
		t.Error("world center should be visible")
	}
}

func TestMsToTicks(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		ms, want int
	}{
		{0, 0},
		{150, 9},
		{500, 30},
		{800, 48},
		{1, 1},
	}

	for _, tc := range tests {
		if got := cfg.MsToTicks(tc.ms); got != tc.want {
			t.Errorf("MsToTicks(%d) = %d, expected %d", tc.ms, got, tc.want)
		}
	}

	cfg.TickRate = 30
	if got := cfg.MsToTicks(150); got != 5 {
		t.Errorf("MsToTicks(150) at 30Hz = %d, expected 5", got)
	}
}
