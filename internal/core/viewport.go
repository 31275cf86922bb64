package core

import "math"

// cellAspect is the approximate height/width ratio of a terminal cell.
const cellAspect = 2.0

// Viewport maps a fixed logical world onto a rectangle of screen cells.
// Games simulate in world units; the platform converts mouse cells to world
// coordinates and the renderer converts world coordinates to cells.
type Viewport struct {
	Area   Rect    // Screen cells occupied by the world
	WorldW float64 // Logical world width
	WorldH float64 // Logical world height
}

// FitViewport returns the largest viewport with the world's aspect ratio that
// fits inside area, centered horizontally and vertically.
func FitViewport(area Rect, worldW, worldH float64) Viewport {
	cols := area.W
	rows := area.H
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	// Width in cells that keeps the aspect ratio for the available rows
	wantCols := int(math.Round(float64(rows) * worldW / worldH * cellAspect))
	if wantCols <= cols {
		cols = Max(wantCols, 1)
	} else {
		rows = Max(int(math.Round(float64(cols)*worldH/worldW/cellAspect)), 1)
	}

	return Viewport{
		Area:   NewRect(area.X+(area.W-cols)/2, area.Y+(area.H-rows)/2, cols, rows),
		WorldW: worldW,
		WorldH: worldH,
	}
}

// CellW returns the world width covered by one cell.
func (v Viewport) CellW() float64 {
	return v.WorldW / float64(v.Area.W)
}

// CellH returns the world height covered by one cell.
func (v Viewport) CellH() float64 {
	return v.WorldH / float64(v.Area.H)
}

// ToScreen converts a world point to a screen cell.
// Points outside the world map to cells outside Area.
func (v Viewport) ToScreen(p Vec2) (int, int) {
	x := v.Area.X + int(math.Floor(p.X/v.CellW()))
	y := v.Area.Y + int(math.Floor(p.Y/v.CellH()))
	return x, y
}

// ToWorld converts a screen cell to the world point at the cell's center.
func (v Viewport) ToWorld(x, y int) Vec2 {
	return Vec2{
		X: (float64(x-v.Area.X) + 0.5) * v.CellW(),
		Y: (float64(y-v.Area.Y) + 0.5) * v.CellH(),
	}
}

// Visible reports whether a world point maps inside Area.
func (v Viewport) Visible(p Vec2) bool {
	x, y := v.ToScreen(p)
	return v.Area.Contains(x, y)
}
