package ringshot

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/ringshot/internal/core"
)

// Visual characters for rendering
const (
	BullseyeChar  = '●'
	InnerRingChar = '▓'
	OuterRingChar = '░'
	ObstacleChar  = '◉'
	FloorChar     = '─'
	TraceChar     = '·'
	TraceEndChar  = '∘'
	WaveChar      = '○'
	SparkChar     = '*'
	EmberChar     = '.'
)

// dartGlyphs are indexed by travel octant, starting east and turning clockwise
// in screen space (y grows downward).
var dartGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// hudRows is the number of screen rows reserved above and below the playfield.
const hudRows = 1

// PlayViewport returns the viewport used to draw and to map pointer input for
// a screen of the given size.
func PlayViewport(screenW, screenH int, worldW, worldH float64) core.Viewport {
	area := core.NewRect(0, hudRows, screenW, core.Max(screenH-2*hudRows, 1))
	return core.FitViewport(area, worldW, worldH)
}

// Viewport returns the viewport for the configured screen size.
func (g *Game) Viewport() core.Viewport {
	return PlayViewport(g.config.ScreenW, g.config.ScreenH, g.tune.World.Width, g.tune.World.Height)
}

// SetScreenSize updates the screen size without restarting the run.
func (g *Game) SetScreenSize(w, h int) {
	g.config.ScreenW = w
	g.config.ScreenH = h
}

// DartGlyph picks an arrow for a dart heading. Heading is the travel angle
// plus π/2, so a heading of 0 points up.
func DartGlyph(heading float64) rune {
	travel := heading - math.Pi/2
	oct := int(math.Round(travel/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return dartGlyphs[oct]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.Viewport(), g.shakeOffset())
}

// shakeOffset returns a random jitter in world units for the current shake.
// It draws from a render-only source so rendering never perturbs the simulation.
func (g *Game) shakeOffset() core.Vec2 {
	if g.shake <= 0 || g.noShake {
		return core.Vec2{}
	}
	return core.V((g.renderRng.Float64()-0.5)*g.shake, (g.renderRng.Float64()-0.5)*g.shake)
}

// RenderSnapshot draws snap into dst through vp, offsetting the playfield by shake.
func RenderSnapshot(dst *core.Screen, snap Snapshot, vp core.Viewport, shake core.Vec2) {
	dst.Clear()

	// Shake moves everything drawn in world space
	toScreen := func(p core.Vec2) (int, int) {
		return vp.ToScreen(p.Add(shake))
	}

	drawFloor(dst, snap.Spawn, vp, toScreen)
	drawTarget(dst, snap, vp, shake)

	if snap.HasObstacle {
		x, y := toScreen(snap.Obstacle)
		dst.SetWithColor(x, y, ObstacleChar, core.ColorDanger)
	}

	for _, s := range snap.Shockwaves {
		drawShockwave(dst, s, vp, shake)
	}

	drawAim(dst, snap, toScreen)

	if snap.HasPinned {
		x, y := toScreen(snap.Pinned.Pos())
		dst.SetWithColor(x, y, DartGlyph(snap.Pinned.Heading), core.ColorBrightWhite)
	}
	if snap.HasDart {
		x, y := toScreen(snap.Dart.Pos())
		dst.SetWithColor(x, y, DartGlyph(snap.Dart.Heading), core.ColorAccent)
	}

	for _, p := range snap.Particles {
		x, y := toScreen(core.V(p.X, p.Y))
		glyph := SparkChar
		if p.Life < 0.4 || p.Size < 2 {
			glyph = EmberChar
		}
		dst.SetWithColor(x, y, glyph, p.Color)
	}

	for _, t := range snap.Texts {
		x, y := toScreen(core.V(t.X, t.Y))
		dst.DrawTextColor(x-len([]rune(t.Text))/2, y, t.Text, t.Color)
	}

	drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawFloor(dst *core.Screen, spawn core.Vec2, vp core.Viewport, toScreen func(core.Vec2) (int, int)) {
	_, y := toScreen(spawn)
	// Below the spawn point so the idle dart stays visible
	dst.DrawHLine(vp.Area.X, y+1, vp.Area.W, FloorChar, core.ColorDarkGray)
}

// drawTarget shades every cell whose center lies inside the target.
func drawTarget(dst *core.Screen, snap Snapshot, vp core.Viewport, shake core.Vec2) {
	center := snap.Target.Add(shake)
	inner := snap.HitRadius * 0.6

	for y := vp.Area.Y; y < vp.Area.Bottom(); y++ {
		for x := vp.Area.X; x < vp.Area.Right(); x++ {
			d := core.Dist(vp.ToWorld(x, y), center)
			switch {
			case d < snap.PerfectRadius:
				dst.SetWithColor(x, y, BullseyeChar, core.ColorAccent)
			case d < inner:
				dst.SetWithColor(x, y, InnerRingChar, core.ColorPrimary)
			case d < snap.HitRadius:
				dst.SetWithColor(x, y, OuterRingChar, core.ColorPrimary)
			}
		}
	}

	// The bullseye is smaller than a cell at most sizes
	cx, cy := vp.ToScreen(center)
	dst.SetWithColor(cx, cy, BullseyeChar, core.ColorAccent)
}

func drawShockwave(dst *core.Screen, s Shockwave, vp core.Viewport, shake core.Vec2) {
	center := core.V(s.X, s.Y).Add(shake)
	band := math.Max(vp.CellW(), vp.CellH()) / 2
	color := core.ColorAccent
	if s.Opacity < 0.4 {
		color = core.ColorMagenta
	}

	for y := vp.Area.Y; y < vp.Area.Bottom(); y++ {
		for x := vp.Area.X; x < vp.Area.Right(); x++ {
			if math.Abs(core.Dist(vp.ToWorld(x, y), center)-s.Radius) < band {
				dst.SetWithColor(x, y, WaveChar, color)
			}
		}
	}
}

// drawAim draws the resting dart, or the slingshot preview while aiming.
func drawAim(dst *core.Screen, snap Snapshot, toScreen func(core.Vec2) (int, int)) {
	if snap.HasDart || snap.Concluded {
		return
	}

	sx, sy := toScreen(snap.Spawn)

	if !snap.Aim.Active {
		dst.SetWithColor(sx, sy, DartGlyph(0), core.ColorBrightWhite)
		hint := "DRAG TO AIM"
		dst.DrawTextColor(sx-len(hint)/2, sy+2, hint, core.ColorGray)
		return
	}

	pull := snap.Aim.Gesture.Pull()
	dst.SetWithColor(sx, sy, DartGlyph(pull.Angle()+math.Pi/2), core.ColorBrightWhite)

	// Slingshot band from the spawn point to where the pull is held
	band := snap.Spawn.Sub(pull)
	bx, by := toScreen(band)
	if bx != sx || by != sy {
		dst.SetWithColor(bx, by, '+', core.ColorGray)
	}

	if !snap.Aim.Valid {
		return
	}

	pts := snap.Aim.Trajectory
	for i, p := range pts {
		x, y := toScreen(p)
		glyph := TraceChar
		if i == len(pts)-1 {
			glyph = TraceEndChar
		}
		if dst.Get(x, y) == ' ' || i == len(pts)-1 {
			dst.SetWithColor(x, y, glyph, core.ColorGray)
		}
	}

	meter := powerMeter(snap.Aim.PowerPct, 10)
	dst.DrawTextColor(sx-len([]rune(meter))/2, sy+2, meter, powerColor(snap.Aim.PowerPct))
}

// powerMeter renders a bar of width cells filled to pct.
func powerMeter(pct float64, width int) string {
	filled := core.Clamp(int(math.Round(pct*float64(width))), 0, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// powerColor goes from red at minimum power to green at maximum.
func powerColor(pct float64) core.Color {
	switch {
	case pct < 0.33:
		return core.ColorBrightRed
	case pct < 0.66:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("SCORE %d", snap.Score))

	var rings strings.Builder
	for i := 0; i < snap.RingsToWin; i++ {
		if i < snap.RingsLanded {
			rings.WriteRune('●')
		} else {
			rings.WriteRune('○')
		}
	}
	right := fmt.Sprintf("SECTOR %d %s", snap.LevelID, rings.String())
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorPrimary)

	if snap.Streak > 1 {
		dst.DrawTextCentered(0, fmt.Sprintf("STREAK x%d +20%%", snap.Streak), core.ColorOrange)
	}

	help := "drag/space: aim  x: cancel  p: pause  esc: exit"
	if dst.Width() < len(help)+2 {
		help = "space aim  p pause  esc exit"
	}
	dst.DrawTextCentered(dst.Height()-1, help, core.ColorDarkGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 4
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextColor(box.X+(boxW-len(subtitle))/2, box.Y+2, subtitle, core.ColorGray)
}
