package ringshot

import (
	"math"

	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
)

// TrajectorySteps is the number of ticks simulated by the aim preview.
const TrajectorySteps = 20

// AimGesture is a drag in progress, in world coordinates.
type AimGesture struct {
	Start   core.Vec2
	Current core.Vec2
}

// Pull returns the slingshot vector: start minus current.
func (g AimGesture) Pull() core.Vec2 {
	return g.Start.Sub(g.Current)
}

// Launch is the result of a released gesture.
type Launch struct {
	Velocity core.Vec2
	Power    float64
	Angle    float64 // Direction of travel
	Heading  float64 // Sprite orientation: Angle + π/2
}

// Power converts a pull distance into launch speed, clamped to the configured range.
func Power(p config.PhysicsConfig, distance float64) float64 {
	return core.ClampF(distance*p.DragSensitivity, p.MinPower, p.MaxPower)
}

// PowerPct returns where power lies between the minimum and maximum, in [0, 1].
func PowerPct(p config.PhysicsConfig, power float64) float64 {
	return core.ClampF((power-p.MinPower)/(p.MaxPower-p.MinPower), 0, 1)
}

// LaunchFor computes the launch for a pull vector. It reports false when the
// pull is inside the deadzone.
func LaunchFor(p config.PhysicsConfig, pull core.Vec2) (Launch, bool) {
	distance := pull.Len()
	if distance < p.Deadzone {
		return Launch{}, false
	}

	power := Power(p, distance)
	angle := pull.Angle()
	return Launch{
		Velocity: core.FromAngle(angle, power),
		Power:    power,
		Angle:    angle,
		Heading:  angle + math.Pi/2,
	}, true
}

// Trajectory simulates steps ticks of ballistic flight from start.
// The returned points exclude start.
func Trajectory(start, vel core.Vec2, gravity float64, steps int) []core.Vec2 {
	pts := make([]core.Vec2, 0, steps)
	pos := start
	for i := 0; i < steps; i++ {
		pos = pos.Add(vel)
		vel.Y += gravity
		pts = append(pts, pos)
	}
	return pts
}

// AimController tracks one drag gesture at a time.
// Whether a gesture may start is decided by the caller.
type AimController struct {
	phys    config.PhysicsConfig
	gesture AimGesture
	aiming  bool
}

// NewAimController creates an idle controller.
func NewAimController(p config.PhysicsConfig) *AimController {
	return &AimController{phys: p}
}

// Begin starts a gesture at pos, replacing any gesture in progress.
func (a *AimController) Begin(pos core.Vec2) {
	a.gesture = AimGesture{Start: pos, Current: pos}
	a.aiming = true
}

// Move updates the current point of the gesture in progress.
func (a *AimController) Move(pos core.Vec2) {
	if a.aiming {
		a.gesture.Current = pos
	}
}

// Release ends the gesture and returns the launch it produces, if any.
// The gesture is discarded either way.
func (a *AimController) Release() (Launch, bool) {
	if !a.aiming {
		return Launch{}, false
	}
	g := a.gesture
	a.Cancel()
	return LaunchFor(a.phys, g.Pull())
}

// Cancel drops the gesture without launching.
func (a *AimController) Cancel() {
	a.gesture = AimGesture{}
	a.aiming = false
}

// Aiming reports whether a gesture is in progress.
func (a *AimController) Aiming() bool {
	return a.aiming
}

// Gesture returns the gesture in progress.
func (a *AimController) Gesture() (AimGesture, bool) {
	return a.gesture, a.aiming
}
