package ringshot

import (
	"math"

	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
)

// Projectile is a dart in flight or pinned to the target.
// Scale is fixed at launch and only affects rendering.
type Projectile struct {
	X, Y    float64
	VX, VY  float64
	Heading float64
	Active  bool
	Landed  bool
	Scale   float64
}

// NewProjectile spawns an active dart at spawn.
func NewProjectile(spawn core.Vec2, l Launch, scale float64) *Projectile {
	return &Projectile{
		X:       spawn.X,
		Y:       spawn.Y,
		VX:      l.Velocity.X,
		VY:      l.Velocity.Y,
		Heading: l.Heading,
		Active:  true,
		Scale:   scale,
	}
}

// Pos returns the dart position.
func (p *Projectile) Pos() core.Vec2 {
	return core.V(p.X, p.Y)
}

// Advance integrates one tick: position first, then gravity.
func (p *Projectile) Advance(gravity float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += gravity
	p.Heading = math.Atan2(p.VY, p.VX) + math.Pi/2
}

// OutOfBounds reports whether the dart has left the playfield.
// Darts may fly above the top edge and fall back.
func (p *Projectile) OutOfBounds(w config.WorldConfig) bool {
	return p.Y > w.Height+w.BoundsMargin || p.X < -w.BoundsMargin || p.X > w.Width+w.BoundsMargin
}

// pinnedDart is a landed dart riding along with the target until cleared.
type pinnedDart struct {
	dart   Projectile
	offset core.Vec2
}

// follow moves the dart to its fixed offset from the target center.
func (p *pinnedDart) follow(target core.Vec2) {
	pos := target.Add(p.offset)
	p.dart.X = pos.X
	p.dart.Y = pos.Y
}
