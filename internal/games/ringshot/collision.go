package ringshot

import (
	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
)

// HitKind classifies what a dart struck on a tick.
type HitKind int

const (
	HitNone     HitKind = iota // Still flying
	HitBounds                  // Left the playfield
	HitObstacle                // Struck the orbiting obstacle
	HitTarget                  // Landed on the target
)

// String returns a human-readable name for the hit kind.
func (k HitKind) String() string {
	switch k {
	case HitNone:
		return "none"
	case HitBounds:
		return "bounds"
	case HitObstacle:
		return "obstacle"
	case HitTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Miss reports whether the hit ends the run as a loss.
func (k HitKind) Miss() bool {
	return k == HitBounds || k == HitObstacle
}

// Collision is the result of one collision test.
type Collision struct {
	Kind    HitKind
	Perfect bool      // Only meaningful for HitTarget
	Offset  core.Vec2 // Dart position relative to the target center
	Dist    float64   // Distance from the target center
}

// CollisionEngine tests a dart against bounds, obstacle and target, in that order.
type CollisionEngine struct {
	world  config.WorldConfig
	coll   config.CollisionConfig
	motion MotionModel
}

// NewCollisionEngine creates a collision engine for the given motion model.
func NewCollisionEngine(world config.WorldConfig, coll config.CollisionConfig, motion MotionModel) CollisionEngine {
	return CollisionEngine{world: world, coll: coll, motion: motion}
}

// Check tests an active dart against the scene in s. The first match wins.
func (c CollisionEngine) Check(p *Projectile, s Motion) Collision {
	if p.OutOfBounds(c.world) {
		return Collision{Kind: HitBounds}
	}

	pos := p.Pos()
	if obs, ok := c.motion.Obstacle(s); ok && core.Dist(pos, obs) < c.coll.ObstacleRadius {
		return Collision{Kind: HitObstacle}
	}

	offset := pos.Sub(s.Target)
	dist := offset.Len()
	hitRadius := c.motion.HitRadius(s)
	if dist < hitRadius {
		return Collision{
			Kind:    HitTarget,
			Perfect: dist < hitRadius*c.coll.PerfectFraction,
			Offset:  offset,
			Dist:    dist,
		}
	}

	return Collision{Kind: HitNone}
}
