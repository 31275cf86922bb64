package ringshot

import (
	"math"

	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
)

// Motion is the target and obstacle state at one instant.
type Motion struct {
	Target        core.Vec2
	Scale         float64
	ObstacleAngle float64
}

// MotionModel moves the target and obstacle for one sector.
// All outputs are pure functions of elapsed time and the accumulated angle.
type MotionModel struct {
	level LevelConfig
	world config.WorldConfig
	gap   float64
}

// NewMotionModel creates a motion model for level.
func NewMotionModel(level LevelConfig, world config.WorldConfig, coll config.CollisionConfig) MotionModel {
	return MotionModel{level: level, world: world, gap: coll.ObstacleGap}
}

// Initial returns the state at t = 0.
func (m MotionModel) Initial() Motion {
	return Motion{
		Target: core.V(m.world.Width/2, m.world.TargetY),
		Scale:  1,
	}
}

// Advance returns the state at elapsed time t, one tick after prev.
func (m MotionModel) Advance(prev Motion, t float64) Motion {
	next := prev
	next.Target = core.V(
		m.world.Width/2+math.Sin(t*m.level.TargetSpeed*50)*m.level.TargetMoveRange,
		m.world.TargetY,
	)

	next.Scale = 1
	if m.level.ScaleSpeed > 0 {
		next.Scale = 1 + math.Sin(t*m.level.ScaleSpeed*50)*0.2
	}

	if m.level.ObstacleSpeed > 0 {
		next.ObstacleAngle += m.level.ObstacleSpeed
	}
	return next
}

// HitRadius returns the target's effective radius in s.
func (m MotionModel) HitRadius(s Motion) float64 {
	return m.level.TargetRadius * s.Scale
}

// Obstacle returns the obstacle position in s. It reports false when the
// sector has no obstacle.
func (m MotionModel) Obstacle(s Motion) (core.Vec2, bool) {
	if !m.level.HasObstacle() {
		return core.Vec2{}, false
	}
	orbit := m.HitRadius(s) + m.gap
	return s.Target.Add(core.FromAngle(s.ObstacleAngle, orbit)), true
}
