package config

import (
	_ "embed"
)

//go:embed defaults/ringshot.yaml
var defaultRingshotYAML []byte

// DefaultRingshotConfig returns the built-in tuning. Sectors is left empty so
// callers fall back to the built-in sector table.
func DefaultRingshotConfig() RingshotConfig {
	return RingshotConfig{
		Physics: PhysicsConfig{
			MaxPower:        25,
			MinPower:        8,
			Gravity:         0.5,
			DragSensitivity: 0.15,
			Deadzone:        20,
			TimeStep:        0.016,
		},
		World: WorldConfig{
			Width:        400,
			Height:       800,
			TargetY:      150,
			SpawnY:       650,
			BoundsMargin: 50,
		},
		Collision: CollisionConfig{
			ObstacleGap:     25,
			ObstacleRadius:  15,
			PerfectFraction: 0.3,
		},
		Timing: TimingConfig{
			PinMs:       150,
			WinDelayMs:  500,
			LossDelayMs: 800,
		},
		Scoring: ScoringConfig{
			PerfectPoints:   300,
			HitPoints:       100,
			StreakThreshold: 2,
			StreakBonus:     1.2,
		},
		Effects: EffectsConfig{
			ShakePerfect: 15,
			ShakeHit:     5,
			ShakeMiss:    30,
			ShakeDecay:   0.9,
			ShakeCutoff:  0.5,
		},
	}
}
