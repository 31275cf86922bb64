// Package config provides YAML-based tuning configuration for ringshot.
package config

import (
	"errors"
	"fmt"
)

// RingshotConfig contains every tunable constant of the simulation.
// Sectors is optional; when empty the built-in sector table is used.
type RingshotConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	World     WorldConfig     `yaml:"world"`
	Collision CollisionConfig `yaml:"collision"`
	Timing    TimingConfig    `yaml:"timing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Effects   EffectsConfig   `yaml:"effects"`
	Sectors   []SectorConfig  `yaml:"sectors"`
}

// PhysicsConfig defines launch and flight parameters.
type PhysicsConfig struct {
	MaxPower        float64 `yaml:"max_power"`        // Launch speed cap
	MinPower        float64 `yaml:"min_power"`        // Launch speed floor
	Gravity         float64 `yaml:"gravity"`          // Added to vy every tick
	DragSensitivity float64 `yaml:"drag_sensitivity"` // Pull distance to launch speed
	Deadzone        float64 `yaml:"deadzone"`         // Pulls shorter than this are discarded
	TimeStep        float64 `yaml:"time_step"`        // Elapsed time per tick
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	TargetY      float64 `yaml:"target_y"`
	SpawnY       float64 `yaml:"spawn_y"`
	BoundsMargin float64 `yaml:"bounds_margin"` // Distance past the edges before a dart is lost
}

// CollisionConfig defines obstacle geometry and the perfect zone.
type CollisionConfig struct {
	ObstacleGap     float64 `yaml:"obstacle_gap"`     // Orbit radius beyond the target radius
	ObstacleRadius  float64 `yaml:"obstacle_radius"`  // Obstacle hit radius
	PerfectFraction float64 `yaml:"perfect_fraction"` // Fraction of the target radius that counts as perfect
}

// TimingConfig defines delayed transitions in milliseconds.
type TimingConfig struct {
	PinMs       int `yaml:"pin_ms"`        // How long a landed dart stays visible
	WinDelayMs  int `yaml:"win_delay_ms"`  // Delay before a win is reported
	LossDelayMs int `yaml:"loss_delay_ms"` // Delay before a loss is reported
}

// ScoringConfig defines points and the streak bonus.
type ScoringConfig struct {
	PerfectPoints   int     `yaml:"perfect_points"`
	HitPoints       int     `yaml:"hit_points"`
	StreakThreshold int     `yaml:"streak_threshold"` // Streak at which the bonus applies
	StreakBonus     float64 `yaml:"streak_bonus"`     // Dart scale while the bonus applies
}

// EffectsConfig defines screen shake parameters.
type EffectsConfig struct {
	ShakePerfect float64 `yaml:"shake_perfect"`
	ShakeHit     float64 `yaml:"shake_hit"`
	ShakeMiss    float64 `yaml:"shake_miss"`
	ShakeDecay   float64 `yaml:"shake_decay"` // Multiplier applied every tick
	ShakeCutoff  float64 `yaml:"shake_cutoff"`
}

// SectorConfig describes one sector in the YAML file.
type SectorConfig struct {
	ID              int     `yaml:"id"`
	Name            string  `yaml:"name"`
	RingsToWin      int     `yaml:"rings_to_win"`
	TargetSpeed     float64 `yaml:"target_speed"`
	TargetMoveRange float64 `yaml:"target_move_range"`
	ObstacleSpeed   float64 `yaml:"obstacle_speed"`
	ScaleSpeed      float64 `yaml:"scale_speed"`
	TargetRadius    float64 `yaml:"target_radius"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c RingshotConfig) Validate() error {
	var errs []error

	p := c.Physics
	if p.MinPower <= 0 || p.MaxPower <= p.MinPower {
		errs = append(errs, fmt.Errorf("physics: need 0 < min_power < max_power, got %v and %v", p.MinPower, p.MaxPower))
	}
	if p.DragSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("physics: drag_sensitivity must be positive"))
	}
	if p.Deadzone < 0 {
		errs = append(errs, fmt.Errorf("physics: deadzone must not be negative"))
	}
	if p.TimeStep <= 0 {
		errs = append(errs, fmt.Errorf("physics: time_step must be positive"))
	}

	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, fmt.Errorf("world: size must be positive, got %vx%v", w.Width, w.Height))
	}
	if w.TargetY < 0 || w.TargetY > w.Height || w.SpawnY < 0 || w.SpawnY > w.Height {
		errs = append(errs, fmt.Errorf("world: target_y and spawn_y must lie inside the world"))
	}

	if c.Collision.PerfectFraction <= 0 || c.Collision.PerfectFraction > 1 {
		errs = append(errs, fmt.Errorf("collision: perfect_fraction must be in (0, 1]"))
	}
	if c.Collision.ObstacleRadius <= 0 {
		errs = append(errs, fmt.Errorf("collision: obstacle_radius must be positive"))
	}

	if c.Timing.PinMs < 0 || c.Timing.WinDelayMs < 0 || c.Timing.LossDelayMs < 0 {
		errs = append(errs, fmt.Errorf("timing: delays must not be negative"))
	}

	if d := c.Effects.ShakeDecay; d < 0 || d >= 1 {
		errs = append(errs, fmt.Errorf("effects: shake_decay must be in [0, 1)"))
	}

	seen := make(map[int]bool, len(c.Sectors))
	for _, s := range c.Sectors {
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("sectors: duplicate id %d", s.ID))
		}
		seen[s.ID] = true
		if s.RingsToWin <= 0 || s.TargetRadius <= 0 {
			errs = append(errs, fmt.Errorf("sectors: sector %d needs positive rings_to_win and target_radius", s.ID))
		}
		if s.TargetSpeed < 0 || s.TargetMoveRange < 0 || s.ObstacleSpeed < 0 || s.ScaleSpeed < 0 {
			errs = append(errs, fmt.Errorf("sectors: sector %d has a negative speed or range", s.ID))
		}
	}

	return errors.Join(errs...)
}
