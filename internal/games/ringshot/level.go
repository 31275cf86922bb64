package ringshot

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/ringshot/internal/config"
)

// LevelConfig is the immutable tuning of one sector.
// TargetSpeed == 0 keeps the target still; ObstacleSpeed == 0 disables the obstacle.
type LevelConfig struct {
	ID              int
	Name            string
	RingsToWin      int
	TargetSpeed     float64
	TargetMoveRange float64
	ObstacleSpeed   float64
	ScaleSpeed      float64
	TargetRadius    float64
}

// ErrInvalidLevel is wrapped by every LevelConfig validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Validate rejects configurations the simulation is not defined for.
func (l LevelConfig) Validate() error {
	switch {
	case l.RingsToWin <= 0:
		return fmt.Errorf("%w: sector %d: rings to win must be positive", ErrInvalidLevel, l.ID)
	case l.TargetRadius <= 0:
		return fmt.Errorf("%w: sector %d: target radius must be positive", ErrInvalidLevel, l.ID)
	case l.TargetSpeed < 0, l.TargetMoveRange < 0, l.ObstacleSpeed < 0, l.ScaleSpeed < 0:
		return fmt.Errorf("%w: sector %d: speeds and ranges must not be negative", ErrInvalidLevel, l.ID)
	}
	return nil
}

// HasObstacle reports whether the sector has an orbiting obstacle.
func (l LevelConfig) HasObstacle() bool {
	return l.ObstacleSpeed > 0
}

// Title returns the display name, falling back to the sector number.
func (l LevelConfig) Title() string {
	if l.Name == "" {
		return fmt.Sprintf("Sector %d", l.ID)
	}
	return fmt.Sprintf("Sector %d: %s", l.ID, l.Name)
}

// Phase names group sectors in threes.
var phaseNames = []string{"Basics", "Movement", "Pulsing", "Obstacles", "Chaos"}

// Phase returns the name of the difficulty phase a sector belongs to.
func (l LevelConfig) Phase() string {
	idx := (l.ID - 1) / 3
	if idx < 0 {
		idx = 0
	}
	if idx >= len(phaseNames) {
		idx = len(phaseNames) - 1
	}
	return phaseNames[idx]
}

var builtinSectors = []LevelConfig{
	// Basics
	{ID: 1, Name: "First Contact", RingsToWin: 3, TargetRadius: 45},
	{ID: 2, Name: "Steady Hand", RingsToWin: 4, TargetRadius: 40},
	{ID: 3, Name: "Pinpoint", RingsToWin: 5, TargetRadius: 35},
	// Movement
	{ID: 4, Name: "Drift", RingsToWin: 3, TargetSpeed: 0.02, TargetMoveRange: 60, TargetRadius: 45},
	{ID: 5, Name: "Pendulum", RingsToWin: 4, TargetSpeed: 0.03, TargetMoveRange: 90, TargetRadius: 40},
	{ID: 6, Name: "Slipstream", RingsToWin: 5, TargetSpeed: 0.04, TargetMoveRange: 120, TargetRadius: 35},
	// Pulsing
	{ID: 7, Name: "Heartbeat", RingsToWin: 3, TargetSpeed: 0.02, TargetMoveRange: 40, ScaleSpeed: 0.03, TargetRadius: 45},
	{ID: 8, Name: "Breathing Room", RingsToWin: 4, TargetSpeed: 0.03, TargetMoveRange: 60, ScaleSpeed: 0.05, TargetRadius: 40},
	{ID: 9, Name: "Flicker", RingsToWin: 5, TargetSpeed: 0.04, TargetMoveRange: 80, ScaleSpeed: 0.08, TargetRadius: 35},
	// Obstacles
	{ID: 10, Name: "Sentinel", RingsToWin: 3, ObstacleSpeed: 0.05, TargetRadius: 50},
	{ID: 11, Name: "Patrol", RingsToWin: 4, TargetSpeed: 0.02, TargetMoveRange: 40, ObstacleSpeed: 0.07, TargetRadius: 45},
	{ID: 12, Name: "Gatekeeper", RingsToWin: 5, TargetSpeed: 0.03, TargetMoveRange: 60, ObstacleSpeed: 0.09, TargetRadius: 40},
	// Chaos
	{ID: 13, Name: "Turbulence", RingsToWin: 5, TargetSpeed: 0.06, TargetMoveRange: 100, ObstacleSpeed: 0.06, ScaleSpeed: 0.02, TargetRadius: 45},
	{ID: 14, Name: "Maelstrom", RingsToWin: 6, TargetSpeed: 0.08, TargetMoveRange: 130, ObstacleSpeed: 0.08, ScaleSpeed: 0.03, TargetRadius: 40},
	{ID: 15, Name: "Event Horizon", RingsToWin: 8, TargetSpeed: 0.1, TargetMoveRange: 150, ObstacleSpeed: 0.12, ScaleSpeed: 0.05, TargetRadius: 35},
}

// Sectors returns a copy of the built-in sector table.
func Sectors() []LevelConfig {
	out := make([]LevelConfig, len(builtinSectors))
	copy(out, builtinSectors)
	return out
}

// LevelsFromConfig returns the sectors named in cfg, or the built-in table
// when cfg names none.
func LevelsFromConfig(cfg config.RingshotConfig) ([]LevelConfig, error) {
	if len(cfg.Sectors) == 0 {
		return Sectors(), nil
	}

	levels := make([]LevelConfig, 0, len(cfg.Sectors))
	for _, s := range cfg.Sectors {
		l := LevelConfig{
			ID:              s.ID,
			Name:            s.Name,
			RingsToWin:      s.RingsToWin,
			TargetSpeed:     s.TargetSpeed,
			TargetMoveRange: s.TargetMoveRange,
			ObstacleSpeed:   s.ObstacleSpeed,
			ScaleSpeed:      s.ScaleSpeed,
			TargetRadius:    s.TargetRadius,
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}

// FindLevel returns the sector with the given id.
func FindLevel(levels []LevelConfig, id int) (LevelConfig, bool) {
	for _, l := range levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// NextLevel returns the sector that follows id in table order.
func NextLevel(levels []LevelConfig, id int) (LevelConfig, bool) {
	for i, l := range levels {
		if l.ID == id && i+1 < len(levels) {
			return levels[i+1], true
		}
	}
	return LevelConfig{}, false
}

// LevelIDs returns the ids of levels in table order.
func LevelIDs(levels []LevelConfig) []int {
	ids := make([]int, len(levels))
	for i, l := range levels {
		ids[i] = l.ID
	}
	return ids
}
