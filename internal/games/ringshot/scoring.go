package ringshot

import "github.com/vovakirdan/ringshot/internal/config"

// Outcome is the result of a concluded run, delivered once.
type Outcome struct {
	LevelID     int
	Success     bool
	Stars       int // 0 on a loss, 1..3 on a win
	Score       int
	PerfectHits int
}

// Stars rates a win by the share of perfect hits: all perfect earns 3,
// at least half earns 2, anything else 1.
func Stars(perfectHits, ringsToWin int) int {
	switch {
	case ringsToWin <= 0:
		return 1
	case perfectHits >= ringsToWin:
		return 3
	case perfectHits*2 >= ringsToWin:
		return 2
	default:
		return 1
	}
}

// BonusScale returns the dart scale for a win streak.
func BonusScale(streak int, s config.ScoringConfig) float64 {
	if s.StreakThreshold > 0 && streak >= s.StreakThreshold {
		return s.StreakBonus
	}
	return 1
}

// Scoring accumulates the score and hit counters of one run.
type Scoring struct {
	cfg         config.ScoringConfig
	ringsToWin  int
	Score       int
	RingsLanded int
	PerfectHits int
}

// NewScoring creates a zeroed scorer for a sector.
func NewScoring(cfg config.ScoringConfig, ringsToWin int) *Scoring {
	return &Scoring{cfg: cfg, ringsToWin: ringsToWin}
}

// RecordHit applies a landing and reports whether it completed the sector.
func (s *Scoring) RecordHit(perfect bool) bool {
	if s.Won() {
		return true
	}
	s.RingsLanded++
	if perfect {
		s.PerfectHits++
		s.Score += s.cfg.PerfectPoints
	} else {
		s.Score += s.cfg.HitPoints
	}
	return s.Won()
}

// Won reports whether enough rings have landed.
func (s *Scoring) Won() bool {
	return s.RingsLanded >= s.ringsToWin
}

// RingsRemaining returns how many landings are still needed.
func (s *Scoring) RingsRemaining() int {
	if r := s.ringsToWin - s.RingsLanded; r > 0 {
		return r
	}
	return 0
}

// Outcome builds the run result. Losses always carry zero stars.
func (s *Scoring) Outcome(levelID int, success bool) Outcome {
	o := Outcome{
		LevelID:     levelID,
		Success:     success,
		Score:       s.Score,
		PerfectHits: s.PerfectHits,
	}
	if success {
		o.Stars = Stars(s.PerfectHits, s.ringsToWin)
	}
	return o
}
