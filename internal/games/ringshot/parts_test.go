package ringshot

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
)

func TestBuiltinSectorsValidate(t *testing.T) {
	levels := Sectors()
	if len(levels) != 15 {
		t.Fatalf("sectors = %d, expected 15", len(levels))
	}
	for i, l := range levels {
		if l.ID != i+1 {
			t.Errorf("sector %d has id %d", i, l.ID)
		}
		if err := l.Validate(); err != nil {
			t.Errorf("sector %d: %v", l.ID, err)
		}
	}
}

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name  string
		level LevelConfig
	}{
		{"zero rings", LevelConfig{ID: 1, TargetRadius: 40}},
		{"zero radius", LevelConfig{ID: 1, RingsToWin: 3}},
		{"negative speed", LevelConfig{ID: 1, RingsToWin: 3, TargetRadius: 40, ObstacleSpeed: -0.1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.level.Validate(); !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Validate() = %v, expected ErrInvalidLevel", err)
			}
		})
	}
}

func TestLevelsFromConfig(t *testing.T) {
	cfg := config.DefaultRingshotConfig()
	levels, err := LevelsFromConfig(cfg)
	if err != nil || len(levels) != 15 {
		t.Fatalf("built-in fallback: %d levels, err %v", len(levels), err)
	}

	cfg.Sectors = []config.SectorConfig{
		{ID: 7, Name: "Custom", RingsToWin: 2, TargetRadius: 30, ObstacleSpeed: 0.1},
		{ID: 9, RingsToWin: 1, TargetRadius: 60},
	}
	levels, err = LevelsFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 2 || !levels[0].HasObstacle() || levels[1].Title() != "Sector 9" {
		t.Errorf("levels = %+v", levels)
	}

	next, ok := NextLevel(levels, 7)
	if !ok || next.ID != 9 {
		t.Errorf("NextLevel(7) = %v, %v", next.ID, ok)
	}
	if _, ok := NextLevel(levels, 9); ok {
		t.Error("last level should have no successor")
	}
	if l, ok := FindLevel(levels, 7); !ok || l.Name != "Custom" {
		t.Errorf("FindLevel(7) = %+v, %v", l, ok)
	}

	cfg.Sectors[1].RingsToWin = 0
	if _, err := LevelsFromConfig(cfg); err == nil {
		t.Error("invalid sector should be rejected")
	}
}

func TestLevelPhase(t *testing.T) {
	levels := Sectors()
	want := map[int]string{1: "Basics", 4: "Movement", 9: "Pulsing", 10: "Obstacles", 15: "Chaos"}
	for id, phase := range want {
		l, _ := FindLevel(levels, id)
		if l.Phase() != phase {
			t.Errorf("sector %d phase = %s, expected %s", id, l.Phase(), phase)
		}
	}
}

func TestPowerMonotonicAndBounded(t *testing.T) {
	p := config.DefaultRingshotConfig().Physics
	prev := 0.0
	for d := 0.0; d <= 400; d += 0.5 {
		power := Power(p, d)
		if power < p.MinPower || power > p.MaxPower {
			t.Fatalf("Power(%v) = %v outside [%v, %v]", d, power, p.MinPower, p.MaxPower)
		}
		if power < prev {
			t.Fatalf("Power decreased at %v: %v < %v", d, power, prev)
		}
		prev = power
	}
}

func TestLaunchForDirections(t *testing.T) {
	p := config.DefaultRingshotConfig().Physics

	tests := []struct {
		name    string
		pull    core.Vec2
		heading float64
	}{
		{"up", core.V(0, -100), 0},
		{"right", core.V(100, 0), math.Pi / 2},
		{"left", core.V(-100, 0), 3 * math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, ok := LaunchFor(p, tc.pull)
			if !ok {
				t.Fatal("expected a launch")
			}
			if math.Abs(l.Heading-tc.heading) > 1e-9 {
				t.Errorf("heading = %v, expected %v", l.Heading, tc.heading)
			}
			if math.Abs(l.Velocity.Len()-l.Power) > 1e-9 {
				t.Errorf("|v| = %v, expected power %v", l.Velocity.Len(), l.Power)
			}
		})
	}

	if _, ok := LaunchFor(p, core.V(12, 15)); ok {
		t.Error("pull of length 19.2 should be inside the deadzone")
	}
	if _, ok := LaunchFor(p, core.V(12, 16)); !ok {
		t.Error("pull of length 20 should launch")
	}
}

func TestAimControllerLifecycle(t *testing.T) {
	a := NewAimController(config.DefaultRingshotConfig().Physics)

	a.Move(core.V(1, 1))
	if a.Aiming() {
		t.Fatal("move without begin should not start a gesture")
	}
	if _, ok := a.Release(); ok {
		t.Fatal("release without begin should not launch")
	}

	a.Begin(core.V(100, 100))
	a.Move(core.V(100, 200))
	g, ok := a.Gesture()
	if !ok || g.Pull() != core.V(0, -100) {
		t.Errorf("gesture = %+v, %v", g, ok)
	}

	if _, ok := a.Release(); !ok {
		t.Error("release should launch")
	}
	if a.Aiming() {
		t.Error("gesture should be discarded after release")
	}

	a.Begin(core.V(0, 0))
	a.Cancel()
	if _, ok := a.Release(); ok {
		t.Error("cancelled gesture should not launch")
	}
}

func TestTrajectory(t *testing.T) {
	pts := Trajectory(core.V(0, 0), core.V(1, -2), 0.5, 3)
	want := []core.Vec2{{X: 1, Y: -2}, {X: 2, Y: -3.5}, {X: 3, Y: -4.5}}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, expected %v", i, pts[i], want[i])
		}
	}
}

func TestMotionModel(t *testing.T) {
	cfg := config.DefaultRingshotConfig()

	still := NewMotionModel(LevelConfig{ID: 1, RingsToWin: 3, TargetRadius: 45}, cfg.World, cfg.Collision)
	m := still.Advance(still.Initial(), 3.2)
	if m.Target != core.V(200, 150) || m.Scale != 1 {
		t.Errorf("stationary target moved: %+v", m)
	}
	if _, ok := still.Obstacle(m); ok {
		t.Error("no obstacle expected")
	}

	level := LevelConfig{ID: 13, RingsToWin: 5, TargetSpeed: 0.06, TargetMoveRange: 100, ObstacleSpeed: 0.06, ScaleSpeed: 0.02, TargetRadius: 45}
	mm := NewMotionModel(level, cfg.World, cfg.Collision)
	s := mm.Initial()
	for i := 1; i <= 10; i++ {
		s = mm.Advance(s, float64(i)*0.016)
	}
	tEnd := 10 * 0.016

	wantX := 200 + math.Sin(tEnd*0.06*50)*100
	if math.Abs(s.Target.X-wantX) > 1e-9 || s.Target.Y != 150 {
		t.Errorf("target = %v, expected x %v", s.Target, wantX)
	}
	wantScale := 1 + math.Sin(tEnd*0.02*50)*0.2
	if math.Abs(s.Scale-wantScale) > 1e-9 {
		t.Errorf("scale = %v, expected %v", s.Scale, wantScale)
	}
	if math.Abs(s.ObstacleAngle-0.6) > 1e-9 {
		t.Errorf("obstacle angle = %v, expected 0.6", s.ObstacleAngle)
	}

	obs, ok := mm.Obstacle(s)
	if !ok {
		t.Fatal("expected an obstacle")
	}
	if d := core.Dist(obs, s.Target); math.Abs(d-(45*s.Scale+25)) > 1e-9 {
		t.Errorf("obstacle orbit = %v, expected %v", d, 45*s.Scale+25)
	}
}

func TestCollisionObstacleTakesPriority(t *testing.T) {
	cfg := config.DefaultRingshotConfig()
	// Pull the orbit inside the target so both tests can match at once
	cfg.Collision.ObstacleGap = -30

	level := LevelConfig{ID: 10, RingsToWin: 3, ObstacleSpeed: 0.05, TargetRadius: 45}
	mm := NewMotionModel(level, cfg.World, cfg.Collision)
	ce := NewCollisionEngine(cfg.World, cfg.Collision, mm)

	s := Motion{Target: core.V(200, 150), Scale: 1}
	obs, _ := mm.Obstacle(s)
	dart := &Projectile{X: obs.X, Y: obs.Y, Active: true}

	if core.Dist(dart.Pos(), s.Target) >= mm.HitRadius(s) {
		t.Fatal("setup: dart should also be inside the target")
	}
	if c := ce.Check(dart, s); c.Kind != HitObstacle {
		t.Errorf("Check() = %v, expected obstacle", c.Kind)
	}
}

func TestCollisionTiers(t *testing.T) {
	cfg := config.DefaultRingshotConfig()
	level := LevelConfig{ID: 7, RingsToWin: 3, ScaleSpeed: 0.03, TargetRadius: 45}
	mm := NewMotionModel(level, cfg.World, cfg.Collision)
	ce := NewCollisionEngine(cfg.World, cfg.Collision, mm)

	// Scaled target: hit radius 36, perfect radius 10.8
	s := Motion{Target: core.V(200, 150), Scale: 0.8}

	tests := []struct {
		name    string
		offset  float64
		kind    HitKind
		perfect bool
	}{
		{"center", 0, HitTarget, true},
		{"inside perfect", 10, HitTarget, true},
		{"just outside perfect", 11, HitTarget, false},
		{"rim", 35.9, HitTarget, false},
		{"outside scaled radius", 40, HitNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dart := &Projectile{X: 200 + tc.offset, Y: 150, Active: true}
			c := ce.Check(dart, s)
			if c.Kind != tc.kind || c.Perfect != tc.perfect {
				t.Errorf("Check() = %v perfect=%v, expected %v perfect=%v", c.Kind, c.Perfect, tc.kind, tc.perfect)
			}
		})
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		perfect, rings, stars int
	}{
		{3, 3, 3},
		{2, 3, 2},
		{1, 3, 1},
		{0, 3, 1},
		{2, 4, 2},
		{1, 4, 1},
		{7, 8, 2},
		{8, 8, 3},
		{3, 8, 1},
	}

	for _, tc := range tests {
		if got := Stars(tc.perfect, tc.rings); got != tc.stars {
			t.Errorf("Stars(%d, %d) = %d, expected %d", tc.perfect, tc.rings, got, tc.stars)
		}
	}
}

func TestScoringOutcome(t *testing.T) {
	s := NewScoring(config.DefaultRingshotConfig().Scoring, 2)
	if s.RecordHit(true) {
		t.Fatal("one of two rings should not win")
	}
	if !s.RecordHit(false) {
		t.Fatal("second ring should win")
	}
	if s.Score != 400 || s.RingsRemaining() != 0 {
		t.Errorf("score %d remaining %d", s.Score, s.RingsRemaining())
	}
	s.RecordHit(true)
	if s.RingsLanded != 2 {
		t.Errorf("landings after the win were counted: %d", s.RingsLanded)
	}

	if o := s.Outcome(5, true); o.Stars != 2 || o.LevelID != 5 {
		t.Errorf("win outcome = %+v", o)
	}
	if o := s.Outcome(5, false); o.Stars != 0 || o.Success {
		t.Errorf("loss outcome = %+v", o)
	}
}

func TestEffectsDecay(t *testing.T) {
	e := NewEffects(1)
	e.Burst(core.V(100, 100), core.ColorPrimary, 10, 1)
	e.Shockwave(core.V(100, 100), 45)
	e.Text(core.V(100, 50), "PERFECT!", core.ColorAccent)

	for _, p := range e.Particles {
		speed := math.Hypot(p.VX, p.VY)
		if speed < 2 || speed >= 7 {
			t.Errorf("particle speed %v outside [2, 7)", speed)
		}
		if p.Size < 2 || p.Size >= 5 {
			t.Errorf("particle size %v outside [2, 5)", p.Size)
		}
	}

	e.Update()
	if e.Texts[0].Y != 48 || e.Shockwaves[0].Radius != 53 {
		t.Errorf("after one update: text y %v wave radius %v", e.Texts[0].Y, e.Shockwaves[0].Radius)
	}

	for i := 0; i < 23; i++ {
		e.Update()
	}
	if len(e.Shockwaves) != 1 {
		t.Fatal("shockwave should still be visible after 24 ticks")
	}
	e.Update()
	e.Update()
	if len(e.Shockwaves) != 0 {
		t.Errorf("shockwave should be gone after 26 ticks, opacity %v", e.Shockwaves[0].Opacity)
	}
	if len(e.Particles) != 10 {
		t.Errorf("particles = %d, expected all alive at 26 ticks", len(e.Particles))
	}

	for i := 0; i < 60; i++ {
		e.Update()
	}
	if e.Active() {
		t.Errorf("effects alive after 86 ticks: %d particles %d texts", len(e.Particles), len(e.Texts))
	}
}

func TestEffectsSeeded(t *testing.T) {
	a, b := NewEffects(7), NewEffects(7)
	a.Burst(core.V(0, 0), core.ColorDanger, 5, 1)
	b.Burst(core.V(0, 0), core.ColorDanger, 5, 1)
	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatal("same seed should give identical particles")
		}
	}
}

func TestTransitionQueue(t *testing.T) {
	var q transitionQueue
	q.schedule(10, 9, transitionClearPin, 1)
	q.schedule(10, 30, transitionWin, 0)

	if got := q.due(18); len(got) != 0 {
		t.Errorf("due(18) = %v", got)
	}
	got := q.due(19)
	if len(got) != 1 || got[0].kind != transitionClearPin || got[0].ref != 1 {
		t.Errorf("due(19) = %v", got)
	}
	if q.size() != 1 {
		t.Errorf("size = %d, expected 1", q.size())
	}
	q.drop()
	if got := q.due(1000); len(got) != 0 {
		t.Errorf("dropped queue fired %v", got)
	}
}
