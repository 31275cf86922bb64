package ringshot

import (
	"math"

	"github.com/vovakirdan/ringshot/internal/core"
)

// AimPreview describes the gesture in progress for drawing the slingshot.
type AimPreview struct {
	Active     bool
	Gesture    AimGesture
	Valid      bool // Pull is past the deadzone
	Launch     Launch
	PowerPct   float64
	Trajectory []core.Vec2
}

// Snapshot is an immutable copy of everything the renderer and UI read.
// Slices are copies and may be kept by the caller.
type Snapshot struct {
	Tick    uint64
	Elapsed float64
	LevelID int

	Score          int
	RingsToWin     int
	RingsLanded    int
	RingsRemaining int
	PerfectHits    int

	Target        core.Vec2
	TargetScale   float64
	TargetRadius  float64
	HitRadius     float64
	PerfectRadius float64

	HasObstacle    bool
	Obstacle       core.Vec2
	ObstacleAngle  float64
	ObstacleRadius float64

	HasDart   bool
	Dart      Projectile
	HasPinned bool
	Pinned    Projectile

	Spawn      core.Vec2
	BonusScale float64
	Streak     int
	Aim        AimPreview

	Particles  []Particle
	Shockwaves []Shockwave
	Texts      []FloatingText
	Shake      float64

	Paused       bool
	Concluded    bool
	Won          bool
	OutcomeReady bool
	Outcome      Outcome
	Pending      int
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tickCount,
		Elapsed: g.elapsed,
		LevelID: g.level.ID,

		Score:          g.scoring.Score,
		RingsToWin:     g.level.RingsToWin,
		RingsLanded:    g.scoring.RingsLanded,
		RingsRemaining: g.scoring.RingsRemaining(),
		PerfectHits:    g.scoring.PerfectHits,

		Target:        g.motion.Target,
		TargetScale:   g.motion.Scale,
		TargetRadius:  g.level.TargetRadius,
		HitRadius:     g.motionModel.HitRadius(g.motion),
		PerfectRadius: g.motionModel.HitRadius(g.motion) * g.tune.Collision.PerfectFraction,

		ObstacleAngle:  g.motion.ObstacleAngle,
		ObstacleRadius: g.tune.Collision.ObstacleRadius,

		Spawn:      g.spawnPoint(),
		BonusScale: BonusScale(g.streak, g.tune.Scoring),
		Streak:     g.streak,

		Particles:  append([]Particle(nil), g.effects.Particles...),
		Shockwaves: append([]Shockwave(nil), g.effects.Shockwaves...),
		Texts:      append([]FloatingText(nil), g.effects.Texts...),
		Shake:      g.shake,

		Paused:       g.paused,
		Concluded:    g.concluded,
		Won:          g.won,
		OutcomeReady: g.delivered,
		Outcome:      g.outcome,
		Pending:      g.transitions.size(),
	}

	snap.Obstacle, snap.HasObstacle = g.motionModel.Obstacle(g.motion)

	if g.dart != nil {
		snap.HasDart = true
		snap.Dart = *g.dart
	}
	if g.pinned != nil {
		snap.HasPinned = true
		snap.Pinned = g.pinned.dart
	}

	if gesture, ok := g.aim.Gesture(); ok {
		snap.Aim.Active = true
		snap.Aim.Gesture = gesture
		if l, valid := LaunchFor(g.tune.Physics, gesture.Pull()); valid {
			snap.Aim.Valid = true
			snap.Aim.Launch = l
			snap.Aim.PowerPct = PowerPct(g.tune.Physics, l.Power)
			snap.Aim.Trajectory = Trajectory(snap.Spawn, l.Velocity, g.tune.Physics.Gravity, TrajectorySteps)
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	mixBool := func(b bool) {
		if b {
			mixInt(1)
		} else {
			mixInt(0)
		}
	}

	mix(snap.Elapsed)
	mixInt(snap.Score)
	mixInt(snap.RingsLanded)
	mixInt(snap.PerfectHits)
	mix(snap.Target.X)
	mix(snap.TargetScale)
	mix(snap.ObstacleAngle)
	mixBool(snap.HasDart)
	mix(snap.Dart.X)
	mix(snap.Dart.Y)
	mix(snap.Dart.VX)
	mix(snap.Dart.VY)
	mixBool(snap.HasPinned)
	mix(snap.Pinned.X)
	mix(snap.Pinned.Y)
	mix(snap.Shake)
	mixBool(snap.Concluded)
	mixBool(snap.Won)
	mixInt(snap.Outcome.Stars)

	for _, p := range snap.Particles {
		mix(p.X)
		mix(p.Y)
		mix(p.Life)
		mix(p.Size)
	}
	for _, s := range snap.Shockwaves {
		mix(s.Radius)
		mix(s.Opacity)
	}
	for _, t := range snap.Texts {
		mix(t.Y)
		mix(t.Life)
	}

	return h
}
