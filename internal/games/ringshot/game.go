// Package ringshot implements the ringshot dart simulation: a slingshot pull
// launches a dart under gravity toward a moving, pulsing target that may be
// guarded by an orbiting obstacle.
package ringshot

import (
	"math/rand"

	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
)

// Effect sizes per event.
const (
	perfectParticles = 30
	perfectSpeedMult = 1.5
	hitParticles     = 10
	missParticles    = 30
	textRise         = 50 // Labels spawn this far above the target
)

// Options configures a Game. Zero-valued fields get defaults.
type Options struct {
	Level  LevelConfig
	Tuning config.RingshotConfig
	Audio  Audio
	Streak int

	// DisableShake keeps the playfield still. Shake is still simulated.
	DisableShake bool

	// OnOutcome is invoked exactly once per run, after the win or loss delay.
	OnOutcome func(Outcome)

	// OnExit is invoked when the player aborts the run.
	OnExit func()
}

// Game drives one run of one sector. It owns all mutable simulation state;
// readers get copies through Snapshot.
type Game struct {
	level     LevelConfig
	tune      config.RingshotConfig
	audio     Audio
	onOutcome func(Outcome)
	onExit    func()
	noShake   bool

	motionModel MotionModel
	collision   CollisionEngine
	aim         *AimController
	effects     *Effects
	scoring     *Scoring
	transitions transitionQueue
	renderRng   *rand.Rand

	config    core.RuntimeConfig
	tickCount uint64
	elapsed   float64
	motion    Motion
	dart      *Projectile
	pinned    *pinnedDart
	pinSeq    uint64
	shake     float64
	streak    int

	concluded bool
	won       bool
	delivered bool
	outcome   Outcome
	exited    bool
	paused    bool
}

// New creates a game for opts.Level. Call Reset before stepping.
func New(opts Options) *Game {
	if opts.Tuning.Physics.MaxPower == 0 {
		opts.Tuning = config.DefaultRingshotConfig()
	}
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}

	g := &Game{
		level:     opts.Level,
		tune:      opts.Tuning,
		audio:     opts.Audio,
		onOutcome: opts.OnOutcome,
		onExit:    opts.OnExit,
		streak:    opts.Streak,
		noShake:   opts.DisableShake,
	}
	g.motionModel = NewMotionModel(g.level, g.tune.World, g.tune.Collision)
	g.collision = NewCollisionEngine(g.tune.World, g.tune.Collision, g.motionModel)
	g.aim = NewAimController(g.tune.Physics)
	g.effects = NewEffects(0)
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ringshot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ringshot - " + g.level.Title()
}

// Level returns the sector being played.
func (g *Game) Level() LevelConfig {
	return g.level
}

// Reset initializes or restarts the run. Callbacks and the streak are kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.tickCount = 0
	g.elapsed = 0
	g.motion = g.motionModel.Initial()
	g.dart = nil
	g.pinned = nil
	g.pinSeq = 0
	g.shake = 0
	g.concluded = false
	g.won = false
	g.delivered = false
	g.outcome = Outcome{}
	g.exited = false
	g.paused = false

	g.aim.Cancel()
	g.effects.Reset(cfg.Seed)
	g.scoring = NewScoring(g.tune.Scoring, g.level.RingsToWin)
	g.transitions.drop()
	g.renderRng = rand.New(rand.NewSource(cfg.Seed + 1))
}

// SetStreak sets the win streak read at the next launch.
func (g *Game) SetStreak(n int) {
	g.streak = n
}

// Streak returns the current win streak.
func (g *Game) Streak() int {
	return g.streak
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.exited {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBack) {
		g.Exit()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.delivered {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}

	g.advance()

	return core.StepResult{State: g.State()}
}

// handlePointer feeds one pointer event to the aim controller.
// Gestures are ignored while a dart is in flight or once the run has concluded.
func (g *Game) handlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerDown:
		if g.concluded || g.dart != nil {
			return
		}
		g.aim.Begin(ev.Pos)
	case core.PointerMove:
		g.aim.Move(ev.Pos)
	case core.PointerUp:
		if launch, ok := g.aim.Release(); ok {
			g.launch(launch)
		}
	}
}

// launch spawns a dart. The streak is read here so a change mid-flight does
// not resize the dart.
func (g *Game) launch(l Launch) {
	g.dart = NewProjectile(g.spawnPoint(), l, BonusScale(g.streak, g.tune.Scoring))
	g.audio.Shoot()
}

// advance runs one simulation tick: motion, projectile, collision, effects,
// then due transitions.
func (g *Game) advance() {
	g.tickCount++
	g.elapsed += g.tune.Physics.TimeStep

	g.decayShake()

	g.motion = g.motionModel.Advance(g.motion, g.elapsed)
	if g.pinned != nil {
		g.pinned.follow(g.motion.Target)
	}

	if g.dart != nil && g.dart.Active {
		g.dart.Advance(g.tune.Physics.Gravity)

		c := g.collision.Check(g.dart, g.motion)
		switch {
		case c.Kind.Miss():
			g.miss()
		case c.Kind == HitTarget:
			g.land(c)
		}
	}

	g.effects.Update()

	for _, t := range g.transitions.due(g.tickCount) {
		if g.exited {
			break
		}
		g.fire(t)
	}
}

func (g *Game) decayShake() {
	if g.shake > 0 {
		g.shake *= g.tune.Effects.ShakeDecay
	}
	if g.shake < g.tune.Effects.ShakeCutoff {
		g.shake = 0
	}
}

// land pins the dart to the target and applies scoring immediately.
// The pinned dart is cosmetic; the next gesture may start right away.
func (g *Game) land(c Collision) {
	d := *g.dart
	d.Active = false
	d.Landed = true
	g.dart = nil

	g.pinSeq++
	g.pinned = &pinnedDart{dart: d, offset: c.Offset}
	g.pinned.follow(g.motion.Target)
	g.transitions.schedule(g.tickCount, g.config.MsToTicks(g.tune.Timing.PinMs), transitionClearPin, g.pinSeq)

	won := g.scoring.RecordHit(c.Perfect)

	target := g.motion.Target
	if c.Perfect {
		g.shake = g.tune.Effects.ShakePerfect
		g.audio.Perfect()
		g.effects.Burst(target, core.ColorAccent, perfectParticles, perfectSpeedMult)
		g.effects.Shockwave(target, g.level.TargetRadius)
		g.effects.Text(target.Sub(core.V(0, textRise)), "PERFECT!", core.ColorAccent)
	} else {
		g.shake = g.tune.Effects.ShakeHit
		g.audio.Hit()
		g.effects.Burst(target, core.ColorPrimary, hitParticles, 1)
	}

	if won {
		g.conclude(true)
	}
}

// miss retires the dart and concludes the run as a loss.
func (g *Game) miss() {
	w := g.tune.World
	at := core.V(core.ClampF(g.dart.X, 0, w.Width), core.ClampF(g.dart.Y, 0, w.Height))
	g.dart = nil

	g.shake = g.tune.Effects.ShakeMiss
	g.audio.Fail()
	g.effects.Burst(at, core.ColorDanger, missParticles, 1)
	g.effects.Text(core.V(w.Width/2, w.TargetY-textRise), "MISS!", core.ColorDanger)

	g.conclude(false)
}

// conclude stops accepting gestures and schedules the delayed outcome.
func (g *Game) conclude(success bool) {
	if g.concluded {
		return
	}
	g.concluded = true
	g.won = success
	g.aim.Cancel()

	if success {
		g.transitions.schedule(g.tickCount, g.config.MsToTicks(g.tune.Timing.WinDelayMs), transitionWin, 0)
	} else {
		g.transitions.schedule(g.tickCount, g.config.MsToTicks(g.tune.Timing.LossDelayMs), transitionLoss, 0)
	}
}

func (g *Game) fire(t firedTransition) {
	switch t.kind {
	case transitionClearPin:
		if g.pinned != nil && t.ref == g.pinSeq {
			g.pinned = nil
		}
	case transitionWin:
		g.audio.Win()
		g.deliver(true)
	case transitionLoss:
		g.deliver(false)
	}
}

// deliver reports the outcome. Stars are rated from the counters at this moment.
func (g *Game) deliver(success bool) {
	if g.delivered {
		return
	}
	g.delivered = true
	g.outcome = g.scoring.Outcome(g.level.ID, success)
	if g.onOutcome != nil {
		g.onOutcome(g.outcome)
	}
}

// Exit aborts the run: in-flight state and pending transitions are dropped,
// so no delayed outcome can fire afterwards. OnExit is invoked once.
func (g *Game) Exit() {
	if g.exited {
		return
	}
	g.exited = true
	g.transitions.drop()
	g.aim.Cancel()
	g.dart = nil
	g.pinned = nil
	if g.onExit != nil {
		g.onExit()
	}
}

// Outcome returns the delivered outcome, if any.
func (g *Game) Outcome() (Outcome, bool) {
	return g.outcome, g.delivered
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scoring.Score,
		GameOver: g.concluded,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Aiming reports whether a pull gesture is in progress.
func (g *Game) Aiming() bool {
	return g.aim.Aiming()
}

// Exited reports whether the run was aborted.
func (g *Game) Exited() bool {
	return g.exited
}

func (g *Game) spawnPoint() core.Vec2 {
	return core.V(g.tune.World.Width/2, g.tune.World.SpawnY)
}

// SpawnPoint returns the launch position in world coordinates.
func (g *Game) SpawnPoint() core.Vec2 {
	return g.spawnPoint()
}

// World returns the world dimensions.
func (g *Game) World() (float64, float64) {
	return g.tune.World.Width, g.tune.World.Height
}
