package ringshot

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ringshot/internal/core"
)

// Particle is a spark from a hit or miss burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  core.Color
	Size   float64
}

// Shockwave is an expanding ring drawn on perfect hits.
type Shockwave struct {
	X, Y    float64
	Radius  float64
	Opacity float64
}

// FloatingText is a label that drifts upward and fades.
type FloatingText struct {
	X, Y  float64
	Text  string
	Life  float64
	Color core.Color
}

// Effects owns the cosmetic decay objects. None of them feed back into
// collision or scoring.
type Effects struct {
	rng        *rand.Rand
	Particles  []Particle
	Shockwaves []Shockwave
	Texts      []FloatingText
}

// NewEffects creates an empty effects system with a seeded random source.
func NewEffects(seed int64) *Effects {
	return &Effects{rng: rand.New(rand.NewSource(seed))}
}

// Reset clears all effects and reseeds the random source.
func (e *Effects) Reset(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.Particles = e.Particles[:0]
	e.Shockwaves = e.Shockwaves[:0]
	e.Texts = e.Texts[:0]
}

// Burst spawns count particles at pos flying in random directions.
func (e *Effects) Burst(pos core.Vec2, color core.Color, count int, speedMult float64) {
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * math.Pi * 2
		speed := (e.rng.Float64()*5 + 2) * speedMult
		vel := core.FromAngle(angle, speed)
		e.Particles = append(e.Particles, Particle{
			X:     pos.X,
			Y:     pos.Y,
			VX:    vel.X,
			VY:    vel.Y,
			Life:  1,
			Color: color,
			Size:  e.rng.Float64()*3 + 2,
		})
	}
}

// Shockwave spawns a ring at pos with the given starting radius.
func (e *Effects) Shockwave(pos core.Vec2, radius float64) {
	e.Shockwaves = append(e.Shockwaves, Shockwave{X: pos.X, Y: pos.Y, Radius: radius, Opacity: 1})
}

// Text spawns a floating label at pos.
func (e *Effects) Text(pos core.Vec2, text string, color core.Color) {
	e.Texts = append(e.Texts, FloatingText{X: pos.X, Y: pos.Y, Text: text, Life: 1, Color: color})
}

// Update decays every effect by one tick and drops the expired ones.
func (e *Effects) Update() {
	particles := e.Particles[:0]
	for _, p := range e.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= 0.02
		p.Size *= 0.95
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	e.Particles = particles

	waves := e.Shockwaves[:0]
	for _, s := range e.Shockwaves {
		s.Radius += 8
		s.Opacity -= 0.04
		if s.Opacity > 0 {
			waves = append(waves, s)
		}
	}
	e.Shockwaves = waves

	texts := e.Texts[:0]
	for _, t := range e.Texts {
		t.Y -= 2
		t.Life -= 0.015
		if t.Life > 0 {
			texts = append(texts, t)
		}
	}
	e.Texts = texts
}

// Active reports whether any effect is still alive.
func (e *Effects) Active() bool {
	return len(e.Particles) > 0 || len(e.Shockwaves) > 0 || len(e.Texts) > 0
}
