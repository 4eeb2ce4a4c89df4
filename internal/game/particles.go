package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Particle represents a single particle in the system
type Particle struct {
	X, Y       float64
	VX, VY     float64
	Life       float64 // 0-1, counts down
	MaxLife    float64
	Size       float64
	StartSize  float64
	EndSize    float64
	StartColor color.NRGBA
	EndColor   color.NRGBA
	Rotation   float64
	RotSpeed   float64
	Shape      string // "circle", "square", "glyph"
	Glyph      string // "0" or "1" for glyph particles
	Active     bool
}

// ParticleEmitter manages a pool of particles
type ParticleEmitter struct {
	Particles     []*Particle
	MaxParticles  int
	Active        bool
	X, Y          float64
	Spread        float64 // emission arc in radians
	BaseAngle     float64 // arc center
	Speed         float64
	SpeedVariance float64
	Life          float64
	LifeVariance  float64
	Size          float64
	SizeVariance  float64
	StartColor    color.NRGBA
	EndColor      color.NRGBA
	Shape         string
	EmissionRate  float64 // particles per second
	TimeSinceEmit float64
	Duration      float64 // seconds, -1 for infinite
	TimeAlive     float64
	Gravity       float64
	Drag          float64

	// Seek pulls every particle toward a point, used by the
	// purchase flight effect.
	SeekX, SeekY float64
	SeekStrength float64
}

// ParticleSystem manages multiple emitters
type ParticleSystem struct {
	Emitters []*ParticleEmitter
}

// NewParticleSystem creates a new particle system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{Emitters: make([]*ParticleEmitter, 0)}
}

// NewParticleEmitter creates an emitter with sane defaults
func NewParticleEmitter(x, y float64, maxParticles int) *ParticleEmitter {
	e := &ParticleEmitter{
		X:             x,
		Y:             y,
		MaxParticles:  maxParticles,
		Active:        true,
		Particles:     make([]*Particle, maxParticles),
		Spread:        2 * math.Pi,
		Speed:         100,
		SpeedVariance: 20,
		Life:          1.0,
		LifeVariance:  0.2,
		Size:          4,
		SizeVariance:  1,
		StartColor:    color.NRGBA{0, 230, 255, 255},
		EndColor:      color.NRGBA{0, 120, 180, 0},
		Shape:         "circle",
		EmissionRate:  50,
		Duration:      -1,
		Drag:          0.98,
	}
	for i := 0; i < maxParticles; i++ {
		e.Particles[i] = &Particle{Active: false}
	}
	return e
}

// Update advances all emitters, dropping finished ones
func (ps *ParticleSystem) Update(dt float64) {
	for i := len(ps.Emitters) - 1; i >= 0; i-- {
		e := ps.Emitters[i]
		if !e.Active {
			ps.Emitters = append(ps.Emitters[:i], ps.Emitters[i+1:]...)
			continue
		}
		e.Update(dt)
	}
}

// Draw renders all particles
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, e := range ps.Emitters {
		e.Draw(screen)
	}
}

// AddEmitter adds a new emitter to the system
func (ps *ParticleSystem) AddEmitter(e *ParticleEmitter) {
	ps.Emitters = append(ps.Emitters, e)
}

// ActiveCount reports live particles across all emitters
func (ps *ParticleSystem) ActiveCount() int {
	n := 0
	for _, e := range ps.Emitters {
		for _, p := range e.Particles {
			if p.Active {
				n++
			}
		}
	}
	return n
}

// Update advances the emitter and its particles
func (e *ParticleEmitter) Update(dt float64) {
	e.TimeAlive += dt

	if e.Duration > 0 && e.TimeAlive >= e.Duration {
		// Let already-emitted particles finish before removal.
		e.EmissionRate = 0
		if !e.anyActive() {
			e.Active = false
			return
		}
	}

	e.TimeSinceEmit += dt
	if e.EmissionRate > 0 {
		toEmit := int(e.TimeSinceEmit * e.EmissionRate)
		if toEmit > 0 {
			e.TimeSinceEmit -= float64(toEmit) / e.EmissionRate
			for i := 0; i < toEmit; i++ {
				e.emitParticle()
			}
		}
	}

	for _, p := range e.Particles {
		if !p.Active {
			continue
		}
		if e.SeekStrength > 0 {
			dx := e.SeekX - p.X
			dy := e.SeekY - p.Y
			dist := math.Hypot(dx, dy)
			if dist < 12 {
				p.Active = false
				continue
			}
			p.VX += dx / dist * e.SeekStrength * dt
			p.VY += dy / dist * e.SeekStrength * dt
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += e.Gravity * dt
		p.VX *= e.Drag
		p.VY *= e.Drag
		p.Rotation += p.RotSpeed * dt

		p.Life -= dt / p.MaxLife
		if p.Life <= 0 {
			p.Active = false
			continue
		}
		t := 1.0 - p.Life
		p.Size = p.StartSize + (p.EndSize-p.StartSize)*t
	}
}

func (e *ParticleEmitter) anyActive() bool {
	for _, p := range e.Particles {
		if p.Active {
			return true
		}
	}
	return false
}

// Draw renders the emitter's particles
func (e *ParticleEmitter) Draw(screen *ebiten.Image) {
	for _, p := range e.Particles {
		if !p.Active {
			continue
		}
		t := 1.0 - p.Life
		col := lerpColor(p.StartColor, p.EndColor, t)

		switch p.Shape {
		case "square":
			half := float32(p.Size)
			vector.DrawFilledRect(screen, float32(p.X)-half, float32(p.Y)-half, half*2, half*2, col, true)
		case "glyph":
			drawGlyphDot(screen, p.X, p.Y, p.Size, p.Glyph, col)
		default:
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), col, true)
		}
	}
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// drawGlyphDot draws a tiny 0 or 1 as vector strokes so glyph
// particles stay cheap.
func drawGlyphDot(screen *ebiten.Image, x, y, size float64, glyph string, col color.NRGBA) {
	if glyph == "1" {
		vector.DrawFilledRect(screen, float32(x-size/4), float32(y-size), float32(size/2), float32(size*2), col, true)
		return
	}
	vector.StrokeCircle(screen, float32(x), float32(y), float32(size), float32(size/2), col, true)
}

func (e *ParticleEmitter) emitParticle() {
	var p *Particle
	for _, cand := range e.Particles {
		if !cand.Active {
			p = cand
			break
		}
	}
	if p == nil {
		return
	}

	p.Active = true
	p.X = e.X
	p.Y = e.Y

	angle := e.BaseAngle + rand.Float64()*e.Spread - e.Spread/2
	speed := e.Speed + rand.Float64()*e.SpeedVariance - e.SpeedVariance/2
	p.VX = math.Cos(angle) * speed
	p.VY = math.Sin(angle) * speed

	p.Life = 1.0
	p.MaxLife = e.Life + rand.Float64()*e.LifeVariance - e.LifeVariance/2
	if p.MaxLife < 0.05 {
		p.MaxLife = 0.05
	}

	p.StartSize = e.Size + rand.Float64()*e.SizeVariance - e.SizeVariance/2
	p.EndSize = p.StartSize * 0.1
	p.Size = p.StartSize

	p.StartColor = e.StartColor
	p.EndColor = e.EndColor

	p.Rotation = 0
	p.RotSpeed = (rand.Float64() - 0.5) * 10

	p.Shape = e.Shape
	if p.Shape == "glyph" {
		if rand.Intn(2) == 0 {
			p.Glyph = "0"
		} else {
			p.Glyph = "1"
		}
	}
}

// ClickBurst spawns a short radial burst at the click point.
func (ps *ParticleSystem) ClickBurst(x, y float64, theme *CircuitTheme) {
	e := NewParticleEmitter(x, y, 24)
	e.Speed = 140
	e.SpeedVariance = 60
	e.Life = 0.5
	e.LifeVariance = 0.2
	e.Size = 3
	e.SizeVariance = 1.5
	e.StartColor = theme.Primary
	e.EndColor = color.NRGBA{theme.Primary.R, theme.Primary.G, theme.Primary.B, 0}
	e.Shape = "glyph"
	e.EmissionRate = 600
	e.Duration = 0.08
	ps.AddEmitter(e)
}

// PurchaseFlight streams particles from a card toward the
// accumulator.
func (ps *ParticleSystem) PurchaseFlight(fromX, fromY, toX, toY float64, theme *CircuitTheme) {
	e := NewParticleEmitter(fromX, fromY, 32)
	e.Speed = 60
	e.SpeedVariance = 40
	e.Life = 2.0
	e.Size = 3
	e.StartColor = theme.Accent
	e.EndColor = color.NRGBA{theme.Accent.R, theme.Accent.G, theme.Accent.B, 40}
	e.EmissionRate = 120
	e.Duration = 0.2
	e.Drag = 0.99
	e.SeekX = toX
	e.SeekY = toY
	e.SeekStrength = 900
	ps.AddEmitter(e)
}

// RebirthCelebration fills the screen center with a golden shower.
func (ps *ParticleSystem) RebirthCelebration(x, y float64, theme *CircuitTheme) {
	e := NewParticleEmitter(x, y, 160)
	e.Speed = 260
	e.SpeedVariance = 140
	e.Life = 1.6
	e.LifeVariance = 0.6
	e.Size = 5
	e.SizeVariance = 3
	e.StartColor = theme.Gold
	e.EndColor = color.NRGBA{theme.Gold.R, theme.Gold.G, theme.Gold.B, 0}
	e.Shape = "square"
	e.EmissionRate = 800
	e.Duration = 0.25
	e.Gravity = 180
	ps.AddEmitter(e)
}

// CompressionSparkles rise gently inside the compression panel.
func (ps *ParticleSystem) CompressionSparkles(x, y, width float64, theme *CircuitTheme) {
	e := NewParticleEmitter(x+rand.Float64()*width, y, 40)
	e.BaseAngle = -math.Pi / 2
	e.Spread = math.Pi / 6
	e.Speed = 30
	e.SpeedVariance = 15
	e.Life = 1.8
	e.LifeVariance = 0.5
	e.Size = 2
	e.SizeVariance = 1
	e.StartColor = theme.Secondary
	e.EndColor = color.NRGBA{theme.Secondary.R, theme.Secondary.G, theme.Secondary.B, 0}
	e.EmissionRate = 12
	e.Duration = 0.4
	ps.AddEmitter(e)
}

// AmbientMotes drift slowly across the background.
func (ps *ParticleSystem) AmbientMotes(width, height float64, theme *CircuitTheme) {
	e := NewParticleEmitter(rand.Float64()*width, rand.Float64()*height, 16)
	e.Speed = 12
	e.SpeedVariance = 8
	e.Life = 4
	e.LifeVariance = 1.5
	e.Size = 1.5
	e.SizeVariance = 0.8
	e.StartColor = color.NRGBA{theme.Primary.R, theme.Primary.G, theme.Primary.B, 70}
	e.EndColor = color.NRGBA{theme.Primary.R, theme.Primary.G, theme.Primary.B, 0}
	e.EmissionRate = 2
	e.Duration = 1
	e.Drag = 1
	ps.AddEmitter(e)
}
