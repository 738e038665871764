package game

import "math"

// Particle is a short-lived visual spark in board-cell coordinate space.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Col     RGB
}

// ParticleSystem drives the burst effects on eat and game over. Purely
// cosmetic: it reacts to engine events and never feeds anything back.
type ParticleSystem struct {
	P   []Particle
	rng *Rand
}

func NewParticleSystem(capacity int, seed uint64) *ParticleSystem {
	return &ParticleSystem{
		P:   make([]Particle, 0, capacity),
		rng: NewRand(seed),
	}
}

// SpawnBurst emits a ring of sparks from the center of a board cell.
func (ps *ParticleSystem) SpawnBurst(at Cell, count int, col RGB) {
	for i := 0; i < count; i++ {
		if len(ps.P) == cap(ps.P) {
			break
		}
		ang := 2 * math.Pi * float64(i) / float64(count)
		spd := 2.0 + ps.rng.Float64()*3.0
		life := 0.25 + ps.rng.Float64()*0.3
		ps.P = append(ps.P, Particle{
			X:       float64(at.X) + 0.5,
			Y:       float64(at.Y) + 0.5,
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			Life:    life,
			MaxLife: life,
			Size:    0.14 + ps.rng.Float64()*0.12,
			Col:     col,
		})
	}
}

// Update advances particles and compacts out the dead ones.
func (ps *ParticleSystem) Update(dt float64) {
	w := 0
	for i := range ps.P {
		p := ps.P[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= 1 - 2.5*dt
		p.VY *= 1 - 2.5*dt
		ps.P[w] = p
		w++
	}
	ps.P = ps.P[:w]
}

// Render queues live particles as fading circle sprites.
func (ps *ParticleSystem) Render(r *Renderer, fbW int) {
	s := float32(fbW) / WindowWidth
	for i := range ps.P {
		p := &ps.P[i]
		px := (float32(BoardLeft) + float32(p.X)*CellPixels) * s
		py := (float32(BoardTop) + float32(p.Y)*CellPixels) * s
		alpha := float32(clampF(p.Life/p.MaxLife, 0, 1))
		r.Sprite(px, py, float32(p.Size)*CellPixels*s, p.Col, alpha, 1)
	}
}
