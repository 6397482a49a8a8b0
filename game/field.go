package game

import (
	"math"

	"github.com/Shun-H1115/viscoelastic-fluid/render"
)

// Field owns the particle cluster for the whole session. The slice is
// created once by Generate and never grows or shrinks afterwards.
type Field struct {
	Particles []Particle
}

// Generate lays particles out as concentric rings around (cx, cy): the
// center point first, then rings stepping RingPitch outward, each holding
// max(MinRingPoints, circumference/ArcSpacing) particles at equal angles.
// Generation stops once count particles are placed or the next ring would
// pass maxRadius, whichever comes first — a radius too small for count
// yields an under-filled field, which is intended behavior, not an error.
// The layout is fully deterministic in its arguments.
func Generate(cx, cy float64, count int, maxRadius float64) *Field {
	f := &Field{Particles: make([]Particle, 0, count)}
	for r := 0.0; len(f.Particles) < count; {
		n := 1
		if r > 0 {
			n = int(2 * math.Pi * r / ArcSpacing)
			if n < MinRingPoints {
				n = MinRingPoints
			}
		}
		for i := 0; i < n && len(f.Particles) < count; i++ {
			theta := float64(i) / float64(n) * 2 * math.Pi
			f.Particles = append(f.Particles, Particle{
				X: cx + r*math.Cos(theta),
				Y: cy + r*math.Sin(theta),
			})
		}
		r += RingPitch
		if r > maxRadius {
			break
		}
	}
	return f
}

// ApplyGravity adds the constant downward force to every accumulator.
func (f *Field) ApplyGravity() {
	for i := range f.Particles {
		f.Particles[i].ApplyForce(0, GravityY)
	}
}

// Integrate advances every particle by dt and resolves floor contact
// against the given floor line.
func (f *Field) Integrate(dt, floor float64) {
	for i := range f.Particles {
		f.Particles[i].integrate(dt, floor)
	}
}

// AppendSnapshot appends one draw record per particle to dst and returns
// the extended slice. The snapshot is rebuilt from scratch on every call.
func (f *Field) AppendSnapshot(dst []render.Circle) []render.Circle {
	for i := range f.Particles {
		dst = append(dst, render.Circle{
			Kind:   render.KindParticle,
			X:      f.Particles[i].X,
			Y:      f.Particles[i].Y,
			Radius: ParticleRadius,
			Color:  render.WaterBlue,
		})
	}
	return dst
}
