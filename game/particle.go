package game

// Particle is one point mass of the balloon. Forces accumulate into FX/FY
// over a tick and are fully consumed (and zeroed) by integrate, so the
// accumulator always starts a force phase at zero.
type Particle struct {
	X, Y   float64
	VX, VY float64
	FX, FY float64
}

func (p *Particle) ApplyForce(fx, fy float64) {
	p.FX += fx
	p.FY += fy
}

// integrate advances the particle with semi-implicit Euler (velocity from
// force first, position from the new velocity), consumes the accumulated
// force, then resolves contact against the floor line. Contact must be
// checked after the position update or the frame's motion is missed.
func (p *Particle) integrate(dt, floor float64) {
	p.VX += p.FX * dt
	p.VY += p.FY * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.FX = 0
	p.FY = 0

	if p.Y+ParticleRadius > floor {
		p.Y = floor - ParticleRadius
		p.VY *= Restitution
	}
}
