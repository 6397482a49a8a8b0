package game

import (
	"math"

	"github.com/Shun-H1115/viscoelastic-fluid/render"
)

// Projectile is a fired bullet. Alive is cleared once it leaves the
// viewport; a dead projectile never comes back.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alive  bool
}

// FireProjectile launches a projectile from origin toward target at the
// fixed launch speed. A zero-length direction (origin == target) cannot be
// normalized, so the shot is rejected instead of dividing by zero.
func FireProjectile(ox, oy, tx, ty float64) (Projectile, bool) {
	dx := tx - ox
	dy := ty - oy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return Projectile{}, false
	}
	return Projectile{
		X:      ox,
		Y:      oy,
		VX:     dx / dist * ProjectileSpeed,
		VY:     dy / dist * ProjectileSpeed,
		Radius: ProjectileRadius,
		Alive:  true,
	}, true
}

// Step advances the projectile and deactivates it once its center is
// strictly outside the viewport.
func (b *Projectile) Step(dt, width, height float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
	if b.X < 0 || b.X > width || b.Y < 0 || b.Y > height {
		b.Alive = false
	}
}

// Hits reports whether the projectile overlaps the particle. Touching
// exactly at the radius sum does not count.
func (b *Projectile) Hits(p *Particle) bool {
	return math.Hypot(p.X-b.X, p.Y-b.Y) < b.Radius+ParticleRadius
}

// HitsField reports first contact with any particle in the field.
func (b *Projectile) HitsField(f *Field) bool {
	for i := range f.Particles {
		if b.Hits(&f.Particles[i]) {
			return true
		}
	}
	return false
}

// Snapshot returns the projectile's draw record for the current frame.
func (b *Projectile) Snapshot() render.Circle {
	return render.Circle{
		Kind:   render.KindProjectile,
		X:      b.X,
		Y:      b.Y,
		Radius: b.Radius,
		Color:  render.ShotRed,
	}
}
