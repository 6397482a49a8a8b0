package game

import (
	"math"
	"testing"
)

func TestFireProjectileNormalizesDirection(t *testing.T) {
	b, ok := FireProjectile(0, 0, 30, 40)
	if !ok {
		t.Fatalf("expected fire to succeed")
	}
	if !b.Alive {
		t.Fatalf("expected fired projectile to be alive")
	}
	speed := math.Hypot(b.VX, b.VY)
	if math.Abs(speed-ProjectileSpeed) > 1e-9 {
		t.Fatalf("launch speed = %f, want %f", speed, ProjectileSpeed)
	}
	// Direction 3:4 regardless of target distance.
	if math.Abs(b.VX/b.VY-0.75) > 1e-9 {
		t.Fatalf("direction off: VX=%f VY=%f", b.VX, b.VY)
	}
}

func TestFireProjectileRejectsCoincidentTarget(t *testing.T) {
	b, ok := FireProjectile(400, 800, 400, 800)
	if ok {
		t.Fatalf("expected fire at own origin to be rejected")
	}
	if b.Alive {
		t.Fatalf("rejected shot must not be alive")
	}
}

func TestProjectileDiesOutsideViewport(t *testing.T) {
	// Straight up across an 800px viewport at speed 800: gone within one
	// simulated second.
	b, ok := FireProjectile(400, 800, 400, 0)
	if !ok {
		t.Fatalf("expected fire to succeed")
	}

	const dt = 1.0 / 60
	for tick := 1; tick <= 62; tick++ {
		b.Step(dt, 800, 800)
		if !b.Alive {
			if elapsed := float64(tick) * dt; elapsed > 1.0+dt {
				t.Fatalf("projectile died late: %f s", elapsed)
			}
			return
		}
	}
	t.Fatalf("projectile still alive after crossing the viewport")
}

func TestProjectileAliveOnBoundary(t *testing.T) {
	b := Projectile{X: 0, Y: 400, Radius: ProjectileRadius, Alive: true}
	b.Step(1.0/60, 800, 800)
	if !b.Alive {
		t.Fatalf("touching the boundary must not deactivate")
	}

	b = Projectile{X: -0.001, Y: 400, Radius: ProjectileRadius, Alive: true}
	b.Step(1.0/60, 800, 800)
	if b.Alive {
		t.Fatalf("strictly outside the boundary must deactivate")
	}
}

func TestHitsStrictBoundary(t *testing.T) {
	b := Projectile{X: 0, Y: 0, Radius: ProjectileRadius, Alive: true}
	sum := ProjectileRadius + ParticleRadius

	if b.Hits(&Particle{X: sum, Y: 0}) {
		t.Fatalf("touching exactly at the radius sum must not count as a hit")
	}
	if !b.Hits(&Particle{X: sum - 1e-6, Y: 0}) {
		t.Fatalf("expected a hit just inside the radius sum")
	}
	if !b.Hits(&Particle{X: 0, Y: -(sum - 1e-6)}) {
		t.Fatalf("hit test must be direction independent")
	}
}

func TestHitsFieldFirstContact(t *testing.T) {
	f := &Field{Particles: []Particle{
		{X: 500, Y: 500},
		{X: 10, Y: 0},
	}}
	b := Projectile{X: 0, Y: 0, Radius: ProjectileRadius, Alive: true}

	if b.HitsField(f) {
		t.Fatalf("no particle overlaps yet")
	}
	b.X = 3
	if !b.HitsField(f) {
		t.Fatalf("expected contact with the near particle")
	}
}
