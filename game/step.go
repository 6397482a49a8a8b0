package game

import "github.com/Shun-H1115/viscoelastic-fluid/render"

// Step advances the simulation by dt seconds and returns the frame's draw
// records. The phase order is fixed: one-time field generation, fire
// events, projectile stepping + impact scan, then (only after rupture)
// gravity, springs and integration, then snapshot and dead-projectile
// cleanup. Projectiles keep flying after rupture; the impact scan stops
// mattering once Ruptured is set.
//
// dt is frame-rate dependent and untrusted: non-positive values advance
// nothing, values above MaxStepSeconds are clamped so a frame stall cannot
// blow up the spring integration.
func Step(s *State, dt float64, in Input) []render.Circle {
	s.Tick++

	if dt < 0 {
		dt = 0
	}
	if dt > MaxStepSeconds {
		dt = MaxStepSeconds
	}

	if !s.Initialized {
		if in.ViewportW <= 0 || in.ViewportH <= 0 {
			return nil
		}
		s.Field = Generate(in.ViewportW/2, in.ViewportH/2.5, ParticleCount, ClusterRadius)
		s.Initialized = true
	}

	if in.Fire {
		if b, ok := FireProjectile(in.ViewportW/2, in.ViewportH, in.FireX, in.FireY); ok {
			s.Projectiles = append(s.Projectiles, b)
		}
	}

	for i := range s.Projectiles {
		b := &s.Projectiles[i]
		b.Step(dt, in.ViewportW, in.ViewportH)
		if !s.Ruptured && b.Alive && b.HitsField(s.Field) {
			s.Ruptured = true
		}
	}

	if s.Ruptured {
		s.Field.ApplyGravity()
		ApplySprings(s.Field)
		s.Field.Integrate(dt, in.ViewportH)
	}

	out := make([]render.Circle, 0, len(s.Field.Particles)+len(s.Projectiles))
	out = s.Field.AppendSnapshot(out)
	for i := range s.Projectiles {
		if s.Projectiles[i].Alive {
			out = append(out, s.Projectiles[i].Snapshot())
		}
	}

	live := s.Projectiles[:0]
	for _, b := range s.Projectiles {
		if b.Alive {
			live = append(live, b)
		}
	}
	s.Projectiles = live

	return out
}
