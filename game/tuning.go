package game

const (
	ParticleRadius = 3.0  // visual + collision radius of one water particle
	ParticleCount  = 1000 // target number of particles in the cluster
	ClusterRadius  = 60.0 // radius of the initial balloon sphere

	RestLength = 6.0   // natural spring length between neighboring particles
	Stiffness  = 300.0 // Hooke constant after rupture
	Damping    = 2.0   // viscous damping along the spring axis

	GravityY    = 500.0 // constant downward force on every particle
	Restitution = -0.3  // vertical velocity multiplier on a floor bounce

	ProjectileSpeed  = 800.0
	ProjectileRadius = 5.0

	RingPitch     = ParticleRadius * 2.0 // radial distance between layout rings
	ArcSpacing    = ParticleRadius * 2.5 // target arc length between ring neighbors
	MinRingPoints = 6                    // floor for any non-center ring

	SpringCutoff      = RestLength * 2.0 // pairs farther apart exert no force
	MinSpringDistance = 0.01             // below this the pair direction is unusable

	MaxStepSeconds = 0.05 // dt clamp; keeps the explicit spring term stable after a frame stall
)
