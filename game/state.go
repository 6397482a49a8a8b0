package game

// Internal truth authoritative simulation state

// State is the whole simulation: one particle field, the live projectiles,
// and the two one-way flags of the rupture state machine. Uninitialized
// (field not yet generated) moves to idle once the viewport size is known;
// idle moves to ruptured on first projectile impact and never back.
type State struct {
	Tick        int
	Field       *Field
	Projectiles []Projectile
	Initialized bool
	Ruptured    bool
}

// Input is one tick's worth of external events from the frame loop.
type Input struct {
	ViewportW float64
	ViewportH float64
	Fire      bool    // a click happened this tick (at most one)
	FireX     float64 // click target, valid when Fire is set
	FireY     float64
}
