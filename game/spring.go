package game

import "math"

// ApplySprings accumulates the pairwise spring and damping forces of the
// ruptured balloon into the field. For every pair closer than SpringCutoff
// it applies a Hookean force proportional to the deviation from RestLength
// along the normalized separation, plus a damping force proportional to
// the relative velocity component along the same axis, equal and opposite
// on the two particles.
//
// This is a literal all-pairs scan. The cutoff is small relative to the
// cluster and the particle count is fixed, so no broad-phase is used.
func ApplySprings(f *Field) {
	ps := f.Particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[j].X - ps[i].X
			dy := ps[j].Y - ps[i].Y
			dist := math.Hypot(dx, dy)
			if dist >= SpringCutoff || dist <= MinSpringDistance {
				continue
			}
			nx := dx / dist
			ny := dy / dist

			// Positive stretch pulls the pair together, negative pushes apart.
			spring := Stiffness * (dist - RestLength)

			rvx := ps[j].VX - ps[i].VX
			rvy := ps[j].VY - ps[i].VY
			damp := Damping * (rvx*nx + rvy*ny)

			fx := (spring + damp) * nx
			fy := (spring + damp) * ny

			ps[i].ApplyForce(fx, fy)
			ps[j].ApplyForce(-fx, -fy)
		}
	}
}
