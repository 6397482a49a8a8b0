package render

import "image/color"

// Kind tags what a draw record represents.
type Kind uint8

const (
	KindParticle Kind = iota
	KindProjectile
)

// Circle is one drawable shape emitted by the simulation for the current
// frame. The renderer consumes these in order; nothing else crosses the
// core/presentation boundary.
type Circle struct {
	Kind   Kind       `json:"kind"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Radius float64    `json:"radius"`
	Color  color.RGBA `json:"rgba"`
}

var (
	WaterBlue = color.RGBA{R: 102, G: 179, B: 255, A: 230}
	ShotRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)
