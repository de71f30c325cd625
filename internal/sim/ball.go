package sim

import "math"

const (
	// DefaultBallRadius is half of the 16px ball; power-of-two sizes keep the
	// edge arithmetic exact on a power-of-two arena.
	DefaultBallRadius = 8.0
	// BallSpeed is the velocity magnitude in pixels per tick.
	BallSpeed = 6.0
)

// Ball is one of the two moving painters.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Score  int
	Color  Color
}

// NewBall places a ball at (x, y) moving at BallSpeed along angleDeg.
func NewBall(x, y, radius, angleDeg float64, color Color) *Ball {
	rad := angleDeg * math.Pi / 180
	return &Ball{
		X:      x,
		Y:      y,
		DX:     BallSpeed * math.Cos(rad),
		DY:     BallSpeed * math.Sin(rad),
		Radius: radius,
		Color:  color,
	}
}

// Speed returns the magnitude of the velocity vector.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}
