// component/movement.go
package component

// Position is the top-left corner of the entity box in arena coordinates.
type Position struct {
	X, Y float64
}

// Velocity is the displacement per tick.
type Velocity struct {
	X, Y float64
}

// Size is the axis-aligned box used for collision and drawing.
type Size struct {
	W, H float64
}

// Center returns the middle of a box anchored at pos.
func Center(pos *Position, size *Size) (float64, float64) {
	return pos.X + size.W/2, pos.Y + size.H/2
}
