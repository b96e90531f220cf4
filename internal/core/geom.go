// Package core provides the value types shared by the tile engine: positions,
// colors, render attributes and the dirty flag. It has no external
// dependencies so map and render logic built on it stays pure and testable.
package core

import "fmt"

// Position is an immutable integer 2D vector. It is used both as a grid
// coordinate and as a displacement.
// X increases to the right, Y increases downward (screen coordinates).
type Position struct {
	X int
	Y int
}

// Unit vectors for the four movement directions.
var (
	Up    = Position{X: 0, Y: -1}
	Down  = Position{X: 0, Y: 1}
	Left  = Position{X: -1, Y: 0}
	Right = Position{X: 1, Y: 0}
)

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the component-wise sum.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul returns the component-wise product.
func (p Position) Mul(o Position) Position {
	return Position{X: p.X * o.X, Y: p.Y * o.Y}
}

// Scale multiplies both components by n.
func (p Position) Scale(n int) Position {
	return Position{X: p.X * n, Y: p.Y * n}
}

// Div returns the component-wise floor quotient.
// Panics on a zero component, like integer division.
func (p Position) Div(o Position) Position {
	return Position{X: FloorDiv(p.X, o.X), Y: FloorDiv(p.Y, o.Y)}
}

// DivScalar floor-divides both components by n.
func (p Position) DivScalar(n int) Position {
	return Position{X: FloorDiv(p.X, n), Y: FloorDiv(p.Y, n)}
}

// Neg returns the position mirrored through the origin.
func (p Position) Neg() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// FloorDiv divides a by b rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
