package domain

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is an integer coordinate on the grid. It is a value type and is safe
// to use as a map key.
type Point struct{ X, Y int }

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum of the two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of the two points.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Abs returns a copy with non-negative components.
func (p Point) Abs() Point {
	return Point{X: abs(p.X), Y: abs(p.Y)}
}

// Unit clamps each component to -1, 0 or 1.
func (p Point) Unit() Point {
	return Point{X: Clamp(p.X), Y: Clamp(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Clamp reduces v to -1, 0 or 1 depending on its sign.
func Clamp[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
