package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"
)

// Position is a point in the plane of the arm, expressed in the same units as the arm's link
// lengths. X is horizontal reach away from the elevator, Y is height.
type Position struct {
	X float64
	Y float64
}

// NewPosition returns the position (x, y).
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// PositionFromVector converts an r2 vector into a Position.
func PositionFromVector(v r2.Point) Position {
	return Position{X: v.X, Y: v.Y}
}

// PolarPosition returns the position at the given distance from the origin along the heading
// theta, in radians measured counterclockwise from +X.
func PolarPosition(distance, theta float64) Position {
	return Position{X: distance * math.Cos(theta), Y: distance * math.Sin(theta)}
}

// Vector returns the position as an r2 vector.
func (p Position) Vector() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Add returns p + o.
func (p Position) Add(o Position) Position {
	return PositionFromVector(p.Vector().Add(o.Vector()))
}

// Sub returns p - o.
func (p Position) Sub(o Position) Position {
	return PositionFromVector(p.Vector().Sub(o.Vector()))
}

// Norm returns the distance of p from the origin.
func (p Position) Norm() float64 {
	return p.Vector().Norm()
}

// Distance returns the euclidean distance between two positions.
func (p Position) Distance(o Position) float64 {
	return p.Sub(o).Norm()
}

// Angle returns the heading of p from the origin in radians, in (-π, π].
func (p Position) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Round returns p with both coordinates rounded half away from zero to the given number of
// decimal places.
func (p Position) Round(places int) Position {
	return Position{X: scalar.Round(p.X, places), Y: scalar.Round(p.Y, places)}
}

// AlmostEqual returns true if both coordinates are within epsilon of each other.
func (p Position) AlmostEqual(o Position, epsilon float64) bool {
	return scalar.EqualWithinAbs(p.X, o.X, epsilon) && scalar.EqualWithinAbs(p.Y, o.Y, epsilon)
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Position) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
