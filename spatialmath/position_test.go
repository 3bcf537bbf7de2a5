package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestPositionArithmetic(t *testing.T) {
	a := NewPosition(30, 60)
	b := NewPosition(0, 60)

	test.That(t, a.Sub(b), test.ShouldResemble, NewPosition(30, 0))
	test.That(t, a.Add(b), test.ShouldResemble, NewPosition(30, 120))
	test.That(t, a.Distance(b), test.ShouldAlmostEqual, 30)
	test.That(t, NewPosition(3, 4).Norm(), test.ShouldAlmostEqual, 5)
	test.That(t, a.Vector(), test.ShouldResemble, r2.Point{X: 30, Y: 60})
	test.That(t, PositionFromVector(r2.Point{X: -1, Y: 2}), test.ShouldResemble, NewPosition(-1, 2))
}

func TestPositionAngle(t *testing.T) {
	test.That(t, NewPosition(1, 0).Angle(), test.ShouldAlmostEqual, 0)
	test.That(t, NewPosition(0, 1).Angle(), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, NewPosition(-1, 0).Angle(), test.ShouldAlmostEqual, math.Pi)
	test.That(t, NewPosition(5, -5).Angle(), test.ShouldAlmostEqual, -math.Pi/4)

	p := PolarPosition(25, math.Pi/2)
	test.That(t, p.AlmostEqual(NewPosition(0, 25), 1e-9), test.ShouldBeTrue)
}

func TestPositionRound(t *testing.T) {
	p := NewPosition(29.999999999, 60.004)
	test.That(t, p.Round(2), test.ShouldResemble, NewPosition(30, 60))
	test.That(t, NewPosition(1.234, -1.236).Round(2), test.ShouldResemble, NewPosition(1.23, -1.24))
	test.That(t, p.AlmostEqual(NewPosition(30, 60), 1e-2), test.ShouldBeTrue)
	test.That(t, p.AlmostEqual(NewPosition(30, 60), 1e-3), test.ShouldBeFalse)
	test.That(t, p.String(), test.ShouldEqual, "(30.00, 60.00)")
}

func TestPositionIsFinite(t *testing.T) {
	test.That(t, NewPosition(1, 2).IsFinite(), test.ShouldBeTrue)
	test.That(t, NewPosition(math.NaN(), 2).IsFinite(), test.ShouldBeFalse)
	test.That(t, NewPosition(1, math.Inf(-1)).IsFinite(), test.ShouldBeFalse)
}
