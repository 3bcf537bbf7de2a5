package kinematics

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/elevarm/referenceframe"
	"go.viam.com/elevarm/spatialmath"
)

func heightsOf(configurations []Configuration) []int {
	heights := make([]int, 0, len(configurations))
	for _, c := range configurations {
		heights = append(heights, c.ElevatorHeight)
	}
	return heights
}

func TestSolveRangeWithLimits(t *testing.T) {
	solver := newTestSolver(t)
	target := spatialmath.NewPosition(20, 60)

	set, err := solver.SolveRangeWithLimits(context.Background(), target, referenceframe.NewElevatorRange(47, 52),
		NewAdmissionPolicyDegrees(40, 20))
	test.That(t, err, test.ShouldBeNil)

	// The two lowest heights can only be denied; above them the principal branch is inside the
	// hard limit and the mirror branch is not.
	test.That(t, heightsOf(set.Accepted), test.ShouldResemble, []int{49, 50, 51, 52})
	test.That(t, heightsOf(set.Denied), test.ShouldResemble, []int{47, 47, 48, 48, 49, 50, 51, 52})
	for i, expected := range []float64{15.367, 13.479, 11.586, 9.675} {
		test.That(t, set.Accepted[i].ElbowDegrees(), test.ShouldAlmostEqual, expected, angleTolDeg)
	}
	test.That(t, set.Denied[0].ElbowDegrees(), test.ShouldAlmostEqual, 19.172, angleTolDeg)
	test.That(t, set.Denied[1].ElbowDegrees(), test.ShouldAlmostEqual, 46.876, angleTolDeg)
	test.That(t, set.Len(), test.ShouldEqual, 12)
	test.That(t, set.Empty(), test.ShouldBeFalse)

	for _, c := range append(append([]Configuration{}, set.Accepted...), set.Denied...) {
		test.That(t, solver.Verify(c, target), test.ShouldBeTrue)
	}
}

func TestPartitionCompleteness(t *testing.T) {
	solver := newTestSolver(t)
	target := spatialmath.NewPosition(20, 60)
	heights := referenceframe.NewElevatorRange(30, 90)

	verified, err := solver.SolveRange(context.Background(), target, heights)
	test.That(t, err, test.ShouldBeNil)
	// reachable from 37 through 83, two branches each
	test.That(t, len(verified), test.ShouldEqual, 94)
	test.That(t, verified[0].ElevatorHeight, test.ShouldEqual, 37)
	test.That(t, verified[len(verified)-1].ElevatorHeight, test.ShouldEqual, 83)

	for _, policy := range []AdmissionPolicy{
		NewAdmissionPolicyDegrees(360, 360),
		NewAdmissionPolicyDegrees(180, 90),
		NewAdmissionPolicyDegrees(0, 0),
	} {
		set, err := solver.SolveRangeWithLimits(context.Background(), target, heights, policy)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, set.Len(), test.ShouldEqual, len(verified))

		// Merging the two lists back by scan position gives the verified list.
		seen := map[Configuration]int{}
		for _, c := range set.Accepted {
			seen[c]++
			test.That(t, c.ElevatorHeight, test.ShouldBeGreaterThan, heights.Min+1)
		}
		for _, c := range set.Denied {
			seen[c]++
		}
		for _, c := range verified {
			test.That(t, seen[c], test.ShouldEqual, 1)
		}
	}

	everything, err := solver.SolveRangeWithLimits(context.Background(), target, heights, NewAdmissionPolicyDegrees(360, 360))
	test.That(t, err, test.ShouldBeNil)
	// the lowest reachable height, 37, is well above the margin
	test.That(t, everything.Accepted, test.ShouldResemble, verified)
	test.That(t, everything.Denied, test.ShouldBeEmpty)
}

func TestSolveRangeOrdering(t *testing.T) {
	solver := newTestSolver(t)
	verified, err := solver.SolveRange(context.Background(), spatialmath.NewPosition(20, 60), referenceframe.NewElevatorRange(40, 60))
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < len(verified); i += 2 {
		principal, mirror := verified[i], verified[i+1]
		test.That(t, principal.ElevatorHeight, test.ShouldEqual, mirror.ElevatorHeight)
		test.That(t, principal.Wrist, test.ShouldBeLessThanOrEqualTo, math.Pi)
		test.That(t, mirror.Wrist, test.ShouldBeGreaterThanOrEqualTo, math.Pi)
		if i > 0 {
			test.That(t, principal.ElevatorHeight, test.ShouldEqual, verified[i-1].ElevatorHeight+1)
		}
	}
}

func TestRangedScenarioBelowElevator(t *testing.T) {
	solver := newTestSolver(t)
	target := spatialmath.NewPosition(5, 20)
	heights := referenceframe.NewElevatorRange(47, 91)

	// Only heights 47 through 50 keep the target within 31 of the base.
	verified, err := solver.SolveRange(context.Background(), target, heights)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, heightsOf(verified), test.ShouldResemble, []int{47, 47, 48, 48, 49, 49, 50, 50})

	set, err := solver.SolveRangeWithLimits(context.Background(), target, heights, NewAdmissionPolicyDegrees(180, 90))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, set.Accepted, test.ShouldBeEmpty)
	test.That(t, len(set.Denied), test.ShouldEqual, 8)
	for _, c := range set.Denied {
		test.That(t, c.ElbowDegrees(), test.ShouldBeGreaterThan, 180)
	}

	// Nothing at all is reachable from further up.
	set, err = solver.SolveRangeWithLimits(context.Background(), target, referenceframe.NewElevatorRange(51, 91),
		NewAdmissionPolicyDegrees(180, 90))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, set.Empty(), test.ShouldBeTrue)
	test.That(t, set.Accepted, test.ShouldNotBeNil)
	test.That(t, set.Denied, test.ShouldNotBeNil)
}

func TestSolveRangeSingleHeightMatchesFixedMode(t *testing.T) {
	solver := newTestSolver(t)
	target := spatialmath.NewPosition(30, 60)
	verified, err := solver.SolveRange(context.Background(), target, referenceframe.NewElevatorRange(60, 60))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, verified, test.ShouldResemble, solver.Solve(target))
}

func TestSolveRangeErrors(t *testing.T) {
	solver := newTestSolver(t)
	ctx := context.Background()

	_, err := solver.SolveRange(ctx, spatialmath.NewPosition(20, 60), referenceframe.NewElevatorRange(91, 47))
	test.That(t, errors.Is(err, ErrInvalidRange), test.ShouldBeTrue)
	set, err := solver.SolveRangeWithLimits(ctx, spatialmath.NewPosition(20, 60), referenceframe.NewElevatorRange(1, 0),
		NewAdmissionPolicyDegrees(180, 90))
	test.That(t, errors.Is(err, ErrInvalidRange), test.ShouldBeTrue)
	test.That(t, set, test.ShouldBeNil)

	// ranges wider than MaxRangeLen, including ones whose width overflows int
	for _, heights := range []referenceframe.ElevatorRange{
		referenceframe.NewElevatorRange(-1, math.MaxInt),
		referenceframe.NewElevatorRange(math.MinInt, math.MaxInt),
	} {
		verified, err := solver.SolveRange(ctx, spatialmath.NewPosition(20, 60), heights)
		test.That(t, errors.Is(err, ErrInvalidRange), test.ShouldBeTrue)
		test.That(t, verified, test.ShouldBeNil)
		set, err := solver.SolveRangeWithLimits(ctx, spatialmath.NewPosition(20, 60), heights, NewAdmissionPolicyDegrees(180, 90))
		test.That(t, errors.Is(err, ErrInvalidRange), test.ShouldBeTrue)
		test.That(t, set, test.ShouldBeNil)
	}

	_, err = solver.SolveRange(ctx, spatialmath.NewPosition(math.NaN(), 60), referenceframe.NewElevatorRange(0, 10))
	test.That(t, errors.Is(err, ErrInvalidTarget), test.ShouldBeTrue)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = solver.SolveRange(canceled, spatialmath.NewPosition(20, 60), referenceframe.NewElevatorRange(0, 10))
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := newTestSolver(t)
	target := spatialmath.NewPosition(20, 60)
	heights := referenceframe.NewElevatorRange(-20, 140)
	policy := NewAdmissionPolicyDegrees(180, 60)

	expected, err := serial.SolveRangeWithLimits(context.Background(), target, heights, policy)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, expected.Len(), test.ShouldEqual, 94)

	for _, n := range []int{2, 3, 8, 1000} {
		parallel := newTestSolver(t, WithParallelism(n))
		got, err := parallel.SolveRangeWithLimits(context.Background(), target, heights, policy)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldResemble, expected)

		verified, err := parallel.SolveRange(context.Background(), target, heights)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(verified), test.ShouldEqual, 94)
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newTestSolver(t, WithParallelism(4)).SolveRange(canceled, target, heights)
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
}
