package kinematics

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestClassify(t *testing.T) {
	policy := NewAdmissionPolicyDegrees(180, 90)
	test.That(t, policy.ElbowLimit, test.ShouldAlmostEqual, math.Pi)
	test.That(t, policy.ElbowHardLimit, test.ShouldAlmostEqual, math.Pi/2)

	const rangeMin = 10
	deg := func(d float64, h int) Configuration {
		return Configuration{Elbow: d * math.Pi / 180, ElevatorHeight: h}
	}

	for _, tc := range []struct {
		name     string
		c        Configuration
		expected Admission
	}{
		{"over elbow limit wins over everything", deg(200, 20), DeniedElbowLimit},
		{"over elbow limit at the bottom", deg(200, rangeMin), DeniedElbowLimit},
		{"lowest height", deg(45, rangeMin), DeniedElevatorMargin},
		{"second lowest height", deg(45, rangeMin+1), DeniedElevatorMargin},
		{"first admissible height", deg(45, rangeMin+2), Accepted},
		{"at hard limit", deg(90, 20), Accepted},
		{"between hard limit and limit", deg(120, 20), DeniedHardLimit},
		{"at elbow limit", deg(180, 20), DeniedHardLimit},
		{"zero elbow", deg(0, 20), Accepted},
	} {
		t.Run(tc.name, func(t *testing.T) {
			admission := policy.Classify(tc.c, rangeMin)
			test.That(t, admission, test.ShouldEqual, tc.expected)
			test.That(t, admission.IsAccepted(), test.ShouldEqual, tc.expected == Accepted)
		})
	}
}

func TestClassifyAtIntExtremes(t *testing.T) {
	policy := NewAdmissionPolicyDegrees(180, 90)
	elbow := 0.1

	for _, tc := range []struct {
		name     string
		h        int
		rangeMin int
		expected Admission
	}{
		{"lowest height at max int", math.MaxInt, math.MaxInt, DeniedElevatorMargin},
		{"second lowest height at max int", math.MaxInt, math.MaxInt - 1, DeniedElevatorMargin},
		{"third height at max int", math.MaxInt, math.MaxInt - 2, Accepted},
		{"lowest height at min int", math.MinInt, math.MinInt, DeniedElevatorMargin},
		{"far above a min int range", math.MaxInt, math.MinInt, Accepted},
		{"below the range", 5, 10, DeniedElevatorMargin},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := Configuration{Elbow: elbow, ElevatorHeight: tc.h}
			test.That(t, policy.Classify(c, tc.rangeMin), test.ShouldEqual, tc.expected)
		})
	}
}

func TestAdmissionString(t *testing.T) {
	test.That(t, Accepted.String(), test.ShouldEqual, "accepted")
	test.That(t, DeniedElbowLimit.String(), test.ShouldEqual, "denied: elbow limit")
	test.That(t, DeniedElevatorMargin.String(), test.ShouldEqual, "denied: elevator margin")
	test.That(t, DeniedHardLimit.String(), test.ShouldEqual, "denied: elbow hard limit")
	test.That(t, Admission(42).String(), test.ShouldEqual, "unknown admission 42")
}
