// Package kinematics solves the planar inverse kinematics of a two link arm (an elbow link and a
// wrist link) carried by a vertically translating elevator.
//
// For a fixed elevator height a reachable target admits two analytic joint solutions, the
// principal branch and its mirror. The elevator height is itself free over an integer range, so
// the solver can scan that range, keep the candidates whose forward kinematics land back on the
// target, and split them into accepted and denied sets under an AdmissionPolicy.
//
// Joint angles are radians in [0, 2π) everywhere inside this package; Configuration exposes
// degree views for callers that want them.
package kinematics

import (
	"math"

	"go.uber.org/multierr"

	"go.viam.com/elevarm/referenceframe"
)

// ArmGeometry holds the fixed link lengths of the arm.
type ArmGeometry struct {
	ElbowLength float64 `json:"elbow_length"`
	WristLength float64 `json:"wrist_length"`
}

// NewArmGeometry returns a validated ArmGeometry.
func NewArmGeometry(elbowLength, wristLength float64) (ArmGeometry, error) {
	g := ArmGeometry{ElbowLength: elbowLength, WristLength: wristLength}
	if err := g.Validate(); err != nil {
		return ArmGeometry{}, err
	}
	return g, nil
}

// Validate ensures both links are strictly positive and finite.
func (g ArmGeometry) Validate() error {
	var err error
	if !validLength(g.ElbowLength) {
		err = multierr.Combine(err, newInvalidLinkLengthError("elbow", g.ElbowLength))
	}
	if !validLength(g.WristLength) {
		err = multierr.Combine(err, newInvalidLinkLengthError("wrist", g.WristLength))
	}
	return err
}

func validLength(length float64) bool {
	return length > 0 && !math.IsInf(length, 1)
}

// ReachBounds returns the band of base-to-tip distances the arm can reach at any one height.
func (g ArmGeometry) ReachBounds() referenceframe.Limit {
	return referenceframe.Limit{
		Min: math.Abs(g.ElbowLength - g.WristLength),
		Max: g.ElbowLength + g.WristLength,
	}
}

// CanReach reports whether a tip at planar distance r from the base is reachable.
func (g ArmGeometry) CanReach(r float64) bool {
	return g.ReachBounds().Contains(r)
}
