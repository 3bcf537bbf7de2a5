package kinematics

import (
	"go.viam.com/elevarm/spatialmath"
)

// VerifyDecimals is the number of decimal places a round-tripped tool tip has to agree with the
// target on.
const VerifyDecimals = 2

// BasePosition returns where the elbow joint's axis sits for the given configuration.
func (s *Solver) BasePosition(c Configuration) spatialmath.Position {
	return spatialmath.NewPosition(0, float64(c.ElevatorHeight))
}

// ElbowPosition returns the end of the elbow link.
func (s *Solver) ElbowPosition(c Configuration) spatialmath.Position {
	return s.BasePosition(c).Add(spatialmath.PolarPosition(s.geometry.ElbowLength, c.Elbow))
}

// ForwardKinematics returns the tool-tip position reached by the configuration.
func (s *Solver) ForwardKinematics(c Configuration) spatialmath.Position {
	return s.ElbowPosition(c).Add(spatialmath.PolarPosition(s.geometry.WristLength, c.Elbow+c.Wrist))
}

// Verify reports whether the configuration's tool tip lands on target once both are rounded to
// VerifyDecimals places.
func (s *Solver) Verify(c Configuration, target spatialmath.Position) bool {
	reached := s.ForwardKinematics(c)
	if reached.Round(VerifyDecimals) == target.Round(VerifyDecimals) {
		return true
	}
	s.logger.Debugw("candidate failed round trip",
		"configuration", c.String(),
		"target", target,
		"reached", reached,
		"squared_error", NewPositionOnlyMetric(target)(reached),
	)
	return false
}
