package kinematics

import (
	"go.viam.com/elevarm/spatialmath"
)

// Metric scores a reached position. Lower is better.
type Metric func(spatialmath.Position) float64

// NewPositionOnlyMetric returns a Metric that reports the squared distance between the reached
// position and goal.
func NewPositionOnlyMetric(goal spatialmath.Position) Metric {
	return func(reached spatialmath.Position) float64 {
		d := reached.Distance(goal)
		return d * d
	}
}
