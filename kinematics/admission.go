package kinematics

import (
	"fmt"

	"go.viam.com/elevarm/utils"
)

// AdmissionPolicy holds the elbow limits verified candidates are classified against, in radians
// on the same [0, 2π) scale as Configuration.Elbow.
type AdmissionPolicy struct {
	// ElbowLimit denies any candidate whose elbow angle exceeds it.
	ElbowLimit float64
	// ElbowHardLimit is the largest elbow angle that can be accepted.
	ElbowHardLimit float64
}

// NewAdmissionPolicyDegrees builds a policy from limits given in degrees.
func NewAdmissionPolicyDegrees(elbowLimit, elbowHardLimit float64) AdmissionPolicy {
	return AdmissionPolicy{
		ElbowLimit:     utils.DegToRad(elbowLimit),
		ElbowHardLimit: utils.DegToRad(elbowHardLimit),
	}
}

// Admission is the outcome of classifying one verified candidate.
type Admission int

const (
	// Accepted candidates are within both elbow limits and above the elevator margin.
	Accepted Admission = iota
	// DeniedElbowLimit candidates exceed the elbow limit.
	DeniedElbowLimit
	// DeniedElevatorMargin candidates sit on one of the two lowest heights of the scanned range.
	DeniedElevatorMargin
	// DeniedHardLimit candidates are above the margin but exceed the elbow hard limit.
	DeniedHardLimit
)

func (a Admission) String() string {
	switch a {
	case Accepted:
		return "accepted"
	case DeniedElbowLimit:
		return "denied: elbow limit"
	case DeniedElevatorMargin:
		return "denied: elevator margin"
	case DeniedHardLimit:
		return "denied: elbow hard limit"
	default:
		return fmt.Sprintf("unknown admission %d", int(a))
	}
}

// IsAccepted is true only for Accepted.
func (a Admission) IsAccepted() bool {
	return a == Accepted
}

// Classify decides whether a verified candidate found while scanning a range starting at
// rangeMin is accepted. The checks run in a fixed order: the elbow limit first, then acceptance
// only above rangeMin+1 and within the hard limit. Everything else is denied, so the two lowest
// heights of a range never produce an accepted candidate.
func (p AdmissionPolicy) Classify(c Configuration, rangeMin int) Admission {
	if c.Elbow > p.ElbowLimit {
		return DeniedElbowLimit
	}
	// unsigned difference so rangeMin+1 cannot overflow near math.MaxInt
	aboveMargin := c.ElevatorHeight > rangeMin && uint(c.ElevatorHeight)-uint(rangeMin) > 1
	if aboveMargin && c.Elbow <= p.ElbowHardLimit {
		return Accepted
	}
	if !aboveMargin {
		return DeniedElevatorMargin
	}
	return DeniedHardLimit
}
