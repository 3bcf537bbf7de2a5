package kinematics

import (
	"context"

	"github.com/pkg/errors"

	"go.viam.com/elevarm/referenceframe"
	"go.viam.com/elevarm/spatialmath"
	"go.viam.com/elevarm/utils"
)

// SolveRange scans every elevator height in heights, lowest first, and returns the candidates
// whose forward kinematics land back on target. Candidates at one height are ordered principal
// branch first. An empty result is not an error; an inverted range is.
func (s *Solver) SolveRange(
	ctx context.Context,
	target spatialmath.Position,
	heights referenceframe.ElevatorRange,
) ([]Configuration, error) {
	perHeight, err := s.scan(ctx, target, heights)
	if err != nil {
		return nil, err
	}
	verified := []Configuration{}
	for _, configurations := range perHeight {
		verified = append(verified, configurations...)
	}
	s.logger.CDebugw(ctx, "elevator scan complete", "target", target, "range", heights, "verified", len(verified))
	return verified, nil
}

// SolveRangeWithLimits scans heights like SolveRange and classifies every verified candidate with
// policy. Accepted and denied partition the verified candidates and keep their scan order.
func (s *Solver) SolveRangeWithLimits(
	ctx context.Context,
	target spatialmath.Position,
	heights referenceframe.ElevatorRange,
	policy AdmissionPolicy,
) (*SolutionSet, error) {
	perHeight, err := s.scan(ctx, target, heights)
	if err != nil {
		return nil, err
	}
	set := &SolutionSet{Accepted: []Configuration{}, Denied: []Configuration{}}
	for _, configurations := range perHeight {
		for _, c := range configurations {
			admission := policy.Classify(c, heights.Min)
			s.logger.CDebugw(ctx, "classified candidate", "configuration", c.String(), "admission", admission.String())
			if admission.IsAccepted() {
				set.Accepted = append(set.Accepted, c)
			} else {
				set.Denied = append(set.Denied, c)
			}
		}
	}
	s.logger.CDebugw(ctx, "elevator scan complete",
		"target", target, "range", heights, "accepted", len(set.Accepted), "denied", len(set.Denied))
	return set, nil
}

// scan returns the verified candidates of each height, indexed from heights.Min.
func (s *Solver) scan(
	ctx context.Context,
	target spatialmath.Position,
	heights referenceframe.ElevatorRange,
) ([][]Configuration, error) {
	if !target.IsFinite() {
		return nil, errors.Wrapf(ErrInvalidTarget, "target %v", target)
	}
	if err := heights.Validate(); err != nil {
		return nil, err
	}

	perHeight := make([][]Configuration, heights.Len())
	if s.parallelism <= 1 {
		for idx := range perHeight {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			perHeight[idx] = s.verifiedAt(target, heights.Height(idx))
		}
		return perHeight, nil
	}

	// Each worker writes only its own slots, so merging the slots needs no locking and keeps
	// ascending height order.
	err := utils.GroupWorkParallel(ctx, len(perHeight), s.parallelism,
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				perHeight[workNum] = s.verifiedAt(target, heights.Height(workNum))
			}, nil
		})
	if err != nil {
		return nil, err
	}
	return perHeight, nil
}

func (s *Solver) verifiedAt(target spatialmath.Position, h int) []Configuration {
	candidates := s.candidatesAt(target, h)
	verified := candidates[:0]
	for _, c := range candidates {
		if s.Verify(c, target) {
			verified = append(verified, c)
		}
	}
	return verified
}
