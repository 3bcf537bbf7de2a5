package kinematics

import (
	"context"
	"math"

	"go.viam.com/elevarm/logging"
	"go.viam.com/elevarm/referenceframe"
	"go.viam.com/elevarm/spatialmath"
	"go.viam.com/elevarm/utils"
)

// InverseKinematics is the set of ways an elevator arm can be solved for a tool-tip target.
type InverseKinematics interface {
	// Solve returns the analytic branches with the elevator parked at the target's height. The
	// results are neither verified nor classified.
	Solve(target spatialmath.Position) []Configuration
	// SolveRange scans every elevator height in the range and returns the verified candidates.
	SolveRange(ctx context.Context, target spatialmath.Position, heights referenceframe.ElevatorRange) ([]Configuration, error)
	// SolveRangeWithLimits is SolveRange followed by admission classification.
	SolveRangeWithLimits(
		ctx context.Context,
		target spatialmath.Position,
		heights referenceframe.ElevatorRange,
		policy AdmissionPolicy,
	) (*SolutionSet, error)
}

var _ InverseKinematics = (*Solver)(nil)

// Solver computes closed form solutions for a fixed ArmGeometry. A Solver holds no mutable state
// and is safe for concurrent use.
type Solver struct {
	geometry    ArmGeometry
	logger      logging.Logger
	parallelism int
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithParallelism evaluates elevator heights on up to n goroutines. n <= 1 keeps the scan on the
// calling goroutine. Results are identical either way.
func WithParallelism(n int) SolverOption {
	return func(s *Solver) {
		s.parallelism = n
	}
}

// NewSolver returns a solver for the given geometry. The geometry is validated here so that no
// solver exists for an impossible arm.
func NewSolver(geometry ArmGeometry, logger logging.Logger, opts ...SolverOption) (*Solver, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	s := &Solver{geometry: geometry, logger: logger, parallelism: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Geometry returns the arm the solver was built for.
func (s *Solver) Geometry() ArmGeometry {
	return s.geometry
}

// Solve returns up to two configurations with the elevator at the target's height rounded to the
// nearest integer. The principal branch comes first. Duplicates are returned when the target sits
// exactly on the reach boundary.
func (s *Solver) Solve(target spatialmath.Position) []Configuration {
	return s.candidatesAt(target, int(math.Round(target.Y)))
}

// SolveAtHeight returns the analytic joint angles that put the tool tip on target with the
// elevator at height h: nothing when the target is out of reach, otherwise the principal branch
// followed by its mirror.
func (s *Solver) SolveAtHeight(target spatialmath.Position, h int) []JointAngles {
	relative := spatialmath.NewPosition(target.X, target.Y-float64(h))
	r := relative.Norm()
	if !s.geometry.CanReach(r) {
		s.logger.Debugw("target out of reach", "target", target, "elevator", h, "distance", r,
			"reach", s.geometry.ReachBounds())
		return nil
	}

	elbow, wrist := s.geometry.ElbowLength, s.geometry.WristLength
	// Rounding can push the cosine just past ±1 for targets on the reach boundary.
	cosQ2 := utils.Clamp((r*r-elbow*elbow-wrist*wrist)/(2*elbow*wrist), -1, 1)
	q2 := math.Acos(cosQ2)
	heading := relative.Angle()

	solutions := make([]JointAngles, 0, 2)
	for _, q2b := range [2]float64{q2, utils.ModAngRad(-q2)} {
		k1 := elbow + wrist*math.Cos(q2b)
		k2 := wrist * math.Sin(q2b)
		solutions = append(solutions, JointAngles{
			Elbow: utils.ModAngRad(heading - math.Atan2(k2, k1)),
			Wrist: q2b,
		})
	}
	return solutions
}

func (s *Solver) candidatesAt(target spatialmath.Position, h int) []Configuration {
	joints := s.SolveAtHeight(target, h)
	configurations := make([]Configuration, 0, len(joints))
	for _, j := range joints {
		configurations = append(configurations, NewConfiguration(j, h))
	}
	return configurations
}
