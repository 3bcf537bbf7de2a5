package kinematics

import (
	"github.com/pkg/errors"

	"go.viam.com/elevarm/referenceframe"
)

var (
	// ErrInvalidGeometry is returned when an arm is described with a non-positive link length.
	ErrInvalidGeometry = errors.New("invalid arm geometry")

	// ErrInvalidTarget is returned when a target position has a NaN or infinite coordinate.
	ErrInvalidTarget = errors.New("invalid target position")

	// ErrNilLogger is returned when a solver is built without a logger.
	ErrNilLogger = errors.New("solver needs a logger, use logging.New with no appenders to discard output")

	// ErrInvalidRange is returned when an elevator range is inverted or too long.
	ErrInvalidRange = referenceframe.ErrInvalidRange
)

func newInvalidLinkLengthError(link string, length float64) error {
	return errors.Wrapf(ErrInvalidGeometry, "%s length must be positive, got %v", link, length)
}
