package referenceframe

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxRangeLen is the largest number of heights a single elevator range may span.
const MaxRangeLen = 1 << 20

// ErrInvalidRange is returned when an elevator range has its minimum above its maximum or spans
// more than MaxRangeLen heights.
var ErrInvalidRange = errors.New("invalid elevator range")

// ElevatorRange is an inclusive range of integer elevator heights.
type ElevatorRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// NewElevatorRange returns the inclusive range [min, max]; it is validated when used.
func NewElevatorRange(min, max int) ElevatorRange {
	return ElevatorRange{Min: min, Max: max}
}

// Validate ensures the range is non-empty and no longer than MaxRangeLen.
func (r ElevatorRange) Validate() error {
	if r.Min > r.Max {
		return errors.Wrapf(ErrInvalidRange, "min %d is greater than max %d", r.Min, r.Max)
	}
	if _, ok := r.span(); !ok {
		return errors.Wrapf(ErrInvalidRange, "%v spans more than %d heights", r, MaxRangeLen)
	}
	return nil
}

// span returns the number of heights in the range. Max - Min is computed on unsigned integers
// so ranges wider than the int type still compare correctly against MaxRangeLen.
func (r ElevatorRange) span() (int, bool) {
	if r.Min > r.Max {
		return 0, false
	}
	diff := uint(r.Max) - uint(r.Min)
	if diff >= MaxRangeLen {
		return 0, false
	}
	return int(diff) + 1, true
}

// Len returns the number of heights in the range, zero when the range does not validate.
func (r ElevatorRange) Len() int {
	n, _ := r.span()
	return n
}

// Height returns the idx'th height, counting up from Min.
func (r ElevatorRange) Height(idx int) int {
	return r.Min + idx
}

func (r ElevatorRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
