// Package referenceframe defines the joint and elevator bounds the arm is solved against.
package referenceframe

import (
	"fmt"
)

// Limit represents the limits of motion for a degree of freedom.
type Limit struct {
	Min float64
	Max float64
}

// Contains reports whether value lies in [Min, Max].
func (l Limit) Contains(value float64) bool {
	return value >= l.Min && value <= l.Max
}

func (l Limit) String() string {
	return fmt.Sprintf("[%.4g, %.4g]", l.Min, l.Max)
}
