package kinematics

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"go.viam.com/elevarm/spatialmath"
	"go.viam.com/elevarm/utils"
)

// JointAngles is one analytic solution at a fixed elevator height, in radians.
type JointAngles struct {
	Elbow float64
	Wrist float64
}

// Configuration is a full arm pose: elbow angle relative to the base, wrist angle relative to the
// elbow link, both radians in [0, 2π), and the elevator height the base sits at.
type Configuration struct {
	Elbow          float64
	Wrist          float64
	ElevatorHeight int
}

// NewConfiguration returns the configuration with the joint angles normalized into [0, 2π).
func NewConfiguration(joints JointAngles, elevatorHeight int) Configuration {
	return Configuration{
		Elbow:          utils.ModAngRad(joints.Elbow),
		Wrist:          utils.ModAngRad(joints.Wrist),
		ElevatorHeight: elevatorHeight,
	}
}

// ElbowDegrees returns the elbow angle in [0°, 360°).
func (c Configuration) ElbowDegrees() float64 {
	return utils.ModAngDeg(utils.RadToDeg(c.Elbow))
}

// WristDegrees returns the wrist angle in [0°, 360°).
func (c Configuration) WristDegrees() float64 {
	return utils.ModAngDeg(utils.RadToDeg(c.Wrist))
}

func (c Configuration) String() string {
	return fmt.Sprintf("q1: %.2f°, q2: %.2f°, elevator: %d", c.ElbowDegrees(), c.WristDegrees(), c.ElevatorHeight)
}

// SolutionSet is the result of a ranged solve with admission limits. Both lists are ordered by
// ascending elevator height, then principal branch before mirror branch.
type SolutionSet struct {
	Accepted []Configuration
	Denied   []Configuration
}

// Len returns the number of classified configurations.
func (s *SolutionSet) Len() int {
	return len(s.Accepted) + len(s.Denied)
}

// Empty is true when no height produced a verified candidate.
func (s *SolutionSet) Empty() bool {
	return s.Len() == 0
}

// String prints a table of every configuration, accepted first.
func (s *SolutionSet) String() string {
	return s.table(nil)
}

// tipFunc places the tool tip of a configuration. A nil tipFunc leaves the Tip column out.
type tipFunc func(Configuration) spatialmath.Position

func (s *SolutionSet) table(tip tipFunc) string {
	t := newConfigurationTable(tip != nil, "Status")
	for i, c := range s.Accepted {
		appendConfigurationRow(t, i+1, c, tip, "accepted")
	}
	for i, c := range s.Denied {
		appendConfigurationRow(t, len(s.Accepted)+i+1, c, tip, "denied")
	}
	return t.Render()
}

// ConfigurationsTable renders configurations as a table, including the tool tip each one reaches.
func (s *Solver) ConfigurationsTable(configurations []Configuration) string {
	t := newConfigurationTable(true)
	for i, c := range configurations {
		appendConfigurationRow(t, i+1, c, s.ForwardKinematics)
	}
	return t.Render()
}

// SolutionSetTable is SolutionSet.String with the tool tip each configuration reaches.
func (s *Solver) SolutionSetTable(set *SolutionSet) string {
	return set.table(s.ForwardKinematics)
}

func newConfigurationTable(withTip bool, extraColumns ...interface{}) table.Writer {
	t := table.NewWriter()
	header := table.Row{"#", "Elevator", "Elbow (deg)", "Wrist (deg)"}
	if withTip {
		header = append(header, "Tip")
	}
	t.AppendHeader(append(header, extraColumns...))
	return t
}

func appendConfigurationRow(t table.Writer, idx int, c Configuration, tip tipFunc, extra ...interface{}) {
	row := table.Row{
		fmt.Sprintf("%d", idx),
		fmt.Sprintf("%d", c.ElevatorHeight),
		fmt.Sprintf("%.2f", c.ElbowDegrees()),
		fmt.Sprintf("%.2f", c.WristDegrees()),
	}
	if tip != nil {
		row = append(row, tip(c).String())
	}
	t.AppendRow(append(row, extra...))
}
