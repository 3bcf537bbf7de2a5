// Package config reads the JSON description of an elevator arm: its link lengths, the elevator
// heights to scan, and the elbow admission limits.
package config

import (
	"fmt"
	"math"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/elevarm/kinematics"
	"go.viam.com/elevarm/logging"
	"go.viam.com/elevarm/referenceframe"
	"go.viam.com/elevarm/utils"
)

// Config describes one elevator arm.
type Config struct {
	ConfigFilePath string `json:"-"`

	Arm      kinematics.ArmGeometry        `json:"arm"`
	Elevator *referenceframe.ElevatorRange `json:"elevator,omitempty"`
	Limits   *Limits                       `json:"limits,omitempty"`

	// Parallelism is the number of goroutines used to scan elevator heights. Zero or one scans
	// serially.
	Parallelism int    `json:"parallelism,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
}

// Limits are the elbow admission limits, in degrees.
type Limits struct {
	ElbowLimitDegs     float64 `json:"elbow_limit_degs"`
	ElbowHardLimitDegs float64 `json:"elbow_hard_limit_degs"`
}

// Default returns the arm from the reference bench setup: a 25 unit elbow link and a 6 unit wrist
// link, with no elevator range or limits.
func Default() *Config {
	return &Config{Arm: kinematics.ArmGeometry{ElbowLength: 25, WristLength: 6}}
}

// Validate ensures all parts of the config are valid.
func (c *Config) Validate(path string) error {
	var err error
	if c.Arm.ElbowLength == 0 {
		err = multierr.Combine(err, utils.NewConfigValidationFieldRequiredError(path+".arm", "elbow_length"))
	}
	if c.Arm.WristLength == 0 {
		err = multierr.Combine(err, utils.NewConfigValidationFieldRequiredError(path+".arm", "wrist_length"))
	}
	if err != nil {
		return err
	}
	if geomErr := c.Arm.Validate(); geomErr != nil {
		err = multierr.Combine(err, utils.NewConfigValidationError(path+".arm", geomErr))
	}
	if c.Elevator != nil {
		if rangeErr := c.Elevator.Validate(); rangeErr != nil {
			err = multierr.Combine(err, utils.NewConfigValidationError(path+".elevator", rangeErr))
		}
	}
	if c.Limits != nil {
		err = multierr.Combine(err, c.Limits.Validate(path+".limits"))
	}
	if c.Parallelism < 0 {
		err = multierr.Combine(err, utils.NewConfigValidationError(path,
			errors.Errorf("parallelism must not be negative, got %d", c.Parallelism)))
	}
	if c.LogLevel != "" {
		if _, levelErr := logging.LevelFromString(c.LogLevel); levelErr != nil {
			err = multierr.Combine(err, utils.NewConfigValidationError(path, levelErr))
		}
	}
	return err
}

// Validate ensures both limits are finite.
func (l *Limits) Validate(path string) error {
	var err error
	for field, value := range map[string]float64{
		"elbow_limit_degs":      l.ElbowLimitDegs,
		"elbow_hard_limit_degs": l.ElbowHardLimitDegs,
	} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			err = multierr.Combine(err, utils.NewConfigValidationError(path, errors.Errorf("%s must be finite", field)))
		}
	}
	return err
}

// Policy returns the admission policy described by the limits.
func (l *Limits) Policy() kinematics.AdmissionPolicy {
	return kinematics.NewAdmissionPolicyDegrees(l.ElbowLimitDegs, l.ElbowHardLimitDegs)
}

// NewSolver builds a solver for the configured arm, logging to a sublogger of logger.
func (c *Config) NewSolver(logger logging.Logger) (*kinematics.Solver, error) {
	if c.LogLevel != "" {
		level, err := logging.LevelFromString(c.LogLevel)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(level)
	}
	opts := []kinematics.SolverOption{}
	if c.Parallelism > 1 {
		opts = append(opts, kinematics.WithParallelism(c.Parallelism))
	}
	return kinematics.NewSolver(c.Arm, logger.Sublogger("kinematics"), opts...)
}

func (c *Config) String() string {
	return fmt.Sprintf("arm(elbow=%v, wrist=%v)", c.Arm.ElbowLength, c.Arm.WristLength)
}

// Schema returns the JSON schema of the arm configuration file.
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
