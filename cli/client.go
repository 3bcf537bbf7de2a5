package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/elevarm/config"
	"go.viam.com/elevarm/kinematics"
	"go.viam.com/elevarm/logging"
	"go.viam.com/elevarm/referenceframe"
	"go.viam.com/elevarm/render"
	"go.viam.com/elevarm/spatialmath"
)

// armClient holds the configured arm a command works with.
type armClient struct {
	conf   *config.Config
	logger logging.Logger
	solver *kinematics.Solver
}

// newArmClient loads the arm configuration named by the global flags, falling back to the bench
// arm, and applies the command's overrides.
func newArmClient(c *cli.Context) (*armClient, error) {
	logger := logging.New("elevarm", logging.INFO, logging.NewWriterAppender(c.App.ErrWriter))

	conf := config.Default()
	if path := c.String(generalFlagConfig); path != "" {
		var err error
		conf, err = config.Read(c.Context, path, logger)
		if err != nil {
			return nil, err
		}
	}
	if err := applyScanFlags(c, conf); err != nil {
		return nil, err
	}
	if c.Bool(generalFlagDebug) {
		conf.LogLevel = logging.DEBUG.String()
	}

	solver, err := conf.NewSolver(logger)
	if err != nil {
		return nil, err
	}
	return &armClient{conf: conf, logger: logger, solver: solver}, nil
}

// applyScanFlags overrides the elevator range, limits, and parallelism with any flags that were
// set. Flags a command does not define are never set.
func applyScanFlags(c *cli.Context, conf *config.Config) error {
	if c.IsSet(scanFlagMin) || c.IsSet(scanFlagMax) {
		if !c.IsSet(scanFlagMin) || !c.IsSet(scanFlagMax) {
			return errors.Errorf("--%s and --%s must be given together", scanFlagMin, scanFlagMax)
		}
		r := referenceframe.NewElevatorRange(c.Int(scanFlagMin), c.Int(scanFlagMax))
		conf.Elevator = &r
	}
	if c.IsSet(scanFlagElbowLimit) || c.IsSet(scanFlagElbowHardLimit) {
		if !c.IsSet(scanFlagElbowLimit) || !c.IsSet(scanFlagElbowHardLimit) {
			return errors.Errorf("--%s and --%s must be given together", scanFlagElbowLimit, scanFlagElbowHardLimit)
		}
		conf.Limits = &config.Limits{
			ElbowLimitDegs:     c.Float64(scanFlagElbowLimit),
			ElbowHardLimitDegs: c.Float64(scanFlagElbowHardLimit),
		}
	}
	if c.IsSet(scanFlagParallelism) {
		conf.Parallelism = c.Int(scanFlagParallelism)
	}
	return conf.Validate("config")
}

// targetFromFlags reads the target. Both coordinates must be given; zero is a valid coordinate so
// a missing flag cannot fall back to its default.
func targetFromFlags(c *cli.Context) (spatialmath.Position, error) {
	for _, name := range []string{solveFlagX, solveFlagY} {
		if !c.IsSet(name) {
			return spatialmath.Position{}, errors.Errorf("missing required flag --%s", name)
		}
	}
	return spatialmath.NewPosition(c.Float64(solveFlagX), c.Float64(solveFlagY)), nil
}

// renderIfRequested writes the configurations to the PNG named by the global flags, if any.
func (ac *armClient) renderIfRequested(c *cli.Context, cfgs []kinematics.Configuration, target spatialmath.Position) error {
	path := c.String(generalFlagPNG)
	if path == "" {
		return nil
	}
	r, err := render.NewRenderer(ac.solver, render.DefaultOptions())
	if err != nil {
		return err
	}
	if err := r.RenderPNG(path, cfgs, target); err != nil {
		return err
	}
	printf(c.App.Writer, "Wrote %d configuration(s) to %s", len(cfgs), path)
	return nil
}
