package cli

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/elevarm/config"
	"go.viam.com/elevarm/logging"
)

// SolveAction is the corresponding action for 'solve'.
func SolveAction(c *cli.Context) error {
	client, err := newArmClient(c)
	if err != nil {
		return err
	}
	return client.solveAction(c)
}

func (ac *armClient) solveAction(c *cli.Context) error {
	target, err := targetFromFlags(c)
	if err != nil {
		return err
	}
	cfgs := ac.solver.Solve(target)
	printf(c.App.Writer, "Fixed height solutions for %s with %s:", target, ac.conf)
	if len(cfgs) == 0 {
		printf(c.App.Writer, "\tunreachable")
		return nil
	}
	printf(c.App.Writer, "%s", ac.solver.ConfigurationsTable(cfgs))
	return ac.renderIfRequested(c, cfgs, target)
}

// ScanAction is the corresponding action for 'scan'.
func ScanAction(c *cli.Context) error {
	client, err := newArmClient(c)
	if err != nil {
		return err
	}
	return client.scanAction(c)
}

func (ac *armClient) scanAction(c *cli.Context) error {
	if ac.conf.Elevator == nil {
		return errors.Errorf("no elevator range: pass --%s and --%s or set one in the config", scanFlagMin, scanFlagMax)
	}
	target, err := targetFromFlags(c)
	if err != nil {
		return err
	}
	heights := *ac.conf.Elevator
	ctx := c.Context
	if c.Bool(scanFlagExplain) {
		ctx = logging.WithDebug(ctx)
	}
	printf(c.App.Writer, "Solutions for %s over elevator %s with %s:", target, heights, ac.conf)

	if ac.conf.Limits == nil {
		cfgs, err := ac.solver.SolveRange(ctx, target, heights)
		if err != nil {
			return err
		}
		if len(cfgs) == 0 {
			printf(c.App.Writer, "\tunreachable")
			return nil
		}
		printf(c.App.Writer, "%s", ac.solver.ConfigurationsTable(cfgs))
		return ac.renderIfRequested(c, cfgs, target)
	}

	set, err := ac.solver.SolveRangeWithLimits(ctx, target, heights, ac.conf.Limits.Policy())
	if err != nil {
		return err
	}
	if set.Empty() {
		printf(c.App.Writer, "\tunreachable")
		return nil
	}
	printf(c.App.Writer, "%s", ac.solver.SolutionSetTable(set))
	printf(c.App.Writer, "%d accepted, %d denied", len(set.Accepted), len(set.Denied))
	return ac.renderIfRequested(c, set.Accepted, target)
}

// SchemaAction is the corresponding action for 'schema'.
func SchemaAction(c *cli.Context) error {
	out, err := json.MarshalIndent(config.Schema(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot marshal config schema")
	}
	printf(c.App.Writer, "%s", out)
	return nil
}
