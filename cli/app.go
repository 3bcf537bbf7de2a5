// Package cli contains the elevarm command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Global flags.
	generalFlagConfig = "config"
	generalFlagDebug  = "debug"
	generalFlagPNG    = "png"

	// Solve and scan flags.
	solveFlagX             = "x"
	solveFlagY             = "y"
	scanFlagMin            = "min"
	scanFlagMax            = "max"
	scanFlagElbowLimit     = "elbow-limit"
	scanFlagElbowHardLimit = "elbow-hard-limit"
	scanFlagParallelism    = "parallel"
	scanFlagExplain        = "explain"
)

var targetFlags = []cli.Flag{
	&cli.Float64Flag{
		Name:     solveFlagX,
		Required: true,
		Usage:    "horizontal coordinate of the target",
	},
	&cli.Float64Flag{
		Name:     solveFlagY,
		Required: true,
		Usage:    "vertical coordinate of the target",
	},
}

var app = &cli.App{
	Name:            "elevarm",
	Usage:           "solve inverse kinematics for a two link arm on an elevator",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.PathFlag{
			Name:    generalFlagConfig,
			Aliases: []string{"c"},
			Usage:   "load arm configuration from `FILE`",
		},
		&cli.BoolFlag{
			Name:    generalFlagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.PathFlag{
			Name:  generalFlagPNG,
			Usage: "render the solutions to a PNG at `FILE`",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "solve",
			Usage:     "solve with the elevator parked at the target height",
			UsageText: "elevarm solve --x <x> --y <y>",
			Flags:     targetFlags,
			Action:    SolveAction,
		},
		{
			Name:      "scan",
			Usage:     "solve at every elevator height in a range",
			UsageText: "elevarm scan --x <x> --y <y> [--min <height> --max <height>] [other options]",
			Flags: append(append([]cli.Flag{}, targetFlags...),
				&cli.IntFlag{
					Name:  scanFlagMin,
					Usage: "lowest elevator height, overrides the config",
				},
				&cli.IntFlag{
					Name:  scanFlagMax,
					Usage: "highest elevator height, overrides the config",
				},
				&cli.Float64Flag{
					Name:  scanFlagElbowLimit,
					Usage: "elbow angle in degrees above which a solution is denied",
				},
				&cli.Float64Flag{
					Name:  scanFlagElbowHardLimit,
					Usage: "elbow angle in degrees a solution must not exceed to be accepted",
				},
				&cli.IntFlag{
					Name:  scanFlagParallelism,
					Usage: "number of goroutines scanning heights, overrides the config",
				},
				&cli.BoolFlag{
					Name:  scanFlagExplain,
					Usage: "log how every candidate of this scan was classified",
				},
			),
			Action: ScanAction,
		},
		{
			Name:   "schema",
			Usage:  "print the JSON schema of the arm configuration file",
			Action: SchemaAction,
		},
	},
}

// NewApp returns the app for the elevarm CLI.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
