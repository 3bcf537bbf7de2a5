// Package main is the elevarm command itself.
package main

import (
	"context"
	"os"
	"os/signal"

	"go.viam.com/elevarm/cli"
	"go.viam.com/elevarm/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		logging.New("elevarm", logging.ERROR, logging.NewWriterAppender(os.Stderr)).Errorw("command failed", "error", err)
		cancel()
		//nolint:gocritic
		os.Exit(1)
	}
}
