package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"smoothlife/internal/app"
	"smoothlife/internal/logging"
	"smoothlife/internal/sims/smoothlife"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// cli carries the state shared by the subcommands of one invocation.
type cli struct {
	flags  configFlags
	logger *slog.Logger
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stderr: stderr}
	root := &cobra.Command{
		Use:   "smoothlife",
		Short: "Continuous cellular automaton driven by disk and ring fill ratios",
		Long: `smoothlife runs a SmoothLife-style automaton: every cell holds a value in
[0,1] and is updated from the mean of an inner disk and the surrounding ring.

Without a subcommand the simulation opens in a window (requires the ebiten
build tag). Use "simulate" for headless runs and "kernel" to inspect stencils.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = logging.NewLogger(c.flags.LogLevel, stderr)
		},
		RunE: c.runGUI,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	c.flags.Bind(root.PersistentFlags())

	root.AddCommand(
		newRunCmd(c),
		newSimulateCmd(c),
		newKernelCmd(c),
	)
	return root
}

func newRunCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the simulation window",
		Args:  cobra.NoArgs,
		RunE:  c.runGUI,
	}
}

func (c *cli) runGUI(cmd *cobra.Command, args []string) error {
	world, err := c.world(cmd)
	if err != nil {
		return err
	}
	cfg := world.Config()
	opts := app.Options{
		Scale:    cfg.CellSize,
		FPS:      cfg.FPS,
		HUDWidth: app.DefaultHUDWidth,
		Seed:     world.Seed(),
	}
	return app.Run(world, opts, c.logger)
}

// world resolves and validates the configuration before allocating anything.
func (c *cli) world(cmd *cobra.Command) (*smoothlife.World, error) {
	cfg, err := c.flags.Resolve(cmd.Flags())
	if err != nil {
		return nil, err
	}
	world, err := smoothlife.New(cfg)
	if err != nil {
		return nil, err
	}
	inner, outer := world.Kernels()
	c.logger.Info("world ready",
		"width", cfg.Width,
		"height", cfg.Height,
		"inner_cells", int(inner.Sum()),
		"outer_cells", int(outer.Sum()),
		"ring_cells", world.RingCells(),
		"engine", cfg.Engine,
		"boundary", cfg.Boundary,
		"seed", world.Seed(),
	)
	return world, nil
}

// formatError puts each joined configuration failure on its own line.
func formatError(err error) string {
	if !errors.Is(err, smoothlife.ErrInvalidConfig) {
		return "error: " + err.Error()
	}
	lines := strings.Split(err.Error(), "\n")
	return "invalid configuration:\n  " + strings.Join(lines, "\n  ")
}
