package main

import (
	"fmt"
	"time"

	"smoothlife/internal/core"
	"smoothlife/internal/logging"

	"github.com/spf13/cobra"
)

type simulateOptions struct {
	steps  int
	report int
	paced  bool
}

func newSimulateCmd(c *cli) *cobra.Command {
	opts := simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the world headless and print summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.simulate(cmd, opts)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&opts.steps, "steps", "n", 100, "number of generations to run")
	fs.IntVar(&opts.report, "report", 0, "log statistics every K generations (0 disables)")
	fs.BoolVar(&opts.paced, "paced", false, "hold each generation to the configured fps")
	return cmd
}

func (c *cli) simulate(cmd *cobra.Command, opts simulateOptions) error {
	if opts.steps < 0 {
		return fmt.Errorf("--steps must not be negative, got %d", opts.steps)
	}
	if opts.report < 0 {
		return fmt.Errorf("--report must not be negative, got %d", opts.report)
	}
	world, err := c.world(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var pace *core.FixedStep
	if opts.paced {
		pace = core.NewFixedStep(world.Config().FPS)
	}

	start := time.Now()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "gen %6d  %s\n", 0, formatStats(world.Stats()))
	for world.Generation() < opts.steps {
		var err error
		if pace != nil {
			err = pace.Wait(ctx)
		} else {
			err = ctx.Err()
		}
		if err != nil {
			c.logger.Warn("simulation interrupted", "generation", world.Generation(), "err", err)
			break
		}

		world.Step()
		gen := world.Generation()
		if opts.report > 0 && gen%opts.report == 0 {
			stats := world.Stats()
			c.logger.Info("generation",
				"n", gen,
				"mean", stats.Mean,
				"min", stats.Min,
				"max", stats.Max,
				"live", stats.Live,
			)
		}
		c.logger.Log(ctx, logging.LevelTrace, "step", "n", gen)
	}

	elapsed := time.Since(start)
	fmt.Fprintf(out, "gen %6d  %s\n", world.Generation(), formatStats(world.Stats()))
	c.logger.Debug("simulation finished",
		"generations", world.Generation(),
		"elapsed", elapsed,
		"seed", world.Seed(),
	)
	return nil
}

func formatStats(s core.Stats) string {
	return fmt.Sprintf("mean=%.4f min=%.4f max=%.4f live=%.4f", s.Mean, s.Min, s.Max, s.Live)
}
