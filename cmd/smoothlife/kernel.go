package main

import (
	"fmt"
	"strings"

	"smoothlife/internal/kernel"

	"github.com/spf13/cobra"
)

func newKernelCmd(c *cli) *cobra.Command {
	var radius, ringInner int
	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print the disk stencil for a radius",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if radius < 1 {
				return fmt.Errorf("--radius must be at least 1, got %d", radius)
			}
			if ringInner < 0 || (ringInner > 0 && ringInner >= radius) {
				return fmt.Errorf("--ring-inner must be in [1, %d), got %d", radius, ringInner)
			}

			out := cmd.OutOrStdout()
			outer := kernel.Build(radius)
			fmt.Fprintf(out, "disk r=%d side=%d cells=%d\n", radius, outer.Size(), int(outer.Sum()))
			fmt.Fprint(out, outer)
			if ringInner == 0 {
				return nil
			}

			inner := kernel.Build(ringInner)
			ring := kernel.Ring(outer, inner)
			fmt.Fprintf(out, "\nring r=%d..%d cells=%d\n", ringInner, radius, len(ring))
			fmt.Fprint(out, renderOffsets(ring, radius))
			c.logger.Debug("kernel printed", "radius", radius, "ring_inner", ringInner)
			return nil
		},
	}
	cmd.Flags().IntVarP(&radius, "radius", "r", 5, "disk radius")
	cmd.Flags().IntVar(&ringInner, "ring-inner", 0, "also print the ring left after removing this inner radius")
	return cmd
}

// renderOffsets draws offsets on a 2*radius square in the same style as
// kernel.Kernel.String.
func renderOffsets(offsets []kernel.Offset, radius int) string {
	side := 2 * radius
	rows := make([][]byte, side)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", side))
	}
	for _, o := range offsets {
		x, y := o.DX+radius, o.DY+radius
		if x >= 0 && y >= 0 && x < side && y < side {
			rows[y][x] = '#'
		}
	}
	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
