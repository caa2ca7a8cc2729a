package app

import "smoothlife/internal/core"

// Sim is what the driver needs from a simulation: stepping, display access and
// per-generation statistics.
type Sim interface {
	core.Sim
	Stats() core.Stats
}

// Options configures the window and frame pacing.
type Options struct {
	// Scale is the on-screen size of one cell in pixels.
	Scale int
	// FPS caps the update rate.
	FPS int
	// HUDWidth reserves a panel to the right of the grid; 0 disables it.
	HUDWidth int
	// Seed is reused by the reset key.
	Seed int64
}

// DefaultHUDWidth is the panel width used by the command-line driver.
const DefaultHUDWidth = 220

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.HUDWidth < 0 {
		o.HUDWidth = 0
	}
	return o
}
