package main

import (
	"fmt"
	"strings"

	"smoothlife/internal/sims/smoothlife"

	"github.com/spf13/pflag"
)

// configFlags are the persistent flags shared by every subcommand.
type configFlags struct {
	ConfigPath string
	LogLevel   string
	Set        map[string]string

	FPS         int
	CellSize    int
	InnerRadius int
	OuterRadius int
	Width       int
	Height      int
	Seed        int64
	Boundary    string
	Engine      string
	Workers     int
}

// overridable lists the flags that map one-to-one onto configuration keys.
var overridable = []string{
	"fps", "cell-size", "inner-radius", "outer-radius", "width", "height",
	"seed", "boundary", "engine", "workers",
}

// Bind attaches the flags to fs using DefaultConfig for the defaults.
func (c *configFlags) Bind(fs *pflag.FlagSet) {
	def := smoothlife.DefaultConfig()
	fs.StringVar(&c.ConfigPath, "config", "", "YAML configuration file")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	fs.StringToStringVar(&c.Set, "set", nil, "configuration override in key=value form (e.g. b1=0.26,dt=0.1)")

	fs.IntVarP(&c.FPS, "fps", "f", def.FPS, "target frames per second")
	fs.IntVarP(&c.CellSize, "cell-size", "c", def.CellSize, "on-screen size of one cell in pixels")
	fs.IntVarP(&c.InnerRadius, "inner-radius", "i", def.InnerRadius, "radius of the inner disk")
	fs.IntVarP(&c.OuterRadius, "outer-radius", "o", def.OuterRadius, "radius of the outer disk")
	fs.IntVar(&c.Width, "width", def.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", def.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", def.Seed, "seed for the initial grid (0 draws a random seed)")
	fs.StringVar(&c.Boundary, "boundary", def.Boundary, "edge policy: wrap or clamp")
	fs.StringVar(&c.Engine, "engine", string(def.Engine), "convolution engine: direct or fft")
	fs.IntVar(&c.Workers, "workers", def.Workers, "goroutines for the direct engine (0 = GOMAXPROCS)")
}

// Resolve builds the validated configuration: defaults, then the YAML file,
// then --set pairs, then flags given explicitly on the command line.
func (c *configFlags) Resolve(fs *pflag.FlagSet) (smoothlife.Config, error) {
	cfg := smoothlife.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := smoothlife.LoadFile(c.ConfigPath)
		if err != nil {
			return smoothlife.Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.Apply(c.Set); err != nil {
		return smoothlife.Config{}, fmt.Errorf("--set: %w", err)
	}

	explicit := map[string]string{}
	for _, name := range overridable {
		if f := fs.Lookup(name); f != nil && f.Changed {
			explicit[strings.ReplaceAll(name, "-", "_")] = f.Value.String()
		}
	}
	if err := cfg.Apply(explicit); err != nil {
		return smoothlife.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return smoothlife.Config{}, err
	}
	return cfg, nil
}
