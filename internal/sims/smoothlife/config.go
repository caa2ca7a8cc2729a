package smoothlife

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"smoothlife/internal/core"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Engine names the convolution backend used by Step.
type Engine string

const (
	// EngineDirect sums the neighbourhood offsets cell by cell.
	EngineDirect Engine = "direct"
	// EngineFFT convolves in the frequency domain. Requires wrap boundaries.
	EngineFFT Engine = "fft"
)

// Rule holds the transition function parameters.
type Rule struct {
	B1     float64 `yaml:"b1"`
	B2     float64 `yaml:"b2"`
	D1     float64 `yaml:"d1"`
	D2     float64 `yaml:"d2"`
	AlphaN float64 `yaml:"alpha_n"`
	AlphaM float64 `yaml:"alpha_m"`
	// DT selects smooth time stepping when positive; zero applies the
	// transition directly.
	DT float64 `yaml:"dt"`
}

// Config controls the SmoothLife world and its presentation hints.
type Config struct {
	FPS         int `yaml:"fps"`
	CellSize    int `yaml:"cell_size"`
	InnerRadius int `yaml:"inner_radius"`
	OuterRadius int `yaml:"outer_radius"`
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`

	// Seed reproduces the initial grid when non-zero.
	Seed int64 `yaml:"seed"`

	Boundary string `yaml:"boundary"`
	Engine   Engine `yaml:"engine"`
	// Workers bounds the goroutines used by the direct engine; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Rule Rule `yaml:"rule"`
}

// DefaultRule returns the classic SmoothLife parameters.
func DefaultRule() Rule {
	return Rule{
		B1:     0.278,
		B2:     0.365,
		D1:     0.267,
		D2:     0.445,
		AlphaN: 0.028,
		AlphaM: 0.147,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		FPS:         60,
		CellSize:    1,
		InnerRadius: 5,
		OuterRadius: 10,
		Width:       1280,
		Height:      720,
		Boundary:    core.BoundaryWrap.String(),
		Engine:      EngineFFT,
		Rule:        DefaultRule(),
	}
}

// LoadFile overlays the YAML document at path on top of DefaultConfig.
// Unknown keys are rejected. The result is not validated.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode overlays a YAML document read from r on top of DefaultConfig.
func Decode(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Apply sets fields from flag-style key/value pairs. Keys match the YAML names;
// rule parameters may be given with or without the "rule." prefix.
func (c *Config) Apply(values map[string]string) error {
	var errs []error
	for key, raw := range values {
		if err := c.set(key, strings.TrimSpace(raw)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) set(key, v string) error {
	key = strings.TrimPrefix(strings.ToLower(key), "rule.")
	ints := map[string]*int{
		"fps":          &c.FPS,
		"cell_size":    &c.CellSize,
		"inner_radius": &c.InnerRadius,
		"outer_radius": &c.OuterRadius,
		"width":        &c.Width,
		"w":            &c.Width,
		"height":       &c.Height,
		"h":            &c.Height,
		"workers":      &c.Workers,
	}
	floats := map[string]*float64{
		"b1":      &c.Rule.B1,
		"b2":      &c.Rule.B2,
		"d1":      &c.Rule.D1,
		"d2":      &c.Rule.D2,
		"alpha_n": &c.Rule.AlphaN,
		"alpha_m": &c.Rule.AlphaM,
		"dt":      &c.Rule.DT,
	}
	if p, ok := ints[key]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}
	if p, ok := floats[key]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}
	switch key {
	case "seed":
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = parsed
	case "boundary":
		c.Boundary = v
	case "engine":
		c.Engine = Engine(v)
	default:
		return errors.New("unknown key")
	}
	return nil
}

// FieldError describes a single failed configuration constraint.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets callers match ErrInvalidConfig with errors.Is.
func (e *FieldError) Unwrap() error { return ErrInvalidConfig }

// Validate checks every constraint and reports all violations at once.
func (c Config) Validate() error {
	var errs []error
	fail := func(field string, value any, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)})
	}

	if c.FPS < 1 {
		fail("fps", c.FPS, "must be at least 1")
	}
	if c.CellSize < 1 {
		fail("cell_size", c.CellSize, "must be at least 1")
	}
	if c.Width < 1 {
		fail("width", c.Width, "must be at least 1")
	}
	if c.Height < 1 {
		fail("height", c.Height, "must be at least 1")
	}
	if c.CellSize >= 1 {
		if c.Width >= 1 && c.Width%c.CellSize != 0 {
			fail("width", c.Width, "must be divisible by cell_size %d", c.CellSize)
		}
		if c.Height >= 1 && c.Height%c.CellSize != 0 {
			fail("height", c.Height, "must be divisible by cell_size %d", c.CellSize)
		}
	}
	if c.InnerRadius < 1 {
		fail("inner_radius", c.InnerRadius, "must be at least 1")
	}
	if c.OuterRadius < 1 {
		fail("outer_radius", c.OuterRadius, "must be at least 1")
	}
	if c.InnerRadius >= 1 && c.OuterRadius >= 1 && c.InnerRadius >= c.OuterRadius {
		fail("inner_radius", c.InnerRadius, "must be less than outer_radius %d", c.OuterRadius)
	}
	if c.Width >= 1 && c.Height >= 1 && c.OuterRadius > min(c.Width, c.Height) {
		fail("outer_radius", c.OuterRadius, "must not exceed min(width, height) = %d", min(c.Width, c.Height))
	}

	boundary, err := core.ParseBoundary(c.Boundary)
	if err != nil {
		fail("boundary", c.Boundary, "must be %q or %q", core.BoundaryWrap, core.BoundaryClamp)
	}
	switch c.Engine {
	case EngineDirect:
	case EngineFFT:
		if err == nil && boundary != core.BoundaryWrap {
			fail("engine", c.Engine, "requires boundary %q", core.BoundaryWrap)
		}
	default:
		fail("engine", c.Engine, "must be %q or %q", EngineDirect, EngineFFT)
	}
	if c.Workers < 0 {
		fail("workers", c.Workers, "must not be negative")
	}

	r := c.Rule
	for _, p := range []struct {
		name string
		v    float64
	}{{"rule.b1", r.B1}, {"rule.b2", r.B2}, {"rule.d1", r.D1}, {"rule.d2", r.D2}, {"rule.dt", r.DT}} {
		if !(p.v >= 0 && p.v <= 1) {
			fail(p.name, p.v, "must be within [0, 1]")
		}
	}
	if r.B1 > r.B2 {
		fail("rule.b1", r.B1, "must not exceed rule.b2 %v", r.B2)
	}
	if r.D1 > r.D2 {
		fail("rule.d1", r.D1, "must not exceed rule.d2 %v", r.D2)
	}
	if !(r.AlphaN > 0) || math.IsInf(r.AlphaN, 0) {
		fail("rule.alpha_n", r.AlphaN, "must be positive and finite")
	}
	if !(r.AlphaM > 0) || math.IsInf(r.AlphaM, 0) {
		fail("rule.alpha_m", r.AlphaM, "must be positive and finite")
	}
	return errors.Join(errs...)
}

// BoundaryPolicy returns the parsed boundary, defaulting to wrap when invalid.
func (c Config) BoundaryPolicy() core.Boundary {
	b, _ := core.ParseBoundary(c.Boundary)
	return b
}
