// Package smoothlife implements a continuous-state cellular automaton driven
// by the fill ratios of an inner disk and a surrounding ring.
package smoothlife

import (
	"fmt"
	"sync"

	"smoothlife/internal/core"
	"smoothlife/internal/kernel"
)

// World owns the double-buffered grid and advances it one generation per Step.
type World struct {
	cfg      Config
	boundary core.Boundary

	w, h int

	innerKernel kernel.Kernel
	outerKernel kernel.Kernel
	ring        []kernel.Offset

	mu  sync.RWMutex
	cur *core.FloatGrid
	nxt *core.FloatGrid

	innerFill []float64
	outerFill []float64
	filler    filler

	seed       int64
	generation int
}

// New validates cfg, builds the kernels and seeds the initial grid.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:         cfg,
		boundary:    cfg.BoundaryPolicy(),
		w:           cfg.Width,
		h:           cfg.Height,
		innerKernel: kernel.Build(cfg.InnerRadius),
		outerKernel: kernel.Build(cfg.OuterRadius),
		cur:         core.NewFloatGrid(cfg.Width, cfg.Height),
		nxt:         core.NewFloatGrid(cfg.Width, cfg.Height),
		innerFill:   make([]float64, total),
		outerFill:   make([]float64, total),
	}
	w.ring = kernel.Ring(w.outerKernel, w.innerKernel)
	innerOffsets := w.innerKernel.Offsets()
	switch cfg.Engine {
	case EngineFFT:
		w.filler = newFFTFiller(w.w, w.h, innerOffsets, w.ring)
	case EngineDirect:
		w.filler = newDirectFiller(innerOffsets, w.ring, w.boundary, cfg.Workers)
	default:
		return nil, fmt.Errorf("engine %q: %w", cfg.Engine, ErrInvalidConfig)
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "smoothlife" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// Kernels returns the inner and outer disk stencils.
func (w *World) Kernels() (inner, outer kernel.Kernel) { return w.innerKernel, w.outerKernel }

// RingCells reports how many offsets make up the annulus.
func (w *World) RingCells() int { return len(w.ring) }

// Seed reports the seed of the most recent Reset.
func (w *World) Seed() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.seed
}

// Generation reports how many steps have been committed since Reset.
func (w *World) Generation() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.generation
}

// Cells exposes the committed generation. The slice is valid until the next
// Step; concurrent readers should use Snapshot.
func (w *World) Cells() []float64 { return w.cur.Cells() }

// Grid exposes the committed generation as a grid, with the same lifetime
// rules as Cells.
func (w *World) Grid() *core.FloatGrid { return w.cur }

// Snapshot copies the committed generation into dst, growing it as needed.
func (w *World) Snapshot(dst []float64) []float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	cells := w.cur.Cells()
	if cap(dst) < len(cells) {
		dst = make([]float64, len(cells))
	}
	dst = dst[:len(cells)]
	copy(dst, cells)
	return dst
}

// Stats summarizes the committed generation.
func (w *World) Stats() core.Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return core.Summarize(w.cur.Cells())
}

// Reset fills the grid with uniform noise. A zero seed falls back to the
// configured seed, and to a fresh random seed when that is zero as well.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if effective == 0 {
		effective = core.FreshSeed()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	core.FillUniform(core.NewRNG(effective).Source(), w.cur.Cells())
	w.seed = effective
	w.generation = 0
}

// Step advances the world by one generation. The next buffer is filled
// completely before it replaces the current one.
func (w *World) Step() {
	w.filler.fill(w.cur, w.innerFill, w.outerFill)

	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	rule := w.cfg.Rule
	for i := range nxt {
		nxt[i] = rule.Next(cur[i], w.innerFill[i], w.outerFill[i])
	}

	w.mu.Lock()
	w.cur, w.nxt = w.nxt, w.cur
	w.generation++
	w.mu.Unlock()
}

// Fills returns copies of the inner and ring fill ratios computed by the most
// recent Step. Like Cells, it must not run concurrently with Step.
func (w *World) Fills() (inner, outer []float64) {
	inner = append([]float64(nil), w.innerFill...)
	outer = append([]float64(nil), w.outerFill...)
	return inner, outer
}
