package smoothlife

import (
	"errors"
	"math"
	"slices"
	"sync"
	"testing"

	"smoothlife/internal/core"
	"smoothlife/internal/kernel"
)

func smallConfig(engine Engine, boundary string) Config {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 32
	cfg.InnerRadius = 3
	cfg.OuterRadius = 9
	cfg.Seed = 1234
	cfg.Engine = engine
	cfg.Boundary = boundary
	cfg.Workers = 4
	return cfg
}

func mustWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig(EngineDirect, "wrap")
	cfg.CellSize = 5
	w, err := New(cfg)
	if err == nil || w != nil {
		t.Fatalf("expected configuration error, got world=%v err=%v", w, err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestResetDeterministic(t *testing.T) {
	world := mustWorld(t, smallConfig(EngineDirect, "wrap"))
	initial := append([]float64(nil), world.Cells()...)
	for i, v := range initial {
		if v < 0 || v >= 1 {
			t.Fatalf("cell %d=%v outside [0,1)", i, v)
		}
	}

	world.Step()
	world.Step()
	if world.Generation() != 2 {
		t.Fatalf("generation=%d, want 2", world.Generation())
	}

	world.Reset(0)
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if world.Generation() != 0 {
		t.Fatalf("Reset should clear the generation counter, got %d", world.Generation())
	}
	if world.Seed() != 1234 {
		t.Fatalf("seed=%d, want 1234", world.Seed())
	}

	world.Reset(777)
	seeded := append([]float64(nil), world.Cells()...)
	world.Reset(777)
	if !slices.Equal(seeded, world.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestResetWithoutSeedDrawsFreshSeed(t *testing.T) {
	cfg := smallConfig(EngineDirect, "wrap")
	cfg.Seed = 0
	a := mustWorld(t, cfg)
	b := mustWorld(t, cfg)
	if a.Seed() == 0 || b.Seed() == 0 {
		t.Fatal("effective seed must be reported")
	}
	if a.Seed() == b.Seed() && slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("unseeded worlds are expected to differ")
	}

	cfg.Seed = a.Seed()
	replay := mustWorld(t, cfg)
	if !slices.Equal(a.Cells(), replay.Cells()) {
		t.Fatal("reported seed should reproduce the grid")
	}
}

func TestStepPreservesShapeAndBounds(t *testing.T) {
	variants := []struct {
		name     string
		engine   Engine
		boundary string
		dt       float64
	}{
		{"direct wrap", EngineDirect, "wrap", 0},
		{"direct clamp", EngineDirect, "clamp", 0},
		{"direct clamp smooth", EngineDirect, "clamp", 0.2},
		{"fft wrap", EngineFFT, "wrap", 0},
		{"fft wrap smooth", EngineFFT, "wrap", 0.05},
	}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			cfg := smallConfig(v.engine, v.boundary)
			cfg.Rule.DT = v.dt
			world := mustWorld(t, cfg)
			for step := 0; step < 5; step++ {
				world.Step()
				cells := world.Cells()
				if len(cells) != cfg.Width*cfg.Height {
					t.Fatalf("step %d: %d cells, want %d", step, len(cells), cfg.Width*cfg.Height)
				}
				if size := world.Size(); size.W != cfg.Width || size.H != cfg.Height {
					t.Fatalf("step %d: size %+v changed", step, size)
				}
				for i, c := range cells {
					if c < 0 || c > 1 || math.IsNaN(c) {
						t.Fatalf("step %d: cell %d=%v outside [0,1]", step, i, c)
					}
				}
			}
		})
	}
}

func TestStepTranslationInvariantOnTorus(t *testing.T) {
	for _, engine := range []Engine{EngineDirect, EngineFFT} {
		t.Run(string(engine), func(t *testing.T) {
			cfg := smallConfig(engine, "wrap")
			base := mustWorld(t, cfg)
			moved := mustWorld(t, cfg)

			const dx, dy = 7, -5
			copy(moved.Cells(), base.Grid().Shift(dx, dy).Cells())

			for step := 0; step < 3; step++ {
				base.Step()
				moved.Step()
			}

			want := base.Grid().Shift(dx, dy).Cells()
			got := moved.Cells()
			for i := range want {
				if math.Abs(want[i]-got[i]) > 1e-6 {
					t.Fatalf("cell %d: shifted result %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestEnginesAgree(t *testing.T) {
	direct := mustWorld(t, smallConfig(EngineDirect, "wrap"))
	fft := mustWorld(t, smallConfig(EngineFFT, "wrap"))
	if !slices.Equal(direct.Cells(), fft.Cells()) {
		t.Fatal("same seed must give the same initial grid")
	}

	direct.Step()
	fft.Step()

	di, do := direct.Fills()
	fi, fo := fft.Fills()
	for i := range di {
		if math.Abs(di[i]-fi[i]) > 1e-9 || math.Abs(do[i]-fo[i]) > 1e-9 {
			t.Fatalf("cell %d fills differ: direct (%v,%v) fft (%v,%v)", i, di[i], do[i], fi[i], fo[i])
		}
	}
	dc, fc := direct.Cells(), fft.Cells()
	for i := range dc {
		if math.Abs(dc[i]-fc[i]) > 1e-6 {
			t.Fatalf("cell %d differs: direct %v fft %v", i, dc[i], fc[i])
		}
	}
}

func TestUniformGridFills(t *testing.T) {
	for _, tc := range []struct {
		engine   Engine
		boundary string
	}{{EngineDirect, "wrap"}, {EngineDirect, "clamp"}, {EngineFFT, "wrap"}} {
		world := mustWorld(t, smallConfig(tc.engine, tc.boundary))
		cells := world.Cells()
		for i := range cells {
			cells[i] = 0.37
		}
		world.Step()
		inner, outer := world.Fills()
		for i := range inner {
			if math.Abs(inner[i]-0.37) > 1e-9 || math.Abs(outer[i]-0.37) > 1e-9 {
				t.Fatalf("%s/%s: cell %d fills (%v,%v), want 0.37", tc.engine, tc.boundary, i, inner[i], outer[i])
			}
		}
		next := world.Cells()
		for i := range next {
			if math.Abs(next[i]-next[0]) > 1e-9 {
				t.Fatalf("%s/%s: uniform input should stay uniform", tc.engine, tc.boundary)
			}
		}
	}
}

func TestBoundaryPolicyAtEdges(t *testing.T) {
	newWorld := func(boundary string) *World {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 6, 6
		cfg.InnerRadius, cfg.OuterRadius = 1, 2
		cfg.Engine = EngineDirect
		cfg.Boundary = boundary
		cfg.Seed = 1
		w := mustWorld(t, cfg)
		cells := w.Cells()
		for i := range cells {
			cells[i] = 0
		}
		cells[0] = 1
		w.Step()
		return w
	}

	// The radius 1 disk covers offsets (0,-1), (-1,0) and (0,0).
	wrap, _ := newWorld("wrap").Fills()
	clamp, _ := newWorld("clamp").Fills()

	cases := []struct {
		x, y      int
		wrapWant  float64
		clampWant float64
	}{
		{0, 0, 1.0 / 3, 1},
		{0, 1, 1.0 / 3, 1.0 / 3},
		{1, 0, 1.0 / 3, 1.0 / 3},
		{5, 5, 0, 0},
		{3, 3, 0, 0},
	}
	for _, tc := range cases {
		idx := tc.y*6 + tc.x
		if math.Abs(wrap[idx]-tc.wrapWant) > 1e-12 {
			t.Fatalf("wrap inner fill at (%d,%d)=%v, want %v", tc.x, tc.y, wrap[idx], tc.wrapWant)
		}
		if math.Abs(clamp[idx]-tc.clampWant) > 1e-12 {
			t.Fatalf("clamp inner fill at (%d,%d)=%v, want %v", tc.x, tc.y, clamp[idx], tc.clampWant)
		}
	}
}

func TestDirectFillsMatchGridReads(t *testing.T) {
	for _, boundary := range []string{"wrap", "clamp"} {
		cfg := smallConfig(EngineDirect, boundary)
		cfg.Width, cfg.Height = 20, 14
		cfg.InnerRadius, cfg.OuterRadius = 2, 5
		world := mustWorld(t, cfg)

		before := core.NewFloatGrid(cfg.Width, cfg.Height)
		copy(before.Cells(), world.Cells())
		world.Step()
		inner, ring := world.Fills()

		innerKernel, _ := world.Kernels()
		innerOffsets := innerKernel.Offsets()
		ringOffsets := world.ring
		policy := cfg.BoundaryPolicy()
		mean := func(x, y int, offsets []kernel.Offset) float64 {
			sum := 0.0
			for _, o := range offsets {
				sum += before.At(x+o.DX, y+o.DY, policy)
			}
			return sum / float64(len(offsets))
		}

		// Edge and corner cells exercise the boundary policy.
		for _, p := range [][2]int{{0, 0}, {19, 0}, {0, 13}, {19, 13}, {1, 7}, {10, 6}} {
			x, y := p[0], p[1]
			idx := y*cfg.Width + x
			if want := mean(x, y, innerOffsets); math.Abs(inner[idx]-want) > 1e-12 {
				t.Fatalf("%s: inner fill at (%d,%d)=%v, want %v", boundary, x, y, inner[idx], want)
			}
			if want := mean(x, y, ringOffsets); math.Abs(ring[idx]-want) > 1e-12 {
				t.Fatalf("%s: ring fill at (%d,%d)=%v, want %v", boundary, x, y, ring[idx], want)
			}
		}
	}
}

func TestRingExcludesInnerDisk(t *testing.T) {
	world := mustWorld(t, smallConfig(EngineDirect, "wrap"))
	inner, outer := world.Kernels()
	if got, want := world.RingCells(), int(outer.Sum()-inner.Sum()); got != want {
		t.Fatalf("ring cells=%d, want %d", got, want)
	}

	// A single live cell is seen by the inner disk of its own position but
	// never by the ring.
	cells := world.Cells()
	for i := range cells {
		cells[i] = 0
	}
	cells[10*48+20] = 1
	world.Step()
	innerFill, ringFill := world.Fills()
	if innerFill[10*48+20] == 0 {
		t.Fatal("inner disk should include the cell itself")
	}
	if ringFill[10*48+20] != 0 {
		t.Fatal("ring must exclude the cell itself")
	}
}

func TestSnapshotDuringSteps(t *testing.T) {
	world := mustWorld(t, smallConfig(EngineDirect, "wrap"))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			world.Step()
		}
	}()

	var buf []float64
	for i := 0; i < 50; i++ {
		buf = world.Snapshot(buf)
		if len(buf) != 48*32 {
			t.Fatalf("snapshot has %d cells", len(buf))
		}
		_ = world.Stats()
	}
	wg.Wait()
	if world.Generation() != 10 {
		t.Fatalf("generation=%d, want 10", world.Generation())
	}
}

func TestParameters(t *testing.T) {
	world := mustWorld(t, smallConfig(EngineFFT, "wrap"))
	snap := world.Parameters()
	checks := map[string]string{
		"width":        "48",
		"inner_radius": "3",
		"seed":         "1234",
		"engine":       "fft",
		"boundary":     "wrap",
		"b1":           "0.278",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("parameter %s=%q (found=%v), want %q", key, p.Value, ok, want)
		}
	}
}
