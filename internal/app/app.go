//go:build ebiten

package app

import (
	"errors"
	"log/slog"

	"smoothlife/internal/core"
	"smoothlife/internal/render"
	"smoothlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     Sim
	painter *render.GridPainter
	hud     *ui.HUD
	logger  *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	logEvery int
}

// New constructs a Game for the provided simulation.
func New(sim Sim, opts Options, logger *slog.Logger) *Game {
	opts = opts.withDefaults()
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H, render.DefaultGradient),
		hud:      ui.NewHUD(sim, opts.HUDWidth),
		logger:   logger,
		scale:    opts.Scale,
		seed:     opts.Seed,
		logEvery: opts.FPS,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.logger.Info("reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(core.FreshSeed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		if gen := g.sim.Generation(); g.logEvery > 0 && gen%g.logEvery == 0 {
			stats := g.sim.Stats()
			g.logger.Debug("generation", "n", gen, "mean", stats.Mean, "live", stats.Live, "tps", ebiten.ActualTPS())
		}
	}
	g.hud.Update(g.sim.Stats())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// Run opens the window and blocks until it is closed.
func Run(sim Sim, opts Options, logger *slog.Logger) error {
	opts = opts.withDefaults()
	game := New(sim, opts, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("SmoothLife")
	ebiten.SetTPS(opts.FPS)
	ebiten.SetWindowSize(size.W*opts.Scale+opts.HUDWidth, size.H*opts.Scale)

	logger.Info("window opened", "width", size.W*opts.Scale, "height", size.H*opts.Scale, "tps", opts.FPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
