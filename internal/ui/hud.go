//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"smoothlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only panel listing the sim's configuration and the
// statistics of the current generation.
type HUD struct {
	sim     core.Sim
	width   int
	visible bool
	panel   *ebiten.Image
	lines   []hudLine
}

type hudLine struct {
	text   string
	header bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, visible: true}
}

// Width reports the horizontal space the panel occupies when visible.
func (h *HUD) Width() int {
	if h == nil || !h.visible {
		return 0
	}
	return h.width
}

// Toggle flips panel visibility.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Update rebuilds the text lines from the simulation.
func (h *HUD) Update(stats core.Stats) {
	if h == nil || !h.visible {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, hudLine{text: strings.ToUpper(h.sim.Name()), header: true})
	h.lines = append(h.lines,
		hudLine{text: fmt.Sprintf("generation %d", h.sim.Generation())},
		hudLine{text: fmt.Sprintf("mean  %.3f", stats.Mean)},
		hudLine{text: fmt.Sprintf("live  %.3f", stats.Live)},
		hudLine{text: fmt.Sprintf("range %.2f-%.2f", stats.Min, stats.Max)},
	)
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, group := range provider.Parameters().Groups {
		h.lines = append(h.lines, hudLine{}, hudLine{text: group.Name, header: true})
		for _, p := range group.Params {
			h.lines = append(h.lines, hudLine{text: fmt.Sprintf("%-16s %s", p.Label, p.Value)})
		}
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || !h.visible || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineBaseline
	for _, line := range h.lines {
		col := color.RGBA{R: 200, G: 200, B: 210, A: 255}
		if line.header {
			col = color.RGBA{R: 250, G: 220, B: 150, A: 255}
		}
		if line.text != "" {
			text.Draw(h.panel, line.text, face, panelPadding, y, col)
		}
		y += lineHeight
		if y > height {
			break
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding = 10
	lineHeight   = 15
	lineBaseline = 12
)
