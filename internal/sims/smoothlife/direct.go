package smoothlife

import (
	"runtime"

	"smoothlife/internal/core"
	"smoothlife/internal/kernel"

	"golang.org/x/sync/errgroup"
)

// filler computes the normalized inner and ring fill of every cell of src.
type filler interface {
	fill(src *core.FloatGrid, inner, outer []float64)
}

// directFiller sums the kernel offsets around each cell. Rows are split into
// contiguous bands so each worker writes a disjoint slice of the outputs.
type directFiller struct {
	boundary  core.Boundary
	inner     []kernel.Offset
	ring      []kernel.Offset
	innerNorm float64
	ringNorm  float64
	workers   int
}

func newDirectFiller(inner []kernel.Offset, ring []kernel.Offset, boundary core.Boundary, workers int) *directFiller {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &directFiller{
		boundary:  boundary,
		inner:     inner,
		ring:      ring,
		innerNorm: 1 / float64(len(inner)),
		ringNorm:  1 / float64(len(ring)),
		workers:   workers,
	}
}

func (d *directFiller) fill(src *core.FloatGrid, inner, outer []float64) {
	bands := d.workers
	if bands > src.H {
		bands = src.H
	}
	rowsPer := (src.H + bands - 1) / bands

	var g errgroup.Group
	for y0 := 0; y0 < src.H; y0 += rowsPer {
		y1 := min(y0+rowsPer, src.H)
		g.Go(func() error {
			d.fillRows(src, inner, outer, y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}

func (d *directFiller) fillRows(src *core.FloatGrid, inner, outer []float64, y0, y1 int) {
	cells := src.Cells()
	w, h := src.W, src.H
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			inner[idx] = sumOffsets(cells, w, h, x, y, d.inner, d.boundary) * d.innerNorm
			outer[idx] = sumOffsets(cells, w, h, x, y, d.ring, d.boundary) * d.ringNorm
		}
	}
}

func sumOffsets(cells []float64, w, h, x, y int, offsets []kernel.Offset, b core.Boundary) float64 {
	sum := 0.0
	for _, o := range offsets {
		nx := core.ResolveAxis(x+o.DX, w, b)
		ny := core.ResolveAxis(y+o.DY, h, b)
		sum += cells[ny*w+nx]
	}
	return sum
}
