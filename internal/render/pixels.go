package render

import (
	"image/color"
	"math"
)

// GradientSize is the number of entries produced by NewGradient.
const GradientSize = 256

// DefaultGradient runs from black through deep blue to warm white.
var DefaultGradient = NewGradient(
	color.RGBA{R: 0, G: 0, B: 0, A: 255},
	color.RGBA{R: 20, G: 40, B: 120, A: 255},
	color.RGBA{R: 90, G: 170, B: 210, A: 255},
	color.RGBA{R: 250, G: 245, B: 230, A: 255},
)

// NewGradient interpolates evenly spaced stops into a GradientSize palette.
// A single stop yields a flat palette; no stops yields nil.
func NewGradient(stops ...color.RGBA) []color.RGBA {
	if len(stops) == 0 {
		return nil
	}
	palette := make([]color.RGBA, GradientSize)
	if len(stops) == 1 {
		for i := range palette {
			palette[i] = stops[0]
		}
		return palette
	}
	segments := float64(len(stops) - 1)
	for i := range palette {
		t := float64(i) / float64(GradientSize-1) * segments
		seg := int(t)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		palette[i] = lerpRGBA(stops[seg], stops[seg+1], t-float64(seg))
	}
	return palette
}

// fillFloatRGBA converts continuous cell values in [0,1] into RGBA pixels in
// buf using palette. When the palette is empty the buffer is cleared to
// transparent black.
func fillFloatRGBA(buf []byte, cells []float64, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(math.Round(clamp01(c) * float64(last)))
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
