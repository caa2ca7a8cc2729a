package smoothlife

import (
	"smoothlife/internal/core"
	"smoothlife/internal/kernel"

	"gonum.org/v1/gonum/dsp/fourier"
)

// fftFiller evaluates both neighbourhood sums as circular convolutions. The
// kernel spectra are computed once; each step costs one forward and two
// inverse 2D transforms.
type fftFiller struct {
	w, h int
	rows *fourier.CmplxFFT
	cols *fourier.CmplxFFT

	innerSpec []complex128
	ringSpec  []complex128

	grid []complex128
	work []complex128

	lineIn  []complex128
	lineOut []complex128
}

func newFFTFiller(w, h int, inner, ring []kernel.Offset) *fftFiller {
	f := &fftFiller{
		w:       w,
		h:       h,
		rows:    fourier.NewCmplxFFT(w),
		cols:    fourier.NewCmplxFFT(h),
		grid:    make([]complex128, w*h),
		work:    make([]complex128, w*h),
		lineIn:  make([]complex128, max(w, h)),
		lineOut: make([]complex128, max(w, h)),
	}
	f.innerSpec = f.spectrum(inner)
	f.ringSpec = f.spectrum(ring)
	return f
}

// spectrum transforms the normalized stencil. Weights are stored mirrored so
// the product in frequency space yields sum_d k(d) * grid(x+d).
func (f *fftFiller) spectrum(offsets []kernel.Offset) []complex128 {
	out := make([]complex128, f.w*f.h)
	weight := complex(1/float64(len(offsets)), 0)
	for _, o := range offsets {
		x := ((-o.DX)%f.w + f.w) % f.w
		y := ((-o.DY)%f.h + f.h) % f.h
		out[y*f.w+x] += weight
	}
	f.transform(out, false)
	return out
}

func (f *fftFiller) fill(src *core.FloatGrid, inner, outer []float64) {
	for i, v := range src.Cells() {
		f.grid[i] = complex(v, 0)
	}
	f.transform(f.grid, false)
	f.convolve(f.innerSpec, inner)
	f.convolve(f.ringSpec, outer)
}

func (f *fftFiller) convolve(spec []complex128, dst []float64) {
	for i, g := range f.grid {
		f.work[i] = g * spec[i]
	}
	f.transform(f.work, true)
	for i, v := range f.work {
		dst[i] = clamp01(real(v))
	}
}

// transform applies a 2D DFT in place as row passes followed by column
// passes. The inverse is scaled by 1/(w*h).
func (f *fftFiller) transform(data []complex128, inverse bool) {
	w, h := f.w, f.h
	in, out := f.lineIn[:w], f.lineOut[:w]
	for y := 0; y < h; y++ {
		row := data[y*w : (y+1)*w]
		copy(in, row)
		if inverse {
			f.rows.Sequence(out, in)
		} else {
			f.rows.Coefficients(out, in)
		}
		copy(row, out)
	}

	in, out = f.lineIn[:h], f.lineOut[:h]
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			in[y] = data[y*w+x]
		}
		if inverse {
			f.cols.Sequence(out, in)
		} else {
			f.cols.Coefficients(out, in)
		}
		for y := 0; y < h; y++ {
			data[y*w+x] = out[y]
		}
	}

	if inverse {
		scale := complex(1/float64(w*h), 0)
		for i := range data {
			data[i] *= scale
		}
	}
}
