// Package kernel builds the circular neighbourhood stencils used by the
// smoothlife step engine.
package kernel

import "strings"

// Offset is a neighbour position relative to the cell being updated.
type Offset struct {
	DX, DY int
}

// Kernel is an immutable square stencil of side 2*radius. A weight is 1 when
// the cell lies inside the closed disk centred at (radius, radius).
type Kernel struct {
	radius  int
	side    int
	weights []float64
	sum     float64
}

// Build returns the disk mask for radius. Cells exactly on the circle are
// included. A non-positive radius yields an empty kernel.
func Build(radius int) Kernel {
	if radius <= 0 {
		return Kernel{}
	}
	side := 2 * radius
	rr := radius * radius
	k := Kernel{radius: radius, side: side, weights: make([]float64, side*side)}
	for y := 0; y < side; y++ {
		dy := y - radius
		for x := 0; x < side; x++ {
			dx := x - radius
			if dx*dx+dy*dy <= rr {
				k.weights[y*side+x] = 1
				k.sum++
			}
		}
	}
	return k
}

// Radius reports the radius the kernel was built from.
func (k Kernel) Radius() int { return k.radius }

// Size reports the side length of the square stencil.
func (k Kernel) Size() int { return k.side }

// Sum returns the total weight, i.e. the number of cells in the disk.
func (k Kernel) Sum() float64 { return k.sum }

// Empty reports whether the kernel has no cells.
func (k Kernel) Empty() bool { return k.side == 0 }

// At returns the weight at stencil coordinates (x, y), or 0 outside the square.
func (k Kernel) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= k.side || y >= k.side {
		return 0
	}
	return k.weights[y*k.side+x]
}

// Weights returns a row-major copy of the stencil.
func (k Kernel) Weights() []float64 {
	out := make([]float64, len(k.weights))
	copy(out, k.weights)
	return out
}

// Contains reports whether offset o falls inside the disk.
func (k Kernel) Contains(o Offset) bool {
	return k.At(o.DX+k.radius, o.DY+k.radius) != 0
}

// Offsets lists the in-disk positions relative to the centre in row-major order.
func (k Kernel) Offsets() []Offset {
	out := make([]Offset, 0, int(k.sum))
	for y := 0; y < k.side; y++ {
		for x := 0; x < k.side; x++ {
			if k.weights[y*k.side+x] != 0 {
				out = append(out, Offset{DX: x - k.radius, DY: y - k.radius})
			}
		}
	}
	return out
}

// Ring lists the offsets covered by outer but not by inner: the annulus
// between the two disks.
func Ring(outer, inner Kernel) []Offset {
	all := outer.Offsets()
	out := all[:0]
	for _, o := range all {
		if !inner.Contains(o) {
			out = append(out, o)
		}
	}
	return out
}

// String renders the stencil with '#' for included cells and '.' otherwise.
func (k Kernel) String() string {
	var b strings.Builder
	for y := 0; y < k.side; y++ {
		for x := 0; x < k.side; x++ {
			if k.weights[y*k.side+x] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
