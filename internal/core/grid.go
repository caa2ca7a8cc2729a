package core

import "fmt"

// Boundary selects how coordinates outside the grid are resolved.
type Boundary uint8

const (
	// BoundaryWrap treats the grid as a torus.
	BoundaryWrap Boundary = iota
	// BoundaryClamp pins out-of-range coordinates to the nearest edge cell.
	BoundaryClamp
)

// String returns the configuration spelling of the policy.
func (b Boundary) String() string {
	switch b {
	case BoundaryWrap:
		return "wrap"
	case BoundaryClamp:
		return "clamp"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// ParseBoundary maps a configuration value to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "wrap", "torus", "":
		return BoundaryWrap, nil
	case "clamp":
		return BoundaryClamp, nil
	default:
		return BoundaryWrap, fmt.Errorf("unknown boundary policy %q", s)
	}
}

// FloatGrid stores a 2D grid of continuous cell values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a zeroed grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// ResolveAxis maps coordinate v onto [0, n) under policy b.
func ResolveAxis(v, n int, b Boundary) int {
	if v >= 0 && v < n {
		return v
	}
	if b == BoundaryClamp {
		if v < 0 {
			return 0
		}
		return n - 1
	}
	return (v%n + n) % n
}

// Resolve maps any coordinate onto a valid cell under the given policy.
func (g *FloatGrid) Resolve(x, y int, b Boundary) (int, int) {
	return ResolveAxis(x, g.W, b), ResolveAxis(y, g.H, b)
}

// At reads the cell at (x, y), resolving out-of-range coordinates with b.
func (g *FloatGrid) At(x, y int, b Boundary) float64 {
	x, y = g.Resolve(x, y, b)
	return g.data[y*g.W+x]
}

// Shift returns a copy translated by (dx, dy) on the torus, so that the value
// at (x, y) moves to (x+dx, y+dy).
func (g *FloatGrid) Shift(dx, dy int) *FloatGrid {
	out := NewFloatGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			nx, ny := g.Resolve(x+dx, y+dy, BoundaryWrap)
			out.data[ny*g.W+nx] = g.data[y*g.W+x]
		}
	}
	return out
}
