package smoothlife

import "math"

// sigma1 is a logistic step centred on a with transition width alpha.
func sigma1(x, a, alpha float64) float64 {
	return 1 / (1 + math.Exp(-4*(x-a)/alpha))
}

// sigma2 is a smooth indicator of a <= x <= b.
func sigma2(x, a, b, alpha float64) float64 {
	return sigma1(x, a, alpha) * (1 - sigma1(x, b, alpha))
}

// sigmaM blends between x (dead) and y (alive) by the inner fill m.
func sigmaM(x, y, m, alpha float64) float64 {
	w := sigma1(m, 0.5, alpha)
	return x*(1-w) + y*w
}

// Transition returns s(n, m) for ring fill n and inner fill m. Births happen
// for n in [b1, b2] around dead cells and survival for n in [d1, d2] around
// live ones.
func (r Rule) Transition(n, m float64) float64 {
	lo := sigmaM(r.B1, r.D1, m, r.AlphaM)
	hi := sigmaM(r.B2, r.D2, m, r.AlphaM)
	return clamp01(sigma2(n, lo, hi, r.AlphaN))
}

// Next computes the next value of a cell holding cur.
func (r Rule) Next(cur, inner, outer float64) float64 {
	s := r.Transition(outer, inner)
	if r.DT > 0 {
		return clamp01(cur + r.DT*(2*s-1))
	}
	return s
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
