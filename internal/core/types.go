package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a continuous cellular automaton exposes to a driver.
// Cells returns the committed generation; the slice stays valid until the next
// call to Step.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []float64
	Generation() int
}

// Stats summarizes a generation for logs and the HUD.
type Stats struct {
	Mean float64
	Min  float64
	Max  float64
	// Live is the fraction of cells above one half.
	Live float64
}

// Summarize computes Stats over cells. An empty slice yields the zero value.
func Summarize(cells []float64) Stats {
	if len(cells) == 0 {
		return Stats{}
	}
	s := Stats{Min: cells[0], Max: cells[0]}
	sum := 0.0
	live := 0
	for _, v := range cells {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		if v > 0.5 {
			live++
		}
	}
	s.Mean = sum / float64(len(cells))
	s.Live = float64(live) / float64(len(cells))
	return s
}
