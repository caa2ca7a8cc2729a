package smoothlife

import (
	"strconv"

	"smoothlife/internal/core"
)

// Parameters describes the configuration the world is running with.
func (w *World) Parameters() core.ParameterSnapshot {
	rule := w.cfg.Rule
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("width", "Width", w.cfg.Width),
				intParam("height", "Height", w.cfg.Height),
				intParam("cell_size", "Cell size", w.cfg.CellSize),
				int64Param("seed", "Seed", w.Seed()),
				stringParam("boundary", "Boundary", w.boundary.String()),
				stringParam("engine", "Engine", string(w.cfg.Engine)),
			},
		},
		{
			Name: "Kernels",
			Params: []core.Parameter{
				intParam("inner_radius", "Inner radius", w.cfg.InnerRadius),
				intParam("outer_radius", "Outer radius", w.cfg.OuterRadius),
				intParam("inner_cells", "Inner cells", int(w.innerKernel.Sum())),
				intParam("ring_cells", "Ring cells", len(w.ring)),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				floatParam("b1", "Birth low", rule.B1),
				floatParam("b2", "Birth high", rule.B2),
				floatParam("d1", "Survive low", rule.D1),
				floatParam("d2", "Survive high", rule.D2),
				floatParam("alpha_n", "Ring steepness", rule.AlphaN),
				floatParam("alpha_m", "Inner steepness", rule.AlphaM),
				floatParam("dt", "Time step", rule.DT),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
