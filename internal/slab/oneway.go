package slab

import (
	"github.com/statikdev/gostatik/internal/beam"
	"github.com/statikdev/gostatik/internal/statics"
)

// stripI returns the per-unit-width second moment of area (m⁴/m) of a
// slab of thickness h (m).
func stripI(h float64) float64 {
	return h * h * h / 12
}

// SolveSingleSpan computes a single-span slab. Without AllSides the slab
// is treated as a one-way strip of unit width on the beam formulas; with
// AllSides the tabulated plate-coefficient method applies.
func SolveSingleSpan(sys *statics.SlabSingle) (*statics.SolveResult, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	if sys.AllSides {
		return solveAllSides(sys)
	}
	res, err := beam.SolveSingleSpan(&statics.BeamSingle{
		Span:     sys.SpanX,
		Supports: [2]statics.SupportKind{statics.SupportPinned, statics.SupportRoller},
		Loads:    []statics.Load{statics.Uniform(sys.Load)}, // kN/m² × 1 m strip
		E:        sys.E,
		I:        stripI(sys.Thickness),
	})
	if err != nil {
		return nil, err
	}
	if err := attachReinforcement(res, res.MaxMoment.Value, res.MaxMoment.Value*0.2, sys.Thickness); err != nil {
		return nil, err
	}
	return res, nil
}

// SolveContinuous computes a 2–4 span one-way continuous slab strip of
// unit width using the beam three-moment solve.
func SolveContinuous(sys *statics.SlabContinuous) (*statics.SolveResult, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	loads := make([]statics.Load, len(sys.Spans))
	for i := range sys.Spans {
		loads[i] = statics.UniformInSpan(sys.Load, i)
	}
	res, err := beam.SolveContinuousStrip(sys.Spans, loads, sys.E, stripI(sys.Thickness))
	if err != nil {
		return nil, err
	}
	if err := attachReinforcement(res, res.MaxMoment.Value, res.MaxMoment.Value*0.2, sys.Thickness); err != nil {
		return nil, err
	}
	return res, nil
}
