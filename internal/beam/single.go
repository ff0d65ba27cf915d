package beam

import (
	"github.com/statikdev/gostatik/internal/statics"
)

// SolveSingleSpan computes the moment, shear and deflection distributions
// of a simply supported single-span beam. E in MPa, I in m⁴.
func SolveSingleSpan(sys *statics.BeamSingle) (*statics.SolveResult, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	f := &spanField{l: sys.Span, ei: sys.E * 1000 * sys.I}
	for _, ld := range sys.Loads {
		switch ld.Kind {
		case statics.LoadUniform:
			f.uniform += ld.Magnitude
		case statics.LoadPoint:
			f.points = append(f.points, pointLoad{p: ld.Magnitude, a: ld.Position})
		default:
			return nil, &statics.InvalidInputError{Field: "loads", Reason: "beam loads must be uniform or point loads"}
		}
	}

	maxM := f.momentExtremum()
	maxV := f.shearExtremum()
	maxD := f.deflectionExtremum()

	res := &statics.SolveResult{
		MaxMoment:     maxM,
		MaxShear:      maxV,
		MaxDeflection: statics.Extremum{Value: maxD.Value * 1000, X: maxD.X},
		GoverningSpan: sys.Span,
	}
	res.Samples = f.sample(nil, 0, maxM.X, maxD.X)
	return res, nil
}
