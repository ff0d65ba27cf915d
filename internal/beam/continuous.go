package beam

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statikdev/gostatik/internal/statics"
)

// spanLoads groups the loads acting on one bay of a continuous beam.
type spanLoads struct {
	uniform float64
	points  []pointLoad
}

func groupLoads(loads []statics.Load, nSpans int) ([]spanLoads, error) {
	out := make([]spanLoads, nSpans)
	for _, ld := range loads {
		switch ld.Kind {
		case statics.LoadUniform:
			out[ld.Span].uniform += ld.Magnitude
		case statics.LoadPoint:
			out[ld.Span].points = append(out[ld.Span].points, pointLoad{p: ld.Magnitude, a: ld.Position})
		default:
			return nil, &statics.InvalidInputError{Field: "loads", Reason: "beam loads must be uniform or point loads"}
		}
	}
	return out, nil
}

// loadTermLeft is the 6·A·x̄/L term of the three-moment equation for the
// span left of a support; loadTermRight is its mirror for the span to the
// right.
func loadTermLeft(l float64, lds spanLoads) float64 {
	t := lds.uniform * l * l * l / 4
	for _, pl := range lds.points {
		a := pl.a
		t += pl.p * a * (l*l - a*a) / l
	}
	return t
}

func loadTermRight(l float64, lds spanLoads) float64 {
	t := lds.uniform * l * l * l / 4
	for _, pl := range lds.points {
		b := l - pl.a
		t += pl.p * b * (l*l - b*b) / l
	}
	return t
}

// SupportMoments solves the Clapeyron three-moment system for the bending
// moments over the interior supports of a continuous beam on simple
// supports. The returned slice covers all supports, with zero end moments.
func SupportMoments(spans []float64, loads []statics.Load) ([]float64, error) {
	n := len(spans)
	lds, err := groupLoads(loads, n)
	if err != nil {
		return nil, err
	}
	k := n - 1 // interior supports
	a := mat.NewDense(k, k, nil)
	b := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		li, lj := spans[i], spans[i+1]
		a.Set(i, i, 2*(li+lj))
		if i > 0 {
			a.Set(i, i-1, li)
		}
		if i < k-1 {
			a.Set(i, i+1, lj)
		}
		b.SetVec(i, -(loadTermLeft(li, lds[i]) + loadTermRight(lj, lds[i+1])))
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, &statics.SingularSystemError{Detail: err.Error()}
	}
	moments := make([]float64, n+1)
	for i := 0; i < k; i++ {
		moments[i+1] = x.AtVec(i)
	}
	return moments, nil
}

// SolveContinuous computes a 2- or 3-span continuous beam by solving the
// three-moment system for the interior support moments and rebuilding the
// per-span distributions from them. E in MPa, I in m⁴.
func SolveContinuous(sys *statics.BeamContinuous) (*statics.SolveResult, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	return SolveContinuousStrip(sys.Spans, sys.Loads, sys.E, sys.I)
}

// SolveContinuousStrip carries the continuous solve for an already
// validated sequence of spans; the slab solver reuses it with up to four
// spans and per-unit-width section values.
func SolveContinuousStrip(spans []float64, loads []statics.Load, e, i float64) (*statics.SolveResult, error) {
	moments, err := SupportMoments(spans, loads)
	if err != nil {
		return nil, err
	}
	lds, err := groupLoads(loads, len(spans))
	if err != nil {
		return nil, err
	}
	ei := e * 1000 * i

	res := &statics.SolveResult{}
	offset := 0.0
	for j, l := range spans {
		f := &spanField{
			l:       l,
			ei:      ei,
			uniform: lds[j].uniform,
			points:  lds[j].points,
			ma:      moments[j],
			mb:      moments[j+1],
		}
		maxM := f.momentExtremum()
		maxV := f.shearExtremum()
		maxD := f.deflectionExtremum()
		if math.Abs(maxM.Value) > math.Abs(res.MaxMoment.Value) {
			res.MaxMoment = statics.Extremum{Value: maxM.Value, X: offset + maxM.X}
		}
		if math.Abs(maxV.Value) > math.Abs(res.MaxShear.Value) {
			res.MaxShear = statics.Extremum{Value: maxV.Value, X: offset + maxV.X}
		}
		if math.Abs(maxD.Value*1000) > math.Abs(res.MaxDeflection.Value) {
			res.MaxDeflection = statics.Extremum{Value: maxD.Value * 1000, X: offset + maxD.X}
			res.GoverningSpan = l
		}
		res.Samples = f.sample(res.Samples, offset, maxM.X, maxD.X)
		offset += l
	}
	if res.GoverningSpan == 0 {
		for _, l := range spans {
			res.GoverningSpan = math.Max(res.GoverningSpan, l)
		}
	}
	return res, nil
}
