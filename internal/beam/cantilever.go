package beam

import (
	"math"
	"sort"

	"github.com/statikdev/gostatik/internal/statics"
)

// cantileverField evaluates one cantilever fixed at x=0 with a free tip
// at x=l. Moments are sagging-positive, so gravity loads give a negative
// (hogging) moment at the fixed end. Deflection is downward positive, m.
type cantileverField struct {
	l       float64 // m
	ei      float64 // kN·m²
	uniform float64 // kN/m
	points  []pointLoad
}

func (f *cantileverField) moment(x float64) float64 {
	r := f.l - x
	m := -f.uniform * r * r / 2
	for _, pl := range f.points {
		if pl.a >= x {
			m -= pl.p * (pl.a - x)
		}
	}
	return m
}

func (f *cantileverField) shear(x float64, left bool) float64 {
	v := f.uniform * (f.l - x)
	for _, pl := range f.points {
		if pl.a > x || (left && pl.a == x) {
			v += pl.p
		}
	}
	return v
}

func (f *cantileverField) deflection(x float64) float64 {
	ei := f.ei
	d := f.uniform * x * x * (6*f.l*f.l - 4*f.l*x + x*x) / (24 * ei)
	for _, pl := range f.points {
		a := pl.a
		if x <= a {
			d += pl.p * x * x * (3*a - x) / (6 * ei)
		} else {
			d += pl.p * a * a * (3*x - a) / (6 * ei)
		}
	}
	return d
}

// SolveCantilever computes the moment, shear and deflection distributions
// of a beam fixed at the left end with a free tip. E in MPa, I in m⁴.
func SolveCantilever(sys *statics.BeamCantilever) (*statics.SolveResult, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	f := &cantileverField{l: sys.Span, ei: sys.E * 1000 * sys.I}
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

	// Fixed-end moment and shear govern for any one-signed load set; with
	// mixed uplift loads the breakpoints still cover every candidate since
	// M' and V' keep one sign between load positions.
	cand := []float64{0, f.l}
	for _, pl := range f.points {
		cand = append(cand, pl.a)
	}
	maxM := statics.Extremum{Value: f.moment(0), X: 0}
	maxV := statics.Extremum{Value: f.shear(0, false), X: 0}
	for _, x := range cand {
		if m := f.moment(x); math.Abs(m) > math.Abs(maxM.Value) {
			maxM = statics.Extremum{Value: m, X: x}
		}
		for _, left := range []bool{true, false} {
			if v := f.shear(x, left); math.Abs(v) > math.Abs(maxV.Value) {
				maxV = statics.Extremum{Value: v, X: x}
			}
		}
	}
	maxD := f.deflectionExtremum()

	res := &statics.SolveResult{
		MaxMoment:     maxM,
		MaxShear:      maxV,
		MaxDeflection: statics.Extremum{Value: maxD.Value * 1000, X: maxD.X},
		GoverningSpan: sys.Span,
	}
	res.Samples = f.sample(nil, maxM.X, maxD.X)
	return res, nil
}

func (f *cantileverField) deflectionExtremum() statics.Extremum {
	// Monotone along the span for one-signed loads; the fine scan also
	// covers uplift combinations.
	const scan = 400
	bestX, bestV := f.l, f.deflection(f.l)
	for i := 0; i < scan; i++ {
		x := f.l * float64(i) / scan
		if v := f.deflection(x); math.Abs(v) > math.Abs(bestV) {
			bestX, bestV = x, v
		}
	}
	return statics.Extremum{Value: bestV, X: bestX}
}

func (f *cantileverField) sample(dst []statics.Sample, extra ...float64) []statics.Sample {
	xs := make([]float64, 0, samplesPerSpan+1+len(extra))
	for i := 0; i <= samplesPerSpan; i++ {
		xs = append(xs, f.l*float64(i)/samplesPerSpan)
	}
	xs = append(xs, extra...)
	sort.Float64s(xs)
	prev := math.Inf(-1)
	for _, x := range xs {
		if x-prev < 1e-12 {
			continue
		}
		prev = x
		dst = append(dst, statics.Sample{
			X:          x,
			Moment:     f.moment(x),
			Shear:      f.shear(x, false),
			Deflection: f.deflection(x) * 1000,
		})
	}
	return dst
}
