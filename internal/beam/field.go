package beam

import (
	"math"
	"sort"

	"github.com/statikdev/gostatik/internal/statics"
)

// samplesPerSpan is the grid density per bay; extremum positions are
// inserted on top of the grid so reported maxima are exact samples.
const samplesPerSpan = 80

type pointLoad struct {
	p float64 // kN
	a float64 // m from the left end of the span
}

// spanField evaluates the internal-force and deflection distributions of
// one simply supported bay under a uniform load, point loads and end
// moments. End moments are sagging-positive, so interior support moments
// of a continuous beam enter as negative values. Deflection is downward
// positive, in meters.
type spanField struct {
	l       float64 // m
	ei      float64 // kN·m²
	uniform float64 // kN/m
	points  []pointLoad
	ma, mb  float64 // kNm at x=0 and x=l
}

func (f *spanField) moment(x float64) float64 {
	l := f.l
	m := f.uniform * x * (l - x) / 2
	for _, pl := range f.points {
		b := l - pl.a
		if x <= pl.a {
			m += pl.p * b * x / l
		} else {
			m += pl.p * pl.a * (l - x) / l
		}
	}
	return m + f.ma*(1-x/l) + f.mb*x/l
}

// shear returns the one-sided shear value; left selects the limit from
// the left at point-load positions.
func (f *spanField) shear(x float64, left bool) float64 {
	l := f.l
	v := f.uniform * (l/2 - x)
	for _, pl := range f.points {
		before := x < pl.a || (left && x == pl.a)
		if before {
			v += pl.p * (l - pl.a) / l
		} else {
			v -= pl.p * pl.a / l
		}
	}
	return v + (f.mb-f.ma)/l
}

func (f *spanField) deflection(x float64) float64 {
	l, ei := f.l, f.ei
	d := f.uniform * x * (l*l*l - 2*l*x*x + x*x*x) / (24 * ei)
	for _, pl := range f.points {
		a, b := pl.a, l-pl.a
		if x <= a {
			d += pl.p * b * x * (l*l - b*b - x*x) / (6 * l * ei)
		} else {
			d += pl.p * a * (l - x) * (2*l*x - a*a - x*x) / (6 * l * ei)
		}
	}
	// End-moment contribution, from EI·v'' = −M with v(0) = v(l) = 0.
	g := func(m, x float64) float64 {
		return m * (l*x/3 - x*x/2 + x*x*x/(6*l)) / ei
	}
	return d + g(f.ma, x) + g(f.mb, l-x)
}

// breakpoints returns the positions where the shear is discontinuous,
// including both span ends, sorted ascending.
func (f *spanField) breakpoints() []float64 {
	bps := []float64{0, f.l}
	for _, pl := range f.points {
		bps = append(bps, pl.a)
	}
	sort.Float64s(bps)
	return bps
}

// momentExtremum locates the largest-magnitude bending moment. Between
// shear discontinuities the shear is linear, so candidates are the
// breakpoints plus the shear zero-crossings.
func (f *spanField) momentExtremum() statics.Extremum {
	cand := f.breakpoints()
	for i := 0; i+1 < len(cand); i++ {
		x0, x1 := cand[i], cand[i+1]
		v0 := f.shear(x0, false)
		v1 := f.shear(x1, true)
		if v0 == v1 || v0*v1 > 0 {
			continue
		}
		cand = append(cand, x0+(x1-x0)*v0/(v0-v1))
	}
	best := statics.Extremum{Value: f.moment(0), X: 0}
	for _, x := range cand {
		if m := f.moment(x); math.Abs(m) > math.Abs(best.Value) {
			best = statics.Extremum{Value: m, X: x}
		}
	}
	return best
}

func (f *spanField) shearExtremum() statics.Extremum {
	best := statics.Extremum{Value: f.shear(0, false), X: 0}
	for _, x := range f.breakpoints() {
		for _, left := range []bool{true, false} {
			if x == 0 && left || x == f.l && !left {
				continue
			}
			if v := f.shear(x, left); math.Abs(v) > math.Abs(best.Value) {
				best = statics.Extremum{Value: v, X: x}
			}
		}
	}
	return best
}

// deflectionExtremum scans a fine grid and refines the best interval by
// ternary search. For a single uniform load the result is the exact
// closed-form midspan value.
func (f *spanField) deflectionExtremum() statics.Extremum {
	if len(f.points) == 0 && f.ma == 0 && f.mb == 0 {
		x := f.l / 2
		return statics.Extremum{Value: f.deflection(x), X: x}
	}
	const scan = 400
	bestX, bestV := 0.0, 0.0
	for i := 0; i <= scan; i++ {
		x := f.l * float64(i) / scan
		if v := f.deflection(x); math.Abs(v) > math.Abs(bestV) {
			bestX, bestV = x, v
		}
	}
	lo := math.Max(0, bestX-f.l/scan)
	hi := math.Min(f.l, bestX+f.l/scan)
	for hi-lo > 1e-12*f.l {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if math.Abs(f.deflection(m1)) < math.Abs(f.deflection(m2)) {
			lo = m1
		} else {
			hi = m2
		}
	}
	x := (lo + hi) / 2
	return statics.Extremum{Value: f.deflection(x), X: x}
}

// sample discretizes the span and appends to dst with positions shifted
// by offset. extra positions (local coordinates) are inserted into the
// grid so reported extrema coincide with samples.
func (f *spanField) sample(dst []statics.Sample, offset float64, extra ...float64) []statics.Sample {
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
			X:          offset + x,
			Moment:     f.moment(x),
			Shear:      f.shear(x, false),
			Deflection: f.deflection(x) * 1000, // m → mm
		})
	}
	return dst
}
