package statics

import "sort"

// Sample is one point of a solved internal-force and deflection field.
type Sample struct {
	X          float64 // m along the member axis
	Moment     float64 // kNm (kNm/m for slabs), sagging positive
	Shear      float64 // kN (kN/m for slabs)
	Deflection float64 // mm, downward positive
}

// Extremum is a scalar summary value with the position it occurs at.
type Extremum struct {
	Value float64
	X     float64 // m
}

// Reaction holds the support forces at one frame base.
type Reaction struct {
	Support    int     // base index, left to right
	Horizontal float64 // kN
	Vertical   float64 // kN
	Moment     float64 // kNm, zero for pinned bases
}

// Reinforcement is the required slab reinforcement per unit width,
// rounded to a standard bar/spacing combination.
type Reinforcement struct {
	RequiredMain  float64 // mm²/m, main direction
	RequiredCross float64 // mm²/m, distribution direction

	BarDiameter float64 // mm
	Spacing     float64 // mm
	Provided    float64 // mm²/m

	CrossBarDiameter float64 // mm
	CrossSpacing     float64 // mm
	CrossProvided    float64 // mm²/m
}

// SolveResult is the immutable output of one solver invocation. Samples
// are ordered by position and aligned with span boundaries; extrema are
// computed analytically where closed-form, not read off the grid.
type SolveResult struct {
	Samples []Sample

	MaxMoment     Extremum // largest |M|, sign preserved
	MaxShear      Extremum // largest |V|, sign preserved
	MaxDeflection Extremum // mm

	// GoverningSpan is the span length (m) the serviceability ratio is
	// measured against: the longest bay for continuous systems, the
	// girder span for frames.
	GoverningSpan float64

	Reactions     []Reaction     // frames only
	Reinforcement *Reinforcement // slabs only
}

// DeflectionAt returns the deflection (mm) at position x by linear
// interpolation of the sample grid. Extremum positions are always part
// of the grid, so summary maxima reproduce exactly.
func (r *SolveResult) DeflectionAt(x float64) float64 {
	return r.interpolate(x, func(s Sample) float64 { return s.Deflection })
}

// MomentAt returns the bending moment (kNm) at position x by linear
// interpolation of the sample grid.
func (r *SolveResult) MomentAt(x float64) float64 {
	return r.interpolate(x, func(s Sample) float64 { return s.Moment })
}

func (r *SolveResult) interpolate(x float64, f func(Sample) float64) float64 {
	n := len(r.Samples)
	if n == 0 {
		return 0
	}
	if x <= r.Samples[0].X {
		return f(r.Samples[0])
	}
	if x >= r.Samples[n-1].X {
		return f(r.Samples[n-1])
	}
	i := sort.Search(n, func(i int) bool { return r.Samples[i].X >= x })
	a, b := r.Samples[i-1], r.Samples[i]
	if b.X == a.X {
		return f(b)
	}
	t := (x - a.X) / (b.X - a.X)
	return f(a) + t*(f(b)-f(a))
}
