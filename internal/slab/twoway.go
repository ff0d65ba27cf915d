package slab

import (
	"math"

	"github.com/statikdev/gostatik/internal/statics"
)

// Poisson's ratio for concrete plate stiffness.
const nu = 0.2

// plateCoeff is one row of the simply supported rectangular-plate table:
// for aspect ratio eps = ly/lx ≥ 1, the midspan deflection is
// k·q·lx⁴/D, the design-direction moment betaX·q·lx² and the cross
// moment betaY·q·lx².
type plateCoeff struct {
	eps   float64
	k     float64
	betaX float64
	betaY float64
}

// Timoshenko & Woinowsky-Krieger, simply supported plate under uniform
// load. Kept as a plain table so a Czerny/DIN table can be swapped in.
var plateCoeffs = []plateCoeff{
	{1.0, 0.00406, 0.0479, 0.0479},
	{1.1, 0.00485, 0.0554, 0.0493},
	{1.2, 0.00564, 0.0627, 0.0501},
	{1.3, 0.00638, 0.0694, 0.0503},
	{1.4, 0.00705, 0.0755, 0.0502},
	{1.5, 0.00772, 0.0812, 0.0498},
	{1.6, 0.00830, 0.0862, 0.0492},
	{1.7, 0.00883, 0.0908, 0.0486},
	{1.8, 0.00931, 0.0948, 0.0479},
	{1.9, 0.00974, 0.0985, 0.0471},
	{2.0, 0.01013, 0.1017, 0.0464},
}

// interpCoeff linearly interpolates the table; ratios beyond 2.0 keep the
// last row (the plate then carries close to one-way).
func interpCoeff(eps float64) plateCoeff {
	if eps <= plateCoeffs[0].eps {
		return plateCoeffs[0]
	}
	last := plateCoeffs[len(plateCoeffs)-1]
	if eps >= last.eps {
		return last
	}
	for i := 1; i < len(plateCoeffs); i++ {
		hi := plateCoeffs[i]
		if eps > hi.eps {
			continue
		}
		lo := plateCoeffs[i-1]
		t := (eps - lo.eps) / (hi.eps - lo.eps)
		return plateCoeff{
			eps:   eps,
			k:     lo.k + t*(hi.k-lo.k),
			betaX: lo.betaX + t*(hi.betaX-lo.betaX),
			betaY: lo.betaY + t*(hi.betaY-lo.betaY),
		}
	}
	return last
}

// solveAllSides computes a slab supported on all four edges with the
// coefficient method. The shorter side is the design direction lx. The
// sampled curve is the first-mode shape across the design span, which is
// exact at midspan where the coefficients apply.
func solveAllSides(sys *statics.SlabSingle) (*statics.SolveResult, error) {
	lx, ly := sys.SpanX, sys.SpanY
	if ly < lx {
		lx, ly = ly, lx
	}
	co := interpCoeff(ly / lx)

	h := sys.Thickness
	eKNm2 := sys.E * 1000
	d := eKNm2 * h * h * h / (12 * (1 - nu*nu)) // plate stiffness, kN·m

	q := sys.Load
	mx := co.betaX * q * lx * lx // kNm/m, design direction
	my := co.betaY * q * lx * lx // kNm/m, cross direction
	defl := co.k * q * lx * lx * lx * lx / d // m

	res := &statics.SolveResult{
		MaxMoment:     statics.Extremum{Value: mx, X: lx / 2},
		MaxDeflection: statics.Extremum{Value: defl * 1000, X: lx / 2},
		MaxShear:      statics.Extremum{Value: q * lx / 2, X: 0},
		GoverningSpan: lx,
	}
	const n = 80
	for i := 0; i <= n; i++ {
		x := lx * float64(i) / n
		shape := math.Sin(math.Pi * x / lx)
		res.Samples = append(res.Samples, statics.Sample{
			X:          x,
			Moment:     mx * shape,
			Shear:      q * lx / 2 * math.Cos(math.Pi*x/lx),
			Deflection: defl * 1000 * shape,
		})
	}
	if err := attachReinforcement(res, mx, my, h); err != nil {
		return nil, err
	}
	return res, nil
}
