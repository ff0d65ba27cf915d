package slab

import (
	"math"

	"github.com/statikdev/gostatik/internal/catalog"
	"github.com/statikdev/gostatik/internal/statics"
)

const (
	// Nominal axis distance from the slab face to the bar centroid (m).
	axisDistance = 0.03
	// Practical reinforcement density limit per direction: beyond 2% of
	// the effective section the thickness is inadequate.
	maxReinforcementRatio = 0.02
	// Minimum reinforcement ratio for crack control.
	minReinforcementRatio = 0.0015
)

// RequiredArea returns the required reinforcement area (mm²/m) for a
// design moment m (kNm/m) in a slab of thickness h (m), using the
// lever-arm method with z = 0.9·d and B500 design strength. The result
// grows monotonically with the moment.
func RequiredArea(m, h float64) (float64, error) {
	d := h - axisDistance
	if d <= 0 {
		return 0, &statics.InsufficientDepthError{RequiredMM2: math.Inf(1), LimitMM2: 0}
	}
	dMM := d * 1000
	z := 0.9 * dMM
	req := math.Abs(m) * 1e6 / (z * catalog.RebarFyd)
	if min := minReinforcementRatio * 1000 * dMM; req < min {
		req = min
	}
	if limit := maxReinforcementRatio * 1000 * dMM; req > limit {
		return 0, &statics.InsufficientDepthError{RequiredMM2: req, LimitMM2: limit}
	}
	return req, nil
}

// SelectBars rounds a required area (mm²/m) up to the next standard
// bar-diameter/spacing combination, preferring the smallest sufficient
// provided area.
func SelectBars(required float64) (diameter, spacing, provided float64, ok bool) {
	best := math.Inf(1)
	for _, dia := range catalog.BarDiameters {
		for _, sp := range catalog.BarSpacings {
			area := catalog.AreaPerMeter(dia, sp)
			if area >= required && area < best {
				best = area
				diameter, spacing, provided = dia, sp, area
				ok = true
			}
		}
	}
	return diameter, spacing, provided, ok
}

// attachReinforcement sizes main and distribution reinforcement for the
// governing moments and attaches the chosen bars to the result.
func attachReinforcement(res *statics.SolveResult, mMain, mCross, h float64) error {
	reqMain, err := RequiredArea(mMain, h)
	if err != nil {
		return err
	}
	reqCross, err := RequiredArea(mCross, h)
	if err != nil {
		return err
	}
	// Distribution reinforcement is never below 20% of the main steel.
	if floor := 0.2 * reqMain; reqCross < floor {
		reqCross = floor
	}

	dMain, sMain, aMain, okMain := SelectBars(reqMain)
	dCross, sCross, aCross, okCross := SelectBars(reqCross)
	if !okMain || !okCross {
		limit := maxReinforcementRatio * 1000 * (h - axisDistance) * 1000
		return &statics.InsufficientDepthError{RequiredMM2: math.Max(reqMain, reqCross), LimitMM2: limit}
	}

	res.Reinforcement = &statics.Reinforcement{
		RequiredMain:     reqMain,
		RequiredCross:    reqCross,
		BarDiameter:      dMain,
		Spacing:          sMain,
		Provided:         aMain,
		CrossBarDiameter: dCross,
		CrossSpacing:     sCross,
		CrossProvided:    aCross,
	}
	return nil
}
