package slab

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikdev/gostatik/internal/catalog"
	"github.com/statikdev/gostatik/internal/statics"
)

func TestSolveSingleSpanOneWay(t *testing.T) {
	sys := &statics.SlabSingle{
		SpanX:     4.5,
		Thickness: 0.18,
		Load:      7.5,
		E:         31000, // C25/30
	}
	res, err := SolveSingleSpan(sys)
	require.NoError(t, err)

	// Unit strip: M = q·L²/8 per meter width.
	assert.InDelta(t, 7.5*4.5*4.5/8, res.MaxMoment.Value, 1e-9)
	assert.Equal(t, 4.5, res.GoverningSpan)

	rf := res.Reinforcement
	require.NotNil(t, rf)
	assert.GreaterOrEqual(t, rf.Provided, rf.RequiredMain)
	assert.GreaterOrEqual(t, rf.CrossProvided, rf.RequiredCross)
	assert.GreaterOrEqual(t, rf.RequiredCross, 0.2*rf.RequiredMain)
	assert.Contains(t, catalog.BarDiameters, rf.BarDiameter)
	assert.Contains(t, catalog.BarSpacings, rf.Spacing)
}

func TestSolveSingleSpanAllSidesSquare(t *testing.T) {
	sys := &statics.SlabSingle{
		SpanX:     5,
		SpanY:     5,
		Thickness: 0.2,
		Load:      8,
		AllSides:  true,
		E:         31000,
	}
	res, err := SolveSingleSpan(sys)
	require.NoError(t, err)

	// Square plate, simply supported: m = 0.0479·q·l² in both directions,
	// w = 0.00406·q·l⁴/D.
	assert.InDelta(t, 0.0479*8*25, res.MaxMoment.Value, 1e-9)

	d := 31000.0 * 1000 * 0.2 * 0.2 * 0.2 / (12 * (1 - 0.2*0.2))
	want := 0.00406 * 8 * math.Pow(5, 4) / d * 1000
	assert.InDelta(t, want, res.MaxDeflection.Value, 1e-9)
	assert.Equal(t, 5.0, res.GoverningSpan)

	rf := res.Reinforcement
	require.NotNil(t, rf)
	// Square plate reinforces equally in both directions.
	assert.InDelta(t, rf.RequiredMain, rf.RequiredCross, 1e-9)
}

func TestSolveSingleSpanAllSidesShortSideGoverns(t *testing.T) {
	a := &statics.SlabSingle{
		SpanX: 4, SpanY: 7, Thickness: 0.2, Load: 8, AllSides: true, E: 31000,
	}
	b := &statics.SlabSingle{
		SpanX: 7, SpanY: 4, Thickness: 0.2, Load: 8, AllSides: true, E: 31000,
	}
	ra, err := SolveSingleSpan(a)
	require.NoError(t, err)
	rb, err := SolveSingleSpan(b)
	require.NoError(t, err)

	// Orientation of the input must not matter: the shorter side is the
	// design direction either way.
	assert.Equal(t, 4.0, ra.GoverningSpan)
	assert.InDelta(t, ra.MaxMoment.Value, rb.MaxMoment.Value, 1e-9)
	assert.InDelta(t, ra.MaxDeflection.Value, rb.MaxDeflection.Value, 1e-9)
}

func TestInterpCoeffClampsAndInterpolates(t *testing.T) {
	// Beyond the table the plate carries close to one-way: last row holds.
	co := interpCoeff(3.0)
	assert.Equal(t, 0.01013, co.k)

	// Between rows the coefficients interpolate linearly.
	co = interpCoeff(1.05)
	assert.InDelta(t, (0.00406+0.00485)/2, co.k, 1e-9)
	assert.InDelta(t, (0.0479+0.0554)/2, co.betaX, 1e-9)
}

func TestSolveContinuousSlab(t *testing.T) {
	sys := &statics.SlabContinuous{
		Spans:     []float64{4, 4},
		Thickness: 0.2,
		Load:      9,
		E:         31000,
	}
	res, err := SolveContinuous(sys)
	require.NoError(t, err)

	// Two equal spans: the support moment −qL²/8 governs.
	assert.InDelta(t, -9*16/8.0, res.MaxMoment.Value, 1e-9)
	require.NotNil(t, res.Reinforcement)
}

func TestSolveContinuousSlabFourSpans(t *testing.T) {
	sys := &statics.SlabContinuous{
		Spans:     []float64{3.5, 4, 4, 3.5},
		Thickness: 0.18,
		Load:      7,
		E:         31000,
	}
	res, err := SolveContinuous(sys)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, res.Samples[len(res.Samples)-1].X, 1e-9)

	_, err = SolveContinuous(&statics.SlabContinuous{
		Spans:     []float64{3, 3, 3, 3, 3},
		Thickness: 0.18,
		Load:      7,
		E:         31000,
	})
	require.Error(t, err)
}

func TestRequiredAreaMonotone(t *testing.T) {
	a1, err := RequiredArea(30, 0.2)
	require.NoError(t, err)
	a2, err := RequiredArea(60, 0.2)
	require.NoError(t, err)
	assert.Greater(t, a2, a1)

	// Hogging moments size the same steel.
	a3, err := RequiredArea(-60, 0.2)
	require.NoError(t, err)
	assert.Equal(t, a2, a3)
}

func TestRequiredAreaMinimumFloor(t *testing.T) {
	// A tiny moment still gets crack-control minimum steel.
	req, err := RequiredArea(0.1, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0015*1000*170, req, 1e-9)
}

func TestRequiredAreaInsufficientDepth(t *testing.T) {
	_, err := RequiredArea(200, 0.1)
	require.Error(t, err)
	var depth *statics.InsufficientDepthError
	require.True(t, errors.As(err, &depth))
	assert.Greater(t, depth.RequiredMM2, depth.LimitMM2)
}

func TestSelectBars(t *testing.T) {
	dia, sp, provided, ok := SelectBars(300)
	require.True(t, ok)
	assert.GreaterOrEqual(t, provided, 300.0)
	assert.Contains(t, catalog.BarDiameters, dia)
	assert.Contains(t, catalog.BarSpacings, sp)

	// No finer combination exists than the chosen one.
	for _, d := range catalog.BarDiameters {
		for _, s := range catalog.BarSpacings {
			if a := catalog.AreaPerMeter(d, s); a >= 300 {
				assert.LessOrEqual(t, provided, a)
			}
		}
	}

	_, _, _, ok = SelectBars(5000)
	assert.False(t, ok)
}

func TestSolveSingleSpanThinSlabOverload(t *testing.T) {
	_, err := SolveSingleSpan(&statics.SlabSingle{
		SpanX:     8,
		Thickness: 0.1,
		Load:      15,
		E:         31000,
	})
	require.Error(t, err)
	var depth *statics.InsufficientDepthError
	assert.True(t, errors.As(err, &depth))
}
