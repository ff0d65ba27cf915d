package statics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBeamSingle(t *testing.T) {
	valid := &BeamSingle{
		Span:     6,
		Supports: [2]SupportKind{SupportPinned, SupportRoller},
		Loads:    []Load{Uniform(5)},
		E:        210000, I: 1940e-8,
	}
	require.NoError(t, valid.Validate())

	cases := map[string]*BeamSingle{
		"zero span": {
			Span: 0, Supports: valid.Supports, Loads: valid.Loads, E: 210000, I: 1940e-8,
		},
		"fixed support": {
			Span: 6, Supports: [2]SupportKind{SupportFixed, SupportRoller}, Loads: valid.Loads, E: 210000, I: 1940e-8,
		},
		"no loads": {
			Span: 6, Supports: valid.Supports, E: 210000, I: 1940e-8,
		},
		"load beyond span": {
			Span: 6, Supports: valid.Supports, Loads: []Load{Point(10, 6.5)}, E: 210000, I: 1940e-8,
		},
		"negative stiffness": {
			Span: 6, Supports: valid.Supports, Loads: valid.Loads, E: -1, I: 1940e-8,
		},
	}
	for name, sys := range cases {
		err := sys.Validate()
		require.Error(t, err, name)
		var invalid *InvalidInputError
		assert.ErrorAs(t, err, &invalid, name)
	}
}

func TestValidateSpanCounts(t *testing.T) {
	beam := func(n int) *BeamContinuous {
		spans := make([]float64, n)
		loads := make([]Load, n)
		for i := range spans {
			spans[i] = 4
			loads[i] = UniformInSpan(5, i)
		}
		return &BeamContinuous{Spans: spans, Loads: loads, E: 210000, I: 1940e-8}
	}
	assert.Error(t, beam(1).Validate())
	assert.NoError(t, beam(2).Validate())
	assert.NoError(t, beam(3).Validate())
	assert.Error(t, beam(4).Validate())

	slab := func(n int) *SlabContinuous {
		spans := make([]float64, n)
		for i := range spans {
			spans[i] = 4
		}
		return &SlabContinuous{Spans: spans, Thickness: 0.2, Load: 8, E: 31000}
	}
	assert.Error(t, slab(1).Validate())
	assert.NoError(t, slab(2).Validate())
	assert.NoError(t, slab(4).Validate())
	assert.Error(t, slab(5).Validate())
}

func TestValidateFrame(t *testing.T) {
	valid := &FrameSingleStory{
		Width: 6, Height: 3.5, RoofSlope: 30, RoofLoad: 8,
		Bases: [2]SupportKind{SupportFixed, SupportFixed},
		E:     210000, I: 8360e-8, A: 0.00626,
	}
	require.NoError(t, valid.Validate())

	noLoad := *valid
	noLoad.RoofLoad = 0
	assert.Error(t, noLoad.Validate())

	steep := *valid
	steep.RoofSlope = 60
	assert.Error(t, steep.Validate())

	rollerBase := *valid
	rollerBase.Bases[1] = SupportRoller
	assert.Error(t, rollerBase.Validate())
}

func TestValidateSlabAllSidesNeedsSpanY(t *testing.T) {
	sys := &SlabSingle{SpanX: 5, Thickness: 0.2, Load: 8, AllSides: true, E: 31000}
	assert.Error(t, sys.Validate())
	sys.SpanY = 6
	assert.NoError(t, sys.Validate())
}

func TestSolveResultInterpolation(t *testing.T) {
	res := &SolveResult{
		Samples: []Sample{
			{X: 0, Moment: 0, Deflection: 0},
			{X: 2, Moment: 10, Deflection: 4},
			{X: 4, Moment: 0, Deflection: 0},
		},
	}
	assert.InDelta(t, 5.0, res.MomentAt(1), 1e-9)
	assert.InDelta(t, 10.0, res.MomentAt(2), 1e-9)
	assert.InDelta(t, 2.0, res.DeflectionAt(3), 1e-9)
	// Outside the sampled range the nearest sample holds.
	assert.InDelta(t, 0.0, res.MomentAt(-1), 1e-9)
	assert.InDelta(t, 0.0, res.MomentAt(9), 1e-9)
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "pinned", SupportPinned.String())
	assert.Equal(t, "fixed", SupportFixed.String())
	assert.Equal(t, "roller", SupportRoller.String())
	assert.Equal(t, "free", SupportFree.String())
}
