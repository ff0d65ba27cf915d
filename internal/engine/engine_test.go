package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikdev/gostatik/internal/statics"
)

func TestCalculateDispatchesAllSystems(t *testing.T) {
	systems := []statics.System{
		&statics.BeamSingle{
			Span:     6,
			Supports: [2]statics.SupportKind{statics.SupportPinned, statics.SupportRoller},
			Loads:    []statics.Load{statics.Uniform(5)},
			E:        210000, I: 1940e-8,
		},
		&statics.BeamCantilever{
			Span:  2.5,
			Loads: []statics.Load{statics.Uniform(4)},
			E:     210000, I: 1940e-8,
		},
		&statics.BeamContinuous{
			Spans: []float64{5, 5},
			Loads: []statics.Load{statics.UniformInSpan(6, 0), statics.UniformInSpan(6, 1)},
			E:     210000, I: 3890e-8,
		},
		&statics.FrameSingleStory{
			Width: 6, Height: 3.5, RoofSlope: 20, RoofLoad: 8,
			Bases: [2]statics.SupportKind{statics.SupportFixed, statics.SupportFixed},
			E:     210000, I: 8360e-8, A: 0.00626,
		},
		&statics.FrameTwoStory{
			Width: 6, LowerHeight: 3.2, UpperHeight: 3, FloorLoad: 10, RoofLoad: 6,
			Bases: [2]statics.SupportKind{statics.SupportFixed, statics.SupportFixed},
			E:     210000, I: 8360e-8, A: 0.00626,
		},
		&statics.SlabSingle{SpanX: 4.5, Thickness: 0.18, Load: 7.5, E: 31000},
		&statics.SlabContinuous{Spans: []float64{4, 4}, Thickness: 0.2, Load: 9, E: 31000},
	}
	for _, sys := range systems {
		res, err := Calculate(sys)
		require.NoError(t, err, "%T", sys)
		require.NotNil(t, res)
		assert.NotEmpty(t, res.Samples, "%T", sys)
		assert.Greater(t, res.GoverningSpan, 0.0, "%T", sys)
	}
}

func TestCalculateNilSystem(t *testing.T) {
	_, err := Calculate(nil)
	require.Error(t, err)
	var invalid *statics.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

// The worked reference case: IPE 200 in S235 over 6 m under 5 kN/m.
func TestCalculateReferenceBeam(t *testing.T) {
	res, err := Calculate(&statics.BeamSingle{
		Span:     6,
		Supports: [2]statics.SupportKind{statics.SupportPinned, statics.SupportRoller},
		Loads:    []statics.Load{statics.Uniform(5)},
		E:        210000,
		I:        1940e-8,
	})
	require.NoError(t, err)
	assert.InDelta(t, 22.5, res.MaxMoment.Value, 1e-9)
	assert.InDelta(t, 15.0, res.MaxShear.Value, 1e-9)
	// ≈ 20.7 mm, L/290: just short of L/300.
	assert.InDelta(t, 20.7, res.MaxDeflection.Value, 0.1)
}
