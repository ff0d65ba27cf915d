package frame

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikdev/gostatik/internal/statics"
)

func fixedBases() [2]statics.SupportKind {
	return [2]statics.SupportKind{statics.SupportFixed, statics.SupportFixed}
}

func TestSolveSingleStoryGravityEquilibrium(t *testing.T) {
	sys := &statics.FrameSingleStory{
		Width:    6,
		Height:   3.5,
		RoofLoad: 8,
		Bases:    fixedBases(),
		E:        210000,
		I:        8360e-8, // IPE 330
		A:        0.00626,
	}
	res, err := SolveSingleStory(sys)
	require.NoError(t, err)
	require.Len(t, res.Reactions, 2)

	// Flat roof: the vertical reactions carry the full load, horizontal
	// thrusts cancel.
	sumV, sumH := 0.0, 0.0
	for _, r := range res.Reactions {
		sumV += r.Vertical
		sumH += r.Horizontal
	}
	assert.InDelta(t, 8*6.0, sumV, 1e-6)
	assert.InDelta(t, 0.0, sumH, 1e-6)

	// Symmetric frame, symmetric reactions.
	assert.InDelta(t, res.Reactions[0].Vertical, res.Reactions[1].Vertical, 1e-6)
	assert.InDelta(t, res.Reactions[0].Horizontal, -res.Reactions[1].Horizontal, 1e-6)

	assert.Greater(t, math.Abs(res.MaxDeflection.Value), 0.0)
	assert.Equal(t, 6.0, res.GoverningSpan)
}

func TestSolveSingleStorySlopedRoof(t *testing.T) {
	sys := &statics.FrameSingleStory{
		Width:     5,
		Height:    3,
		RoofSlope: 25,
		RoofLoad:  6,
		Bases:     fixedBases(),
		E:         210000,
		I:         8360e-8,
		A:         0.00626,
	}
	res, err := SolveSingleStory(sys)
	require.NoError(t, err)

	// The vertical load total is w·width regardless of the slope.
	sumV := 0.0
	for _, r := range res.Reactions {
		sumV += r.Vertical
	}
	assert.InDelta(t, 6*5.0, sumV, 1e-6)
	require.NotEmpty(t, res.Samples)
}

func TestSolveSingleStoryLateralEquilibrium(t *testing.T) {
	sys := &statics.FrameSingleStory{
		Width:   6,
		Height:  3.5,
		Lateral: 12,
		Bases:   fixedBases(),
		E:       210000,
		I:       8360e-8,
		A:       0.00626,
	}
	res, err := SolveSingleStory(sys)
	require.NoError(t, err)

	sumH := 0.0
	for _, r := range res.Reactions {
		sumH += r.Horizontal
	}
	assert.InDelta(t, -12.0, sumH, 1e-6)
}

func TestSolveSingleStoryPinnedBases(t *testing.T) {
	sys := &statics.FrameSingleStory{
		Width:    6,
		Height:   3.5,
		RoofLoad: 8,
		Bases:    [2]statics.SupportKind{statics.SupportPinned, statics.SupportPinned},
		E:        210000,
		I:        8360e-8,
		A:        0.00626,
	}
	res, err := SolveSingleStory(sys)
	require.NoError(t, err)

	// Pinned bases carry no moment.
	for _, r := range res.Reactions {
		assert.Zero(t, r.Moment)
	}
}

func TestSolveSingleStoryUnstable(t *testing.T) {
	// One base removed, the other pinned: the frame is a mechanism.
	_, err := SolveSingleStory(&statics.FrameSingleStory{
		Width:    6,
		Height:   3.5,
		RoofLoad: 8,
		Bases:    [2]statics.SupportKind{statics.SupportPinned, statics.SupportFree},
		E:        210000,
		I:        8360e-8,
		A:        0.00626,
	})
	require.Error(t, err)
	var unstable *statics.UnstableStructureError
	assert.True(t, errors.As(err, &unstable))
}

func TestSolveTwoStoryGravityEquilibrium(t *testing.T) {
	sys := &statics.FrameTwoStory{
		Width:       6,
		LowerHeight: 3.2,
		UpperHeight: 3.0,
		FloorLoad:   10,
		RoofLoad:    6,
		Bases:       fixedBases(),
		E:           210000,
		I:           8360e-8,
		A:           0.00626,
	}
	res, err := SolveTwoStory(sys)
	require.NoError(t, err)
	require.Len(t, res.Reactions, 2)

	sumV := 0.0
	for _, r := range res.Reactions {
		sumV += r.Vertical
	}
	assert.InDelta(t, (10+6)*6.0, sumV, 1e-6)

	assert.InDelta(t, res.Reactions[0].Vertical, res.Reactions[1].Vertical, 1e-6)
	assert.Greater(t, math.Abs(res.MaxDeflection.Value), 0.0)
}

func TestSolveTwoStoryLateralEquilibrium(t *testing.T) {
	sys := &statics.FrameTwoStory{
		Width:        6,
		LowerHeight:  3.2,
		UpperHeight:  3.0,
		LateralLower: 9,
		LateralUpper: 5,
		Bases:        fixedBases(),
		E:            210000,
		I:            8360e-8,
		A:            0.00626,
	}
	res, err := SolveTwoStory(sys)
	require.NoError(t, err)

	sumH := 0.0
	for _, r := range res.Reactions {
		sumH += r.Horizontal
	}
	assert.InDelta(t, -(9 + 5.0), sumH, 1e-6)
}

func TestSolveSingleStoryRejectsSteepRoof(t *testing.T) {
	_, err := SolveSingleStory(&statics.FrameSingleStory{
		Width:     6,
		Height:    3.5,
		RoofSlope: 75,
		RoofLoad:  8,
		Bases:     fixedBases(),
		E:         210000,
		I:         8360e-8,
		A:         0.00626,
	})
	require.Error(t, err)
	var invalid *statics.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}
