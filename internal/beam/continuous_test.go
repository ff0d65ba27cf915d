package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikdev/gostatik/internal/statics"
)

func uniformSpans(w float64, n int) []statics.Load {
	loads := make([]statics.Load, n)
	for i := 0; i < n; i++ {
		loads[i] = statics.UniformInSpan(w, i)
	}
	return loads
}

func TestSupportMomentsTwoEqualSpans(t *testing.T) {
	// Classical result: M over the middle support of two equal spans
	// under uniform load is −wL²/8.
	moments, err := SupportMoments([]float64{5, 5}, uniformSpans(6, 2))
	require.NoError(t, err)
	require.Len(t, moments, 3)

	assert.Zero(t, moments[0])
	assert.Zero(t, moments[2])
	assert.InDelta(t, -6*25/8.0, moments[1], 1e-9)
}

func TestSupportMomentsThreeEqualSpans(t *testing.T) {
	// Three equal spans: both interior moments are −wL²/10.
	moments, err := SupportMoments([]float64{4, 4, 4}, uniformSpans(5, 3))
	require.NoError(t, err)
	require.Len(t, moments, 4)

	assert.InDelta(t, -5*16/10.0, moments[1], 1e-9)
	assert.InDelta(t, -5*16/10.0, moments[2], 1e-9)
}

func TestSupportMomentsSatisfyThreeMomentEquation(t *testing.T) {
	spans := []float64{4, 6, 5}
	loads := []statics.Load{
		statics.UniformInSpan(7, 0),
		statics.UniformInSpan(3, 1),
		statics.PointInSpan(15, 2, 1),
		statics.UniformInSpan(5, 2),
	}
	moments, err := SupportMoments(spans, loads)
	require.NoError(t, err)

	lds, err := groupLoads(loads, len(spans))
	require.NoError(t, err)
	for i := 1; i < len(spans); i++ {
		li, lj := spans[i-1], spans[i]
		lhs := moments[i-1]*li + 2*moments[i]*(li+lj) + moments[i+1]*lj
		rhs := -(loadTermLeft(li, lds[i-1]) + loadTermRight(lj, lds[i]))
		assert.InDelta(t, rhs, lhs, 1e-9)
	}
}

func TestSolveContinuousTwoSpans(t *testing.T) {
	sys := &statics.BeamContinuous{
		Spans: []float64{5, 5},
		Loads: uniformSpans(6, 2),
		E:     210000,
		I:     3890e-8,
	}
	res, err := SolveContinuous(sys)
	require.NoError(t, err)

	// The support moment governs the moment envelope.
	assert.InDelta(t, -6*25/8.0, res.MaxMoment.Value, 1e-9)
	assert.InDelta(t, 5.0, res.MaxMoment.X, 1e-9)

	// The moment curve is continuous over the middle support.
	assert.InDelta(t, res.MaxMoment.Value, res.MomentAt(5), 1e-6)

	// Symmetric system: the deflection extremum sits off-center toward
	// the outer supports, inside one of the spans.
	assert.Greater(t, math.Abs(res.MaxDeflection.Value), 0.0)
	assert.Equal(t, 5.0, res.GoverningSpan)
}

func TestSolveContinuousThreeSpans(t *testing.T) {
	sys := &statics.BeamContinuous{
		Spans: []float64{4, 5, 4},
		Loads: uniformSpans(8, 3),
		E:     210000,
		I:     3890e-8,
	}
	res, err := SolveContinuous(sys)
	require.NoError(t, err)

	require.NotEmpty(t, res.Samples)
	assert.InDelta(t, 0.0, res.Samples[0].X, 1e-12)
	assert.InDelta(t, 13.0, res.Samples[len(res.Samples)-1].X, 1e-9)

	// End moments vanish on simple supports.
	assert.InDelta(t, 0.0, res.Samples[0].Moment, 1e-9)
	assert.InDelta(t, 0.0, res.Samples[len(res.Samples)-1].Moment, 1e-9)

	// The longer middle span governs serviceability.
	assert.Equal(t, 5.0, res.GoverningSpan)
}

func TestSolveContinuousUnloadedSpanStillSampled(t *testing.T) {
	sys := &statics.BeamContinuous{
		Spans: []float64{4, 4},
		Loads: []statics.Load{statics.UniformInSpan(10, 0)},
		E:     210000,
		I:     1940e-8,
	}
	res, err := SolveContinuous(sys)
	require.NoError(t, err)

	// One loaded span: M_B = −wL²/16, and the unloaded span still carries
	// moments from the support continuity.
	assert.InDelta(t, -10*16/16.0, res.MomentAt(4), 1e-6)
	assert.InDelta(t, 8.0, res.Samples[len(res.Samples)-1].X, 1e-9)
}

func TestSolveContinuousRejectsSpanCount(t *testing.T) {
	_, err := SolveContinuous(&statics.BeamContinuous{
		Spans: []float64{4, 4, 4, 4},
		Loads: uniformSpans(5, 4),
		E:     210000,
		I:     1940e-8,
	})
	require.Error(t, err)
}
