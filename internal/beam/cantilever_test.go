package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikdev/gostatik/internal/statics"
)

func TestSolveCantileverUniform(t *testing.T) {
	sys := &statics.BeamCantilever{
		Span:  3,
		Loads: []statics.Load{statics.Uniform(4)},
		E:     210000,
		I:     1940e-8,
	}
	res, err := SolveCantilever(sys)
	require.NoError(t, err)

	// Hogging M = −wL²/2 and V = wL at the fixed end, δ = wL⁴/8EI at the tip.
	assert.InDelta(t, -4*9/2.0, res.MaxMoment.Value, 1e-9)
	assert.InDelta(t, 0.0, res.MaxMoment.X, 1e-9)
	assert.InDelta(t, 12.0, res.MaxShear.Value, 1e-9)

	ei := 210000.0 * 1000 * 1940e-8
	want := 4 * math.Pow(3, 4) / (8 * ei) * 1000
	assert.InDelta(t, want, res.MaxDeflection.Value, 1e-9)
	assert.InDelta(t, 3.0, res.MaxDeflection.X, 1e-9)
}

func TestSolveCantileverTipLoad(t *testing.T) {
	sys := &statics.BeamCantilever{
		Span:  2.5,
		Loads: []statics.Load{statics.Point(10, 2.5)},
		E:     210000,
		I:     1940e-8,
	}
	res, err := SolveCantilever(sys)
	require.NoError(t, err)

	// M = −PL at the fixed end, δ = PL³/3EI at the tip.
	assert.InDelta(t, -25.0, res.MaxMoment.Value, 1e-9)
	assert.InDelta(t, 10.0, res.MaxShear.Value, 1e-9)

	ei := 210000.0 * 1000 * 1940e-8
	want := 10 * math.Pow(2.5, 3) / (3 * ei) * 1000
	assert.InDelta(t, want, res.MaxDeflection.Value, 1e-9)
}

func TestSolveCantileverInteriorPoint(t *testing.T) {
	sys := &statics.BeamCantilever{
		Span:  4,
		Loads: []statics.Load{statics.Point(6, 1.5)},
		E:     210000,
		I:     1940e-8,
	}
	res, err := SolveCantilever(sys)
	require.NoError(t, err)

	// M = −P·a at the fixed end; the tip rotates as a rigid extension:
	// δ_tip = Pa²(3L−a)/6EI.
	assert.InDelta(t, -9.0, res.MaxMoment.Value, 1e-9)

	ei := 210000.0 * 1000 * 1940e-8
	want := 6 * 1.5 * 1.5 * (3*4 - 1.5) / (6 * ei) * 1000
	assert.InDelta(t, want, res.MaxDeflection.Value, 1e-9)
	assert.InDelta(t, 4.0, res.MaxDeflection.X, 1e-9)

	// Shear is zero beyond the load.
	last := res.Samples[len(res.Samples)-1]
	assert.InDelta(t, 0.0, last.Shear, 1e-9)
	assert.InDelta(t, 0.0, last.Moment, 1e-9)
}
