package catalog

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikdev/gostatik/internal/statics"
)

func TestLookupMaterial(t *testing.T) {
	m, err := LookupMaterial("S235")
	require.NoError(t, err)
	assert.Equal(t, 210000.0, m.E)
	assert.Equal(t, Steel, m.Category)

	c, err := LookupMaterial("C25/30")
	require.NoError(t, err)
	assert.Equal(t, 31000.0, c.E)
	assert.Equal(t, Concrete, c.Category)
}

func TestLookupMaterialUnknown(t *testing.T) {
	_, err := LookupMaterial("S999")
	require.Error(t, err)
	var nf *statics.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "material", nf.Kind)
	assert.Equal(t, "S999", nf.ID)
}

func TestMaterialsSorted(t *testing.T) {
	ms := Materials()
	require.NotEmpty(t, ms)
	assert.True(t, sort.SliceIsSorted(ms, func(i, j int) bool { return ms[i].ID < ms[j].ID }))
}

func TestLookupProfile(t *testing.T) {
	p, err := LookupProfile("IPE 200")
	require.NoError(t, err)
	assert.Equal(t, 1940e-8, p.I)
	assert.Greater(t, p.SelfWeight, 0.0)

	_, err = LookupProfile("HEB 200")
	require.Error(t, err)
	var nf *statics.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestProfilesSortedByStiffness(t *testing.T) {
	ps := Profiles()
	require.NotEmpty(t, ps)
	for i := 1; i < len(ps); i++ {
		assert.Greater(t, ps[i].I, ps[i-1].I)
	}
}

func TestBarAreas(t *testing.T) {
	assert.InDelta(t, math.Pi*25, BarArea(10), 1e-9)
	// ø10/100: one bar per 100 mm, ten per meter.
	assert.InDelta(t, math.Pi*250, AreaPerMeter(10, 100), 1e-9)
	assert.InDelta(t, 500.0/1.15, RebarFyd, 1e-9)
}
