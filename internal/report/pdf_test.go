package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikdev/gostatik/internal/service"
	"github.com/statikdev/gostatik/internal/statics"
)

func TestSaveWritesPDF(t *testing.T) {
	rep := New("Statik-Bericht: Einfeldträger", "Einfeldträger")
	rep.AddInput("Spannweite", "%.2f m", 6.0)
	rep.AddInput("Streckenlast", "%.2f kN/m", 5.0)

	res := &statics.SolveResult{
		MaxMoment:     statics.Extremum{Value: 22.5, X: 3},
		MaxShear:      statics.Extremum{Value: 15, X: 0},
		MaxDeflection: statics.Extremum{Value: 20.7, X: 3},
		GoverningSpan: 6,
	}
	rep.FillResults(res)
	require.Len(t, rep.Results, 3)

	v := service.Evaluate(6, 20.7, service.LimitBeam)
	rep.Verdict = &v

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, rep.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFillResultsIncludesReinforcementAndReactions(t *testing.T) {
	rep := New("Statik-Bericht", "Test")
	res := &statics.SolveResult{
		Reinforcement: &statics.Reinforcement{
			RequiredMain: 420, BarDiameter: 10, Spacing: 150, Provided: 524,
			RequiredCross: 84, CrossBarDiameter: 8, CrossSpacing: 250, CrossProvided: 201,
		},
		Reactions: []statics.Reaction{
			{Support: 0, Horizontal: 1.2, Vertical: 24, Moment: -3.1},
		},
	}
	rep.FillResults(res)

	labels := make([]string, len(rep.Results))
	for i, p := range rep.Results {
		labels[i] = p.Label
	}
	assert.Contains(t, labels, "Bewehrung (Haupttragrichtung)")
	assert.Contains(t, labels, "Auflager 1")
}
