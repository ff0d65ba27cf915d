package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/statikdev/gostatik/internal/statics"
)

// MomentCurve renders the bending-moment distribution as a terminal
// graph. Moments are plotted downward-positive, the usual convention for
// moment diagrams drawn on the tension side.
func MomentCurve(res *statics.SolveResult) string {
	data := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		data[i] = -s.Moment
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("Bending moment [kNm], max %.2f at x = %.2f m", res.MaxMoment.Value, res.MaxMoment.X)),
	)
}

// ShearCurve renders the shear-force distribution as a terminal graph.
func ShearCurve(res *statics.SolveResult) string {
	data := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		data[i] = s.Shear
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("Shear force [kN], max %.2f at x = %.2f m", res.MaxShear.Value, res.MaxShear.X)),
	)
}

// DeflectionCurve renders the deflection distribution as a terminal
// graph, plotted downward like the deformed shape.
func DeflectionCurve(res *statics.SolveResult) string {
	data := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		data[i] = -s.Deflection
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("Deflection [mm], max %.2f at x = %.2f m", res.MaxDeflection.Value, res.MaxDeflection.X)),
	)
}

// DrawSummaryBox creates a boxed summary for terminal output.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
