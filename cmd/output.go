package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/statikdev/gostatik/internal/diagram"
	"github.com/statikdev/gostatik/internal/report"
	"github.com/statikdev/gostatik/internal/service"
	"github.com/statikdev/gostatik/internal/statics"
)

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(name string, rows [][2]string) {
	fmt.Printf("%s:\n", name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "  %s:\t%s\n", r[0], r[1])
	}
	w.Flush()
	fmt.Println()
}

func resultRows(res *statics.SolveResult) [][2]string {
	rows := [][2]string{
		{"Max. Biegemoment", fmt.Sprintf("%.2f kNm (x = %.2f m)", res.MaxMoment.Value, res.MaxMoment.X)},
		{"Max. Querkraft", fmt.Sprintf("%.2f kN (x = %.2f m)", res.MaxShear.Value, res.MaxShear.X)},
		{"Max. Durchbiegung", fmt.Sprintf("%.2f mm (x = %.2f m)", res.MaxDeflection.Value, res.MaxDeflection.X)},
	}
	for _, re := range res.Reactions {
		rows = append(rows, [2]string{
			fmt.Sprintf("Auflager %d", re.Support+1),
			fmt.Sprintf("H = %.2f kN, V = %.2f kN, M = %.2f kNm", re.Horizontal, re.Vertical, re.Moment),
		})
	}
	if rf := res.Reinforcement; rf != nil {
		rows = append(rows,
			[2]string{"Bewehrung Haupttragrichtung", fmt.Sprintf("erf. %.0f mm²/m → ø%.0f/%.0f (%.0f mm²/m)",
				rf.RequiredMain, rf.BarDiameter, rf.Spacing, rf.Provided)},
			[2]string{"Bewehrung Querrichtung", fmt.Sprintf("erf. %.0f mm²/m → ø%.0f/%.0f (%.0f mm²/m)",
				rf.RequiredCross, rf.CrossBarDiameter, rf.CrossSpacing, rf.CrossProvided)},
		)
	}
	return rows
}

func printVerdict(v service.Verdict) {
	status := "✓ NACHWEIS ERFÜLLT"
	switch v.Classification {
	case service.Marginal:
		status = "⚠ GRENZWERTIG"
	case service.Fail:
		status = "✗ NACHWEIS NICHT ERFÜLLT"
	}
	fmt.Print(diagram.DrawSummaryBox("GEBRAUCHSTAUGLICHKEIT", []string{
		fmt.Sprintf("Grenzwert:    L/%.0f = %.2f mm", v.LimitRatio, v.LimitValue),
		fmt.Sprintf("Vorhanden:    L/%.0f", v.ActualRatio),
		fmt.Sprintf("Ausnutzung:   %.1f %%", v.Utilization),
		status,
	}))
	fmt.Println()
}

// emitExtras handles the output flags shared by all solver commands.
func emitExtras(res *statics.SolveResult, showDiagram bool, plotPath, pdfPath string, rep *report.Report, v service.Verdict) {
	if showDiagram {
		fmt.Println(diagram.MomentCurve(res))
		fmt.Println()
		fmt.Println(diagram.ShearCurve(res))
		fmt.Println()
		fmt.Println(diagram.DeflectionCurve(res))
		fmt.Println()
	}
	if plotPath != "" {
		files, err := diagram.ExportCurves(res, plotPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: plot export failed: %v\n", err)
		} else {
			for _, f := range files {
				fmt.Printf("  Diagramm gespeichert: %s\n", f)
			}
			fmt.Println()
		}
	}
	if pdfPath != "" {
		rep.Verdict = &v
		rep.FillResults(res)
		if err := rep.Save(pdfPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: PDF export failed: %v\n", err)
		} else {
			fmt.Printf("  Bericht gespeichert: %s\n\n", pdfPath)
		}
	}
}

// resolveLimit picks the serviceability limit: an explicit flag wins over
// the family default.
func resolveLimit(flag, familyDefault float64) float64 {
	if flag > 0 {
		return flag
	}
	return familyDefault
}
