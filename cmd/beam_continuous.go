package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statikdev/gostatik/internal/engine"
	"github.com/statikdev/gostatik/internal/report"
	"github.com/statikdev/gostatik/internal/section"
	"github.com/statikdev/gostatik/internal/service"
	"github.com/statikdev/gostatik/internal/statics"
)

var (
	contSpans    string
	contUDL      float64
	contMaterial string
	contProfile  string
	contLimit    float64
	contDiagram  bool
	contPlot     string
	contPDF      string
)

var beamContinuousCmd = &cobra.Command{
	Use:   "continuous",
	Short: "Solve a 2-3 span continuous beam (Durchlaufträger)",
	Long: `Compute a continuous beam over intermediate supports. The interior
support moments are solved from the three-moment equations; the span
distributions follow from them.

Examples:
  # Two equal 5 m spans under 6 kN/m
  gostatik beam continuous --spans 5,5 --udl 6 --profile "IPE 240"

  # Three unequal spans
  gostatik beam continuous --spans 4,6,4 --udl 5 --profile "IPE 270" --diagram`,
	Run: runBeamContinuous,
}

func init() {
	beamCmd.AddCommand(beamContinuousCmd)

	beamContinuousCmd.Flags().StringVarP(&contSpans, "spans", "l", "", "Comma-separated span lengths (m), 2-3 values [required]")
	beamContinuousCmd.Flags().Float64VarP(&contUDL, "udl", "w", 0, "Uniformly distributed load on all spans (kN/m) [required]")
	beamContinuousCmd.Flags().StringVarP(&contMaterial, "material", "m", "S235", "Material id")
	beamContinuousCmd.Flags().StringVarP(&contProfile, "profile", "p", "", "Rolled profile id [required]")
	beamContinuousCmd.Flags().Float64Var(&contLimit, "limit", 0, "Deflection limit ratio (default L/300)")

	addOutputFlags(beamContinuousCmd, &contDiagram, &contPlot, &contPDF)

	beamContinuousCmd.MarkFlagRequired("spans")
	beamContinuousCmd.MarkFlagRequired("udl")
	beamContinuousCmd.MarkFlagRequired("profile")
}

// parseSpans reads a comma-separated span list like "4,6,4".
func parseSpans(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	spans := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid span value %q", p)
		}
		spans = append(spans, v)
	}
	return spans, nil
}

func runBeamContinuous(cmd *cobra.Command, args []string) {
	spans, err := parseSpans(contSpans)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	props, err := section.Resolve(contMaterial, contProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	loads := make([]statics.Load, len(spans))
	for i := range spans {
		loads[i] = statics.UniformInSpan(contUDL, i)
	}

	res, err := engine.Calculate(&statics.BeamContinuous{
		Spans: spans,
		Loads: loads,
		E:     props.E,
		I:     props.I,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	limit := resolveLimit(contLimit, service.LimitBeam)
	verdict := service.Evaluate(res.GoverningSpan, res.MaxDeflection.Value, limit)

	printHeader("DURCHLAUFTRÄGER")
	printSection("EINGABEN", [][2]string{
		{"Felder", contSpans + " m"},
		{"Streckenlast", fmt.Sprintf("%.2f kN/m", contUDL)},
		{"Material", contMaterial},
		{"Profil", contProfile},
		{"E-Modul", fmt.Sprintf("%.0f MPa", props.E)},
		{"Trägheitsmoment", fmt.Sprintf("%.4e m⁴", props.I)},
		{"Maßgebendes Feld", fmt.Sprintf("%.2f m", res.GoverningSpan)},
	})
	printSection("ERGEBNISSE", resultRows(res))
	printVerdict(verdict)

	rep := report.New("Statik-Bericht: Durchlaufträger", "Durchlaufträger")
	rep.AddInput("Felder", "%s m", contSpans)
	rep.AddInput("Streckenlast", "%.2f kN/m", contUDL)
	rep.AddInput("Material / Profil", "%s / %s", contMaterial, contProfile)
	emitExtras(res, contDiagram, contPlot, contPDF, rep, verdict)
}
