package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statikdev/gostatik/internal/engine"
	"github.com/statikdev/gostatik/internal/report"
	"github.com/statikdev/gostatik/internal/section"
	"github.com/statikdev/gostatik/internal/service"
	"github.com/statikdev/gostatik/internal/statics"
)

var (
	slabContSpans     string
	slabContThickness float64
	slabContLoad      float64
	slabContMaterial  string
	slabContLimit     float64
	slabContDiagram   bool
	slabContPlot      string
	slabContPDF       string
)

var slabContinuousCmd = &cobra.Command{
	Use:   "continuous",
	Short: "Solve a 2-4 span continuous slab",
	Long: `Compute a one-way continuous slab strip over intermediate supports.
The support moments follow from the three-moment equations on a 1 m
wide strip; reinforcement is sized for the largest field moment.

Examples:
  # Three 4 m spans, 20 cm thick, 9 kN/m²
  gostatik slab continuous --spans 4,4,4 --thickness 0.20 --load 9`,
	Run: runSlabContinuous,
}

func init() {
	slabCmd.AddCommand(slabContinuousCmd)

	slabContinuousCmd.Flags().StringVarP(&slabContSpans, "spans", "l", "", "Comma-separated span lengths (m), 2-4 values [required]")
	slabContinuousCmd.Flags().Float64Var(&slabContThickness, "thickness", 0, "Slab thickness (m) [required]")
	slabContinuousCmd.Flags().Float64VarP(&slabContLoad, "load", "q", 0, "Area load (kN/m²) [required]")
	slabContinuousCmd.Flags().StringVarP(&slabContMaterial, "material", "m", "C25/30", "Concrete material id")
	slabContinuousCmd.Flags().Float64Var(&slabContLimit, "limit", 0, "Deflection limit ratio (default L/250)")

	addOutputFlags(slabContinuousCmd, &slabContDiagram, &slabContPlot, &slabContPDF)

	slabContinuousCmd.MarkFlagRequired("spans")
	slabContinuousCmd.MarkFlagRequired("thickness")
	slabContinuousCmd.MarkFlagRequired("load")
}

func runSlabContinuous(cmd *cobra.Command, args []string) {
	spans, err := parseSpans(slabContSpans)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	props, err := section.ResolveSlab(slabContMaterial, slabContThickness)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	res, err := engine.Calculate(&statics.SlabContinuous{
		Spans:     spans,
		Thickness: slabContThickness,
		Load:      slabContLoad,
		E:         props.E,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	limit := resolveLimit(slabContLimit, service.LimitSlab)
	verdict := service.Evaluate(res.GoverningSpan, res.MaxDeflection.Value, limit)

	printHeader("DURCHLAUFPLATTE")
	printSection("EINGABEN", [][2]string{
		{"Spannweiten", slabContSpans + " m"},
		{"Plattendicke", fmt.Sprintf("%.0f mm", slabContThickness*1000)},
		{"Flächenlast", fmt.Sprintf("%.2f kN/m²", slabContLoad)},
		{"Material", slabContMaterial},
	})
	printSection("ERGEBNISSE", resultRows(res))
	printVerdict(verdict)

	rep := report.New("Statik-Bericht: Durchlaufplatte", "Einachsig gespannte Durchlaufplatte")
	rep.AddInput("Spannweiten", "%s m", slabContSpans)
	rep.AddInput("Plattendicke", "%.0f mm", slabContThickness*1000)
	rep.AddInput("Flächenlast", "%.2f kN/m²", slabContLoad)
	rep.AddInput("Material", "%s", slabContMaterial)
	emitExtras(res, slabContDiagram, slabContPlot, slabContPDF, rep, verdict)
}
