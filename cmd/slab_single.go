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
	slabSpanX     float64
	slabSpanY     float64
	slabThickness float64
	slabLoad      float64
	slabAllSides  bool
	slabMaterial  string
	slabLimit     float64
	slabDiagram   bool
	slabPlot      string
	slabPDF       string
)

var slabSingleCmd = &cobra.Command{
	Use:   "single",
	Short: "Solve a single span slab",
	Long: `Compute a single span concrete slab. By default the slab spans
one-way over --span-x; with --all-sides it is treated as supported on
all four edges and --span-y gives the second dimension.

Examples:
  # One-way slab, 4.5 m span, 18 cm thick, 7.5 kN/m²
  gostatik slab single --span-x 4.5 --thickness 0.18 --load 7.5

  # All-sides supported 5 x 6 m slab
  gostatik slab single --span-x 5 --span-y 6 --all-sides --thickness 0.20 --load 8 --pdf slab.pdf`,
	Run: runSlabSingle,
}

func init() {
	slabCmd.AddCommand(slabSingleCmd)

	slabSingleCmd.Flags().Float64VarP(&slabSpanX, "span-x", "l", 0, "Span in the design direction (m) [required]")
	slabSingleCmd.Flags().Float64Var(&slabSpanY, "span-y", 0, "Span in the cross direction (m, all-sides only)")
	slabSingleCmd.Flags().Float64Var(&slabThickness, "thickness", 0, "Slab thickness (m) [required]")
	slabSingleCmd.Flags().Float64VarP(&slabLoad, "load", "q", 0, "Area load (kN/m²) [required]")
	slabSingleCmd.Flags().BoolVar(&slabAllSides, "all-sides", false, "Slab supported on all four edges")
	slabSingleCmd.Flags().StringVarP(&slabMaterial, "material", "m", "C25/30", "Concrete material id")
	slabSingleCmd.Flags().Float64Var(&slabLimit, "limit", 0, "Deflection limit ratio (default L/250)")

	addOutputFlags(slabSingleCmd, &slabDiagram, &slabPlot, &slabPDF)

	slabSingleCmd.MarkFlagRequired("span-x")
	slabSingleCmd.MarkFlagRequired("thickness")
	slabSingleCmd.MarkFlagRequired("load")
}

func runSlabSingle(cmd *cobra.Command, args []string) {
	props, err := section.ResolveSlab(slabMaterial, slabThickness)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	res, err := engine.Calculate(&statics.SlabSingle{
		SpanX:     slabSpanX,
		SpanY:     slabSpanY,
		Thickness: slabThickness,
		Load:      slabLoad,
		AllSides:  slabAllSides,
		E:         props.E,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	limit := resolveLimit(slabLimit, service.LimitSlab)
	verdict := service.Evaluate(res.GoverningSpan, res.MaxDeflection.Value, limit)

	system := "Einachsig gespannte Platte"
	if slabAllSides {
		system = "Vierseitig gelagerte Platte"
	}
	printHeader("EINFELDPLATTE")
	rows := [][2]string{
		{"System", system},
		{"Spannweite x", fmt.Sprintf("%.2f m", slabSpanX)},
	}
	if slabAllSides {
		rows = append(rows, [2]string{"Spannweite y", fmt.Sprintf("%.2f m", slabSpanY)})
	}
	rows = append(rows,
		[2]string{"Plattendicke", fmt.Sprintf("%.0f mm", slabThickness*1000)},
		[2]string{"Flächenlast", fmt.Sprintf("%.2f kN/m²", slabLoad)},
		[2]string{"Material", slabMaterial},
	)
	printSection("EINGABEN", rows)
	printSection("ERGEBNISSE", resultRows(res))
	printVerdict(verdict)

	rep := report.New("Statik-Bericht: Einfeldplatte", system)
	rep.AddInput("Spannweite x", "%.2f m", slabSpanX)
	if slabAllSides {
		rep.AddInput("Spannweite y", "%.2f m", slabSpanY)
	}
	rep.AddInput("Plattendicke", "%.0f mm", slabThickness*1000)
	rep.AddInput("Flächenlast", "%.2f kN/m²", slabLoad)
	rep.AddInput("Material", "%s", slabMaterial)
	emitExtras(res, slabDiagram, slabPlot, slabPDF, rep, verdict)
}
