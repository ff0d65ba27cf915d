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
	singleSpan       float64
	singleUDL        float64
	singlePoint      float64
	singlePointAt    float64
	singleMaterial   string
	singleProfile    string
	singleSelfWeight bool
	singleLimit      float64
	singleDiagram    bool
	singlePlot       string
	singlePDF        string
)

var beamSingleCmd = &cobra.Command{
	Use:   "single",
	Short: "Solve a simply supported single-span beam (Einfeldträger)",
	Long: `Compute a single-span beam, simply supported at both ends, under a
uniformly distributed load and/or one concentrated load.

Examples:
  # 6 m IPE 200 beam under 5 kN/m
  gostatik beam single --span 6 --udl 5 --material S235 --profile "IPE 200"

  # Additional point load of 10 kN at 2.5 m, with terminal diagrams
  gostatik beam single --span 6 --udl 5 --point 10 --at 2.5 --profile "IPE 200" --diagram`,
	Run: runBeamSingle,
}

func init() {
	beamCmd.AddCommand(beamSingleCmd)

	beamSingleCmd.Flags().Float64VarP(&singleSpan, "span", "l", 0, "Span length (m) [required]")
	beamSingleCmd.Flags().Float64VarP(&singleUDL, "udl", "w", 0, "Uniformly distributed load (kN/m)")
	beamSingleCmd.Flags().Float64VarP(&singlePoint, "point", "P", 0, "Concentrated load (kN)")
	beamSingleCmd.Flags().Float64Var(&singlePointAt, "at", 0, "Position of the concentrated load (m from left support)")
	beamSingleCmd.Flags().StringVarP(&singleMaterial, "material", "m", "S235", "Material id (see 'gostatik catalog materials')")
	beamSingleCmd.Flags().StringVarP(&singleProfile, "profile", "p", "", "Rolled profile id, e.g. \"IPE 200\" [required]")
	beamSingleCmd.Flags().BoolVar(&singleSelfWeight, "self-weight", false, "Add the profile self-weight to the distributed load")
	beamSingleCmd.Flags().Float64Var(&singleLimit, "limit", 0, "Deflection limit ratio (default L/300)")

	addOutputFlags(beamSingleCmd, &singleDiagram, &singlePlot, &singlePDF)

	beamSingleCmd.MarkFlagRequired("span")
	beamSingleCmd.MarkFlagRequired("profile")
}

func addOutputFlags(c *cobra.Command, diagramFlag *bool, plotFlag, pdfFlag *string) {
	c.Flags().BoolVarP(diagramFlag, "diagram", "d", false, "Print moment/shear/deflection diagrams to the terminal")
	c.Flags().StringVar(plotFlag, "plot", "", "Export PNG diagrams to the given base path")
	c.Flags().StringVar(pdfFlag, "pdf", "", "Write a PDF calculation report to the given path")
}

func runBeamSingle(cmd *cobra.Command, args []string) {
	props, err := section.Resolve(singleMaterial, singleProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	udl := singleUDL
	if singleSelfWeight {
		udl += props.SelfWeight
	}
	var loads []statics.Load
	if udl != 0 {
		loads = append(loads, statics.Uniform(udl))
	}
	if singlePoint != 0 {
		loads = append(loads, statics.Point(singlePoint, singlePointAt))
	}

	res, err := engine.Calculate(&statics.BeamSingle{
		Span:     singleSpan,
		Supports: [2]statics.SupportKind{statics.SupportPinned, statics.SupportRoller},
		Loads:    loads,
		E:        props.E,
		I:        props.I,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	limit := resolveLimit(singleLimit, service.LimitBeam)
	verdict := service.Evaluate(res.GoverningSpan, res.MaxDeflection.Value, limit)

	printHeader("EINFELDTRÄGER")
	inputs := [][2]string{
		{"Spannweite", fmt.Sprintf("%.2f m", singleSpan)},
		{"Streckenlast", fmt.Sprintf("%.2f kN/m", udl)},
		{"Material", singleMaterial},
		{"Profil", singleProfile},
		{"E-Modul", fmt.Sprintf("%.0f MPa", props.E)},
		{"Trägheitsmoment", fmt.Sprintf("%.4e m⁴", props.I)},
	}
	if singlePoint != 0 {
		inputs = append(inputs, [2]string{"Einzellast", fmt.Sprintf("%.2f kN bei x = %.2f m", singlePoint, singlePointAt)})
	}
	printSection("EINGABEN", inputs)
	printSection("ERGEBNISSE", resultRows(res))
	printVerdict(verdict)

	rep := report.New("Statik-Bericht: Einfeldträger", "Einfeldträger")
	rep.AddInput("Spannweite", "%.2f m", singleSpan)
	rep.AddInput("Streckenlast", "%.2f kN/m", udl)
	rep.AddInput("Material / Profil", "%s / %s", singleMaterial, singleProfile)
	rep.AddInput("E-Modul", "%.0f MPa", props.E)
	rep.AddInput("Trägheitsmoment", "%.4e m⁴", props.I)
	emitExtras(res, singleDiagram, singlePlot, singlePDF, rep, verdict)
}
