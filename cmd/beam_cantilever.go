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
	cantiSpan     float64
	cantiUDL      float64
	cantiTip      float64
	cantiMaterial string
	cantiProfile  string
	cantiLimit    float64
	cantiDiagram  bool
	cantiPlot     string
	cantiPDF      string
)

var beamCantileverCmd = &cobra.Command{
	Use:   "cantilever",
	Short: "Solve a cantilever beam (Kragträger)",
	Long: `Compute a cantilever fixed at the left end with a free tip, under a
uniformly distributed load and/or a tip load.

The serviceability limit for cantilevers defaults to L/200.

Examples:
  # 2.5 m cantilever under 4 kN/m
  gostatik beam cantilever --span 2.5 --udl 4 --profile "IPE 160"

  # Tip load of 8 kN
  gostatik beam cantilever --span 2.0 --tip 8 --profile "IPE 180"`,
	Run: runBeamCantilever,
}

func init() {
	beamCmd.AddCommand(beamCantileverCmd)

	beamCantileverCmd.Flags().Float64VarP(&cantiSpan, "span", "l", 0, "Cantilever length (m) [required]")
	beamCantileverCmd.Flags().Float64VarP(&cantiUDL, "udl", "w", 0, "Uniformly distributed load (kN/m)")
	beamCantileverCmd.Flags().Float64VarP(&cantiTip, "tip", "P", 0, "Concentrated load at the free tip (kN)")
	beamCantileverCmd.Flags().StringVarP(&cantiMaterial, "material", "m", "S235", "Material id")
	beamCantileverCmd.Flags().StringVarP(&cantiProfile, "profile", "p", "", "Rolled profile id, e.g. \"IPE 160\" [required]")
	beamCantileverCmd.Flags().Float64Var(&cantiLimit, "limit", 0, "Deflection limit ratio (default L/200)")

	addOutputFlags(beamCantileverCmd, &cantiDiagram, &cantiPlot, &cantiPDF)

	beamCantileverCmd.MarkFlagRequired("span")
	beamCantileverCmd.MarkFlagRequired("profile")
}

func runBeamCantilever(cmd *cobra.Command, args []string) {
	props, err := section.Resolve(cantiMaterial, cantiProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	var loads []statics.Load
	if cantiUDL != 0 {
		loads = append(loads, statics.Uniform(cantiUDL))
	}
	if cantiTip != 0 {
		loads = append(loads, statics.Point(cantiTip, cantiSpan))
	}

	res, err := engine.Calculate(&statics.BeamCantilever{
		Span:  cantiSpan,
		Loads: loads,
		E:     props.E,
		I:     props.I,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	limit := resolveLimit(cantiLimit, service.LimitCantilever)
	verdict := service.Evaluate(res.GoverningSpan, res.MaxDeflection.Value, limit)

	printHeader("KRAGTRÄGER")
	printSection("EINGABEN", [][2]string{
		{"Kraglänge", fmt.Sprintf("%.2f m", cantiSpan)},
		{"Streckenlast", fmt.Sprintf("%.2f kN/m", cantiUDL)},
		{"Einzellast am Kragende", fmt.Sprintf("%.2f kN", cantiTip)},
		{"Material", cantiMaterial},
		{"Profil", cantiProfile},
		{"E-Modul", fmt.Sprintf("%.0f MPa", props.E)},
		{"Trägheitsmoment", fmt.Sprintf("%.4e m⁴", props.I)},
	})
	printSection("ERGEBNISSE", resultRows(res))
	printVerdict(verdict)

	rep := report.New("Statik-Bericht: Kragträger", "Kragträger")
	rep.AddInput("Kraglänge", "%.2f m", cantiSpan)
	rep.AddInput("Streckenlast", "%.2f kN/m", cantiUDL)
	rep.AddInput("Einzellast am Kragende", "%.2f kN", cantiTip)
	rep.AddInput("Material / Profil", "%s / %s", cantiMaterial, cantiProfile)
	emitExtras(res, cantiDiagram, cantiPlot, cantiPDF, rep, verdict)
}
