package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statikdev/gostatik/internal/service"
)

var (
	checkSpan       float64
	checkDeflection float64
	checkLimit      float64
	checkTolerance  float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Serviceability check of a known deflection",
	Long: `Evaluate a deflection against a span ratio limit without running a
solver. Useful for checking values from external calculations.

Examples:
  # 6 m span, 18 mm computed deflection, limit L/300
  gostatik check --span 6 --deflection 18 --limit 300`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64VarP(&checkSpan, "span", "l", 0, "Span length (m) [required]")
	checkCmd.Flags().Float64VarP(&checkDeflection, "deflection", "f", 0, "Deflection (mm) [required]")
	checkCmd.Flags().Float64Var(&checkLimit, "limit", service.LimitBeam, "Deflection limit ratio")
	checkCmd.Flags().Float64Var(&checkTolerance, "tolerance", service.DefaultTolerance, "Marginal band below the limit (fraction)")

	checkCmd.MarkFlagRequired("span")
	checkCmd.MarkFlagRequired("deflection")
}

func runCheck(cmd *cobra.Command, args []string) {
	verdict := service.EvaluateWithTolerance(checkSpan, checkDeflection, checkLimit, checkTolerance)

	printHeader("DURCHBIEGUNGSNACHWEIS")
	printSection("EINGABEN", [][2]string{
		{"Spannweite", fmt.Sprintf("%.2f m", checkSpan)},
		{"Durchbiegung", fmt.Sprintf("%.2f mm", checkDeflection)},
		{"Grenzwert", fmt.Sprintf("L/%.0f", checkLimit)},
	})
	printVerdict(verdict)
}
