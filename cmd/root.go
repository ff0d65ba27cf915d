package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statikdev/gostatik/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gostatik",
	Short: "Structural statics calculation tool",
	Long: `gostatik - Statik-Berechnungstool

A CLI tool for fast structural orientation values following German
building-code conventions (DIN EN 1990 serviceability limits).

This tool helps engineers and architects compute:
  - Single-span, cantilever and continuous beams (2-3 spans)
  - Single-story (sloped roof) and two-story frames
  - One-way and all-sides-supported slabs with reinforcement sizing
  - Serviceability checks (L/300, L/250, L/200)

All outputs are orientation values, not a certified structural design.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gostatik v%-46s║\n", version.Version)
		fmt.Println("  ║   Statik-Berechnungstool                                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Schnelle statische Orientierungswerte für Träger, Rahmen")
		fmt.Println("  und Platten nach deutschen Baunormen-Konventionen.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Einfeld-, Krag- und Durchlaufträger (2-3 Felder)")
		fmt.Println("    • Ein- und zweigeschossige Rahmen")
		fmt.Println("    • Einfeld- und Durchlaufplatten mit Bewehrungswahl")
		fmt.Println("    • Gebrauchstauglichkeitsnachweise (L/300, L/250, L/200)")
		fmt.Println()
		fmt.Println("  Use 'gostatik --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Println("  ⚠ Alle Berechnungen dienen ausschließlich der Orientierung.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
