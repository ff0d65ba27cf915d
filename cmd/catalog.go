package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/statikdev/gostatik/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in materials and profiles",
}

var catalogMaterialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in materials",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader("MATERIALIEN")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tBezeichnung\tE-Modul\tFestigkeit")
		fmt.Fprintln(w, "  --\t-----------\t-------\t----------")
		for _, m := range catalog.Materials() {
			fmt.Fprintf(w, "  %s\t%s\t%.0f MPa\t%.0f MPa\n", m.ID, m.Name, m.E, m.Strength)
		}
		w.Flush()
		fmt.Println()
	},
}

var catalogProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the built-in IPE profiles",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader("PROFILE")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tIy\tWy\tEigengewicht")
		fmt.Fprintln(w, "  --\t--\t--\t------------")
		for _, p := range catalog.Profiles() {
			fmt.Fprintf(w, "  %s\t%.1f cm⁴\t%.1f cm³\t%.3f kN/m\n", p.ID, p.I*1e8, p.W*1e6, p.SelfWeight)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogMaterialsCmd)
	catalogCmd.AddCommand(catalogProfilesCmd)
}
