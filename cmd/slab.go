package cmd

import (
	"github.com/spf13/cobra"
)

var slabCmd = &cobra.Command{
	Use:   "slab",
	Short: "Concrete slab calculation (Platte)",
	Long: `Compute reinforced concrete slabs. One-way slabs are solved as a
1 m wide beam strip, all-sides supported slabs with plate bending
coefficients. Both return the required reinforcement per meter.

Subcommands:
  single     - single span slab, one-way or supported on all sides
  continuous - 2-4 span one-way continuous slab`,
}

func init() {
	rootCmd.AddCommand(slabCmd)
}
