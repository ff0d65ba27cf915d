package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam moment, shear and deflection calculation",
	Long: `Compute bending moment, shear force and deflection distributions
for beams under German building-code conventions.

Subcommands:
  single      - Einfeldträger (simply supported, one span)
  cantilever  - Kragträger (fixed at one end, free tip)
  continuous  - Durchlaufträger (2-3 spans over intermediate supports)

Results include the serviceability check against the span/deflection
limit (L/300 by default, L/200 for cantilevers).`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
