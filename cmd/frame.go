package cmd

import (
	"github.com/spf13/cobra"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Planar frame calculation (Rahmen)",
	Long: `Compute internal forces of planar frames with the stiffness method:
member stiffness matrices are assembled into a global system, reduced by
the support conditions and solved for the joint displacements.

Subcommands:
  single-story - one story with a mono-pitched roof member
  two-story    - two stories with girders at both levels`,
}

func init() {
	rootCmd.AddCommand(frameCmd)
}
