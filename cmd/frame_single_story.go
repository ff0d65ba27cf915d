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
	fs1Width    float64
	fs1Height   float64
	fs1Slope    float64
	fs1Roof     float64
	fs1Lateral  float64
	fs1Material string
	fs1Profile  string
	fs1Area     float64
	fs1Pinned   bool
	fs1Limit    float64
	fs1Diagram  bool
	fs1Plot     string
	fs1PDF      string
)

var frameSingleStoryCmd = &cobra.Command{
	Use:   "single-story",
	Short: "Solve a single-story frame with a sloped roof",
	Long: `Compute a single-story frame: two columns and an inclined roof
member whose stiffness matrix is rotated by the slope angle before
assembly.

Examples:
  # 8 m wide, 4 m high frame, 30° roof, 5 kN/m roof load
  gostatik frame single-story --width 8 --height 4 --slope 30 --roof 5 --profile "IPE 300"

  # With a lateral wind load of 10 kN at the eaves
  gostatik frame single-story --width 8 --height 4 --roof 5 --lateral 10 --profile "IPE 300"`,
	Run: runFrameSingleStory,
}

func init() {
	frameCmd.AddCommand(frameSingleStoryCmd)

	frameSingleStoryCmd.Flags().Float64VarP(&fs1Width, "width", "b", 0, "Frame width / column spacing (m) [required]")
	frameSingleStoryCmd.Flags().Float64Var(&fs1Height, "height", 0, "Left column height (m) [required]")
	frameSingleStoryCmd.Flags().Float64Var(&fs1Slope, "slope", 30, "Roof slope (degrees)")
	frameSingleStoryCmd.Flags().Float64VarP(&fs1Roof, "roof", "w", 0, "Vertical roof load (kN/m)")
	frameSingleStoryCmd.Flags().Float64Var(&fs1Lateral, "lateral", 0, "Horizontal load at the eaves (kN)")
	frameSingleStoryCmd.Flags().StringVarP(&fs1Material, "material", "m", "S235", "Material id")
	frameSingleStoryCmd.Flags().StringVarP(&fs1Profile, "profile", "p", "", "Rolled profile id for all members [required]")
	frameSingleStoryCmd.Flags().Float64Var(&fs1Area, "area", 0.005, "Member cross-section area (m²)")
	frameSingleStoryCmd.Flags().BoolVar(&fs1Pinned, "pinned-bases", false, "Pinned column bases instead of fixed")
	frameSingleStoryCmd.Flags().Float64Var(&fs1Limit, "limit", 0, "Deflection limit ratio (default L/300)")

	addOutputFlags(frameSingleStoryCmd, &fs1Diagram, &fs1Plot, &fs1PDF)

	frameSingleStoryCmd.MarkFlagRequired("width")
	frameSingleStoryCmd.MarkFlagRequired("height")
	frameSingleStoryCmd.MarkFlagRequired("profile")
}

func runFrameSingleStory(cmd *cobra.Command, args []string) {
	props, err := section.Resolve(fs1Material, fs1Profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	base := statics.SupportFixed
	if fs1Pinned {
		base = statics.SupportPinned
	}
	res, err := engine.Calculate(&statics.FrameSingleStory{
		Width:     fs1Width,
		Height:    fs1Height,
		RoofSlope: fs1Slope,
		RoofLoad:  fs1Roof,
		Lateral:   fs1Lateral,
		Bases:     [2]statics.SupportKind{base, base},
		E:         props.E,
		I:         props.I,
		A:         fs1Area,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	limit := resolveLimit(fs1Limit, service.LimitBeam)
	verdict := service.Evaluate(res.GoverningSpan, res.MaxDeflection.Value, limit)

	printHeader("EINGESCHOSSIGER RAHMEN")
	printSection("EINGABEN", [][2]string{
		{"Breite", fmt.Sprintf("%.2f m", fs1Width)},
		{"Höhe", fmt.Sprintf("%.2f m", fs1Height)},
		{"Dachneigung", fmt.Sprintf("%.1f°", fs1Slope)},
		{"Dachlast", fmt.Sprintf("%.2f kN/m", fs1Roof)},
		{"Horizontallast", fmt.Sprintf("%.2f kN", fs1Lateral)},
		{"Material / Profil", fs1Material + " / " + fs1Profile},
		{"Fußpunkte", base.String()},
	})
	printSection("ERGEBNISSE", resultRows(res))
	printVerdict(verdict)

	rep := report.New("Statik-Bericht: Eingeschossiger Rahmen", "Rahmen, eingeschossig")
	rep.AddInput("Breite / Höhe", "%.2f m / %.2f m", fs1Width, fs1Height)
	rep.AddInput("Dachneigung", "%.1f°", fs1Slope)
	rep.AddInput("Dachlast", "%.2f kN/m", fs1Roof)
	rep.AddInput("Horizontallast", "%.2f kN", fs1Lateral)
	rep.AddInput("Material / Profil", "%s / %s", fs1Material, fs1Profile)
	emitExtras(res, fs1Diagram, fs1Plot, fs1PDF, rep, verdict)
}
