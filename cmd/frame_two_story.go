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
	fs2Width    float64
	fs2Lower    float64
	fs2Upper    float64
	fs2Floor    float64
	fs2Roof     float64
	fs2LatLow   float64
	fs2LatUp    float64
	fs2Material string
	fs2Profile  string
	fs2Area     float64
	fs2Pinned   bool
	fs2Limit    float64
	fs2Diagram  bool
	fs2Plot     string
	fs2PDF      string
)

var frameTwoStoryCmd = &cobra.Command{
	Use:   "two-story",
	Short: "Solve a two-story frame",
	Long: `Compute a two-story frame with girders at both levels. Story loads
are applied independently and resolved in one global stiffness solve.

Examples:
  # 6 m wide frame, stories 3.2/3.0 m, floor 8 kN/m, roof 5 kN/m
  gostatik frame two-story --width 6 --lower 3.2 --upper 3.0 --floor 8 --roof 5 --profile "IPE 330"`,
	Run: runFrameTwoStory,
}

func init() {
	frameCmd.AddCommand(frameTwoStoryCmd)

	frameTwoStoryCmd.Flags().Float64VarP(&fs2Width, "width", "b", 0, "Frame width (m) [required]")
	frameTwoStoryCmd.Flags().Float64Var(&fs2Lower, "lower", 0, "Lower story height (m) [required]")
	frameTwoStoryCmd.Flags().Float64Var(&fs2Upper, "upper", 0, "Upper story height (m) [required]")
	frameTwoStoryCmd.Flags().Float64Var(&fs2Floor, "floor", 0, "Vertical load on the floor girder (kN/m)")
	frameTwoStoryCmd.Flags().Float64VarP(&fs2Roof, "roof", "w", 0, "Vertical load on the roof girder (kN/m)")
	frameTwoStoryCmd.Flags().Float64Var(&fs2LatLow, "lateral-lower", 0, "Horizontal load at the floor level (kN)")
	frameTwoStoryCmd.Flags().Float64Var(&fs2LatUp, "lateral-upper", 0, "Horizontal load at the roof level (kN)")
	frameTwoStoryCmd.Flags().StringVarP(&fs2Material, "material", "m", "S235", "Material id")
	frameTwoStoryCmd.Flags().StringVarP(&fs2Profile, "profile", "p", "", "Rolled profile id for all members [required]")
	frameTwoStoryCmd.Flags().Float64Var(&fs2Area, "area", 0.005, "Member cross-section area (m²)")
	frameTwoStoryCmd.Flags().BoolVar(&fs2Pinned, "pinned-bases", false, "Pinned column bases instead of fixed")
	frameTwoStoryCmd.Flags().Float64Var(&fs2Limit, "limit", 0, "Deflection limit ratio (default L/300)")

	addOutputFlags(frameTwoStoryCmd, &fs2Diagram, &fs2Plot, &fs2PDF)

	frameTwoStoryCmd.MarkFlagRequired("width")
	frameTwoStoryCmd.MarkFlagRequired("lower")
	frameTwoStoryCmd.MarkFlagRequired("upper")
	frameTwoStoryCmd.MarkFlagRequired("profile")
}

func runFrameTwoStory(cmd *cobra.Command, args []string) {
	props, err := section.Resolve(fs2Material, fs2Profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	base := statics.SupportFixed
	if fs2Pinned {
		base = statics.SupportPinned
	}
	res, err := engine.Calculate(&statics.FrameTwoStory{
		Width:        fs2Width,
		LowerHeight:  fs2Lower,
		UpperHeight:  fs2Upper,
		FloorLoad:    fs2Floor,
		RoofLoad:     fs2Roof,
		LateralLower: fs2LatLow,
		LateralUpper: fs2LatUp,
		Bases:        [2]statics.SupportKind{base, base},
		E:            props.E,
		I:            props.I,
		A:            fs2Area,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	limit := resolveLimit(fs2Limit, service.LimitBeam)
	verdict := service.Evaluate(res.GoverningSpan, res.MaxDeflection.Value, limit)

	printHeader("ZWEIGESCHOSSIGER RAHMEN")
	printSection("EINGABEN", [][2]string{
		{"Breite", fmt.Sprintf("%.2f m", fs2Width)},
		{"Geschosshöhen", fmt.Sprintf("%.2f m / %.2f m", fs2Lower, fs2Upper)},
		{"Deckenlast", fmt.Sprintf("%.2f kN/m", fs2Floor)},
		{"Dachlast", fmt.Sprintf("%.2f kN/m", fs2Roof)},
		{"Horizontallasten", fmt.Sprintf("%.2f kN / %.2f kN", fs2LatLow, fs2LatUp)},
		{"Material / Profil", fs2Material + " / " + fs2Profile},
		{"Fußpunkte", base.String()},
	})
	printSection("ERGEBNISSE", resultRows(res))
	printVerdict(verdict)

	rep := report.New("Statik-Bericht: Zweigeschossiger Rahmen", "Rahmen, zweigeschossig")
	rep.AddInput("Breite", "%.2f m", fs2Width)
	rep.AddInput("Geschosshöhen", "%.2f m / %.2f m", fs2Lower, fs2Upper)
	rep.AddInput("Deckenlast / Dachlast", "%.2f kN/m / %.2f kN/m", fs2Floor, fs2Roof)
	rep.AddInput("Material / Profil", "%s / %s", fs2Material, fs2Profile)
	emitExtras(res, fs2Diagram, fs2Plot, fs2PDF, rep, verdict)
}
