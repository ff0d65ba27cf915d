package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/statikdev/gostatik/internal/statics"
)

// curve describes one exported diagram.
type curve struct {
	suffix string
	title  string
	yLabel string
	value  func(statics.Sample) float64
	invert bool // draw below the axis, tension-side convention
	color  color.RGBA
}

var curves = []curve{
	{
		suffix: "moment",
		title:  "Bending Moment",
		yLabel: "M (kNm)",
		value:  func(s statics.Sample) float64 { return s.Moment },
		invert: true,
		color:  color.RGBA{R: 31, G: 119, B: 180, A: 255},
	},
	{
		suffix: "shear",
		title:  "Shear Force",
		yLabel: "V (kN)",
		value:  func(s statics.Sample) float64 { return s.Shear },
		color:  color.RGBA{R: 44, G: 160, B: 44, A: 255},
	},
	{
		suffix: "deflection",
		title:  "Deflection",
		yLabel: "w (mm)",
		value:  func(s statics.Sample) float64 { return s.Deflection },
		invert: true,
		color:  color.RGBA{R: 214, G: 39, B: 40, A: 255},
	},
}

// ExportCurves writes the moment, shear and deflection diagrams of a
// solve result as PNG files next to the given base path, e.g.
// "result.png" becomes result_moment.png, result_shear.png and
// result_deflection.png. Returns the written file names.
func ExportCurves(res *statics.SolveResult, base string) ([]string, error) {
	if len(res.Samples) == 0 {
		return nil, nil
	}
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".png"
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	var written []string
	for _, c := range curves {
		p := plot.New()
		p.Title.Text = c.title
		p.X.Label.Text = "x (m)"
		p.Y.Label.Text = c.yLabel

		pts := make(plotter.XYs, len(res.Samples))
		for i, s := range res.Samples {
			v := c.value(s)
			if c.invert {
				v = -v
			}
			pts[i] = plotter.XY{X: s.X, Y: v}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return written, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = c.color
		p.Add(line)

		axis, err := plotter.NewLine(plotter.XYs{
			{X: res.Samples[0].X, Y: 0},
			{X: res.Samples[len(res.Samples)-1].X, Y: 0},
		})
		if err != nil {
			return written, err
		}
		axis.LineStyle.Color = color.Black
		p.Add(axis)

		name := fmt.Sprintf("%s_%s%s", stem, c.suffix, ext)
		if err := p.Save(7*vg.Inch, 4*vg.Inch, name); err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}
