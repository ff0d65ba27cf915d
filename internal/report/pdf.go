// Package report writes PDF calculation reports: input parameters, result
// summary and the serviceability verdict of one solve.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/statikdev/gostatik/internal/service"
	"github.com/statikdev/gostatik/internal/statics"
)

const disclaimer = "Alle Berechnungen dienen ausschliesslich der Orientierung. " +
	"Sie ersetzen keine qualifizierte statische Berechnung durch einen Tragwerksplaner."

// Pair is one labeled value of the input or result tables.
type Pair struct {
	Label string
	Value string
}

// Report collects the content of one calculation report.
type Report struct {
	Title   string
	System  string
	Inputs  []Pair
	Results []Pair
	Verdict *service.Verdict
}

// New returns a report for the given system description.
func New(title, system string) *Report {
	return &Report{Title: title, System: system}
}

// AddInput appends one formatted input row.
func (r *Report) AddInput(label, format string, args ...any) {
	r.Inputs = append(r.Inputs, Pair{Label: label, Value: fmt.Sprintf(format, args...)})
}

// AddResult appends one formatted result row.
func (r *Report) AddResult(label, format string, args ...any) {
	r.Results = append(r.Results, Pair{Label: label, Value: fmt.Sprintf(format, args...)})
}

// FillResults appends the scalar summaries of a solve result.
func (r *Report) FillResults(res *statics.SolveResult) {
	r.AddResult("Max. Biegemoment", "%.2f kNm (x = %.2f m)", res.MaxMoment.Value, res.MaxMoment.X)
	r.AddResult("Max. Querkraft", "%.2f kN (x = %.2f m)", res.MaxShear.Value, res.MaxShear.X)
	r.AddResult("Max. Durchbiegung", "%.2f mm (x = %.2f m)", res.MaxDeflection.Value, res.MaxDeflection.X)
	if rf := res.Reinforcement; rf != nil {
		r.AddResult("Bewehrung (Haupttragrichtung)", "erf. %.0f mm²/m, gewählt ø%.0f/%.0f (%.0f mm²/m)",
			rf.RequiredMain, rf.BarDiameter, rf.Spacing, rf.Provided)
		r.AddResult("Bewehrung (Querrichtung)", "erf. %.0f mm²/m, gewählt ø%.0f/%.0f (%.0f mm²/m)",
			rf.RequiredCross, rf.CrossBarDiameter, rf.CrossSpacing, rf.CrossProvided)
	}
	for _, re := range res.Reactions {
		r.AddResult(fmt.Sprintf("Auflager %d", re.Support+1), "H = %.2f kN, V = %.2f kN, M = %.2f kNm",
			re.Horizontal, re.Vertical, re.Moment)
	}
}

// Save writes the report as an A4 PDF to path.
func (r *Report) Save(path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, r.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, fmt.Sprintf("Erstellt am %s — %s", time.Now().Format("02.01.2006 15:04"), r.System), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.table(pdf, "Eingaben", r.Inputs)
	r.table(pdf, "Ergebnisse", r.Results)

	if v := r.Verdict; v != nil {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Gebrauchstauglichkeit", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Nachweis L/%.0f: vorhanden L/%.0f, Grenzwert %.2f mm, Ausnutzung %.1f %%",
			v.LimitRatio, v.ActualRatio, v.LimitValue, v.Utilization), "", 1, "L", false, 0, "")
		switch v.Classification {
		case service.Pass:
			pdf.SetTextColor(40, 167, 69)
		case service.Marginal:
			pdf.SetTextColor(255, 149, 0)
		default:
			pdf.SetTextColor(220, 53, 69)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, fmt.Sprintf("Ergebnis: %s", v.Classification), "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	pdf.SetTextColor(120, 120, 120)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, disclaimer, "", "L", false)

	return pdf.OutputFileAndClose(path)
}

func (r *Report) table(pdf *gofpdf.Fpdf, heading string, rows []Pair) {
	if len(rows) == 0 {
		return
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetFillColor(248, 249, 250)
		pdf.CellFormat(70, 6, row.Label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(110, 6, row.Value, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}
