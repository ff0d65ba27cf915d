package beam

import "github.com/statikdev/gostatik/internal/statics"

// Member exposes the span field of a bay with prescribed end moments, so
// the frame solver can rebuild member curves from its end-force recovery.
type Member struct {
	f spanField
}

// SpanWithEndMoments returns the distribution of a span of length l (m)
// under a uniform transverse load w (kN/m, down-positive) with
// sagging-positive end moments ma and mb (kNm). EI in kN·m².
func SpanWithEndMoments(l, ei, w, ma, mb float64) *Member {
	return &Member{f: spanField{l: l, ei: ei, uniform: w, ma: ma, mb: mb}}
}

// Moment returns the bending moment (kNm) at x.
func (m *Member) Moment(x float64) float64 { return m.f.moment(x) }

// Shear returns the shear force (kN) at x.
func (m *Member) Shear(x float64) float64 { return m.f.shear(x, false) }

// Deflection returns the chord-relative transverse deflection (m,
// down-positive) at x.
func (m *Member) Deflection(x float64) float64 { return m.f.deflection(x) }

// MomentExtremum returns the largest-magnitude bending moment.
func (m *Member) MomentExtremum() statics.Extremum { return m.f.momentExtremum() }

// ShearExtremum returns the largest-magnitude shear force.
func (m *Member) ShearExtremum() statics.Extremum { return m.f.shearExtremum() }

// DeflectionExtremum returns the largest-magnitude chord-relative
// deflection.
func (m *Member) DeflectionExtremum() statics.Extremum { return m.f.deflectionExtremum() }
