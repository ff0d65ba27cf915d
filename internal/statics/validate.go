package statics

import "fmt"

func validSpan(field string, l float64) error {
	if !(l > 0) {
		return &InvalidInputError{Field: field, Reason: fmt.Sprintf("length must be positive, got %g", l)}
	}
	return nil
}

func validSection(e, i float64) error {
	if !(e > 0) {
		return &InvalidInputError{Field: "E", Reason: fmt.Sprintf("elastic modulus must be positive, got %g", e)}
	}
	if !(i > 0) {
		return &InvalidInputError{Field: "I", Reason: fmt.Sprintf("second moment of area must be positive, got %g", i)}
	}
	return nil
}

func validLoads(loads []Load, spans []float64) error {
	if len(loads) == 0 {
		return &InvalidInputError{Field: "loads", Reason: "at least one load is required"}
	}
	for _, ld := range loads {
		if ld.Span < 0 || ld.Span >= len(spans) {
			return &InvalidInputError{Field: "loads", Reason: fmt.Sprintf("span index %d out of range", ld.Span)}
		}
		if ld.Kind == LoadPoint {
			l := spans[ld.Span]
			if ld.Position < 0 || ld.Position > l {
				return &InvalidInputError{
					Field:  "loads",
					Reason: fmt.Sprintf("point load position %.3f m outside [0, %.3f]", ld.Position, l),
				}
			}
		}
	}
	return nil
}

// Validate checks the single-span beam before any numeric work.
func (s *BeamSingle) Validate() error {
	if err := validSpan("span", s.Span); err != nil {
		return err
	}
	if err := validSection(s.E, s.I); err != nil {
		return err
	}
	for i, sup := range s.Supports {
		if sup != SupportPinned && sup != SupportRoller {
			return &InvalidInputError{
				Field:  "supports",
				Reason: fmt.Sprintf("single-span beam requires pinned or roller supports, got %s at %d", sup, i),
			}
		}
	}
	return validLoads(s.Loads, []float64{s.Span})
}

// Validate checks the cantilever before any numeric work.
func (s *BeamCantilever) Validate() error {
	if err := validSpan("span", s.Span); err != nil {
		return err
	}
	if err := validSection(s.E, s.I); err != nil {
		return err
	}
	return validLoads(s.Loads, []float64{s.Span})
}

// Validate checks the continuous beam before any numeric work.
func (s *BeamContinuous) Validate() error {
	if len(s.Spans) < 2 || len(s.Spans) > 3 {
		return &InvalidInputError{
			Field:  "spans",
			Reason: fmt.Sprintf("continuous beam supports 2 or 3 spans, got %d", len(s.Spans)),
		}
	}
	for i, l := range s.Spans {
		if err := validSpan(fmt.Sprintf("spans[%d]", i), l); err != nil {
			return err
		}
	}
	if err := validSection(s.E, s.I); err != nil {
		return err
	}
	return validLoads(s.Loads, s.Spans)
}

func validBases(bases [2]SupportKind) error {
	for i, b := range bases {
		switch b {
		case SupportFixed, SupportPinned, SupportFree:
		default:
			return &InvalidInputError{
				Field:  "bases",
				Reason: fmt.Sprintf("frame base %d must be fixed, pinned or free, got %s", i, b),
			}
		}
	}
	return nil
}

// Validate checks the single-story frame before any numeric work.
func (s *FrameSingleStory) Validate() error {
	if err := validSpan("width", s.Width); err != nil {
		return err
	}
	if err := validSpan("height", s.Height); err != nil {
		return err
	}
	if s.RoofSlope < 0 || s.RoofSlope >= 60 {
		return &InvalidInputError{Field: "roofSlope", Reason: fmt.Sprintf("roof slope must be in [0°, 60°), got %g", s.RoofSlope)}
	}
	if err := validSection(s.E, s.I); err != nil {
		return err
	}
	if !(s.A > 0) {
		return &InvalidInputError{Field: "A", Reason: "cross-section area must be positive"}
	}
	if s.RoofLoad == 0 && s.Lateral == 0 {
		return &InvalidInputError{Field: "loads", Reason: "at least one load is required"}
	}
	return validBases(s.Bases)
}

// Validate checks the two-story frame before any numeric work.
func (s *FrameTwoStory) Validate() error {
	if err := validSpan("width", s.Width); err != nil {
		return err
	}
	if err := validSpan("lowerHeight", s.LowerHeight); err != nil {
		return err
	}
	if err := validSpan("upperHeight", s.UpperHeight); err != nil {
		return err
	}
	if err := validSection(s.E, s.I); err != nil {
		return err
	}
	if !(s.A > 0) {
		return &InvalidInputError{Field: "A", Reason: "cross-section area must be positive"}
	}
	if s.FloorLoad == 0 && s.RoofLoad == 0 && s.LateralLower == 0 && s.LateralUpper == 0 {
		return &InvalidInputError{Field: "loads", Reason: "at least one load is required"}
	}
	return validBases(s.Bases)
}

// Validate checks the single-span slab before any numeric work.
func (s *SlabSingle) Validate() error {
	if err := validSpan("spanX", s.SpanX); err != nil {
		return err
	}
	if s.AllSides {
		if err := validSpan("spanY", s.SpanY); err != nil {
			return err
		}
	}
	if !(s.Thickness > 0) {
		return &InvalidInputError{Field: "thickness", Reason: "thickness must be positive"}
	}
	if !(s.E > 0) {
		return &InvalidInputError{Field: "E", Reason: "elastic modulus must be positive"}
	}
	if s.Load == 0 {
		return &InvalidInputError{Field: "load", Reason: "area load is required"}
	}
	return nil
}

// Validate checks the continuous slab before any numeric work.
func (s *SlabContinuous) Validate() error {
	if len(s.Spans) < 2 || len(s.Spans) > 4 {
		return &InvalidInputError{
			Field:  "spans",
			Reason: fmt.Sprintf("continuous slab supports 2 to 4 spans, got %d", len(s.Spans)),
		}
	}
	for i, l := range s.Spans {
		if err := validSpan(fmt.Sprintf("spans[%d]", i), l); err != nil {
			return err
		}
	}
	if !(s.Thickness > 0) {
		return &InvalidInputError{Field: "thickness", Reason: "thickness must be positive"}
	}
	if !(s.E > 0) {
		return &InvalidInputError{Field: "E", Reason: "elastic modulus must be positive"}
	}
	if s.Load == 0 {
		return &InvalidInputError{Field: "load", Reason: "area load is required"}
	}
	return nil
}
