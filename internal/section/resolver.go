package section

import (
	"fmt"

	"github.com/statikdev/gostatik/internal/catalog"
)

// MinSlabThickness is the engineering lower bound for slab thicknesses (m).
const MinSlabThickness = 0.08

// Properties are the mechanical values the solvers need.
type Properties struct {
	E          float64 // MPa
	I          float64 // m⁴ (per meter width for slabs)
	W          float64 // m³ (per meter width for slabs)
	SelfWeight float64 // kN/m, zero when unknown
}

// InvalidSectionError reports a slab thickness below the engineering
// threshold or otherwise unusable section input.
type InvalidSectionError struct {
	Reason string
}

func (e *InvalidSectionError) Error() string {
	return "invalid section: " + e.Reason
}

// Resolve returns the section properties for a profile of the given
// material, e.g. Resolve("S235", "IPE 200").
func Resolve(materialID, profileID string) (Properties, error) {
	m, err := catalog.LookupMaterial(materialID)
	if err != nil {
		return Properties{}, err
	}
	p, err := catalog.LookupProfile(profileID)
	if err != nil {
		return Properties{}, err
	}
	return Properties{E: m.E, I: p.I, W: p.W, SelfWeight: p.SelfWeight}, nil
}

// ResolveSlab returns per-unit-width section properties for a slab strip
// of the given thickness (m), using rectangular-section formulas
// I = b·h³/12 and W = b·h²/6 with b = 1 m.
func ResolveSlab(materialID string, thickness float64) (Properties, error) {
	m, err := catalog.LookupMaterial(materialID)
	if err != nil {
		return Properties{}, err
	}
	if thickness <= 0 {
		return Properties{}, &InvalidSectionError{Reason: fmt.Sprintf("thickness must be positive, got %g m", thickness)}
	}
	if thickness < MinSlabThickness {
		return Properties{}, &InvalidSectionError{
			Reason: fmt.Sprintf("thickness %.0f mm below minimum %.0f mm", thickness*1000, MinSlabThickness*1000),
		}
	}
	return Properties{
		E: m.E,
		I: thickness * thickness * thickness / 12,
		W: thickness * thickness / 6,
	}, nil
}
