package catalog

import (
	"sort"

	"github.com/statikdev/gostatik/internal/statics"
)

// Category classifies a material by its family.
type Category int

const (
	Steel Category = iota
	Concrete
	Timber
	EngineeredTimber
	Aluminium
)

func (c Category) String() string {
	switch c {
	case Steel:
		return "steel"
	case Concrete:
		return "concrete"
	case Timber:
		return "timber"
	case EngineeredTimber:
		return "engineered timber"
	case Aluminium:
		return "aluminium"
	}
	return "unknown"
}

// Material is an immutable reference record for one building material.
type Material struct {
	ID       string
	Name     string
	E        float64 // elastic modulus, MPa
	Strength float64 // characteristic strength, MPa
	Category Category
}

// Elastic moduli follow the usual German design values (EN 1993/1992/1995
// orientation figures); strengths are characteristic values.
var materials = map[string]Material{
	"S235":   {ID: "S235", Name: "Stahl S235", E: 210000, Strength: 235, Category: Steel},
	"S355":   {ID: "S355", Name: "Stahl S355", E: 210000, Strength: 355, Category: Steel},
	"C20/25": {ID: "C20/25", Name: "Beton C20/25", E: 30000, Strength: 20, Category: Concrete},
	"C25/30": {ID: "C25/30", Name: "Beton C25/30", E: 31000, Strength: 25, Category: Concrete},
	"C30/37": {ID: "C30/37", Name: "Beton C30/37", E: 33000, Strength: 30, Category: Concrete},
	"C35/45": {ID: "C35/45", Name: "Beton C35/45", E: 34000, Strength: 35, Category: Concrete},
	"FICHTE": {ID: "FICHTE", Name: "Holz Fichte (C24)", E: 11000, Strength: 24, Category: Timber},
	"TANNE":  {ID: "TANNE", Name: "Holz Tanne (C24)", E: 11000, Strength: 24, Category: Timber},
	"EICHE":  {ID: "EICHE", Name: "Holz Eiche (D30)", E: 12000, Strength: 30, Category: Timber},
	"BSH":    {ID: "BSH", Name: "Brettschichtholz GL24h", E: 14000, Strength: 24, Category: EngineeredTimber},
	"ALU":    {ID: "ALU", Name: "Aluminium EN AW-6082", E: 70000, Strength: 260, Category: Aluminium},
}

// LookupMaterial returns the material for id.
func LookupMaterial(id string) (Material, error) {
	m, ok := materials[id]
	if !ok {
		return Material{}, &statics.NotFoundError{Kind: "material", ID: id}
	}
	return m, nil
}

// Materials returns all materials sorted by identifier.
func Materials() []Material {
	out := make([]Material, 0, len(materials))
	for _, m := range materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
