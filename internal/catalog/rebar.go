package catalog

import "math"

// Reinforcement steel B500 design values.
const (
	RebarFyk    = 500.0  // MPa
	RebarGammaS = 1.15   // partial safety factor
	RebarFyd    = RebarFyk / RebarGammaS
)

// BarDiameters lists the standard reinforcement bar diameters (mm),
// smallest first.
var BarDiameters = []float64{8, 10, 12, 14, 16, 20}

// BarSpacings lists the standard bar spacings (mm), widest first.
var BarSpacings = []float64{250, 200, 150, 125, 100, 75}

// BarArea returns the cross-section area (mm²) of one bar of diameter d (mm).
func BarArea(d float64) float64 {
	return math.Pi * d * d / 4
}

// AreaPerMeter returns the reinforcement area (mm²/m) provided by bars of
// diameter d (mm) at spacing s (mm).
func AreaPerMeter(d, s float64) float64 {
	return BarArea(d) * 1000 / s
}
