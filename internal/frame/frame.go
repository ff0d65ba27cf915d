package frame

import (
	"math"

	"github.com/statikdev/gostatik/internal/statics"
)

func baseConstraint(kind statics.SupportKind) [3]bool {
	switch kind {
	case statics.SupportFixed:
		return [3]bool{true, true, true}
	case statics.SupportPinned:
		return [3]bool{true, true, false}
	default: // free: support removed
		return [3]bool{false, false, false}
	}
}

// SolveSingleStory computes a single-story frame with a mono-pitched roof
// member. The roof member is inclined by the slope angle; its stiffness
// matrix is rotated accordingly before assembly. The unwrapped result
// axis runs left column base → eaves, roof member, right column top →
// base.
func SolveSingleStory(sys *statics.FrameSingleStory) (*statics.SolveResult, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	alpha := sys.RoofSlope * math.Pi / 180
	hr := sys.Height + sys.Width*math.Tan(alpha)
	e := sys.E * 1000 // MPa → kN/m²

	mo := &model{
		nodes: []node{
			{0, 0},                // 0: left base
			{0, sys.Height},       // 1: left eaves
			{sys.Width, hr},       // 2: right top
			{sys.Width, 0},        // 3: right base
		},
		members: []member{
			{i: 0, j: 1, e: e, iy: sys.I, area: sys.A},
			// Vertical roof load per member length keeps the total load at
			// w·width across the inclined member.
			{i: 1, j: 2, e: e, iy: sys.I, area: sys.A, vertical: sys.RoofLoad * math.Cos(alpha)},
			{i: 2, j: 3, e: e, iy: sys.I, area: sys.A},
		},
		nodalLoads:  map[int][2]float64{},
		constrained: map[int][3]bool{},
		girders:     map[int]bool{1: true},
		supports:    []int{0, 3},
		span:        sys.Width,
	}
	if sys.Lateral != 0 {
		mo.nodalLoads[1] = [2]float64{sys.Lateral, 0}
	}
	mo.constrained[0] = baseConstraint(sys.Bases[0])
	mo.constrained[3] = baseConstraint(sys.Bases[1])
	return mo.solve()
}

// SolveTwoStory computes a two-story frame with girders at both levels.
// Loads are applied independently per story and resolved in one global
// solve. The unwrapped result axis runs left columns base → top, roof
// girder, right columns top → base, then the floor girder.
func SolveTwoStory(sys *statics.FrameTwoStory) (*statics.SolveResult, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	e := sys.E * 1000
	h1 := sys.LowerHeight
	h2 := sys.UpperHeight
	b := sys.Width

	mo := &model{
		nodes: []node{
			{0, 0},        // 0: left base
			{0, h1},       // 1: left floor
			{0, h1 + h2},  // 2: left roof
			{b, h1 + h2},  // 3: right roof
			{b, h1},       // 4: right floor
			{b, 0},        // 5: right base
		},
		members: []member{
			{i: 0, j: 1, e: e, iy: sys.I, area: sys.A},
			{i: 1, j: 2, e: e, iy: sys.I, area: sys.A},
			{i: 2, j: 3, e: e, iy: sys.I, area: sys.A, vertical: sys.RoofLoad},
			{i: 3, j: 4, e: e, iy: sys.I, area: sys.A},
			{i: 4, j: 5, e: e, iy: sys.I, area: sys.A},
			{i: 1, j: 4, e: e, iy: sys.I, area: sys.A, vertical: sys.FloorLoad},
		},
		nodalLoads:  map[int][2]float64{},
		constrained: map[int][3]bool{},
		girders:     map[int]bool{2: true, 5: true},
		supports:    []int{0, 5},
		span:        b,
	}
	if sys.LateralLower != 0 {
		mo.nodalLoads[1] = [2]float64{sys.LateralLower, 0}
	}
	if sys.LateralUpper != 0 {
		mo.nodalLoads[2] = [2]float64{sys.LateralUpper, 0}
	}
	mo.constrained[0] = baseConstraint(sys.Bases[0])
	mo.constrained[5] = baseConstraint(sys.Bases[1])
	return mo.solve()
}
