// Package engine is the single entry point of the calculation core: it
// routes a structural system to its solver via exhaustive matching over
// the closed variant set.
package engine

import (
	"fmt"

	"github.com/statikdev/gostatik/internal/beam"
	"github.com/statikdev/gostatik/internal/frame"
	"github.com/statikdev/gostatik/internal/slab"
	"github.com/statikdev/gostatik/internal/statics"
)

// Calculate solves the given structural system. All validation happens
// before any numeric work; the result is immutable once returned.
func Calculate(sys statics.System) (*statics.SolveResult, error) {
	switch s := sys.(type) {
	case *statics.BeamSingle:
		return beam.SolveSingleSpan(s)
	case *statics.BeamCantilever:
		return beam.SolveCantilever(s)
	case *statics.BeamContinuous:
		return beam.SolveContinuous(s)
	case *statics.FrameSingleStory:
		return frame.SolveSingleStory(s)
	case *statics.FrameTwoStory:
		return frame.SolveTwoStory(s)
	case *statics.SlabSingle:
		return slab.SolveSingleSpan(s)
	case *statics.SlabContinuous:
		return slab.SolveContinuous(s)
	default:
		return nil, &statics.InvalidInputError{
			Field:  "system",
			Reason: fmt.Sprintf("unsupported structural system %T", sys),
		}
	}
}
