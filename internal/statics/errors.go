package statics

import "fmt"

// InvalidInputError reports an input rejected before any numeric solve:
// non-positive lengths, out-of-range load positions, or a support sequence
// that does not match the structural type.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown material or profile identifier.
type NotFoundError struct {
	Kind string // "material" or "profile"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// SingularSystemError reports an ill-conditioned linear system in the
// continuous-beam solve (degenerate span ratios).
type SingularSystemError struct {
	Detail string
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("singular equation system: %s", e.Detail)
}

// UnstableStructureError reports a mechanically unstable frame
// configuration, e.g. a missing support. The solver never returns a
// partial result alongside it.
type UnstableStructureError struct {
	Detail string
}

func (e *UnstableStructureError) Error() string {
	return fmt.Sprintf("unstable structure: %s", e.Detail)
}

// InsufficientDepthError reports slab reinforcement demand beyond the
// practical density limit, signaling an inadequate slab thickness.
type InsufficientDepthError struct {
	RequiredMM2 float64 // mm²/m
	LimitMM2    float64 // mm²/m
}

func (e *InsufficientDepthError) Error() string {
	return fmt.Sprintf("required reinforcement %.0f mm²/m exceeds practical limit %.0f mm²/m: increase slab thickness",
		e.RequiredMM2, e.LimitMM2)
}
