// Package service classifies solver results against serviceability
// deflection limits (L/300, L/250, L/200).
package service

import "math"

// Default limit ratios by structural family, German convention.
const (
	LimitBeam       = 300.0
	LimitCantilever = 200.0
	LimitSlab       = 250.0
)

// DefaultTolerance is the marginal band: verdicts within 90–100% of the
// limit classify as marginal.
const DefaultTolerance = 0.10

// Classification is the serviceability outcome.
type Classification int

const (
	Pass Classification = iota
	Marginal
	Fail
)

func (c Classification) String() string {
	switch c {
	case Pass:
		return "pass"
	case Marginal:
		return "marginal"
	case Fail:
		return "fail"
	}
	return "unknown"
}

// Verdict is the result of one serviceability evaluation; derived solely
// from a span length, a deflection and a configured limit.
type Verdict struct {
	ActualRatio    float64 // span / deflection
	LimitRatio     float64
	LimitValue     float64 // mm, span/limit
	Utilization    float64 // percent of the limit deflection used
	Classification Classification
}

// Evaluate classifies the governing deflection of a solve against a
// span-to-deflection limit ratio. span in m, deflection in mm. A zero
// deflection passes with an infinite ratio; a ratio exactly at the limit
// passes.
func Evaluate(span, deflection, limitRatio float64) Verdict {
	return EvaluateWithTolerance(span, deflection, limitRatio, DefaultTolerance)
}

// EvaluateWithTolerance is Evaluate with a configurable marginal band:
// actual ratios within (1−tolerance)·limit and the limit classify as
// marginal.
func EvaluateWithTolerance(span, deflection, limitRatio, tolerance float64) Verdict {
	spanMM := span * 1000
	v := Verdict{
		LimitRatio: limitRatio,
		LimitValue: spanMM / limitRatio,
	}
	deflection = math.Abs(deflection)
	if deflection == 0 {
		v.ActualRatio = math.Inf(1)
		v.Classification = Pass
		return v
	}
	v.ActualRatio = spanMM / deflection
	v.Utilization = deflection / v.LimitValue * 100
	switch {
	case v.ActualRatio >= limitRatio:
		v.Classification = Pass
	case v.ActualRatio >= (1-tolerance)*limitRatio:
		v.Classification = Marginal
	default:
		v.Classification = Fail
	}
	return v
}
