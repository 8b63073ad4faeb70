package hydraulics

import (
	"fmt"
	"math"
)

// ResolveVelocity returns v unchanged when it is non-zero. Otherwise it
// derives the mean velocity from the volumetric flow rate q through a pipe
// of diameter d as 4q/(πd²).
func ResolveVelocity(v float64, q *float64, d float64) (float64, error) {
	if v != 0 {
		return v, nil
	}
	if q == nil {
		return 0, fmt.Errorf("%w: velocity is unset and no flow rate was given", ErrMissingFlowInput)
	}
	if !positive(*q) {
		return 0, fmt.Errorf("%w: flow rate must be positive, got %g", ErrInvalidParameter, *q)
	}
	if !positive(d) {
		return 0, fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidParameter, d)
	}
	return 4 * *q / (math.Pi * d * d), nil
}

// CrossSection returns the flow area of a circular pipe of diameter d.
func CrossSection(d float64) float64 {
	return math.Pi * d * d / 4
}

// positive reports whether x is a finite number greater than zero.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// nonNegative reports whether x is a finite number not less than zero.
func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
