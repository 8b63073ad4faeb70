package domain

import "errors"

// Domain errors represent the ways a flow computation can fail.
// They are returned wrapped with context and can be checked with errors.Is.
var (
	// ErrMissingFlowInput is returned when velocity is unset and no flow
	// rate was given to derive it from.
	ErrMissingFlowInput = errors.New("pipeflow: missing flow input")

	// ErrInvalidParameter is returned when a parameter is outside its
	// physical domain (non-positive diameter, density or viscosity,
	// negative velocity, roughness or length, or a non-finite value).
	ErrInvalidParameter = errors.New("pipeflow: invalid parameter")

	// ErrNonPhysicalResult is returned when the Colebrook iteration
	// produces a non-positive or non-finite friction factor.
	ErrNonPhysicalResult = errors.New("pipeflow: non-physical result")
)
