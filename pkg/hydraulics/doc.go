// Package hydraulics computes pipe-flow quantities for a single fluid and pipe.
//
// Given a [FlowParameters] value the [Calculator] returns the Reynolds number,
// the Fanning friction factor with its regime and pipe classification, and
// the derived quantities: pressure drop and power (when a length is given),
// drive force and friction loss.
//
// # Basic Usage
//
//	q := 0.004
//	res, err := hydraulics.ComputeFlow(hydraulics.FlowParameters{
//	    Diameter:  0.05,
//	    Roughness: 15,
//	    Density:   1000,
//	    Viscosity: 0.001,
//	    Length:    10,
//	    FlowRate:  &q,
//	})
//	if errors.Is(err, hydraulics.ErrMissingFlowInput) { ... }
//
// # Friction Factor
//
// The friction factor is selected in this order:
//
//  1. Re < 2100: laminar, f = 16/Re, whatever the roughness.
//  2. Smooth pipe (roughness 0): Blasius, f = 0.079·Re^-0.25. The correlation
//     is a good fit only up to Re ≈ 1e5; it is still applied above that and
//     [FlowResult.BlasiusExtrapolated] flags those results.
//  3. Rough pipe: the Colebrook-White equation solved by fixed-point
//     iteration, see [Solver].
//
// # Concurrency
//
// A Calculator is immutable after [New] returns and may be shared between
// goroutines. No computation performs I/O beyond the configured logger.
package hydraulics
