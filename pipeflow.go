// Package pipeflow computes Reynolds number, friction factor and the
// pressure drop, power, drive force and friction losses of flow in a
// circular pipe.
//
// Example usage:
//
//	res, err := pipeflow.ComputeFlow(pipeflow.FlowParameters{
//	    Velocity:  2,
//	    Diameter:  0.05,
//	    Density:   1000,
//	    Viscosity: 0.001,
//	    Length:    10,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Reynolds, res.FrictionFactor, res.Regime)
//
// For solver settings or logging, build a calculator from
// github.com/bft-labs/pipeflow/pkg/hydraulics.
package pipeflow

import "github.com/bft-labs/pipeflow/pkg/hydraulics"

// FlowParameters holds the fluid and pipe inputs of one computation.
type FlowParameters = hydraulics.FlowParameters

// FlowResult holds the computed quantities.
type FlowResult = hydraulics.FlowResult

// ComputeFlow computes p with the default solver settings.
func ComputeFlow(p FlowParameters) (FlowResult, error) {
	return hydraulics.ComputeFlow(p)
}

// Errors returned by ComputeFlow.
var (
	ErrMissingFlowInput  = hydraulics.ErrMissingFlowInput
	ErrInvalidParameter  = hydraulics.ErrInvalidParameter
	ErrNonPhysicalResult = hydraulics.ErrNonPhysicalResult
)
