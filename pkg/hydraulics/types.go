package hydraulics

import "github.com/bft-labs/pipeflow/internal/domain"

type (
	// FlowParameters holds the inputs of a single computation.
	FlowParameters = domain.FlowParameters

	// FlowResult holds the outputs of a single computation.
	FlowResult = domain.FlowResult

	// Regime is Laminar or Turbulent.
	Regime = domain.Regime

	// PipeType is Smooth or Rough.
	PipeType = domain.PipeType
)

const (
	Laminar   = domain.Laminar
	Turbulent = domain.Turbulent
	Smooth    = domain.Smooth
	Rough     = domain.Rough
)

// Errors returned by the calculator. Check them with errors.Is.
var (
	ErrMissingFlowInput  = domain.ErrMissingFlowInput
	ErrInvalidParameter  = domain.ErrInvalidParameter
	ErrNonPhysicalResult = domain.ErrNonPhysicalResult
)

// StandardGravity is the gravitational acceleration used for head loss, m/s².
const StandardGravity = 9.81
