package domain

import "fmt"

// LaminarLimit is the Reynolds number at which flow is treated as turbulent.
// The boundary itself belongs to the turbulent regime.
const LaminarLimit = 2100.0

// BlasiusUpperReynolds is the upper end of the range in which the Blasius
// correlation is a reasonable smooth-pipe approximation.
const BlasiusUpperReynolds = 1e5

// Regime classifies the flow by Reynolds number.
type Regime int

const (
	Laminar Regime = iota
	Turbulent
)

// RegimeFor returns the regime for the given Reynolds number.
func RegimeFor(re float64) Regime {
	if re < LaminarLimit {
		return Laminar
	}
	return Turbulent
}

func (r Regime) String() string {
	switch r {
	case Laminar:
		return "Laminar"
	case Turbulent:
		return "Turbulent"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// MarshalText encodes the regime by name.
func (r Regime) MarshalText() ([]byte, error) {
	switch r {
	case Laminar, Turbulent:
		return []byte(r.String()), nil
	}
	return nil, fmt.Errorf("unknown regime %d", int(r))
}

// UnmarshalText decodes a regime name.
func (r *Regime) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Laminar":
		*r = Laminar
	case "Turbulent":
		*r = Turbulent
	default:
		return fmt.Errorf("unknown regime %q", string(b))
	}
	return nil
}

// PipeType classifies the pipe wall. A roughness of exactly zero is
// hydraulically smooth; anything else is rough, in every regime.
type PipeType int

const (
	Smooth PipeType = iota
	Rough
)

// PipeTypeFor returns the pipe type for a roughness in micrometres.
func PipeTypeFor(roughness float64) PipeType {
	if roughness == 0 {
		return Smooth
	}
	return Rough
}

func (p PipeType) String() string {
	switch p {
	case Smooth:
		return "Smooth"
	case Rough:
		return "Rough"
	default:
		return fmt.Sprintf("PipeType(%d)", int(p))
	}
}

// MarshalText encodes the pipe type by name.
func (p PipeType) MarshalText() ([]byte, error) {
	switch p {
	case Smooth, Rough:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("unknown pipe type %d", int(p))
}

// UnmarshalText decodes a pipe type name.
func (p *PipeType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Smooth":
		*p = Smooth
	case "Rough":
		*p = Rough
	default:
		return fmt.Errorf("unknown pipe type %q", string(b))
	}
	return nil
}

// FlowParameters holds the inputs of a single flow computation.
type FlowParameters struct {
	// Velocity is the mean fluid velocity in m/s. Zero means unset, in
	// which case it is derived from FlowRate.
	Velocity float64

	// Diameter is the internal pipe diameter in m.
	Diameter float64

	// Roughness is the absolute wall roughness in µm. Zero is smooth.
	Roughness float64

	// Density is the fluid density in kg/m³.
	Density float64

	// Viscosity is the dynamic viscosity in Pa·s.
	Viscosity float64

	// Length is the pipe length in m. Zero disables pressure drop and power.
	Length float64

	// FlowRate is the volumetric flow rate in m³/s. Only read when
	// Velocity is zero.
	FlowRate *float64
}

// FlowResult holds everything computed for one set of FlowParameters.
type FlowResult struct {
	// Velocity is the velocity used for the computation, in m/s.
	Velocity float64

	// VelocityDerived is true when Velocity was computed from the flow rate.
	VelocityDerived bool

	Reynolds       float64
	FrictionFactor float64
	Regime         Regime
	PipeType       PipeType

	// Iterations is the number of Colebrook iterations performed. It is zero
	// for the closed-form branches.
	Iterations int

	// Converged is false only when the Colebrook iteration bound was
	// exhausted before the tolerance was met.
	Converged bool

	// PressureDrop in Pa and Power in W are nil when Length is zero.
	PressureDrop *float64
	Power        *float64

	// DriveForce in N.
	DriveForce float64

	// FrictionLoss is the head loss in m. It is zero when Length is zero.
	FrictionLoss float64
}

// BlasiusExtrapolated reports whether the result came from the Blasius
// correlation outside the range where it is a good approximation.
func (r FlowResult) BlasiusExtrapolated() bool {
	return r.Regime == Turbulent && r.PipeType == Smooth && r.Reynolds >= BlasiusUpperReynolds
}
