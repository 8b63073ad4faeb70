package report

import "github.com/bft-labs/pipeflow/internal/domain"

// Record is the structured form of one computation.
type Record struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Inputs  Inputs   `json:"inputs" yaml:"inputs" toml:"inputs"`
	Outputs *Outputs `json:"outputs,omitempty" yaml:"outputs,omitempty" toml:"outputs,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`

	result domain.FlowResult
}

// Inputs mirrors domain.FlowParameters with serialisation tags.
type Inputs struct {
	Velocity  float64  `json:"velocity" yaml:"velocity" toml:"velocity"`
	FlowRate  *float64 `json:"flow_rate,omitempty" yaml:"flow_rate,omitempty" toml:"flow_rate,omitempty"`
	Diameter  float64  `json:"diameter" yaml:"diameter" toml:"diameter"`
	Roughness float64  `json:"roughness" yaml:"roughness" toml:"roughness"`
	Density   float64  `json:"density" yaml:"density" toml:"density"`
	Viscosity float64  `json:"viscosity" yaml:"viscosity" toml:"viscosity"`
	Length    float64  `json:"length" yaml:"length" toml:"length"`
}

// Outputs mirrors domain.FlowResult with serialisation tags. Pressure drop
// and power are null in JSON and YAML when they were not computed; TOML has
// no null and leaves the keys out.
type Outputs struct {
	Velocity        float64         `json:"velocity" yaml:"velocity" toml:"velocity"`
	VelocityDerived bool            `json:"velocity_derived" yaml:"velocity_derived" toml:"velocity_derived"`
	Reynolds        float64         `json:"reynolds" yaml:"reynolds" toml:"reynolds"`
	FrictionFactor  float64         `json:"friction_factor" yaml:"friction_factor" toml:"friction_factor"`
	Regime          domain.Regime   `json:"regime" yaml:"regime" toml:"regime"`
	PipeType        domain.PipeType `json:"pipe_type" yaml:"pipe_type" toml:"pipe_type"`
	Iterations      int             `json:"iterations" yaml:"iterations" toml:"iterations"`
	Converged       bool            `json:"converged" yaml:"converged" toml:"converged"`
	PressureDrop    *float64        `json:"pressure_drop" yaml:"pressure_drop" toml:"pressure_drop,omitempty"`
	Power           *float64        `json:"power" yaml:"power" toml:"power,omitempty"`
	DriveForce      float64         `json:"drive_force" yaml:"drive_force" toml:"drive_force"`
	FrictionLoss    float64         `json:"friction_loss" yaml:"friction_loss" toml:"friction_loss"`
}

// NewRecord builds a record from a computation outcome. When err is
// non-nil the result is ignored.
func NewRecord(name string, p domain.FlowParameters, res domain.FlowResult, err error) Record {
	r := Record{
		Name: name,
		Inputs: Inputs{
			Velocity:  p.Velocity,
			FlowRate:  p.FlowRate,
			Diameter:  p.Diameter,
			Roughness: p.Roughness,
			Density:   p.Density,
			Viscosity: p.Viscosity,
			Length:    p.Length,
		},
	}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.result = res
	r.Outputs = &Outputs{
		Velocity:        res.Velocity,
		VelocityDerived: res.VelocityDerived,
		Reynolds:        res.Reynolds,
		FrictionFactor:  res.FrictionFactor,
		Regime:          res.Regime,
		PipeType:        res.PipeType,
		Iterations:      res.Iterations,
		Converged:       res.Converged,
		PressureDrop:    res.PressureDrop,
		Power:           res.Power,
		DriveForce:      res.DriveForce,
		FrictionLoss:    res.FrictionLoss,
	}
	return r
}

// Failed reports whether the record holds an error.
func (r Record) Failed() bool {
	return r.Error != ""
}
