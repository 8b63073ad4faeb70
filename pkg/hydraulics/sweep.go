package hydraulics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// SweepSpec describes a Moody-style table: friction factor against Reynolds
// number for several wall roughnesses of one pipe diameter.
type SweepSpec struct {
	ReynoldsMin float64
	ReynoldsMax float64
	// Points is the number of log-spaced Reynolds numbers, ends included.
	Points int
	// Diameter in m.
	Diameter float64
	// Roughness lists the column roughnesses in µm.
	Roughness []float64
}

// SweepRow is one Reynolds number of a sweep. FrictionFactors has one entry
// per roughness column.
type SweepRow struct {
	Reynolds        float64   `json:"reynolds" yaml:"reynolds" toml:"reynolds"`
	Regime          Regime    `json:"regime" yaml:"regime" toml:"regime"`
	FrictionFactors []float64 `json:"friction_factors" yaml:"friction_factors" toml:"friction_factors"`
}

// SweepTable is the result of Sweep.
type SweepTable struct {
	Diameter  float64    `json:"diameter" yaml:"diameter" toml:"diameter"`
	Roughness []float64  `json:"roughness" yaml:"roughness" toml:"roughness"`
	Rows      []SweepRow `json:"rows" yaml:"rows" toml:"rows"`
}

// Validate checks the sweep bounds.
func (s SweepSpec) Validate() error {
	if !positive(s.ReynoldsMin) || !positive(s.ReynoldsMax) || s.ReynoldsMin >= s.ReynoldsMax {
		return fmt.Errorf("%w: reynolds range must satisfy 0 < min < max, got [%g, %g]",
			ErrInvalidParameter, s.ReynoldsMin, s.ReynoldsMax)
	}
	if s.Points < 2 {
		return fmt.Errorf("%w: sweep needs at least 2 points, got %d", ErrInvalidParameter, s.Points)
	}
	if !positive(s.Diameter) {
		return fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidParameter, s.Diameter)
	}
	if len(s.Roughness) == 0 {
		return fmt.Errorf("%w: at least one roughness is required", ErrInvalidParameter)
	}
	for _, k := range s.Roughness {
		if !nonNegative(k) {
			return fmt.Errorf("%w: roughness must be finite and not negative, got %g", ErrInvalidParameter, k)
		}
	}
	return nil
}

// Sweep evaluates the friction factor over the grid described by spec.
// The first failing cell aborts the sweep.
func (c *Calculator) Sweep(spec SweepSpec) (SweepTable, error) {
	if err := spec.Validate(); err != nil {
		return SweepTable{}, err
	}

	res := floats.LogSpan(make([]float64, spec.Points), spec.ReynoldsMin, spec.ReynoldsMax)
	// exp(log(x)) is not always x
	res[0], res[len(res)-1] = spec.ReynoldsMin, spec.ReynoldsMax

	table := SweepTable{
		Diameter:  spec.Diameter,
		Roughness: append([]float64(nil), spec.Roughness...),
		Rows:      make([]SweepRow, 0, len(res)),
	}
	for _, re := range res {
		row := SweepRow{Reynolds: re, FrictionFactors: make([]float64, len(spec.Roughness))}
		for j, k := range spec.Roughness {
			fr, err := c.solver.FrictionFactor(re, k, spec.Diameter)
			if err != nil {
				return SweepTable{}, fmt.Errorf("sweep at Re=%g, K=%g: %w", re, k, err)
			}
			row.Regime = fr.Regime
			row.FrictionFactors[j] = fr.Factor
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
