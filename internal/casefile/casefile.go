// Package casefile loads named flow cases from YAML files.
//
// A case file lists one or more cases. Optional fields follow the same
// defaults as the interactive prompt: a missing velocity is derived from
// the flow rate, missing roughness and length are zero. Diameter, density
// and viscosity are required.
package casefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/pipeflow/internal/domain"
)

// File is the top-level document of a case file.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Case is one named set of flow parameters. Pointer fields distinguish
// "absent" from zero.
type Case struct {
	Name      string   `yaml:"name"`
	Velocity  *float64 `yaml:"velocity"`
	FlowRate  *float64 `yaml:"flow_rate"`
	Diameter  *float64 `yaml:"diameter"`
	Roughness *float64 `yaml:"roughness"`
	Density   *float64 `yaml:"density"`
	Viscosity *float64 `yaml:"viscosity"`
	Length    *float64 `yaml:"length"`
}

// Load reads and validates the case file at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates case-file content.
func Parse(b []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no cases defined")
		}
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks names and required fields. Physical ranges are left to
// the calculator so they are reported per case.
func (f *File) Validate() error {
	if len(f.Cases) == 0 {
		return fmt.Errorf("no cases defined")
	}
	seen := make(map[string]bool, len(f.Cases))
	for i, c := range f.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: name is required", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("case %q: duplicate name", c.Name)
		}
		seen[c.Name] = true

		for _, req := range []struct {
			field string
			value *float64
		}{
			{"diameter", c.Diameter},
			{"density", c.Density},
			{"viscosity", c.Viscosity},
		} {
			if req.value == nil {
				return fmt.Errorf("case %q: %s is required", c.Name, req.field)
			}
		}
	}
	return nil
}

// Params converts the case to calculator input, applying defaults for
// absent optional fields.
func (c Case) Params() domain.FlowParameters {
	p := domain.FlowParameters{
		Velocity:  deref(c.Velocity),
		Diameter:  deref(c.Diameter),
		Roughness: deref(c.Roughness),
		Density:   deref(c.Density),
		Viscosity: deref(c.Viscosity),
		Length:    deref(c.Length),
	}
	if c.FlowRate != nil {
		q := *c.FlowRate
		p.FlowRate = &q
	}
	return p
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
