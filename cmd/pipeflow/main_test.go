package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/pipeflow/internal/domain"
)

var envVars = []string{
	"PIPEFLOW_FORMAT", "PIPEFLOW_LOG_LEVEL", "PIPEFLOW_PRECISION",
	"PIPEFLOW_MAX_ITERATIONS", "PIPEFLOW_TOLERANCE", "PIPEFLOW_INITIAL_GUESS",
	"PIPEFLOW_LEGACY_COLEBROOK", "PIPEFLOW_WATCH_DEBOUNCE",
}

// isolate points HOME at an empty directory and clears PIPEFLOW_* so the
// developer's own settings do not leak into tests. It returns the new home.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, v := range envVars {
		t.Setenv(v, "")
	}
	return home
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := newRootCmd(&logs)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var waterArgs = []string{"--diameter", "0.05", "--density", "1000", "--viscosity", "0.001"}

func TestCalc_Text(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", append([]string{"calc", "--velocity", "2", "--length", "10"}, waterArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Reynolds number 'Re': 100000\n")
	assert.Contains(t, out, "(Turbulent, Smooth Pipe)")
	assert.Contains(t, out, "Pressure Drop '|delta(p)|'")
}

func TestCalc_JSONFromFlowRate(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", append([]string{"calc", "--flow-rate", "0.004", "--roughness", "15", "--format", "json"}, waterArgs...)...)
	require.NoError(t, err)

	var doc struct {
		Cases []struct {
			Name    string
			Outputs struct {
				Velocity        float64  `json:"velocity"`
				VelocityDerived bool     `json:"velocity_derived"`
				PipeType        string   `json:"pipe_type"`
				PressureDrop    *float64 `json:"pressure_drop"`
			}
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Cases, 1)

	c := doc.Cases[0]
	assert.Equal(t, "calc", c.Name)
	assert.InDelta(t, 2.0371832715762603, c.Outputs.Velocity, 1e-12)
	assert.True(t, c.Outputs.VelocityDerived)
	assert.Equal(t, "Rough", c.Outputs.PipeType)
	assert.Nil(t, c.Outputs.PressureDrop)
}

func TestCalc_MissingFlowInput(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", append([]string{"calc"}, waterArgs...)...)
	assert.ErrorIs(t, err, domain.ErrMissingFlowInput)
}

func TestCalc_RequiredFlags(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "calc", "--velocity", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diameter")
}

const cases = `
cases:
  - name: good
    velocity: 2
    diameter: 0.05
    density: 1000
    viscosity: 0.001
    length: 10
  - name: bad
    velocity: -1
    diameter: 0.05
    density: 1000
    viscosity: 0.001
`

func writeCases(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBatch_ReportsFailuresWithoutAborting(t *testing.T) {
	isolate(t)
	path := writeCases(t, cases)

	out, err := execute(t, "", "batch", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 cases failed")

	assert.Contains(t, out, "== good\n")
	assert.Contains(t, out, "== bad\nerror: pipeflow: invalid parameter")
	assert.Less(t, strings.Index(out, "== good"), strings.Index(out, "== bad"))
}

func TestBatch_YAML(t *testing.T) {
	isolate(t)
	path := writeCases(t, cases)

	out, _ := execute(t, "", "batch", path, "--format", "yaml")

	var doc struct {
		Cases []struct {
			Name    string                 `yaml:"name"`
			Error   string                 `yaml:"error"`
			Outputs map[string]interface{} `yaml:"outputs"`
		} `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Cases, 2)
	assert.Empty(t, doc.Cases[0].Error)
	assert.InDelta(t, 100000.0, doc.Cases[0].Outputs["reynolds"], 1e-6)
	assert.NotEmpty(t, doc.Cases[1].Error)
	assert.Nil(t, doc.Cases[1].Outputs)
}

func TestBatch_BadFile(t *testing.T) {
	isolate(t)
	path := writeCases(t, "cases:\n  - name: x\n")

	_, err := execute(t, "", "batch", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diameter is required")
}

func TestMoody_Text(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "moody", "--diameter", "0.1", "--roughness", "0,15", "--points", "3", "--re-min", "1000", "--re-max", "100000")
	require.NoError(t, err)

	assert.Contains(t, out, "D = 0.1 m")
	assert.Contains(t, out, "K=15um")
	assert.Contains(t, out, "Laminar")
	assert.Contains(t, out, "Turbulent")
}

func TestMoody_RequiresDiameter(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "moody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diameter")
}

func TestCalc_UnphysicalRoughness(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "calc", "--velocity", "1", "--diameter", "0.005", "--roughness", "50000",
		"--density", "1000", "--viscosity", "0.001")
	assert.ErrorIs(t, err, domain.ErrNonPhysicalResult)
}

func TestMoody_InvalidRange(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "moody", "--diameter", "0.1", "--re-min", "1e5", "--re-max", "1e3")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestConfigPrecedence(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".pipeflow")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("precision = 3\n"), 0644))

	args := append([]string{"calc", "--velocity", "2"}, waterArgs...)

	out, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Reynolds number 'Re': 1e+05\n", "file value applies")

	t.Setenv("PIPEFLOW_PRECISION", "8")
	out, err = execute(t, "", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Reynolds number 'Re': 100000\n", "env overrides file")

	out, err = execute(t, "", append(args, "--precision", "2")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Reynolds number 'Re': 1e+05\n", "flag overrides env")

	t.Setenv("PIPEFLOW_FORMAT", "yaml")
	out, err = execute(t, "", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "reynolds: 100000")
}

func TestConfig_Errors(t *testing.T) {
	isolate(t)
	args := append([]string{"calc", "--velocity", "2"}, waterArgs...)

	_, err := execute(t, "", append(args, "--config", filepath.Join(t.TempDir(), "missing.toml"))...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	_, err = execute(t, "", append(args, "--format", "xml")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")

	t.Setenv("PIPEFLOW_MAX_ITERATIONS", "many")
	_, err = execute(t, "", args...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max-iter")
}

func TestRoot_InteractiveShell(t *testing.T) {
	isolate(t)

	out, err := execute(t, "2\n0.05\n\n1000\n0.001\n\nq\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the fluid velocity")
	assert.Contains(t, out, "Reynolds number 'Re': 100000\n")
}
