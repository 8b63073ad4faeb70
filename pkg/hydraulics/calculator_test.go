package hydraulics

import (
	"bytes"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/pipeflow/pkg/log"
)

func ptr(v float64) *float64 { return &v }

func TestComputeFlow_EndToEndSmooth(t *testing.T) {
	res, err := ComputeFlow(FlowParameters{
		Velocity:  2,
		Diameter:  0.05,
		Roughness: 0,
		Density:   1000,
		Viscosity: 0.001,
		Length:    10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 100000, res.Reynolds, 1e-6)
	assert.Equal(t, Turbulent, res.Regime)
	assert.Equal(t, Smooth, res.PipeType)
	f := 0.079 * math.Pow(res.Reynolds, -0.25)
	assert.Equal(t, f, res.FrictionFactor)
	assert.InDelta(t, 0.004443, res.FrictionFactor, 1e-6)

	require.NotNil(t, res.PressureDrop)
	assert.InEpsilon(t, 2*1000*4*10/0.05*f, *res.PressureDrop, 1e-12)
	require.NotNil(t, res.Power)
	assert.InEpsilon(t, *res.PressureDrop*math.Pi*0.05*0.05/4*2, *res.Power, 1e-12)
	assert.InEpsilon(t, math.Pi*0.05*0.05/4*1000*2, res.DriveForce, 1e-12)
	assert.InEpsilon(t, f*(10/0.05)*(4/(2*9.81)), res.FrictionLoss, 1e-12)
	assert.False(t, res.VelocityDerived)
	assert.True(t, res.BlasiusExtrapolated())
}

func TestComputeFlow_DerivedVelocityRough(t *testing.T) {
	res, err := ComputeFlow(FlowParameters{
		Diameter:  0.05,
		Roughness: 15,
		Density:   1000,
		Viscosity: 0.001,
		Length:    10,
		FlowRate:  ptr(0.004),
	})
	require.NoError(t, err)
	assert.True(t, res.VelocityDerived)
	assert.Equal(t, 4*0.004/(math.Pi*0.05*0.05), res.Velocity)
	assert.Equal(t, Rough, res.PipeType)
	assert.Equal(t, Turbulent, res.Regime)
	assert.True(t, res.Converged)
	assert.Greater(t, res.Iterations, 0)
	assert.InDelta(t, 0.005019, res.FrictionFactor, 1e-6)
}

func TestComputeFlow_LaminarRoughLabel(t *testing.T) {
	res, err := ComputeFlow(FlowParameters{
		Velocity:  0.01,
		Diameter:  0.02,
		Roughness: 45,
		Density:   1000,
		Viscosity: 0.001,
	})
	require.NoError(t, err)
	assert.Equal(t, Laminar, res.Regime)
	assert.Equal(t, Rough, res.PipeType)
	assert.Equal(t, 16/res.Reynolds, res.FrictionFactor)
}

func TestComputeFlow_ZeroLength(t *testing.T) {
	res, err := ComputeFlow(FlowParameters{
		Velocity:  1.5,
		Diameter:  0.1,
		Roughness: 150,
		Density:   998,
		Viscosity: 0.001,
	})
	require.NoError(t, err)
	assert.Nil(t, res.PressureDrop)
	assert.Nil(t, res.Power)
	assert.Equal(t, 0.0, res.FrictionLoss)
	assert.Greater(t, res.DriveForce, 0.0)
}

func TestComputeFlow_Errors(t *testing.T) {
	valid := FlowParameters{Velocity: 1, Diameter: 0.1, Density: 1000, Viscosity: 0.001}
	tests := []struct {
		name    string
		mutate  func(*FlowParameters)
		wantErr error
	}{
		{"missing flow input", func(p *FlowParameters) { p.Velocity = 0 }, ErrMissingFlowInput},
		{"zero flow rate", func(p *FlowParameters) { p.Velocity = 0; p.FlowRate = ptr(0) }, ErrInvalidParameter},
		{"zero diameter", func(p *FlowParameters) { p.Diameter = 0 }, ErrInvalidParameter},
		{"negative density", func(p *FlowParameters) { p.Density = -1 }, ErrInvalidParameter},
		{"zero viscosity", func(p *FlowParameters) { p.Viscosity = 0 }, ErrInvalidParameter},
		{"negative velocity", func(p *FlowParameters) { p.Velocity = -2 }, ErrInvalidParameter},
		{"negative roughness", func(p *FlowParameters) { p.Roughness = -1 }, ErrInvalidParameter},
		{"negative length", func(p *FlowParameters) { p.Length = -1 }, ErrInvalidParameter},
		{"nan diameter", func(p *FlowParameters) { p.Diameter = math.NaN() }, ErrInvalidParameter},
		{"infinite length", func(p *FlowParameters) { p.Length = math.Inf(1) }, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			res, err := ComputeFlow(p)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, FlowResult{}, res)
		})
	}
}

func TestNew_InvalidSolverConfig(t *testing.T) {
	cfg := DefaultSolverConfig()
	cfg.MaxIterations = 0
	_, err := New(WithSolverConfig(cfg))
	assert.Error(t, err)
}

func TestCalculator_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))
	cfg := DefaultSolverConfig()
	cfg.MaxIterations = 2
	calc, err := New(WithLogger(logger), WithSolverConfig(cfg))
	require.NoError(t, err)

	res, err := calc.Compute(FlowParameters{Velocity: 1, Diameter: 0.1, Roughness: 150, Density: 1000, Viscosity: 0.001})
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.True(t, strings.Contains(buf.String(), "colebrook iteration hit its bound"), buf.String())
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	calc, err := New()
	require.NoError(t, err)
	p := FlowParameters{Velocity: 1.2, Diameter: 0.08, Roughness: 45, Density: 1000, Viscosity: 0.001, Length: 25}
	want, err := calc.Compute(p)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := calc.Compute(p)
			if err != nil {
				errs <- err
				return
			}
			if got.FrictionFactor != want.FrictionFactor || *got.PressureDrop != *want.PressureDrop {
				t.Errorf("concurrent result differs: %+v", got)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
