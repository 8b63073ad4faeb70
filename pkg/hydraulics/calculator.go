package hydraulics

import (
	"fmt"

	"github.com/bft-labs/pipeflow/pkg/log"
)

// Calculator computes flow results. Use New to create one.
type Calculator struct {
	solver *Solver
	logger log.Logger
}

// New creates a Calculator. It fails only when the solver settings are invalid.
func New(opts ...Option) (*Calculator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	solver, err := NewSolver(o.solver)
	if err != nil {
		return nil, err
	}
	return &Calculator{solver: solver, logger: o.logger}, nil
}

var defaultCalculator = &Calculator{
	solver: &Solver{cfg: DefaultSolverConfig()},
	logger: log.NewNoopLogger(),
}

// ComputeFlow computes p with the default solver settings and no logging.
func ComputeFlow(p FlowParameters) (FlowResult, error) {
	return defaultCalculator.Compute(p)
}

// Solver returns the friction-factor solver used by the calculator.
func (c *Calculator) Solver() *Solver {
	return c.solver
}

// Compute validates p and returns the full result. On error the result is
// the zero value.
func (c *Calculator) Compute(p FlowParameters) (FlowResult, error) {
	if err := validate(p); err != nil {
		return FlowResult{}, err
	}

	v, err := ResolveVelocity(p.Velocity, p.FlowRate, p.Diameter)
	if err != nil {
		return FlowResult{}, err
	}
	re, err := Reynolds(p.Density, v, p.Diameter, p.Viscosity)
	if err != nil {
		return FlowResult{}, err
	}
	fr, err := c.solver.FrictionFactor(re, p.Roughness, p.Diameter)
	if err != nil {
		c.logger.Debug("friction factor failed", log.Float64("reynolds", re), log.Err(err))
		return FlowResult{}, err
	}
	d := Derive(fr.Factor, p.Density, v, p.Diameter, p.Length)

	res := FlowResult{
		Velocity:        v,
		VelocityDerived: p.Velocity == 0,
		Reynolds:        re,
		FrictionFactor:  fr.Factor,
		Regime:          fr.Regime,
		PipeType:        fr.PipeType,
		Iterations:      fr.Iterations,
		Converged:       fr.Converged,
		PressureDrop:    d.PressureDrop,
		Power:           d.Power,
		DriveForce:      d.DriveForce,
		FrictionLoss:    d.FrictionLoss,
	}

	c.logger.Debug("flow computed",
		log.Float64("reynolds", re),
		log.Float64("friction_factor", fr.Factor),
		log.Stringer("regime", fr.Regime),
		log.Stringer("pipe", fr.PipeType),
		log.Int("iterations", fr.Iterations))
	if !fr.Converged {
		c.logger.Warn("colebrook iteration hit its bound without meeting tolerance",
			log.Int("max_iterations", c.solver.cfg.MaxIterations),
			log.Float64("friction_factor", fr.Factor))
	}
	if res.BlasiusExtrapolated() {
		c.logger.Warn("blasius correlation applied above its validity range",
			log.Float64("reynolds", re))
	}
	return res, nil
}

func validate(p FlowParameters) error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"diameter", p.Diameter},
		{"density", p.Density},
		{"viscosity", p.Viscosity},
	} {
		if !positive(c.value) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidParameter, c.name, c.value)
		}
	}
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"velocity", p.Velocity},
		{"roughness", p.Roughness},
		{"length", p.Length},
	} {
		if !nonNegative(c.value) {
			return fmt.Errorf("%w: %s must be finite and not negative, got %g", ErrInvalidParameter, c.name, c.value)
		}
	}
	return nil
}
