package hydraulics

import (
	"fmt"
	"math"

	"github.com/bft-labs/pipeflow/internal/domain"
)

// SolverConfig controls the Colebrook fixed-point iteration.
type SolverConfig struct {
	// InitialGuess is the starting friction factor. Default: 1e-10
	InitialGuess float64

	// Tolerance is the absolute change between successive iterates below
	// which the iteration stops. Default: 1e-20
	Tolerance float64

	// MaxIterations bounds the iteration. When it is reached the last
	// iterate is returned with Converged set to false. Default: 10000
	MaxIterations int

	// LegacyGrouping evaluates 1/(-1.7·ln(ε/D + 4.67/(Re√f) + 2.28))²
	// instead of the Colebrook-White form 1/(2.28 - 1.7·ln(ε/D + 4.67/(Re√f)))².
	// Only useful to reproduce figures computed with the legacy grouping.
	LegacyGrouping bool
}

// DefaultSolverConfig returns the default iteration settings.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		InitialGuess:  1e-10,
		Tolerance:     1e-20,
		MaxIterations: 10000,
	}
}

// Validate checks the iteration settings.
func (c SolverConfig) Validate() error {
	if !positive(c.InitialGuess) {
		return fmt.Errorf("initial guess must be positive, got %g", c.InitialGuess)
	}
	if !positive(c.Tolerance) {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}

// Friction is a friction factor together with how it was obtained.
type Friction struct {
	Factor     float64
	Regime     Regime
	PipeType   PipeType
	Iterations int
	Converged  bool
}

// Solver selects and evaluates the friction-factor correlation.
type Solver struct {
	cfg SolverConfig
}

// NewSolver returns a Solver for the given settings.
func NewSolver(cfg SolverConfig) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("solver config: %w", err)
	}
	return &Solver{cfg: cfg}, nil
}

// Config returns the solver settings.
func (s *Solver) Config() SolverConfig {
	return s.cfg
}

// FrictionFactor returns the Fanning friction factor for Reynolds number re,
// wall roughness k in µm and diameter d in m.
//
// Laminar flow ignores roughness but keeps the rough label so callers can
// report which pipe the figure belongs to.
func (s *Solver) FrictionFactor(re, k, d float64) (Friction, error) {
	if !positive(re) {
		return Friction{}, fmt.Errorf("%w: reynolds number must be positive, got %g", ErrInvalidParameter, re)
	}
	if !positive(d) {
		return Friction{}, fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidParameter, d)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return Friction{}, fmt.Errorf("%w: roughness must be finite, got %g", ErrInvalidParameter, k)
	}

	pipe := domain.PipeTypeFor(k)
	switch {
	case domain.RegimeFor(re) == Laminar:
		return Friction{Factor: LaminarFactor(re), Regime: Laminar, PipeType: pipe, Converged: true}, nil
	case pipe == Smooth:
		return Friction{Factor: BlasiusFactor(re), Regime: Turbulent, PipeType: Smooth, Converged: true}, nil
	default:
		f, n, ok, err := s.colebrook(re, k*1e-6/d)
		if err != nil {
			return Friction{}, err
		}
		return Friction{Factor: f, Regime: Turbulent, PipeType: Rough, Iterations: n, Converged: ok}, nil
	}
}

// LaminarFactor is the Hagen-Poiseuille friction factor 16/Re.
func LaminarFactor(re float64) float64 {
	return 16 / re
}

// BlasiusFactor is the smooth-pipe turbulent correlation 0.079·Re^-0.25.
func BlasiusFactor(re float64) float64 {
	return 0.079 * math.Pow(re, -0.25)
}

// colebrook iterates f = g(f) from the initial guess. It stops when two
// successive iterates are within tolerance, or when the iterate repeats
// the one two steps back: rounding can leave it alternating between two
// neighbouring floats, which is as stationary as a float64 gets.
func (s *Solver) colebrook(re, rel float64) (f float64, iterations int, converged bool, err error) {
	f = s.cfg.InitialGuess
	prev := math.NaN()
	for i := 1; i <= s.cfg.MaxIterations; i++ {
		old := f
		root, err := colebrookRoot(old, re, rel, s.cfg.LegacyGrouping)
		if err != nil {
			return 0, i, false, fmt.Errorf("colebrook iteration %d: %w", i, err)
		}
		// root is 1/√f. The tiny initial guess makes the first root
		// negative; after that a negative root is the spurious branch.
		if !s.cfg.LegacyGrouping && i > 1 && root <= 0 {
			return 0, i, false, fmt.Errorf("colebrook iteration %d: %w: 1/sqrt(f) = %g", i, ErrNonPhysicalResult, root)
		}
		f = 1 / (root * root)
		if !positive(f) {
			return 0, i, false, fmt.Errorf("colebrook iteration %d: %w: friction factor %g", i, ErrNonPhysicalResult, f)
		}
		if math.Abs(f-old) < s.cfg.Tolerance || f == prev {
			return f, i, true, nil
		}
		prev = old
	}
	return f, s.cfg.MaxIterations, false, nil
}

// colebrookRoot evaluates the right-hand side of the Colebrook equation,
// the signed value whose inverse square is the next iterate.
func colebrookRoot(f, re, rel float64, legacy bool) (float64, error) {
	arg := rel + 4.67/(re*math.Sqrt(f))
	if legacy {
		arg += 2.28
	}
	if !positive(arg) {
		return 0, fmt.Errorf("%w: logarithm argument %g", ErrNonPhysicalResult, arg)
	}
	if legacy {
		return -1.7 * math.Log(arg), nil
	}
	return 2.28 - 1.7*math.Log(arg), nil
}
