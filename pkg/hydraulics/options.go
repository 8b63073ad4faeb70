package hydraulics

import "github.com/bft-labs/pipeflow/pkg/log"

// Option configures a Calculator.
type Option func(*options)

type options struct {
	logger log.Logger
	solver SolverConfig
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		solver: DefaultSolverConfig(),
	}
}

// WithLogger sets the logger used to report solver outcomes.
// If not provided, nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSolverConfig replaces the Colebrook iteration settings.
func WithSolverConfig(cfg SolverConfig) Option {
	return func(o *options) {
		o.solver = cfg
	}
}
