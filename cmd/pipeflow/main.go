package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/pipeflow/internal/cliconfig"
	"github.com/bft-labs/pipeflow/internal/report"
	"github.com/bft-labs/pipeflow/internal/shell"
	"github.com/bft-labs/pipeflow/pkg/hydraulics"
	"github.com/bft-labs/pipeflow/pkg/log"
)

const helpDescription = `
Compute Reynolds number, Fanning friction factor and the derived pressure
drop, pumping power, drive force and friction head loss of a full pipe.

Friction factor:
  - Laminar (Re < 2100): 16/Re.
  - Turbulent, smooth pipe (K = 0): Blasius, 0.079 Re^-0.25.
  - Turbulent, rough pipe: Colebrook equation solved by fixed-point iteration.

Units: velocity m/s, flow rate m^3/s, diameter and length m, roughness µm,
density kg/m^3, dynamic viscosity Pa*s.

Without a subcommand pipeflow prompts for the inputs interactively.
Settings are read from $HOME/.pipeflow/config.toml, PIPEFLOW_* variables
and flags, later sources winning.
`

var exampleUsage = strings.TrimSpace(`
  pipeflow
  pipeflow calc --velocity 2 --diameter 0.05 --density 1000 --viscosity 0.001 --length 10
  pipeflow calc --flow-rate 0.004 --diameter 0.05 --roughness 15 --density 1000 --viscosity 0.001 --format json
  pipeflow batch cases.yaml --format yaml
  pipeflow watch cases.yaml
  pipeflow moody --diameter 0.1 --roughness 0,15,150
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the configuration and collaborators shared by all commands.
// It is populated by the root command's PersistentPreRunE.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
	logOut  io.Writer
	calc    *hydraulics.Calculator
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		logger := cliconfig.Logger()
		logger.Error().Err(err).Msg("pipeflow")
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{
		cfg:    cliconfig.DefaultConfig(),
		log:    cliconfig.Logger(),
		logOut: logOut,
	}

	root := &cobra.Command{
		Use:           "pipeflow",
		Short:         "Pipe flow calculator: Reynolds number, friction factor and pressure drop",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.calc, a.textWriter(cmd.OutOrStdout()), a.adapter())
			return sh.Run(ctx)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.pipeflow/config.toml)")
	pf.StringVar(&a.cfg.Format, "format", a.cfg.Format, "output format: text, json, yaml or toml")
	pf.IntVar(&a.cfg.Precision, "precision", a.cfg.Precision, "significant digits in text output")
	pf.IntVar(&a.cfg.MaxIterations, "max-iter", a.cfg.MaxIterations, "Colebrook iteration cap")
	pf.Float64Var(&a.cfg.Tolerance, "tolerance", a.cfg.Tolerance, "Colebrook convergence tolerance")
	pf.Float64Var(&a.cfg.InitialGuess, "initial-guess", a.cfg.InitialGuess, "Colebrook starting friction factor")
	pf.BoolVar(&a.cfg.LegacyGrouping, "legacy-colebrook", a.cfg.LegacyGrouping, "use the legacy grouping of the Colebrook log argument")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(a.calcCmd())
	root.AddCommand(a.batchCmd())
	root.AddCommand(a.watchCmd())
	root.AddCommand(a.moodyCmd())
	return root
}

// setup resolves configuration (defaults < file < env < flags) and builds
// the logger and calculator.
func (a *app) setup(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	} else if !cliconfig.FileExists(cfgFile) {
		return fmt.Errorf("load config: %s does not exist", cfgFile)
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	cmd.SilenceUsage = true

	a.log = cliconfig.NewLogger(a.logOut, a.cfg.LogLevel)
	a.log.Debug().Interface("config", a.cfg).Str("file", cfgFile).Msg("configuration")

	calc, err := hydraulics.New(
		hydraulics.WithLogger(a.adapter()),
		hydraulics.WithSolverConfig(a.cfg.SolverConfig()),
	)
	if err != nil {
		return fmt.Errorf("create calculator: %w", err)
	}
	a.calc = calc
	return nil
}

func (a *app) adapter() log.Logger {
	return log.NewZerologAdapterWithLogger(a.log)
}

func (a *app) textWriter(w io.Writer) *report.TextWriter {
	return report.NewTextWriter(w, a.cfg.Precision)
}

func (a *app) structured() bool {
	return a.cfg.Format != cliconfig.FormatText
}
