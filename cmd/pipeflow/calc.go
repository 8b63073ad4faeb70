package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/pipeflow/internal/domain"
	"github.com/bft-labs/pipeflow/internal/report"
)

func (a *app) calcCmd() *cobra.Command {
	var (
		p        domain.FlowParameters
		flowRate float64
		name     string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a single case from flags",
		Long: "Compute a single case from flags. Give either --velocity or --flow-rate;\n" +
			"when velocity is absent or zero it is derived from the flow rate.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("flow-rate") {
				p.FlowRate = &flowRate
			}
			res, err := a.calc.Compute(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.structured() {
				return report.Encode(out, a.cfg.Format, report.Document{
					Cases: []report.Record{report.NewRecord(name, p, res, nil)},
				})
			}
			return a.textWriter(out).Result(res)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.Velocity, "velocity", 0, "fluid velocity (m/s)")
	f.Float64Var(&flowRate, "flow-rate", 0, "volumetric flow rate (m^3/s), used when velocity is not given")
	f.Float64Var(&p.Diameter, "diameter", 0, "pipe inner diameter (m)")
	f.Float64Var(&p.Roughness, "roughness", 0, "absolute wall roughness (µm), 0 for a smooth pipe")
	f.Float64Var(&p.Density, "density", 0, "fluid density (kg/m^3)")
	f.Float64Var(&p.Viscosity, "viscosity", 0, "dynamic viscosity (Pa*s)")
	f.Float64Var(&p.Length, "length", 0, "pipe length (m), 0 to skip pressure drop and power")
	f.StringVar(&name, "name", "calc", "case name in structured output")

	for _, req := range []string{"diameter", "density", "viscosity"} {
		if err := cmd.MarkFlagRequired(req); err != nil {
			a.log.Info().Err(err).Str("flag", req).Msg("failed to mark flag required")
		}
	}
	return cmd
}
