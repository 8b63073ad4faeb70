package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/pipeflow/internal/report"
	"github.com/bft-labs/pipeflow/pkg/hydraulics"
)

func (a *app) moodyCmd() *cobra.Command {
	spec := hydraulics.SweepSpec{
		ReynoldsMin: 1e3,
		ReynoldsMax: 1e8,
		Points:      11,
		Roughness:   []float64{0, 15, 150},
	}

	cmd := &cobra.Command{
		Use:   "moody",
		Short: "Tabulate friction factor against Reynolds number for several roughnesses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.calc.Sweep(spec)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.structured() {
				return report.Encode(out, a.cfg.Format, table)
			}
			return a.textWriter(out).Sweep(table)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&spec.Diameter, "diameter", 0, "pipe inner diameter (m)")
	f.Float64SliceVar(&spec.Roughness, "roughness", spec.Roughness, "column roughnesses (µm), comma separated")
	f.Float64Var(&spec.ReynoldsMin, "re-min", spec.ReynoldsMin, "smallest Reynolds number")
	f.Float64Var(&spec.ReynoldsMax, "re-max", spec.ReynoldsMax, "largest Reynolds number")
	f.IntVar(&spec.Points, "points", spec.Points, "number of log-spaced Reynolds numbers, ends included")
	if err := cmd.MarkFlagRequired("diameter"); err != nil {
		a.log.Info().Err(err).Msg("failed to mark diameter flag required")
	}
	return cmd
}
