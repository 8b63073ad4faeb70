package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bft-labs/pipeflow/internal/casefile"
	"github.com/bft-labs/pipeflow/internal/report"
)

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <cases.yaml>",
		Short: "Compute every case of a YAML case file",
		Long: "Compute every case of a YAML case file. A failing case is reported\n" +
			"and the remaining cases still run; the command fails if any case failed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := casefile.Load(args[0])
			if err != nil {
				return fmt.Errorf("load cases: %w", err)
			}
			failed, err := a.evaluate(cmd.OutOrStdout(), file)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(file.Cases))
			}
			return nil
		},
	}
}

// evaluate computes and prints every case of file. It returns the number
// of failed cases; the error is reserved for output failures.
func (a *app) evaluate(w io.Writer, file *casefile.File) (int, error) {
	doc := report.Document{Cases: make([]report.Record, 0, len(file.Cases))}
	failed := 0
	for _, c := range file.Cases {
		p := c.Params()
		res, err := a.calc.Compute(p)
		if err != nil {
			failed++
			a.log.Warn().Str("case", c.Name).Err(err).Msg("case failed")
		}
		doc.Cases = append(doc.Cases, report.NewRecord(c.Name, p, res, err))
	}

	if a.structured() {
		return failed, report.Encode(w, a.cfg.Format, doc)
	}
	tw := a.textWriter(w)
	for i, r := range doc.Cases {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return failed, err
			}
		}
		if err := tw.Record(r); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
