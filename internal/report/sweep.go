package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bft-labs/pipeflow/pkg/hydraulics"
)

// Sweep prints a sweep table with one column per roughness.
func (t *TextWriter) Sweep(table hydraulics.SweepTable) error {
	if _, err := fmt.Fprintf(t.w, "Friction factor vs Reynolds number, D = %s m\n", t.num(table.Diameter)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := []string{"Re", "regime"}
	for _, k := range table.Roughness {
		header = append(header, "K="+t.num(k)+"um")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, row := range table.Rows {
		cells := []string{t.num(row.Reynolds), row.Regime.String()}
		for _, f := range row.FrictionFactors {
			cells = append(cells, t.num(f))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	return tw.Flush()
}
