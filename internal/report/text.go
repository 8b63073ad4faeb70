package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bft-labs/pipeflow/internal/domain"
)

// TextWriter prints results in the console wording of the interactive solver.
type TextWriter struct {
	w         io.Writer
	precision int
}

// NewTextWriter returns a TextWriter printing numbers with the given number
// of significant digits.
func NewTextWriter(w io.Writer, precision int) *TextWriter {
	return &TextWriter{w: w, precision: precision}
}

func (t *TextWriter) num(x float64) string {
	return strconv.FormatFloat(x, 'g', t.precision, 64)
}

// Result prints one result.
func (t *TextWriter) Result(res domain.FlowResult) error {
	ew := &errWriter{w: t.w}

	if res.VelocityDerived {
		ew.printf("Calculated fluid velocity 'v': %s m/s\n", t.num(res.Velocity))
	}
	ew.printf("Reynolds number 'Re': %s\n", t.num(res.Reynolds))
	ew.printf("%s: %s\n", FrictionLabel(res.Regime, res.PipeType), t.num(res.FrictionFactor))
	if res.BlasiusExtrapolated() {
		ew.printf("  note: Blasius correlation is approximate above Re = %s\n", t.num(domain.BlasiusUpperReynolds))
	}
	if !res.Converged {
		ew.printf("  note: Colebrook iteration stopped after %d iterations without meeting tolerance\n", res.Iterations)
	}

	if res.PressureDrop != nil {
		ew.printf("Pressure Drop '|delta(p)|': %s Pa\n", t.num(*res.PressureDrop))
	} else {
		ew.printf("Length 'L' must be greater than 0 to calculate pressure drop.\n")
	}
	if res.Power != nil {
		ew.printf("Power used 'P': %s W\n", t.num(*res.Power))
	}
	ew.printf("Drive Force 'F_drv': %s N\n", t.num(res.DriveForce))
	ew.printf("Friction Losses 'l_v': %s m\n", t.num(res.FrictionLoss))
	return ew.err
}

// Record prints a named record, either its result or its error.
func (t *TextWriter) Record(r Record) error {
	if _, err := fmt.Fprintf(t.w, "== %s\n", r.Name); err != nil {
		return err
	}
	if r.Error != "" {
		_, err := fmt.Fprintf(t.w, "error: %s\n", r.Error)
		return err
	}
	return t.Result(r.result)
}

// FrictionLabel names a friction factor the way the console solver does:
// f(Re) for smooth pipes and f(Re, K) for rough ones.
func FrictionLabel(regime domain.Regime, pipe domain.PipeType) string {
	symbol := "f(Re)"
	if pipe == domain.Rough {
		symbol = "f(Re, K)"
	}
	return fmt.Sprintf("Friction Factor '%s' (%s, %s Pipe)", symbol, regime, pipe)
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
