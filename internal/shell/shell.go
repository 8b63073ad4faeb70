// Package shell implements the interactive prompt loop of the pipeflow
// command.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/pipeflow/internal/domain"
	"github.com/bft-labs/pipeflow/internal/report"
	"github.com/bft-labs/pipeflow/pkg/hydraulics"
	"github.com/bft-labs/pipeflow/pkg/log"
)

const title = "- Solver for Reynolds Number (Re) and Friction Factor (f(Re, K)) -"

// Messages printed when a run is abandoned and restarted.
const (
	MsgMissingRequired = "Invalid input. Please provide all required values."
	MsgInvalidNumber   = "Invalid input. Please enter numeric values."
	MsgInvalidFlowRate = "Invalid input. Please provide a valid volumetric flow rate."
)

// errRestart abandons the current run and starts a new one.
var errRestart = errors.New("restart")

// Shell reads flow parameters from in, one run at a time, and prints
// results to out.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	calc   *hydraulics.Calculator
	text   *report.TextWriter
	logger log.Logger
}

// New creates a Shell. A nil logger disables logging.
func New(in io.Reader, out io.Writer, calc *hydraulics.Calculator, text *report.TextWriter, logger log.Logger) *Shell {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		calc:   calc,
		text:   text,
		logger: logger,
	}
}

// Run loops until the user quits, input ends or ctx is cancelled.
// End of input is a normal exit and returns nil.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(s.out, "\n%s\n\n", title)
		p, err := s.readParameters()
		switch {
		case errors.Is(err, errRestart):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		s.compute(p)

		more, err := s.askContinue()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (s *Shell) compute(p domain.FlowParameters) {
	fmt.Fprintln(s.out)
	res, err := s.calc.Compute(p)
	if err != nil {
		s.logger.Debug("shell computation failed", log.Err(err))
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if err := s.text.Result(res); err != nil {
		s.logger.Error("write result", log.Err(err))
	}
}

// readParameters prompts for one set of inputs. Blank velocity (or an
// explicit zero) defers to a flow-rate prompt after the other fields.
func (s *Shell) readParameters() (domain.FlowParameters, error) {
	var p domain.FlowParameters

	vStr, err := s.ask("Enter the fluid velocity (m/s) (if not given leave blank): ")
	if err != nil {
		return p, err
	}
	if vStr == "" {
		fmt.Fprintln(s.out, "You need to specify after the volumetric flow rate (m^3/s).")
	}
	dStr, err := s.ask("Enter the pipe diameter (m): ")
	if err != nil {
		return p, err
	}
	kStr, err := s.ask("Enter the pipe roughness (μm): (0 if smooth)")
	if err != nil {
		return p, err
	}
	rhoStr, err := s.ask("Enter the fluid density (kg/m^3): ")
	if err != nil {
		return p, err
	}
	muStr, err := s.ask("Enter the fluid dynamic viscosity (Pa*s): ")
	if err != nil {
		return p, err
	}
	lStr, err := s.ask("Enter the Length (m) (or leave blank if not required): ")
	if err != nil {
		return p, err
	}

	if dStr == "" || rhoStr == "" || muStr == "" {
		fmt.Fprintln(s.out, MsgMissingRequired)
		return p, errRestart
	}

	for _, f := range []struct {
		raw string
		dst *float64
	}{
		{vStr, &p.Velocity},
		{dStr, &p.Diameter},
		{kStr, &p.Roughness},
		{rhoStr, &p.Density},
		{muStr, &p.Viscosity},
		{lStr, &p.Length},
	} {
		if f.raw == "" {
			continue
		}
		x, err := strconv.ParseFloat(f.raw, 64)
		if err != nil {
			fmt.Fprintln(s.out, MsgInvalidNumber)
			return p, errRestart
		}
		*f.dst = x
	}

	if p.Velocity == 0 {
		qStr, err := s.ask("Enter the volumetric flow rate (m^3/s): ")
		if err != nil {
			return p, err
		}
		q, err := strconv.ParseFloat(qStr, 64)
		if err != nil {
			fmt.Fprintln(s.out, MsgInvalidFlowRate)
			return p, errRestart
		}
		p.FlowRate = &q
	}
	return p, nil
}

func (s *Shell) askContinue() (bool, error) {
	answer, err := s.ask("\nPress Enter to continue or type q to exit...")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "q", "quit", "exit":
		return false, nil
	}
	return true, nil
}

// ask prints prompt and returns the trimmed next line, or io.EOF when
// input is exhausted.
func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprintln(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}
