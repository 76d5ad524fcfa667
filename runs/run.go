package runs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reusee/bfvm/bfconfigs"
	"github.com/reusee/bfvm/budgets"
	"github.com/reusee/bfvm/counters"
	"github.com/reusee/bfvm/logs"
	"github.com/reusee/bfvm/machines"
	"github.com/reusee/bfvm/outputs"
	"github.com/reusee/bfvm/programs"
	"github.com/reusee/bfvm/tapes"
)

// Spec is one program to run. A nil Tape starts from an empty tape.
type Spec struct {
	Name   string
	Source string
	Tape   *tapes.Tape
}

type Report struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Steps       int64              `json:"steps" yaml:"steps"`
	Output      []counters.Counter `json:"output" yaml:"output"`
	Text        string             `json:"text" yaml:"text"`
	DecodeError string             `json:"decode_error,omitempty" yaml:"decode_error,omitempty"`
	Tape        *tapes.Tape        `json:"tape" yaml:"tape"`

	machine *machines.Machine
}

// Machine returns the machine the report was taken from.
func (r *Report) Machine() *machines.Machine {
	return r.machine
}

// Run parses, executes and decodes one program.
// When the budget runs out the partial report is returned along with the error.
// Output that fails to decode is recorded in the report and is not an error.
type Run func(ctx context.Context, spec Spec) (*Report, error)

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	trace machines.Trace,
	traceEnabled bfconfigs.Trace,
	maxSteps bfconfigs.MaxSteps,
	timeout bfconfigs.Timeout,
	encoding bfconfigs.Encoding,
) Run {
	budget := budgets.Budget{
		MaxSteps: int64(maxSteps),
		Timeout:  time.Duration(timeout),
	}

	return func(ctx context.Context, spec Spec) (*Report, error) {
		id := uuid.NewString()
		ctx, _ = newSpan(ctx, "", "run", id, "name", spec.Name)

		program, err := programs.Parse(spec.Source)
		if err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("parse %s: %w", spec.Name, err))
		}

		m := machines.New(program, spec.Tape)
		var onStep func(machines.Step)
		if traceEnabled {
			onStep = func(step machines.Step) {
				trace(ctx, step)
			}
		}

		started := time.Now()
		runErr := budget.Drive(ctx, m, onStep)
		report := &Report{
			ID:      id,
			Name:    spec.Name,
			Steps:   m.Steps,
			Output:  m.Output.Values(),
			Tape:    m.Tape,
			machine: m,
		}
		if runErr != nil {
			logger.WarnContext(ctx, "run stopped",
				"steps", m.Steps,
				"error", runErr,
			)
			return report, logs.WrapSpan(ctx, fmt.Errorf("run %s: %w", spec.Name, runErr))
		}
		logger.InfoContext(ctx, "run done",
			"steps", m.Steps,
			"outputs", m.Output.Len(),
			"cells", m.Tape.Len(),
			"duration", time.Since(started),
		)

		text, err := outputs.DecodeAs(m.Output, string(encoding))
		switch {
		case errors.Is(err, outputs.ErrEncoding):
			logger.WarnContext(ctx, "decode output", "error", err)
			report.DecodeError = err.Error()
		case err != nil:
			return report, logs.WrapSpan(ctx, err)
		default:
			report.Text = text
		}

		return report, nil
	}
}
