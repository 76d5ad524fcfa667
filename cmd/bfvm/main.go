package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/bfvm/bfconfigs"
	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/debugs"
	"github.com/reusee/bfvm/logs"
	"github.com/reusee/bfvm/modes"
	"github.com/reusee/bfvm/runs"
	"github.com/reusee/bfvm/tapes"
	"github.com/reusee/dscope"
)

var (
	files    = cmds.Collect[string]("-file")
	sources  = cmds.Collect[string]("-e")
	tapeFile = cmds.Var[string]("-tape")
	saveTape = cmds.Var[string]("-save-tape")
	startTap = cmds.Switch("-repl")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(runs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	var code int
	scope.Call(func(
		logger logs.Logger,
	) {
		specs, err := collectSpecs(*files, *sources, *tapeFile, os.Stdin)
		if err != nil {
			logger.Error("collect programs", "error", err)
			code = 1
			return
		}
		code = execute(ctx, scope, specs, os.Stdout)
	})
	stop()
	os.Exit(code)
}

// collectSpecs reads program files and inline sources in command line order,
// files first. With neither, the program is read from stdin.
func collectSpecs(files []string, sources []string, tapePath string, stdin io.Reader) ([]runs.Spec, error) {
	var initial *tapes.Tape
	if tapePath != "" {
		tape, err := tapes.Load(tapePath)
		if err != nil {
			return nil, err
		}
		initial = tape
	}

	var specs []runs.Spec
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read program: %w", err)
		}
		specs = append(specs, runs.Spec{
			Name:   path,
			Source: string(content),
			Tape:   initial,
		})
	}
	for i, source := range sources {
		specs = append(specs, runs.Spec{
			Name:   fmt.Sprintf("-e#%d", i+1),
			Source: source,
			Tape:   initial,
		})
	}

	if len(specs) == 0 {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read program: %w", err)
		}
		specs = append(specs, runs.Spec{
			Name:   "stdin",
			Source: string(content),
			Tape:   initial,
		})
	}

	return specs, nil
}

// execute runs specs and writes their reports, returning the exit status.
func execute(ctx context.Context, scope dscope.Scope, specs []runs.Spec, stdout io.Writer) (code int) {
	scope.Call(func(
		runAll runs.RunAll,
		format bfconfigs.ReportFormat,
		logger logs.Logger,
		tap debugs.Tap,
	) {
		reports, err := runAll(ctx, specs)
		if err != nil {
			logger.ErrorContext(ctx, "run", "error", err)
			code = 1
		}

		var finished []*runs.Report
		for _, report := range reports {
			if report == nil {
				continue
			}
			finished = append(finished, report)
			if report.DecodeError != "" {
				code = 1
			}
		}

		if err := runs.WriteReports(stdout, format, finished); err != nil {
			logger.ErrorContext(ctx, "write reports", "error", err)
			code = 1
		}

		if *saveTape != "" {
			if len(finished) != 1 {
				logger.ErrorContext(ctx, "save tape needs exactly one finished run",
					"runs", len(finished),
				)
				code = 1
			} else if err := tapes.Save(*saveTape, finished[0].Tape); err != nil {
				logger.ErrorContext(ctx, "save tape", "error", err)
				code = 1
			}
		}

		if *startTap {
			tap(ctx, "reports", map[string]any{
				"reports": finished,
			})
		}
	})
	return
}
