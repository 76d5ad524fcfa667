package runs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/bfvm/bfconfigs"
	"github.com/reusee/bfvm/budgets"
	"github.com/reusee/bfvm/counters"
	"github.com/reusee/bfvm/logs"
	"github.com/reusee/bfvm/modes"
	"github.com/reusee/bfvm/programs"
	"github.com/reusee/bfvm/tapes"
	"github.com/reusee/dscope"
)

const helloTypes = "+++++++++[>++++++++>+++++++++++>++++>+++++++++>+++++++++++++<<<<<-]>.>++.+++++++..+++.>----.>+++.>++++.<<<+.-----------.>>>------.<<+."

func testScope(t *testing.T, logBuf *bytes.Buffer, defs ...any) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		append([]any{
			func() logs.Writer {
				return logBuf
			},
		}, defs...)...,
	)
}

func TestRunHelloTypes(t *testing.T) {
	logBuf := new(bytes.Buffer)
	testScope(t, logBuf).Call(func(
		run Run,
	) {
		report, err := run(t.Context(), Spec{
			Name:   "hello",
			Source: helloTypes,
		})
		if err != nil {
			t.Fatal(err)
		}
		if report.Text != "Hello Types!" {
			t.Fatalf("got %q", report.Text)
		}
		if report.DecodeError != "" {
			t.Fatal(report.DecodeError)
		}
		if report.ID == "" || report.Name != "hello" {
			t.Fatalf("got %+v", report)
		}
		if report.Steps != 591 {
			t.Fatalf("got %d", report.Steps)
		}
		if report.Machine() == nil || !report.Machine().Done() {
			t.Fatal()
		}
	})
	if !strings.Contains(logBuf.String(), "run done") {
		t.Fatalf("got %s", logBuf.String())
	}
	if !strings.Contains(logBuf.String(), "span=") {
		t.Fatalf("got %s", logBuf.String())
	}
}

func TestRunInitialTape(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		run Run,
	) {
		initial := tapes.New(counters.FromUint64(64))
		report, err := run(t.Context(), Spec{
			Name:   "initial",
			Source: "+.",
			Tape:   initial,
		})
		if err != nil {
			t.Fatal(err)
		}
		if report.Text != "A" {
			t.Fatalf("got %q", report.Text)
		}
		if v := initial.ReadAt(0); !v.Equal(counters.FromUint64(64)) {
			t.Fatal("initial tape mutated")
		}
	})
}

func TestRunDecodeError(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		run Run,
	) {
		report, err := run(t.Context(), Spec{
			Name:   "overflow",
			Source: "+++++++++++++++[>+++++++++++++++++<-]>+.",
		})
		if err != nil {
			t.Fatal(err)
		}
		if report.Text != "" {
			t.Fatalf("got %q", report.Text)
		}
		if !strings.Contains(report.DecodeError, "out of byte range") {
			t.Fatalf("got %q", report.DecodeError)
		}
		if len(report.Output) != 1 || !report.Output[0].Equal(counters.FromUint64(256)) {
			t.Fatalf("got %v", report.Output)
		}
	})
}

func TestRunParseError(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		run Run,
	) {
		report, err := run(t.Context(), Spec{
			Name:   "bad",
			Source: "[[]",
		})
		if !errors.Is(err, programs.ErrUnbalanced) {
			t.Fatalf("got %v", err)
		}
		if report != nil {
			t.Fatal()
		}
	})
}

func TestRunStepLimit(t *testing.T) {
	testScope(t, new(bytes.Buffer),
		func() bfconfigs.MaxSteps {
			return 1000
		},
	).Call(func(
		run Run,
	) {
		report, err := run(t.Context(), Spec{
			Name:   "forever",
			Source: "+[]",
		})
		if !errors.Is(err, budgets.ErrStepLimit) {
			t.Fatalf("got %v", err)
		}
		if report == nil || report.Steps != 1000 {
			t.Fatalf("got %+v", report)
		}
		if !strings.Contains(err.Error(), "span") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunUnknownEncoding(t *testing.T) {
	testScope(t, new(bytes.Buffer),
		func() bfconfigs.Encoding {
			return "no-such-charset"
		},
	).Call(func(
		run Run,
	) {
		_, err := run(t.Context(), Spec{
			Source: "+.",
		})
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestRunTrace(t *testing.T) {
	logs.SetLevel(slog.LevelDebug)
	defer logs.SetLevel(slog.LevelInfo)
	logBuf := new(bytes.Buffer)
	testScope(t, logBuf,
		func() bfconfigs.Trace {
			return true
		},
	).Call(func(
		run Run,
	) {
		if _, err := run(t.Context(), Spec{
			Source: "+>",
		}); err != nil {
			t.Fatal(err)
		}
	})
	out := logBuf.String()
	if !strings.Contains(out, "msg=step index=0 op=+ pointer=0 cell=1") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "msg=step index=1 op=> pointer=1 cell=0") {
		t.Fatalf("got %s", out)
	}
}

func TestRunAll(t *testing.T) {
	testScope(t, new(bytes.Buffer),
		func() bfconfigs.Parallel {
			return 2
		},
	).Call(func(
		runAll RunAll,
	) {
		var specs []Spec
		for i := range 10 {
			specs = append(specs, Spec{
				Name:   fmt.Sprintf("p%d", i),
				Source: strings.Repeat("+", 48+i) + ".",
			})
		}
		reports, err := runAll(t.Context(), specs)
		if err != nil {
			t.Fatal(err)
		}
		if len(reports) != 10 {
			t.Fatalf("got %d", len(reports))
		}
		for i, report := range reports {
			if report.Name != specs[i].Name {
				t.Fatalf("got %s", report.Name)
			}
			if report.Text != fmt.Sprint(i) {
				t.Fatalf("got %q", report.Text)
			}
		}
	})
}

func TestRunAllError(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		runAll RunAll,
	) {
		reports, err := runAll(context.Background(), []Spec{
			{Name: "ok", Source: "+"},
			{Name: "bad", Source: "]"},
		})
		if !errors.Is(err, programs.ErrUnbalanced) {
			t.Fatalf("got %v", err)
		}
		if len(reports) != 2 || reports[1] != nil {
			t.Fatalf("got %v", reports)
		}
	})
}
