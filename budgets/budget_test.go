package budgets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reusee/bfvm/machines"
	"github.com/reusee/bfvm/outputs"
	"github.com/reusee/bfvm/programs"
)

func TestUnlimited(t *testing.T) {
	m := machines.New(programs.MustParse("++++++++[>++++++++<-]>+."), nil)
	var steps int
	if err := (Budget{}).Drive(context.Background(), m, func(machines.Step) {
		steps++
	}); err != nil {
		t.Fatal(err)
	}
	if !m.Done() {
		t.Fatal()
	}
	if int64(steps) != m.Steps {
		t.Fatalf("got %d, machine counted %d", steps, m.Steps)
	}
	text, err := outputs.Decode(m.Output)
	if err != nil {
		t.Fatal(err)
	}
	if text != "A" {
		t.Fatalf("got %q", text)
	}
}

func TestStepLimit(t *testing.T) {
	// never terminates
	m := machines.New(programs.MustParse("+[]"), nil)
	err := Budget{MaxSteps: 100}.Drive(context.Background(), m, nil)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got %v", err)
	}
	if m.Steps != 100 {
		t.Fatalf("got %d", m.Steps)
	}
	if m.Done() {
		t.Fatal()
	}

	// a second budget continues from where the first stopped
	err = Budget{MaxSteps: 50}.Drive(context.Background(), m, nil)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got %v", err)
	}
	if m.Steps != 150 {
		t.Fatalf("got %d", m.Steps)
	}
}

func TestExactLimit(t *testing.T) {
	program := programs.MustParse("+++")
	m := machines.New(program, nil)
	if err := (Budget{MaxSteps: 3}).Drive(context.Background(), m, nil); err != nil {
		t.Fatal(err)
	}
	if !m.Done() {
		t.Fatal()
	}
}

func TestTimeout(t *testing.T) {
	m := machines.New(programs.MustParse("+[]"), nil)
	err := Budget{Timeout: 20 * time.Millisecond}.Drive(context.Background(), m, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := machines.New(programs.MustParse("+"), nil)
	err := (Budget{}).Drive(ctx, m, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if m.Steps != 0 {
		t.Fatal("canceled drive must not execute")
	}
}
