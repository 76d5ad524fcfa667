package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
		logger.With("run", 1).Info("with attrs")
	})
	if !strings.Contains(buf.String(), `hello=world!`) {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `run=1`) {
		t.Fatalf("got %s", buf.String())
	}
}

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	defer SetLevel(slog.LevelInfo)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("hidden")
		SetLevel(slog.LevelDebug)
		logger.Debug("shown")
	})
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("foo")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatal()
	}
	if !strings.Contains(err.Error(), "span abc") {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("span.id-1"); got != "SPAN_ID_1" {
		t.Fatalf("got %s", got)
	}
}
