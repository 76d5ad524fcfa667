package logs

import (
	"context"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Span identifies one unit of work, such as a single program run, across log lines.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
