package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under parent, or under the span of ctx when parent is empty.
type NewSpan func(ctx context.Context, parent Span, args ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, args ...any) (context.Context, Span) {
		creator := SpanOf(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		if creator != "" && creator != parent {
			args = append(args, "creator", string(creator))
		}
		if parent != "" {
			args = append(args, "parent", string(parent))
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
