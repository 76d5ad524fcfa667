package machines

import (
	"context"

	"github.com/reusee/bfvm/logs"
)

// Trace records one executed step.
type Trace func(ctx context.Context, step Step)

func (Module) Trace(
	logger logs.Logger,
) Trace {
	return func(ctx context.Context, step Step) {
		logger.DebugContext(ctx, "step",
			"index", step.Index,
			"op", step.Op.String(),
			"pointer", step.Pointer,
			"cell", step.Cell.String(),
		)
	}
}
