package budgets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reusee/bfvm/machines"
)

var ErrStepLimit = errors.New("step limit exceeded")

// Budget limits one run of a machine. Zero fields are unlimited.
type Budget struct {
	MaxSteps int64
	Timeout  time.Duration
}

// how many steps run between context checks
const checkInterval = 1 << 12

// Drive advances m until it finishes or a limit trips.
// On a limit the machine is left suspended and can be driven again.
func (b Budget) Drive(ctx context.Context, m *machines.Machine, onStep func(machines.Step)) error {
	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := m.Steps
	var err error
	for step := range m.Run {
		if onStep != nil {
			onStep(step)
		}
		if m.Done() {
			break
		}
		if b.MaxSteps > 0 && m.Steps-start >= b.MaxSteps {
			err = fmt.Errorf("%w: %d steps at opcode %d", ErrStepLimit, m.Steps-start, m.IP)
			break
		}
		if (m.Steps-start)%checkInterval == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}
	}
	return err
}
