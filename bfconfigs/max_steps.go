package bfconfigs

import (
	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/configs"
	"github.com/reusee/bfvm/vars"
)

// MaxSteps bounds the opcodes one run may execute. Zero is unlimited.
type MaxSteps int64

var maxStepsFlag = cmds.Var[int64]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	fromConfig, err := configs.First[int64](loader, "max_steps")
	if err != nil {
		panic(err)
	}
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		fromConfig,
	))
}
