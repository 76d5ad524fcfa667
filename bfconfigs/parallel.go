package bfconfigs

import (
	"runtime"

	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/configs"
	"github.com/reusee/bfvm/vars"
)

// Parallel is the number of programs run at the same time.
type Parallel int

var parallelFlag = cmds.Var[int]("-parallel")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	fromConfig, err := configs.First[int](loader, "parallel")
	if err != nil {
		panic(err)
	}
	return Parallel(max(1, vars.FirstNonZero(
		*parallelFlag,
		fromConfig,
		runtime.GOMAXPROCS(0),
	)))
}
