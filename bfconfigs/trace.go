package bfconfigs

import (
	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/configs"
)

// Trace enables per-step debug logging.
type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	if *traceFlag {
		return true
	}
	fromConfig, err := configs.First[bool](loader, "trace")
	if err != nil {
		panic(err)
	}
	return Trace(fromConfig)
}
