package bfconfigs

import (
	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/configs"
	"github.com/reusee/bfvm/outputs"
	"github.com/reusee/bfvm/vars"
)

// Encoding names the charset program output is decoded with.
type Encoding string

var encodingFlag = cmds.Var[string]("-encoding")

func (Module) Encoding(
	loader configs.Loader,
) Encoding {
	fromConfig, err := configs.First[string](loader, "encoding")
	if err != nil {
		panic(err)
	}
	return Encoding(vars.FirstNonZero(
		*encodingFlag,
		fromConfig,
		outputs.UTF8,
	))
}
