package bfconfigs

import (
	"fmt"
	"time"

	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/configs"
)

// Timeout bounds the wall clock time of one run. Zero is unlimited.
type Timeout time.Duration

var timeoutFlag = cmds.Var[time.Duration]("-timeout")

func (Module) Timeout(
	loader configs.Loader,
) Timeout {
	if *timeoutFlag != 0 {
		return Timeout(*timeoutFlag)
	}
	str, err := configs.First[string](loader, "timeout")
	if err != nil {
		panic(err)
	}
	if str == "" {
		return 0
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		panic(fmt.Errorf("config timeout: %w", err))
	}
	return Timeout(d)
}
