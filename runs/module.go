package runs

import (
	"github.com/reusee/bfvm/bfconfigs"
	"github.com/reusee/bfvm/logs"
	"github.com/reusee/bfvm/machines"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Machines machines.Module
	Configs  bfconfigs.Module
}
