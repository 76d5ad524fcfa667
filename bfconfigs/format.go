package bfconfigs

import (
	"fmt"

	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/configs"
	"github.com/reusee/bfvm/vars"
)

// ReportFormat is one of text, json and yaml.
type ReportFormat string

var formatFlag = cmds.Var[string]("-format")

func (Module) ReportFormat(
	loader configs.Loader,
) ReportFormat {
	fromConfig, err := configs.First[string](loader, "format")
	if err != nil {
		panic(err)
	}
	format := vars.FirstNonZero(
		*formatFlag,
		fromConfig,
		"text",
	)
	switch format {
	case "text", "json", "yaml":
	default:
		panic(fmt.Errorf("unknown report format: %s", format))
	}
	return ReportFormat(format)
}
