package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bfvm/configs"
	"github.com/reusee/bfvm/logs"
	"github.com/reusee/bfvm/modes"
)

//go:embed schema.cue
var Schema string

var configFilenames = []string{
	"bfvm.cue",
	".bfvm.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	// tests see only their working directory
	if mode == modes.ModeProduction {
		if dir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, dir)
		}
		dirs = append(dirs, "/etc")
	}

	var paths []string
	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, Schema)
}
