package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bfvm/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound, plus the builtins.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, tapGlobals(globals))
	}
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func tapGlobals(globals map[string]any) starlark.StringDict {
	mappings := starlark.StringDict{
		"execute": starlark.NewBuiltin("execute", execute),
		"decode":  starlark.NewBuiltin("decode", decode),
	}
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
