package debugs

import (
	"fmt"

	"github.com/reusee/bfvm/counters"
	"github.com/reusee/bfvm/machines"
	"github.com/reusee/bfvm/outputs"
	"github.com/reusee/bfvm/programs"
	"github.com/reusee/bfvm/tapes"
	"go.starlark.net/starlark"
)

// execute(source, cells=[]) runs a program and returns {"output", "tape"}
func execute(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	var cells *starlark.List
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "source", &source, "cells?", &cells); err != nil {
		return nil, err
	}
	program, err := programs.Parse(source)
	if err != nil {
		return nil, err
	}
	values, err := toCounters(cells)
	if err != nil {
		return nil, err
	}
	tape, output := machines.Execute(program, tapes.New(values...))
	d := starlark.NewDict(2)
	d.SetKey(starlark.String("output"), toStarlarkValue(output))
	d.SetKey(starlark.String("tape"), toStarlarkValue(tape))
	return d, nil
}

// decode(values, encoding="utf-8") decodes output values to text
func decode(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var list *starlark.List
	encoding := outputs.UTF8
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "values", &list, "encoding?", &encoding); err != nil {
		return nil, err
	}
	values, err := toCounters(list)
	if err != nil {
		return nil, err
	}
	text, err := outputs.DecodeAs(outputs.NewBuffer(values...), encoding)
	if err != nil {
		return nil, err
	}
	return starlark.String(text), nil
}

func toCounters(list *starlark.List) ([]counters.Counter, error) {
	if list == nil {
		return nil, nil
	}
	ret := make([]counters.Counter, 0, list.Len())
	for i := range list.Len() {
		n, ok := list.Index(i).(starlark.Int)
		if !ok {
			return nil, fmt.Errorf("element %d: not an int: %s", i, list.Index(i).Type())
		}
		c, err := counters.Parse(n.String())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		ret = append(ret, c)
	}
	return ret, nil
}
