package cmds

import (
	"fmt"
	"reflect"
)

// Command is a function bound to a command line word.
// Its parameters consume the words that follow it.
type Command struct {
	Name        string
	Func        reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn, which must return nothing or a single error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("must return 0 or 1 value"))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return error"))
	}
	return &Command{
		Func: fnValue,
	}
}

// Arity is the number of words the command consumes at most.
func (c *Command) Arity() int {
	return c.Func.Type().NumIn()
}
