package cmds

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/reusee/bfvm/vars"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	return &Executor{
		commands: make(map[string]*Command),
	}
}

func (e *Executor) Define(name string, command *Command) {
	if command.Name == "" {
		command.Name = name
	}
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		e.commands[n] = command
	}
}

var errorType = reflect.TypeFor[error]()

// Execute runs commands named by args from left to right.
func (e *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := e.commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		fnType := command.Func.Type()
		callArgs := make([]reflect.Value, 0, fnType.NumIn())
		for i := range fnType.NumIn() {
			value, consumed, err := getArg(fnType.In(i), args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			args = args[consumed:]
			callArgs = append(callArgs, value)
		}

		rets := command.Func.Call(callArgs)
		if len(rets) > 0 && !rets[0].IsNil() {
			return fmt.Errorf("%s: %w", name, rets[0].Interface().(error))
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

var durationType = reflect.TypeFor[time.Duration]()

// getArg converts the next word to t. Pointer parameters are optional.
func getArg(t reflect.Type, args []string) (ret reflect.Value, consumed int, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), 0, nil
		}
		elem, consumed, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, 0, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, consumed, nil
	}

	if len(args) == 0 {
		return ret, 0, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]
	ret = reflect.New(t).Elem()

	if t == durationType {
		d, err := time.ParseDuration(str)
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to duration: %w", str, err)
		}
		ret.SetInt(int64(d))
		return ret, 1, nil
	}

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, 0, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, 1, nil
}
