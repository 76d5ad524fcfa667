package cmds

// Var defines a command that sets a value, and name+"." that resets it.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name to set a flag and "!"+name to clear it.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines a command that appends each use to a list.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
