package cmds

import "fmt"

// Var defines `name VALUE` to set the returned variable and `name.` to reset it.
func Var[T any](name string, desc ...string) *T {
	var value T

	Define(name, describe(Func(func(v T) {
		value = v
	}), desc, fmt.Sprintf("set %s", name)))

	var zero T
	Define(name+".", describe(Func(func() {
		value = zero
	}), nil, fmt.Sprintf("reset %s", name)))

	return &value
}

// Switch defines `name` to turn the returned flag on and `!name` to turn it off.
func Switch(name string, desc ...string) *bool {
	var value bool

	Define(name, describe(Func(func() {
		value = true
	}), desc, fmt.Sprintf("enable %s", name)))

	Define("!"+name, describe(Func(func() {
		value = false
	}), nil, fmt.Sprintf("disable %s", name)))

	return &value
}

// Collect defines `name VALUE`, appending to the returned slice each time.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, describe(Func(func(v T) {
		value = append(value, v)
	}), desc, fmt.Sprintf("append to %s", name)))
	return &value
}

func describe(cmd *Command, desc []string, fallback string) *Command {
	if len(desc) > 0 {
		return cmd.Desc(desc[0])
	}
	return cmd.Desc(fallback)
}
