package configs

import (
	"errors"
	"fmt"
)

// First returns the value at path from the first file defining it, or the zero value.
// Invalid files and values that do not decode into T panic.
func First[T any](loader Loader, path string) (value T) {
	err := loader.AssignFirst(path, &value)
	if errors.Is(err, ErrValueNotFound) {
		var zero T
		return zero
	}
	if err != nil {
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}
