package vars

// FirstNonZero returns the first value that is not the zero value of T.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

// FirstNonEmpty returns the first non-empty slice.
func FirstNonEmpty[T any](lists ...[]T) []T {
	for _, list := range lists {
		if len(list) > 0 {
			return list
		}
	}
	return nil
}
