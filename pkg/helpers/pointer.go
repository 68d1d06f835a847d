package helpers

// Ptr returns a pointer to val. Tests use it to build optional form fields.
func Ptr[T any](val T) *T {
	return &val
}

// Value dereferences val, treating nil as the zero value.
func Value[T any](val *T) T {
	var zero T
	return ValueOr(val, zero)
}

// ValueOr dereferences val, treating nil as fallback.
func ValueOr[T any](val *T, fallback T) T {
	if val == nil {
		return fallback
	}
	return *val
}
