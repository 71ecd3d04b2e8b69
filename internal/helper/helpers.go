package helper

import (
	"context"
	"fmt"
)

// ErrMissingValue is returned when a context carries no value for a key.
var ErrMissingValue = fmt.Errorf("missing context value")

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// ContextValue returns a getter for the value stored under key in ctx.
func ContextValue(ctx context.Context, key any) func() (any, error) {
	return func() (any, error) {
		raw := ctx.Value(key)
		if raw == nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingValue, key)
		}
		return raw, nil
	}
}

// LookupContextValue returns the value of type T stored under key in ctx and
// reports whether it was present with that type.
func LookupContextValue[T any](ctx context.Context, key any) (T, bool) {
	v, err := GetTypedValueOf[T](ContextValue(ctx, key))
	return v, err == nil
}
