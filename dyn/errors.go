package dyn

import (
	"errors"
	"fmt"
)

// ErrArity reports an argument-count mismatch discovered at call time.
var ErrArity = errors.New("arity mismatch")

// ErrType reports a value of the wrong type discovered at call time.
var ErrType = errors.New("type mismatch")

func arityErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrArity, fmt.Sprintf(format, args...))
}

func typeErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrType, fmt.Sprintf(format, args...))
}

// At asserts result i of a composed callable's result list to type T.
func At[T any](results []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(results) {
		return zero, arityErrf("no result %d in %d results", i, len(results))
	}
	v, ok := results[i].(T)
	if !ok {
		return zero, typeErrf("result %d is %T, not %T", i, results[i], zero)
	}
	return v, nil
}

// First asserts the first result to type T. Its signature matches a Func
// invocation so the two calls chain:
//
//	v, err := dyn.First[int](g(3))
func First[T any](results []any, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return At[T](results, 0)
}

// MustFirst is the panic-on-failure variant of First. Use when a pipeline
// is known to be well formed, e.g. in examples and tests.
func MustFirst[T any](results []any, err error) T {
	v, err := First[T](results, err)
	if err != nil {
		panic(err)
	}
	return v
}
