package dyn

// Compose is mathematical function composition over opaque callables:
// Compose(f1, f2, ..., fn) returns g with g(x...) = f1(f2(...fn(x...))).
// The rightmost operand receives the call's actual argument list; every
// earlier operand receives the previous stage's results, so an operand
// producing more or fewer values than its successor accepts fails the call
// with ErrArity. Compose panics when given no operands.
func Compose(fns ...any) Func {
	if len(fns) == 0 {
		panic("dyn: Compose requires at least one function")
	}
	stages := make([]Func, len(fns))
	for i, fn := range fns {
		stages[len(fns)-1-i] = Lift(fn)
	}
	return chain(stages)
}

// Pipe is the left-to-right dual of Compose:
// Pipe(f1, f2, ..., fn) returns g with g(x...) = fn(...f2(f1(x...))).
// Pipe panics when given no operands.
func Pipe(fns ...any) Func {
	if len(fns) == 0 {
		panic("dyn: Pipe requires at least one function")
	}
	stages := make([]Func, len(fns))
	for i, fn := range fns {
		stages[i] = Lift(fn)
	}
	return chain(stages)
}

// chain feeds each stage's results to the next as arguments. A stage error
// aborts the call; the partial results are discarded.
func chain(stages []Func) Func {
	return func(args ...any) ([]any, error) {
		results, err := stages[0](args...)
		if err != nil {
			return nil, err
		}
		for _, stage := range stages[1:] {
			results, err = stage(results...)
			if err != nil {
				return nil, err
			}
		}
		return results, nil
	}
}
