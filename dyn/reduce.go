package dyn

// Reduce folds op over the results of applying each operand to the call
// arguments, seeded by the first operand's result. op is not required to be
// associative; operands are applied left to right. Each operand must
// produce exactly one value per call. With no operands the fold has no seed
// to start from, so Reduce panics at construction.
func Reduce(op func(acc, val any) (any, error), fns ...any) Func {
	if len(fns) == 0 {
		panic("dyn: Reduce requires at least one function when no seed is given, use ReduceSeed")
	}
	lifted := liftAll(fns)
	return func(args ...any) ([]any, error) {
		acc, err := single(lifted[0], args)
		if err != nil {
			return nil, err
		}
		return fold(op, acc, lifted[1:], args)
	}
}

// ReduceSeed is Reduce with an explicit seed. With no operands it returns
// Constant(seed).
func ReduceSeed(op func(acc, val any) (any, error), seed any, fns ...any) Func {
	lifted := liftAll(fns)
	return func(args ...any) ([]any, error) {
		return fold(op, seed, lifted, args)
	}
}

// Sum returns g(x...) = f1(x...) + f2(x...) + ... + fn(x...). With no
// operands it returns Constant(0), the identity element of this combinator.
// Result types must all match and support +, or the call fails with ErrType.
func Sum(fns ...any) Func {
	if len(fns) == 0 {
		return Constant(0)
	}
	return Reduce(addAny, fns...)
}

// Prod is the multiplicative analogue of Sum; its identity element is
// Constant(1).
func Prod(fns ...any) Func {
	if len(fns) == 0 {
		return Constant(1)
	}
	return Reduce(mulAny, fns...)
}

func liftAll(fns []any) []Func {
	lifted := make([]Func, len(fns))
	for i, fn := range fns {
		lifted[i] = Lift(fn)
	}
	return lifted
}

func fold(op func(any, any) (any, error), acc any, fns []Func, args []any) ([]any, error) {
	for _, f := range fns {
		val, err := single(f, args)
		if err != nil {
			return nil, err
		}
		acc, err = op(acc, val)
		if err != nil {
			return nil, err
		}
	}
	return []any{acc}, nil
}

func single(f Func, args []any) (any, error) {
	results, err := f(args...)
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, arityErrf("reduce operand returned %d results, want 1", len(results))
	}
	return results[0], nil
}

func addAny(a, b any) (any, error) {
	switch x := a.(type) {
	case int:
		if y, ok := b.(int); ok {
			return x + y, nil
		}
	case int64:
		if y, ok := b.(int64); ok {
			return x + y, nil
		}
	case uint64:
		if y, ok := b.(uint64); ok {
			return x + y, nil
		}
	case float64:
		if y, ok := b.(float64); ok {
			return x + y, nil
		}
	case complex128:
		if y, ok := b.(complex128); ok {
			return x + y, nil
		}
	case string:
		if y, ok := b.(string); ok {
			return x + y, nil
		}
	default:
		return nil, typeErrf("+ is undefined for %T", a)
	}
	return nil, typeErrf("+ is undefined for %T and %T", a, b)
}

func mulAny(a, b any) (any, error) {
	switch x := a.(type) {
	case int:
		if y, ok := b.(int); ok {
			return x * y, nil
		}
	case int64:
		if y, ok := b.(int64); ok {
			return x * y, nil
		}
	case uint64:
		if y, ok := b.(uint64); ok {
			return x * y, nil
		}
	case float64:
		if y, ok := b.(float64); ok {
			return x * y, nil
		}
	case complex128:
		if y, ok := b.(complex128); ok {
			return x * y, nil
		}
	default:
		return nil, typeErrf("* is undefined for %T", a)
	}
	return nil, typeErrf("* is undefined for %T and %T", a, b)
}
