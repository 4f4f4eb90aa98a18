package fn

import "cmp"

// Addable covers every type the + operator is defined for.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~string
}

// Number covers every type the * operator is defined for.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Tee broadcasts one argument to every operand and collects their results:
// Tee(f, g, h)(x) == []B{f(x), g(x), h(x)}.
func Tee[A, B any](fns ...func(A) B) func(A) []B {
	return func(a A) []B {
		results := make([]B, len(fns))
		for i, f := range fns {
			results[i] = f(a)
		}
		return results
	}
}

// Aggregate applies agg to the results of every operand:
// Aggregate(agg, f, g, h)(x) == agg([]B{f(x), g(x), h(x)}).
// It is Pipe(Tee(fns...), agg); SumFuncs, ProdFuncs, MinFuncs, MaxFuncs,
// AnyFuncs and AllFuncs are all built on it.
func Aggregate[A, B, C any](agg func([]B) C, fns ...func(A) B) func(A) C {
	return Pipe(Tee(fns...), agg)
}

// SumFuncs returns g(x) = f1(x) + f2(x) + ... + fn(x).
// With no operands it returns the zero function, the identity element of
// this combinator.
func SumFuncs[A any, N Addable](fns ...func(A) N) func(A) N {
	return Aggregate(func(vals []N) N {
		var acc N
		for _, v := range vals {
			acc += v
		}
		return acc
	}, fns...)
}

// ProdFuncs returns g(x) = f1(x) * f2(x) * ... * fn(x).
// With no operands it returns the one function, the identity element of
// this combinator.
func ProdFuncs[A any, N Number](fns ...func(A) N) func(A) N {
	return Aggregate(func(vals []N) N {
		var acc N = 1
		for _, v := range vals {
			acc *= v
		}
		return acc
	}, fns...)
}

// MinFuncs returns g(x) = min(f1(x), ..., fn(x)). Minimum has no identity
// element, so at least one operand is required by the signature.
func MinFuncs[A any, N cmp.Ordered](f func(A) N, rest ...func(A) N) func(A) N {
	fns := append([]func(A) N{f}, rest...)
	return Aggregate(func(vals []N) N {
		acc := vals[0]
		for _, v := range vals[1:] {
			acc = min(acc, v)
		}
		return acc
	}, fns...)
}

// MaxFuncs returns g(x) = max(f1(x), ..., fn(x)). At least one operand is
// required, as for MinFuncs.
func MaxFuncs[A any, N cmp.Ordered](f func(A) N, rest ...func(A) N) func(A) N {
	fns := append([]func(A) N{f}, rest...)
	return Aggregate(func(vals []N) N {
		acc := vals[0]
		for _, v := range vals[1:] {
			acc = max(acc, v)
		}
		return acc
	}, fns...)
}

// AnyFuncs returns the pointwise disjunction of its operand predicates.
// With no operands it returns the always-false predicate.
func AnyFuncs[A any](preds ...func(A) bool) func(A) bool {
	return Aggregate(func(vals []bool) bool {
		for _, v := range vals {
			if v {
				return true
			}
		}
		return false
	}, preds...)
}

// AllFuncs returns the pointwise conjunction of its operand predicates.
// With no operands it returns the always-true predicate.
func AllFuncs[A any](preds ...func(A) bool) func(A) bool {
	return Aggregate(func(vals []bool) bool {
		for _, v := range vals {
			if !v {
				return false
			}
		}
		return true
	}, preds...)
}

// ReduceFuncs folds op over the operand results, seeded by seed:
// ReduceFuncs(op, s, f, g)(x) == op(op(s, f(x)), g(x)).
// op is not required to be associative; operands are applied left to right.
// With no operands it returns Const(seed).
func ReduceFuncs[A, B any](op func(B, B) B, seed B, fns ...func(A) B) func(A) B {
	return func(a A) B {
		acc := seed
		for _, f := range fns {
			acc = op(acc, f(a))
		}
		return acc
	}
}

// ReduceFuncs1 folds op over the operand results, seeded by the first
// operand's result. The signature requires at least one operand, so the
// unseedable empty fold cannot be constructed.
func ReduceFuncs1[A, B any](op func(B, B) B, f func(A) B, rest ...func(A) B) func(A) B {
	return func(a A) B {
		acc := f(a)
		for _, g := range rest {
			acc = op(acc, g(a))
		}
		return acc
	}
}
