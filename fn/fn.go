package fn

// Identity returns its argument unchanged. It is the left and right
// identity of Compose and Pipe, and is mostly useful as an operand for the
// other combinators, e.g. fn.SumFuncs(fn.Identity, square).
func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Const0 is the nullary form of Const.
func Const0[A any](a A) func() A {
	return func() A {
		return a
	}
}

// Compose is mathematical function composition: Compose(f, g)(x) == f(g(x)).
// The rightmost operand is applied first.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 composes three functions right to left.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Pipe is the left-to-right dual of Compose: Pipe(f, g)(x) == g(f(x)).
// The leftmost operand receives the original argument.
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 pipes through three functions left to right.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// ComposeAll composes any number of same-type functions right to left.
// With no operands it returns Identity.
func ComposeAll[T any](fns ...func(T) T) func(T) T {
	return func(t T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			t = fns[i](t)
		}
		return t
	}
}

// PipeAll pipes any number of same-type functions left to right.
// With no operands it returns Identity.
func PipeAll[T any](fns ...func(T) T) func(T) T {
	return func(t T) T {
		for _, f := range fns {
			t = f(t)
		}
		return t
	}
}

// Negate returns a predicate that is true exactly when pred is false.
func Negate[A any](pred func(A) bool) func(A) bool {
	return func(a A) bool {
		return !pred(a)
	}
}

// Negate2 is Negate for two-argument predicates.
func Negate2[A, B any](pred func(A, B) bool) func(A, B) bool {
	return func(a A, b B) bool {
		return !pred(a, b)
	}
}
