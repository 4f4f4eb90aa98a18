package fn

// T2 is a pair of values. It lets multi-argument functions travel through
// single-argument pipelines, see Star2 and Unstar2.
type T2[A, B any] struct {
	fst A
	snd B
}

func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{fst: a, snd: b}
}

func (t T2[A, B]) Fst() A { return t.fst }

func (t T2[A, B]) Snd() B { return t.snd }

// T3 is a triple of values.
type T3[A, B, C any] struct {
	fst A
	snd B
	trd C
}

func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{fst: a, snd: b, trd: c}
}

func (t T3[A, B, C]) Fst() A { return t.fst }

func (t T3[A, B, C]) Snd() B { return t.snd }

func (t T3[A, B, C]) Trd() C { return t.trd }

// Star2 adapts a two-argument function to a call site that only has an
// aggregated pair: Star2(f)(NewT2(a, b)) == f(a, b).
func Star2[A, B, R any](f func(A, B) R) func(T2[A, B]) R {
	return func(t T2[A, B]) R {
		return f(t.fst, t.snd)
	}
}

// Star3 is Star2 for three-argument functions.
func Star3[A, B, C, R any](f func(A, B, C) R) func(T3[A, B, C]) R {
	return func(t T3[A, B, C]) R {
		return f(t.fst, t.snd, t.trd)
	}
}

// Unstar2 inverts Star2, spreading a pair-taking function back into a
// two-argument one.
func Unstar2[A, B, R any](f func(T2[A, B]) R) func(A, B) R {
	return func(a A, b B) R {
		return f(T2[A, B]{fst: a, snd: b})
	}
}

// Curry2 turns a two-argument function into a chain of single-argument ones.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Uncurry2 inverts Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Partial2 fixes the first argument of a two-argument function.
func Partial2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial3 fixes the first argument of a three-argument function.
func Partial3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}
