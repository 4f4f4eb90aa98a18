// Package fn provides the typed combinator surface of func_ive_go.
//
// A combinator is a higher-order function: it takes one or more functions
// (and occasionally values) and returns a new function. Nothing is executed
// at construction time — a combinator only captures its operands in a
// closure, and every operand runs when the composed function is finally
// called. The combinators never mutate their operands, so given the same
// operands a combinator always yields an equivalent composed function.
//
// The package leans on Go generics to push the checking a dynamic language
// would do at call time into the compiler: arity and argument types of a
// pipeline are verified statically, so a pipeline that compiles cannot fail
// with a signature mismatch. For heterogeneous pipelines over opaque
// callables, where that guarantee is impossible, see the dyn package.
//
// Identity elements matter here. Identity is the neutral operand of Compose
// and Pipe, SumFuncs of no operands is the zero function, ProdFuncs of no
// operands is the one function, AnyFuncs of no operands is always-false and
// AllFuncs always-true. Pipelines can therefore be assembled incrementally
// without special-casing the empty prefix.
//
// Example:
//
//	total := fn.Pipe(
//		strings.TrimSpace,
//		fn.Negate(isBlank),
//	)
//
//	poly := fn.SumFuncs(
//		fn.Identity[int],
//		func(x int) int { return x * x },
//	)
//	poly(4) // 20
package fn
