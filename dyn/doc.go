// Package dyn provides the dynamic combinator surface of func_ive_go.
//
// Where the fn package keeps pipelines fully typed, dyn treats every
// operand as an opaque callable. A pipeline may mix functions of different
// signatures; nothing is validated at construction time (combinators only
// count their operands), and every mismatch is reported when the composed
// callable is actually invoked:
//
//   - ErrArity: a stage produced a different number of values than the
//     next stage accepts, or the composed callable itself was invoked with
//     the wrong number of arguments.
//   - ErrType: a value cannot be passed where the next stage expects a
//     different type, or an operator such as + is undefined for the actual
//     result types.
//
// A wrapped callable's own failures are never caught or transformed: an
// error returned by an operand surfaces unchanged as the composed
// callable's error, and a panic inside an operand unwinds through the
// pipeline untouched.
//
// Example:
//
//	g := dyn.Compose(
//		func(y int) int { return y + 1 },
//		func(z int) int { return z * 2 },
//	)
//	res, err := g(3) // res[0] == 7
//
// Results come back as a []any; First and At recover typed values from it.
package dyn
