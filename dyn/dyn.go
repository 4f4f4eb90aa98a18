package dyn

import (
	"fmt"
	"reflect"
	"runtime"
)

// Func is the dynamic shape of a composed callable: a positional argument
// list in, a result list and an error out. Every combinator in this package
// returns a Func.
type Func func(args ...any) ([]any, error)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Lift adapts an arbitrary Go function to a Func. The lifted Func checks
// the argument count and argument types of every invocation against fn's
// signature, reporting mismatches as ErrArity / ErrType. If fn's last
// result is an error it is split off and returned as the Func's error.
// Lift panics if fn is not a function; a Func passes through unchanged.
func Lift(fn any) Func {
	if f, ok := fn.(Func); ok {
		return f
	}
	if f, ok := fn.(func(args ...any) ([]any, error)); ok {
		return f
	}
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		panic(fmt.Sprintf("dyn: Lift requires a function, got %T", fn))
	}
	return func(args ...any) ([]any, error) {
		return call(v, args)
	}
}

// call invokes v with args, doing the dynamic signature checking the Go
// compiler cannot. Panics raised by v itself are not recovered.
func call(v reflect.Value, args []any) ([]any, error) {
	t := v.Type()
	name := funcName(v)

	numIn := t.NumIn()
	if t.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, arityErrf("%s takes at least %d arguments, got %d", name, numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, arityErrf("%s takes %d arguments, got %d", name, numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var target reflect.Type
		if t.IsVariadic() && i >= numIn-1 {
			target = t.In(numIn - 1).Elem()
		} else {
			target = t.In(i)
		}
		av, err := conform(arg, target, name, i)
		if err != nil {
			return nil, err
		}
		in[i] = av
	}

	out := v.Call(in)
	if n := len(out); n > 0 && t.Out(n-1) == errType {
		if errVal := out[n-1].Interface(); errVal != nil {
			return nil, errVal.(error)
		}
		out = out[:n-1]
	}

	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

// conform turns arg into a reflect.Value assignable to target.
func conform(arg any, target reflect.Type, name string, i int) (reflect.Value, error) {
	if arg == nil {
		switch target.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(target), nil
		}
		return reflect.Value{}, typeErrf("argument %d of %s is nil, want %s", i, name, target)
	}
	av := reflect.ValueOf(arg)
	if !av.Type().AssignableTo(target) {
		return reflect.Value{}, typeErrf("argument %d of %s is %T, want %s", i, name, arg, target)
	}
	return av, nil
}

func funcName(v reflect.Value) string {
	if f := runtime.FuncForPC(v.Pointer()); f != nil && f.Name() != "" {
		return f.Name()
	}
	return v.Type().String()
}

// Identity returns a Func that returns its single argument unchanged. It is
// the neutral element of Compose and Pipe.
func Identity() Func {
	return func(args ...any) ([]any, error) {
		if len(args) != 1 {
			return nil, arityErrf("identity takes 1 argument, got %d", len(args))
		}
		return args, nil
	}
}

// Constant returns a Func that ignores all arguments and always returns v.
func Constant(v any) Func {
	return func(...any) ([]any, error) {
		return []any{v}, nil
	}
}

// Negate wraps a predicate-shaped callable, logically negating its result.
// The wrapped callable must produce a single bool, or the call fails with
// ErrArity / ErrType.
func Negate(fn any) Func {
	lifted := Lift(fn)
	return func(args ...any) ([]any, error) {
		results, err := lifted(args...)
		if err != nil {
			return nil, err
		}
		if len(results) != 1 {
			return nil, arityErrf("negated function returned %d results, want 1", len(results))
		}
		b, ok := results[0].(bool)
		if !ok {
			return nil, typeErrf("negated function returned %T, want bool", results[0])
		}
		return []any{!b}, nil
	}
}

// Star adapts fn to a call site that only has an aggregated sequence: the
// returned Func takes a single slice argument and unpacks its elements into
// positional arguments for fn.
func Star(fn any) Func {
	lifted := Lift(fn)
	return func(args ...any) ([]any, error) {
		if len(args) != 1 {
			return nil, arityErrf("star takes 1 sequence argument, got %d arguments", len(args))
		}
		seq, err := sequence(args[0])
		if err != nil {
			return nil, err
		}
		return lifted(seq...)
	}
}

// sequence flattens a slice or array of any element type into []any.
func sequence(arg any) ([]any, error) {
	if seq, ok := arg.([]any); ok {
		return seq, nil
	}
	rv := reflect.ValueOf(arg)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, typeErrf("star argument is %T, want a slice or array", arg)
	}
	seq := make([]any, rv.Len())
	for i := range seq {
		seq[i] = rv.Index(i).Interface()
	}
	return seq, nil
}
