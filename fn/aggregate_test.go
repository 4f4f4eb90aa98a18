package fn_test

import (
	"testing"

	"github.com/on-the-ground/func_ive_go/fn"

	"github.com/stretchr/testify/assert"
)

func square(x int) int { return x * x }

func TestTee(t *testing.T) {
	g := fn.Tee(fn.Identity[int], square, double)
	assert.Equal(t, []int{4, 16, 8}, g(4))

	assert.Empty(t, fn.Tee[int, int]()(4))
}

func TestAggregate(t *testing.T) {
	biggest := fn.Aggregate(func(vals []int) int {
		acc := vals[0]
		for _, v := range vals[1:] {
			acc = max(acc, v)
		}
		return acc
	}, inc, square)
	assert.Equal(t, 16, biggest(4))
}

func TestSumFuncs(t *testing.T) {
	g := fn.SumFuncs(fn.Identity[int], square)
	assert.Equal(t, 20, g(4)) // 4 + 16

	two := fn.SumFuncs(inc, double)
	assert.Equal(t, inc(5)+double(5), two(5))
}

func TestSumFuncsZeroOperands(t *testing.T) {
	zero := fn.SumFuncs[int, int]()
	assert.Equal(t, 0, zero(99))
}

func TestSumFuncsStrings(t *testing.T) {
	g := fn.SumFuncs(
		func(s string) string { return s },
		fn.Const[string]("!"),
	)
	assert.Equal(t, "go!", g("go"))
}

func TestProdFuncs(t *testing.T) {
	g := fn.ProdFuncs(fn.Identity[int], square)
	assert.Equal(t, 64, g(4)) // 4 * 16

	one := fn.ProdFuncs[int, int]()
	assert.Equal(t, 1, one(99))
}

func TestMinMaxFuncs(t *testing.T) {
	lo := fn.MinFuncs(inc, square, double)
	hi := fn.MaxFuncs(inc, square, double)

	assert.Equal(t, 4, lo(3)) // min(4, 9, 6)
	assert.Equal(t, 9, hi(3)) // max(4, 9, 6)
	assert.Equal(t, 0, lo(0)) // min(1, 0, 0)
	assert.Equal(t, 1, hi(0)) // max(1, 0, 0)
}

func TestAnyAllFuncs(t *testing.T) {
	isEven := func(x int) bool { return x%2 == 0 }
	isPositive := func(x int) bool { return x > 0 }

	either := fn.AnyFuncs(isEven, isPositive)
	both := fn.AllFuncs(isEven, isPositive)

	assert.True(t, either(3))
	assert.True(t, either(-2))
	assert.False(t, either(-3))

	assert.True(t, both(2))
	assert.False(t, both(3))
	assert.False(t, both(-2))

	// identity elements
	assert.False(t, fn.AnyFuncs[int]()(0))
	assert.True(t, fn.AllFuncs[int]()(0))
}

func TestReduceFuncs(t *testing.T) {
	sub := func(a, b int) int { return a - b }

	g := fn.ReduceFuncs(sub, 100, inc, double)
	assert.Equal(t, 100-4-6, g(3))

	// zero operands yield the seed
	assert.Equal(t, 100, fn.ReduceFuncs[int](sub, 100)(3))
}

func TestReduceFuncs1(t *testing.T) {
	sub := func(a, b int) int { return a - b }

	g := fn.ReduceFuncs1(sub, double, inc)
	assert.Equal(t, double(3)-inc(3), g(3))

	// single operand is a transparent wrapper
	assert.Equal(t, double(3), fn.ReduceFuncs1(sub, double)(3))
}

func TestAggregateDoesNotShareState(t *testing.T) {
	calls := 0
	counting := func(x int) int { calls++; return x }

	g := fn.SumFuncs(counting, counting)
	assert.Equal(t, 6, g(3))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 6, g(3))
	assert.Equal(t, 4, calls)
}
