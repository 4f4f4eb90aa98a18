package fn_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/func_ive_go/fn"

	"github.com/stretchr/testify/assert"
)

func TestStar2(t *testing.T) {
	join := fn.Star2(func(a, b string) string { return a + "-" + b })
	assert.Equal(t, "a-b", join(fn.NewT2("a", "b")))
}

func TestStar3(t *testing.T) {
	clamp := fn.Star3(func(lo, hi, x int) int { return max(lo, min(hi, x)) })
	assert.Equal(t, 5, clamp(fn.NewT3(0, 10, 5)))
	assert.Equal(t, 10, clamp(fn.NewT3(0, 10, 42)))
}

func TestUnstar2InvertsStar2(t *testing.T) {
	add := func(a, b int) int { return a + b }
	assert.Equal(t, 7, fn.Unstar2(fn.Star2(add))(3, 4))
}

func TestStar2InPipeline(t *testing.T) {
	// split produces an aggregate, Star2 feeds it to a two-argument function
	split := func(s string) fn.T2[string, string] {
		head, tail, _ := strings.Cut(s, ":")
		return fn.NewT2(head, tail)
	}
	g := fn.Pipe(split, fn.Star2(func(k, v string) string { return v + "=" + k }))
	assert.Equal(t, "1=a", g("a:1"))
}

func TestTupleAccessors(t *testing.T) {
	p := fn.NewT2(1, "x")
	assert.Equal(t, 1, p.Fst())
	assert.Equal(t, "x", p.Snd())

	q := fn.NewT3(1, "x", true)
	assert.Equal(t, 1, q.Fst())
	assert.Equal(t, "x", q.Snd())
	assert.True(t, q.Trd())
}

func TestCurry2(t *testing.T) {
	add := func(a, b int) int { return a + b }
	add3 := fn.Curry2(add)(3)
	assert.Equal(t, 7, add3(4))

	assert.Equal(t, add(3, 4), fn.Uncurry2(fn.Curry2(add))(3, 4))
}

func TestPartial(t *testing.T) {
	hasGoPrefix := fn.Partial2(strings.HasPrefix, "golang")
	assert.True(t, hasGoPrefix("go"))
	assert.False(t, hasGoPrefix("rust"))

	splitCSV := fn.Partial3(strings.SplitN, "a,b,c")
	assert.Equal(t, []string{"a", "b,c"}, splitCSV(",", 2))
}
