package bigz

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBitwiseIdentities(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("ior(x,y)+and(x,y) == x+y", prop.ForAll(
		func(x, y int64) bool {
			xi, yi := NewInt64(x), NewInt64(y)
			lhs := New().Add(New().Or(xi, yi), New().And(xi, yi))
			rhs := New().Add(xi, yi)
			return lhs.Cmp(rhs) == 0
		},
		gen.Int64Range(-1<<30, 1<<30),
		gen.Int64Range(-1<<30, 1<<30),
	))

	properties.Property("xor(x,y) == ior(x,y)-and(x,y)", prop.ForAll(
		func(x, y int64) bool {
			xi, yi := NewInt64(x), NewInt64(y)
			lhs := New().Xor(xi, yi)
			rhs := New().Sub(New().Or(xi, yi), New().And(xi, yi))
			return lhs.Cmp(rhs) == 0
		},
		gen.Int64Range(-1<<30, 1<<30),
		gen.Int64Range(-1<<30, 1<<30),
	))

	properties.Property("com(x) == -x-1", prop.ForAll(
		func(x int64) bool {
			xi := NewInt64(x)
			lhs := New().Com(xi)
			rhs := New().Sub(New().Neg(xi), NewInt64(1))
			return lhs.Cmp(rhs) == 0
		},
		gen.Int64Range(-1<<40, 1<<40),
	))

	properties.TestingRun(t)
}
