package bigz

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestLshIsMultiplyByPowerOfTwo(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("mul_2exp(x,k) == x*2^k", prop.ForAll(
		func(x int64, k uint8) bool {
			kk := uint(k % 64)
			xi := NewInt64(x)
			lhs := New().Lsh(xi, kk)
			pow2 := New().PowUi(NewInt64(2), uint64(kk))
			rhs := New().Mul(xi, pow2)
			return lhs.Cmp(rhs) == 0
		},
		gen.Int64Range(-1<<30, 1<<30),
		gen.UInt8Range(0, 63),
	))
	properties.TestingRun(t)
}

func TestQuoTwoExpTruncatesTowardZero(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("quo_2exp(x,k) == trunc(x/2^k)", prop.ForAll(
		func(x int64, k uint8) bool {
			kk := uint(k % 40)
			xi := NewInt64(x)
			got := New().QuoTwoExp(xi, kk)
			pow2 := New().PowUi(NewInt64(2), uint64(kk))
			want := New().Quo(xi, pow2)
			return got.Cmp(want) == 0
		},
		gen.Int64Range(-1<<30, 1<<30),
		gen.UInt8Range(0, 39),
	))
	properties.TestingRun(t)
}

func TestDivTwoExpFloorsForNegatives(t *testing.T) {
	// floor(-7/2) = -4
	got := New().DivTwoExp(NewInt64(-7), 1)
	if got.CmpInt64(-4) != 0 {
		t.Fatalf("DivTwoExp(-7,1) = %s, want -4", got.Text(10))
	}
	// floor(-1/2) = -1
	got = New().DivTwoExp(NewInt64(-1), 1)
	if got.CmpInt64(-1) != 0 {
		t.Fatalf("DivTwoExp(-1,1) = %s, want -1", got.Text(10))
	}
	// non-negative matches QuoTwoExp
	got = New().DivTwoExp(NewInt64(7), 1)
	if got.CmpInt64(3) != 0 {
		t.Fatalf("DivTwoExp(7,1) = %s, want 3", got.Text(10))
	}
}

func TestModTwoExpAlwaysNonNegative(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("0 <= mod_2exp(x,k) < 2^k", prop.ForAll(
		func(x int64, k uint8) bool {
			kk := uint(k%30) + 1
			xi := NewInt64(x)
			got := New().ModTwoExp(xi, kk)
			if got.Sign() < 0 {
				return false
			}
			pow2 := New().PowUi(NewInt64(2), uint64(kk))
			return got.CmpAbs(pow2) < 0
		},
		gen.Int64Range(-1<<30, 1<<30),
		gen.UInt8Range(0, 29),
	))
	properties.TestingRun(t)
}
