package bigz

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// S1: 2^128-1 divided by 2^64+1 through the Knuth division path. The
// division is exact ((2^64+1)*(2^64-1) = 2^128-1), so the single
// quotient digit is B-1 = 2^64-1 and the remainder is 0.
func TestDivisionEdgeCaseS1(t *testing.T) {
	num := New()
	if ok := num.SetString("340282366920938463463374607431768211455", 10); !ok {
		t.Fatal("bad numerator literal")
	}
	den := New()
	if ok := den.SetString("18446744073709551617", 10); !ok {
		t.Fatal("bad denominator literal")
	}
	q, r := New(), New()
	QuoRem(q, r, num, den)
	if q.Text(10) != "18446744073709551615" {
		t.Fatalf("quotient = %s, want 18446744073709551615", q.Text(10))
	}
	if r.Text(10) != "0" {
		t.Fatalf("remainder = %s, want 0", r.Text(10))
	}
}

func TestQuoRemIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("x == q*d+r, |r|<|d|, sign(r)=sign(x)", prop.ForAll(
		func(x, d int64) bool {
			if d == 0 {
				d = 1
			}
			xi, di := NewInt64(x), NewInt64(d)
			q, r := New(), New()
			QuoRem(q, r, xi, di)

			recon := New().Add(New().Mul(q, di), r)
			if recon.Cmp(xi) != 0 {
				return false
			}
			if r.CmpAbs(di) >= 0 {
				return false
			}
			if r.Sign() != 0 && r.Sign() != xi.Sign() {
				return false
			}
			return true
		},
		gen.Int64Range(-1<<40, 1<<40),
		gen.Int64Range(-1<<40, 1<<40),
	))
	properties.TestingRun(t)
}

func TestDivModNonNegativeRemainder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("0 <= r < |d|", prop.ForAll(
		func(x, d int64) bool {
			if d == 0 {
				d = 1
			}
			xi, di := NewInt64(x), NewInt64(d)
			q, r := New(), New()
			DivMod(q, r, xi, di)

			recon := New().Add(New().Mul(q, di), r)
			if recon.Cmp(xi) != 0 {
				return false
			}
			if r.Sign() < 0 {
				return false
			}
			return r.CmpAbs(di) < 0
		},
		gen.Int64Range(-1<<40, 1<<40),
		gen.Int64Range(-1<<40, 1<<40),
	))
	properties.TestingRun(t)
}

func TestDivExactReconstructsExactly(t *testing.T) {
	x := NewInt64(123456)
	y := NewInt64(24)
	prod := New().Mul(x, y)
	got := New().DivExact(prod, y)
	if got.Cmp(x) != 0 {
		t.Fatalf("DivExact round trip failed: got %s want %s", got.Text(10), x.Text(10))
	}
}

func TestDivRoundTiesToEven(t *testing.T) {
	// 5/2 = 2.5 -> rounds to 2 (even); 7/2 = 3.5 -> rounds to 4 (even).
	if got := New().DivRound(NewInt64(5), NewInt64(2)); got.CmpInt64(2) != 0 {
		t.Fatalf("DivRound(5,2) = %s, want 2", got.Text(10))
	}
	if got := New().DivRound(NewInt64(7), NewInt64(2)); got.CmpInt64(4) != 0 {
		t.Fatalf("DivRound(7,2) = %s, want 4", got.Text(10))
	}
	if got := New().DivRound(NewInt64(-5), NewInt64(2)); got.CmpInt64(-2) != 0 {
		t.Fatalf("DivRound(-5,2) = %s, want -2", got.Text(10))
	}
}

func TestDivisible(t *testing.T) {
	if !Divisible(NewInt64(144), NewInt64(12)) {
		t.Fatal("144 should be divisible by 12")
	}
	if Divisible(NewInt64(145), NewInt64(12)) {
		t.Fatal("145 should not be divisible by 12")
	}
}
