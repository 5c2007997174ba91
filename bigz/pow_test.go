package bigz

import "testing"

func TestFactorial(t *testing.T) {
	cases := map[uint64]string{
		0:  "1",
		1:  "1",
		5:  "120",
		10: "3628800",
		20: "2432902008176640000",
	}
	for n, want := range cases {
		got := New().Factorial(n)
		if got.Text(10) != want {
			t.Fatalf("%d! = %s, want %s", n, got.Text(10), want)
		}
	}
}

func TestBinomial(t *testing.T) {
	if got := New().Binomial(5, 2); got.CmpInt64(10) != 0 {
		t.Fatalf("C(5,2) = %s, want 10", got.Text(10))
	}
	if got := New().Binomial(10, 0); got.CmpInt64(1) != 0 {
		t.Fatalf("C(10,0) = %s, want 1", got.Text(10))
	}
	if got := New().Binomial(10, 11); got.Sign() != 0 {
		t.Fatalf("C(10,11) = %s, want 0", got.Text(10))
	}
}

func TestFibDoublingIdentity(t *testing.T) {
	// F(2k) = F(k) * (2F(k+1) - F(k))
	for k := uint64(1); k < 40; k++ {
		fk, fk1 := Fib2(k)
		lhs := New().Fib(2 * k)
		t1 := New().MulWord(fk1, 2)
		t1.Sub(t1, fk)
		rhs := New().Mul(fk, t1)
		if lhs.Cmp(rhs) != 0 {
			t.Fatalf("doubling identity failed at k=%d: F(2k)=%s, rhs=%s", k, lhs.Text(10), rhs.Text(10))
		}
	}
}

func TestFibSmallValues(t *testing.T) {
	cases := map[uint64]int64{0: 0, 1: 1, 2: 1, 3: 2, 4: 3, 5: 5, 10: 55}
	for n, want := range cases {
		if got := New().Fib(n); got.CmpInt64(want) != 0 {
			t.Fatalf("F(%d) = %s, want %d", n, got.Text(10), want)
		}
	}
}

func TestLucasSmallValues(t *testing.T) {
	cases := map[uint64]int64{0: 2, 1: 1, 2: 3, 3: 4, 4: 7, 5: 11}
	for n, want := range cases {
		if got := New().Lucas(n); got.CmpInt64(want) != 0 {
			t.Fatalf("L(%d) = %s, want %d", n, got.Text(10), want)
		}
	}
}

func TestRemovePowerOfTwoFastPath(t *testing.T) {
	x := NewInt64(96) // 2^5 * 3
	z := New()
	mult := z.Remove(x, NewInt64(2))
	if mult != 5 {
		t.Fatalf("Remove(96,2) multiplicity = %d, want 5", mult)
	}
	if z.CmpInt64(3) != 0 {
		t.Fatalf("Remove(96,2) quotient = %s, want 3", z.Text(10))
	}
}

func TestRemoveGeneralPath(t *testing.T) {
	x := NewInt64(375) // 3 * 5^3
	z := New()
	mult := z.Remove(x, NewInt64(5))
	if mult != 3 {
		t.Fatalf("Remove(375,5) multiplicity = %d, want 3", mult)
	}
	if z.CmpInt64(3) != 0 {
		t.Fatalf("Remove(375,5) quotient = %s, want 3", z.Text(10))
	}
}
