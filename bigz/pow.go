package bigz

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
	"bignum.mleku.dev/internal/xerrors"
)

// PowUi computes z := x^y, y a plain machine exponent, via
// left-to-right square-and-multiply. A power-of-two exponent falls out
// as a special case of the same loop for free: its single set bit
// drives exactly one multiply, every other step squares only.
func (z *Int) PowUi(x *Int, y uint64) *Int {
	if y == 0 {
		z.SetUint64(1)
		return z
	}
	bits := word.BitLen(Word(y))
	acc := NewInt64(1)
	base := x.Clone()
	for i := bits - 1; i >= 0; i-- {
		acc.Sqr(acc)
		if (y>>uint(i))&1 == 1 {
			acc.Mul(acc, base)
		}
	}
	z.Set(acc)
	return z
}

// Factorial computes z := n!.
func (z *Int) Factorial(n uint64) *Int {
	acc := NewInt64(1)
	for i := uint64(2); i <= n; i++ {
		acc.MulWord(acc, Word(i))
	}
	z.Set(acc)
	return z
}

// MultiFactorial computes z := n!! ... (k steps): n*(n-k)*(n-2k)*...
// down to the last positive term.
func (z *Int) MultiFactorial(n, k uint64) *Int {
	acc := NewInt64(1)
	if k == 0 {
		xerrors.Abort("bigz: MultiFactorial requires k >= 1")
	}
	for i := n; i > 0; {
		acc.MulWord(acc, Word(i))
		if i <= k {
			break
		}
		i -= k
	}
	z.Set(acc)
	return z
}

// Binomial computes z := C(n,k) via the iterative product-of-fractions
// construction, each step an exact multiply-then-divide.
func (z *Int) Binomial(n, k uint64) *Int {
	if k > n {
		z.size = 0
		return z
	}
	if k > n-k {
		k = n - k
	}
	acc := NewInt64(1)
	for i := uint64(0); i < k; i++ {
		acc.MulWord(acc, Word(n-i))
		acc.DivExact(acc, NewUint64(i+1))
	}
	z.Set(acc)
	return z
}

// Fib2 computes F(n) and F(n+1) simultaneously via fast doubling,
// walking n's bits from the top: F(2k) = F(k)*(2F(k+1)-F(k)),
// F(2k+1) = F(k)^2 + F(k+1)^2.
func Fib2(n uint64) (fn, fn1 *Int) {
	a := NewInt64(0)
	b := NewInt64(1)
	if n == 0 {
		return a, b
	}
	bits := word.BitLen(Word(n))
	for i := bits - 1; i >= 0; i-- {
		t1 := New().MulWord(b, 2)
		t1.Sub(t1, a)
		c := New().Mul(a, t1)
		a2 := New().Sqr(a)
		b2 := New().Sqr(b)
		d := New().Add(a2, b2)
		a, b = c, d
		if (n>>uint(i))&1 == 1 {
			sum := New().Add(a, b)
			a, b = b, sum
		}
	}
	return a, b
}

// Fib computes z := F(n).
func (z *Int) Fib(n uint64) *Int {
	fn, _ := Fib2(n)
	z.Set(fn)
	return z
}

// Lucas computes z := L(n) = 2F(n+1) - F(n).
func (z *Int) Lucas(n uint64) *Int {
	fn, fn1 := Fib2(n)
	t := New().MulWord(fn1, 2)
	t.Sub(t, fn)
	z.Set(t)
	return z
}

// Remove divides x by y as many times as y exactly divides, writing
// the final quotient into z and returning the multiplicity. When |y| is
// a power of two this reduces to a ctz(x)-based fast path.
func (z *Int) Remove(x, y *Int) (mult uint64) {
	yNeg := y.Sign() < 0
	absY := New().Abs(y)
	if absY.Sign() == 0 {
		xerrors.Abort("bigz: Remove by zero")
	}
	if absY.sigLen() == 1 && absY.limbs[0] == 1 {
		z.Set(x)
		return 0
	}
	if x.Sign() == 0 {
		z.size = 0
		return 0
	}
	if absY.sigLen() == 1 && absY.limbs[0]&(absY.limbs[0]-1) == 0 {
		k := uint64(word.TrailingZeros(absY.limbs[0]))
		ctz := uint64(nat.Ctz(x.limbs, x.sigLen()))
		mult = ctz / k
		z.QuoTwoExp(x, uint(mult*k))
		applySign(z, yNeg && mult%2 == 1)
		return mult
	}
	cur := x.Clone()
	q, r := New(), New()
	for {
		quoRemAbs(q, r, cur, absY)
		if r.Sign() != 0 {
			break
		}
		applySign(q, cur.Sign() < 0)
		cur.Set(q)
		mult++
	}
	z.Set(cur)
	applySign(z, yNeg && mult%2 == 1)
	return mult
}
