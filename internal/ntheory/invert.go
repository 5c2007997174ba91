package ntheory

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/powm"
)

// Invert computes z such that x*z ≡ 1 (mod y), y odd, via Penk's
// right-shift modular inverse: the same right-shift binary skeleton as
// Gcdext specialized to a single cofactor pair, keeping only the
// "odd-halving" trick for the even modulus side. Returns false (and
// leaves z undefined) if gcd(x,y) != 1.
func Invert(z []Word, x []Word, xn int, y []Word, yn int) bool {
	yn = nat.Strip(y, yn)
	if yn == 0 || y[0]&1 == 0 {
		panic("ntheory: Invert requires an odd nonzero modulus")
	}
	n := yn + 1
	xn = nat.Strip(x, xn)
	if xn > n {
		n = xn + 1
	}

	u := make([]Word, n)
	v := make([]Word, n)
	nat.Copy(u, x, xn)
	nat.Copy(v, y, yn)
	yy := make([]Word, n)
	nat.Copy(yy, y, yn)

	A := newSignedNat(n) // tracks A with A*x ≡ u (mod y)
	C := newSignedNat(n) // tracks C with C*x ≡ v (mod y)
	A.setWord(1)
	C.setWord(0)

	for !nat.IsZero(u, n) {
		for u[0]&1 == 0 && !nat.IsZero(u, n) {
			nat.Rshift(u, u, n, 1)
			if A.isOdd() {
				A.add(1, yy)
			}
			A.halve()
		}
		for v[0]&1 == 0 && !nat.IsZero(v, n) {
			nat.Rshift(v, v, n, 1)
			if C.isOdd() {
				C.add(1, yy)
			}
			C.halve()
		}
		if nat.CmpVar(u, v) >= 0 {
			zn, _ := nat.SubVar(u, u, n, v, n)
			nat.Zero(u[zn:], n-zn)
			A.sub(C)
		} else {
			zn, _ := nat.SubVar(v, v, n, u, n)
			nat.Zero(v[zn:], n-zn)
			C.sub(A)
		}
	}

	if !(nat.Strip(v, n) == 1 && v[0] == 1) {
		return false
	}

	// C is the inverse, reduced into [0, y).
	reduceModY(C, yy, n)
	nat.Zero(z, n-1)
	nat.Copy(z, C.mag, n)
	return true
}

// reduceModY normalizes a signed cofactor into the canonical
// non-negative residue modulo y (1 or 2 corrections suffice, since the
// algorithm keeps |C| bounded by y throughout).
func reduceModY(c *signedNat, yy []Word, n int) {
	if c.sign < 0 {
		c.add(1, yy)
	}
	for nat.CmpVar(c.mag, yy) >= 0 {
		zn, _ := nat.SubVar(c.mag, c.mag, n, yy, n)
		nat.Zero(c.mag[zn:], n-zn)
	}
}

// SecInvert computes x^-1 mod m via Fermat's little theorem (x^(m-2)
// mod m) using the constant-time fixed-window powm, for odd prime-ish
// moduli where the exponent-based route is preferable to branching
// binary gcd code. m must be odd; the function leaks nothing beyond
// m's bit length.
func SecInvert(z []Word, x []Word, xn int, m []Word, mn int) {
	mn = nat.Strip(m, mn)
	e := make([]Word, mn)
	nat.Copy(e, m, mn)
	borrow := nat.Sub1(e, e, mn, 2)
	_ = borrow
	powm.PowmConstTime(z, x, xn, e, mn, m, mn)
}
