package ntheory

import "bignum.mleku.dev/internal/nat"

// signedNat is a minimal signed magnitude used only to carry the
// Bezout cofactors through Gcdext's right-shift binary algorithm
// (Knuth's Algorithm L): a sign bit plus an unsigned limb vector, with
// just enough arithmetic (add, sub, halve-after-conditional-add) to
// drive the cofactor recurrence. It is not exported; callers get back
// plain (sign, limbs) pairs.
type signedNat struct {
	sign int // -1, 0 or +1
	mag  []Word
	n    int // capacity of mag
}

func newSignedNat(cap int) *signedNat {
	return &signedNat{mag: make([]Word, cap), n: cap}
}

func (s *signedNat) setWord(v Word) {
	nat.Zero(s.mag, s.n)
	s.mag[0] = v
	if v == 0 {
		s.sign = 0
	} else {
		s.sign = 1
	}
}

func (s *signedNat) isOdd() bool {
	return s.mag[0]&1 == 1
}

// halve divides s by 2 (exact, since callers only call this once s is
// even), shifting its magnitude right by one bit.
func (s *signedNat) halve() {
	nat.Rshift(s.mag, s.mag, s.n, 1)
	if nat.IsZero(s.mag, s.n) {
		s.sign = 0
	}
}

// add computes s := s + sign*mag (signed addition via magnitude
// compare-and-subtract when signs differ).
func (s *signedNat) add(sign int, mag []Word) {
	if s.sign == 0 {
		s.sign = sign
		nat.Copy(s.mag, mag, s.n)
		return
	}
	if sign == 0 {
		return
	}
	if s.sign == sign {
		nat.AddN(s.mag, s.mag, mag, s.n)
		return
	}
	if nat.CmpVar(s.mag, mag) >= 0 {
		zn, _ := nat.SubVar(s.mag, s.mag, s.n, mag, s.n)
		nat.Zero(s.mag[zn:], s.n-zn)
	} else {
		t := make([]Word, s.n)
		zn, _ := nat.SubVar(t, mag, s.n, s.mag, s.n)
		nat.Zero(t[zn:], s.n-zn)
		nat.Copy(s.mag, t, s.n)
		s.sign = sign
	}
	if nat.IsZero(s.mag, s.n) {
		s.sign = 0
	}
}

// sub computes s := s - other (signed).
func (s *signedNat) sub(other *signedNat) {
	s.add(-other.sign, other.mag)
}

// Gcdext computes g := gcd(x,y) and Bezout coefficients a,b with
// a*x + b*y = g, via Knuth's right-shift binary extended GCD
// (Algorithm L / ex. 4.5.2.39): track cofactors (A,B) for u and (C,D)
// for v, halving each pair under a conditional +y/-x adjustment
// whenever they're odd so the halving stays exact, until u reaches 0.
// Returns the significant length of g, and the cofactor (C,D) signs.
func Gcdext(g []Word, aSign *int, a []Word, bSign *int, b []Word, x []Word, xn int, y []Word, yn int) int {
	xn = nat.Strip(x, xn)
	yn = nat.Strip(y, yn)
	n := xn
	if yn > n {
		n = yn
	}
	n++

	u := make([]Word, n)
	v := make([]Word, n)
	nat.Copy(u, x, xn)
	nat.Copy(v, y, yn)
	xx := make([]Word, n)
	yy := make([]Word, n)
	nat.Copy(xx, x, xn)
	nat.Copy(yy, y, yn)

	// The exact halvings below need x or y odd: strip the common power
	// of two 2^k here and shift it back into g at the end.
	k := 0
	if xn > 0 && yn > 0 {
		for (u[0]|v[0])&1 == 0 {
			nat.Rshift(u, u, n, 1)
			nat.Rshift(v, v, n, 1)
			k++
		}
		nat.Copy(xx, u, n)
		nat.Copy(yy, v, n)
	}

	A, B := newSignedNat(n), newSignedNat(n)
	C, D := newSignedNat(n), newSignedNat(n)
	A.setWord(1)
	D.setWord(1)
	if yn == 0 {
		// gcd(x,0) = x = 1*x + 0*y: start from v = x so the loop is skipped.
		u, v = v, u
		A, B, C, D = C, D, A, B
	}

	for !nat.IsZero(u, n) {
		for u[0]&1 == 0 && !nat.IsZero(u, n) {
			nat.Rshift(u, u, n, 1)
			if A.isOdd() || B.isOdd() {
				A.add(1, yy)
				B.add(-1, xx)
			}
			A.halve()
			B.halve()
		}
		for v[0]&1 == 0 && !nat.IsZero(v, n) {
			nat.Rshift(v, v, n, 1)
			if C.isOdd() || D.isOdd() {
				C.add(1, yy)
				D.add(-1, xx)
			}
			C.halve()
			D.halve()
		}
		if nat.CmpVar(u, v) >= 0 {
			zn, _ := nat.SubVar(u, u, n, v, n)
			nat.Zero(u[zn:], n-zn)
			A.sub(C)
			B.sub(D)
		} else {
			zn, _ := nat.SubVar(v, v, n, u, n)
			nat.Zero(v[zn:], n-zn)
			C.sub(A)
			D.sub(B)
		}
	}

	*aSign, *bSign = C.sign, D.sign
	nat.Copy(a, C.mag, n)
	nat.Copy(b, D.mag, n)
	for ; k > 0; k-- {
		nat.Lshift(v, v, n, 1)
	}
	gn := nat.Strip(v, n)
	nat.Copy(g, v, gn)
	return gn
}
