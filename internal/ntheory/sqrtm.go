package ntheory

import (
	"bignum.mleku.dev/internal/config"
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/powm"
)

// powmod computes base^exp mod m via the variable-time sliding-window
// powm, operating on trimmed dynamic slices.
func powmod(base, exp, m []Word) []Word {
	mn := len(m)
	z := make([]Word, mn)
	powm.Powm(z, base, len(base), exp, len(exp), m, mn)
	return trim(z)
}

// Sqrtm computes a square root of x modulo prime p, writing it into z
// and returning true, or returns false (clearing z) if x is not a
// quadratic residue mod p. Dispatches on p mod 8 across three cases
// (p ≡ 3 mod 4, p ≡ 5 mod 8, general Tonelli-Shanks), verifying every
// candidate by squaring before returning it.
func Sqrtm(z []Word, x []Word, xn int, p []Word, pn int) bool {
	xn = nat.Strip(x, xn)
	pn = nat.Strip(p, pn)
	xv := remBig(append([]Word(nil), x[:xn]...), p[:pn])
	pv := trim(append([]Word(nil), p[:pn]...))

	if isZeroVec(xv) {
		nat.Zero(z, 1)
		return true
	}

	r8 := pv[0] & 7
	var cand []Word

	switch {
	case r8&3 == 3: // p ≡ 3 (mod 4)
		e := addVec(pv, []Word{1})
		e = divSmallVec(e, 4)
		cand = powmod(xv, e, pv)

	case r8 == 5: // p ≡ 5 (mod 8)
		twoX := mulmod(xv, []Word{2}, pv)
		e := subAbsUint(pv, 5)
		e = divSmallVec(e, 8)
		a := powmod(twoX, e, pv)
		a2 := mulmod(a, a, pv)
		t := submod(mulmod(a2, twoX, pv), []Word{1}, pv)
		cand = mulmod(mulmod(t, xv, pv), a, pv)

	default: // general odd prime: Tonelli-Shanks
		cand = tonelliShanks(xv, pv)
		if cand == nil {
			nat.Zero(z, 1)
			return false
		}
	}

	check := mulmod(cand, cand, pv)
	if !eqVec(check, xv) {
		nat.Zero(z, 1)
		return false
	}
	zn := len(cand)
	nat.Zero(z, zn)
	nat.Copy(z, cand, zn)
	return true
}

func subAbsUint(x []Word, y Word) []Word {
	d, sign := subAbs(x, []Word{y})
	if sign < 0 {
		panic("ntheory: subAbsUint underflow")
	}
	return d
}

func eqVec(a, b []Word) bool {
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		return false
	}
	return nat.Cmp(a, b) == 0
}

// tonelliShanks returns a square root of xv mod an odd prime pv not
// covered by the 3-mod-4 or 5-mod-8 fast paths, or nil if xv is a
// non-residue. Witness search increments n from 2 while Jacobi(n,pv)
// != -1, capped at config.Default.TonelliShanksWitnessCap attempts so
// that an adversarial non-prime pv with no small non-residue fails
// rather than looping forever.
func tonelliShanks(xv, pv []Word) []Word {
	pm1 := subAbsUint(pv, 1)
	s := 0
	q := trim(append([]Word(nil), pm1...))
	for len(q) > 0 && q[0]&1 == 0 {
		shiftRightBy(q, len(q), 1)
		q = trim(q)
		s++
	}

	var witness []Word
	tries := config.Default.TonelliShanksWitnessCap
	for n := Word(2); tries > 0; n, tries = n+1, tries-1 {
		cand := []Word{n}
		if Jacobi(cand, 1, pv, len(pv)) == -1 {
			witness = cand
			break
		}
	}
	if witness == nil {
		return nil
	}

	c := powmod(witness, q, pv)
	qp1over2 := divSmallVec(addVec(q, []Word{1}), 2)
	r := powmod(xv, qp1over2, pv)
	t := powmod(xv, q, pv)
	m := s

	for {
		if isOneVec(t) {
			break
		}
		i := 0
		tt := trim(append([]Word(nil), t...))
		for !isOneVec(tt) {
			tt = mulmod(tt, tt, pv)
			i++
			if i >= m {
				return nil
			}
		}
		b := powmod(c, powOfTwo(m-i-1), pv)
		r = mulmod(r, b, pv)
		c = mulmod(b, b, pv)
		t = mulmod(t, c, pv)
		m = i
	}
	return r
}

// powOfTwo returns the exponent vector representing 2^e, for e >= 0.
func powOfTwo(e int) []Word {
	n := e/64 + 1
	buf := make([]Word, n)
	nat.Setbit(buf, n, e)
	return trim(buf)
}

// SqrtPQ computes a square root of x modulo the product of distinct
// odd primes p and q via CRT composition of Sqrtm(x,p) and Sqrtm(x,q),
// using Bezout coefficients from Gcdext.
func SqrtPQ(z []Word, x []Word, xn int, p []Word, pn int, q []Word, qn int) bool {
	rp := make([]Word, pn)
	if !Sqrtm(rp, x, xn, p, pn) {
		return false
	}
	rq := make([]Word, qn)
	if !Sqrtm(rq, x, xn, q, qn) {
		return false
	}

	n := pn
	if qn > n {
		n = qn
	}
	n++
	g := make([]Word, n)
	var aSign, bSign int
	a := make([]Word, n)
	b := make([]Word, n)
	Gcdext(g, &aSign, a, &bSign, b, p, pn, q, qn)

	// z = rq*a*p + rp*b*q  (mod p*q), with a,b the signed Bezout
	// coefficients of p,q (a*p+b*q=1); each term carries its cofactor's
	// sign through to the final signed sum before reduction mod p*q.
	pv := trim(append([]Word(nil), p[:pn]...))
	qv := trim(append([]Word(nil), q[:qn]...))
	pq := mulVec(pv, qv)

	term1 := mulVec(mulVec(trim(rq), trim(a)), pv)
	term2 := mulVec(mulVec(trim(rp), trim(b)), qv)

	sum, sign := addSigned(term1, aSign, term2, bSign)
	result := reduceSignedMod(sum, sign, pq)

	zn := len(result)
	nat.Zero(z, zn)
	nat.Copy(z, result, zn)
	return true
}

// addSigned combines two non-negative magnitudes under the given signs,
// returning the resulting non-negative magnitude and its sign.
func addSigned(a []Word, aSign int, b []Word, bSign int) ([]Word, int) {
	if aSign == bSign {
		return addVec(a, b), aSign
	}
	d, s := subAbs(a, b)
	return d, s * aSign
}

// reduceSignedMod reduces a signed magnitude into the canonical
// non-negative residue modulo m.
func reduceSignedMod(sum []Word, sign int, m []Word) []Word {
	r := remBig(sum, m)
	if sign < 0 && !isZeroVec(r) {
		r, _ = subAbs(m, r)
	}
	return r
}
