package bigz

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/xerrors"
)

// quoRemAbs computes q,r (both non-negative) such that
// |x| = q*|y| + r, 0 <= r < |y|. Aborts on division by zero.
func quoRemAbs(qz, rz *Int, x, y *Int) {
	xn, yn := x.sigLen(), y.sigLen()
	if yn == 0 {
		xerrors.Abort("bigz: division by zero")
	}
	if xn < yn {
		rz.grow(xn)
		nat.Copy(rz.limbs, x.limbs, xn)
		rz.normalize(xn, false)
		qz.size = 0
		return
	}
	if yn == 1 {
		qbuf := make([]Word, xn)
		r := nat.DivModSmall(qbuf, x.limbs, xn, y.limbs[0])
		qn := nat.Strip(qbuf, xn)
		qz.grow(qn)
		nat.Copy(qz.limbs, qbuf, qn)
		qz.normalize(qn, false)
		rz.grow(1)
		rz.limbs[0] = r
		rz.normalize(1, false)
		return
	}
	dnorm := make([]Word, yn)
	div := nat.NewDivisor(dnorm, y.limbs, yn)
	qn := xn - yn + 1
	qbuf := make([]Word, qn)
	rbuf := make([]Word, yn)
	scratch := make([]Word, xn+1)
	nat.DivModKnuth(qbuf, rbuf, x.limbs, xn, div, scratch)
	qn = nat.Strip(qbuf, qn)
	qz.grow(qn)
	nat.Copy(qz.limbs, qbuf, qn)
	qz.normalize(qn, false)
	rn := nat.Strip(rbuf, yn)
	rz.grow(rn)
	nat.Copy(rz.limbs, rbuf, rn)
	rz.normalize(rn, false)
}

// QuoRem computes truncating (T-)division: q := trunc(x/y),
// r := x - q*y. The quotient truncates toward zero; the remainder
// carries the numerator's sign.
func QuoRem(q, r, x, y *Int) (*Int, *Int) {
	xNeg, yNeg := x.Sign() < 0, y.Sign() < 0
	quoRemAbs(q, r, x, y)
	applySign(q, xNeg != yNeg)
	applySign(r, xNeg)
	return q, r
}

// DivMod computes Euclidean (E-)division: the remainder is always
// non-negative (0 <= r < |y|), with the quotient adjusted by at most 1
// from the truncating quotient to compensate.
func DivMod(q, r, x, y *Int) (*Int, *Int) {
	xNeg := x.Sign() < 0
	yNeg := y.Sign() < 0
	yAbs := New().Abs(y)
	quoRemAbs(q, r, x, y)
	if r.Sign() == 0 {
		applySign(q, xNeg != yNeg)
		return q, r
	}
	if !xNeg {
		applySign(q, yNeg)
		return q, r
	}
	// xNeg, r != 0: r_E = |y| - r; q_E = q+1, sign flipped iff y > 0.
	r.Sub(yAbs, r)
	q.AddWord(q, 1)
	applySign(q, !yNeg)
	return q, r
}

// Mod computes z := x mod y, the non-negative Euclidean remainder.
func Mod(z, x, y *Int) *Int {
	q := New()
	DivMod(q, z, x, y)
	return z
}

// Quo computes z := trunc(x/y).
func (z *Int) Quo(x, y *Int) *Int {
	r := New()
	QuoRem(z, r, x, y)
	return z
}

// Rem computes z := x - trunc(x/y)*y.
func (z *Int) Rem(x, y *Int) *Int {
	q := New()
	QuoRem(q, z, x, y)
	return z
}

// Div computes z := floor-toward-Euclidean quotient of x by y (see
// DivMod).
func (z *Int) Div(x, y *Int) *Int {
	r := New()
	DivMod(z, r, x, y)
	return z
}

// DivRound computes z := round(x/y), banker's rounding (ties round to
// even; a tie is only possible when y is even, since 2r=y forces y
// even).
func (z *Int) DivRound(x, y *Int) *Int {
	qt, rt := New(), New()
	QuoRem(qt, rt, x, y)
	twiceR := New().MulWord(rt, 2)
	twiceR.size = twiceR.sigLen() // force non-negative magnitude
	yAbs := New().Abs(y)
	cmp := twiceR.CmpAbs(yAbs)

	roundUp := false
	switch {
	case cmp > 0:
		roundUp = true
	case cmp == 0:
		if qt.sigLen() > 0 && qt.limbs[0]&1 == 1 {
			roundUp = true
		}
	}

	z.Set(qt)
	if roundUp {
		if z.Sign() >= 0 {
			z.AddWord(z, 1)
		} else {
			z.SubWord(z, 1)
		}
	}
	return z
}

// DivExact computes z := x/y assuming y exactly divides x. A
// PROGRAMMING error (process abort) if it doesn't — the distinction
// between plain truncating division and the exact-division family.
func (z *Int) DivExact(x, y *Int) *Int {
	yn := y.sigLen()
	if yn == 0 {
		xerrors.Abort("bigz: DivExact division by zero")
	}
	xn := x.sigLen()
	if xn == 0 {
		z.size = 0
		return z
	}
	neg := x.Sign() != y.Sign()
	if yn == 1 && y.limbs[0]&1 == 1 {
		buf := make([]Word, xn)
		nat.ExactDiv1(buf, x.limbs, xn, y.limbs[0])
		n := nat.Strip(buf, xn)
		z.grow(n)
		nat.Copy(z.limbs, buf, n)
		z.normalize(n, neg)
		return z
	}
	q, r := New(), New()
	quoRemAbs(q, r, x, y)
	if r.Sign() != 0 {
		xerrors.Abort("bigz: DivExact: y does not evenly divide x")
	}
	z.Set(q)
	applySign(z, neg)
	return z
}

// Divisible reports whether y divides x exactly.
func Divisible(x, y *Int) bool {
	if y.Sign() == 0 {
		return x.Sign() == 0
	}
	q, r := New(), New()
	quoRemAbs(q, r, x, y)
	return r.Sign() == 0
}

// DivisibleBy2Exp reports whether 2^k divides x.
func DivisibleBy2Exp(x *Int, k uint) bool {
	if x.Sign() == 0 {
		return true
	}
	return uint(nat.Ctz(x.limbs, x.sigLen())) >= k
}
