package bigz

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/ntheory"
	"bignum.mleku.dev/internal/powm"
	"bignum.mleku.dev/internal/xerrors"
)

// Gcd computes z := gcd(|x|,|y|) (always non-negative).
func (z *Int) Gcd(x, y *Int) *Int {
	n := x.sigLen()
	if yn := y.sigLen(); yn > n {
		n = yn
	}
	if n == 0 {
		z.size = 0
		return z
	}
	buf := make([]Word, n)
	gn := ntheory.Gcd(buf, x.limbs, x.sigLen(), y.limbs, y.sigLen())
	z.grow(gn)
	nat.Copy(z.limbs, buf, gn)
	z.normalize(gn, false)
	return z
}

// GcdWord computes gcd(|x|, y) as a single limb.
func GcdWord(x *Int, y Word) Word {
	if x.sigLen() <= 1 {
		var xv Word
		if x.sigLen() == 1 {
			xv = x.limbs[0]
		}
		return ntheory.Gcd1(xv, y)
	}
	g := New().Gcd(x, NewUint64(uint64(y)))
	if g.sigLen() == 0 {
		return 0
	}
	return g.limbs[0]
}

// GcdExt computes g := gcd(x,y) and Bezout coefficients a, b such that
// a*x + b*y = g.
func GcdExt(g, a, b, x, y *Int) {
	n := x.sigLen()
	if yn := y.sigLen(); yn > n {
		n = yn
	}
	n += 2
	gbuf := make([]Word, n)
	abuf := make([]Word, n)
	bbuf := make([]Word, n)
	var aSign, bSign int
	gn := ntheory.Gcdext(gbuf, &aSign, abuf, &bSign, bbuf, x.limbs, x.sigLen(), y.limbs, y.sigLen())

	g.grow(gn)
	nat.Copy(g.limbs, gbuf, gn)
	g.normalize(gn, false)

	an := nat.Strip(abuf, n)
	a.grow(an)
	nat.Copy(a.limbs, abuf, an)
	a.normalize(an, aSign < 0)

	bn := nat.Strip(bbuf, n)
	b.grow(bn)
	nat.Copy(b.limbs, bbuf, bn)
	b.normalize(bn, bSign < 0)
}

// Invert computes z such that x*z ≡ 1 (mod m), m odd, returning false
// (z cleared to 0) if gcd(x,m) != 1 — a recoverable domain error, not
// a process abort.
func (z *Int) Invert(x, m *Int) bool {
	mn := m.sigLen()
	xr := New()
	Mod(xr, x, m)
	buf := make([]Word, mn)
	ok := ntheory.Invert(buf, xr.limbs, xr.sigLen(), m.limbs, mn)
	if !ok {
		z.size = 0
		return false
	}
	n := nat.Strip(buf, mn)
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, false)
	return true
}

// Jacobi returns the Jacobi symbol (a/n).
func Jacobi(a, n *Int) int {
	return ntheory.Jacobi(a.limbs, a.sigLen(), n.limbs, n.sigLen())
}

// Kronecker returns the Kronecker symbol (a/n), generalizing Jacobi to
// even and negative n.
func Kronecker(a, n *Int) int {
	return ntheory.Kronecker(a.limbs, a.sigLen(), a.Sign(), n.limbs, n.sigLen(), n.Sign())
}

// Sqrt computes z := floor(sqrt(x)).
func (z *Int) Sqrt(x *Int) *Int { return z.Root(x, 2) }

// Root computes z := the k-th root of x truncated toward zero:
// floor(x^(1/k)) for x >= 0, and for negative x (odd k only) the
// negated root of |x|.
func (z *Int) Root(x *Int, k uint) *Int {
	if x.Sign() < 0 && k%2 == 0 {
		xerrors.Abort("bigz: Root requires a non-negative x for an even root")
	}
	buf := make([]Word, x.sigLen()+1)
	n := ntheory.Root(buf, x.limbs, x.sigLen(), k)
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, x.Sign() < 0 && k%2 == 1)
	return z
}

// RootRem computes z := the k-th root of x truncated toward zero (as
// Root) and r := x - z^k, which carries x's sign.
func RootRem(z, r, x *Int, k uint) {
	if x.Sign() < 0 && k%2 == 0 {
		xerrors.Abort("bigz: RootRem requires a non-negative x for an even root")
	}
	xn := x.sigLen()
	zbuf := make([]Word, xn+1)
	rbuf := make([]Word, xn+1)
	zn, rn := ntheory.RootRem(zbuf, rbuf, x.limbs, xn, k)
	z.grow(zn)
	nat.Copy(z.limbs, zbuf, zn)
	z.normalize(zn, x.Sign() < 0 && k%2 == 1)
	r.grow(rn)
	nat.Copy(r.limbs, rbuf, rn)
	r.normalize(rn, x.Sign() < 0)
}

// Sqrtm computes z such that z^2 ≡ x (mod p), p an odd prime. Returns
// false (z cleared) if x is a quadratic non-residue mod p.
func (z *Int) Sqrtm(x, p *Int) bool {
	pn := p.sigLen()
	buf := make([]Word, pn)
	ok := ntheory.Sqrtm(buf, x.limbs, x.sigLen(), p.limbs, pn)
	if !ok {
		z.size = 0
		return false
	}
	n := nat.Strip(buf, pn)
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, false)
	return true
}

// SqrtPQ computes z such that z^2 ≡ x (mod p*q), p and q distinct odd
// primes, via CRT composition of the two prime square roots.
func (z *Int) SqrtPQ(x, p, q *Int) bool {
	n := p.sigLen()
	if qn := q.sigLen(); qn > n {
		n = qn
	}
	buf := make([]Word, n)
	ok := ntheory.SqrtPQ(buf, x.limbs, x.sigLen(), p.limbs, p.sigLen(), q.limbs, q.sigLen())
	if !ok {
		z.size = 0
		return false
	}
	sn := nat.Strip(buf, n)
	z.grow(sn)
	nat.Copy(z.limbs, buf, sn)
	z.normalize(sn, false)
	return true
}

// Powm computes z := x^y mod m (x, y non-negative; m > 0).
func (z *Int) Powm(x, y, m *Int) *Int {
	mn := m.sigLen()
	buf := make([]Word, mn)
	powm.Powm(buf, x.limbs, x.sigLen(), y.limbs, y.sigLen(), m.limbs, mn)
	n := nat.Strip(buf, mn)
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, false)
	return z
}

// PowmConstTime computes z := x^y mod m using powm's fixed-window,
// constant-time interior — for exponents (typically private keys) that
// must not leak through timing.
func (z *Int) PowmConstTime(x, y, m *Int) *Int {
	mn := m.sigLen()
	buf := make([]Word, mn)
	powm.PowmConstTime(buf, x.limbs, x.sigLen(), y.limbs, y.sigLen(), m.limbs, mn)
	n := nat.Strip(buf, mn)
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, false)
	return z
}
