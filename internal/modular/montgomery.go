package modular

import (
	"bignum.mleku.dev/internal/ct"
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

// Montgomery holds the precomputed state for Montgomery multiplication
// modulo an odd n-limb modulus m: the negated inverse k = -m0^-1 mod B
// used by the CIOS reduction step, and R^2 mod m for converting values
// into the Montgomery domain.
type Montgomery struct {
	m  []Word // modulus, n limbs
	n  int
	k  Word
	R2 []Word // R^2 mod m, n limbs
}

// NewMontgomery precomputes Montgomery state for the odd modulus m[:n]
// (n >= 1, m[n-1] != 0, m[0]&1 == 1).
func NewMontgomery(m []Word, n int) *Montgomery {
	if n == 0 || m[n-1] == 0 {
		panic("modular: NewMontgomery requires a normalized-length nonzero modulus")
	}
	if m[0]&1 == 0 {
		panic("modular: NewMontgomery requires an odd modulus")
	}

	mCopy := make([]Word, n)
	nat.Copy(mCopy, m, n)
	k := -word.InvMod(mCopy[0])

	num := make([]Word, 2*n+1)
	num[2*n] = 1
	dnorm := make([]Word, n)
	div := nat.NewDivisor(dnorm, mCopy, n)
	un := 2*n + 1
	qn := un - n + 1
	q := make([]Word, qn)
	r2 := make([]Word, n)
	scratch := make([]Word, un+1)
	nat.DivModKnuth(q, r2, num, un, div, scratch)

	return &Montgomery{m: mCopy, n: n, k: k, R2: r2}
}

// mulRaw computes the CIOS Montgomery product of x and y into
// t[n:2n+1] (n+1 limbs), leaving t[0:n] at zero. t must provide
// 2n+1 limbs and must not alias x, y or mt.m.
func (mt *Montgomery) mulRaw(t []Word, x, y []Word) {
	n := mt.n
	nat.Zero(t, 2*n+1)
	for i := 0; i < n; i++ {
		c := nat.AddMul1(t[i:i+n], y, n, x[i])
		nat.Add1(t[i+n:], t[i+n:], 2*n+1-(i+n), c)

		u := t[i] * mt.k
		c = nat.AddMul1(t[i:i+n], mt.m, n, u)
		nat.Add1(t[i+n:], t[i+n:], 2*n+1-(i+n), c)
	}
}

// MulVarTime computes z := x*y*R^-1 mod m (x, y in Montgomery domain,
// n limbs each), an "almost-Montgomery" reduction: if the leftover top
// limb is non-zero the modulus is subtracted once, otherwise the raw
// (n+1)-limb result's low n limbs are copied as-is. z may land
// anywhere in [0, m), or exceed it by a bounded margin when the top
// limb was zero and the low part still exceeds m — a tolerance cheaper
// than a full reduce. scratch must provide 2n+1 limbs.
func (mt *Montgomery) MulVarTime(z, x, y []Word, scratch []Word) {
	n := mt.n
	t := scratch[:2*n+1]
	mt.mulRaw(t, x, y)
	if t[2*n] != 0 {
		nat.Sub(z, t[n:2*n], n, mt.m, n)
		return
	}
	nat.Copy(z, t[n:2*n], n)
}

// MulConstTime computes z := x*y*R^-1 mod m exactly as MulVarTime, but
// always finishes with an unconditional ct.ReduceWeak over the full
// (n+1)-limb raw result against a zero-extended modulus, so the
// control flow and memory access pattern are independent of x, y and
// m. scratch must provide 5n+4 limbs.
func (mt *Montgomery) MulConstTime(z, x, y []Word, scratch []Word) {
	n := mt.n
	t := scratch[:2*n+1]
	mt.mulRaw(t, x, y)

	rest := scratch[2*n+1:]
	mExt := rest[:n+1]
	nat.Copy(mExt, mt.m, n)
	mExt[n] = 0
	out := rest[n+1 : 2*n+2]
	weakScratch := rest[2*n+2 : 3*n+3]
	ct.ReduceWeak(out, t[n:2*n+1], mExt, n+1, weakScratch)
	nat.Copy(z, out, n)
}

// ToMontgomery computes z := x*R mod m by Montgomery-multiplying x by
// the precomputed R^2 mod m. scratch must provide 2n+1 limbs.
func (mt *Montgomery) ToMontgomery(z, x []Word, scratch []Word) {
	mt.MulVarTime(z, x, mt.R2, scratch)
}

// FromMontgomery computes z := x*R^-1 mod m by Montgomery-multiplying
// x by 1. scratch must provide 2n+1 limbs.
func (mt *Montgomery) FromMontgomery(z, x []Word, scratch []Word) {
	one := make([]Word, mt.n)
	one[0] = 1
	mt.MulVarTime(z, x, one, scratch)
}

// N returns the limb width of the modulus.
func (mt *Montgomery) N() int { return mt.n }

// Modulus returns the stored modulus limbs (read-only).
func (mt *Montgomery) Modulus() []Word { return mt.m }
