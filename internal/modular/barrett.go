// Package modular implements the reduction machinery above internal/nat:
// Barrett reduction (division-free once set up) and Montgomery
// multiplication (CIOS layout, both variable- and constant-time),
// plus the weak reduction step every Montgomery product finishes with.
package modular

import (
	"bignum.mleku.dev/internal/ct"
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

type Word = word.Word

// Barrett holds the precomputed reciprocal for a fixed modulus n,
// letting Reduce replace a division with a truncating multiply and a
// short subtraction loop. Used on the variable-time path — even
// moduli, or exponents too small to amortize a Montgomery setup.
type Barrett struct {
	n     []Word // modulus, nn limbs, top limb nonzero
	nn    int
	mu    []Word // floor(B^shift / n)
	mun   int
	shift int // 2*nn
}

// NewBarrett precomputes the reciprocal for modulus n[:nn] (nn >= 1,
// n[nn-1] != 0).
func NewBarrett(n []Word, nn int) *Barrett {
	if nn == 0 || n[nn-1] == 0 {
		panic("modular: NewBarrett requires a normalized-length nonzero modulus")
	}
	shift := 2 * nn
	num := make([]Word, shift+1)
	num[shift] = 1

	dnorm := make([]Word, nn)
	div := nat.NewDivisor(dnorm, n, nn)

	un := shift + 1
	qn := un - nn + 1
	q := make([]Word, qn)
	r := make([]Word, nn)
	scratch := make([]Word, un+1)
	nat.DivModKnuth(q, r, num, un, div, scratch)

	mun := nat.Strip(q, qn)
	nCopy := make([]Word, nn)
	nat.Copy(nCopy, n, nn)

	return &Barrett{n: nCopy, nn: nn, mu: q[:mun], mun: mun, shift: shift}
}

// Reduce computes z := x mod n for x[:xn], xn <= 2*nn. z must provide
// nn limbs; scratch must provide at least 2*xn + 3*nn + 2 limbs (a
// safe bound since the reciprocal mu and the quotient estimate h are
// each at most nn+1 limbs).
func (b *Barrett) Reduce(z []Word, x []Word, xn int, scratch []Word) {
	if xn > b.shift {
		panic("modular: Barrett.Reduce input too wide")
	}

	prod := scratch[:xn+b.mun]
	nat.Mul(prod, x, xn, b.mu, b.mun)

	var h []Word
	var hn int
	if b.shift < len(prod) {
		h = prod[b.shift:]
		hn = len(prod) - b.shift
	}
	hn = nat.Strip(h, hn)

	rest := scratch[xn+b.mun:]
	t := rest[:hn+b.nn]
	nat.Mul(t, h, hn, b.n, b.nn)
	tn := nat.Strip(t, hn+b.nn)

	xCopy := rest[hn+b.nn : hn+b.nn+xn]
	nat.Copy(xCopy, x, xn)
	qn, _ := nat.SubVar(xCopy, xCopy, xn, t, tn)

	for qn >= b.nn && nat.CmpVar(xCopy[:qn], b.n[:b.nn]) >= 0 {
		qn, _ = nat.SubVar(xCopy, xCopy[:qn], qn, b.n, b.nn)
	}

	nat.Zero(z, b.nn)
	nat.Copy(z, xCopy, qn)
}

// ReduceWeak computes a weak modular reduction: x - n if that does not
// borrow, x unchanged otherwise, selected via ct.CndSelect so the
// choice leaks nothing about x.
func ReduceWeak(z, x, n []Word, nn int, scratch []Word) {
	ct.ReduceWeak(z, x, n, nn, scratch)
}
