// Package powm implements modular exponentiation: a variable-time
// sliding-window powm (division or Montgomery interior, depending on
// the modulus) and a constant-time fixed-window powm driven entirely
// by Montgomery arithmetic and a full table sweep.
package powm

import (
	"bignum.mleku.dev/internal/ct"
	"bignum.mleku.dev/internal/modular"
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

type Word = word.Word

const (
	slideWidth = 5 // MP_SLIDE_WIDTH
	fixedWidth = 4 // MP_FIXED_WIDTH
)

// Powm computes z := x^y mod m, dispatching as follows:
// m == 1 → 0; y == 0 → 1; x == 0 → 0; an odd modulus with a
// multi-limb exponent uses the Montgomery sliding-window interior,
// everything else uses the division-based sliding-window interior.
// x, y, m are given as (possibly unnormalized) limb vectors with their
// limb counts; z must provide mn limbs.
func Powm(z []Word, x []Word, xn int, y []Word, yn int, m []Word, mn int) {
	mn = nat.Strip(m, mn)
	if mn == 1 && m[0] == 1 {
		nat.Zero(z, 1)
		return
	}
	yn = nat.Strip(y, yn)
	if yn == 0 {
		nat.SetWord(z, mn, 1)
		return
	}
	xn = nat.Strip(x, xn)
	if xn == 0 {
		nat.Zero(z, mn)
		return
	}

	if yn >= 2 && m[0]&1 == 1 {
		montgomerySlidingWindow(z, x, xn, y, yn, m, mn)
		return
	}
	divisionSlidingWindow(z, x, xn, y, yn, m, mn)
}

// PowmConstTime computes z := x^y mod m for an odd modulus and a
// non-negative exponent, in fixed-window constant time: no branch or
// memory access pattern depends on x or y. Callers must guarantee m
// is odd; this function does not dispatch or fall back.
func PowmConstTime(z []Word, x []Word, xn int, y []Word, yn int, m []Word, mn int) {
	mn = nat.Strip(m, mn)
	mt := modular.NewMontgomery(m, mn)

	bits := nat.BitLen(y, yn)
	if bits == 0 {
		nat.SetWord(z, mn, 1)
		return
	}

	tableSize := 1 << fixedWidth
	table := make([]Word, tableSize*mn)
	scratch := make([]Word, 5*mn+4)

	// table[0] = Montgomery(1); table[e] = Montgomery(x)^e for e in 1..15.
	one := make([]Word, mn)
	one[0] = 1
	mt.ToMontgomery(table[0:mn], one, scratch)

	xr := make([]Word, mn)
	reduceIntoModulus(xr, x, xn, m, mn)
	xm := make([]Word, mn)
	mt.ToMontgomery(xm, xr, scratch)
	nat.Copy(table[mn:2*mn], xm, mn)

	for e := 2; e < tableSize; e++ {
		mt.MulConstTime(table[e*mn:(e+1)*mn], table[(e-1)*mn:e*mn], xm, scratch)
	}

	acc := make([]Word, mn)
	nat.Copy(acc, table[0:mn], mn)

	nChunks := (bits + fixedWidth - 1) / fixedWidth
	sel := make([]Word, mn)
	tmp := make([]Word, mn)

	for c := nChunks - 1; c >= 0; c-- {
		for b := 0; b < fixedWidth; b++ {
			mt.MulConstTime(tmp, acc, acc, scratch)
			nat.Copy(acc, tmp, mn)
		}
		start := c * fixedWidth
		idx := int(nat.Getbits(y, yn, start, uint(fixedWidth)))
		ct.SecTabselect(sel, table, tableSize, mn, idx)
		mt.MulConstTime(tmp, acc, sel, scratch)
		nat.Copy(acc, tmp, mn)
	}

	mt.FromMontgomery(z, acc, scratch)
}
