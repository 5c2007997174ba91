package powm

import (
	"bignum.mleku.dev/internal/modular"
	"bignum.mleku.dev/internal/nat"
)

// slidingWindowPow walks exponent y[:yn] from its top bit down, squaring
// acc in place and multiplying in precomputed odd powers of the base
// from table (table[i] holding base^(2i+1)): runs of 0 bits square one
// at a time; a run starting at a 1 bit consumes up to `width` bits,
// trimmed so the window always ends on a set bit (keeping the table
// index odd).
func slidingWindowPow(width int, acc []Word, exp []Word, expN int, expBits int, table [][]Word, square func(z, x []Word), mul func(z, a, b []Word)) {
	i := expBits - 1
	for i >= 0 {
		if nat.Getbit(exp, expN, i) == 0 {
			square(acc, acc)
			i--
			continue
		}
		wstart := i - width + 1
		if wstart < 0 {
			wstart = 0
		}
		lowest := wstart
		for lowest < i && nat.Getbit(exp, expN, lowest) == 0 {
			lowest++
		}
		wlen := i - lowest + 1
		val := nat.Getbits(exp, expN, lowest, uint(wlen))
		idx := (int(val) - 1) / 2

		for k := 0; k < wlen; k++ {
			square(acc, acc)
		}
		mul(acc, acc, table[idx])
		i = lowest - 1
	}
}

// montgomerySlidingWindow is the Montgomery-interior path: used when
// the modulus is odd and the exponent spans at least two limbs.
func montgomerySlidingWindow(z, x []Word, xn int, y []Word, yn int, m []Word, mn int) {
	mt := modular.NewMontgomery(m, mn)
	scratch := make([]Word, 2*mn+1)

	xr := make([]Word, mn)
	reduceIntoModulus(xr, x, xn, m, mn)
	xm := make([]Word, mn)
	mt.ToMontgomery(xm, xr, scratch)

	tableSize := 1 << (slideWidth - 1)
	table := make([][]Word, tableSize)
	x2 := make([]Word, mn)
	mt.MulVarTime(x2, xm, xm, scratch)
	table[0] = make([]Word, mn)
	copy(table[0], xm)
	for i := 1; i < tableSize; i++ {
		table[i] = make([]Word, mn)
		mt.MulVarTime(table[i], table[i-1], x2, scratch)
	}

	acc := make([]Word, mn)
	one := make([]Word, mn)
	one[0] = 1
	mt.ToMontgomery(acc, one, scratch)

	square := func(zz, xx []Word) { mt.MulVarTime(zz, xx, xx, scratch) }
	mul := func(zz, a, b []Word) { mt.MulVarTime(zz, a, b, scratch) }

	bits := nat.BitLen(y, yn)
	slidingWindowPow(slideWidth, acc, y, yn, bits, table, square, mul)

	mt.FromMontgomery(z, acc, scratch)
}

// divisionSlidingWindow is the division-interior path: used for even
// moduli or small exponents, reducing with a Barrett modulus instead
// of a Montgomery one.
func divisionSlidingWindow(z, x []Word, xn int, y []Word, yn int, m []Word, mn int) {
	xr := make([]Word, mn)
	reduceIntoModulus(xr, x, xn, m, mn)

	br := modular.NewBarrett(m, mn)
	scratch := make([]Word, 2*(2*mn)+3*mn+2)

	mulMod := func(dst, a, b []Word) {
		prod := make([]Word, 2*mn)
		nat.Mul(prod, a, mn, b, mn)
		pn := nat.Strip(prod, 2*mn)
		br.Reduce(dst, prod, pn, scratch)
	}

	tableSize := 1 << (slideWidth - 1)
	table := make([][]Word, tableSize)
	x2 := make([]Word, mn)
	mulMod(x2, xr, xr)
	table[0] = make([]Word, mn)
	copy(table[0], xr)
	for i := 1; i < tableSize; i++ {
		table[i] = make([]Word, mn)
		mulMod(table[i], table[i-1], x2)
	}

	acc := make([]Word, mn)
	acc[0] = 1

	square := func(zz, xx []Word) { mulMod(zz, xx, xx) }
	mul := func(zz, a, b []Word) { mulMod(zz, a, b) }

	bits := nat.BitLen(y, yn)
	slidingWindowPow(slideWidth, acc, y, yn, bits, table, square, mul)

	nat.Copy(z, acc, mn)
}
