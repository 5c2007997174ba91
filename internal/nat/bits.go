package nat

import "bignum.mleku.dev/internal/word"

// Getbit returns bit index i (0 = least significant) of x[:n], or 0 if
// i is beyond the vector's bit span.
func Getbit(x []Word, n int, i int) int {
	limb := i / word.Bits
	if limb >= n {
		return 0
	}
	return int((x[limb] >> uint(i%word.Bits)) & 1)
}

// Setbit sets bit i of x[:n] to 1.
func Setbit(x []Word, n int, i int) {
	limb := i / word.Bits
	if limb >= n {
		panic("nat: Setbit index out of range")
	}
	x[limb] |= Word(1) << uint(i%word.Bits)
}

// Clrbit clears bit i of x[:n] to 0.
func Clrbit(x []Word, n int, i int) {
	limb := i / word.Bits
	if limb >= n {
		panic("nat: Clrbit index out of range")
	}
	x[limb] &^= Word(1) << uint(i%word.Bits)
}

// Combit complements (flips) bit i of x[:n].
func Combit(x []Word, n int, i int) {
	limb := i / word.Bits
	if limb >= n {
		panic("nat: Combit index out of range")
	}
	x[limb] ^= Word(1) << uint(i%word.Bits)
}

// Tstbit is an alias for Getbit, matching GMP's mpn_tstbit naming.
func Tstbit(x []Word, n int, i int) int { return Getbit(x, n, i) }

// Getbits extracts a width-bit field starting at bit offset start (0 <
// width <= Bits), assembling across a limb boundary when necessary.
func Getbits(x []Word, n int, start int, width uint) Word {
	if width == 0 || width > word.Bits {
		panic("nat: Getbits width must be in (0, Bits]")
	}
	limb := start / word.Bits
	off := uint(start % word.Bits)
	var lo Word
	if limb < n {
		lo = x[limb] >> off
	}
	if off+width > word.Bits && limb+1 < n {
		lo |= x[limb+1] << (word.Bits - off)
	}
	if width < word.Bits {
		lo &= (Word(1) << width) - 1
	}
	return lo
}

// Mask returns the low `width` bits of x set, the high bits cleared
// (width may be 0..Bits).
func Mask(width uint) Word {
	if width == 0 {
		return 0
	}
	if width >= word.Bits {
		return word.Max
	}
	return (Word(1) << width) - 1
}

// PopCount sums the population count of x[:n].
func PopCount(x []Word, n int) int {
	c := 0
	for i := 0; i < n; i++ {
		c += word.PopCount(x[i])
	}
	return c
}

// Hamdist returns the Hamming distance (popcount of x XOR y) between
// two equal-length vectors.
func Hamdist(x, y []Word, n int) int {
	c := 0
	for i := 0; i < n; i++ {
		c += word.PopCount(x[i] ^ y[i])
	}
	return c
}

// Ctz returns the index of the least-significant set bit of x[:n], or
// n*Bits if x is entirely zero (the "off the end" sentinel).
func Ctz(x []Word, n int) int {
	for i := 0; i < n; i++ {
		if x[i] != 0 {
			return i*word.Bits + word.TrailingZeros(x[i])
		}
	}
	return n * word.Bits
}

// BitLen returns the number of bits needed to represent x[:n] (0 if
// x is entirely zero), i.e. the bit index one past the highest set bit.
func BitLen(x []Word, n int) int {
	xn := Strip(x, n)
	if xn == 0 {
		return 0
	}
	return (xn-1)*word.Bits + word.BitLen(x[xn-1])
}

// Scan implements mpn_scan: on the 2's-complement view of x[:n] (an
// infinite sign-extension of bit n*Bits-1... conceptually an infinite
// string of 0s for mask=0 or 1s for mask=1 beyond the buffer), find the
// index of the first bit from position `start` upward whose value
// differs from `fromMask` (fromMask is the bit we're walking *through*,
// matching mask-parameterized scan0 (fromMask=0) and scan1 (fromMask=1)
// with a uniform implementation). Returns n*Bits if the search runs off
// the end looking for a 0-bit in a non-negative (zero-extended) vector,
// or the exact first differing position otherwise.
func Scan(x []Word, n int, start int, fromMask Word) int {
	pos := start
	for {
		limb := pos / word.Bits
		if limb >= n {
			if fromMask != 0 {
				// Scanning for a 0 bit through an implicit infinite run
				// of 1s (2's-complement negative tail) never terminates
				// within the buffer; by convention return n*Bits.
				return n * word.Bits
			}
			return n * word.Bits
		}
		w := x[limb] ^ boolMaskAll(fromMask)
		w >>= uint(pos % word.Bits)
		if w != 0 {
			return pos + word.TrailingZeros(w)
		}
		pos = (limb + 1) * word.Bits
	}
}

// boolMaskAll returns all-ones if m is nonzero, else 0 — the XOR mask
// that turns "find a bit equal to fromMask" into "find a set bit".
func boolMaskAll(m Word) Word {
	if m != 0 {
		return word.Max
	}
	return 0
}
