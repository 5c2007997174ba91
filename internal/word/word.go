// Package word implements single-machine-word arithmetic primitives:
// the L-bit "limb" layer everything else in this module is built from.
//
// A Word is an unsigned machine word; this build fixes L = 64 (the
// common case for every 64-bit target this module ships on). Most
// algorithmic constants above this package are written in terms of the
// Word/Bits/Max names; internal/drbg's limb packing and
// internal/ntheory's powOfTwo still assume a 64-bit Word directly.
package word

import "math/bits"

// Word is the limb type: an unsigned L-bit machine word.
type Word = uint64

const (
	// Bits is L, the bit-width of a Word.
	Bits = 64
	// Max is the largest representable Word, B-1.
	Max Word = 1<<Bits - 1
)

// Add returns z = x+y mod B and the carry-out c = (x+y) >= B.
func Add(x, y Word) (z, c Word) {
	zz, cc := bits.Add64(x, y, 0)
	return zz, Word(cc)
}

// Sub returns z = x-y mod B and the borrow c = x < y.
func Sub(x, y Word) (z, c Word) {
	zz, cc := bits.Sub64(x, y, 0)
	return zz, Word(cc)
}

// AddC is the three-way ripple used by the vector kernels: z = x+y+cin
// mod B, with carry-out cout.
func AddC(x, y, cin Word) (z, cout Word) {
	zz, cc := bits.Add64(x, y, cin)
	return zz, Word(cc)
}

// SubC is the three-way ripple for subtraction: z = x-y-cin mod B, with
// borrow-out cout.
func SubC(x, y, cin Word) (z, cout Word) {
	zz, cc := bits.Sub64(x, y, cin)
	return zz, Word(cc)
}

// Mul returns the full 2L-bit product x*y as (hi, lo).
func Mul(x, y Word) (hi, lo Word) {
	return bits.Mul64(x, y)
}

// Sqr returns the full 2L-bit product x*x as (hi, lo).
func Sqr(x Word) (hi, lo Word) {
	return bits.Mul64(x, x)
}

// MulAdd1 computes the 2L-bit result z = x*y + c (the multiply-accumulate
// primitive behind mul_1/addmul_1), returning (lo, hi).
func MulAdd1(x, y, c Word) (lo, hi Word) {
	hi, lo = Mul(x, y)
	var cc Word
	lo, cc = Add(lo, c)
	hi += cc
	return lo, hi
}

// SubMul1 computes z' = z - (x*y + c) (the submul_1 primitive used by
// Knuth Algorithm D), returning the new z limb and the new borrow.
func SubMul1(z, x, y, c Word) (zOut, borrow Word) {
	hi, lo := Mul(x, y)
	var cc Word
	lo, cc = Add(lo, c)
	hi += cc
	var b Word
	zOut, b = Sub(z, lo)
	hi += b
	return zOut, hi
}

// PopCount returns the number of set bits in x.
func PopCount(x Word) int { return bits.OnesCount64(x) }

// LeadingZeros returns the number of leading zero bits in x. clz(0) is
// defined and equals L, unlike some C dialects where it is undefined.
func LeadingZeros(x Word) int { return bits.LeadingZeros64(x) }

// TrailingZeros returns the number of trailing zero bits in x. ctz(0)
// is defined and equals L.
func TrailingZeros(x Word) int { return bits.TrailingZeros64(x) }

// BitLen returns the number of bits required to represent x (0 for x==0).
func BitLen(x Word) int { return bits.Len64(x) }

// Inv2by1 computes the Möller-Granlund 2-by-1 reciprocal of a
// normalized divisor d (MSB set):
//
//	v = floor((B*B - 1 - d*B) / d) = floor(~(d*B) / d)
//
// d must have its top bit set (normalized); behavior is undefined
// otherwise, per Möller-Granlund's "Improved division by invariant
// integers".
func Inv2by1(d Word) Word {
	if d&(1<<(Bits-1)) == 0 {
		panic("word: Inv2by1 requires a normalized divisor")
	}
	q, _ := bits.Div64(^d, Max, d)
	return q
}

// Inv3by2 refines the 2-by-1 reciprocal into the reciprocal of a
// normalized 2-limb divisor (d1, d0), per Möller-Granlund §A.6: one
// Inv2by1 plus two fix-ups.
func Inv3by2(d1, d0 Word) Word {
	v := Inv2by1(d1)

	p := d1 * v
	p += d0
	if p < d0 {
		v--
		if p >= d1 {
			v--
			p -= d1
		}
		p -= d1
	}

	hi, lo := Mul(v, d0)
	p += hi
	if p < hi {
		v--
		if p > d1 || (p == d1 && lo >= d0) {
			v--
		}
	}
	return v
}

// InvMod computes the multiplicative inverse of odd d modulo B via
// Newton iteration m <- m*(2 - d*m), starting from m = d (the 3-bit
// seed 1/1=1, 3/3=3 mod 8 is implicit in d itself for odd d) and
// doubling the number of correct bits each round, for ceil(log2(Bits))
// rounds — required by exact division.
func InvMod(d Word) Word {
	if d&1 == 0 {
		panic("word: InvMod requires an odd modulus")
	}
	m := d
	for i := 0; i < 6; i++ { // 2^6 = 64 >= Bits, each round doubles correct bits
		m = m * (2 - d*m)
	}
	return m
}
