// Package nat implements the N-layer: fixed-length natural-number
// kernels operating directly on caller-owned limb buffers ([]word.Word).
//
// A limb vector of length n, little-endian by limb (index 0 is least
// significant), represents the integer sum(x[i] * B^i). Length may
// include leading-zero limbs; this package never auto-strips a buffer
// — callers that need the canonical significant length call Strip.
// Zero-length inputs are legal and are treated as the integer 0.
//
// Every operation documents its aliasing contract. Identity aliasing
// (same backing buffer, same offset) is allowed where documented;
// partial overlap between two distinct operands is never supported and
// produces undefined results, the same contract GMP's mpn layer makes.
package nat

import "bignum.mleku.dev/internal/word"

// Word re-exports the limb type so callers need not import
// internal/word directly for plain vector manipulation.
type Word = word.Word

// Max re-exports the largest representable Word, B-1.
const Max = word.Max

// Cmp returns -1, 0 or +1 comparing the equal-length vectors x, y
// lexicographically from the most significant limb down.
func Cmp(x, y []Word) int {
	n := len(x)
	if n != len(y) {
		panic("nat: Cmp requires equal-length operands")
	}
	for i := n - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// CmpVar compares two vectors of possibly different lengths as the
// natural numbers they represent (their own significant lengths are
// first computed via Strip).
func CmpVar(x []Word, y []Word) int {
	xn := Strip(x, len(x))
	yn := Strip(y, len(y))
	if xn != yn {
		if xn > yn {
			return 1
		}
		return -1
	}
	return Cmp(x[:xn], y[:yn])
}

// Strip returns the number of significant limbs in x[:xn]: xn with any
// high zero limbs dropped. It only reads; it never writes.
func Strip(x []Word, xn int) int {
	for xn > 0 && x[xn-1] == 0 {
		xn--
	}
	return xn
}

// IsZero reports whether x[:xn] represents zero.
func IsZero(x []Word, xn int) bool {
	return Strip(x, xn) == 0
}

// Zero clears z[:n] to all-zero limbs.
func Zero(z []Word, n int) {
	zz := z[:n]
	for i := range zz {
		zz[i] = 0
	}
}

// SetWord sets z[:n] to the single-limb value v (z must have n >= 1).
func SetWord(z []Word, n int, v Word) {
	Zero(z, n)
	if n > 0 {
		z[0] = v
	}
}

// Copy copies n limbs from x into z (z and x may be the same slice;
// overlapping-but-distinct slices must not partially overlap).
func Copy(z, x []Word, n int) {
	copy(z[:n], x[:n])
}
