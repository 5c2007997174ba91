package bigz

import (
	"bignum.mleku.dev/internal/ct"
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

// toTwosComplement materializes x's infinite-precision 2's-complement
// representation, zero/sign-extended into n limbs (n must exceed x's
// magnitude length so the sign bit has room to land correctly).
func toTwosComplement(dst []Word, x *Int, n int) {
	nat.Zero(dst, n)
	nat.Copy(dst, x.limbs, x.sigLen())
	if x.Sign() < 0 {
		ct.CndNeg(ct.Bool(true), dst, dst, n)
	}
}

// fromTwosComplement reads an n-limb 2's-complement buffer back into
// z's sign+magnitude form, consuming buf in place.
func fromTwosComplement(z *Int, buf []Word, n int) {
	neg := buf[n-1]>>(word.Bits-1) == 1
	if neg {
		ct.CndNeg(ct.Bool(true), buf, buf, n)
	}
	sz := nat.Strip(buf, n)
	z.grow(sz)
	nat.Copy(z.limbs, buf, sz)
	z.normalize(sz, neg)
}

// bitwiseOp decodes x and y into a shared-width 2's-complement buffer
// wide enough to hold either sign-extended operand plus a guard limb,
// runs the given fixed-width limb kernel, and re-encodes the result.
func bitwiseOp(z *Int, x, y *Int, op func(dst, a, b []Word, n int)) *Int {
	n := x.sigLen()
	if yn := y.sigLen(); yn > n {
		n = yn
	}
	n++
	a := make([]Word, n)
	b := make([]Word, n)
	toTwosComplement(a, x, n)
	toTwosComplement(b, y, n)
	r := make([]Word, n)
	op(r, a, b, n)
	fromTwosComplement(z, r, n)
	return z
}

// And computes z := x&y over the infinite 2's-complement
// representation (negative operands behave as in Go's own untyped
// bitwise operators on arbitrary-precision integers).
func (z *Int) And(x, y *Int) *Int { return bitwiseOp(z, x, y, nat.AndN) }

// Or computes z := x|y.
func (z *Int) Or(x, y *Int) *Int { return bitwiseOp(z, x, y, nat.IorN) }

// Xor computes z := x^y.
func (z *Int) Xor(x, y *Int) *Int { return bitwiseOp(z, x, y, nat.XorN) }

// Com computes z := ^x = -x-1, the one's-complement identity.
func (z *Int) Com(x *Int) *Int {
	neg := New().Neg(x)
	return z.Sub(neg, NewInt64(1))
}
