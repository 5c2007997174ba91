package bigz

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

// Lsh implements mul_2exp: z := x << k, an exact left shift (sign
// preserved, no bits lost).
func (z *Int) Lsh(x *Int, k uint) *Int {
	xn := x.sigLen()
	if xn == 0 {
		z.size = 0
		return z
	}
	limbShift := int(k / word.Bits)
	bitShift := k % word.Bits
	n := xn + limbShift + 1
	buf := make([]Word, n)
	nat.Copy(buf[limbShift:limbShift+xn], x.limbs, xn)
	if bitShift > 0 {
		nat.Lshift(buf[limbShift:], buf[limbShift:], xn+1, bitShift)
	}
	sz := nat.Strip(buf, n)
	z.grow(sz)
	nat.Copy(z.limbs, buf, sz)
	z.normalize(sz, x.Sign() < 0)
	return z
}

// QuoTwoExp implements quo_2exp: z := trunc(x / 2^k), an unsigned
// right shift of the magnitude that keeps x's sign (truncation toward
// zero regardless of sign).
func (z *Int) QuoTwoExp(x *Int, k uint) *Int {
	xn := x.sigLen()
	if xn == 0 {
		z.size = 0
		return z
	}
	limbShift := int(k / word.Bits)
	bitShift := k % word.Bits
	if limbShift >= xn {
		z.size = 0
		return z
	}
	n := xn - limbShift
	buf := make([]Word, n)
	nat.Copy(buf, x.limbs[limbShift:xn], n)
	if bitShift > 0 {
		nat.Rshift(buf, buf, n, bitShift)
	}
	sz := nat.Strip(buf, n)
	z.grow(sz)
	nat.Copy(z.limbs, buf, sz)
	z.normalize(sz, x.Sign() < 0)
	return z
}

// DivTwoExp implements div_2exp: z := floor(x / 2^k), an arithmetic
// right shift toward -infinity. For non-negative x this is the same
// as QuoTwoExp; for negative x it is -((-x-1) >> k) - 1.
func (z *Int) DivTwoExp(x *Int, k uint) *Int {
	if x.Sign() >= 0 {
		return z.QuoTwoExp(x, k)
	}
	t := New().Abs(x)
	t.SubWord(t, 1)
	t.QuoTwoExp(t, k)
	z.Set(t)
	z.AddWord(z, 1)
	z.size = -z.size
	return z
}

// RemTwoExp implements rem_2exp: z := x - trunc(x/2^k)*2^k, the low k
// bits of |x| with x's own sign (0 if those bits are all zero).
func (z *Int) RemTwoExp(x *Int, k uint) *Int {
	xn := x.sigLen()
	if xn == 0 || k == 0 {
		z.size = 0
		return z
	}
	limbs := int((k + word.Bits - 1) / word.Bits)
	buf := make([]Word, limbs)
	cn := limbs
	if cn > xn {
		cn = xn
	}
	nat.Copy(buf, x.limbs, cn)
	if rem := k % word.Bits; rem != 0 {
		buf[limbs-1] &= nat.Mask(rem)
	}
	sz := nat.Strip(buf, limbs)
	z.grow(sz)
	nat.Copy(z.limbs, buf, sz)
	z.normalize(sz, x.Sign() < 0)
	return z
}

// ModTwoExp implements mod_2exp: z := x mod 2^k, always non-negative —
// the low k bits of x's infinite 2's-complement representation.
func (z *Int) ModTwoExp(x *Int, k uint) *Int {
	if x.Sign() >= 0 {
		return z.RemTwoExp(x, k)
	}
	limbs := int((k + word.Bits - 1) / word.Bits)
	tn := limbs + 1
	if xn := x.sigLen() + 1; xn > tn {
		tn = xn
	}
	tc := make([]Word, tn)
	toTwosComplement(tc, x, tn)
	buf := tc[:limbs]
	if rem := k % word.Bits; rem != 0 {
		buf[limbs-1] &= nat.Mask(rem)
	}
	sz := nat.Strip(buf, limbs)
	z.grow(sz)
	nat.Copy(z.limbs, buf, sz)
	z.normalize(sz, false)
	return z
}
