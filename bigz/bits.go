package bigz

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

// Tstbit returns bit k of x's infinite 2's-complement representation
// (0 or 1). For non-negative x this is simply magnitude bit k; for
// negative x it is decoded via the same 2's-complement materialization
// the bitwise-op family uses.
func (x *Int) Tstbit(k uint) int {
	if x.Sign() >= 0 {
		return nat.Getbit(x.limbs, x.sigLen(), int(k))
	}
	n := int(k)/word.Bits + 1
	if xn := x.sigLen() + 1; xn > n {
		n = xn
	}
	tc := make([]Word, n)
	toTwosComplement(tc, x, n)
	return nat.Getbit(tc, n, int(k))
}

// bitAssign sets or clears bit k of x (interpreted over the infinite
// 2's-complement representation) into z.
func (z *Int) bitAssign(x *Int, k uint, val bool) *Int {
	if x.Sign() >= 0 {
		xn := x.sigLen()
		n := int(k)/word.Bits + 1
		if n < xn {
			n = xn
		}
		if !val && int(k)/word.Bits >= xn {
			return z.Set(x)
		}
		buf := make([]Word, n)
		nat.Copy(buf, x.limbs, xn)
		if val {
			nat.Setbit(buf, n, int(k))
		} else {
			nat.Clrbit(buf, n, int(k))
		}
		sz := nat.Strip(buf, n)
		z.grow(sz)
		nat.Copy(z.limbs, buf, sz)
		z.normalize(sz, false)
		return z
	}
	n := int(k)/word.Bits + 2
	if xn := x.sigLen() + 1; xn > n {
		n = xn
	}
	tc := make([]Word, n)
	toTwosComplement(tc, x, n)
	if val {
		nat.Setbit(tc, n, int(k))
	} else {
		nat.Clrbit(tc, n, int(k))
	}
	fromTwosComplement(z, tc, n)
	return z
}

// SetBit sets bit k of x into z.
func (z *Int) SetBit(x *Int, k uint) *Int { return z.bitAssign(x, k, true) }

// ClrBit clears bit k of x into z.
func (z *Int) ClrBit(x *Int, k uint) *Int { return z.bitAssign(x, k, false) }

// BitLen returns the number of bits in |x|'s binary representation (0
// for x == 0).
func (x *Int) BitLen() int { return nat.BitLen(x.limbs, x.sigLen()) }

// PopCount returns the number of set bits in |x|'s magnitude, or -1
// for a negative x (the bit count of an infinite 2's-complement
// negative value is likewise infinite).
func (x *Int) PopCount() int {
	if x.Sign() < 0 {
		return -1
	}
	return nat.PopCount(x.limbs, x.sigLen())
}
