// Package ntheory implements the number-theoretic kernels above
// internal/nat: binary GCD and extended GCD, modular inverse (both the
// Penk right-shift variant and the constant-time Fermat variant),
// Jacobi/Kronecker symbols, integer k-th roots, and modular square
// roots.
package ntheory

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

type Word = word.Word

// Gcd1 computes the GCD of a single-limb pair via Knuth's Algorithm B
// specialized to one machine word: strip the common factor of two,
// then alternately strip remaining twos from the (always odd) larger
// value and subtract until the two meet.
func Gcd1(a, b Word) Word {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := word.TrailingZeros(a | b)
	a >>= word.TrailingZeros(a)
	for b != 0 {
		b >>= word.TrailingZeros(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << uint(shift)
}

// Gcd computes g := gcd(x[:xn], y[:yn]) via Knuth's Algorithm B
// (binary GCD): factor out the common power of two, then repeatedly
// reduce each operand's own power of two and subtract the smaller from
// the larger until one reaches zero. g must provide at least
// max(xn,yn) limbs; returns the significant length of g.
func Gcd(g []Word, x []Word, xn int, y []Word, yn int) int {
	xn = nat.Strip(x, xn)
	yn = nat.Strip(y, yn)
	if xn == 0 {
		nat.Copy(g, y, yn)
		return yn
	}
	if yn == 0 {
		nat.Copy(g, x, xn)
		return xn
	}

	n := xn
	if yn > n {
		n = yn
	}
	u := make([]Word, n+1)
	v := make([]Word, n+1)
	nat.Zero(u, n+1)
	nat.Zero(v, n+1)
	nat.Copy(u, x, xn)
	nat.Copy(v, y, yn)

	commonShift := min(nat.Ctz(u, n+1), nat.Ctz(v, n+1))
	shiftRightBy(u, n+1, commonShift)
	shiftRightBy(v, n+1, commonShift)

	shiftRightBy(u, n+1, nat.Ctz(u, n+1))

	for !nat.IsZero(v, n+1) {
		shiftRightBy(v, n+1, nat.Ctz(v, n+1))
		if nat.CmpVar(u, v) > 0 {
			u, v = v, u
		}
		vn, _ := nat.SubVar(v, v, n+1, u, n+1)
		nat.Zero(v[vn:], n+1-vn)
	}

	shiftLeftBy(u, n+1, commonShift)
	un := nat.Strip(u, n+1)
	nat.Copy(g, u, un)
	return un
}

// shiftRightBy shifts x[:n] right by an arbitrary (possibly >= Bits)
// bit count, limb-shifting first and then bit-shifting the remainder.
func shiftRightBy(x []Word, n int, bits int) {
	if bits == 0 {
		return
	}
	limbs := bits / word.Bits
	bitsLeft := bits % word.Bits
	if limbs > 0 {
		copy(x[:n-limbs], x[limbs:n])
		nat.Zero(x[n-limbs:], limbs)
	}
	if bitsLeft > 0 {
		nat.Rshift(x, x, n, uint(bitsLeft))
	}
}

// shiftLeftBy is shiftRightBy's mirror image.
func shiftLeftBy(x []Word, n int, bits int) {
	if bits == 0 {
		return
	}
	limbs := bits / word.Bits
	bitsLeft := bits % word.Bits
	if bitsLeft > 0 {
		nat.Lshift(x, x, n, uint(bitsLeft))
	}
	if limbs > 0 {
		for i := n - 1; i >= limbs; i-- {
			x[i] = x[i-limbs]
		}
		nat.Zero(x[:limbs], limbs)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
