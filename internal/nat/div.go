package nat

import (
	"bignum.mleku.dev/internal/config"
	"bignum.mleku.dev/internal/word"
)

// Div2by1 divides the 2-limb numerator (u1,u0) by the normalized
// single-limb divisor d (MSB set), given its precomputed reciprocal
// v = word.Inv2by1(d). This is Möller-Granlund Algorithm 4 ([DIV] Page
// 4, Section A): it does not de-normalize the remainder — callers
// working with a shifted/normalized divisor must shift the result back.
func Div2by1(u1, u0, d, v Word) (q, r Word) {
	hi, lo := word.Mul(v, u1)
	q0, c := word.Add(lo, u0)
	q1, _ := word.AddC(hi, u1, c)

	q1++ // step 2: q1 <- q1+1 mod B

	r = u0 - q1*d // step 3

	if r > q0 { // step 4 (unpredictable)
		q1--
		r += d
	}
	if r >= d { // step 5 (unlikely)
		q1++
		r -= d
	}
	return q1, r
}

// Div3by2 divides the 3-limb numerator (u2,u1,u0) by the normalized
// 2-limb divisor (d1,d0) given its precomputed reciprocal
// v = word.Inv3by2(d1,d0) ([DIV] Algorithm 5).
func Div3by2(u2, u1, u0, d1, d0, v Word) (q, r1, r0 Word) {
	q, q0 := word.Mul(v, u2)
	var c Word
	q0, c = word.Add(q0, u1)
	q, _ = word.AddC(q, u2, c)

	r1 = u1 - q*d1

	var b Word
	r0, b = word.Sub(u0, d0)
	r1, _ = word.SubC(r1, d1, b)

	t1, t0 := word.Mul(d0, q)
	r0, b = word.Sub(r0, t0)
	r1, _ = word.SubC(r1, t1, b)

	q++

	if r1 >= q0 {
		q--
		var c2 Word
		r0, c2 = word.Add(r0, d0)
		r1, _ = word.AddC(r1, d1, c2)
	}

	if r1 >= d1 {
		if r1 > d1 || r0 >= d0 {
			q++
			r0, b = word.Sub(r0, d0)
			r1, _ = word.SubC(r1, d1, b)
		}
	}
	return q, r1, r0
}

// DivModSmall divides the nn-limb numerator n[:nn] by the single-limb
// divisor d (d != 0), writing the nn-limb quotient into q and returning
// the remainder. d need not be normalized; normalization and its
// inverse are folded into the running-remainder loop.
func DivModSmall(q []Word, n []Word, nn int, d Word) Word {
	if d == 0 {
		panic("nat: DivModSmall division by zero")
	}
	if nn == 0 {
		return 0
	}
	s := uint(word.LeadingZeros(d))
	dNorm := d << s
	v := word.Inv2by1(dNorm)

	var r Word
	if s == 0 {
		for j := nn - 1; j >= 0; j-- {
			q[j], r = Div2by1(r, n[j], dNorm, v)
		}
		return r
	}

	inv := word.Bits - s
	// The normalized numerator n << s is one limb longer than n: its top
	// limb n[nn-1] >> (Bits-s) seeds the running remainder. Each step then
	// concatenates the running remainder with n[j] << s, shifting in s
	// bits from n[j-1] (or 0).
	r = n[nn-1] >> inv
	for j := nn - 1; j >= 0; j-- {
		var lowBits Word
		if j > 0 {
			lowBits = n[j-1] >> inv
		}
		u0 := (n[j] << s) | lowBits
		q[j], r = Div2by1(r, u0, dNorm, v)
	}
	return r >> s
}

// ExactDiv1 divides x[:n] by odd d, asserting (not checking) that d
// exactly divides x — the quotient is produced via the odd-modular
// inverse technique: z := x * (d^-1 mod B) propagated as a
// running multiply-subtract-shift, matching GMP's documented exact_1.
// For even d, callers strip the common power of two from both x and d
// before calling (mirrored by bigz's divexact wrapper).
func ExactDiv1(z []Word, x []Word, n int, d Word) {
	if d&1 == 0 {
		panic("nat: ExactDiv1 requires an odd divisor")
	}
	dinv := word.InvMod(d)
	var borrow Word
	for i := 0; i < n; i++ {
		xi, b := word.Sub(x[i], borrow)
		qi := xi * dinv
		z[i] = qi
		hi, _ := word.Mul(qi, d)
		borrow = hi + b
	}
}

// Divisor is short-lived precomputed division state: normalized
// divisor limbs, its reciprocal, the normalization shift, and
// numerator scratch. Created at the entry of DivModKnuth and never
// reused across calls.
type Divisor struct {
	d     []Word // normalized divisor, dn limbs
	dn    int
	shift uint
	v     Word // 2-by-1 reciprocal of d[dn-1]
	v3    Word // 3-by-2 reciprocal of (d[dn-1],d[dn-2]); valid only when dn >= 2
}

// NewDivisor normalizes d[:dn] (dn >= 1, d[dn-1] != 0) into dst
// (caller-provided, dn limbs) and precomputes its reciprocal(s). Both
// the 2-by-1 and (for dn>=2) the 3-by-2 reciprocal are computed; which
// one DivModKnuth's per-digit step actually drives is controlled by
// config.Default.Prefer3by2.
func NewDivisor(dst []Word, d []Word, dn int) *Divisor {
	if dn == 0 || d[dn-1] == 0 {
		panic("nat: NewDivisor requires a normalized-length nonzero divisor")
	}
	s := uint(word.LeadingZeros(d[dn-1]))
	if s == 0 {
		Copy(dst, d, dn)
	} else {
		Lshift(dst, d, dn, s)
	}
	div := &Divisor{d: dst[:dn], dn: dn, shift: s, v: word.Inv2by1(dst[dn-1])}
	if dn >= 2 {
		div.v3 = word.Inv3by2(dst[dn-1], dst[dn-2])
	}
	return div
}

// DivModKnuth divides the un-limb numerator u[:un] by the dn-limb
// divisor given by div (dn limbs, un >= dn), writing the (un-dn+1)-limb
// quotient into q and the dn-limb remainder into r. scratch must
// provide un+1 limbs. This is Knuth's Algorithm D ([KNUTH] 4.3.1); the
// per-digit estimate is driven by Div3by2 when dn >= 2 and
// config.Default.Prefer3by2 is set, or by Div2by1 plus the classical
// one-limb refinement otherwise — both converge to the same qhat
// before the multiply-subtract/add-back step.
func DivModKnuth(q, r []Word, u []Word, un int, div *Divisor, scratch []Word) {
	dn := div.dn
	d := div.d
	s := div.shift
	v := div.v
	use3by2 := dn >= 2 && config.Default.Prefer3by2

	un1 := un + 1
	unorm := scratch[:un1]
	if s == 0 {
		Copy(unorm, u, un)
		unorm[un] = 0
	} else {
		unorm[un] = Lshift(unorm, u, un, s)
	}

	if dn == 1 {
		// d[0] here is the *normalized* divisor; recover the original by
		// un-shifting, and drive DivModSmall (which does its own
		// normalization) directly off the un-normalized numerator/divisor.
		orig := d[0] >> s
		rem := DivModSmall(q, u, un, orig)
		r[0] = rem
		return
	}

	for j := un - dn; j >= 0; j-- {
		var qhat, rhat Word

		if use3by2 {
			// Div3by2 already incorporates the d[dn-2] correction, so no
			// separate refinement loop is needed; only the final
			// multiply-subtract/add-back below can still adjust qhat by 1.
			// When the top two numerator limbs equal the divisor's, the
			// 3-by-2 quotient would be B, outside Div3by2's range; the
			// digit is then exactly B-1.
			if unorm[j+dn] == d[dn-1] && unorm[j+dn-1] == d[dn-2] {
				qhat = word.Max
			} else {
				qhat, rhat, _ = Div3by2(unorm[j+dn], unorm[j+dn-1], unorm[j+dn-2], d[dn-1], d[dn-2], div.v3)
			}
		} else {
			overflowed := unorm[j+dn] == d[dn-1]
			if overflowed {
				qhat = word.Max
				var c Word
				rhat, c = word.Add(unorm[j+dn-1], d[dn-1])
				overflowed = c != 0 // remainder itself overflowed a word
			} else {
				qhat, rhat = Div2by1(unorm[j+dn], unorm[j+dn-1], d[dn-1], v)
			}
			// Refine qhat down using the next divisor limb (Knuth 4.3.1,
			// step D3).
			for !overflowed {
				hi, lo := word.Mul(qhat, d[dn-2])
				if hi < rhat || (hi == rhat && lo <= unorm[j+dn-2]) {
					break
				}
				qhat--
				var c Word
				rhat, c = word.Add(rhat, d[dn-1])
				overflowed = c != 0
			}
		}

		// Multiply-subtract: unorm[j:j+dn+1] -= qhat * d[:dn].
		borrow := SubMul1(unorm[j:], d, dn, qhat)
		topLimb, bTop := word.Sub(unorm[j+dn], borrow)
		unorm[j+dn] = topLimb

		if bTop != 0 {
			// Add-back: qhat was one too large.
			qhat--
			c := AddN(unorm[j:j+dn], unorm[j:j+dn], d, dn)
			unorm[j+dn], _ = word.Add(unorm[j+dn], c)
		}

		q[j] = qhat
	}

	if s == 0 {
		Copy(r, unorm, dn)
	} else {
		Rshift(r, unorm, dn, s)
	}
}

// ExactDiv divides x[:xn] by y[:yn] where y exactly divides x
// (undefined result otherwise — callers must have already verified
// this; only the caller-facing bigz.DivExact asserts and aborts). It
// runs the general DivModKnuth/DivModSmall machinery and discards the
// remainder.
func ExactDiv(z []Word, x []Word, xn int, y []Word, yn int, scratch []Word) {
	if yn == 1 {
		DivModSmall(z, x, xn, y[0])
		return
	}
	qn := xn - yn + 1
	q := scratch[:qn]
	r := scratch[qn : qn+yn]
	rest := scratch[qn+yn:]
	dnorm := rest[:yn]
	div := NewDivisor(dnorm, y, yn)
	DivModKnuth(q, r, x, xn, div, rest[yn:])
	Copy(z, q, qn)
	Zero(z[qn:], xn-qn)
}
