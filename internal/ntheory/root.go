package ntheory

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

// Root computes z := floor(x^(1/k)) via Newton iteration: starting
// from a power-of-two guess comfortably above the true root,
// repeatedly refine u := floor(((k-1)*s + floor(x/s^(k-1))) / k) until
// u >= s, the previous iterate. Returns z's significant length. k must
// be >= 1; x must be non-negative (odd k with a negative x is handled
// by bigz, which strips the sign before calling and reapplies it to
// the result).
func Root(z []Word, x []Word, xn int, k uint) int {
	xn = nat.Strip(x, xn)
	if k == 0 {
		panic("ntheory: Root requires k >= 1")
	}
	if xn == 0 {
		nat.Zero(z, 1)
		return 1
	}
	if k == 1 {
		nat.Copy(z, x, xn)
		return xn
	}

	bl := nat.BitLen(x, xn)
	ceilDiv := (bl + int(k) - 1) / int(k)
	uBits := ceilDiv + 1
	uLimbs := uBits/word.Bits + 2

	u := make([]Word, uLimbs)
	nat.Setbit(u, uLimbs, uBits)

	for {
		s := trim(u)
		sPow := powSmall(s, k-1)
		q := divBig(x[:xn], sPow)
		t := addVec(mulSmall(s, Word(k-1)), q)
		u = divSmallVec(t, Word(k))

		if cmpTrim(u, s) >= 0 {
			sn := len(s)
			nat.Zero(z, sn)
			nat.Copy(z, s, sn)
			return nat.Strip(z, sn)
		}
	}
}

// RootRem computes the integer k-th root into z and the remainder
// x - z^k into r, returning (root length, remainder length).
func RootRem(z []Word, r []Word, x []Word, xn int, k uint) (int, int) {
	zn := Root(z, x, xn, k)
	zk := powSmall(trim(append([]Word(nil), z[:zn]...)), k)
	xn = nat.Strip(x, xn)
	rn := len(x[:xn])
	if rn < len(zk) {
		rn = len(zk)
	}
	rbuf := make([]Word, rn)
	nat.Zero(rbuf, rn)
	nat.Copy(rbuf, x, xn)
	zkbuf := make([]Word, rn)
	nat.Copy(zkbuf, zk, len(zk))
	actualRn, _ := nat.SubVar(rbuf, rbuf, rn, zkbuf, rn)
	nat.Copy(r, rbuf, actualRn)
	return zn, actualRn
}

// Sqrt is Root specialized to k=2.
func Sqrt(z []Word, x []Word, xn int) int { return Root(z, x, xn, 2) }

// --- small dynamically-sized bigint helpers used only by Root/RootRem ---

func trim(x []Word) []Word {
	n := nat.Strip(x, len(x))
	return x[:n]
}

func powSmall(base []Word, e uint) []Word {
	result := []Word{1}
	b := trim(append([]Word(nil), base...))
	for e > 0 {
		if e&1 == 1 {
			result = mulVec(result, b)
		}
		e >>= 1
		if e > 0 {
			b = mulVec(b, b)
		}
	}
	return trim(result)
}

func mulVec(a, b []Word) []Word {
	an, bn := len(a), len(b)
	out := make([]Word, an+bn)
	nat.Mul(out, a, an, b, bn)
	return trim(out)
}

func mulSmall(a []Word, y Word) []Word {
	out := make([]Word, len(a)+1)
	out[len(a)] = nat.Mul1(out, a, len(a), y)
	return trim(out)
}

func addVec(a, b []Word) []Word {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	abuf := make([]Word, n+1)
	bbuf := make([]Word, n+1)
	nat.Copy(abuf, a, len(a))
	nat.Copy(bbuf, b, len(b))
	c := nat.AddN(abuf, abuf, bbuf, n)
	abuf[n] = c
	return trim(abuf)
}

func divBig(x, y []Word) []Word {
	xn := nat.Strip(x, len(x))
	yn := nat.Strip(y, len(y))
	if yn == 0 {
		panic("ntheory: Root division by zero")
	}
	if xn < yn {
		return []Word{0}
	}
	if yn == 1 {
		q := make([]Word, xn)
		nat.DivModSmall(q, x, xn, y[0])
		return trim(q)
	}
	dnorm := make([]Word, yn)
	div := nat.NewDivisor(dnorm, y, yn)
	qn := xn - yn + 1
	q := make([]Word, qn)
	r := make([]Word, yn)
	scratch := make([]Word, xn+1)
	nat.DivModKnuth(q, r, x, xn, div, scratch)
	return trim(q)
}

func divSmallVec(x []Word, y Word) []Word {
	xn := nat.Strip(x, len(x))
	if xn == 0 {
		return []Word{0}
	}
	q := make([]Word, xn)
	nat.DivModSmall(q, x, xn, y)
	return trim(q)
}

func cmpTrim(a, b []Word) int {
	return nat.CmpVar(a, b)
}
