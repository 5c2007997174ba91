package ntheory

import "bignum.mleku.dev/internal/nat"

// Small dynamically-sized bigint helpers shared by Root/RootRem and
// Sqrtm/SqrtPQ. These operate on freshly allocated, always-trimmed
// []Word slices rather than caller-owned buffers — appropriate for
// the occasional higher-level computation (a handful of root/sqrt
// calls), as opposed to the N-layer's hot inner loops.

func remBig(x, m []Word) []Word {
	xn := nat.Strip(x, len(x))
	mn := nat.Strip(m, len(m))
	if mn == 0 {
		panic("ntheory: division by zero")
	}
	if xn < mn {
		return trim(append([]Word(nil), x[:xn]...))
	}
	if mn == 1 {
		q := make([]Word, xn)
		r := nat.DivModSmall(q, x, xn, m[0])
		return []Word{r}
	}
	dnorm := make([]Word, mn)
	div := nat.NewDivisor(dnorm, m, mn)
	qn := xn - mn + 1
	q := make([]Word, qn)
	r := make([]Word, mn)
	scratch := make([]Word, xn+1)
	nat.DivModKnuth(q, r, x, xn, div, scratch)
	return trim(r)
}

// subAbs returns |a-b| and its sign (+1 if a>=b, -1 otherwise).
func subAbs(a, b []Word) ([]Word, int) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	abuf := make([]Word, n)
	bbuf := make([]Word, n)
	nat.Copy(abuf, a, len(a))
	nat.Copy(bbuf, b, len(b))
	out := make([]Word, n)
	zn, sign := nat.SubVar(out, abuf, n, bbuf, n)
	return trim(out[:zn]), sign
}

func mulmod(a, b, m []Word) []Word { return remBig(mulVec(a, b), m) }

func addmod(a, b, m []Word) []Word { return remBig(addVec(a, b), m) }

func submod(a, b, m []Word) []Word {
	d, sign := subAbs(a, b)
	if sign >= 0 {
		return remBig(d, m)
	}
	return remBig(subAbs2(m, d), m)
}

// subAbs2 computes m-d assuming m>=d (used only when submod's
// difference came out negative and must be folded back into [0,m)).
func subAbs2(m, d []Word) []Word {
	r, _ := subAbs(m, d)
	return r
}

func isOneVec(x []Word) bool {
	t := trim(x)
	return len(t) == 1 && t[0] == 1
}

func isZeroVec(x []Word) bool {
	return len(trim(x)) == 0
}
