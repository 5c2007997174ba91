package powm

import "bignum.mleku.dev/internal/nat"

// reduceIntoModulus writes x mod m into xr (mn limbs). x need not be
// reduced on entry; Powm's base may be arbitrarily larger than the
// modulus.
func reduceIntoModulus(xr []Word, x []Word, xn int, m []Word, mn int) {
	xn = nat.Strip(x, xn)
	if xn < mn {
		nat.Zero(xr, mn)
		nat.Copy(xr, x, xn)
		return
	}
	if mn == 1 {
		q := make([]Word, xn)
		r := nat.DivModSmall(q, x, xn, m[0])
		nat.Zero(xr, mn)
		xr[0] = r
		return
	}
	dnorm := make([]Word, mn)
	div := nat.NewDivisor(dnorm, m, mn)
	qn := xn - mn + 1
	q := make([]Word, qn)
	r := make([]Word, mn)
	scratch := make([]Word, xn+1)
	nat.DivModKnuth(q, r, x, xn, div, scratch)
	nat.Copy(xr, r, mn)
}
