package ntheory

import "bignum.mleku.dev/internal/nat"

// Jacobi computes the Jacobi symbol (u/v) for v > 0 odd, via the
// Shallit-Sorenson binary algorithm: strip twos from u, flipping the
// accumulated sign once per odd-length run when v mod 8 is 3 or 5,
// then (after swapping so u >= v, flipping sign when both are 3 mod 4)
// subtract v from u and repeat until u reaches zero. Returns 0 if the
// final v != 1.
func Jacobi(u []Word, un int, v []Word, vn int) int {
	un = nat.Strip(u, un)
	vn = nat.Strip(v, vn)
	if vn == 0 || v[0]&1 == 0 {
		panic("ntheory: Jacobi requires a positive odd second argument")
	}

	n := un
	if vn > n {
		n = vn
	}
	a := make([]Word, n)
	b := make([]Word, n)
	nat.Copy(a, u, un)
	nat.Copy(b, v, vn)

	sign := 1
	for !nat.IsZero(a, n) {
		k := nat.Ctz(a, n)
		if k > 0 {
			if k&1 == 1 {
				r := b[0] & 7
				if r == 3 || r == 5 {
					sign = -sign
				}
			}
			shiftRightBy(a, n, k)
		}
		if nat.CmpVar(a, b) < 0 {
			a, b = b, a
			if a[0]&3 == 3 && b[0]&3 == 3 {
				sign = -sign
			}
		}
		zn, _ := nat.SubVar(a, a, n, b, n)
		nat.Zero(a[zn:], n-zn)
	}

	if bn := nat.Strip(b, n); bn == 1 && b[0] == 1 {
		return sign
	}
	return 0
}

// Kronecker generalizes Jacobi to an arbitrary second argument
// (including even or negative v, signaled by the caller stripping the
// sign beforehand and passing it via vSign): twos are first stripped
// from v using the standard table {0,1,0,-1,0,-1,0,1} indexed by
// u mod 8, then the remaining odd-odd case reduces to Jacobi.
func Kronecker(u []Word, un int, uSign int, v []Word, vn int, vSign int) int {
	un = nat.Strip(u, un)
	vn = nat.Strip(v, vn)

	if vn == 0 {
		if un == 1 && u[0] == 1 {
			return 1
		}
		return 0
	}

	k := nat.Ctz(v, vn)
	sign := 1
	if k > 0 {
		table := [8]int{0, 1, 0, -1, 0, -1, 0, 1}
		if un == 0 {
			return 0
		}
		r := u[0] & 7
		s := table[r]
		for i := 0; i < k; i++ {
			sign *= s
			if s == 0 {
				return 0
			}
		}
		vShifted := make([]Word, vn)
		nat.Copy(vShifted, v, vn)
		shiftRightBy(vShifted, vn, k)
		vn = nat.Strip(vShifted, vn)
		v = vShifted
	}

	if vSign < 0 && uSign < 0 {
		sign = -sign
	}
	if vn == 0 {
		if un == 1 && u[0] == 1 {
			return sign
		}
		return 0
	}
	return sign * Jacobi(u, un, v, vn)
}
