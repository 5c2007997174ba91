package nat

import "bignum.mleku.dev/internal/word"

// Mul1 computes z := x*y (y a single limb) over xn limbs, returning
// the top-limb carry. z may alias x.
func Mul1(z, x []Word, xn int, y Word) Word {
	var c Word
	for i := 0; i < xn; i++ {
		z[i], c = word.MulAdd1(x[i], y, c)
	}
	return c
}

// AddMul1 computes z := z + x*y (y a single limb) over xn limbs,
// returning the top-limb carry.
func AddMul1(z, x []Word, xn int, y Word) Word {
	var c Word
	for i := 0; i < xn; i++ {
		lo, hi := word.MulAdd1(x[i], y, c)
		var cc Word
		z[i], cc = word.Add(z[i], lo)
		c = hi + cc
	}
	return c
}

// SubMul1 computes z := z - x*y (y a single limb) over xn limbs,
// returning the top-limb borrow.
func SubMul1(z, x []Word, xn int, y Word) Word {
	var c Word
	for i := 0; i < xn; i++ {
		z[i], c = word.SubMul1(z[i], x[i], y, c)
	}
	return c
}

// Mul computes the full schoolbook product z := x*y into z[0:xn+yn].
// z must not alias x or y. yn == 0 zeroes z[0:xn].
func Mul(z, x []Word, xn int, y []Word, yn int) {
	if yn == 0 {
		Zero(z, xn)
		return
	}
	z[xn] = Mul1(z, x, xn, y[0])
	for i := 1; i < yn; i++ {
		z[xn+i] = AddMul1(z[i:], x, xn, y[i])
	}
}

// Sqr computes z := x*x into z[0:2*xn], using the cross-term identity
// x_i*x_j = x_j*x_i to roughly halve the scalar multiplications versus
// a general Mul(z,x,xn,x,xn). scratch must provide 2*xn limbs and must
// not alias z or x.
func Sqr(z, x []Word, xn int, scratch []Word) {
	if xn == 0 {
		return
	}
	if xn == 1 {
		z[1], z[0] = word.Sqr(x[0])
		return
	}

	t := scratch[:2*xn]
	Zero(t, 2*xn)

	// Off-diagonal cross terms, each counted once: sum_{i<j} x_i*x_j * B^(i+j),
	// accumulated into t starting at limb 2*i+1 (the minimum possible weight
	// of any term x_i*x_j with j>i).
	for i := 0; i < xn-1; i++ {
		rest := xn - i - 1
		c := AddMul1(t[2*i+1:], x[i+1:xn], rest, x[i])
		if c != 0 {
			Add1(t[2*i+1+rest:], t[2*i+1+rest:], 2*xn-(2*i+1+rest), c)
		}
	}

	// Double the cross-term sum; the true cross-term sum is bounded well
	// below B^(2n), so the shift-out carry is always 0.
	Lshift(z, t, 2*xn, 1)

	// Add the diagonal squares x_i^2 * B^(2i), each via two ripple-carry
	// single-limb additions so any overflow propagates correctly into the
	// remaining high limbs of z.
	for i := 0; i < xn; i++ {
		hi, lo := word.Sqr(x[i])
		Add1(z[2*i:], z[2*i:], 2*xn-2*i, lo)
		Add1(z[2*i+1:], z[2*i+1:], 2*xn-(2*i+1), hi)
	}
}
