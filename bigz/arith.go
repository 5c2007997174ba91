package bigz

import "bignum.mleku.dev/internal/nat"

// addAbs computes z := |x|+|y| and returns the stripped significant
// length (unsigned).
func (z *Int) addAbs(x, y *Int) int {
	xn, yn := x.sigLen(), y.sigLen()
	if xn < yn {
		x, y = y, x
		xn, yn = yn, xn
	}
	z.grow(xn + 1)
	c := nat.Add(z.limbs, x.limbs, xn, y.limbs, yn)
	z.limbs[xn] = c
	return nat.Strip(z.limbs, xn+1)
}

// subAbs computes z := |x|-|y|, requiring |x| >= |y|, and returns the
// stripped significant length.
func (z *Int) subAbs(x, y *Int) int {
	xn, yn := x.sigLen(), y.sigLen()
	z.grow(xn)
	nat.Sub(z.limbs, x.limbs, xn, y.limbs, yn)
	return nat.Strip(z.limbs, xn)
}

// combine implements both Add (ySign=1) and Sub (ySign=-1): matching
// signs sum absolute values and keep that sign, mismatched signs
// difference absolute values and take the sign of the larger-magnitude
// operand.
func combine(z, x, y *Int, ySign int) *Int {
	sx := x.Sign()
	sy := y.Sign() * ySign
	switch {
	case sy == 0:
		return z.Set(x)
	case sx == 0:
		z.Set(y)
		if ySign < 0 {
			z.size = -z.size
		}
		return z
	case sx == sy:
		n := z.addAbs(x, y)
		z.normalize(n, sx < 0)
	default:
		switch c := x.CmpAbs(y); {
		case c == 0:
			z.size = 0
		case c > 0:
			n := z.subAbs(x, y)
			z.normalize(n, sx < 0)
		default:
			n := z.subAbs(y, x)
			z.normalize(n, sy < 0)
		}
	}
	return z
}

// Add computes z := x+y.
func (z *Int) Add(x, y *Int) *Int { return combine(z, x, y, 1) }

// Sub computes z := x-y.
func (z *Int) Sub(x, y *Int) *Int { return combine(z, x, y, -1) }

// Neg computes z := -x.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.size = -z.size
	return z
}

// Abs computes z := |x|.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	if z.size < 0 {
		z.size = -z.size
	}
	return z
}

// AddWord computes z := x+w.
func (z *Int) AddWord(x *Int, w Word) *Int { return z.Add(x, NewUint64(uint64(w))) }

// SubWord computes z := x-w.
func (z *Int) SubWord(x *Int, w Word) *Int { return z.Sub(x, NewUint64(uint64(w))) }

// WordSub computes z := w-x (ui_sub/si_sub) as one signed subtraction
// with w as the minuend.
func (z *Int) WordSub(w Word, x *Int) *Int {
	z.Sub(NewUint64(uint64(w)), x)
	return z
}

// Mul computes z := x*y.
func (z *Int) Mul(x, y *Int) *Int {
	xn, yn := x.sigLen(), y.sigLen()
	if xn == 0 || yn == 0 {
		z.size = 0
		return z
	}
	neg := x.Sign() != y.Sign()
	buf := make([]Word, xn+yn)
	nat.Mul(buf, x.limbs, xn, y.limbs, yn)
	n := nat.Strip(buf, xn+yn)
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, neg)
	return z
}

// MulWord computes z := x*w (w treated as an unsigned multiplier,
// matching the rest of the ui-suffixed helper family).
func (z *Int) MulWord(x *Int, w Word) *Int {
	xn := x.sigLen()
	if xn == 0 || w == 0 {
		z.size = 0
		return z
	}
	buf := make([]Word, xn+1)
	buf[xn] = nat.Mul1(buf, x.limbs, xn, w)
	n := nat.Strip(buf, xn+1)
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, x.Sign() < 0)
	return z
}

// Sqr computes z := x*x.
func (z *Int) Sqr(x *Int) *Int {
	xn := x.sigLen()
	if xn == 0 {
		z.size = 0
		return z
	}
	buf := make([]Word, 2*xn)
	scratch := make([]Word, 2*xn)
	nat.Sqr(buf, x.limbs, xn, scratch)
	n := nat.Strip(buf, 2*xn)
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, false)
	return z
}
