package bigz

import (
	"bignum.mleku.dev/internal/drbg"
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

// Random sets z to a uniform value in [0, 2^bits) drawn from src.
func (z *Int) Random(src drbg.Source, bits int) *Int {
	if bits <= 0 {
		z.size = 0
		return z
	}
	n := (bits + word.Bits - 1) / word.Bits
	topBits := bits - (n-1)*word.Bits
	buf := make([]Word, n)
	drbg.FillWords(src, buf, n, topBits)
	sz := nat.Strip(buf, n)
	z.grow(sz)
	nat.Copy(z.limbs, buf, sz)
	z.normalize(sz, false)
	return z
}

// RandomBelow sets z to a uniform value in [0, n) via rejection
// sampling over Random(src, n.BitLen()).
func (z *Int) RandomBelow(src drbg.Source, n *Int) *Int {
	bits := n.BitLen()
	for {
		z.Random(src, bits)
		if z.Cmp(n) < 0 {
			return z
		}
	}
}
