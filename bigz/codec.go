package bigz

import (
	"strings"

	"bignum.mleku.dev/internal/codec"
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

// String renders x in base 10.
func (x *Int) String() string { return x.Text(10) }

// Text renders x in the given base (2..62).
func (x *Int) Text(base int) string {
	s := codec.ExportString(x.limbs, x.sigLen(), base)
	if x.Sign() < 0 && s != "0" {
		return "-" + s
	}
	return s
}

// SetString parses s in the given base (0 sniffs a 0b/0o/0x/leading-0
// prefix, else decimal), tolerating surrounding whitespace and a
// leading +/- sign. Returns false on a malformed digit — a recoverable
// domain error — leaving z cleared to 0 rather than aborting.
func (z *Int) SetString(s string, base int) bool {
	t := strings.TrimSpace(s)
	neg := len(t) > 0 && t[0] == '-'

	buf := make([]Word, (len(t)*6)/word.Bits+2)
	n, ok := codec.ImportString(buf, len(buf), s, base)
	if !ok {
		z.size = 0
		return false
	}
	z.grow(n)
	nat.Copy(z.limbs, buf, n)
	z.normalize(n, neg && n > 0)
	return true
}

// SetBytes sets z from buf, interpreted as a non-negative magnitude in
// the given endian order.
func (z *Int) SetBytes(buf []byte, endian codec.Endian) *Int {
	n := (len(buf) + word.Bits/8 - 1) / (word.Bits / 8)
	zbuf := make([]Word, n)
	sz := codec.ImportBytes(zbuf, n, buf, endian)
	z.grow(sz)
	nat.Copy(z.limbs, zbuf, sz)
	z.normalize(sz, false)
	return z
}

// Bytes exports |x| as a minimal-length byte slice in the given
// endian order (0 bytes for zero).
func (x *Int) Bytes(endian codec.Endian) []byte {
	n := codec.ByteLen(x.limbs, x.sigLen())
	buf := make([]byte, n)
	codec.ExportBytes(buf, x.limbs, x.sigLen(), endian)
	return buf
}
