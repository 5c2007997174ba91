package bigz

import "bignum.mleku.dev/internal/codec"

// Compact encodes x into the single machine-word "nBits"-style
// compact form: bits[31:24] the byte-length exponent, bit 23 the
// sign, bits[22:0] the mantissa (value = sign * mantissa *
// 256^(exponent-3)). Lossy above 3 significant bytes — a compact
// difficulty-target-style encoding, not a lossless codec.
func (x *Int) Compact() uint32 {
	if x.Sign() == 0 {
		return 0
	}
	neg := x.Sign() < 0
	blen := codec.ByteLen(x.limbs, x.sigLen())
	buf := make([]byte, blen)
	codec.ExportBytes(buf, x.limbs, x.sigLen(), codec.Big)

	exponent := uint32(blen)
	var mantissa uint32
	switch {
	case blen >= 3:
		mantissa = uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
	case blen == 2:
		mantissa = uint32(buf[0])<<16 | uint32(buf[1])<<8
	case blen == 1:
		mantissa = uint32(buf[0]) << 16
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	out := exponent<<24 | mantissa
	if neg {
		out |= 0x00800000
	}
	return out
}

// SetCompact decodes the nBits-style compact form into z.
func (z *Int) SetCompact(c uint32) {
	exponent := int(c >> 24)
	neg := c&0x00800000 != 0
	mantissa := c & 0x007fffff

	if mantissa == 0 {
		z.size = 0
		return
	}

	m := NewUint64(uint64(mantissa))
	if exponent <= 3 {
		m.QuoTwoExp(m, uint((3-exponent)*8))
	} else {
		m.Lsh(m, uint((exponent-3)*8))
	}
	z.Set(m)
	if neg {
		z.size = -z.size
	}
}
