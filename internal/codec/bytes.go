// Package codec implements the byte and string import/export layer:
// endian-aware byte serialization and multi-base string
// parsing/printing, built directly on internal/nat's limb primitives.
package codec

import (
	"unsafe"

	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
)

type Word = word.Word

// Endian selects the byte order of an import/export stream relative
// to the logical integer. Little and Big are explicit; Host resolves
// to whichever the running machine's native order is, probed once.
type Endian int

const (
	Little Endian = -1
	Host   Endian = 0
	Big    Endian = 1
)

var hostIsLittle = probeHostEndian()

func probeHostEndian() bool {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	return b[0] == 1
}

func resolve(e Endian) bool {
	if e == Host {
		return hostIsLittle
	}
	return e == Little
}

// ByteLen returns the number of bytes needed to hold x[:xn] with no
// leading zero byte (0 for the zero value).
func ByteLen(x []Word, xn int) int {
	xn = nat.Strip(x, xn)
	if xn == 0 {
		return 0
	}
	bits := nat.BitLen(x, xn)
	return (bits + 7) / 8
}

// ExportBytes writes x[:xn] into buf as exactly len(buf) bytes in the
// requested endian order, zero-padding high-order bytes. len(buf) must
// be >= ByteLen(x, xn); the caller is responsible for sizing it.
func ExportBytes(buf []byte, x []Word, xn int, endian Endian) {
	xn = nat.Strip(x, xn)
	little := resolve(endian)
	n := len(buf)
	for i := range buf {
		buf[i] = 0
	}
	for i := 0; i < n; i++ {
		limb := i / 8
		shift := uint(i%8) * 8
		var b byte
		if limb < xn {
			b = byte(x[limb] >> shift)
		}
		if little {
			buf[i] = b
		} else {
			buf[n-1-i] = b
		}
	}
}

// ImportBytes reads buf (size bytes, in the requested endian order)
// into z, filling zn limbs with any unused high limbs zeroed. Returns
// the significant limb length of the result.
func ImportBytes(z []Word, zn int, buf []byte, endian Endian) int {
	little := resolve(endian)
	nat.Zero(z, zn)
	n := len(buf)
	for i := 0; i < n; i++ {
		var pos int
		if little {
			pos = i
		} else {
			pos = n - 1 - i
		}
		limb := pos / 8
		shift := uint(pos%8) * 8
		if limb >= zn {
			continue
		}
		z[limb] |= Word(buf[i]) << shift
	}
	return nat.Strip(z, zn)
}
