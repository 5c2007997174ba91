package codec

import (
	"strings"

	"github.com/templexxx/xhex"

	"bignum.mleku.dev/internal/nat"
)

// digitTable36 maps byte values to digit values for bases <= 36
// (case-insensitive); digitTable62 does the same for bases up to 62
// (case-sensitive, digits then uppercase then lowercase, matching GMP's
// convention). 0xff marks an invalid digit.
var digitTable36 [256]byte
var digitTable62 [256]byte

func init() {
	for i := range digitTable36 {
		digitTable36[i] = 0xff
		digitTable62[i] = 0xff
	}
	for d := byte(0); d < 10; d++ {
		digitTable36['0'+d] = d
		digitTable62['0'+d] = d
	}
	for d := byte(0); d < 26; d++ {
		digitTable36['a'+d] = 10 + d
		digitTable36['A'+d] = 10 + d
		digitTable62['A'+d] = 10 + d
		digitTable62['a'+d] = 36 + d
	}
}

func digitValue(c byte, base int) byte {
	if base <= 36 {
		return digitTable36[c]
	}
	return digitTable62[c]
}

// sniffBase inspects s's prefix and returns the base to use along with
// the number of prefix bytes to skip.
func sniffBase(s string) (base int, skip int) {
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B':
			return 2, 2
		case 'o', 'O':
			return 8, 2
		case 'x', 'X':
			return 16, 2
		}
	}
	if len(s) >= 1 && s[0] == '0' {
		return 8, 1
	}
	return 10, 0
}

// ImportString parses s in the given base (0 sniffs the prefix) into
// z, which must provide zn limbs. Returns the significant limb
// length and true on success; on any invalid digit or destination
// overflow, clears z and returns (0, false).
func ImportString(z []Word, zn int, s string, base int) (int, bool) {
	sign := 1
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	_ = sign // caller (bigz) applies the sign; this layer reports magnitude only

	if base == 0 {
		var skip int
		base, skip = sniffBase(s)
		s = s[skip:]
	} else if base == 16 && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	} else if base == 2 && len(s) >= 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B') {
		s = s[2:]
	} else if base == 8 && len(s) >= 2 && s[0] == '0' && (s[1] == 'o' || s[1] == 'O') {
		s = s[2:]
	}
	if base < 2 || base > 62 {
		nat.Zero(z, zn)
		return 0, false
	}
	if len(s) == 0 {
		nat.Zero(z, zn)
		return 0, false
	}

	nat.Zero(z, zn)

	if base == 16 && isHexFast(s) {
		return importHex(z, zn, s)
	}

	if base&(base-1) == 0 {
		return importPow2(z, zn, s, base)
	}
	return importGeneral(z, zn, s, base)
}

// isHexFast reports whether s is long enough and even-length enough
// for the xhex bulk decoder to be worth dispatching to; odd-length or
// short hex strings fall back to the generic power-of-two importer.
func isHexFast(s string) bool {
	return len(s) >= 16 && len(s)%2 == 0
}

// importHex decodes an even-length hex string via templexxx/xhex's
// SIMD-accelerated decoder, then imports the resulting bytes big-endian.
func importHex(z []Word, zn int, s string) (int, bool) {
	buf := make([]byte, len(s)/2)
	if err := xhex.Decode(buf, []byte(s)); err != nil {
		nat.Zero(z, zn)
		return 0, false
	}
	n := bytesToLimbs(z, zn, buf)
	if n < 0 {
		nat.Zero(z, zn)
		return 0, false
	}
	return n, true
}

// bytesToLimbs imports a big-endian byte slice into z, returning the
// significant length, or -1 if it overflows zn limbs.
func bytesToLimbs(z []Word, zn int, buf []byte) int {
	need := (len(buf) + 7) / 8
	if need > zn {
		// leading bytes beyond zn capacity must all be zero
		extra := len(buf) - zn*8
		for i := 0; i < extra; i++ {
			if buf[i] != 0 {
				return -1
			}
		}
		buf = buf[extra:]
	}
	return ImportBytes(z, zn, buf, Big)
}

func importPow2(z []Word, zn int, s string, base int) (int, bool) {
	bitsPerDigit := uint(0)
	for b := base; b > 1; b >>= 1 {
		bitsPerDigit++
	}
	n := 0
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i], base)
		if d == 0xff || int(d) >= base {
			nat.Zero(z, zn)
			return 0, false
		}
		carry := nat.Lshift(z, z, zn, bitsPerDigit)
		if carry != 0 {
			nat.Zero(z, zn)
			return 0, false
		}
		z[0] |= Word(d)
		n = nat.Strip(z, zn)
	}
	return n, true
}

func importGeneral(z []Word, zn int, s string, base int) (int, bool) {
	bw := Word(base)
	n := 0
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i], base)
		if d == 0xff || int(d) >= base {
			nat.Zero(z, zn)
			return 0, false
		}
		top := nat.Mul1(z, z, zn, bw)
		c := nat.Add1(z, z, zn, Word(d))
		if top != 0 || c != 0 {
			nat.Zero(z, zn)
			return 0, false
		}
		n = nat.Strip(z, zn)
	}
	return n, true
}

// ExportString renders x[:xn] in the given base (2..62). The general
// (non-power-of-two) path produces digits least-significant first and
// then reverses them; power-of-two bases are written most-significant
// digit first directly. Zero renders as "0".
func ExportString(x []Word, xn int, base int) string {
	xn = nat.Strip(x, xn)
	if base < 2 || base > 62 {
		panic("codec: Export requires base in [2,62]")
	}
	if xn == 0 {
		return "0"
	}

	alphabet := digitAlphabet(base)

	if base == 16 {
		return exportHex(x, xn)
	}

	if base&(base-1) == 0 {
		return exportPow2(x, xn, base, alphabet)
	}
	return exportGeneral(x, xn, base, alphabet)
}

func digitAlphabet(base int) string {
	const lower = "0123456789abcdefghijklmnopqrstuvwxyz"
	const upperThenLower = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	if base <= 36 {
		return lower[:base]
	}
	return upperThenLower[:base]
}

// exportHex uses templexxx/xhex's bulk encoder over the big-endian
// byte export, trimming the leading nibble when the top byte's high
// nibble is zero.
func exportHex(x []Word, xn int) string {
	blen := ByteLen(x, xn)
	buf := make([]byte, blen)
	ExportBytes(buf, x, xn, Big)
	dst := make([]byte, blen*2)
	xhex.Encode(dst, buf)
	s := string(dst)
	return strings.TrimLeft(s, "0")
}

func exportPow2(x []Word, xn int, base int, alphabet string) string {
	bitsPerDigit := uint(0)
	for b := base; b > 1; b >>= 1 {
		bitsPerDigit++
	}
	totalBits := nat.BitLen(x, xn)
	ndigits := (totalBits + int(bitsPerDigit) - 1) / int(bitsPerDigit)
	if ndigits == 0 {
		ndigits = 1
	}
	out := make([]byte, ndigits)
	for i := 0; i < ndigits; i++ {
		start := i * int(bitsPerDigit)
		d := nat.Getbits(x, xn, start, bitsPerDigit)
		out[ndigits-1-i] = alphabet[d]
	}
	return string(out)
}

func exportGeneral(x []Word, xn int, base int, alphabet string) string {
	buf := make([]Word, xn)
	nat.Copy(buf, x, xn)
	n := xn
	var digits []byte
	bw := Word(base)
	for n > 0 {
		r := nat.DivModSmall(buf, buf, n, bw)
		digits = append(digits, alphabet[r])
		n = nat.Strip(buf, n)
	}
	if len(digits) == 0 {
		digits = []byte{'0'}
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
