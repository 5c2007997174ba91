package codec

import "testing"

func TestByteLen(t *testing.T) {
	if n := ByteLen([]Word{0}, 1); n != 0 {
		t.Errorf("ByteLen(0) = %d, want 0", n)
	}
	if n := ByteLen([]Word{0xff}, 1); n != 1 {
		t.Errorf("ByteLen(0xff) = %d, want 1", n)
	}
	if n := ByteLen([]Word{0x100}, 1); n != 2 {
		t.Errorf("ByteLen(0x100) = %d, want 2", n)
	}
}

func TestExportImportBytesBigEndianRoundTrip(t *testing.T) {
	x := []Word{0x0102030405060708}
	buf := make([]byte, 8)
	ExportBytes(buf, x, 1, Big)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("ExportBytes(Big) = %v, want %v", buf, want)
		}
	}
	z := make([]Word, 1)
	zn := ImportBytes(z, 1, buf, Big)
	if zn != 1 || z[0] != x[0] {
		t.Fatalf("ImportBytes(Big) round trip = %#x, want %#x", z[0], x[0])
	}
}

func TestExportImportBytesLittleEndianRoundTrip(t *testing.T) {
	x := []Word{0x0102030405060708}
	buf := make([]byte, 8)
	ExportBytes(buf, x, 1, Little)
	want := []byte{8, 7, 6, 5, 4, 3, 2, 1}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("ExportBytes(Little) = %v, want %v", buf, want)
		}
	}
	z := make([]Word, 1)
	zn := ImportBytes(z, 1, buf, Little)
	if zn != 1 || z[0] != x[0] {
		t.Fatalf("ImportBytes(Little) round trip = %#x, want %#x", z[0], x[0])
	}
}

func TestExportBytesPadsHighOrder(t *testing.T) {
	x := []Word{0xab}
	buf := make([]byte, 4)
	ExportBytes(buf, x, 1, Big)
	want := []byte{0, 0, 0, 0xab}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("ExportBytes padded = %v, want %v", buf, want)
		}
	}
}

func TestImportBytesShortBigEndianInput(t *testing.T) {
	buf := []byte{0x01, 0x00, 0x00}
	z := make([]Word, 1)
	zn := ImportBytes(z, 1, buf, Big)
	if zn != 1 || z[0] != 0x10000 {
		t.Fatalf("ImportBytes = %#x (len %d), want 0x10000", z[0], zn)
	}
}

func TestImportStringDecimal(t *testing.T) {
	z := make([]Word, 2)
	zn, ok := ImportString(z, 2, "123456789012345", 10)
	if !ok {
		t.Fatal("ImportString(decimal) failed")
	}
	if zn != 1 || z[0] != 123456789012345 {
		t.Fatalf("ImportString(decimal) = %d, want 123456789012345", z[0])
	}
}

func TestImportStringHexPrefix(t *testing.T) {
	z := make([]Word, 1)
	zn, ok := ImportString(z, 1, "0xff", 0)
	if !ok || zn != 1 || z[0] != 0xff {
		t.Fatalf("ImportString(0xff) = (%v,%d,%v), want (255,1,true)", z, zn, ok)
	}
}

func TestImportStringBinaryPrefix(t *testing.T) {
	z := make([]Word, 1)
	zn, ok := ImportString(z, 1, "0b1011", 0)
	if !ok || zn != 1 || z[0] != 11 {
		t.Fatalf("ImportString(0b1011) = (%v,%d,%v), want (11,1,true)", z, zn, ok)
	}
}

func TestImportStringOctalLeadingZero(t *testing.T) {
	z := make([]Word, 1)
	zn, ok := ImportString(z, 1, "017", 0)
	if !ok || zn != 1 || z[0] != 15 {
		t.Fatalf("ImportString(017) = (%v,%d,%v), want (15,1,true)", z, zn, ok)
	}
}

func TestImportStringInvalidDigit(t *testing.T) {
	z := make([]Word, 1)
	_, ok := ImportString(z, 1, "12z9", 10)
	if ok {
		t.Fatal("ImportString should reject an invalid digit for base 10")
	}
}

func TestImportStringBase62RoundTripsExportString(t *testing.T) {
	x := []Word{123456789}
	s := ExportString(x, 1, 62)
	z := make([]Word, 1)
	zn, ok := ImportString(z, 1, s, 62)
	if !ok || zn != 1 || z[0] != x[0] {
		t.Fatalf("base62 round trip of %d via %q = (%v,%v), want (123456789,true)", x[0], s, z, ok)
	}
}

func TestExportStringDecimal(t *testing.T) {
	s := ExportString([]Word{12345}, 1, 10)
	if s != "12345" {
		t.Fatalf("ExportString(12345,10) = %q, want %q", s, "12345")
	}
}

func TestExportStringHex(t *testing.T) {
	s := ExportString([]Word{0xdeadbeef}, 1, 16)
	if s != "deadbeef" {
		t.Fatalf("ExportString(0xdeadbeef,16) = %q, want %q", s, "deadbeef")
	}
}

func TestExportStringBinary(t *testing.T) {
	s := ExportString([]Word{0b1011}, 1, 2)
	if s != "1011" {
		t.Fatalf("ExportString(0b1011,2) = %q, want %q", s, "1011")
	}
}

func TestExportStringZero(t *testing.T) {
	if s := ExportString([]Word{0}, 1, 10); s != "0" {
		t.Fatalf("ExportString(0,10) = %q, want %q", s, "0")
	}
}

func TestExportStringPanicsOnBadBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ExportString should panic on base outside [2,62]")
		}
	}()
	ExportString([]Word{1}, 1, 63)
}

func TestImportExportHexLongRoundTrip(t *testing.T) {
	// Exercise the xhex fast path (>=16 hex chars, even length).
	x := []Word{0x1111222233334444, 0x5555666677778888}
	buf := make([]byte, 16)
	ExportBytes(buf, x, 2, Big)
	s := ExportString(x, 2, 16)
	z := make([]Word, 2)
	zn, ok := ImportString(z, 2, s, 16)
	if !ok || zn != 2 || z[0] != x[0] || z[1] != x[1] {
		t.Fatalf("hex round trip via %q = (%v,%v), want %v", s, z, ok, x)
	}
}
