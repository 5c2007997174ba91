package word

import "testing"

func TestAddSub(t *testing.T) {
	z, c := Add(Max, 1)
	if z != 0 || c != 1 {
		t.Fatalf("Add(Max,1) = (%d,%d), want (0,1)", z, c)
	}
	z, c = Add(3, 4)
	if z != 7 || c != 0 {
		t.Fatalf("Add(3,4) = (%d,%d), want (7,0)", z, c)
	}

	z, c = Sub(3, 4)
	if z != Max || c != 1 {
		t.Fatalf("Sub(3,4) = (%d,%d), want (Max,1)", z, c)
	}
	z, c = Sub(4, 3)
	if z != 1 || c != 0 {
		t.Fatalf("Sub(4,3) = (%d,%d), want (1,0)", z, c)
	}
}

func TestAddCSubCChain(t *testing.T) {
	z, c := AddC(Max, Max, 1)
	if z != Max || c != 1 {
		t.Fatalf("AddC(Max,Max,1) = (%d,%d), want (Max,1)", z, c)
	}
	z, c = SubC(0, 0, 1)
	if z != Max || c != 1 {
		t.Fatalf("SubC(0,0,1) = (%d,%d), want (Max,1)", z, c)
	}
}

func TestMulSqr(t *testing.T) {
	hi, lo := Mul(Max, Max)
	wantHi, wantLo := uint64(0xfffffffffffffffe), uint64(1)
	if hi != wantHi || lo != wantLo {
		t.Fatalf("Mul(Max,Max) = (%#x,%#x), want (%#x,%#x)", hi, lo, wantHi, wantLo)
	}
	hi2, lo2 := Sqr(Max)
	if hi2 != hi || lo2 != lo {
		t.Fatalf("Sqr(Max) disagrees with Mul(Max,Max)")
	}
}

func TestMulAdd1(t *testing.T) {
	lo, hi := MulAdd1(10, 20, 5)
	if lo != 205 || hi != 0 {
		t.Fatalf("MulAdd1(10,20,5) = (%d,%d), want (205,0)", lo, hi)
	}
}

func TestSubMul1(t *testing.T) {
	z, borrow := SubMul1(100, 10, 5, 0)
	if z != 50 || borrow != 0 {
		t.Fatalf("SubMul1(100,10,5,0) = (%d,%d), want (50,0)", z, borrow)
	}
	// 10 - (10*20+0) = 10-200 = -190 mod B, with a borrow-out.
	z, borrow = SubMul1(10, 10, 20, 0)
	want := Max - 190 + 1
	if z != want || borrow == 0 {
		t.Fatalf("SubMul1(10,10,20,0) = (%d,%d), want (%d, nonzero)", z, borrow, want)
	}
}

func TestPopCountBitLen(t *testing.T) {
	if PopCount(0) != 0 {
		t.Errorf("PopCount(0) != 0")
	}
	if PopCount(Max) != Bits {
		t.Errorf("PopCount(Max) != %d", Bits)
	}
	if BitLen(0) != 0 {
		t.Errorf("BitLen(0) != 0")
	}
	if BitLen(1) != 1 {
		t.Errorf("BitLen(1) != 1")
	}
	if BitLen(Max) != Bits {
		t.Errorf("BitLen(Max) != %d", Bits)
	}
}

func TestLeadingTrailingZeros(t *testing.T) {
	if LeadingZeros(0) != Bits {
		t.Errorf("LeadingZeros(0) != %d", Bits)
	}
	if TrailingZeros(0) != Bits {
		t.Errorf("TrailingZeros(0) != %d", Bits)
	}
	if LeadingZeros(1) != Bits-1 {
		t.Errorf("LeadingZeros(1) != %d", Bits-1)
	}
	if TrailingZeros(1<<10) != 10 {
		t.Errorf("TrailingZeros(1<<10) != 10")
	}
}

func TestInv2by1(t *testing.T) {
	d := Word(1) << (Bits - 1) // minimal normalized divisor
	v := Inv2by1(d)
	// v = floor((B*B-1-d*B)/d); for d = 2^63 this works out to B-1.
	want := Max
	if v != want {
		t.Fatalf("Inv2by1(2^63) = %#x, want %#x", v, want)
	}
}

func TestInv2by1PanicsOnUnnormalized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Inv2by1 should panic on an unnormalized divisor")
		}
	}()
	Inv2by1(1)
}

func TestInvModRoundTrip(t *testing.T) {
	for _, d := range []Word{1, 3, 5, 0xdeadbeef, Max} {
		m := InvMod(d)
		if d*m != 1 {
			t.Errorf("InvMod(%#x) = %#x, d*m = %#x, want 1", d, m, d*m)
		}
	}
}

func TestInvModPanicsOnEven(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("InvMod should panic on an even input")
		}
	}()
	InvMod(2)
}
