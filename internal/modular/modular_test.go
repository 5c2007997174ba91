package modular

import "testing"

func TestBarrettReduceSingleLimb(t *testing.T) {
	n := []Word{97}
	b := NewBarrett(n, 1)
	// x = 123456 mod 97: 123456 = 1272*97 + 72
	x := []Word{123456}
	z := make([]Word, 1)
	scratch := make([]Word, 2*1+3*1+2)
	b.Reduce(z, x, 1, scratch)
	if z[0] != 72 {
		t.Fatalf("Barrett.Reduce(123456 mod 97) = %d, want 72", z[0])
	}
}

func TestBarrettReduceMultiLimb(t *testing.T) {
	// modulus 2^64+1, reduce (2^64+1)*6 + 5 -> remainder 5.
	n := []Word{1, 1}
	b := NewBarrett(n, 2)
	// x = 6*(2^64+1) + 5 = 6*2^64 + 11, laid out as 3 limbs.
	x := []Word{11, 6, 0}
	z := make([]Word, 2)
	scratch := make([]Word, 2*3+3*2+2)
	b.Reduce(z, x, 3, scratch)
	if z[0] != 5 || z[1] != 0 {
		t.Fatalf("Barrett.Reduce = %v, want [5 0]", z)
	}
}

func TestMontgomeryRoundTrip(t *testing.T) {
	m := []Word{97}
	mt := NewMontgomery(m, 1)
	scratch := make([]Word, 2*1+1)

	x := []Word{55}
	mont := make([]Word, 1)
	mt.ToMontgomery(mont, x, scratch)
	back := make([]Word, 1)
	mt.FromMontgomery(back, mont, scratch)
	if back[0] != 55 {
		t.Fatalf("Montgomery round trip: got %d, want 55", back[0])
	}
}

func TestMontgomeryMulVarTimeMatchesPlainProduct(t *testing.T) {
	m := []Word{97}
	mt := NewMontgomery(m, 1)
	scratch := make([]Word, 2*1+1)

	ax, bx := []Word{12}, []Word{34}
	amont, bmont := make([]Word, 1), make([]Word, 1)
	mt.ToMontgomery(amont, ax, scratch)
	mt.ToMontgomery(bmont, bx, scratch)

	prodMont := make([]Word, 1)
	mt.MulVarTime(prodMont, amont, bmont, scratch)
	prod := make([]Word, 1)
	mt.FromMontgomery(prod, prodMont, scratch)

	want := Word((12 * 34) % 97)
	if prod[0] != want {
		t.Fatalf("Montgomery product = %d, want %d", prod[0], want)
	}
}

func TestMontgomeryConstTimeMatchesVarTime(t *testing.T) {
	m := []Word{97}
	mt := NewMontgomery(m, 1)
	scratch := make([]Word, 2*1+1)
	constScratch := make([]Word, 5*1+4)

	ax, bx := []Word{40}, []Word{55}
	amont, bmont := make([]Word, 1), make([]Word, 1)
	mt.ToMontgomery(amont, ax, scratch)
	mt.ToMontgomery(bmont, bx, scratch)

	viaVarTime := make([]Word, 1)
	mt.MulVarTime(viaVarTime, amont, bmont, scratch)
	viaConstTime := make([]Word, 1)
	mt.MulConstTime(viaConstTime, amont, bmont, constScratch)

	if viaVarTime[0] != viaConstTime[0] {
		t.Fatalf("MulConstTime = %d, MulVarTime = %d, want equal", viaConstTime[0], viaVarTime[0])
	}
}

func TestNewMontgomeryPanicsOnEvenModulus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewMontgomery should panic on an even modulus")
		}
	}()
	NewMontgomery([]Word{8}, 1)
}

func TestNewBarrettPanicsOnZeroModulus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewBarrett should panic on a zero-length modulus")
		}
	}()
	NewBarrett([]Word{0}, 1)
}
