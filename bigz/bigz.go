// Package bigz implements the public signed big-integer layer: a
// growable Int built directly on internal/nat's limb kernels, with
// internal/modular, internal/powm, internal/ntheory and internal/codec
// supplying reduction, exponentiation, number-theoretic and
// byte/string conversion primitives respectively. This is the only
// package most callers of this module need to import; the internal/*
// packages remain available directly to constant-time or performance-
// sensitive callers that want the N-layer without the Z-layer's
// sign/growth bookkeeping.
package bigz

import (
	"bignum.mleku.dev/internal/nat"
	"bignum.mleku.dev/internal/word"
	"bignum.mleku.dev/internal/xerrors"
)

// Word re-exports the limb type for callers building raw vectors to
// pass to the Alias constructor or to read back from Limbs.
type Word = word.Word

// Int is a growable signed integer. Its three fields mirror the
// Z-layer record: limbs is the owned backing buffer, alloc its
// capacity, size a signed significant-length (size == 0 is the
// integer 0, |size| limbs are significant, sign(size) is the
// integer's sign). A read-only alias borrows an external limb slice
// with alloc pinned at 0; any operation that would mutate it aborts.
// The Go zero value Int{} is itself a valid, owned, freshly-allocated
// zero — it is not an alias, since it borrows nothing.
type Int struct {
	limbs []Word
	alloc int
	size  int
}

// New returns a new owned Int with value 0.
func New() *Int { return &Int{} }

// NewInt64 returns a new owned Int with value v.
func NewInt64(v int64) *Int { return New().SetInt64(v) }

// NewUint64 returns a new owned Int with value v.
func NewUint64(v uint64) *Int { return New().SetUint64(v) }

// Alias returns a read-only Int borrowing limbs (little-endian, as
// produced by internal/nat) without copying. limbs need not be
// pre-stripped. The result must never be passed as the destination of
// a mutating operation — doing so aborts the process, since a borrowed
// slice has no owned backing array to grow into.
func Alias(limbs []Word, negative bool) *Int {
	n := nat.Strip(limbs, len(limbs))
	size := n
	if negative {
		size = -n
	}
	return &Int{limbs: limbs, alloc: 0, size: size}
}

func (z *Int) isAlias() bool { return z.alloc == 0 && z.limbs != nil }

// sigLen returns the unsigned significant length.
func (z *Int) sigLen() int {
	if z.size < 0 {
		return -z.size
	}
	return z.size
}

// grow ensures z owns at least n limbs of capacity (n forced to at
// least 1, preserving the "capacity always >= 1" invariant),
// reallocating to exactly n when growing — no over-allocation. A
// read-only alias can never be grown in place: grow aborts, and
// callers that need to mutate an aliased value must Clone it first.
func (z *Int) grow(n int) {
	if n < 1 {
		n = 1
	}
	if n <= z.alloc {
		return
	}
	if z.isAlias() {
		xerrors.Abort("bigz: attempt to mutate a read-only alias")
	}
	nl := make([]Word, n)
	copy(nl, z.limbs[:z.sigLen()])
	z.limbs = nl
	z.alloc = n
}

// Realloc2 resizes z's backing capacity so it can hold a value of the
// given bit width, shrinking if the current capacity exceeds it —
// never below the current significant length, preserving the strip
// invariant. Aborts on a read-only alias, same as grow.
func (z *Int) Realloc2(bits int) {
	if z.isAlias() {
		xerrors.Abort("bigz: attempt to realloc a read-only alias")
	}
	n := bits/word.Bits + 1
	if n < 1 {
		n = 1
	}
	if sig := z.sigLen(); n < sig {
		n = sig
	}
	if n == z.alloc {
		return
	}
	nl := make([]Word, n)
	copy(nl, z.limbs[:z.sigLen()])
	z.limbs = nl
	z.alloc = n
}

// normalize strips z.limbs[:n] down to its significant length and
// records the result's sign (ignored when the value strips to zero).
func (z *Int) normalize(n int, neg bool) {
	n = nat.Strip(z.limbs, n)
	if n == 0 {
		z.size = 0
		return
	}
	if neg {
		z.size = -n
	} else {
		z.size = n
	}
}

// applySign negates z in place when neg is true and z is nonzero.
func applySign(z *Int, neg bool) {
	if neg && z.size != 0 {
		z.size = -z.size
	}
}

// Sign returns -1, 0 or +1.
func (z *Int) Sign() int {
	switch {
	case z.size < 0:
		return -1
	case z.size > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether z == 0.
func (z *Int) IsZero() bool { return z.size == 0 }

// Limbs returns z's significant limbs, little-endian, as a read-only
// view — callers must not mutate the returned slice.
func (z *Int) Limbs() []Word { return z.limbs[:z.sigLen()] }

// Set copies x's value into z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	n := x.sigLen()
	z.grow(n)
	nat.Copy(z.limbs, x.limbs, n)
	z.size = x.size
	return z
}

// Clone returns a new owned Int with x's value.
func (x *Int) Clone() *Int { return New().Set(x) }

// Swap exchanges x and y's values (and ownership of their backing
// buffers) atomically at the value level — no limb data is copied.
func Swap(x, y *Int) {
	x.limbs, y.limbs = y.limbs, x.limbs
	x.alloc, y.alloc = y.alloc, x.alloc
	x.size, y.size = y.size, x.size
}

// SetInt64 sets z to v.
func (z *Int) SetInt64(v int64) *Int {
	neg := v < 0
	var uv uint64
	if neg {
		uv = uint64(-(v + 1)) + 1 // avoids overflow on math.MinInt64
	} else {
		uv = uint64(v)
	}
	return z.SetUint64Signed(uv, neg)
}

// SetUint64 sets z to v (always non-negative).
func (z *Int) SetUint64(v uint64) *Int { return z.SetUint64Signed(v, false) }

// SetUint64Signed sets z to v with the given sign (v == 0 is always
// the integer 0, regardless of neg).
func (z *Int) SetUint64Signed(v uint64, neg bool) *Int {
	z.grow(1)
	if v == 0 {
		z.size = 0
		return z
	}
	z.limbs[0] = Word(v)
	if neg {
		z.size = -1
	} else {
		z.size = 1
	}
	return z
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return nat.CmpVar(x.limbs[:x.sigLen()], y.limbs[:y.sigLen()])
}

// Cmp returns -1, 0, +1 comparing x and y as signed integers.
func (x *Int) Cmp(y *Int) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	if sx == 0 {
		return 0
	}
	c := x.CmpAbs(y)
	if sx < 0 {
		return -c
	}
	return c
}

// CmpInt64 compares x against the plain value v.
func (x *Int) CmpInt64(v int64) int {
	return x.Cmp(NewInt64(v))
}

// Uint64 returns the low 64 bits of |x| (no overflow check — callers
// that need to know whether x actually fits should check x.BitLen()
// first).
func (x *Int) Uint64() uint64 {
	if x.sigLen() == 0 {
		return 0
	}
	return uint64(x.limbs[0])
}
