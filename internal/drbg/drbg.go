// Package drbg implements the external RNG collaborator that primality
// testing and random-integer generation invoke synchronously, with
// failure delegated to the caller. This package supplies one concrete
// instance — a counter-mode SHA-256 DRBG — satisfying Go's io.Reader
// rather than a C callback shape, since that is the idiomatic
// rendering; it is a deterministic test/example generator, not a
// CSPRNG recommendation, and RNG choice otherwise stays outside the
// core's scope.
package drbg

import (
	"encoding/binary"

	sha256simd "github.com/minio/sha256-simd"

	"bignum.mleku.dev/internal/word"
)

type Word = word.Word

// CounterDRBG is a minimal counter-mode generator: output block i is
// SHA-256(seed || counter_i), counter incrementing once per block.
// Deterministic for a fixed seed, suitable for reproducible tests and
// for cmd/bnconsole's example-generation commands.
type CounterDRBG struct {
	seed    [32]byte
	counter uint64
	buf     [32]byte
	avail   int
}

// New seeds a CounterDRBG from an arbitrary-length key via one SHA-256
// pass.
func New(seed []byte) *CounterDRBG {
	h := sha256simd.New()
	h.Write(seed)
	d := &CounterDRBG{}
	copy(d.seed[:], h.Sum(nil))
	return d
}

func (d *CounterDRBG) refill() {
	h := sha256simd.New()
	h.Write(d.seed[:])
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], d.counter)
	h.Write(ctr[:])
	copy(d.buf[:], h.Sum(nil))
	d.counter++
	d.avail = 32
}

// Read fills buf with output bytes, implementing io.Reader. Never
// returns an error or short read; for the deterministic counter-mode
// construction the RNG callback's failure mode is simply "this never
// fails".
func (d *CounterDRBG) Read(buf []byte) (int, error) {
	n := len(buf)
	off := 0
	for off < n {
		if d.avail == 0 {
			d.refill()
		}
		k := copy(buf[off:], d.buf[32-d.avail:32])
		d.avail -= k
		off += k
	}
	return n, nil
}

// Source is the interface the rest of the module programs against — an
// RNG collaborator rendered as Go's io.Reader, with any seeding context
// folded into whichever concrete Source the caller constructs (e.g.
// CounterDRBG's seed) rather than threaded per call.
type Source interface {
	Read(buf []byte) (int, error)
}

// FillWords draws enough bytes from src to fill z[:zn] with uniform
// random limbs, little-endian by limb (matching internal/nat's
// convention), masking the top limb down to its low topBits bits so
// the result has at most (zn-1)*64+topBits significant bits. A topBits
// of 0 or 64 leaves the top limb unmasked.
func FillWords(src Source, z []Word, zn int, topBits int) {
	buf := make([]byte, zn*8)
	if _, err := src.Read(buf); err != nil {
		panic("drbg: source read failed: " + err.Error())
	}
	for i := 0; i < zn; i++ {
		var w Word
		for b := 0; b < 8; b++ {
			w |= Word(buf[i*8+b]) << (uint(b) * 8)
		}
		z[i] = w
	}
	if zn == 0 {
		return
	}
	if topBits > 0 && topBits < 64 {
		mask := (Word(1) << uint(topBits)) - 1
		z[zn-1] &= mask
	}
}
