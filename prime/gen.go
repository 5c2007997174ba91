package prime

import (
	"bignum.mleku.dev/bigz"
	"bignum.mleku.dev/internal/drbg"
	"bignum.mleku.dev/internal/xlog"
)

// randPrimeMRRounds is the fixed Miller-Rabin round count randprime
// uses, independent of config.Default.
const randPrimeMRRounds = 20

// randPrimeMaxDelta bounds the delta walk's enumeration: delta ranges
// over {0,2,...,2^20-2}.
const randPrimeMaxDelta = 1 << 20

// RandPrime draws a probable prime of exactly the given bit length: a
// random bit-string with the top two bits and the low bit forced set,
// then delta-walked by 2 through candidates whose primorial residues
// clear the 16 smallest primes (a candidate equal to one of those
// primes is kept), before running Baillie-PSW with 20
// Miller-Rabin rounds. If the delta walk exhausts its range, or pushes
// the candidate past the requested bit length, it restarts from a
// fresh random draw.
func RandPrime(bits int, rng drbg.Source) *bigz.Int {
	if bits < 2 {
		bits = 2
	}
	for {
		base := bigz.New().Random(rng, bits)
		base.SetBit(base, uint(bits-1))
		base.SetBit(base, uint(bits-2))
		base.SetBit(base, 0)

		if p, ok := randPrimeWalk(base, bits, rng); ok {
			return p
		}
		xlog.Default().Debug("randprime: delta walk exhausted, restarting")
	}
}

func randPrimeWalk(base *bigz.Int, bits int, rng drbg.Source) (*bigz.Int, bool) {
	cand := base.Clone()
	for delta := 0; delta < randPrimeMaxDelta; delta += 2 {
		if delta > 0 {
			cand.AddWord(base, bigz.Word(delta))
		}
		if cand.BitLen() != bits {
			return nil, false
		}
		if f := smallFactor(cand, trialDivisionSmallPrimes); f != 0 && cand.CmpInt64(int64(f)) != 0 {
			continue
		}
		if probablyPrimeRounds(cand, randPrimeMRRounds, rng) {
			return cand.Clone(), true
		}
	}
	return nil, false
}

// NextPrime returns the smallest probable prime strictly greater than
// x: rounds x up to an odd candidate at least 3, then increments by 2
// until Baillie-PSW passes.
func NextPrime(x *bigz.Int, rng drbg.Source) *bigz.Int {
	if x.CmpInt64(2) < 0 {
		return bigz.NewInt64(2)
	}
	cand := firstOddCandidate(x)
	for !ProbablyPrime(cand, rng) {
		cand.AddWord(cand, 2)
	}
	return cand
}

// FindPrime is NextPrime bounded to at most m candidate tests; ok is
// false if none of the m candidates probed is prime.
func FindPrime(x *bigz.Int, m int, rng drbg.Source) (p *bigz.Int, ok bool) {
	if x.CmpInt64(2) < 0 {
		return bigz.NewInt64(2), true
	}
	cand := firstOddCandidate(x)
	for i := 0; i < m; i++ {
		if ProbablyPrime(cand, rng) {
			return cand, true
		}
		cand.AddWord(cand, 2)
	}
	return nil, false
}

// firstOddCandidate rounds x up to the smallest odd value strictly
// greater than x, clamped to a floor of 3.
func firstOddCandidate(x *bigz.Int) *bigz.Int {
	cand := bigz.New().Set(x)
	if cand.Tstbit(0) == 0 {
		cand.AddWord(cand, 1)
	} else {
		cand.AddWord(cand, 2)
	}
	if cand.CmpInt64(3) < 0 {
		cand.SetInt64(3)
	}
	return cand
}
