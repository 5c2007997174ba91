package prime

import (
	"bignum.mleku.dev/bigz"
	"bignum.mleku.dev/internal/config"
	"bignum.mleku.dev/internal/drbg"
	"bignum.mleku.dev/internal/xlog"
)

// ProbablyPrime runs the Baillie-PSW composition (probab_prime_p)
// using config.Default.MillerRabinRounds.
func ProbablyPrime(n *bigz.Int, rng drbg.Source) bool {
	return probablyPrimeRounds(n, config.Default.MillerRabinRounds, rng)
}

// probablyPrimeRounds is the Baillie-PSW composition parameterized on
// the Miller-Rabin round count: small-prime table, evenness check,
// primorial trial division, Miller-Rabin (rounds+1 rounds, the last
// forced to base 2), then strong Lucas. Composite at any stage
// short-circuits to false.
func probablyPrimeRounds(n *bigz.Int, rounds int, rng drbg.Source) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.CmpInt64(1023) <= 0 {
		return bitmapTest(uint(n.Uint64()))
	}
	if n.Tstbit(0) == 0 {
		return false
	}
	if !trialDivide(n) {
		xlog.Default().Debug("probab_prime_p: rejected by primorial trial division")
		return false
	}
	if !millerRabin(n, rounds+1, true, rng) {
		xlog.Default().Debug("probab_prime_p: rejected by miller-rabin")
		return false
	}
	if !strongLucas(n, 0) {
		xlog.Default().Debug("probab_prime_p: rejected by strong lucas")
		return false
	}
	return true
}
