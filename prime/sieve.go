// Package prime implements the Baillie-PSW primality suite 
// on top of bigz.Int: a small-prime bitmap and primorial trial division
// for cheap rejection, Miller-Rabin and strong Lucas as the two
// independent probable-prime tests, and RandPrime/NextPrime/FindPrime
// as the candidate-generation layer built on top of them.
package prime

// smallPrimesBitmap covers [0,1023] with bit i set iff i is prime.
// This is the single canonical encoding: both direct small-input
// membership queries and the primorial trial-division residue table
// below are derived from it, never duplicated.
var smallPrimesBitmap [128]byte // 1024 bits

func init() {
	sieve := make([]bool, 1024)
	for i := range sieve {
		sieve[i] = true
	}
	sieve[0], sieve[1] = false, false
	for p := 2; p*p < 1024; p++ {
		if !sieve[p] {
			continue
		}
		for m := p * p; m < 1024; m += p {
			sieve[m] = false
		}
	}
	for i, isPrime := range sieve {
		if isPrime {
			smallPrimesBitmap[i/8] |= 1 << uint(i%8)
		}
	}
}

func bitmapTest(n uint) bool {
	if n >= 1024 {
		return false
	}
	return smallPrimesBitmap[n/8]&(1<<uint(n%8)) != 0
}

// smallPrimes is the list of primes below 1024, derived once from the
// bitmap at init time and reused both as the primorial trial-division
// table and as the first 16 witnesses randprime avoids.
var smallPrimes []uint

func init() {
	for n := uint(2); n < 1024; n++ {
		if bitmapTest(n) {
			smallPrimes = append(smallPrimes, n)
		}
	}
}

// trialDivisionSmallPrimes is the count of leading smallPrimes entries
// randprime's residue-avoidance loop checks against.
const trialDivisionSmallPrimes = 16
