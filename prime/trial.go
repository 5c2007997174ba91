package prime

import "bignum.mleku.dev/bigz"

// smallFactor reports whether any of the first count entries of
// smallPrimes divides n, along with which one (0 if none does).
func smallFactor(n *bigz.Int, count int) bigz.Word {
	if count > len(smallPrimes) {
		count = len(smallPrimes)
	}
	for _, p := range smallPrimes[:count] {
		w := bigz.Word(p)
		if bigz.GcdWord(n, w) == w {
			return w
		}
	}
	return 0
}

// trialDivide reports whether n survives trial division by every
// prime below 1024 (n itself excepted): true means no small factor was
// found, false means n is composite (or equals one of the small
// primes' multiples).
func trialDivide(n *bigz.Int) bool {
	for _, p := range smallPrimes {
		if n.CmpInt64(int64(p)) == 0 {
			return true
		}
		if w := bigz.Word(p); bigz.GcdWord(n, w) == w {
			return false
		}
	}
	return true
}
