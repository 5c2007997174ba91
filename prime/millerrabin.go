package prime

import (
	"bignum.mleku.dev/bigz"
	"bignum.mleku.dev/internal/drbg"
	"bignum.mleku.dev/internal/xlog"
)

// millerRabin runs reps rounds of the Miller-Rabin test on odd n > 2,
// each round drawing a base a in [2,n-2] from rng; force2 makes the
// final round test base 2 specifically instead of a random base.
// Returns true only if every round passes.
func millerRabin(n *bigz.Int, reps int, force2 bool, rng drbg.Source) bool {
	nm1 := bigz.New().SubWord(n, 1)
	q := nm1.Clone()
	var k uint64
	for q.Tstbit(0) == 0 {
		q.QuoTwoExp(q, 1)
		k++
	}

	one := bigz.NewInt64(1)
	span := bigz.New().SubWord(n, 3)

	for round := 0; round < reps; round++ {
		var a *bigz.Int
		if force2 && round == reps-1 {
			a = bigz.NewInt64(2)
		} else {
			a = bigz.New().RandomBelow(rng, span)
			a.AddWord(a, 2)
		}

		y := bigz.New().Powm(a, q, n)
		if y.Cmp(one) == 0 || y.Cmp(nm1) == 0 {
			continue
		}

		composite := true
		for i := uint64(1); i < k; i++ {
			y.Sqr(y)
			bigz.Mod(y, y, n)
			if y.Cmp(nm1) == 0 {
				composite = false
				break
			}
			if y.Cmp(one) == 0 {
				break
			}
		}
		if composite {
			xlog.Default().Debug("miller-rabin witness rejected candidate", xlog.Int("round", round))
			return false
		}
	}
	return true
}
