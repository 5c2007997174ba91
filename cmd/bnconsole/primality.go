package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"bignum.mleku.dev/bigz"
	"bignum.mleku.dev/internal/drbg"
	"bignum.mleku.dev/prime"
)

// newSeededSource seeds a CounterDRBG from crypto/rand so each
// invocation draws fresh candidates; the DRBG itself stays
// deterministic once seeded, matching internal/drbg's documented role
// as the module's one concrete RNG collaborator.
func newSeededSource() drbg.Source {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		panic("bnconsole: failed to seed RNG: " + err.Error())
	}
	return drbg.New(seed)
}

var isPrimeCmd = &cobra.Command{
	Use:   "isprime N",
	Short: "Report whether N passes the Baillie-PSW probable-prime test",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := parseArg(args[0])
		if prime.ProbablyPrime(n, newSeededSource()) {
			fmt.Println("probably prime")
		} else {
			fmt.Println("composite")
		}
	},
}

var nextPrimeCmd = &cobra.Command{
	Use:   "nextprime N",
	Short: "Print the smallest probable prime strictly greater than N",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := parseArg(args[0])
		fmt.Println(prime.NextPrime(n, newSeededSource()).Text(10))
	},
}

var randPrimeCmd = &cobra.Command{
	Use:   "randprime BITS",
	Short: "Generate a uniform random probable prime of the given bit length",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bits := parseArg(args[0])
		if bits.Sign() <= 0 || bits.Cmp(bigz.NewInt64(1<<20)) > 0 {
			fmt.Println("bnconsole: bit length must be a small positive integer")
			return
		}
		fmt.Println(prime.RandPrime(int(bits.Uint64()), newSeededSource()).Text(10))
	},
}

func init() {
	rootCmd.AddCommand(isPrimeCmd, nextPrimeCmd, randPrimeCmd)
}
