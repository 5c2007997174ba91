package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bignum.mleku.dev/bigz"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd X Y",
	Short: "Print gcd(X,Y)",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary((*bigz.Int).Gcd),
}

var invertCmd = &cobra.Command{
	Use:   "invert X M",
	Short: "Print X^-1 mod M, or report no inverse exists",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, m := parseArg(args[0]), parseArg(args[1])
		z := bigz.New()
		if !z.Invert(x, m) {
			fmt.Println("no inverse: gcd(X,M) != 1")
			return
		}
		fmt.Println(z.Text(10))
	},
}

var jacobiCmd = &cobra.Command{
	Use:   "jacobi A N",
	Short: "Print the Jacobi symbol (A/N)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, n := parseArg(args[0]), parseArg(args[1])
		fmt.Println(bigz.Jacobi(a, n))
	},
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt X",
	Short: "Print floor(sqrt(X))",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		x := parseArg(args[0])
		fmt.Println(bigz.New().Sqrt(x).Text(10))
	},
}

var sqrtmCmd = &cobra.Command{
	Use:   "sqrtm X P",
	Short: "Print a square root of X modulo prime P, or report a non-residue",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, p := parseArg(args[0]), parseArg(args[1])
		z := bigz.New()
		if !z.Sqrtm(x, p) {
			fmt.Println("no square root: X is a quadratic non-residue mod P")
			return
		}
		fmt.Println(z.Text(10))
	},
}

var powmCmd = &cobra.Command{
	Use:   "powm X Y M",
	Short: "Print X^Y mod M",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		x, y, m := parseArg(args[0]), parseArg(args[1]), parseArg(args[2])
		fmt.Println(bigz.New().Powm(x, y, m).Text(10))
	},
}

func init() {
	rootCmd.AddCommand(gcdCmd, invertCmd, jacobiCmd, sqrtCmd, sqrtmCmd, powmCmd)
}
