package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bignum.mleku.dev/bigz"
)

// parseArg parses a console argument into a fresh *bigz.Int, sniffing
// 0x/0o/0b/leading-zero prefixes the same way internal/codec does, and
// exits the command on a malformed digit rather than silently treating
// it as zero.
func parseArg(s string) *bigz.Int {
	z := bigz.New()
	if !z.SetString(s, 0) {
		fmt.Fprintf(os.Stderr, "bnconsole: not a valid integer literal: %q\n", s)
		os.Exit(2)
	}
	return z
}

func runBinary(op func(z, x, y *bigz.Int) *bigz.Int) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		x, y := parseArg(args[0]), parseArg(args[1])
		z := op(bigz.New(), x, y)
		fmt.Println(z.Text(10))
	}
}

var addCmd = &cobra.Command{
	Use:   "add X Y",
	Short: "Print X + Y",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary((*bigz.Int).Add),
}

var subCmd = &cobra.Command{
	Use:   "sub X Y",
	Short: "Print X - Y",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary((*bigz.Int).Sub),
}

var mulCmd = &cobra.Command{
	Use:   "mul X Y",
	Short: "Print X * Y",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary((*bigz.Int).Mul),
}

var quoCmd = &cobra.Command{
	Use:   "quo X Y",
	Short: "Print the truncated (T-division) quotient of X / Y",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary((*bigz.Int).Quo),
}

var remCmd = &cobra.Command{
	Use:   "rem X Y",
	Short: "Print the T-division remainder of X / Y",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary((*bigz.Int).Rem),
}

var modCmd = &cobra.Command{
	Use:   "mod X Y",
	Short: "Print the Euclidean (always non-negative) remainder of X mod Y",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, y := parseArg(args[0]), parseArg(args[1])
		fmt.Println(bigz.Mod(bigz.New(), x, y).Text(10))
	},
}

func init() {
	rootCmd.AddCommand(addCmd, subCmd, mulCmd, quoCmd, remCmd, modCmd)
}
