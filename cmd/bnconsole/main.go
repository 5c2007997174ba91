// Command bnconsole is a small console exercising bignum.mleku.dev end
// to end: arithmetic, division, number theory, primality and random
// generation, each reachable as one subcommand operating on decimal,
// hex (0x-prefixed), octal (0-prefixed) or binary (0b-prefixed)
// arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bignum.mleku.dev/internal/xlog"
)

var rootCmd = &cobra.Command{
	Use:   "bnconsole",
	Short: "Arbitrary-precision integer console built on bignum.mleku.dev",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		xlog.SetDefault(xlog.NewDefaultLogger())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
