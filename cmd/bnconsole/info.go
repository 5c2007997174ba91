package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bignum.mleku.dev/internal/config"
	"bignum.mleku.dev/internal/word"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print build-time capability probes and the active tunables",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("word width: %d bits\n", word.Bits)
		fmt.Printf("fast hardware carry chain (ADX+BMI2): %v\n", word.HasFastCarry)
		fmt.Printf("miller-rabin rounds: %d\n", config.Default.MillerRabinRounds)
		fmt.Printf("tonelli-shanks witness cap: %d\n", config.Default.TonelliShanksWitnessCap)
		fmt.Printf("sliding window width: %d\n", config.Default.SlideWindowWidth)
		fmt.Printf("fixed window width: %d\n", config.Default.FixedWindowWidth)
		fmt.Printf("scratch threshold (limbs): %d\n", config.Default.ScratchThreshold)
		fmt.Printf("prefer 3-by-2 division: %v\n", config.Default.Prefer3by2)
		fmt.Printf("override any tunable with %sNAME, e.g. %sMILLER_RABIN_ROUNDS\n", config.EnvPrefix, config.EnvPrefix)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
