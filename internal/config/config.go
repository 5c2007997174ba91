// Package config exposes process-wide tunables: the Miller-Rabin round
// count, the Tonelli-Shanks witness-search cap, sliding/fixed
// exponentiation window widths, and the small-vector scratch
// threshold. Each has a compiled-in default, overridable by a
// BIGNUM_-prefixed environment variable.
package config

import (
	"os"
	"strconv"

	"bignum.mleku.dev/internal/word"
)

const EnvPrefix = "BIGNUM_"

// Tunables holds the current effective configuration, computed once at
// package init from compiled-in defaults overridden by environment
// variables.
type Tunables struct {
	// MillerRabinRounds is the number of random-base Miller-Rabin rounds
	// run before a candidate is accepted as probably prime in the
	// Baillie-PSW composition, which adds one final base-2 round.
	MillerRabinRounds int

	// TonelliShanksWitnessCap bounds the non-residue witness search in
	// internal/ntheory's Tonelli-Shanks fallback: giving up and
	// returning false after this many candidates rather than looping
	// forever on a malformed or composite "prime" modulus.
	TonelliShanksWitnessCap int

	// SlideWindowWidth and FixedWindowWidth record the window widths of
	// internal/powm's variable-time sliding-window and constant-time
	// fixed-window interiors, respectively (5 and 4 by default).
	// internal/powm uses its own compiled-in constants and does not read
	// these fields; cmd/bnconsole info reports them.
	SlideWindowWidth int
	FixedWindowWidth int

	// ScratchThreshold is the limb count below which internal/nat-level
	// callers may prefer a fixed-size stack buffer over a heap
	// allocation for scratch space.
	ScratchThreshold int

	// Prefer3by2 selects, for divisors of two or more limbs, whether
	// nat.DivModKnuth estimates each quotient digit with nat.Div3by2 or
	// with nat.Div2by1 plus the classical one-limb refinement. Both are
	// correct; 3-by-2 is
	// faster on hardware with fast carry propagation but was a later
	// addition and is kept switchable.
	Prefer3by2 bool
}

// Default holds the process-wide tunables, computed once at init.
var Default = load()

func load() Tunables {
	return Tunables{
		MillerRabinRounds:       getEnvInt("MILLER_RABIN_ROUNDS", 20),
		TonelliShanksWitnessCap: getEnvInt("TONELLI_SHANKS_WITNESS_CAP", 1000),
		SlideWindowWidth:        getEnvInt("SLIDE_WINDOW_WIDTH", 5),
		FixedWindowWidth:        getEnvInt("FIXED_WINDOW_WIDTH", 4),
		ScratchThreshold:        getEnvInt("SCRATCH_THRESHOLD", 32),
		Prefer3by2:              getEnvBool("PREFER_3BY2", word.HasFastCarry),
	}
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch val {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}
