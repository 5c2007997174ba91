package word

import "github.com/klauspost/cpuid/v2"

// HasFastCarry reports whether the host has hardware carry-chain
// support (ADX+BMI2 on amd64) worth selecting the tightest lowering
// for. The arithmetic in this file always goes through math/bits
// regardless — Go has no portable inline-asm entry point for a
// per-feature carry-chain path without per-arch assembly files — but
// the flag is surfaced for diagnostics (cmd/bnconsole info) and for
// internal/config's Prefer3by2 default.
var HasFastCarry = cpuid.CPU.Supports(cpuid.ADX, cpuid.BMI2)
