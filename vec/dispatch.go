package vec

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set available on the host.
//
// All operations in this package are portable Go and produce identical
// results at every level. The level describes the host so that callers can
// report which hardware the lane semantics correspond to.
type DispatchLevel int

const (
	// DispatchScalar indicates no 128-bit SIMD unit was detected, or it was
	// disabled through NEON128_NO_SIMD.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates x86-64 SSE2 (128-bit SIMD).
	DispatchSSE2

	// DispatchNEON indicates ARM NEON / ASIMD (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoSimdEnvVar is the environment variable that forces the scalar level.
const NoSimdEnvVar = "NEON128_NO_SIMD"

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected SIMD instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the detected SIMD level.
// For example: "neon", "sse2", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// CurrentWidth returns the register width in bytes. It is always 16.
func CurrentWidth() int {
	return Lanes8
}

// HasNEON reports whether the host has ARM NEON and it was not disabled.
func HasNEON() bool {
	return currentLevel == DispatchNEON
}

// NoSimdEnv checks if the NEON128_NO_SIMD environment variable is set.
// Any non-empty value that does not parse as a bool counts as true.
func NoSimdEnv() bool {
	return parseNoSimd(os.Getenv(NoSimdEnvVar))
}

func parseNoSimd(val string) bool {
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
