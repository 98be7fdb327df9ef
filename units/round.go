package units

import "math"

// Round converts a raw converted magnitude to its integer form using
// round-half-away-from-zero semantics (math.Round): 0.5 rounds to 1,
// -0.5 rounds to -1.
//
// Every comparison between quantities rounds independently through this
// function. That makes derived equality intransitive near rounding
// boundaries (a≈b and b≈c does not imply a≈c). This is a deliberate,
// observable property of the design; do not replace rounded comparison with
// raw-value comparison.
func Round(value float64) int64 {
	return int64(math.Round(value))
}
