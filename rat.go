package jsonschema

import (
	"math/big"
	"strings"
)

// formatRat renders a *big.Rat for error messages the way the teacher's
// FormatRat does: plain integer string when exact, otherwise a trimmed
// fixed-precision decimal. Kept as exact rational arithmetic (rather than
// float64) so multipleOf comparisons on values like 0.1 never suffer
// binary floating-point rounding error.
func formatRat(r *big.Rat) string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(10)
	dec = strings.TrimRight(dec, "0")
	dec = strings.TrimRight(dec, ".")
	if dec == "" {
		return "0"
	}
	return dec
}
