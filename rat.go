package warehouse

import (
	"math/big"
	"strconv"
	"strings"
)

// isMultipleOf reports whether value is an exact multiple of divisor, using
// big.Rat arithmetic rather than floating point so that classic drift cases
// like 0.3 being a multiple of 0.1 are judged correctly. Each operand is read
// from its shortest decimal form, not its exact binary value.
func isMultipleOf(value, divisor float64) bool {
	if divisor == 0 {
		return false
	}
	v, vok := new(big.Rat).SetString(strconv.FormatFloat(value, 'g', -1, 64))
	d, dok := new(big.Rat).SetString(strconv.FormatFloat(divisor, 'g', -1, 64))
	if !vok || !dok {
		return false
	}
	q := new(big.Rat).Quo(v, d)
	return q.IsInt()
}

// formatNumber renders a float64 Value for a message: integers without a
// fractional part, other values rounded to at most 10 decimal places with
// trailing zeros dropped (5.5 renders as "5.5").
func formatNumber(v float64) string {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return "0"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	s := strings.TrimRight(r.FloatString(10), "0")
	return strings.TrimSuffix(s, ".")
}
