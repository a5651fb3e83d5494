package measure

import "strconv"

// FormatValue renders a quantity value as the shortest decimal string which
// parses back to the same float64. Whole numbers render without a decimal
// point and no exponent notation is used. Non-finite values render as "NaN",
// "+Inf" or "-Inf".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Format renders a quantity as "<value> <symbol>".
func Format(v float64, symbol string) string {
	return FormatValue(v) + " " + symbol
}
