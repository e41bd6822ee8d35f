package dateformat

import "strconv"

// OrdinalSuffix returns the English ordinal suffix for n: "st", "nd", "rd" or
// "th". Numbers ending in 11, 12 and 13 always take "th".
func OrdinalSuffix(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if r := abs % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinalize returns n followed by its ordinal suffix, e.g. "22nd".
func Ordinalize(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}
