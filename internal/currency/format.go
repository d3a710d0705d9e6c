// Package currency converts between Rappen amounts and the fund's textual
// money notation. The notation writes a zero part as a bare dash: "1.-" is
// one Franken, "-.05" is five Rappen and "- 1.20" is minus one Franken
// twenty. Format and Parse are exact inverses for every representable
// amount.
package currency

import (
	"fmt"
	"strconv"

	"coffee-fund-bot/internal/models"
)

// Format renders an amount in the dash notation. Negative amounts are
// prefixed with "- " (dash, space); zero is rendered as "0.-".
func Format(amount models.Rappen) string {
	prefix := ""
	if amount < 0 {
		prefix = "- "
	}

	abs := amount
	if abs < 0 {
		abs = -abs
	}

	return prefix + formatMajor(amount, abs/100) + "." + formatMinor(abs%100)
}

func formatMajor(amount, major models.Rappen) string {
	// The dash marker only stands in for zero Franken when there is a
	// Rappen part; a plain zero amount keeps its digit.
	if amount != 0 && major == 0 {
		return "-"
	}
	return strconv.FormatInt(int64(major), 10)
}

func formatMinor(minor models.Rappen) string {
	if minor == 0 {
		return "-"
	}
	return fmt.Sprintf("%02d", minor)
}
