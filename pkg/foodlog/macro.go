package foodlog

import (
	"regexp"
	"strconv"
)

var amountPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// ExtractAmount pulls the first numeric run out of a raw macro string, so
// "12.5g protein" becomes 12.5. The model's output is not guaranteed to be
// numeric; anything without a number counts as zero rather than erroring.
func ExtractAmount(raw string) float64 {
	match := amountPattern.FindString(raw)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}
