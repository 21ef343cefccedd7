// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"strconv"
)

// ValidateRate reports ErrInvalidRate unless 0 <= rate <= 1.
// NaN fails every comparison and is rejected as well.
func ValidateRate(rate float64) error {
	if !(rate >= 0 && rate <= 1) {
		return ErrInvalidRate
	}

	return nil
}

// ValidateIntensity reports ErrNonFinite for NaN or ±Inf.
func ValidateIntensity(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFinite
	}

	return nil
}

// formatValue prints v in the shortest form that round-trips.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
