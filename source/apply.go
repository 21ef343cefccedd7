// SPDX-License-Identifier: MIT

package source

import (
	"fmt"

	"github.com/katalvlaran/smoglab/field"
)

// Apply writes each emission into f with SetPoint, in order, and returns how
// many were written. It stops at the first failure: emissions before it stay
// applied, the failing one and those after it are skipped.
func Apply(f *field.Field, emissions []Emission) (int, error) {
	if f == nil {
		return 0, field.ErrNilField
	}
	for i, e := range emissions {
		if err := f.SetPoint(e.Pos, e.Intensity); err != nil {
			return i, fmt.Errorf("source: emission %d %v: %w", i, e, err)
		}
	}

	return len(emissions), nil
}
