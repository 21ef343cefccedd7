// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "field: ". Return sentinels wrapped with
// call-site context; callers match with errors.Is.
var (
	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("field: dimensions must be > 0")

	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("field: position out of bounds")

	// ErrInvalidRate indicates a diffusion rate outside [0,1] or NaN.
	ErrInvalidRate = errors.New("field: rate must be within [0,1]")

	// ErrNonFinite indicates a NaN or ±Inf intensity.
	ErrNonFinite = errors.New("field: NaN or Inf intensity")

	// ErrNonRectangular indicates rows of differing lengths in FromRows.
	ErrNonRectangular = errors.New("field: all rows must have the same length")

	// ErrInvalidSteps indicates a negative step count in DiffuseN.
	ErrInvalidSteps = errors.New("field: step count must be >= 0")

	// ErrNilField indicates that a nil *Field was passed where one is required.
	ErrNilField = errors.New("field: nil field")
)

// fieldErrorf attaches method context and coordinates to a sentinel.
func fieldErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, x, y, err)
}
