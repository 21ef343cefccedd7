// SPDX-License-Identifier: MIT

package sim

import "errors"

var (
	// ErrInvalidConfig wraps every configuration validation failure that has
	// no more specific sentinel in the field or airquality packages.
	ErrInvalidConfig = errors.New("sim: invalid configuration")

	// ErrInvalidSteps is returned by Run for a negative step count.
	ErrInvalidSteps = errors.New("sim: steps must be >= 0")
)
