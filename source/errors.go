// SPDX-License-Identifier: MIT

package source

import "errors"

var (
	// ErrInvalidShape is returned when a sampler is asked for a grid with
	// non-positive rows or cols.
	ErrInvalidShape = errors.New("source: rows and cols must be > 0")

	// ErrNoInterior is returned by interior-only samplers on grids smaller
	// than 3×3, which have no interior cell to choose from.
	ErrNoInterior = errors.New("source: grid has no interior cells")
)

// Panic messages for option constructors (programmer error).
const (
	panicNilRand        = "source: WithRand(nil)"
	panicCountInvalid   = "source: WithCount: n must be > 0"
	panicIntensityRange = "source: WithIntensityRange: need finite lo <= hi"
	panicIntensity      = "source: WithIntensity: value must be finite"
)
