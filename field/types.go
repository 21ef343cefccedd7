// SPDX-License-Identifier: MIT

package field

import "fmt"

// DefaultIntensity is the value a pollution source writes when the caller
// has no specific intensity in mind.
const DefaultIntensity = 100.0

// DefaultRate is the conventional diffusion rate for classroom runs.
const DefaultRate = 0.1

// Position addresses one cell. X indexes rows, Y indexes columns.
type Position struct {
	X int // row index
	Y int // column index
}

// String implements fmt.Stringer as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Stats summarizes the values of a Field.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Mass float64 // sum of all cells
}
