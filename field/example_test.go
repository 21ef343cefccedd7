// SPDX-License-Identifier: MIT

package field_test

import (
	"fmt"

	"github.com/katalvlaran/smoglab/field"
)

// ExampleField_Diffuse places one source in the middle of a 5×5 grid and
// lets it spread for a single step at rate 0.2.
func ExampleField_Diffuse() {
	f, _ := field.New(5, 5)
	_ = f.SetPoint(field.Position{X: 2, Y: 2}, field.DefaultIntensity)

	next, _ := f.Diffuse(0.2)
	center, _ := next.At(2, 2)
	corner, _ := next.At(1, 1)
	border, _ := next.At(0, 2)
	fmt.Printf("center=%.2f neighbour=%.2f border=%.2f mass=%.2f\n", center, corner, border, next.Mass())

	// Output:
	// center=82.22 neighbour=2.22 border=0.00 mass=100.00
}

// ExampleField_SetPoint shows the fail-fast policy for coordinates outside
// the grid.
func ExampleField_SetPoint() {
	f, _ := field.New(5, 5)
	err := f.SetPoint(field.Position{X: 10, Y: 10}, 100)
	fmt.Println(err)

	// Output:
	// Field.SetPoint(10,10): field: position out of bounds
}
