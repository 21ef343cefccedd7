// SPDX-License-Identifier: MIT

package plume_test

import (
	"fmt"

	"github.com/katalvlaran/smoglab/field"
	"github.com/katalvlaran/smoglab/plume"
)

// ExampleFind follows one source through a diffusion step: the spread-out
// cloud is still a single plume and keeps the whole mass.
func ExampleFind() {
	f, _ := field.New(5, 5)
	_ = f.SetPoint(field.Position{X: 2, Y: 2}, field.DefaultIntensity)
	next, _ := f.Diffuse(0.2)

	ps, _ := plume.Find(next, 1, plume.Conn4)
	fmt.Println("plumes:", len(ps))
	fmt.Println(ps[0])

	core, _ := plume.Find(next, 50, plume.Conn4)
	fmt.Println(core[0])

	// Output:
	// plumes: 1
	// plume{size=9 mass=100.00 peak=82.22@(2,2)}
	// plume{size=1 mass=82.22 peak=82.22@(2,2)}
}
