// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"

	"github.com/katalvlaran/smoglab/field"
)

// Emission is a single pollution source: SetPoint(Pos, Intensity).
type Emission struct {
	Pos       field.Position
	Intensity float64
}

// String implements fmt.Stringer.
func (e Emission) String() string {
	return fmt.Sprintf("%v=%g", e.Pos, e.Intensity)
}

// Sampler yields the emissions to inject for a rows×cols grid. An empty
// result means "nothing this time" and is not an error.
type Sampler interface {
	Next(ctx context.Context, rows, cols int) ([]Emission, error)
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(ctx context.Context, rows, cols int) ([]Emission, error)

// Next calls fn.
func (fn SamplerFunc) Next(ctx context.Context, rows, cols int) ([]Emission, error) {
	return fn(ctx, rows, cols)
}
