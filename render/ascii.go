// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/katalvlaran/smoglab/field"
)

// asciiRamp runs from clean to polluted.
const asciiRamp = " .:-=+*#%@"

// Text renders f with one character per cell and one line per row.
// Only WithRange affects the result.
func Text(f *field.Field, opts ...Option) string {
	if f == nil {
		return ""
	}
	cfg := newConfig(opts)
	lo, hi := cfg.valueRange(f)
	last := len(asciiRamp) - 1

	var sb strings.Builder
	sb.Grow(f.Rows() * (f.Cols() + 1))
	for x := 0; x < f.Rows(); x++ {
		for y := 0; y < f.Cols(); y++ {
			v, _ := f.At(x, y)
			t := normalize(v, lo, hi)
			i := 0
			switch {
			case t >= 1:
				i = last
			case t > 0:
				i = int(t*float64(last) + 0.5)
			}
			sb.WriteByte(asciiRamp[i])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
