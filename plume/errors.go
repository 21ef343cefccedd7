// SPDX-License-Identifier: MIT

package plume

import "errors"

// ErrInvalidThreshold indicates a NaN threshold, which no value can reach.
var ErrInvalidThreshold = errors.New("plume: threshold must not be NaN")
