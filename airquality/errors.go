// SPDX-License-Identifier: MIT

package airquality

import "errors"

var (
	// ErrNoData indicates the feed answered without a usable reading.
	ErrNoData = errors.New("airquality: no data")

	// ErrOutsideArea indicates a station outside the configured BBox.
	ErrOutsideArea = errors.New("airquality: station outside bounding box")

	// ErrInvalidBBox indicates North <= South or East <= West.
	ErrInvalidBBox = errors.New("airquality: invalid bounding box")

	// ErrMissingCity indicates an empty city name.
	ErrMissingCity = errors.New("airquality: city is required")

	// ErrInvalidTimeout indicates a timeout that is unparsable or not positive.
	ErrInvalidTimeout = errors.New("airquality: timeout must be a positive duration")
)
