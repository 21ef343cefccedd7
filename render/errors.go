// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrFrameShape indicates a frame whose dimensions differ from the recorder's.
	ErrFrameShape = errors.New("render: frame shape does not match recorder")

	// ErrRecorderClosed indicates AddFrame after Close.
	ErrRecorderClosed = errors.New("render: recorder is closed")
)

// Panic messages for option constructors.
const (
	panicScale   = "render: WithScale(%d): scale must be >= 1"
	panicRange   = "render: WithRange(%g, %g): need finite lo < hi"
	panicPalette = "render: WithPalette: palette needs at least 2 colours"
	panicQuality = "render: WithJPEGQuality(%d): quality must be in [1,100]"
	panicLevels  = "render: palette size %d: need at least 2 colours"
)
