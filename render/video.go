// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"github.com/katalvlaran/smoglab/field"
)

// VideoRecorder appends fields as frames of an MJPEG AVI file.
// Not goroutine-safe.
type VideoRecorder struct {
	aw         mjpeg.AviWriter
	rows, cols int
	cfg        config
	frames     int
	buf        bytes.Buffer
	closed     bool
}

// NewVideoRecorder creates the AVI file at path for rows×cols fields played
// back at fps frames per second. Frame pixels are cols·scale by rows·scale.
func NewVideoRecorder(path string, rows, cols, fps int, opts ...Option) (*VideoRecorder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("render: video %dx%d: %w", rows, cols, field.ErrInvalidDimensions)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("render: video fps=%d must be > 0", fps)
	}
	cfg := newConfig(opts)

	aw, err := mjpeg.New(path, int32(cols*cfg.scale), int32(rows*cfg.scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("render: create video %q: %w", path, err)
	}

	return &VideoRecorder{aw: aw, rows: rows, cols: cols, cfg: cfg}, nil
}

// AddFrame encodes f as the next frame. f must match the recorder's shape.
func (v *VideoRecorder) AddFrame(f *field.Field) error {
	if v.closed {
		return ErrRecorderClosed
	}
	if f == nil {
		return field.ErrNilField
	}
	if f.Rows() != v.rows || f.Cols() != v.cols {
		return fmt.Errorf("render: frame %dx%d, recorder %dx%d: %w", f.Rows(), f.Cols(), v.rows, v.cols, ErrFrameShape)
	}

	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, v.cfg.image(f), &jpeg.Options{Quality: v.cfg.quality}); err != nil {
		return fmt.Errorf("render: encode frame %d: %w", v.frames, err)
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("render: write frame %d: %w", v.frames, err)
	}
	v.frames++

	return nil
}

// Frames reports how many frames were written.
func (v *VideoRecorder) Frames() int { return v.frames }

// Close finalizes the AVI index. Calling it twice is a no-op.
func (v *VideoRecorder) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true

	return v.aw.Close()
}
