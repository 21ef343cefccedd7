// SPDX-License-Identifier: MIT

package airquality

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/smoglab/internal/monitoring"
	"github.com/katalvlaran/smoglab/source"
)

// Config describes the optional live feed in a simulation config file.
type Config struct {
	Enabled  bool    `yaml:"enabled"`
	Endpoint string  `yaml:"endpoint"`
	Token    string  `yaml:"token"`
	City     string  `yaml:"city"`
	Scale    float64 `yaml:"scale"` // intensity = AQI * Scale; 0 means 1
	BBox     BBox    `yaml:"bbox"`
	Timeout  string  `yaml:"timeout"` // duration string like "5s"; empty means DefaultTimeout
}

// Validate checks the fields that matter when the feed is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.City == "" {
		return ErrMissingCity
	}
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("airquality: timeout %q: %w", c.Timeout, ErrInvalidTimeout)
		}
	}

	return c.BBox.Validate()
}

// Sampler turns the latest reading for one city into a single emission.
// Any fetch or mapping failure is logged and yields no emissions.
type Sampler struct {
	client *Client
	city   string
	bbox   BBox
	scale  float64
}

var _ source.Sampler = (*Sampler)(nil)

// NewSampler builds a Sampler. scale <= 0 is treated as 1.
func NewSampler(client *Client, city string, bbox BBox, scale float64) *Sampler {
	if scale <= 0 {
		scale = 1
	}
	return &Sampler{client: client, city: city, bbox: bbox, scale: scale}
}

// SamplerFromConfig validates cfg and builds a client-backed Sampler.
// Extra client options (e.g. WithHTTPClient in tests) are applied last.
func SamplerFromConfig(cfg Config, opts ...ClientOption) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var base []ClientOption
	if cfg.Endpoint != "" {
		base = append(base, WithEndpoint(cfg.Endpoint))
	}
	if cfg.Timeout != "" {
		d, _ := time.ParseDuration(cfg.Timeout)
		base = append(base, WithHTTPClient(NewStandardClient(newHTTPClient(d))))
	}

	return NewSampler(NewClient(cfg.Token, append(base, opts...)...), cfg.City, cfg.BBox, cfg.Scale), nil
}

// Next fetches the latest reading and maps it onto the grid.
// Only context cancellation is returned as an error.
func (s *Sampler) Next(ctx context.Context, rows, cols int) ([]source.Emission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, source.ErrInvalidShape
	}

	r, err := s.client.Latest(ctx, s.city)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		monitoring.Logf("airquality: skipping update for %q: %v", s.city, err)
		return nil, nil
	}

	lat, lon := r.Lat, r.Lon
	bbox := s.bbox
	if !r.HasGeo {
		bbox = BBox{} // no coordinates: fall back to the grid center
	}
	pos, err := bbox.Locate(lat, lon, rows, cols)
	if err != nil {
		monitoring.Logf("airquality: skipping reading for %q at (%g,%g): %v", s.city, lat, lon, err)
		return nil, nil
	}

	return []source.Emission{{Pos: pos, Intensity: r.AQI * s.scale}}, nil
}
