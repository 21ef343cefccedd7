// SPDX-License-Identifier: MIT

package airquality_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smoglab/airquality"
	"github.com/katalvlaran/smoglab/field"
	"github.com/katalvlaran/smoglab/internal/monitoring"
)

// captureLogs redirects monitoring.Logf for the duration of the test.
func captureLogs(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := monitoring.Logf
	monitoring.SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	t.Cleanup(func() { monitoring.Logf = orig })

	return &lines
}

// The sampler tests swap the package logger, so they do not run in parallel.

func TestSampler_EmitsScaledReading(t *testing.T) {
	captureLogs(t)
	srv, _ := feedServer(t, http.StatusOK, okFeed)
	c := airquality.NewClient("tok", airquality.WithEndpoint(srv.URL))
	bbox := airquality.BBox{North: 53, South: 52, West: 4, East: 6}
	s := airquality.NewSampler(c, "amsterdam", bbox, 0.5)

	es, err := s.Next(context.Background(), 11, 21)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, 28.5, es[0].Intensity)
	// lat 52.37 → (53-52.37)/1*10 = 6.3 → 6; lon 4.89 → 0.445*20 = 8.9 → 9
	assert.Equal(t, field.Position{X: 6, Y: 9}, es[0].Pos)
}

func TestSampler_FailureIsNoOp(t *testing.T) {
	lines := captureLogs(t)
	srv, _ := feedServer(t, http.StatusServiceUnavailable, "")
	c := airquality.NewClient("tok", airquality.WithEndpoint(srv.URL))
	s := airquality.NewSampler(c, "amsterdam", airquality.BBox{}, 1)

	es, err := s.Next(context.Background(), 5, 5)
	require.NoError(t, err)
	assert.Empty(t, es)
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "skipping update")
}

func TestSampler_OutsideAreaIsNoOp(t *testing.T) {
	lines := captureLogs(t)
	srv, _ := feedServer(t, http.StatusOK, okFeed)
	c := airquality.NewClient("tok", airquality.WithEndpoint(srv.URL))
	s := airquality.NewSampler(c, "amsterdam", airquality.BBox{North: 10, South: 0, West: 0, East: 10}, 1)

	es, err := s.Next(context.Background(), 5, 5)
	require.NoError(t, err)
	assert.Empty(t, es)
	assert.Len(t, *lines, 1)
}

func TestSampler_NoGeoLandsInCenter(t *testing.T) {
	captureLogs(t)
	srv, _ := feedServer(t, http.StatusOK, `{"status":"ok","data":{"aqi":40}}`)
	c := airquality.NewClient("tok", airquality.WithEndpoint(srv.URL))
	s := airquality.NewSampler(c, "x", airquality.BBox{North: 1, South: 0, West: 0, East: 1}, 0)

	es, err := s.Next(context.Background(), 7, 9)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, field.Position{X: 3, Y: 4}, es[0].Pos)
	assert.Equal(t, 40.0, es[0].Intensity)
}

func TestSampler_CancelledContext(t *testing.T) {
	captureLogs(t)
	c := airquality.NewClient("tok")
	s := airquality.NewSampler(c, "x", airquality.BBox{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Next(ctx, 5, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSamplerFromConfig(t *testing.T) {
	captureLogs(t)
	srv, _ := feedServer(t, http.StatusOK, okFeed)

	s, err := airquality.SamplerFromConfig(airquality.Config{
		Enabled:  true,
		Endpoint: srv.URL,
		Token:    "tok",
		City:     "amsterdam",
		Timeout:  "2s",
	})
	require.NoError(t, err)
	es, err := s.Next(context.Background(), 5, 5)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, field.Position{X: 2, Y: 2}, es[0].Pos)

	_, err = airquality.SamplerFromConfig(airquality.Config{Enabled: true})
	assert.ErrorIs(t, err, airquality.ErrMissingCity)
	_, err = airquality.SamplerFromConfig(airquality.Config{Enabled: true, City: "x", Timeout: "soon"})
	assert.ErrorIs(t, err, airquality.ErrInvalidTimeout)
	_, err = airquality.SamplerFromConfig(airquality.Config{Enabled: true, City: "x", BBox: airquality.BBox{North: -1, East: 1}})
	assert.ErrorIs(t, err, airquality.ErrInvalidBBox)
}

func TestConfig_ValidateTimeout(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		timeout string
		want    error
	}{
		"empty means default": {"", nil},
		"positive":            {"750ms", nil},
		"zero":                {"0s", airquality.ErrInvalidTimeout},
		"negative":            {"-5s", airquality.ErrInvalidTimeout},
		"garbage":             {"soon", airquality.ErrInvalidTimeout},
	}
	for name, tc := range cases {
		cfg := airquality.Config{Enabled: true, City: "amsterdam", Timeout: tc.timeout}
		err := cfg.Validate()
		if tc.want == nil {
			assert.NoError(t, err, name)
			continue
		}
		assert.ErrorIs(t, err, tc.want, name)
	}

	disabled := airquality.Config{Timeout: "-5s"}
	assert.NoError(t, disabled.Validate(), "disabled feeds are not checked")
}
