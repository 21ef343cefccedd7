// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smoglab/field"
	"github.com/katalvlaran/smoglab/internal/monitoring"
	"github.com/katalvlaran/smoglab/sim"
)

func init() {
	monitoring.SetLogger(nil)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), cfg)
	assert.Equal(t, 1.0, opts.threshold)
	assert.Empty(t, opts.outDir)
}

func TestParseFlags_OverridesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 20\ncols: 30\nrate: 0.3\nsteps: 5\n"), 0o600))

	cfg, opts, err := parseFlags([]string{"-config", path, "-rate", "0.7", "-png", "x.png", "-quiet"})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Rows, "unset flags keep the file value")
	assert.Equal(t, 30, cfg.Cols)
	assert.Equal(t, 0.7, cfg.Rate)
	assert.Equal(t, 5, cfg.Steps)
	assert.Equal(t, "x.png", cfg.Output.PNG)
	assert.True(t, opts.quiet)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, _, err := parseFlags([]string{"-rate", "2"})
	assert.ErrorIs(t, err, field.ErrInvalidRate)

	_, _, err = parseFlags([]string{"-no-such-flag"})
	assert.Error(t, err)
}

func TestResolveOutputs(t *testing.T) {
	out := resolveOutputs(sim.OutputConfig{PNG: "keep.png"}, "out", "abc")
	assert.Equal(t, "keep.png", out.PNG)
	assert.Equal(t, filepath.Join("out", "abc.html"), out.HTML)
	assert.Equal(t, filepath.Join("out", "abc.avi"), out.Video)
	assert.Equal(t, filepath.Join("out", "abc.txt"), out.Text)

	assert.Equal(t, sim.OutputConfig{}, resolveOutputs(sim.OutputConfig{}, "", "abc"))
}

func TestRun_WritesOutputs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := sim.DefaultConfig()
	cfg.Rows, cfg.Cols = 12, 16
	cfg.Steps = 6
	cfg.InjectEvery = 3
	cfg.Output.Scale = 2

	require.NoError(t, run(context.Background(), cfg, runOptions{outDir: dir, threshold: 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	exts := map[string]bool{}
	for _, e := range entries {
		exts[filepath.Ext(e.Name())] = true
	}
	assert.Equal(t, map[string]bool{".png": true, ".html": true, ".avi": true, ".txt": true}, exts)

	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		assert.Len(t, lines, 12)
		assert.Len(t, lines[0], 16)
	}
}

func TestRun_CreatesMissingOutputDirs(t *testing.T) {
	base := filepath.Join(t.TempDir(), "new")
	cfg := sim.DefaultConfig()
	cfg.Rows, cfg.Cols = 6, 6
	cfg.Steps = 2
	cfg.Output.Video = filepath.Join(base, "video", "run.avi")

	require.NoError(t, run(context.Background(), cfg, runOptions{outDir: filepath.Join(base, "pictures"), threshold: 1}))

	info, err := os.Stat(cfg.Output.Video)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	entries, err := os.ReadDir(filepath.Join(base, "pictures"))
	require.NoError(t, err)
	assert.Len(t, entries, 3, "png, html and txt land in the new outdir")
}

func TestRun_Cancelled(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	cfg.Interval = "10ms"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, cfg, runOptions{threshold: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
