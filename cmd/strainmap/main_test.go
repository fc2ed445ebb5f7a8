package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/strainmap/internal/dic"
	"github.com/banshee-data/strainmap/internal/fsutil"
	"github.com/banshee-data/strainmap/internal/view"
)

const sample = `x y dx dy
0 0 0 0
1 0 1 0
2 0 2 0
0 1 0 0.1
1 1 1 0.1
2 1 2 0.1
`

func seeded() *fsutil.MemoryFileSystem {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("data/B00001.txt", []byte(sample))
	return mfs
}

func TestParseFlags(t *testing.T) {
	cfg, showVersion, err := parseFlags([]string{"-input", "a.txt", "-component", "all", "-format", "html"})
	require.NoError(t, err)
	assert.False(t, showVersion)
	assert.Equal(t, Config{Input: "a.txt", Component: "all", Format: "html", OutputDir: "plots"}, cfg)

	_, showVersion, err = parseFlags([]string{"-version"})
	require.NoError(t, err)
	assert.True(t, showVersion)
}

func TestRun_ConvertThenRenderFromCache(t *testing.T) {
	mfs := seeded()

	written, err := run(Config{Input: "data/B00001.txt", Convert: true}, mfs)
	require.NoError(t, err)
	assert.Equal(t, []string{"data/B00001.npy"}, written)

	written, err = run(Config{
		Input:     "data/B00001.npy",
		FromCache: true,
		Component: "all",
		Format:    "html",
		OutputDir: "out",
	}, mfs)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"out/B00001_du11.html",
		"out/B00001_du22.html",
		"out/B00001_du12.html",
		"out/B00001_du21.html",
		"out/B00001_max_shear.html",
	}, written)
	for _, name := range written {
		assert.True(t, mfs.Exists(name), name)
	}
}

func TestRun_PNGWithConfig(t *testing.T) {
	mfs := seeded()
	mfs.WriteFile("analysis.json", []byte(`{"colormap": "viridis", "plot_width_inches": 3, "plot_height_inches": 2}`))

	written, err := run(Config{
		Input:      "data/B00001.txt",
		Component:  "Max shear",
		Format:     "png",
		OutputDir:  "plots",
		ConfigFile: "analysis.json",
	}, mfs)
	require.NoError(t, err)
	assert.Equal(t, []string{"plots/B00001_max_shear.png"}, written)
}

func TestRun_Errors(t *testing.T) {
	_, err := run(Config{Input: "data/B00001.txt", Component: "bogus", Format: "png", OutputDir: "p"}, seeded())
	assert.True(t, errors.Is(err, view.ErrUnknownComponent), "got %v", err)

	_, err = run(Config{Input: "data/B00001.txt", Component: "du11", Format: "svg", OutputDir: "p"}, seeded())
	assert.ErrorContains(t, err, "unknown format")

	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("bad.txt", []byte("x y dx dy\n0 0 0 0\n1 0 0 0\n2.5 0 0 0\n"))
	_, err = run(Config{Input: "bad.txt", Component: "du11", Format: "png", OutputDir: "p"}, mfs)
	assert.True(t, errors.Is(err, dic.ErrGridInference), "got %v", err)
}
