package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/strainmap/internal/dic"
	"github.com/banshee-data/strainmap/internal/fsutil"
	"github.com/banshee-data/strainmap/internal/view"
)

func TestEmptyAnalysisConfig_Defaults(t *testing.T) {
	cfg := EmptyAnalysisConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, view.DefaultStyle(), cfg.Style())
	assert.Equal(t, dic.DefaultOptions(), cfg.GridOptions())
	assert.Equal(t, 8*vg.Inch, cfg.GetPlotWidth())
	assert.Equal(t, 6*vg.Inch, cfg.GetPlotHeight())
}

func TestLoadAnalysisConfig(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("cfg/analysis.json", []byte(`{
  "colormap": "viridis",
  "vmax": 0.2,
  "spacing_rule": "min_nonzero",
  "integrality_epsilon": 1e-4,
  "plot_width_inches": 10
}`))

	cfg, err := LoadAnalysisConfig(mfs, "cfg/analysis.json")
	require.NoError(t, err)

	assert.Equal(t, view.Style{Colormap: "viridis", VMin: 0, VMax: 0.2}, cfg.Style())
	assert.Equal(t, dic.Options{Spacing: dic.SpacingMinNonZero, Epsilon: 1e-4}, cfg.GridOptions())
	assert.Equal(t, 10*vg.Inch, cfg.GetPlotWidth())
	assert.Equal(t, 6*vg.Inch, cfg.GetPlotHeight())
}

func TestLoadAnalysisConfig_OSFileSystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"vmin": -0.1, "vmax": 0.1}`), 0644))

	cfg, err := LoadAnalysisConfig(fsutil.OSFileSystem{}, path)
	require.NoError(t, err)
	assert.Equal(t, -0.1, cfg.GetVMin())
	assert.Equal(t, "bwr", cfg.GetColormap())
}

func TestLoadAnalysisConfig_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"wrong extension", "analysis.yaml", `{}`, ".json extension"},
		{"missing file", "absent.json", "", "failed to stat"},
		{"bad json", "bad.json", `{"vmin": }`, "failed to parse"},
		{"unknown colormap", "c.json", `{"colormap": "jet"}`, "colormap"},
		{"vmin above vmax", "c.json", `{"vmin": 1, "vmax": 0.5}`, "must be less than vmax"},
		{"unknown spacing", "c.json", `{"spacing_rule": "max"}`, "unknown spacing rule"},
		{"epsilon too large", "c.json", `{"integrality_epsilon": 0.5}`, "integrality_epsilon"},
		{"negative width", "c.json", `{"plot_width_inches": -1}`, "plot_width_inches"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := fsutil.NewMemoryFileSystem()
			if tt.content != "" {
				mfs.WriteFile(tt.file, []byte(tt.content))
			}
			_, err := LoadAnalysisConfig(mfs, tt.file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadAnalysisConfig_TooLarge(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.WriteFile("big.json", []byte(`{"colormap": "`+strings.Repeat("x", maxFileSize)+`"}`))

	_, err := LoadAnalysisConfig(mfs, "big.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
