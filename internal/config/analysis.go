// Package config loads the optional JSON analysis configuration.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/strainmap/internal/dic"
	"github.com/banshee-data/strainmap/internal/fsutil"
	"github.com/banshee-data/strainmap/internal/render"
	"github.com/banshee-data/strainmap/internal/view"
)

// maxFileSize caps the config file at 1MB.
const maxFileSize = 1 * 1024 * 1024

// AnalysisConfig holds optional overrides. A nil field means "use the
// default", so partial files are safe.
type AnalysisConfig struct {
	// Display
	Colormap *string  `json:"colormap,omitempty"`
	VMin     *float64 `json:"vmin,omitempty"`
	VMax     *float64 `json:"vmax,omitempty"`

	// Grid inference
	SpacingRule        *string  `json:"spacing_rule,omitempty"` // "legacy" or "min_nonzero"
	IntegralityEpsilon *float64 `json:"integrality_epsilon,omitempty"`

	// PNG output size
	PlotWidthInches  *float64 `json:"plot_width_inches,omitempty"`
	PlotHeightInches *float64 `json:"plot_height_inches,omitempty"`
}

// EmptyAnalysisConfig returns a config with every field unset.
func EmptyAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// LoadAnalysisConfig reads and validates a JSON config through fsys. The
// file must have a .json extension and be at most 1MB.
func LoadAnalysisConfig(fsys fsutil.FileSystem, path string) (*AnalysisConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := fsutil.ReadFile(fsys, cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyAnalysisConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that are set.
func (c *AnalysisConfig) Validate() error {
	if c.Colormap != nil {
		if _, err := render.Palette(*c.Colormap, 2); err != nil {
			return fmt.Errorf("colormap: %w", err)
		}
	}
	for name, v := range map[string]*float64{"vmin": c.VMin, "vmax": c.VMax} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("%s must be finite, got %v", name, *v)
		}
	}
	if vmin, vmax := c.GetVMin(), c.GetVMax(); vmin >= vmax {
		return fmt.Errorf("vmin (%g) must be less than vmax (%g)", vmin, vmax)
	}
	if c.SpacingRule != nil {
		if _, err := dic.ParseSpacingRule(*c.SpacingRule); err != nil {
			return err
		}
	}
	if c.IntegralityEpsilon != nil {
		if e := *c.IntegralityEpsilon; !(e > 0 && e < 0.5) {
			return fmt.Errorf("integrality_epsilon must be in (0, 0.5), got %g", e)
		}
	}
	if c.PlotWidthInches != nil && *c.PlotWidthInches <= 0 {
		return fmt.Errorf("plot_width_inches must be positive, got %g", *c.PlotWidthInches)
	}
	if c.PlotHeightInches != nil && *c.PlotHeightInches <= 0 {
		return fmt.Errorf("plot_height_inches must be positive, got %g", *c.PlotHeightInches)
	}
	return nil
}

// GetColormap returns the colormap or "bwr".
func (c *AnalysisConfig) GetColormap() string {
	if c.Colormap == nil {
		return view.DefaultStyle().Colormap
	}
	return *c.Colormap
}

// GetVMin returns the lower colour limit or 0.
func (c *AnalysisConfig) GetVMin() float64 {
	if c.VMin == nil {
		return view.DefaultStyle().VMin
	}
	return *c.VMin
}

// GetVMax returns the upper colour limit or 0.5.
func (c *AnalysisConfig) GetVMax() float64 {
	if c.VMax == nil {
		return view.DefaultStyle().VMax
	}
	return *c.VMax
}

// GetSpacingRule returns the spacing rule or dic.SpacingLegacy.
func (c *AnalysisConfig) GetSpacingRule() dic.SpacingRule {
	if c.SpacingRule == nil {
		return dic.SpacingLegacy
	}
	r, err := dic.ParseSpacingRule(*c.SpacingRule)
	if err != nil {
		return dic.SpacingLegacy
	}
	return r
}

// GetIntegralityEpsilon returns the epsilon or dic.DefaultEpsilon.
func (c *AnalysisConfig) GetIntegralityEpsilon() float64 {
	if c.IntegralityEpsilon == nil {
		return dic.DefaultEpsilon
	}
	return *c.IntegralityEpsilon
}

func (c *AnalysisConfig) GetPlotWidth() vg.Length {
	if c.PlotWidthInches == nil {
		return render.DefaultWidth
	}
	return vg.Length(*c.PlotWidthInches) * vg.Inch
}

func (c *AnalysisConfig) GetPlotHeight() vg.Length {
	if c.PlotHeightInches == nil {
		return render.DefaultHeight
	}
	return vg.Length(*c.PlotHeightInches) * vg.Inch
}

// GridOptions converts the config into dic.Options.
func (c *AnalysisConfig) GridOptions() dic.Options {
	return dic.Options{Spacing: c.GetSpacingRule(), Epsilon: c.GetIntegralityEpsilon()}
}

// Style converts the config into a view.Style.
func (c *AnalysisConfig) Style() view.Style {
	return view.Style{Colormap: c.GetColormap(), VMin: c.GetVMin(), VMax: c.GetVMax()}
}
