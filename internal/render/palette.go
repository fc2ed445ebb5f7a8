// Package render draws a view.Frame as a PNG heat map (gonum/plot) or as an
// interactive HTML heat map (go-echarts).
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/banshee-data/strainmap/internal/view"
)

var (
	// ErrUnknownColormap is returned for a colormap name with no palette.
	ErrUnknownColormap = errors.New("unknown colormap")

	// ErrInvalidFrame is returned for frames that cannot be drawn: missing
	// data, fewer than two cells along an axis, or empty colour limits.
	ErrInvalidFrame = errors.New("invalid frame")
)

// viridisStops are the same ten stops used by the debug charts.
var viridisStops = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// paletteColors is the number of colours sampled for PNG heat maps.
const paletteColors = 256

// Palette returns n colours spanning the named colormap from low to high.
func Palette(name string, n int) (palette.Palette, error) {
	if n < 2 {
		n = 2
	}
	switch name {
	case view.ColormapBWR:
		cm := moreland.SmoothBlueRed()
		cm.SetMin(0)
		cm.SetMax(1)
		cm.SetConvergePoint(0.5)
		return cm.Palette(n), nil
	case view.ColormapViridis:
		stops, err := parseHexColors(viridisStops)
		if err != nil {
			return nil, err
		}
		return interpolated(stops, n), nil
	case view.ColormapHeat:
		return palette.Heat(n, 1), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
}

// HexColors returns the named colormap as n "#rrggbb" strings.
func HexColors(name string, n int) ([]string, error) {
	p, err := Palette(name, n)
	if err != nil {
		return nil, err
	}
	cs := p.Colors()
	out := make([]string, len(cs))
	for i, c := range cs {
		r, g, b, _ := c.RGBA()
		out[i] = fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	return out, nil
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// interpolated linearly blends stops into n evenly spaced colours.
func interpolated(stops []color.RGBA, n int) palette.Palette {
	out := make(colors, n)
	segs := float64(len(stops) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segs
		k := int(pos)
		if k >= len(stops)-1 {
			k = len(stops) - 2
		}
		out[i] = lerp(stops[k], stops[k+1], pos-float64(k))
	}
	return out
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func parseHexColors(hex []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(hex))
	for i, h := range hex {
		v, err := strconv.ParseUint(strings.TrimPrefix(h, "#"), 16, 32)
		if err != nil || len(h) != 7 {
			return nil, fmt.Errorf("bad colour %q", h)
		}
		out[i] = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	}
	return out, nil
}
