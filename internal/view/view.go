// Package view selects a derived strain map for display. It returns the data,
// title, colormap and colour limits as a Frame and leaves drawing to the
// caller.
package view

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/strainmap/internal/strain"
)

// ErrUnknownComponent is returned by Select for a name outside
// strain.Components.
var ErrUnknownComponent = errors.New("unknown component")

// Colormap names understood by the renderers.
const (
	ColormapBWR     = "bwr"
	ColormapViridis = "viridis"
	ColormapHeat    = "heat"
)

// legacyMaxShearName is the spelling earlier plotting scripts used.
const legacyMaxShearName = "Max shear"

// titles holds the mathtext title and a plain-text label per component.
var titles = map[string][2]string{
	strain.ComponentDU11:     {`$\partial u_{1} / \partial x_{1}$`, "∂u1/∂x1"},
	strain.ComponentDU22:     {`$\partial u_{2} / \partial x_{2}$`, "∂u2/∂x2"},
	strain.ComponentDU12:     {`$\partial u_{2} / \partial x_{1}$`, "∂u2/∂x1"},
	strain.ComponentDU21:     {`$\partial u_{1} / \partial x_{2}$`, "∂u1/∂x2"},
	strain.ComponentMaxShear: {`$\gamma_{eff}$`, "γ eff"},
}

// Source provides derived maps by component name. *strain.DeformationMap
// implements it.
type Source interface {
	Component(name string) (mat.Matrix, bool)
}

// Style is the colormap and colour limits applied to a frame.
type Style struct {
	Colormap string
	VMin     float64
	VMax     float64
}

// DefaultStyle is bwr over [0, 0.5].
func DefaultStyle() Style {
	return Style{Colormap: ColormapBWR, VMin: 0.0, VMax: 0.5}
}

// Frame is everything a plot surface needs to show one map.
type Frame struct {
	Component string
	Data      mat.Matrix // owned by the frame
	Title     string     // mathtext
	Label     string     // plain text
	Colormap  string
	CLim      [2]float64
}

// Select returns the frame for component drawn with style.
func Select(src Source, component string, style Style) (Frame, error) {
	name := component
	if name == legacyMaxShearName {
		name = strain.ComponentMaxShear
	}
	title, known := titles[name]
	if !known {
		return Frame{}, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}
	data, ok := src.Component(name)
	if !ok || data == nil {
		return Frame{}, fmt.Errorf("%w: %q not provided by source", ErrUnknownComponent, component)
	}
	return Frame{
		Component: name,
		Data:      data,
		Title:     title[0],
		Label:     title[1],
		Colormap:  style.Colormap,
		CLim:      [2]float64{style.VMin, style.VMax},
	}, nil
}

// MaxShearLog is the max shear frame on the viridis colormap.
func MaxShearLog(src Source, vmin, vmax float64) (Frame, error) {
	return Select(src, strain.ComponentMaxShear, Style{Colormap: ColormapViridis, VMin: vmin, VMax: vmax})
}

// Surface is a mutable plot surface owned by the caller.
type Surface interface {
	SetData(m mat.Matrix)
	SetTitle(title string)
	SetColormap(name string)
	SetCLim(vmin, vmax float64)
	Draw() error
}

// Apply pushes f onto s and requests a redraw.
func Apply(s Surface, f Frame) error {
	s.SetData(f.Data)
	s.SetTitle(f.Title)
	s.SetColormap(f.Colormap)
	s.SetCLim(f.CLim[0], f.CLim[1])
	return s.Draw()
}
