package render

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/strainmap/internal/fsutil"
	"github.com/banshee-data/strainmap/internal/monitoring"
	"github.com/banshee-data/strainmap/internal/view"
)

// Default PNG size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// cellGrid adapts a matrix to plotter.GridXYZ: column c, row r.
type cellGrid struct {
	m mat.Matrix
}

func (g cellGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g cellGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g cellGrid) X(c int) float64 { return float64(c) }
func (g cellGrid) Y(r int) float64 { return float64(r) }

func checkFrame(f view.Frame) error {
	if f.Data == nil {
		return fmt.Errorf("%w: no data", ErrInvalidFrame)
	}
	if r, c := f.Data.Dims(); r < 2 || c < 2 {
		return fmt.Errorf("%w: (%d, %d) map", ErrInvalidFrame, r, c)
	}
	lo, hi := f.CLim[0], f.CLim[1]
	if math.IsNaN(lo) || math.IsNaN(hi) || !(lo < hi) {
		return fmt.Errorf("%w: colour limits [%g, %g]", ErrInvalidFrame, lo, hi)
	}
	return nil
}

// HeatMapPlot builds the plot for f: row 0 at the top, like an image, with
// values outside the colour limits clamped to the end colours.
func HeatMapPlot(f view.Frame) (*plot.Plot, error) {
	if err := checkFrame(f); err != nil {
		return nil, err
	}
	pal, err := Palette(f.Colormap, paletteColors)
	if err != nil {
		return nil, err
	}

	hm := plotter.NewHeatMap(cellGrid{m: f.Data}, pal)
	hm.Min, hm.Max = f.CLim[0], f.CLim[1]
	cs := pal.Colors()
	hm.Underflow, hm.Overflow = cs[0], cs[len(cs)-1]

	p := plot.New()
	p.Title.Text = f.Label
	p.X.Label.Text = "x (grid column)"
	p.Y.Label.Text = "y (grid row)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(hm)
	return p, nil
}

// WritePNG renders f as a PNG of the given size to w.
func WritePNG(w io.Writer, f view.Frame, width, height vg.Length) error {
	p, err := HeatMapPlot(f)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("png canvas: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG writes f to name through fsys.
func SavePNG(fsys fsutil.FileSystem, name string, f view.Frame, width, height vg.Length) error {
	return save(fsys, name, func(w io.Writer) error { return WritePNG(w, f, width, height) })
}

func save(fsys fsutil.FileSystem, name string, write func(io.Writer) error) error {
	out, err := fsys.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := write(out); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	monitoring.Opsf("Created file %s.", name)
	return nil
}
