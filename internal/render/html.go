package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/strainmap/internal/fsutil"
	"github.com/banshee-data/strainmap/internal/view"
)

// visualMapStops is the number of colour stops handed to the chart.
const visualMapStops = 11

// HeatMapChart builds an echarts heat map of f. Row 0 is drawn at the top;
// non-finite cells are left empty.
func HeatMapChart(f view.Frame) (*charts.HeatMap, error) {
	if err := checkFrame(f); err != nil {
		return nil, err
	}
	stops, err := HexColors(f.Colormap, visualMapStops)
	if err != nil {
		return nil, err
	}

	rows, cols := f.Data.Dims()
	xs := make([]string, cols)
	for j := range xs {
		xs[j] = strconv.Itoa(j)
	}
	// Category index 0 is at the bottom, so label from the last row up.
	ys := make([]string, rows)
	for k := range ys {
		ys[k] = strconv.Itoa(rows - 1 - k)
	}

	items := make([]opts.HeatMapData, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var v interface{} = f.Data.At(i, j)
			if z := v.(float64); math.IsNaN(z) || math.IsInf(z, 0) {
				v = "-"
			}
			items = append(items, opts.HeatMapData{Value: [3]interface{}{j, rows - 1 - i, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Strain map: " + f.Component, Width: "900px", Height: "760px"}),
		charts.WithTitleOpts(opts.Title{Title: f.Label, Subtitle: fmt.Sprintf("%s (%d x %d)", f.Component, rows, cols)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs, Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys, Name: "y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(f.CLim[0]),
			Max:        float32(f.CLim[1]),
			InRange:    &opts.VisualMapInRange{Color: stops},
		}),
	)
	hm.AddSeries(f.Component, items)
	return hm, nil
}

// WriteHTML renders f as a standalone HTML page to w.
func WriteHTML(w io.Writer, f view.Frame) error {
	hm, err := HeatMapChart(f)
	if err != nil {
		return err
	}
	if err := hm.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// SaveHTML writes f to name through fsys.
func SaveHTML(fsys fsutil.FileSystem, name string, f view.Frame) error {
	return save(fsys, name, func(w io.Writer) error { return WriteHTML(w, f) })
}
