package dic

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/banshee-data/strainmap/internal/fsutil"
)

// Grid is a sample table together with its inferred grid and displacement
// field. It is fully computed on construction and never modified.
type Grid struct {
	table *SampleTable
	spec  GridSpec
	field DisplacementField
}

// Build infers the grid for t and reshapes its displacement columns.
func Build(t *SampleTable, opts Options) (*Grid, error) {
	spec, err := InferGrid(t, opts)
	if err != nil {
		return nil, err
	}
	field, err := Reshape(t, spec)
	if err != nil {
		return nil, err
	}
	return &Grid{table: t, spec: spec, field: field}, nil
}

func (g *Grid) Table() *SampleTable { return g.table }
func (g *Grid) Spec() GridSpec { return g.spec }
// Field returns the displacement maps. They are shared with the grid and
// must not be modified.
func (g *Grid) Field() DisplacementField { return g.field }
func (g *Grid) XC() []float64 { return g.table.X() }
func (g *Grid) YC() []float64 { return g.table.Y() }
func (g *Grid) XD() []float64 { return g.table.DX() }
func (g *Grid) YD() []float64 { return g.table.DY() }
func (g *Grid) XDim() int { return g.spec.XDim }
func (g *Grid) YDim() int { return g.spec.YDim }
func (g *Grid) XStep() float64 { return g.spec.XStep }

// GridLoader reads sample tables through a FileSystem and builds grids.
type GridLoader struct {
	FS      fsutil.FileSystem
	Options Options
}

// NewGridLoader returns a loader; a nil fsys means the OS filesystem.
func NewGridLoader(fsys fsutil.FileSystem, opts Options) *GridLoader {
	if fsys == nil {
		fsys = fsutil.OSFileSystem{}
	}
	return &GridLoader{FS: fsys, Options: opts}
}

// LoadText builds a grid from a text export at path/filename.
func (l *GridLoader) LoadText(path, filename string) (*Grid, error) {
	t, err := l.readTable(filepath.Join(path, filename), ReadText)
	if err != nil {
		return nil, err
	}
	return Build(t, l.Options)
}

// LoadCache builds a grid from an array cache at path/filename.
func (l *GridLoader) LoadCache(path, filename string) (*Grid, error) {
	t, err := l.readTable(filepath.Join(path, filename), ReadCache)
	if err != nil {
		return nil, err
	}
	return Build(t, l.Options)
}

func (l *GridLoader) readTable(name string, parse func(r io.Reader) (*SampleTable, error)) (*SampleTable, error) {
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	t, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
