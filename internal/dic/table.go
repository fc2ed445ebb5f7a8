package dic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MinColumns is the number of leading columns every sample row must carry:
// x, y, dx, dy.
const MinColumns = 4

// Column positions within a sample row.
const (
	ColX = iota
	ColY
	ColDX
	ColDY
)

// SampleTable is an immutable, ordered set of sample rows.
type SampleTable struct {
	data *mat.Dense
}

// NewSampleTable copies m into a SampleTable. m must have at least one row
// and MinColumns columns.
func NewSampleTable(m mat.Matrix) (*SampleTable, error) {
	r, c := m.Dims()
	if r == 0 {
		return nil, fmt.Errorf("%w: no sample rows", ErrMalformedInput)
	}
	if c < MinColumns {
		return nil, fmt.Errorf("%w: %d columns, need at least %d", ErrMalformedInput, c, MinColumns)
	}
	return &SampleTable{data: mat.DenseCopyOf(m)}, nil
}

// Dims returns the row and column counts.
func (t *SampleTable) Dims() (rows, cols int) {
	return t.data.Dims()
}

// Rows returns the number of samples.
func (t *SampleTable) Rows() int {
	r, _ := t.data.Dims()
	return r
}

// Column returns a copy of column j in file order.
func (t *SampleTable) Column(j int) []float64 {
	return mat.Col(nil, j, t.data)
}

func (t *SampleTable) X() []float64 { return t.Column(ColX) }
func (t *SampleTable) Y() []float64 { return t.Column(ColY) }
func (t *SampleTable) DX() []float64 { return t.Column(ColDX) }
func (t *SampleTable) DY() []float64 { return t.Column(ColDY) }

// Matrix returns a copy of the full table, extra columns included.
func (t *SampleTable) Matrix() *mat.Dense {
	return mat.DenseCopyOf(t.data)
}
