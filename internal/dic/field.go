package dic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DisplacementField holds the x and y displacement maps, each of shape
// (ydim, xdim). Maps produced by Reshape share no storage with the source
// table and must be treated as read-only.
type DisplacementField struct {
	XMap mat.Matrix
	YMap mat.Matrix
}

// Dims returns the shape of the x map.
func (f DisplacementField) Dims() (rows, cols int) {
	return f.XMap.Dims()
}

// Reshape lays the dx and dy columns, in original row order, onto a
// (YDim, XDim) row-major grid.
func Reshape(t *SampleTable, spec GridSpec) (DisplacementField, error) {
	rows := t.Rows()
	// Bound each dimension first so XDim*YDim cannot wrap.
	if spec.XDim <= 0 || spec.YDim <= 0 || spec.XDim > rows || spec.YDim > rows || spec.Cells() != rows {
		return DisplacementField{}, fmt.Errorf("%w: cannot reshape %d rows into (%d, %d)",
			ErrReshape, rows, spec.YDim, spec.XDim)
	}
	return DisplacementField{
		XMap: mat.NewDense(spec.YDim, spec.XDim, t.DX()),
		YMap: mat.NewDense(spec.YDim, spec.XDim, t.DY()),
	}, nil
}
