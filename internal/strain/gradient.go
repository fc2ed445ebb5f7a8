// Package strain derives displacement gradients and the maximum shear map
// from a gridded displacement field.
package strain

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShapeMismatch is returned when the x and y displacement maps differ
	// in shape, or a map is too small to differentiate.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMapTooSmall is returned when an axis has fewer than two samples.
	ErrMapTooSmall = fmt.Errorf("%w: need at least 2 samples along each axis", ErrShapeMismatch)

	// ErrInvalidSpacing is returned for a zero, negative or non-finite step.
	ErrInvalidSpacing = errors.New("invalid grid spacing")
)

// Gradient returns the derivatives of m along axis 0 (rows, spacing dy) and
// axis 1 (columns, spacing dx). Interior cells use central differences,
// edge cells one-sided differences, so the outputs have the shape of m.
func Gradient(m mat.Matrix, dy, dx float64) (d0, d1 *mat.Dense, err error) {
	if err := checkSpacing(dy); err != nil {
		return nil, nil, err
	}
	if err := checkSpacing(dx); err != nil {
		return nil, nil, err
	}
	r, c := m.Dims()
	if r < 2 || c < 2 {
		return nil, nil, fmt.Errorf("%w: got (%d, %d)", ErrMapTooSmall, r, c)
	}

	d0 = mat.NewDense(r, c, nil)
	d1 = mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d0.Set(i, j, diffAt(i, r, dy, func(k int) float64 { return m.At(k, j) }))
			d1.Set(i, j, diffAt(j, c, dx, func(k int) float64 { return m.At(i, k) }))
		}
	}
	return d0, d1, nil
}

// diffAt is the first-order edge / second-order interior difference at
// index k of an n-long line sampled by at.
func diffAt(k, n int, h float64, at func(int) float64) float64 {
	switch k {
	case 0:
		return (at(1) - at(0)) / h
	case n - 1:
		return (at(n-1) - at(n-2)) / h
	default:
		return (at(k+1) - at(k-1)) / (2 * h)
	}
}

func checkSpacing(h float64) error {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSpacing, h)
	}
	return nil
}
