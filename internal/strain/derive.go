package strain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/strainmap/internal/dic"
)

// GradientTensor holds the four in-plane displacement gradients, each with
// the shape of the displacement maps.
//
//	DU11 = d(x_map)/dx   DU21 = d(x_map)/dy
//	DU12 = d(y_map)/dx   DU22 = d(y_map)/dy
type GradientTensor struct {
	DU11 *mat.Dense
	DU22 *mat.Dense
	DU12 *mat.Dense
	DU21 *mat.Dense
}

// Derive computes the gradient tensor and maximum shear of field using
// xStep as the spacing along both axes.
func Derive(field dic.DisplacementField, xStep float64) (*GradientTensor, *mat.Dense, error) {
	return DeriveWithSpacing(field, xStep, xStep)
}

// DeriveWithSpacing is Derive with separate row (dy) and column (dx)
// spacing.
func DeriveWithSpacing(field dic.DisplacementField, dy, dx float64) (*GradientTensor, *mat.Dense, error) {
	if field.XMap == nil || field.YMap == nil {
		return nil, nil, fmt.Errorf("%w: missing displacement map", ErrShapeMismatch)
	}
	xr, xc := field.XMap.Dims()
	yr, yc := field.YMap.Dims()
	if xr != yr || xc != yc {
		return nil, nil, fmt.Errorf("%w: x_map is (%d, %d), y_map is (%d, %d)", ErrShapeMismatch, xr, xc, yr, yc)
	}

	var (
		g   GradientTensor
		err error
	)
	if g.DU21, g.DU11, err = Gradient(field.XMap, dy, dx); err != nil {
		return nil, nil, fmt.Errorf("x_map: %w", err)
	}
	if g.DU22, g.DU12, err = Gradient(field.YMap, dy, dx); err != nil {
		return nil, nil, fmt.Errorf("y_map: %w", err)
	}
	return &g, MaxShear(&g), nil
}

// MaxShear returns sqrt(((du11-du22)/2)^2 + ((du12+du21)/2)^2) per cell.
func MaxShear(g *GradientTensor) *mat.Dense {
	r, c := g.DU11.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, _ float64) float64 {
		a := (g.DU11.At(i, j) - g.DU22.At(i, j)) / 2
		b := (g.DU12.At(i, j) + g.DU21.At(i, j)) / 2
		return math.Hypot(a, b)
	}, out)
	return out
}
