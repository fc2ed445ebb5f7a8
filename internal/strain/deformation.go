package strain

import (
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/strainmap/internal/dic"
	"github.com/banshee-data/strainmap/internal/monitoring"
)

// Component names accepted by DeformationMap.Component.
const (
	ComponentDU11     = "du11"
	ComponentDU22     = "du22"
	ComponentDU12     = "du12"
	ComponentDU21     = "du21"
	ComponentMaxShear = "max_shear"
)

// Components lists the component names in display order.
var Components = []string{ComponentDU11, ComponentDU22, ComponentDU12, ComponentDU21, ComponentMaxShear}

// DeformationMap bundles a loaded grid with its gradients and maximum shear.
// Everything is computed by Compute; the map is read-only afterwards.
type DeformationMap struct {
	grid     *dic.Grid
	grads    *GradientTensor
	maxShear *mat.Dense
}

// Compute derives the gradients of g using the spacing its grid was
// inferred with.
func Compute(g *dic.Grid) (*DeformationMap, error) {
	dy, dx := g.Spec().GradientSpacing()
	grads, shear, err := DeriveWithSpacing(g.Field(), dy, dx)
	if err != nil {
		return nil, err
	}
	r, c := shear.Dims()
	monitoring.Diagf("strain derived on (%d, %d) with dy=%g dx=%g", r, c, dy, dx)
	return &DeformationMap{grid: g, grads: grads, maxShear: shear}, nil
}

func (m *DeformationMap) Grid() *dic.Grid { return m.grid }

// Gradients returns the gradient tensor. Its matrices must not be modified.
func (m *DeformationMap) Gradients() *GradientTensor { return m.grads }

// MaxShear returns the maximum shear map. It must not be modified.
func (m *DeformationMap) MaxShear() mat.Matrix { return m.maxShear }

// Shape returns the (rows, cols) shape shared by every derived map.
func (m *DeformationMap) Shape() (rows, cols int) { return m.maxShear.Dims() }

// Component returns a copy of the named derived map.
func (m *DeformationMap) Component(name string) (mat.Matrix, bool) {
	var src *mat.Dense
	switch name {
	case ComponentDU11:
		src = m.grads.DU11
	case ComponentDU22:
		src = m.grads.DU22
	case ComponentDU12:
		src = m.grads.DU12
	case ComponentDU21:
		src = m.grads.DU21
	case ComponentMaxShear:
		src = m.maxShear
	default:
		return nil, false
	}
	return mat.DenseCopyOf(src), true
}
