package dic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/strainmap/internal/monitoring"
)

// DefaultEpsilon is the largest distance from an integer a raw grid
// dimension may have before it is rejected.
const DefaultEpsilon = 1e-6

// SpacingRule selects how grid steps are inferred from the coordinate
// columns.
type SpacingRule int

const (
	// SpacingLegacy takes the x step as min |diff(x)| and the y step as
	// max |diff(y)|, and differentiates both axes with the x step. This is
	// what existing datasets and downstream results were produced with.
	SpacingLegacy SpacingRule = iota

	// SpacingMinNonZero takes each step as the smallest non-zero |diff| of
	// its own column and differentiates each axis with its own step.
	SpacingMinNonZero
)

func (r SpacingRule) String() string {
	switch r {
	case SpacingLegacy:
		return "legacy"
	case SpacingMinNonZero:
		return "min_nonzero"
	default:
		return fmt.Sprintf("SpacingRule(%d)", int(r))
	}
}

// ParseSpacingRule maps a config name to a SpacingRule.
func ParseSpacingRule(s string) (SpacingRule, error) {
	switch s {
	case "", "legacy":
		return SpacingLegacy, nil
	case "min_nonzero":
		return SpacingMinNonZero, nil
	}
	return 0, fmt.Errorf("unknown spacing rule %q", s)
}

// Options control grid inference.
type Options struct {
	Spacing SpacingRule
	// Epsilon defaults to DefaultEpsilon when zero.
	Epsilon float64
}

// DefaultOptions returns the legacy spacing rule with DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Spacing: SpacingLegacy, Epsilon: DefaultEpsilon}
}

func (o Options) epsilon() float64 {
	if o.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return o.Epsilon
}

// GridSpec describes the inferred grid.
type GridSpec struct {
	XStep float64
	YStep float64
	XDim  int
	YDim  int
	Rule  SpacingRule
}

// Cells returns XDim*YDim.
func (g GridSpec) Cells() int { return g.XDim * g.YDim }

// GradientSpacing returns the finite-difference spacing along rows (y, axis
// 0) and columns (x, axis 1).
func (g GridSpec) GradientSpacing() (dy, dx float64) {
	if g.Rule == SpacingMinNonZero {
		return g.YStep, g.XStep
	}
	return g.XStep, g.XStep
}

// InferGrid derives grid steps and dimensions from the raw coordinate
// columns in file order. Dimensions are (max-min)/step + 1 and must lie
// within the epsilon of an integer.
func InferGrid(t *SampleTable, opts Options) (GridSpec, error) {
	xc, yc := t.X(), t.Y()

	spec := GridSpec{Rule: opts.Spacing}
	switch opts.Spacing {
	case SpacingLegacy:
		spec.XStep = minAbsDiff(xc)
		spec.YStep = maxAbsDiff(yc)
	case SpacingMinNonZero:
		spec.XStep = minNonZeroAbsDiff(xc)
		spec.YStep = minNonZeroAbsDiff(yc)
	default:
		return GridSpec{}, fmt.Errorf("%w: unknown spacing rule %v", ErrGridInference, opts.Spacing)
	}

	var err error
	rows := t.Rows()
	if spec.XDim, err = axisDim("x", xc, spec.XStep, opts.epsilon(), rows); err != nil {
		return GridSpec{}, err
	}
	if spec.YDim, err = axisDim("y", yc, spec.YStep, opts.epsilon(), rows); err != nil {
		return GridSpec{}, err
	}

	monitoring.Diagf("grid inferred (%v): x_step=%g y_step=%g xdim=%d ydim=%d rows=%d",
		spec.Rule, spec.XStep, spec.YStep, spec.XDim, spec.YDim, t.Rows())
	return spec, nil
}

// axisDim computes (max-min)/step + 1 for one coordinate column. Every grid
// cell needs its own row, so a dimension above maxDim cannot be filled.
func axisDim(axis string, coords []float64, step, eps float64, maxDim int) (int, error) {
	for i, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s coordinate at row %d is %g", ErrGridInference, axis, i, v)
		}
	}
	span := floats.Max(coords) - floats.Min(coords)
	if span == 0 {
		return 1, nil
	}
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0, fmt.Errorf("%w: %s step is %g over a range of %g", ErrGridInference, axis, step, span)
	}

	raw := span/step + 1
	if math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 0, fmt.Errorf("%w: %s dimension overflows (step %g, range %g)", ErrGridInference, axis, step, span)
	}
	dim := math.Round(raw)
	if math.Abs(raw-dim) > eps {
		return 0, fmt.Errorf("%w: %s dimension %.9g is not integral (step %g, range %g)",
			ErrGridInference, axis, raw, step, span)
	}
	if dim > float64(maxDim) {
		return 0, fmt.Errorf("%w: %s dimension %.0f exceeds the %d samples (step %g, range %g)",
			ErrGridInference, axis, dim, maxDim, step, span)
	}
	return int(dim), nil
}

func absDiffs(v []float64) []float64 {
	if len(v) < 2 {
		return nil
	}
	d := make([]float64, len(v)-1)
	for i := range d {
		d[i] = math.Abs(v[i+1] - v[i])
	}
	return d
}

// minAbsDiff returns min |diff(v)|, or 0 when v has fewer than two values.
func minAbsDiff(v []float64) float64 {
	d := absDiffs(v)
	if len(d) == 0 {
		return 0
	}
	return floats.Min(d)
}

// maxAbsDiff returns max |diff(v)|, or 0 when v has fewer than two values.
func maxAbsDiff(v []float64) float64 {
	d := absDiffs(v)
	if len(d) == 0 {
		return 0
	}
	return floats.Max(d)
}

func minNonZeroAbsDiff(v []float64) float64 {
	best := 0.0
	for _, d := range absDiffs(v) {
		if d > 0 && (best == 0 || d < best) {
			best = d
		}
	}
	return best
}
