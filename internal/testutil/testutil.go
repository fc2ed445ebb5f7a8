// Package testutil provides shared DIC test fixtures.
//
// Fixtures are returned as text exports so any package can feed them through
// the real parser without this package importing it.
package testutil

import (
	"fmt"
	"strings"
)

// Header is the header line written by GridText.
const Header = "x[px] y[px] dx[px] dy[px]"

// TwoByTwo is x in {0,1}, y in {0,1}, dx = x, dy = 0, in row order
// (0,0), (1,0), (0,1), (1,1).
const TwoByTwo = `x y dx dy
0 0 0 0
1 0 1 0
0 1 0 0
1 1 1 0
`

// Field is a displacement component as a function of position.
type Field func(x, y float64) float64

// Zero is the zero displacement field.
func Zero(x, y float64) float64 { return 0 }

// GridText renders a row-major export (x varying fastest) of an xdim by
// ydim grid with uniform spacing step.
func GridText(xdim, ydim int, step float64, dx, dy Field) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for j := 0; j < ydim; j++ {
		for i := 0; i < xdim; i++ {
			x, y := float64(i)*step, float64(j)*step
			fmt.Fprintf(&b, "%g %g %g %g\n", x, y, dx(x, y), dy(x, y))
		}
	}
	return b.String()
}
