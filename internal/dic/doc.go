// Package dic loads 2D digital image correlation (DIC) displacement data and
// reshapes it onto its regular grid.
//
// Input rows are (x, y, dx, dy[, ...]) samples. They arrive either as
// whitespace-delimited text with a single header line, or as a NumPy .npy
// array cache written by ConvertTextToCache. Both adapters produce the same
// SampleTable, after which grid inference and reshaping are shared.
//
// Grid inference follows the rule existing datasets were produced against:
// the x step is the smallest absolute difference between consecutive x
// values and the y step is the largest between consecutive y values. See
// SpacingRule for the opt-in alternative.
package dic
