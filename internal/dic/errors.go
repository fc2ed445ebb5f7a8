package dic

import "errors"

var (
	// ErrMalformedInput is returned when the sample table cannot be parsed or
	// has fewer than MinColumns columns.
	ErrMalformedInput = errors.New("malformed input")

	// ErrGridInference is returned when the coordinate columns do not
	// describe a regular grid with integral dimensions.
	ErrGridInference = errors.New("grid inference failed")

	// ErrReshape is returned when the row count does not equal xdim*ydim.
	ErrReshape = errors.New("reshape failed")
)
