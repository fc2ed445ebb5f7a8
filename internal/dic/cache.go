package dic

import (
	"fmt"
	"io"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// CacheExt is the extension of the binary array cache.
const CacheExt = ".npy"

// WriteCache writes the table to w as a 2D float64 NumPy array with the same
// shape, values and order as the table.
func WriteCache(w io.Writer, t *SampleTable) error {
	if err := npyio.Write(w, t.data); err != nil {
		return fmt.Errorf("write array cache: %w", err)
	}
	return nil
}

// ReadCache reads a 2D NumPy array written by WriteCache, or by numpy.save
// on the same text source.
func ReadCache(r io.Reader) (*SampleTable, error) {
	var m mat.Dense
	if err := npyio.Read(r, &m); err != nil {
		return nil, fmt.Errorf("%w: read array cache: %v", ErrMalformedInput, err)
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: empty array cache", ErrMalformedInput)
	}
	return NewSampleTable(&m)
}
