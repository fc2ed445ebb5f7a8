package dic

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/strainmap/internal/monitoring"
)

// maxLineBytes bounds a single text row. DaVis exports stay far below this.
const maxLineBytes = 1 << 20

// ReadText parses a whitespace-delimited sample table. The first line is a
// header and is skipped. Blank lines and lines starting with '#' are ignored.
// Every remaining row must have the same number of numeric fields.
func ReadText(r io.Reader) (*SampleTable, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input, no header line", ErrMalformedInput)
	}

	var (
		values []float64
		cols   int
		rows   int
		lineNo = 1
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if rows == 0 {
			cols = len(fields)
			if cols < MinColumns {
				return nil, fmt.Errorf("%w: line %d has %d columns, need at least %d",
					ErrMalformedInput, lineNo, cols, MinColumns)
			}
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d",
				ErrMalformedInput, lineNo, len(fields), cols)
		}

		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not a number", ErrMalformedInput, lineNo, f)
			}
			values = append(values, v)
		}
		rows++
		monitoring.Tracef("text row %d: %v", rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: no data rows after header", ErrMalformedInput)
	}

	return NewSampleTable(mat.NewDense(rows, cols, values))
}
