package report

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"reportkit/internal/errors"
)

// Matrix is a comparison dataset: one row per repeat, one column per aligned x-position
type Matrix [][]float64

// Shape returns rows and columns of a rectangular matrix
func (m Matrix) Shape() (int, int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Dense validates that m is a proper non-empty 2-D array and copies it into a gonum matrix
func (m Matrix) Dense() (*mat.Dense, error) {
	if len(m) == 0 {
		return nil, errors.ShapeError("expected a 2-D array, got no rows")
	}
	cols := len(m[0])
	if cols == 0 {
		return nil, errors.ShapeError("expected a 2-D array, got empty rows")
	}
	data := make([]float64, 0, len(m)*cols)
	for i, row := range m {
		if len(row) != cols {
			return nil, errors.ShapeError(fmt.Sprintf("expected a 2-D array, row %d has %d columns instead of %d", i, len(row), cols))
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(m), cols, data), nil
}

// AsMatrix interprets a decoded value as a 2-D numeric array. Anything with a different
// number of dimensions, ragged rows or non-numeric cells is a shape error.
func AsMatrix(value any) (Matrix, error) {
	switch v := value.(type) {
	case Matrix:
		return v, nil
	case [][]float64:
		return Matrix(v), nil
	case []any:
		m := make(Matrix, 0, len(v))
		for i, row := range v {
			cells, ok := row.([]any)
			if !ok {
				if fs, isFloats := row.([]float64); isFloats {
					m = append(m, fs)
					continue
				}
				return nil, errors.ShapeError(fmt.Sprintf("expected a 2-D array, row %d is %T", i, row))
			}
			values := make([]float64, 0, len(cells))
			for _, cell := range cells {
				f, ok := ToFloat(cell)
				if !ok {
					return nil, errors.ShapeError(fmt.Sprintf("expected a 2-D array, row %d holds %T", i, cell))
				}
				values = append(values, f)
			}
			m = append(m, values)
		}
		return m, nil
	}
	return nil, errors.ShapeError(fmt.Sprintf("expected a 2-D array, got %T", value))
}
