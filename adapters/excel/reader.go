package excel

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"reportkit/domain/report"
	"reportkit/internal/errors"
)

// MatrixReader reads comparison matrices back from a workbook written by WriteMatrices
type MatrixReader struct {
	filePath string
}

// NewMatrixReader creates a reader for the workbook at filePath
func NewMatrixReader(filePath string) *MatrixReader {
	return &MatrixReader{filePath: filePath}
}

// ReadMatrices returns the sheet names in workbook order and one matrix per sheet.
// The header row and the leading repeat column are skipped.
func (r *MatrixReader) ReadMatrices() ([]string, map[string]report.Matrix, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, errors.NotFound("workbook " + r.filePath)
	}

	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, nil, errors.ExternalServiceError("excel", err)
	}
	defer f.Close()

	order := make([]string, 0)
	matrices := make(map[string]report.Matrix)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, nil, errors.ExternalServiceError("excel", fmt.Errorf("read sheet %s: %w", sheet, err))
		}
		if len(rows) < 2 {
			continue
		}

		m, err := parseRows(sheet, rows[1:])
		if err != nil {
			return nil, nil, err
		}
		order = append(order, sheet)
		matrices[sheet] = m
	}
	return order, matrices, nil
}

func parseRows(sheet string, rows [][]string) (report.Matrix, error) {
	m := make(report.Matrix, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, errors.ShapeError(fmt.Sprintf("sheet %s row %d has no values", sheet, i+2))
		}
		values := make([]float64, 0, len(row)-1)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errors.InvalidInput(fmt.Sprintf("sheet %s row %d column %d: %q is not numeric", sheet, i+2, j+2, cell))
			}
			values = append(values, v)
		}
		m = append(m, values)
	}
	if _, err := m.Dense(); err != nil {
		return nil, errors.Wrapf(err, "sheet %s", sheet)
	}
	return m, nil
}
