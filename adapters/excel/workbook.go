package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"reportkit/domain/report"
	"reportkit/internal/errors"
)

const (
	defaultSheet      = "Sheet1"
	maxSheetNameChars = 31
)

// WorkbookWriter writes reports and comparison matrices to .xlsx files
type WorkbookWriter struct{}

// NewWorkbookWriter creates a workbook writer
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{}
}

// WriteReports writes one sheet per report. Series sheets hold (index, value) rows,
// counter sheets hold (key, count) rows.
func (w *WorkbookWriter) WriteReports(path string, reports []*report.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	names := newSheetNamer()
	for i, rep := range reports {
		sheet, err := addSheet(f, names.next(rep.Name), i == 0)
		if err != nil {
			return err
		}

		switch rep.Kind {
		case report.Series:
			if err := f.SetSheetRow(sheet, "A1", &[]interface{}{rep.XLabel, rep.Name}); err != nil {
				return err
			}
			for r, v := range rep.Values {
				cell, _ := excelize.CoordinatesToCellName(1, r+2)
				if err := f.SetSheetRow(sheet, cell, &[]interface{}{r, v}); err != nil {
					return err
				}
			}
		case report.Counter:
			if err := f.SetSheetRow(sheet, "A1", &[]interface{}{rep.XLabel, "count"}); err != nil {
				return err
			}
			for r, b := range rep.Counts {
				cell, _ := excelize.CoordinatesToCellName(1, r+2)
				if err := f.SetSheetRow(sheet, cell, &[]interface{}{b.Key, b.Count}); err != nil {
					return err
				}
			}
		default:
			return errors.UnsupportedKind(rep.Kind)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExternalServiceError("excel", err)
	}
	return nil
}

// WriteMatrices writes one sheet per label: a header of column indices, then one row per repeat
func (w *WorkbookWriter) WriteMatrices(path string, order []string, matrices map[string]report.Matrix) error {
	f := excelize.NewFile()
	defer f.Close()

	names := newSheetNamer()
	first := true
	for _, label := range order {
		m, ok := matrices[label]
		if !ok {
			continue
		}
		sheet, err := addSheet(f, names.next(label), first)
		if err != nil {
			return err
		}
		first = false

		_, cols := m.Shape()
		header := make([]interface{}, 0, cols+1)
		header = append(header, "repeat")
		for c := 0; c < cols; c++ {
			header = append(header, c)
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		for r, row := range m {
			values := make([]interface{}, 0, len(row)+1)
			values = append(values, r)
			for _, v := range row {
				values = append(values, v)
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExternalServiceError("excel", err)
	}
	return nil
}

// addSheet renames the default sheet for the first entry and appends new sheets afterwards
func addSheet(f *excelize.File, name string, first bool) (string, error) {
	if first {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return "", err
		}
		return name, nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return "", err
	}
	return name, nil
}

// sheetNamer produces valid, unique sheet names
type sheetNamer struct {
	used map[string]int
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]int)}
}

func (n *sheetNamer) next(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	clean = strings.Trim(clean, "'")
	if clean == "" {
		clean = "report"
	}
	clean = truncate(clean, maxSheetNameChars)

	key := strings.ToLower(clean)
	count := n.used[key]
	n.used[key] = count + 1
	if count == 0 {
		return clean
	}
	suffix := fmt.Sprintf("~%d", count)
	return truncate(clean, maxSheetNameChars-len(suffix)) + suffix
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}
