package ports

import "reportkit/domain/report"

// WorkbookWriter exports report values to a spreadsheet file
type WorkbookWriter interface {
	WriteReports(path string, reports []*report.Report) error
	WriteMatrices(path string, order []string, matrices map[string]report.Matrix) error
}
