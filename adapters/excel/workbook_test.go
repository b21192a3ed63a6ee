package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"reportkit/domain/report"
	"reportkit/internal/errors"
)

func TestWriteMatrices_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.xlsx")
	matrices := map[string]report.Matrix{
		"model A": {{0.3, 0.22, 0.6}, {0.59, 0.3, 0.5}},
		"model B": {{1, 2, 3}},
	}

	require.NoError(t, NewWorkbookWriter().WriteMatrices(path, []string{"model B", "missing", "model A"}, matrices))

	order, got, err := NewMatrixReader(path).ReadMatrices()
	require.NoError(t, err)
	assert.Equal(t, []string{"model B", "model A"}, order)
	assert.Equal(t, matrices, got)
}

func TestWriteReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.xlsx")

	series, err := report.New("ext_reward", "time step", report.Series)
	require.NoError(t, err)
	for _, v := range []float64{0.1, -0.2} {
		require.NoError(t, series.Append(v))
	}
	counter, err := report.New("activation_count", "unit", report.Counter)
	require.NoError(t, err)
	for _, v := range []int{3, 3, 5} {
		require.NoError(t, counter.Append(v))
	}

	require.NoError(t, NewWorkbookWriter().WriteReports(path, []*report.Report{series, counter}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"ext_reward", "activation_count"}, f.GetSheetList())

	rows, err := f.GetRows("ext_reward", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"time step", "ext_reward"}, {"0", "0.1"}, {"1", "-0.2"}}, rows)

	rows, err = f.GetRows("activation_count", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"unit", "count"}, {"3", "2"}, {"5", "1"}}, rows)
}

func TestWriteReports_UnsupportedKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.xlsx")
	broken := &report.Report{Name: "broken", Kind: report.Kind("pie")}

	err := NewWorkbookWriter().WriteReports(path, []*report.Report{broken})
	assert.True(t, errors.HasCode(err, errors.CodeUnsupportedKind))
	assert.NoFileExists(t, path)
}

func TestReadMatrices_Errors(t *testing.T) {
	_, _, err := NewMatrixReader(filepath.Join(t.TempDir(), "missing.xlsx")).ReadMatrices()
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))

	_, err = parseRows("model A", [][]string{{"0", "1", "2"}, {"1", "3"}})
	assert.True(t, errors.HasCode(err, errors.CodeShapeError))

	_, err = parseRows("model A", [][]string{{"0", "high"}})
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
}

func TestSheetNamer(t *testing.T) {
	names := newSheetNamer()

	assert.Equal(t, "loss_train", names.next("loss/train"))
	assert.Equal(t, "Loss_train~1", names.next("Loss:train"))
	assert.Equal(t, "report", names.next("''"))

	long := names.next("a very long report name that exceeds the limit")
	assert.Len(t, []rune(long), maxSheetNameChars)
}
