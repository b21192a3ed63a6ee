// Package comparison rebuilds cross-run comparison datasets from the per-repeat
// dumps an experiment leaves under <root>/<model>/<repeat>/.
package comparison

import (
	"os"
	"path/filepath"

	"github.com/montanaflynn/stats"

	"reportkit/domain/report"
	"reportkit/internal"
	"reportkit/internal/errors"
	"reportkit/ports"
)

// Datasets maps a model label to its (repeats × episodes) matrix. Order fixes the
// label order, and therefore the colors, of comparison plots.
type Datasets struct {
	Order  []string
	Values map[string]report.Matrix
}

// Len returns the number of labels
func (d Datasets) Len() int {
	return len(d.Order)
}

// Loader reads one dumped variable per repeat directory
type Loader struct {
	Root   string
	File   string
	Codec  ports.Codec
	Logger *internal.Logger
}

// Load walks Root/<model>/<repeat>/<File>.<ext>. Models and repeats are visited in
// lexical order; entries that are not directories are ignored and models without
// any dump are left out.
func (l *Loader) Load() (Datasets, error) {
	logger := l.Logger
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	if l.Codec == nil {
		return Datasets{}, errors.InternalError("no codec configured")
	}

	models, err := os.ReadDir(l.Root)
	if err != nil {
		return Datasets{}, errors.ExternalServiceError("filesystem", err)
	}

	out := Datasets{Values: make(map[string]report.Matrix)}
	dumpName := l.File + "." + l.Codec.Extension()
	for _, model := range models {
		if !model.IsDir() {
			continue
		}

		rows, err := l.loadModel(filepath.Join(l.Root, model.Name()), dumpName)
		if err != nil {
			return Datasets{}, errors.Wrapf(err, "model %s", model.Name())
		}
		if len(rows) == 0 {
			logger.Warn("model %s has no %s dumps, skipped", model.Name(), dumpName)
			continue
		}
		if _, err := rows.Dense(); err != nil {
			return Datasets{}, errors.Wrapf(err, "model %s", model.Name())
		}

		out.Order = append(out.Order, model.Name())
		out.Values[model.Name()] = rows
		logger.Debug("model %s: %d repeats loaded", model.Name(), len(rows))
	}
	return out, nil
}

func (l *Loader) loadModel(dir, dumpName string) (report.Matrix, error) {
	repeats, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.ExternalServiceError("filesystem", err)
	}

	var rows report.Matrix
	for _, repeat := range repeats {
		if !repeat.IsDir() {
			continue
		}
		path := filepath.Join(dir, repeat.Name(), dumpName)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.ExternalServiceError("filesystem", err)
		}

		var row []float64
		if err := l.Codec.Unmarshal(data, &row); err != nil {
			return nil, errors.ExternalServiceError("codec", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Cumulative returns datasets whose rows are running sums of the input rows
func Cumulative(in Datasets) (Datasets, error) {
	out := Datasets{
		Order:  append([]string(nil), in.Order...),
		Values: make(map[string]report.Matrix, len(in.Values)),
	}
	for label, m := range in.Values {
		cum := make(report.Matrix, len(m))
		for i, row := range m {
			sums, err := stats.CumulativeSum(row)
			if err != nil {
				return Datasets{}, errors.Wrapf(err, "cumulative sum of %s row %d", label, i)
			}
			cum[i] = sums
		}
		out.Values[label] = cum
	}
	return out, nil
}
