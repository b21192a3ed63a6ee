package reporter

import (
	"image/color"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"

	"reportkit/domain/report"
	"reportkit/internal/errors"
	"reportkit/ports"
)

// ColumnStatistics returns the per-column mean and population standard deviation of m
func ColumnStatistics(m report.Matrix) (mean, std []float64, err error) {
	dense, err := m.Dense()
	if err != nil {
		return nil, nil, err
	}

	rows, cols := dense.Dims()
	mean = make([]float64, cols)
	std = make([]float64, cols)
	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(column, j, dense)
		if mean[j], err = stats.Mean(column); err != nil {
			return nil, nil, errors.Wrapf(err, "mean of column %d", j)
		}
		if std[j], err = stats.StandardDeviationPopulation(column); err != nil {
			return nil, nil, errors.Wrapf(err, "standard deviation of column %d", j)
		}
	}
	return mean, std, nil
}

// ComputeMeanVariance draws the column mean of m as a line and shades mean ± std
// around it on the first panel of fig. x-positions are column indices shifted by
// xOffset. fig is returned so several datasets can accumulate on one figure.
func (c *Composer) ComputeMeanVariance(m report.Matrix, label string, col color.RGBA, fig ports.Figure, xOffset float64) (ports.Figure, error) {
	if fig == nil || fig.Panels() == 0 {
		return nil, errors.InvalidInput("target figure has no panel to draw on")
	}

	mean, std, err := ColumnStatistics(m)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", label)
	}

	xs := xAxis(len(mean), xOffset)
	lower := make([]float64, len(mean))
	upper := make([]float64, len(mean))
	for i := range mean {
		lower[i] = mean[i] - std[i]
		upper[i] = mean[i] + std[i]
	}

	ax := fig.Axes(0)
	ax.Line(label, xs, mean, col)
	ax.Band(xs, lower, upper, col, bandAlpha)
	return fig, nil
}

// CompareStatistics overlays the mean ± std of every dataset on one figure, one palette
// color per dataset, and saves it as file under the output directory. Labels are drawn
// in the given order, then any remaining labels alphabetically. More datasets than
// palette colors is rejected before anything is drawn.
func (c *Composer) CompareStatistics(file string, datasets map[string]report.Matrix, title, xlabel, ylabel string, order ...string) (err error) {
	if len(datasets) > len(c.palette) {
		return errors.TooManySeries(len(c.palette), len(datasets))
	}

	labels := orderLabels(datasets, order)
	for _, label := range labels {
		if _, err := datasets[label].Dense(); err != nil {
			return errors.Wrapf(err, "dataset %s", label)
		}
	}

	fig := c.plotter.NewFigure(ports.FigureSpec{
		Title:       title,
		Panels:      1,
		Width:       c.comparisonWidth,
		PanelHeight: c.comparisonHeight,
	})
	defer closeFigure(fig, &err)

	ax := fig.Axes(0)
	ax.SetTitle(title)
	ax.SetXLabel(xlabel)
	ax.SetYLabel(ylabel)

	for i, label := range labels {
		if _, err := c.ComputeMeanVariance(datasets[label], label, c.palette[i], fig, 0); err != nil {
			return err
		}
	}
	ax.ShowLegend()

	return c.save(fig, figureFile(file))
}

func orderLabels(datasets map[string]report.Matrix, order []string) []string {
	labels := make([]string, 0, len(datasets))
	seen := make(map[string]bool, len(datasets))
	for _, label := range order {
		if _, ok := datasets[label]; ok && !seen[label] {
			labels = append(labels, label)
			seen[label] = true
		}
	}

	rest := make([]string, 0, len(datasets)-len(labels))
	for label := range datasets {
		if !seen[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	return append(labels, rest...)
}
