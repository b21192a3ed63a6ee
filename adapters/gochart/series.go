package gochart

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// barSeries draws one filled rectangle per (x, y) pair, from zero to y.
type barSeries struct {
	name  string
	style chart.Style
	xs    []float64
	ys    []float64
	width float64
}

func (b barSeries) GetName() string                    { return b.name }
func (b barSeries) GetStyle() chart.Style              { return b.style }
func (b barSeries) GetYAxis() chart.YAxisType          { return chart.YAxisPrimary }
func (b barSeries) Len() int                           { return len(b.xs) }
func (b barSeries) GetValues(i int) (float64, float64) { return b.xs[i], b.ys[i] }

func (b barSeries) Validate() error {
	if len(b.xs) != len(b.ys) {
		return fmt.Errorf("bar series %q; x and y lengths differ", b.name)
	}
	return nil
}

func (b barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := b.style.InheritFrom(defaults)
	r.SetFillColor(style.FillColor)
	r.SetStrokeColor(style.StrokeColor)
	r.SetStrokeWidth(style.StrokeWidth)

	base := canvasBox.Bottom - yrange.Translate(0)
	half := b.width / 2
	for i := range b.xs {
		left := canvasBox.Left + xrange.Translate(b.xs[i]-half)
		right := canvasBox.Left + xrange.Translate(b.xs[i]+half)
		top := canvasBox.Bottom - yrange.Translate(b.ys[i])

		r.MoveTo(left, base)
		r.LineTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, base)
		r.LineTo(left, base)
		r.Close()
		r.FillStroke()
	}
}

// bandSeries shades the polygon enclosed by upper and lower.
type bandSeries struct {
	style chart.Style
	xs    []float64
	lower []float64
	upper []float64
}

func (s bandSeries) GetName() string           { return "" }
func (s bandSeries) GetStyle() chart.Style     { return s.style }
func (s bandSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (s bandSeries) Validate() error {
	if len(s.xs) != len(s.lower) || len(s.xs) != len(s.upper) {
		return fmt.Errorf("band series; x, lower and upper lengths differ")
	}
	return nil
}

func (s bandSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	if len(s.xs) == 0 {
		return
	}
	style := s.style.InheritFrom(defaults)
	r.SetFillColor(style.FillColor)

	tx := func(x float64) int { return canvasBox.Left + xrange.Translate(x) }
	ty := func(y float64) int { return canvasBox.Bottom - yrange.Translate(y) }

	r.MoveTo(tx(s.xs[0]), ty(s.upper[0]))
	for i := 1; i < len(s.xs); i++ {
		r.LineTo(tx(s.xs[i]), ty(s.upper[i]))
	}
	for i := len(s.xs) - 1; i >= 0; i-- {
		r.LineTo(tx(s.xs[i]), ty(s.lower[i]))
	}
	r.Close()
	r.Fill()
}

// placeholderSeries lets an empty panel render its axes.
type placeholderSeries struct{}

func (placeholderSeries) GetName() string           { return "" }
func (placeholderSeries) GetStyle() chart.Style     { return chart.Style{} }
func (placeholderSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (placeholderSeries) Validate() error           { return nil }
func (placeholderSeries) Render(chart.Renderer, chart.Box, chart.Range, chart.Range, chart.Style) {
}
