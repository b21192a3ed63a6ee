package testkit

import (
	"image/color"

	"reportkit/domain/report"
	"reportkit/ports"
)

// RecordingPlotter is an in-memory ports.Plotter that keeps every drawing call
type RecordingPlotter struct {
	Figures []*RecordedFigure
	// SaveErr, when set, is returned by every Save
	SaveErr error
}

// NewRecordingPlotter creates an empty recorder
func NewRecordingPlotter() *RecordingPlotter {
	return &RecordingPlotter{}
}

// NewFigure records a new figure
func (p *RecordingPlotter) NewFigure(spec ports.FigureSpec) ports.Figure {
	fig := &RecordedFigure{Spec: spec, saveErr: p.SaveErr}
	for i := 0; i < spec.Panels; i++ {
		fig.Subplots = append(fig.Subplots, &RecordedAxes{})
	}
	p.Figures = append(p.Figures, fig)
	return fig
}

// Last returns the most recent figure, or nil
func (p *RecordingPlotter) Last() *RecordedFigure {
	if len(p.Figures) == 0 {
		return nil
	}
	return p.Figures[len(p.Figures)-1]
}

// RecordedFigure captures one figure
type RecordedFigure struct {
	Spec     ports.FigureSpec
	Subplots []*RecordedAxes
	Saved    []string
	Closed   bool
	saveErr  error
}

func (f *RecordedFigure) Panels() int { return len(f.Subplots) }

func (f *RecordedFigure) Axes(index int) ports.Axes { return f.Subplots[index] }

func (f *RecordedFigure) Save(path string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.Saved = append(f.Saved, path)
	return nil
}

func (f *RecordedFigure) Close() error {
	f.Closed = true
	return nil
}

// RecordedLine is one Line call
type RecordedLine struct {
	Label string
	X     []float64
	Y     []float64
	Color color.RGBA
}

// RecordedBars is one Bars call
type RecordedBars struct {
	Label   string
	Buckets []report.Bucket
	Color   color.RGBA
}

// RecordedBand is one Band call
type RecordedBand struct {
	X     []float64
	Lower []float64
	Upper []float64
	Color color.RGBA
	Alpha float64
}

// RecordedAxes captures one panel
type RecordedAxes struct {
	Title   string
	XLabel  string
	YLabel  string
	Legend  bool
	Lines   []RecordedLine
	BarSets []RecordedBars
	Bands   []RecordedBand
}

func (a *RecordedAxes) SetTitle(title string)  { a.Title = title }
func (a *RecordedAxes) SetXLabel(label string) { a.XLabel = label }
func (a *RecordedAxes) SetYLabel(label string) { a.YLabel = label }
func (a *RecordedAxes) ShowLegend()            { a.Legend = true }

func (a *RecordedAxes) Line(label string, xs, ys []float64, c color.RGBA) {
	a.Lines = append(a.Lines, RecordedLine{
		Label: label,
		X:     append([]float64(nil), xs...),
		Y:     append([]float64(nil), ys...),
		Color: c,
	})
}

func (a *RecordedAxes) Bars(label string, buckets []report.Bucket, c color.RGBA) {
	a.BarSets = append(a.BarSets, RecordedBars{
		Label:   label,
		Buckets: append([]report.Bucket(nil), buckets...),
		Color:   c,
	})
}

func (a *RecordedAxes) Band(xs, lower, upper []float64, c color.RGBA, alpha float64) {
	a.Bands = append(a.Bands, RecordedBand{
		X:     append([]float64(nil), xs...),
		Lower: append([]float64(nil), lower...),
		Upper: append([]float64(nil), upper...),
		Color: c,
		Alpha: alpha,
	})
}
