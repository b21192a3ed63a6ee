package ports

import (
	"image/color"

	"reportkit/domain/report"
)

// Plotter creates figures on a 2D charting backend
type Plotter interface {
	NewFigure(spec FigureSpec) Figure
}

// FigureSpec sizes a figure of vertically stacked panels
type FigureSpec struct {
	Title       string
	Panels      int
	Width       int
	PanelHeight int
}

// Figure is an in-memory canvas holding one or more panels.
// Nothing touches disk until Save; Close releases the canvas.
type Figure interface {
	Panels() int
	Axes(index int) Axes
	Save(path string) error
	Close() error
}

// Axes is a single panel within a figure
type Axes interface {
	SetTitle(title string)
	SetXLabel(label string)
	SetYLabel(label string)

	// Line draws ys against xs
	Line(label string, xs, ys []float64, c color.RGBA)
	// Bars draws one bar per counter bucket
	Bars(label string, buckets []report.Bucket, c color.RGBA)
	// Band shades the region between lower and upper at the given opacity
	Band(xs, lower, upper []float64, c color.RGBA, alpha float64)

	ShowLegend()
}
