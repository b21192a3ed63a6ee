// Package gochart renders figures with go-chart. Each panel is rendered as its own
// chart and the resulting images are stacked vertically into one raster.
package gochart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"reportkit/internal/errors"
	"reportkit/internal/fsutil"
	"reportkit/ports"
)

const (
	defaultWidth       = 1600
	defaultPanelHeight = 400
)

// Plotter implements ports.Plotter on go-chart
type Plotter struct{}

// NewPlotter creates a go-chart backed plotter
func NewPlotter() *Plotter {
	return &Plotter{}
}

// NewFigure allocates an in-memory figure; nothing is rendered until Save
func (p *Plotter) NewFigure(spec ports.FigureSpec) ports.Figure {
	if spec.Width <= 0 {
		spec.Width = defaultWidth
	}
	if spec.PanelHeight <= 0 {
		spec.PanelHeight = defaultPanelHeight
	}
	panels := make([]*axes, spec.Panels)
	for i := range panels {
		panels[i] = &axes{}
	}
	return &figure{spec: spec, panels: panels}
}

type figure struct {
	spec   ports.FigureSpec
	panels []*axes
	closed bool
}

func (f *figure) Panels() int { return len(f.panels) }

func (f *figure) Axes(index int) ports.Axes {
	return f.panels[index]
}

// Save renders every panel and writes the stacked image. The encoder is chosen from
// the file extension.
func (f *figure) Save(path string) error {
	if f.closed {
		return errors.InternalError("figure already closed")
	}
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	rows := len(f.panels)
	if rows == 0 {
		rows = 1
	}
	canvas := image.NewRGBA(image.Rect(0, 0, f.spec.Width, rows*f.spec.PanelHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for i, a := range f.panels {
		ch := a.build(f.spec.Width, f.spec.PanelHeight)
		if i == 0 && ch.Title == "" {
			ch.Title = f.spec.Title
		}

		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return errors.ExternalServiceError("chart", fmt.Errorf("render panel %d: %w", i, err))
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return errors.ExternalServiceError("chart", fmt.Errorf("decode panel %d: %w", i, err))
		}
		offset := image.Pt(0, i*f.spec.PanelHeight)
		draw.Draw(canvas, img.Bounds().Add(offset), img, img.Bounds().Min, draw.Src)
	}

	if err := fsutil.WriteFileAtomic(path, func(w io.Writer) error { return encode(w, canvas) }); err != nil {
		return errors.Wrapf(err, "failed to write figure %s", path)
	}
	return nil
}

func (f *figure) Close() error {
	f.panels = nil
	f.closed = true
	return nil
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
		}, nil
	}
	return nil, errors.InvalidInput(fmt.Sprintf("unsupported figure format %q", filepath.Ext(path)))
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
