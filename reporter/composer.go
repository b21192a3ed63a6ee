package reporter

import (
	"image/color"
	"path/filepath"

	"reportkit/domain/report"
	"reportkit/internal"
	"reportkit/internal/errors"
	"reportkit/ports"
)

const (
	defaultFigureWidth      = 2000
	defaultPanelHeight      = 500
	defaultComparisonWidth  = 800
	defaultComparisonHeight = 600

	// bandAlpha is the opacity of the standard deviation band
	bandAlpha = 0.15
	// defaultFigureExt is appended to figure names that carry no extension
	defaultFigureExt = ".png"
)

// ComparisonPalette is the fixed color cycle used by CompareStatistics:
// blue, red, green, black, cyan, magenta.
var ComparisonPalette = []color.RGBA{
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 128, B: 0, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
	{R: 0, G: 191, B: 191, A: 255},
	{R: 191, G: 0, B: 191, A: 255},
}

// seriesCycle colors the members of a panel in drawing order
var seriesCycle = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	{R: 0xd6, G: 0x27, B: 0x28, A: 255},
	{R: 0x94, G: 0x67, B: 0xbd, A: 255},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 255},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 255},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 255},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 255},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 255},
}

// Composer renders registry contents into figures and persists raw values
type Composer struct {
	registry *Registry
	plotter  ports.Plotter
	codec    ports.Codec
	workbook ports.WorkbookWriter
	logger   *internal.Logger

	palette          []color.RGBA
	figureWidth      int
	panelHeight      int
	comparisonWidth  int
	comparisonHeight int
}

// ComposerOption configures a Composer
type ComposerOption func(*Composer)

// WithCodec sets the codec used by the dump helpers
func WithCodec(codec ports.Codec) ComposerOption {
	return func(c *Composer) { c.codec = codec }
}

// WithWorkbookWriter enables spreadsheet export
func WithWorkbookWriter(w ports.WorkbookWriter) ComposerOption {
	return func(c *Composer) { c.workbook = w }
}

// WithLogger sets the logger
func WithLogger(logger *internal.Logger) ComposerOption {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPalette replaces the comparison palette. The number of colors is also the
// maximum number of datasets a comparison accepts.
func WithPalette(colors ...color.RGBA) ComposerOption {
	return func(c *Composer) {
		if len(colors) > 0 {
			c.palette = colors
		}
	}
}

// WithFigureSize sets the width and the per-panel height of report figures
func WithFigureSize(width, panelHeight int) ComposerOption {
	return func(c *Composer) {
		c.figureWidth = width
		c.panelHeight = panelHeight
	}
}

// WithComparisonSize sets the size of comparison figures
func WithComparisonSize(width, height int) ComposerOption {
	return func(c *Composer) {
		c.comparisonWidth = width
		c.comparisonHeight = height
	}
}

// NewComposer creates a composer drawing reports of registry through plotter
func NewComposer(registry *Registry, plotter ports.Plotter, opts ...ComposerOption) *Composer {
	c := &Composer{
		registry:         registry,
		plotter:          plotter,
		logger:           internal.NewNopLogger(),
		palette:          ComparisonPalette,
		figureWidth:      defaultFigureWidth,
		panelHeight:      defaultPanelHeight,
		comparisonWidth:  defaultComparisonWidth,
		comparisonHeight: defaultComparisonHeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry this composer draws from
func (c *Composer) Registry() *Registry {
	return c.registry
}

// panel is one resolved render target
type panel struct {
	target  report.Target
	reports []*report.Report
}

// resolve turns targets into panels. No targets means one panel per registered report;
// targets that match no report are dropped.
func (c *Composer) resolve(targets []report.Target) ([]panel, error) {
	if len(targets) == 0 {
		targets = report.Singles(c.registry.Names()...)
	}

	panels := make([]panel, 0, len(targets))
	for _, t := range targets {
		switch t.Kind {
		case report.SingleTarget, report.GroupTarget:
		default:
			return nil, errors.InvalidInput("unknown render target")
		}
		reports := c.registry.Query(t.Names...)
		if len(t.Names) == 0 || len(reports) == 0 {
			c.logger.Trace("render target %v resolved to no reports, skipped", t.Names)
			continue
		}
		if t.Kind == report.SingleTarget {
			reports = reports[:1]
		}
		panels = append(panels, panel{target: t, reports: reports})
	}
	return panels, nil
}

// RenderFigure draws one stacked panel per resolved target and saves the figure as file
// under the output directory. A single target is labeled with the report's xlabel and
// name; a group is labeled with its own labels and gets a legend.
func (c *Composer) RenderFigure(file string, targets ...report.Target) (err error) {
	panels, err := c.resolve(targets)
	if err != nil {
		return err
	}

	fig := c.plotter.NewFigure(ports.FigureSpec{
		Title:       file,
		Panels:      len(panels),
		Width:       c.figureWidth,
		PanelHeight: c.panelHeight,
	})
	defer closeFigure(fig, &err)

	for i, p := range panels {
		ax := fig.Axes(i)
		switch p.target.Kind {
		case report.SingleTarget:
			rep := p.reports[0]
			ax.SetYLabel(rep.Name)
			ax.SetXLabel(rep.XLabel)
			if err := drawReport(ax, rep, seriesCycle[0]); err != nil {
				return err
			}
		case report.GroupTarget:
			ax.SetYLabel(p.target.YLabel)
			ax.SetXLabel(p.target.XLabel)
			for j, rep := range p.reports {
				if err := drawReport(ax, rep, seriesCycle[j%len(seriesCycle)]); err != nil {
					return err
				}
			}
			ax.ShowLegend()
		}
	}

	return c.save(fig, figureFile(file))
}

// Render is RenderFigure for bare report names
func (c *Composer) Render(file string, names ...string) error {
	return c.RenderFigure(file, report.Singles(names...)...)
}

func drawReport(ax ports.Axes, rep *report.Report, c color.RGBA) error {
	switch rep.Kind {
	case report.Series:
		ax.Line(rep.Name, xAxis(len(rep.Values), 0), rep.Values, c)
	case report.Counter:
		ax.Bars(rep.Name, rep.Counts, c)
	default:
		return errors.Wrapf(errors.UnsupportedKind(rep.Kind), "cannot draw report %s", rep.Name)
	}
	return nil
}

func (c *Composer) save(fig ports.Figure, file string) error {
	path := c.registry.Path(file)
	if err := fig.Save(path); err != nil {
		return errors.Wrapf(err, "failed to save figure %s", path)
	}
	c.logger.Info("figure saved in %s", path)
	return nil
}

func closeFigure(fig ports.Figure, err *error) {
	if cerr := fig.Close(); cerr != nil && *err == nil {
		*err = errors.Wrap(cerr, "failed to release figure")
	}
}

// figureFile gives extension-less names the default raster format
func figureFile(file string) string {
	if filepath.Ext(file) == "" {
		return file + defaultFigureExt
	}
	return file
}

// xAxis returns offset, offset+1, ... for n points
func xAxis(n int, offset float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) + offset
	}
	return xs
}
