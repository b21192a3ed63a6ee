package gochart

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"

	"reportkit/domain/report"
)

// axes collects drawing calls for one panel and turns them into a chart at save time.
type axes struct {
	title  string
	xlabel string
	ylabel string
	legend bool

	series []chart.Series

	// categories places non-numeric counter keys; shared by every Bars call on the panel
	categories map[string]float64
	ticks      []chart.Tick

	xs []float64
	ys []float64
}

func (a *axes) SetTitle(title string)  { a.title = title }
func (a *axes) SetXLabel(label string) { a.xlabel = label }
func (a *axes) SetYLabel(label string) { a.ylabel = label }
func (a *axes) ShowLegend()            { a.legend = true }

// Line draws ys against xs. Non-finite points are left out and split the line.
func (a *axes) Line(label string, xs, ys []float64, c color.RGBA) {
	n := min(len(xs), len(ys))
	style := chart.Style{
		StrokeColor: toDrawing(c),
		StrokeWidth: 2,
	}
	for _, run := range finiteRuns(n, xs, ys) {
		from, to := run[0], run[1]
		a.series = append(a.series, chart.ContinuousSeries{
			Name:    label,
			XValues: xs[from:to],
			YValues: ys[from:to],
			Style:   style,
		})
		a.track(xs[from:to], ys[from:to])
		// one legend entry per line
		label = ""
	}
}

// Bars places numeric keys at their value and other keys at a position shared by
// the whole panel, so overlaid counters line up on the same labeled ticks.
func (a *axes) Bars(label string, buckets []report.Bucket, c color.RGBA) {
	xs := make([]float64, 0, len(buckets))
	ys := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		x, ok := report.ToFloat(b.Key)
		if !ok {
			x = a.position(b.Key)
		} else if !finite(x) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, float64(b.Count))
	}
	if len(xs) == 0 {
		return
	}

	width := barWidth(xs)
	a.series = append(a.series, barSeries{
		name:  label,
		xs:    xs,
		ys:    ys,
		width: width,
		style: chart.Style{
			FillColor:   toDrawing(c),
			StrokeColor: toDrawing(c),
			StrokeWidth: 1,
		},
	})
	// half a slot on each side of the outer bars
	margin := width / 0.8 / 2
	a.track([]float64{minOf(xs) - margin, maxOf(xs) + margin}, append([]float64{0}, ys...))
}

func (a *axes) position(key any) float64 {
	id := fmt.Sprintf("%T:%v", key, key)
	if x, ok := a.categories[id]; ok {
		return x
	}
	if a.categories == nil {
		a.categories = make(map[string]float64)
	}
	x := float64(len(a.categories))
	a.categories[id] = x
	a.ticks = append(a.ticks, chart.Tick{Value: x, Label: fmt.Sprint(key)})
	return x
}

// Band shades between lower and upper. Points where any of the three is non-finite are left out.
func (a *axes) Band(xs, lower, upper []float64, c color.RGBA, alpha float64) {
	n := min(len(xs), len(lower), len(upper))
	fill := toDrawing(c).WithAlpha(uint8(math.Round(alpha * 255)))
	for _, run := range finiteRuns(n, xs, lower, upper) {
		from, to := run[0], run[1]
		a.series = append(a.series, bandSeries{
			xs:    xs[from:to],
			lower: lower[from:to],
			upper: upper[from:to],
			style: chart.Style{FillColor: fill},
		})
		a.track(xs[from:to], lower[from:to])
		a.track(xs[from:to], upper[from:to])
	}
}

// track widens the axis ranges; non-finite values never reach them
func (a *axes) track(xs, ys []float64) {
	for _, x := range xs {
		if finite(x) {
			a.xs = append(a.xs, x)
		}
	}
	for _, y := range ys {
		if finite(y) {
			a.ys = append(a.ys, y)
		}
	}
}

func (a *axes) build(width, height int) chart.Chart {
	xrange := paddedRange(a.xs, 0)
	ch := chart.Chart{
		Title:  a.title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  a.xlabel,
			Range: xrange,
			Ticks: a.xTicks(xrange),
		},
		YAxis: chart.YAxis{
			Name:  a.ylabel,
			Range: paddedRange(a.ys, 0.05),
		},
		Series: a.series,
	}
	if len(ch.Series) == 0 {
		ch.Series = []chart.Series{placeholderSeries{}}
	}

	if a.legend {
		named := make([]chart.Series, 0, len(a.series))
		for _, s := range a.series {
			if s.GetName() != "" {
				named = append(named, s)
			}
		}
		if len(named) > 0 {
			legendSource := ch
			legendSource.Series = named
			ch.Elements = []chart.Renderable{chart.Legend(&legendSource)}
		}
	}
	return ch
}

// xTicks returns the category ticks bracketed by unlabeled ticks at the range ends.
// go-chart takes the x range from explicit ticks, so the brackets keep every bar in view.
func (a *axes) xTicks(xrange *chart.ContinuousRange) []chart.Tick {
	if len(a.ticks) == 0 {
		return nil
	}
	ticks := make([]chart.Tick, 0, len(a.ticks)+2)
	ticks = append(ticks, chart.Tick{Value: xrange.Min})
	for _, t := range a.ticks {
		if t.Value > xrange.Min && t.Value < xrange.Max {
			ticks = append(ticks, t)
		}
	}
	ticks = append(ticks, chart.Tick{Value: xrange.Max})
	sort.SliceStable(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}

func paddedRange(values []float64, pad float64) *chart.ContinuousRange {
	if len(values) == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	lo, hi := minOf(values), maxOf(values)
	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 0.5, Max: hi + 0.5}
	}
	margin := (hi - lo) * pad
	return &chart.ContinuousRange{Min: lo - margin, Max: hi + margin}
}

// finiteRuns splits [0, n) into maximal [from, to) runs where every column is finite.
func finiteRuns(n int, columns ...[]float64) [][2]int {
	var runs [][2]int
	start := -1
	for i := 0; i < n; i++ {
		ok := true
		for _, col := range columns {
			if !finite(col[i]) {
				ok = false
				break
			}
		}
		switch {
		case ok && start < 0:
			start = i
		case !ok && start >= 0:
			runs = append(runs, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, n})
	}
	return runs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// barWidth is 0.8 of the tightest spacing between distinct keys.
func barWidth(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	gap := 1.0
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i] - sorted[i-1]; d > 0 && d < gap {
			gap = d
		}
	}
	return 0.8 * gap
}

func minOf(values []float64) float64 {
	m := math.Inf(1)
	for _, v := range values {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		m = math.Max(m, v)
	}
	return m
}
