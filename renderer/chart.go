package renderer

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/hodlwatch/treasury"
)

// ChartOptions holds the presentation knobs of the chart. The zero
// value renders with sensible defaults.
type ChartOptions struct {
	Width  int
	Height int
	Title  string
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width == 0 {
		o.Width = 960
	}
	if o.Height == 0 {
		o.Height = 540
	}
	if o.Title == "" {
		o.Title = "MSTR Bitcoin Holdings"
	}
	return o
}

// chart margins, leaving room for both vertical axes and the x labels
const (
	marginLeft   = 80
	marginRight  = 100
	marginTop    = 60
	marginBottom = 70
)

// RenderChart draws the dual-axis line chart as a standalone SVG
// document: BTC quantity on the left axis, USD on the right axis, one
// shared x axis labeled by year-month, and the rainbow gradient
// declared once and consumed by the line strokes.
//
// Rendering is one-shot: any error means nothing usable was produced.
func RenderChart(w io.Writer, h *treasury.History, opts ChartOptions) error {
	if h.Len() == 0 {
		return fmt.Errorf("cannot render a chart from an empty history")
	}
	opts = opts.withDefaults()

	labels := h.Labels()
	holdings := h.HoldingsSeries()
	values := h.ValueSeries()
	prices := h.PriceSeries()

	plotW := opts.Width - marginLeft - marginRight
	plotH := opts.Height - marginTop - marginBottom

	maxQty := seriesMax(holdings)
	maxUSD := seriesMax(values)
	if m := seriesMax(prices); m > maxUSD {
		maxUSD = m
	}
	// headroom so the top of a line never touches the frame
	maxQty *= 1.08
	maxUSD *= 1.08
	if maxQty == 0 {
		maxQty = 1
	}
	if maxUSD == 0 {
		maxUSD = 1
	}

	// x maps a sequence index to its horizontal pixel; the gradient is
	// a function of this position, not of calendar distance.
	n := len(labels)
	x := func(i int) int {
		if n == 1 {
			return marginLeft + plotW/2
		}
		return marginLeft + i*plotW/(n-1)
	}
	yQty := func(v float64) int {
		return marginTop + plotH - int(float64(plotH)*v/maxQty)
	}
	yUSD := func(v float64) int {
		return marginTop + plotH - int(float64(plotH)*v/maxUSD)
	}

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#0d1117")

	// the gradient stop list, declared once for the whole surface
	canvas.Def()
	canvas.LinearGradient("rainbow", 0, 0, 100, 0, gradientStops())
	canvas.DefEnd()

	canvas.Text(opts.Width/2, marginTop/2+6, opts.Title,
		"text-anchor:middle;font-family:sans-serif;font-size:20px;fill:#e6edf3")

	// horizontal gridlines and the two vertical axes
	const ticks = 4
	for t := 0; t <= ticks; t++ {
		frac := float64(t) / ticks
		y := marginTop + plotH - int(float64(plotH)*frac)
		canvas.Line(marginLeft, y, marginLeft+plotW, y, "stroke:#21262d;stroke-width:1")
		canvas.Text(marginLeft-8, y+4, fmtShort(maxQty*frac, false),
			"text-anchor:end;font-family:sans-serif;font-size:11px;fill:#7ee787")
		canvas.Text(marginLeft+plotW+8, y+4, fmtShort(maxUSD*frac, true),
			"text-anchor:start;font-family:sans-serif;font-size:11px;fill:#79c0ff")
	}
	canvas.Line(marginLeft, marginTop, marginLeft, marginTop+plotH, "stroke:#30363d;stroke-width:1")
	canvas.Line(marginLeft+plotW, marginTop, marginLeft+plotW, marginTop+plotH, "stroke:#30363d;stroke-width:1")
	canvas.Line(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH, "stroke:#30363d;stroke-width:1")

	// axis titles
	canvas.Text(marginLeft-8, marginTop-12, "BTC",
		"text-anchor:end;font-family:sans-serif;font-size:12px;fill:#7ee787")
	canvas.Text(marginLeft+plotW+8, marginTop-12, "USD",
		"text-anchor:start;font-family:sans-serif;font-size:12px;fill:#79c0ff")

	// x labels by year-month, thinned to stay readable
	stride := (n + 11) / 12
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < n; i += stride {
		canvas.Text(x(i), marginTop+plotH+20, labels[i],
			"text-anchor:middle;font-family:sans-serif;font-size:10px;fill:#8b949e")
	}

	// the three series, indexed by month sequence position
	plotSeries(canvas, x, yQty, holdings,
		"fill:none;stroke:url(#rainbow);stroke-width:3;stroke-linejoin:round")
	plotSeries(canvas, x, yUSD, values,
		"fill:none;stroke:url(#rainbow);stroke-width:2;stroke-opacity:0.65;stroke-dasharray:7,4")
	plotSeries(canvas, x, yUSD, prices,
		"fill:none;stroke:#8b949e;stroke-width:1.5;stroke-dasharray:2,4")

	drawLegend(canvas, opts)

	canvas.End()
	return nil
}

// RenderChartFile loads the canonical data file and renders its chart.
func RenderChartFile(w io.Writer, path string, opts ChartOptions) error {
	h, err := treasury.LoadHistory(path)
	if err != nil {
		return err
	}
	return RenderChart(w, h, opts)
}

// gradientStops converts the anchor table to the SVG stop list.
func gradientStops() []svg.Offcolor {
	stops := make([]svg.Offcolor, len(Anchors))
	for i, a := range Anchors {
		stops[i] = svg.Offcolor{Offset: uint8(a.Pos*100 + 0.5), Color: a.Hex(), Opacity: 1.0}
	}
	return stops
}

// plotSeries draws one series as a polyline, or a single dot when the
// dataset holds only one month.
func plotSeries(canvas *svg.SVG, x func(int) int, y func(float64) int, series []float64, style string) {
	if len(series) == 1 {
		canvas.Circle(x(0), y(series[0]), 4, "fill:url(#rainbow)")
		return
	}
	xs := make([]int, len(series))
	ys := make([]int, len(series))
	for i, v := range series {
		xs[i] = x(i)
		ys[i] = y(v)
	}
	canvas.Polyline(xs, ys, style)
}

func drawLegend(canvas *svg.SVG, opts ChartOptions) {
	entries := []struct {
		label string
		style string
	}{
		{"BTC Holdings", "stroke:url(#rainbow);stroke-width:3"},
		{"Holdings Value (USD)", "stroke:url(#rainbow);stroke-width:2;stroke-opacity:0.65;stroke-dasharray:7,4"},
		{"BTC Closing Price (USD)", "stroke:#8b949e;stroke-width:1.5;stroke-dasharray:2,4"},
	}

	x := marginLeft + 10
	y := opts.Height - 18
	for _, e := range entries {
		canvas.Line(x, y-4, x+28, y-4, e.style)
		canvas.Text(x+34, y, e.label, "font-family:sans-serif;font-size:11px;fill:#8b949e")
		x += 34 + 8*len(e.label)
	}
}

func seriesMax(series []float64) float64 {
	max := 0.0
	for _, v := range series {
		if v > max {
			max = v
		}
	}
	return max
}

// fmtShort renders an axis tick value in short scale, e.g. "190k",
// "$8.1B".
func fmtShort(v float64, money bool) string {
	prefix := ""
	if money {
		prefix = "$"
	}
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%s%.1fT", prefix, v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%s%.1fB", prefix, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s%.1fM", prefix, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s%.1fk", prefix, v/1e3)
	default:
		return fmt.Sprintf("%s%.0f", prefix, v)
	}
}
