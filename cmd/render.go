package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hodlwatch/treasury/renderer"
)

type renderCmd struct {
	output string
	width  int
	height int
	title  string
}

func (*renderCmd) Name() string     { return "render" }
func (*renderCmd) Synopsis() string { return "render the gradient holdings chart as SVG" }
func (*renderCmd) Usage() string {
	return `hodl render [-o <file>] [-width <px>] [-height <px>] [-title <title>]

  Renders the dual-axis line chart from the canonical data file: BTC
  holdings on the left axis, USD value and closing price on the right,
  with the rainbow gradient over the time axis.
`
}

func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "chart.svg", "Output SVG file")
	f.IntVar(&c.width, "width", 0, "Chart width in pixels")
	f.IntVar(&c.height, "height", 0, "Chart height in pixels")
	f.StringVar(&c.title, "title", "", "Chart title")
}

func (c *renderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := loadHistory()
	if err != nil {
		return fail(err)
	}

	out, err := os.Create(c.output)
	if err != nil {
		return fail(fmt.Errorf("cannot create %q: %w", c.output, err))
	}
	defer out.Close()

	opts := renderer.ChartOptions{Width: c.width, Height: c.height, Title: c.title}
	if err := renderer.RenderChart(out, h, opts); err != nil {
		return fail(err)
	}

	fmt.Printf("✅ Wrote %s (%d months)\n", c.output, h.Len())
	return subcommands.ExitSuccess
}
