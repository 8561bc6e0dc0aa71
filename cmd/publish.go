package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/hodlwatch/treasury"
	"github.com/hodlwatch/treasury/renderer"
)

type publishCmd struct {
	outputDir string
	title     string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generate the static site artifacts" }

func (*publishCmd) Usage() string {
	return `hodl publish [-o <dir>] [-title <title>]

  Generates everything the static page consumes into one directory:
  the canonical data file, the chart SVG, and the summary markdown.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "site", "Root directory for the generated artifacts")
	f.StringVar(&c.title, "title", "", "Chart title")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := loadHistory()
	if err != nil {
		return fail(err)
	}
	s, err := treasury.NewSummary(h)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return fail(fmt.Errorf("cannot create output directory: %w", err))
	}

	dataPath := filepath.Join(c.outputDir, "data.json")
	if err := treasury.SaveHistory(dataPath, h); err != nil {
		return fail(err)
	}

	chartPath := filepath.Join(c.outputDir, "chart.svg")
	chart, err := os.Create(chartPath)
	if err != nil {
		return fail(fmt.Errorf("cannot create %q: %w", chartPath, err))
	}
	if err := renderer.RenderChart(chart, h, renderer.ChartOptions{Title: c.title}); err != nil {
		chart.Close()
		return fail(err)
	}
	if err := chart.Close(); err != nil {
		return fail(err)
	}

	summaryPath := filepath.Join(c.outputDir, "summary.md")
	if err := os.WriteFile(summaryPath, []byte(renderer.SummaryMarkdown(s)), 0644); err != nil {
		return fail(fmt.Errorf("cannot write %q: %w", summaryPath, err))
	}

	for _, p := range []string{dataPath, chartPath, summaryPath} {
		fmt.Printf("✅ Wrote %s\n", p)
	}
	return subcommands.ExitSuccess
}
