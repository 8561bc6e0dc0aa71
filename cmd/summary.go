package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hodlwatch/treasury"
	"github.com/hodlwatch/treasury/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the treasury summary" }
func (*summaryCmd) Usage() string {
	return `hodl summary

  Displays the latest holdings, their USD value, the growth since
  inception, and the mNAV metrics when the dataset carries share data.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := loadHistory()
	if err != nil {
		return fail(err)
	}
	s, err := treasury.NewSummary(h)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
