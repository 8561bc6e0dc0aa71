package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hodlwatch/treasury/renderer"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the monthly records" }
func (*historyCmd) Usage() string {
	return `hodl history

  Displays every monthly record in ascending order.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := loadHistory()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.HistoryMarkdown(h))
	return subcommands.ExitSuccess
}
