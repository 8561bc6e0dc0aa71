package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hodlwatch/treasury"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the data file into canonical form"
}
func (*fmtCmd) Usage() string {
	return `hodl fmt

  Validates the canonical data file and writes it back sorted
  ascending by month, in the canonical two-space indented layout.
  Useful after editing the file by hand.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := loadHistory()
	if err != nil {
		return fail(err)
	}
	if err := treasury.SaveHistory(*dataFile, h); err != nil {
		return fail(err)
	}
	fmt.Printf("✅ Successfully formatted %s (%d months)\n", *dataFile, h.Len())
	return subcommands.ExitSuccess
}
