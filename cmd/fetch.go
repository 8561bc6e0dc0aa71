package cmd

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/hodlwatch/treasury"
	"github.com/hodlwatch/treasury/renderer"
)

type fetchCmd struct {
	pin bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch the current BTC spot price" }
func (*fetchCmd) Usage() string {
	return `hodl fetch [-pin]

  Fetches the current BTC spot price in USD. Responses are cached on
  disk until the end of the day. With -pin, the price is compared
  against the latest recorded monthly close.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.pin, "pin", false, "Compare against the latest recorded monthly close")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	spot, err := treasury.FetchSpotPrice()
	if err != nil {
		return fail(err)
	}

	var latest *treasury.Record
	if c.pin {
		h, err := loadHistory()
		if err != nil {
			// the spot price is still worth printing on its own
			log.Printf("warning, cannot load %q: %v", *dataFile, err)
		} else if h.Len() > 0 {
			r := h.Last()
			latest = &r
		}
	}

	printMarkdown(renderer.SpotMarkdown(spot, latest))
	return subcommands.ExitSuccess
}
