package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hodlwatch/treasury"
)

type convertCmd struct{}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "convert a holdings spreadsheet into the canonical data file"
}
func (*convertCmd) Usage() string {
	return `hodl convert <spreadsheet>

  Reads a monthly-holdings spreadsheet (.xlsx or .csv), validates it,
  and rewrites the canonical data file in full. Any validation failure
  aborts the conversion and leaves the existing data file untouched.

  The sheet needs columns for Year, Month, Avg BTC Price, MSTR BTC
  Holdings, MSTR Holdings Value and BTC Closing Price; the original
  pivot-style export with a Period column works too. Five more columns
  (Market Cap, Share Price, Shares Outstanding, Total Debt, Other
  Assets) enable the mNAV metrics.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one argument: the path to the source spreadsheet")
		return subcommands.ExitUsageError
	}

	records, err := treasury.ImportFile(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	h, err := treasury.NewHistory(records)
	if err != nil {
		return fail(err)
	}
	if h.Len() == 0 {
		return fail(fmt.Errorf("no monthly records found in %q", f.Arg(0)))
	}
	if err := treasury.SaveHistory(*dataFile, h); err != nil {
		return fail(err)
	}

	fmt.Printf("✅ Successfully updated %s with %d monthly data points\n", *dataFile, h.Len())

	latest := h.Last()
	fmt.Printf("\n📊 Latest data: %s\n", latest.When())
	fmt.Printf("   BTC Holdings: %s\n", treasury.Q(latest.Holdings))
	fmt.Printf("   Holdings Value: %s\n", treasury.USD(latest.HoldingsValue).Compact())
	fmt.Printf("   BTC Price: %s\n", treasury.USD(latest.ClosingPrice))

	if latest.HasMNAV() {
		mnav := treasury.MNAVPerShare(latest)
		fmt.Printf("\n💹 mNAV Metrics:\n")
		fmt.Printf("   Share Price: %s\n", treasury.USD(latest.SharePrice))
		fmt.Printf("   mNAV per Share: %s\n", treasury.USD(mnav))
		fmt.Printf("   Premium/Discount: %s\n", treasury.PremiumDiscount(latest.SharePrice, mnav).SignedString())
		fmt.Printf("   Market Cap: %s\n", treasury.USD(latest.MarketCap).Compact())
	}
	return subcommands.ExitSuccess
}
