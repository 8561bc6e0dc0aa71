package renderer

import (
	"bytes"
	"fmt"

	"github.com/hodlwatch/treasury"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the treasury summary as markdown, the shape
// the page's summary widgets display.
func SummaryMarkdown(s *treasury.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Bitcoin Treasury Summary — %s", s.Month))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Months tracked", fmt.Sprintf("%d", s.Months)},
			{"BTC Holdings", s.Holdings.String()},
			{"Holdings Value", s.Value.Compact()},
			{"BTC Closing Price", s.ClosingPrice.String()},
			{"Avg BTC Price", s.AvgPrice.String()},
			{"Holdings growth since inception", s.GrowthString()},
		},
	})

	if s.HasMNAV {
		doc.H2("mNAV")
		doc.Table(md.TableSet{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Share Price", s.SharePrice.String()},
				{"mNAV per Share", s.MNAV.String()},
				{"Premium/Discount", s.Premium.SignedString()},
				{"Market Cap", s.MarketCap.Compact()},
			},
		})
	}

	if err := doc.Build(); err != nil {
		return fmt.Sprintf("error rendering summary: %v", err)
	}
	return buf.String()
}

// SpotMarkdown renders the live spot price, optionally against the
// latest recorded closing price.
func SpotMarkdown(spot float64, latest *treasury.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("BTC Spot Price")
	doc.PlainText(treasury.USD(spot).String())

	if latest != nil && latest.ClosingPrice > 0 {
		delta := treasury.Percent((spot - latest.ClosingPrice) / latest.ClosingPrice * 100)
		doc.PlainText(fmt.Sprintf("%s vs %s close (%s)",
			delta.SignedString(), latest.When(), treasury.USD(latest.ClosingPrice)))
	}

	if err := doc.Build(); err != nil {
		return fmt.Sprintf("error rendering spot price: %v", err)
	}
	return buf.String()
}
