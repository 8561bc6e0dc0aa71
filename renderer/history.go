package renderer

import (
	"bytes"
	"fmt"

	"github.com/hodlwatch/treasury"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the whole dataset as a markdown table, one
// row per month in ascending order.
func HistoryMarkdown(h *treasury.History) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bitcoin Treasury History")

	table := md.TableSet{
		Header: []string{"Month", "Avg BTC Price", "BTC Holdings", "Holdings Value", "BTC Closing Price"},
		Rows:   [][]string{},
	}
	for _, r := range h.Records() {
		table.Rows = append(table.Rows, []string{
			r.When().String(),
			treasury.USD(r.AvgBTCPrice).String(),
			treasury.Q(r.Holdings).String(),
			treasury.USD(r.HoldingsValue).Compact(),
			treasury.USD(r.ClosingPrice).String(),
		})
	}
	doc.Table(table)

	if err := doc.Build(); err != nil {
		return fmt.Sprintf("error rendering history: %v", err)
	}
	return buf.String()
}
