package renderer

import (
	"strings"
	"testing"

	"github.com/hodlwatch/treasury"
)

func TestSummaryMarkdown(t *testing.T) {
	s, err := treasury.NewSummary(chartHistory(t))
	if err != nil {
		t.Fatalf("NewSummary() returned unexpected error: %v", err)
	}

	got := SummaryMarkdown(s)
	if !strings.Contains(got, "# Bitcoin Treasury Summary — 2024-01") {
		t.Errorf("missing title in:\n%s", got)
	}
	if !strings.Contains(got, "190,000 BTC") {
		t.Errorf("missing holdings in:\n%s", got)
	}
	if !strings.Contains(got, "$8.10B") {
		t.Errorf("missing compact holdings value in:\n%s", got)
	}
	if strings.Contains(got, "mNAV") {
		t.Errorf("summary without share data should not render an mNAV section:\n%s", got)
	}
}

func TestSummaryMarkdown_NA(t *testing.T) {
	h, err := treasury.NewHistory([]treasury.Record{
		{Year: 2024, Month: 1, Holdings: 190000, HoldingsValue: 8.1e9, ClosingPrice: 42500},
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := treasury.NewSummary(h)
	if err != nil {
		t.Fatal(err)
	}

	got := SummaryMarkdown(s)
	if !strings.Contains(got, "N/A") {
		t.Errorf("single-record summary should display N/A growth:\n%s", got)
	}
}

func TestSummaryMarkdown_MNAV(t *testing.T) {
	h, err := treasury.NewHistory([]treasury.Record{
		{Year: 2024, Month: 1, Holdings: 190000, HoldingsValue: 8.1e9, ClosingPrice: 42500,
			MarketCap: 9e9, SharePrice: 500, SharesOutstanding: 16e6, TotalDebt: 2.2e9, OtherAssets: 1e8},
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := treasury.NewSummary(h)
	if err != nil {
		t.Fatal(err)
	}

	got := SummaryMarkdown(s)
	if !strings.Contains(got, "## mNAV") {
		t.Errorf("missing mNAV section in:\n%s", got)
	}
	if !strings.Contains(got, "$375") {
		t.Errorf("missing mNAV per share in:\n%s", got)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	got := HistoryMarkdown(chartHistory(t))

	if !strings.Contains(got, "# Bitcoin Treasury History") {
		t.Errorf("missing title in:\n%s", got)
	}
	for _, month := range []string{"2023-11", "2023-12", "2024-01"} {
		if !strings.Contains(got, month) {
			t.Errorf("missing row for %s in:\n%s", month, got)
		}
	}
	if !strings.Contains(got, "174,530 BTC") {
		t.Errorf("missing first holdings in:\n%s", got)
	}
}

func TestSpotMarkdown(t *testing.T) {
	latest := &treasury.Record{Year: 2024, Month: 1, ClosingPrice: 42500}
	got := SpotMarkdown(64250, latest)

	if !strings.Contains(got, "# BTC Spot Price") {
		t.Errorf("missing title in:\n%s", got)
	}
	if !strings.Contains(got, "$64,250") {
		t.Errorf("missing spot price in:\n%s", got)
	}
	if !strings.Contains(got, "2024-01") {
		t.Errorf("missing comparison month in:\n%s", got)
	}
}
