package renderer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hodlwatch/treasury"
)

func chartHistory(t *testing.T) *treasury.History {
	t.Helper()
	h, err := treasury.NewHistory([]treasury.Record{
		{Year: 2023, Month: 11, AvgBTCPrice: 36000, Holdings: 174530, HoldingsValue: 6.6e9, ClosingPrice: 37700},
		{Year: 2023, Month: 12, AvgBTCPrice: 43000, Holdings: 189150, HoldingsValue: 8.0e9, ClosingPrice: 42200},
		{Year: 2024, Month: 1, AvgBTCPrice: 42000, Holdings: 190000, HoldingsValue: 8.1e9, ClosingPrice: 42500},
	})
	if err != nil {
		t.Fatalf("NewHistory() returned unexpected error: %v", err)
	}
	return h
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderChart(&buf, chartHistory(t), ChartOptions{}); err != nil {
		t.Fatalf("RenderChart() returned unexpected error: %v", err)
	}
	svg := buf.String()

	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	// the gradient is declared once as a native stop list
	if !strings.Contains(svg, `id="rainbow"`) {
		t.Error("missing the rainbow linearGradient definition")
	}
	for _, a := range Anchors {
		if !strings.Contains(svg, a.Hex()) {
			t.Errorf("missing gradient stop color %s", a.Hex())
		}
	}
	// lines consume the gradient by reference
	if !strings.Contains(svg, "url(#rainbow)") {
		t.Error("no stroke references the gradient")
	}
	// shared x axis labeled by year-month
	for _, label := range []string{"2023-11", "2023-12", "2024-01"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing x label %s", label)
		}
	}
	// both vertical axes are titled
	if !strings.Contains(svg, ">BTC<") || !strings.Contains(svg, ">USD<") {
		t.Error("missing a vertical axis title")
	}
}

func TestRenderChart_SingleRecord(t *testing.T) {
	h, err := treasury.NewHistory([]treasury.Record{
		{Year: 2024, Month: 1, AvgBTCPrice: 42000, Holdings: 190000, HoldingsValue: 8.1e9, ClosingPrice: 42500},
	})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := RenderChart(&buf, h, ChartOptions{}); err != nil {
		t.Fatalf("RenderChart() returned unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<circle") {
		t.Error("a single month should render as a dot, not a degenerate line")
	}
}

func TestRenderChart_Empty(t *testing.T) {
	h, err := treasury.NewHistory(nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := RenderChart(&buf, h, ChartOptions{}); err == nil {
		t.Fatal("RenderChart() should fail on an empty history")
	}
}

func TestRenderChartFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`[{"year": 2024, "month": 1, "avg_btc_price": "oops", "mstr_btc_holdings": 1, "mstr_holdings_value": 1, "btc_closing_price": 1}]`), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := RenderChartFile(&buf, path, ChartOptions{})

	var malformed *treasury.MalformedDataError
	if !errors.As(err, &malformed) {
		t.Fatalf("RenderChartFile() error = %v, want MalformedDataError", err)
	}
	// no partial draw
	if buf.Len() != 0 {
		t.Errorf("RenderChartFile() wrote %d bytes before failing, want 0", buf.Len())
	}
}

func TestFmtShort(t *testing.T) {
	testCases := []struct {
		v     float64
		money bool
		want  string
	}{
		{8.1e9, true, "$8.1B"},
		{1.9e5, false, "190.0k"},
		{42500, true, "$42.5k"},
		{950, false, "950"},
		{2.5e12, true, "$2.5T"},
	}
	for _, tc := range testCases {
		if got := fmtShort(tc.v, tc.money); got != tc.want {
			t.Errorf("fmtShort(%v, %v) = %q, want %q", tc.v, tc.money, got, tc.want)
		}
	}
}
