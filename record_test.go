package treasury

import (
	"errors"
	"testing"
)

// sampleRecords returns a small unordered dataset used across tests.
func sampleRecords() []Record {
	return []Record{
		{Year: 2024, Month: 1, AvgBTCPrice: 42000, Holdings: 190000, HoldingsValue: 8.1e9, ClosingPrice: 42500},
		{Year: 2023, Month: 11, AvgBTCPrice: 36000, Holdings: 174530, HoldingsValue: 6.6e9, ClosingPrice: 37700},
		{Year: 2023, Month: 12, AvgBTCPrice: 43000, Holdings: 189150, HoldingsValue: 8.0e9, ClosingPrice: 42200},
	}
}

func TestNewHistory_SortsAscending(t *testing.T) {
	h, err := NewHistory(sampleRecords())
	if err != nil {
		t.Fatalf("NewHistory() returned unexpected error: %v", err)
	}

	want := []string{"2023-11", "2023-12", "2024-01"}
	got := h.Labels()
	if len(got) != len(want) {
		t.Fatalf("Labels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if h.First().Month != 11 || h.Last().Month != 1 {
		t.Errorf("First/Last = %v/%v, want months 11/1", h.First().Month, h.Last().Month)
	}
}

func TestNewHistory_DuplicateMonth(t *testing.T) {
	records := []Record{
		{Year: 2024, Month: 6, Holdings: 100},
		{Year: 2024, Month: 6, Holdings: 200},
	}
	_, err := NewHistory(records)

	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("NewHistory() error = %v, want DuplicateKeyError", err)
	}
	if dup.Month.String() != "2024-06" {
		t.Errorf("DuplicateKeyError.Month = %v, want 2024-06", dup.Month)
	}
}

func TestHistory_Series(t *testing.T) {
	h, err := NewHistory(sampleRecords())
	if err != nil {
		t.Fatalf("NewHistory() returned unexpected error: %v", err)
	}

	holdings := h.HoldingsSeries()
	values := h.ValueSeries()
	prices := h.PriceSeries()

	if len(holdings) != 3 || len(values) != 3 || len(prices) != 3 {
		t.Fatalf("series lengths = %d/%d/%d, want 3", len(holdings), len(values), len(prices))
	}
	// all three series are indexed by the same sorted sequence position
	if holdings[0] != 174530 {
		t.Errorf("HoldingsSeries()[0] = %v, want 174530", holdings[0])
	}
	if values[2] != 8.1e9 {
		t.Errorf("ValueSeries()[2] = %v, want 8.1e9", values[2])
	}
	if prices[1] != 42200 {
		t.Errorf("PriceSeries()[1] = %v, want 42200", prices[1])
	}
}
