package treasury

import (
	"slices"
	"time"
)

// Record is one calendar month's snapshot of the treasury. The JSON
// tags are the contract with the chart page and must not change.
//
// HoldingsValue is expected to be close to Holdings * ClosingPrice but
// the source sheet is authoritative and no cross-field check is made.
type Record struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	AvgBTCPrice   float64 `json:"avg_btc_price"`
	Holdings      float64 `json:"mstr_btc_holdings"`
	HoldingsValue float64 `json:"mstr_holdings_value"`
	ClosingPrice  float64 `json:"btc_closing_price"`

	// mNAV inputs. Zero placeholders when the source sheet has no
	// mNAV columns, matching what the page expects to find.
	MarketCap         float64 `json:"mstr_market_cap"`
	SharePrice        float64 `json:"mstr_share_price"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	TotalDebt         float64 `json:"total_debt"`
	OtherAssets       float64 `json:"other_assets"`
}

// When returns the record's calendar month.
func (r Record) When() Month { return NewMonth(r.Year, time.Month(r.Month)) }

// HasMNAV reports whether the record carries usable mNAV inputs.
func (r Record) HasMNAV() bool { return r.SharesOutstanding > 0 }

// History is the full ordered dataset: one record per month, ascending.
// It is immutable once built; a refresh replaces the whole value.
type History struct {
	records []Record
}

// NewHistory builds a History from records in any order. Records are
// sorted ascending by month; two records for the same month fail with
// a DuplicateKeyError.
func NewHistory(records []Record) (*History, error) {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return a.When().Compare(b.When())
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].When() == sorted[i-1].When() {
			return nil, &DuplicateKeyError{Month: sorted[i].When()}
		}
	}
	return &History{records: sorted}, nil
}

// Len returns the number of monthly records.
func (h *History) Len() int { return len(h.records) }

// Records returns the records in ascending month order. The returned
// slice is shared; callers must not mutate it.
func (h *History) Records() []Record { return h.records }

// First returns the oldest record. It panics on an empty history;
// callers check Len first, as the reports do.
func (h *History) First() Record { return h.records[0] }

// Last returns the most recent record.
func (h *History) Last() Record { return h.records[len(h.records)-1] }

// Labels returns the x-axis labels, one "2006-01" string per record.
func (h *History) Labels() []string {
	labels := make([]string, len(h.records))
	for i, r := range h.records {
		labels[i] = r.When().String()
	}
	return labels
}

// HoldingsSeries returns the BTC holdings, indexed by month sequence
// position.
func (h *History) HoldingsSeries() []float64 {
	return h.series(func(r Record) float64 { return r.Holdings })
}

// ValueSeries returns the USD value of the holdings, indexed by month
// sequence position.
func (h *History) ValueSeries() []float64 {
	return h.series(func(r Record) float64 { return r.HoldingsValue })
}

// PriceSeries returns the BTC closing price, indexed by month sequence
// position.
func (h *History) PriceSeries() []float64 {
	return h.series(func(r Record) float64 { return r.ClosingPrice })
}

func (h *History) series(f func(Record) float64) []float64 {
	s := make([]float64, len(h.records))
	for i, r := range h.records {
		s[i] = f(r)
	}
	return s
}
