package treasury

import "fmt"

// Summary provides the at-a-glance overview of the treasury that the
// page displays next to the chart.
type Summary struct {
	Month        Month    // most recent month in the dataset
	Months       int      // number of monthly records
	Holdings     Quantity // latest BTC holdings
	Value        Money    // latest USD value of the holdings
	ClosingPrice Money    // latest BTC closing price
	AvgPrice     Money    // latest monthly average BTC price

	// Growth of the BTC holdings from the first to the last record.
	// Undefined (displayed as "N/A") with fewer than 2 records or a
	// zero first holding.
	Growth      Percent
	GrowthValid bool

	// mNAV metrics, present only when the latest record carries the
	// share data to compute them.
	HasMNAV    bool
	SharePrice Money
	MarketCap  Money
	MNAV       Money   // modified net asset value per share
	Premium    Percent // share price premium (+) or discount (-) to mNAV
}

// NewSummary computes the summary for a history.
func NewSummary(h *History) (*Summary, error) {
	if h.Len() == 0 {
		return nil, fmt.Errorf("cannot summarize an empty history")
	}

	first, last := h.First(), h.Last()
	s := &Summary{
		Month:        last.When(),
		Months:       h.Len(),
		Holdings:     Q(last.Holdings),
		Value:        USD(last.HoldingsValue),
		ClosingPrice: USD(last.ClosingPrice),
		AvgPrice:     USD(last.AvgBTCPrice),
	}

	if h.Len() >= 2 && first.Holdings != 0 {
		s.Growth = Q(first.Holdings).Growth(Q(last.Holdings))
		s.GrowthValid = true
	}

	if last.HasMNAV() {
		s.HasMNAV = true
		s.SharePrice = USD(last.SharePrice)
		s.MarketCap = USD(last.MarketCap)
		mnav := MNAVPerShare(last)
		s.MNAV = USD(mnav)
		s.Premium = PremiumDiscount(last.SharePrice, mnav)
	}
	return s, nil
}

// GrowthString renders the growth for display, "N/A" when undefined.
func (s *Summary) GrowthString() string {
	if !s.GrowthValid {
		return "N/A"
	}
	return s.Growth.SignedString()
}

// MNAVPerShare returns the modified net asset value per share:
// (holdings value + other assets - total debt) / shares outstanding.
// It is 0 when the record has no shares outstanding.
func MNAVPerShare(r Record) float64 {
	if r.SharesOutstanding == 0 {
		return 0
	}
	return (r.HoldingsValue + r.OtherAssets - r.TotalDebt) / r.SharesOutstanding
}

// PremiumDiscount returns how far the share price trades above (+) or
// below (-) the mNAV, in percent. It is 0 when mnav is 0.
func PremiumDiscount(sharePrice, mnav float64) Percent {
	if mnav == 0 {
		return 0
	}
	return Percent((sharePrice - mnav) / mnav * 100)
}
