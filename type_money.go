package treasury

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value. The whole dataset is denominated
// in USD, but the currency is kept explicit so nothing silently assumes
// it.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// USD returns a Money holding the given amount of US dollars.
func USD(value float64) Money {
	return Money{value: decimal.NewFromFloat(value), cur: money.USD}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation, e.g. "$1,234,567".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Compact returns the value scaled to billions when large enough,
// e.g. "$73.20B", matching the figures the page headlines.
func (m Money) Compact() string {
	billion := decimal.New(1, 9)
	if m.value.Abs().GreaterThanOrEqual(billion) {
		return "$" + m.value.Div(billion).StringFixed(2) + "B"
	}
	return m.String()
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// AsFloat returns the inexact float value, for feeding the chart scales.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
