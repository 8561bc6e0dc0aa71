package treasury

import "github.com/shopspring/decimal"

// Quantity represents an amount of BTC. It wraps a decimal to keep the
// arithmetic exact when deriving statistics.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient factory for Quantity.
func Q(value float64) Quantity {
	return Quantity{value: decimal.NewFromFloat(value)}
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }

// Growth returns the relative growth from q to p in percent.
// The result is meaningless when q is zero; callers must check first.
func (q Quantity) Growth(p Quantity) Percent {
	delta := p.value.Sub(q.value).Div(q.value)
	return Percent(delta.InexactFloat64() * 100)
}

// String renders the quantity with thousands grouping and no forced
// decimals, the way the holdings figure reads on the page.
func (q Quantity) String() string { return groupDigits(q.value.StringFixed(0)) + " BTC" }

func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }
func (q *Quantity) UnmarshalJSON(b []byte) error {
	return q.value.UnmarshalJSON(b)
}

// groupDigits inserts thousands separators into a plain integer string.
func groupDigits(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	var out []byte
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
