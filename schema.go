package treasury

import (
	"regexp"
	"strconv"
	"strings"
)

// The spreadsheet schema is explicit: every column the importer knows
// about is declared here with its required-ness, instead of trusting
// whatever the sheet happens to contain. Header matching is case- and
// whitespace-tolerant, so "Avg BTC Price" and "avg_btc_price" name the
// same column.

// fieldYear and fieldMonth are handled apart from the float columns
// because they parse as integers and build the record's key.
const (
	fieldYear  = "year"
	fieldMonth = "month"
)

type column struct {
	name     string // normalized header name
	required bool
	set      func(*Record, float64)
}

// floatColumns lists every numeric column, in canonical file order.
var floatColumns = []column{
	{"avg_btc_price", true, func(r *Record, v float64) { r.AvgBTCPrice = v }},
	{"mstr_btc_holdings", true, func(r *Record, v float64) { r.Holdings = v }},
	{"mstr_holdings_value", true, func(r *Record, v float64) { r.HoldingsValue = v }},
	{"btc_closing_price", true, func(r *Record, v float64) { r.ClosingPrice = v }},
	{"mstr_market_cap", false, func(r *Record, v float64) { r.MarketCap = v }},
	{"mstr_share_price", false, func(r *Record, v float64) { r.SharePrice = v }},
	{"shares_outstanding", false, func(r *Record, v float64) { r.SharesOutstanding = v }},
	{"total_debt", false, func(r *Record, v float64) { r.TotalDebt = v }},
	{"other_assets", false, func(r *Record, v float64) { r.OtherAssets = v }},
}

var headerSeparators = regexp.MustCompile(`[\s_\-]+`)

// normalizeHeader folds a header cell to its canonical column name.
func normalizeHeader(cell string) string {
	cell = strings.ToLower(strings.TrimSpace(cell))
	return headerSeparators.ReplaceAllString(cell, "_")
}

// indexHeader maps canonical column names to their position in the
// header row. Unknown columns are ignored, the sheet may carry notes.
func indexHeader(row []string) map[string]int {
	index := make(map[string]int, len(row))
	for i, cell := range row {
		name := normalizeHeader(cell)
		if name == "" {
			continue
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return index
}

// isNamedHeader reports whether the row is a plain header row carrying
// at least the record key and one required column.
func isNamedHeader(row []string) bool {
	index := indexHeader(row)
	if _, ok := index[fieldYear]; !ok {
		return false
	}
	if _, ok := index[fieldMonth]; !ok {
		return false
	}
	_, ok := index[floatColumns[0].name]
	return ok
}

// isPivotHeader reports whether the row is the header of the original
// pivot-style export (a "Period" column followed by the value columns).
func isPivotHeader(row []string) bool {
	for _, cell := range row {
		if normalizeHeader(cell) == "period" {
			return true
		}
	}
	return false
}

// parseNumber parses a spreadsheet cell as a float, tolerating the
// decorations exports add ($ signs, thousands separators, spaces).
func parseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	cell = strings.ReplaceAll(cell, "$", "")
	cell = strings.ReplaceAll(cell, ",", "")
	cell = strings.ReplaceAll(cell, " ", "")
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseNamedRow builds a Record from one data row of a named-column
// sheet. row is the 1-based data row index used in error messages.
func parseNamedRow(rowIdx int, index map[string]int, cells []string) (Record, error) {
	cell := func(field string) (string, bool) {
		col, ok := index[field]
		if !ok || col >= len(cells) {
			return "", false
		}
		v := strings.TrimSpace(cells[col])
		return v, v != ""
	}

	var rec Record

	// The record key: both parts are required integers.
	for _, field := range []string{fieldYear, fieldMonth} {
		raw, ok := cell(field)
		if !ok {
			return Record{}, &MissingFieldError{Row: rowIdx, Field: field}
		}
		v, ok := atoiMonth(raw)
		if !ok {
			return Record{}, &InvalidValueError{Row: rowIdx, Field: field, Value: raw}
		}
		if field == fieldYear {
			rec.Year = v
		} else {
			rec.Month = v
		}
	}
	if _, err := monthOf(rec.Year, rec.Month); err != nil {
		return Record{}, &InvalidValueError{Row: rowIdx, Field: fieldMonth, Value: strings.TrimSpace(cells[index[fieldMonth]])}
	}

	for _, c := range floatColumns {
		raw, ok := cell(c.name)
		if !ok {
			if c.required {
				return Record{}, &MissingFieldError{Row: rowIdx, Field: c.name}
			}
			continue // absent mNAV columns stay zero placeholders
		}
		v, parsed := parseNumber(raw)
		if !parsed {
			return Record{}, &InvalidValueError{Row: rowIdx, Field: c.name, Value: raw}
		}
		if c.required && v < 0 {
			return Record{}, &InvalidValueError{Row: rowIdx, Field: c.name, Value: raw}
		}
		c.set(&rec, v)
	}
	return rec, nil
}
