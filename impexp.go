package treasury

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// this file contains functions to import the source spreadsheet.
// Two layouts are accepted:
//
//   - a plain table with one header row naming the record fields
//     (year, month, avg_btc_price, ...), in any column order;
//   - the original pivot-style export: banner rows, then a "Period"
//     header, then year rows each followed by their month rows.
//
// Any validation failure aborts the whole import; the caller writes
// nothing.

// ImportFile imports records from a spreadsheet, dispatching on the
// file extension (.xlsx or .csv).
func ImportFile(path string) ([]Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return ImportXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open %q for reading: %w", path, err)
		}
		defer f.Close()
		return ImportCSV(f)
	default:
		return nil, fmt.Errorf("unsupported spreadsheet format %q: expected .xlsx or .csv", ext)
	}
}

// ImportXLSX imports records from the first sheet of an Excel workbook.
func ImportXLSX(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook %q: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q of %q: %w", sheet, path, err)
	}
	return ImportRows(rows)
}

// ImportCSV imports records from CSV content with a header row.
func ImportCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports pad rows unevenly
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse csv: %w", err)
	}
	return ImportRows(rows)
}

// ImportRows imports records from raw rows of cells. The header row is
// located by scanning past any banner rows above it.
func ImportRows(rows [][]string) ([]Record, error) {
	for i, row := range rows {
		if isNamedHeader(row) {
			return importNamed(indexHeader(row), rows[i+1:])
		}
		if isPivotHeader(row) {
			return importPivot(rows[i+1:])
		}
	}
	return nil, fmt.Errorf("no recognizable header row: expected named record columns or a pivot-style %q column", "Period")
}

// importNamed parses data rows below a named-column header.
func importNamed(index map[string]int, rows [][]string) ([]Record, error) {
	var records []Record
	rowIdx := 0
	for _, cells := range rows {
		if isBlank(cells) {
			continue
		}
		rowIdx++
		rec, err := parseNamedRow(rowIdx, index, cells)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// importPivot parses the original pivot export: a year on its own row,
// then one row per month. Summary rows are filtered out, and an empty
// value cell reads as zero, both matching the original converter.
func importPivot(rows [][]string) ([]Record, error) {
	// value columns by fixed position, after the Period column
	setters := make([]func(*Record, float64), len(floatColumns))
	for i, c := range floatColumns {
		setters[i] = c.set
	}

	var records []Record
	currentYear := 0
	rowIdx := 0
	for _, cells := range rows {
		if isBlank(cells) {
			continue
		}
		rowIdx++
		period := strings.TrimSpace(cells[0])
		lower := strings.ToLower(period)
		if strings.Contains(lower, "grand total") || strings.Contains(lower, "row labels") {
			continue
		}
		v, ok := atoiMonth(period)
		if !ok {
			continue // stray annotation row
		}
		if v >= 1000 && v <= 9999 {
			currentYear = v
			continue
		}
		if v < 1 || v > 12 || currentYear == 0 {
			continue
		}

		rec := Record{Year: currentYear, Month: v}
		for i, set := range setters {
			col := i + 1
			if col >= len(cells) || strings.TrimSpace(cells[col]) == "" {
				continue // blank reads as zero
			}
			raw := strings.TrimSpace(cells[col])
			f, parsed := parseNumber(raw)
			if !parsed {
				return nil, &InvalidValueError{Row: rowIdx, Field: floatColumns[i].name, Value: raw}
			}
			set(&rec, f)
		}
		records = append(records, rec)
	}
	return records, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
