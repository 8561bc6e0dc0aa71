package treasury

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// This file handles the canonical data file: the JSON array the chart
// page fetches. It is the only artifact shared between the converter
// and the renderer, so reading is strict (any structural problem is a
// MalformedDataError, no partial result) and writing is atomic (the
// previous file survives any failure).

// requiredFields are the fields every element of the canonical file
// must carry as numbers. The mNAV fields are written but not required
// on read, older files predate them.
var requiredFields = []string{
	fieldYear, fieldMonth,
	"avg_btc_price", "mstr_btc_holdings", "mstr_holdings_value", "btc_closing_price",
}

// EncodeHistory writes the history to w in the canonical format: a
// two-space indented JSON array, ascending by month.
func EncodeHistory(w io.Writer, h *History) error {
	data, err := json.MarshalIndent(h.Records(), "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal history: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write history: %w", err)
	}
	return nil
}

// DecodeHistory reads a canonical data file from r. Ordering in the
// file is not trusted; records are re-sorted, and a duplicate month is
// as fatal as a syntax error.
func DecodeHistory(r io.Reader) (*History, error) {
	return decodeHistory(r, "")
}

func decodeHistory(r io.Reader, path string) (*History, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read data file: %w", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, &MalformedDataError{Path: path, Reason: "not a JSON array", Err: err}
	}

	records := make([]Record, 0, len(elements))
	for i, raw := range elements {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, &MalformedDataError{Path: path, Reason: fmt.Sprintf("element %d is not an object", i), Err: err}
		}
		for _, name := range requiredFields {
			fraw, ok := fields[name]
			if !ok {
				return nil, &MalformedDataError{Path: path, Reason: fmt.Sprintf("element %d is missing field %q", i, name)}
			}
			var n float64
			if err := json.Unmarshal(fraw, &n); err != nil {
				return nil, &MalformedDataError{Path: path, Reason: fmt.Sprintf("element %d: field %q is not a number", i, name), Err: err}
			}
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &MalformedDataError{Path: path, Reason: fmt.Sprintf("element %d cannot be decoded", i), Err: err}
		}
		records = append(records, rec)
	}

	h, err := NewHistory(records)
	if err != nil {
		return nil, &MalformedDataError{Path: path, Reason: err.Error(), Err: err}
	}
	return h, nil
}

// LoadHistory reads the canonical data file at path.
func LoadHistory(path string) (*History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open data file %q: %w", path, err)
	}
	defer f.Close()
	return decodeHistory(f, path)
}

// SaveHistory rewrites the canonical data file at path in full. The
// write goes through a temporary file in the same directory, so a
// failure part-way leaves any existing file untouched.
func SaveHistory(path string, h *History) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeHistory(tmp, h); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot finalize %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace data file %q: %w", path, err)
	}
	return nil
}
