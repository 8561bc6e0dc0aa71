package treasury

import "fmt"

// The import and load failure modes are deliberate types rather than
// plain fmt.Errorf values: the CLI names the failure kind on stderr and
// tests assert on them with errors.As. All of them are fatal, nothing
// is retried and nothing is written after any of them.

// MissingFieldError reports a data row that does not supply a required
// column. Row is the 1-based data row index, counted below the header.
type MissingFieldError struct {
	Row   int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("row %d: missing required field %q", e.Row, e.Field)
}

// InvalidValueError reports a cell that cannot parse as the expected
// number. Row is the 1-based data row index, counted below the header.
type InvalidValueError struct {
	Row   int
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("row %d: field %q has invalid value %q", e.Row, e.Field, e.Value)
}

// DuplicateKeyError reports two rows claiming the same calendar month.
type DuplicateKeyError struct {
	Month Month
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate record for month %s", e.Month)
}

// MalformedDataError reports a canonical data file that is not a JSON
// array of objects carrying the required numeric fields.
type MalformedDataError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed data: %s", e.Reason)
	}
	return fmt.Sprintf("malformed data in %q: %s", e.Path, e.Reason)
}

func (e *MalformedDataError) Unwrap() error { return e.Err }
