package treasury

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "2024-06", want: NewMonth(2024, time.June)},
		{in: "2024-6", want: NewMonth(2024, time.June)},
		{in: " 2021-12 ", want: NewMonth(2021, time.December)},
		{in: "2024-13", wantErr: true},
		{in: "2024", wantErr: true},
		{in: "june 2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMonth(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) returned unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMonth_Compare(t *testing.T) {
	a := NewMonth(2023, time.December)
	b := NewMonth(2024, time.January)

	if !a.Before(b) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("%v should be after %v", b, a)
	}
	if a.Compare(a) != 0 {
		t.Errorf("%v should compare equal to itself", a)
	}
	if a.Next() != b {
		t.Errorf("%v.Next() = %v, want %v", a, a.Next(), b)
	}
}

func TestMonth_String(t *testing.T) {
	got := NewMonth(2024, time.June).String()
	if got != "2024-06" {
		t.Errorf("String() = %q, want %q", got, "2024-06")
	}
}

func TestMonthOf(t *testing.T) {
	if _, err := monthOf(2024, 6); err != nil {
		t.Errorf("monthOf(2024, 6) returned unexpected error: %v", err)
	}
	if _, err := monthOf(2024, 13); err == nil {
		t.Error("monthOf(2024, 13) should fail")
	}
	if _, err := monthOf(24, 6); err == nil {
		t.Error("monthOf(24, 6) should fail, years are four digits")
	}
}
