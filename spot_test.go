package treasury

import (
	"encoding/json"
	"testing"
)

func TestExtractSpot(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"bitcoin": {"usd": 64250.12}}`), &jobj); err != nil {
		t.Fatal(err)
	}

	got, err := extractSpot(jobj)
	if err != nil {
		t.Fatalf("extractSpot() returned unexpected error: %v", err)
	}
	if got != 64250.12 {
		t.Errorf("extractSpot() = %v, want 64250.12", got)
	}
}

func TestExtractSpot_NotANumber(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"bitcoin": {"usd": "soaring"}}`), &jobj); err != nil {
		t.Fatal(err)
	}
	if _, err := extractSpot(jobj); err == nil {
		t.Fatal("extractSpot() should fail on a non-numeric price")
	}
}

func TestExtractSpot_MissingPath(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"ethereum": {"usd": 1}}`), &jobj); err != nil {
		t.Fatal(err)
	}
	if _, err := extractSpot(jobj); err == nil {
		t.Fatal("extractSpot() should fail when the path is absent")
	}
}
