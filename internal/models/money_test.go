package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRoundsToTwoDecimals(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromFloat(99.999))
	if m.String() != "100.00" {
		t.Fatalf("expected 100.00, got %s", m.String())
	}

	m, err := NewMoneyFromString("79.995")
	if err != nil {
		t.Fatalf("NewMoneyFromString failed: %v", err)
	}
	if m.String() != "80.00" {
		t.Fatalf("expected 80.00, got %s", m.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("invalid amount should fail")
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromFloat(149.75))
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != `"149.75"` {
		t.Fatalf("money should marshal as a fixed string, got %s", string(raw))
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"149.75"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if !fromString.Decimal.Equal(m.Decimal) {
		t.Fatalf("string round trip mismatch: %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`149.75`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if !fromNumber.Decimal.Equal(m.Decimal) {
		t.Fatalf("number round trip mismatch: %s", fromNumber.String())
	}
}
