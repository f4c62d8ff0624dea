package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCivilDateOf_TimezoneStable(t *testing.T) {
	// Same instant seen from different zones must reduce to the same day.
	utc := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)
	aden := utc.In(time.FixedZone("AST", 3*3600))

	if CivilDateOf(utc) != CivilDateOf(aden) {
		t.Errorf("civil date differs across zones: %v vs %v", CivilDateOf(utc), CivilDateOf(aden))
	}
	if got := CivilDateOf(utc).String(); got != "2024-03-15" {
		t.Errorf("String() = %q, want 2024-03-15", got)
	}
}

func TestCivilDate_Ordering(t *testing.T) {
	a, _ := ParseCivilDate("2024-01-31")
	b, _ := ParseCivilDate("2024-02-01")

	if !a.Before(b) {
		t.Error("2024-01-31 should be before 2024-02-01")
	}
	if !b.After(a) {
		t.Error("2024-02-01 should be after 2024-01-31")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date is neither before nor after itself")
	}
}

func TestCivilDate_JSONRoundTrip(t *testing.T) {
	d, err := ParseCivilDate("2023-12-05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2023-12-05"` {
		t.Errorf("marshal = %s", raw)
	}

	var back CivilDate
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip mismatch: %v != %v", back, d)
	}

	var zero CivilDate
	if err := json.Unmarshal([]byte("null"), &zero); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !zero.IsZero() {
		t.Error("null should decode to zero date")
	}
}

func TestParseCivilDate_Invalid(t *testing.T) {
	if _, err := ParseCivilDate("15/03/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
