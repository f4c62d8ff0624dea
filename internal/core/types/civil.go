package types

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"time"
)

// CivilDate is a calendar date without time-of-day or timezone.
//
// Exchange rates are agency-set once per day, so rate matching compares
// civil dates, never instants. Timestamps are reduced to their UTC calendar
// day; using a single fixed zone keeps the comparison stable regardless of
// where the server runs.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilDateOf returns the UTC calendar day of t.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.UTC().Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// ParseCivilDate parses an ISO date string ("2006-01-02").
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("parse civil date: %w", err)
	}
	return CivilDateOf(t), nil
}

// Time returns midnight UTC of the date.
func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the date is the zero value.
func (d CivilDate) IsZero() bool {
	return d == CivilDate{}
}

// Equal reports whether two dates are the same calendar day.
func (d CivilDate) Equal(other CivilDate) bool {
	return d == other
}

// Before reports whether d is earlier than other.
func (d CivilDate) Before(other CivilDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is later than other.
func (d CivilDate) After(other CivilDate) bool {
	return other.Before(d)
}

// String returns the ISO form "2006-01-02".
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Value implements driver.Valuer so the date maps to a DATE column.
func (d CivilDate) Value() (driver.Value, error) {
	return d.Time(), nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *CivilDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = CivilDateOf(v)
		return nil
	case string:
		parsed, err := ParseCivilDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = CivilDate{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CivilDate", src)
	}
}

// MarshalJSON encodes the date as an ISO string.
func (d CivilDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts an ISO date string or null.
func (d *CivilDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = CivilDate{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("civil date must be a JSON string")
	}
	parsed, err := ParseCivilDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
