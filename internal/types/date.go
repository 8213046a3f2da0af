// Package types implements special types for the backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar day without a time component.
//
// Transactions carry a Date assigned by the user, which is independent of
// the timestamp at which they were entered.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today returns the current day in UTC.
func Today() Date {
	return DateOf(time.Now().In(time.UTC))
}

// DateOf returns the Date a time occurs on in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in RFC3339 full-date format ("YYYY-MM-DD") and
// returns the Date it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Equal reports whether two dates represent the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

// After reports whether the date is after other.
func (d Date) After(other Date) bool {
	return time.Time(d).After(time.Time(other))
}

// InMonth reports whether the date falls into the given year and month.
func (d Date) InMonth(year int, month time.Month) bool {
	y, m, _ := time.Time(d).Date()
	return y == year && m == month
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the date in YYYY-MM-DD format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// It accepts both the YYYY-MM-DD format and full RFC3339 timestamps, from
// which everything but the calendar day is ignored.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == `""` || value == "null" {
		return nil
	}

	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return fmt.Errorf("%s is not a valid date", value)
	}
	value = value[1 : len(value)-1]

	parsed, err := ParseDate(value)
	if err != nil {
		t, rfcErr := time.Parse(time.RFC3339, value)
		if rfcErr != nil {
			return err
		}
		parsed = DateOf(t)
	}

	*d = parsed
	return nil
}

// UnmarshalParam parses a date from a query or URI parameter.
func (d *Date) UnmarshalParam(param string) error {
	if param == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time.In(time.UTC))
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}
