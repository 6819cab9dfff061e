// Package date provides a calendar date type with day-level granularity and
// the period arithmetic the ledger derivations are built on.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
// Out-of-range values are normalized the way time.Date does it, so
// New(2024, time.February, 31) is 2024-03-02.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// SameMonth reports whether d and x fall in the same calendar month.
func (d Date) SameMonth(x Date) bool { return d.y == x.y && d.m == x.m }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// AddMonth returns a new Date with the given number of calendar months added.
// The day of month is kept and normalized, so Jan 31 plus one month lands in
// early March, not on Feb 28. Recurring schedules depend on this rule.
func (d Date) AddMonth(months int) Date { return New(d.y, d.m+time.Month(months), d.d) }

// AddYear returns a new Date with the given number of years added, with the
// same normalization rule as AddMonth (Feb 29 plus one year is Mar 1).
func (d Date) AddYear(years int) Date { return New(d.y+years, d.m, d.d) }

// StartOf returns the first day of the period containing d.
// Weeks run Sunday through Saturday.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		return d.Add(-int(d.Weekday()))
	case Monthly:
		return New(d.y, d.m, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		// day 0 of next month is the last day of this month
		return New(d.y, d.m+1, 0)
	case Yearly:
		return New(d.y, time.December, 31)
	default:
		panic("unknown period")
	}
}

// String formats the date in its standard ISO-8601 form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date formatted according to
// the layout, see [time.Time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements json.Unmarshaler for a date held in a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
