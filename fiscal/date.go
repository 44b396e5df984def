package fiscal

import (
	"time"
)

// =============================================================================
// DATE - Calendar date value type (day granularity)
// =============================================================================

// Date is a calendar date. All deadline comparisons and calendar sorting use
// Date; the display string ("DD/MM/YYYY") is produced only at the output
// boundary.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDisplayDate parses "DD/MM/YYYY". Malformed input returns the zero Date
// and false; callers fall back to their defaults rather than failing.
func ParseDisplayDate(s string) (Date, bool) {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return Date{}, false
	}
	return NewDate(t.Year(), t.Month(), t.Day()), true
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }
func (d Date) AddYears(n int) Date  { return Date{t: d.t.AddDate(n, 0, 0)} }

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }

func (d Date) Time() time.Time { return d.t }

// Display formats the date as "DD/MM/YYYY" for output records.
func (d Date) Display() string { return d.t.Format("02/01/2006") }

func (d Date) String() string { return d.t.Format("2006-01-02") }

// FirstOfMonth returns the first day of the date's month.
func (d Date) FirstOfMonth() Date { return NewDate(d.Year(), d.Month(), 1) }

func StartOfYear(year int) Date { return NewDate(year, time.January, 1) }
func EndOfYear(year int) Date   { return NewDate(year, time.December, 31) }
