package dates

import (
	"fmt"
	"time"
)

// ISODate is the wire format of a calendar day (YYYY-MM-DD).
const ISODate = "2006-01-02"

// -----------------------------------------------------------------------------

// CalendarDate is a day with no time-of-day component. Ordering is
// lexicographic on (Year, Month, Day).
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// -----------------------------------------------------------------------------

// NewCalendarDate returns the calendar day of t in t's own location.
func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// -----------------------------------------------------------------------------

// ParseCalendarDate parses a strict YYYY-MM-DD string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return CalendarDate{}, err
	}
	return NewCalendarDate(t), nil
}

// -----------------------------------------------------------------------------

// Midnight returns the start of the day in loc.
func (c CalendarDate) Midnight(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, loc)
}

// -----------------------------------------------------------------------------

// AddDays shifts the date by n calendar days (n may be negative).
func (c CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(time.Date(c.Year, c.Month, c.Day+n, 0, 0, 0, 0, time.UTC))
}

// -----------------------------------------------------------------------------

// Compare returns -1, 0 or +1.
func (c CalendarDate) Compare(o CalendarDate) int {
	switch {
	case c.Year != o.Year:
		return cmpInt(c.Year, o.Year)
	case c.Month != o.Month:
		return cmpInt(int(c.Month), int(o.Month))
	default:
		return cmpInt(c.Day, o.Day)
	}
}

func (c CalendarDate) Before(o CalendarDate) bool { return c.Compare(o) < 0 }
func (c CalendarDate) After(o CalendarDate) bool  { return c.Compare(o) > 0 }

// -----------------------------------------------------------------------------

func (c CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, int(c.Month), c.Day)
}

// -----------------------------------------------------------------------------

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
