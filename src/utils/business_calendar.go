package utils

import (
	"time"

	"github.com/scmhub/calendar"

	"mission-stats/src/dates"
	"mission-stats/src/models"
)

// DefaultMIC is the Korea Exchange calendar, whose holidays match the Seoul
// working week.
const DefaultMIC = "xkrx"

// BusinessCalendar decides whether a calendar date is a working day using
// scmhub/calendar.
type BusinessCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// GetCalendar loads the calendar for a MIC code. When the library has no
// calendar for it, weekends are the only non-business days.
func GetCalendar(mic string) *BusinessCalendar {
	cal := calendar.GetCalendar(mic)
	if cal == nil {
		return &BusinessCalendar{Fallback: true, Timezone: dates.ReferenceLocation}
	}
	return &BusinessCalendar{Calendar: cal, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

// SeoulCalendar is the calendar used to annotate date windows.
func SeoulCalendar() *BusinessCalendar {
	return GetCalendar(DefaultMIC)
}

// -----------------------------------------------------------------------------

func (bc *BusinessCalendar) IsBusinessDay(d dates.CalendarDate) bool {
	loc := bc.Timezone
	if loc == nil {
		loc = dates.ReferenceLocation
	}
	// Noon keeps the date stable under any zone conversion inside the library
	t := d.Midnight(loc).Add(12 * time.Hour)

	if bc.Fallback || bc.Calendar == nil {
		weekday := t.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return bc.Calendar.IsBusinessDay(t)
}

// -----------------------------------------------------------------------------

// Annotate attaches chart labels, weekday names and the business-day flag to
// window dates. Entries that are not YYYY-MM-DD are kept with only Date set.
func (bc *BusinessCalendar) Annotate(window []string) []models.MWindowDay {
	out := make([]models.MWindowDay, 0, len(window))
	for _, s := range window {
		day := models.MWindowDay{Date: s}
		d, err := dates.ParseCalendarDate(s)
		if err == nil {
			t := d.Midnight(dates.ReferenceLocation)
			day.Label = t.Format(dates.DateShort)
			day.Weekday = t.Weekday().String()
			day.BusinessDay = bc.IsBusinessDay(d)
		}
		out = append(out, day)
	}
	return out
}
