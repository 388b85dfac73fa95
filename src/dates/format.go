package dates

import (
	"time"

	"mission-stats/src/helpers"
)

// Chart label layouts. Month and day are always zero padded.
const (
	DateTimeShort = "01/02 15:04"
	DateShort     = "01/02"
	TimeShort     = "15:04"
)

// FormatDateTimeShort renders ts as MM/DD HH:MM in ts's own zone.
func FormatDateTimeShort(ts string) (string, error) {
	return formatAs(ts, DateTimeShort)
}

// FormatDateShort renders ts as MM/DD.
func FormatDateShort(ts string) (string, error) {
	return formatAs(ts, DateShort)
}

// FormatTimeShort renders ts as HH:MM.
func FormatTimeShort(ts string) (string, error) {
	return formatAs(ts, TimeShort)
}

func formatAs(ts, layout string) (string, error) {
	t, _, err := parseTimestamp(ts)
	if err != nil {
		return "", helpers.NewInvalidInput(err, "invalid timestamp %q", ts)
	}
	return t.Format(layout), nil
}

// -----------------------------------------------------------------------------

// Labels bundles the three chart labels for one timestamp.
type Labels struct {
	DateTime string `json:"date_time"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// FormatLabels parses ts once and renders every short format.
func FormatLabels(ts string) (Labels, error) {
	t, _, err := parseTimestamp(ts)
	if err != nil {
		return Labels{}, helpers.NewInvalidInput(err, "invalid timestamp %q", ts)
	}
	return labelsOf(t), nil
}

func labelsOf(t time.Time) Labels {
	return Labels{
		DateTime: t.Format(DateTimeShort),
		Date:     t.Format(DateShort),
		Time:     t.Format(TimeShort),
	}
}
