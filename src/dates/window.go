package dates

import (
	"time"

	"mission-stats/src/helpers"
)

// ReferenceOffsetHours is the fixed UTC offset (Asia/Seoul) that decides "today".
const ReferenceOffsetHours = 9

// ReferenceLocation is UTC+9 with no DST rules.
var ReferenceLocation = time.FixedZone("KST", ReferenceOffsetHours*60*60)

// -----------------------------------------------------------------------------

// WindowGenerator builds trailing windows of calendar days that never run past
// today in its location.
type WindowGenerator struct {
	clock Clock
	loc   *time.Location
}

// -----------------------------------------------------------------------------

// NewWindowGenerator returns a generator. nil arguments select SystemClock and
// ReferenceLocation.
func NewWindowGenerator(clock Clock, loc *time.Location) *WindowGenerator {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = ReferenceLocation
	}
	return &WindowGenerator{clock: clock, loc: loc}
}

var defaultGenerator = NewWindowGenerator(nil, nil)

// GenerateWindow uses the system clock and the UTC+9 reference timezone.
func GenerateWindow(anchor string, days int) ([]string, error) {
	return defaultGenerator.GenerateWindow(anchor, days)
}

// -----------------------------------------------------------------------------

// Location returns the timezone that decides "today".
func (g *WindowGenerator) Location() *time.Location {
	return g.loc
}

// -----------------------------------------------------------------------------

// Today returns the current calendar day in the generator's location.
func (g *WindowGenerator) Today() CalendarDate {
	return NewCalendarDate(g.clock.Now().In(g.loc))
}

// -----------------------------------------------------------------------------

// ParseAnchor truncates anchor to a calendar day. Timestamps with an explicit
// offset are first moved into the generator's location; naive ones are taken
// as written.
func (g *WindowGenerator) ParseAnchor(anchor string) (CalendarDate, error) {
	t, zoned, err := parseTimestamp(anchor)
	if err != nil {
		return CalendarDate{}, helpers.NewInvalidInput(err, "invalid anchor date %q", anchor)
	}
	if zoned {
		t = t.In(g.loc)
	}
	return NewCalendarDate(t), nil
}

// -----------------------------------------------------------------------------

// Window returns up to days consecutive calendar days ending at anchor (today
// when anchor is empty), oldest first. Days after today are dropped, so a
// future anchor yields a truncated or empty window.
func (g *WindowGenerator) Window(anchor string, days int) ([]CalendarDate, error) {
	if days <= 0 {
		return nil, helpers.NewInvalidArgument("days must be a positive integer, got %d", days)
	}

	today := g.Today()
	base := today
	if anchor != "" {
		var err error
		if base, err = g.ParseAnchor(anchor); err != nil {
			return nil, err
		}
	}

	window := make([]CalendarDate, 0, min(days, 366))
	for i := days - 1; i >= 0; i-- {
		d := base.AddDays(-i)
		if d.After(today) {
			break
		}
		window = append(window, d)
	}
	return window, nil
}

// -----------------------------------------------------------------------------

// GenerateWindow is Window formatted as YYYY-MM-DD strings.
func (g *WindowGenerator) GenerateWindow(anchor string, days int) ([]string, error) {
	window, err := g.Window(anchor, days)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(window))
	for i, d := range window {
		out[i] = d.String()
	}
	return out, nil
}
