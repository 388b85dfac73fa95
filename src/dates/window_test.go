package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-stats/src/helpers"
)

// seoulNoon returns a generator whose "today" is the given day in UTC+9.
func seoulNoon(year int, month time.Month, day int) *WindowGenerator {
	now := time.Date(year, month, day, 12, 0, 0, 0, ReferenceLocation)
	return NewWindowGenerator(FixedClock(now), nil)
}

func TestGenerateWindow_NoAnchorUsesToday(t *testing.T) {
	g := seoulNoon(2025, time.June, 10)

	got, err := g.GenerateWindow("", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-08", "2025-06-09", "2025-06-10"}, got)
}

func TestGenerateWindow_FutureDaysAreDropped(t *testing.T) {
	g := seoulNoon(2025, time.June, 8)

	got, err := g.GenerateWindow("2025-06-10", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-06", "2025-06-07", "2025-06-08"}, got)
}

func TestGenerateWindow_WholeWindowInFuture(t *testing.T) {
	g := seoulNoon(2025, time.June, 8)

	got, err := g.GenerateWindow("2025-07-01", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateWindow_TodayInSeoulNotLocal(t *testing.T) {
	// 2025-06-09 20:30 UTC is already 2025-06-10 05:30 in Seoul.
	now := time.Date(2025, time.June, 9, 20, 30, 0, 0, time.UTC)
	g := NewWindowGenerator(FixedClock(now), nil)

	got, err := g.GenerateWindow("", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-09", "2025-06-10"}, got)
}

func TestGenerateWindow_PastAnchorFullLength(t *testing.T) {
	g := seoulNoon(2025, time.June, 10)

	for _, days := range []int{1, 2, 7, 31, 60} {
		got, err := g.GenerateWindow("2025-03-01", days)
		require.NoError(t, err)
		require.Len(t, got, days)
		assert.Equal(t, "2025-03-01", got[len(got)-1])

		for i := 1; i < len(got); i++ {
			prev, err := ParseCalendarDate(got[i-1])
			require.NoError(t, err)
			cur, err := ParseCalendarDate(got[i])
			require.NoError(t, err)
			assert.Equal(t, cur, prev.AddDays(1), "entries %d and %d are not one day apart", i-1, i)
		}
	}
}

func TestGenerateWindow_AnchorToday(t *testing.T) {
	g := seoulNoon(2024, time.March, 1)

	got, err := g.GenerateWindow("2024-03-01", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}, got)
}

func TestGenerateWindow_SingleDay(t *testing.T) {
	g := seoulNoon(2025, time.June, 10)

	got, err := g.GenerateWindow("2025-01-01", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01"}, got)

	got, err = g.GenerateWindow("2025-06-11", 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateWindow_CrossesYearBoundary(t *testing.T) {
	g := seoulNoon(2025, time.June, 10)

	got, err := g.GenerateWindow("2025-01-02", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12-31", "2025-01-01", "2025-01-02"}, got)
}

func TestGenerateWindow_AnchorWithTimeIsTruncated(t *testing.T) {
	g := seoulNoon(2025, time.June, 10)

	tests := []struct {
		name   string
		anchor string
		want   string
	}{
		{"naive timestamp", "2025-06-05T23:59:59", "2025-06-05"},
		{"utc timestamp moves into seoul", "2025-06-05T20:00:00Z", "2025-06-06"},
		{"seoul offset", "2025-06-05T00:10:00+09:00", "2025-06-05"},
		{"space separated", "2025-06-05 08:00", "2025-06-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.GenerateWindow(tt.anchor, 1)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, got)
		})
	}
}

func TestGenerateWindow_Errors(t *testing.T) {
	g := seoulNoon(2025, time.June, 10)

	tests := []struct {
		name      string
		anchor    string
		days      int
		wantInput bool
	}{
		{"zero days", "", 0, false},
		{"negative days", "2025-06-01", -3, false},
		{"garbage anchor", "not-a-date", 3, true},
		{"impossible day", "2025-02-30", 3, true},
		{"month out of range", "2025-13-01", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.GenerateWindow(tt.anchor, tt.days)
			require.Error(t, err)
			assert.Nil(t, got)

			var inputErr *helpers.InvalidInputError
			var argErr *helpers.InvalidArgumentError
			if tt.wantInput {
				assert.True(t, errors.As(err, &inputErr), "want InvalidInputError, got %T", err)
			} else {
				assert.True(t, errors.As(err, &argErr), "want InvalidArgumentError, got %T", err)
			}
			assert.True(t, helpers.IsClientError(err))
		})
	}
}

func TestGenerateWindow_Idempotent(t *testing.T) {
	g := seoulNoon(2025, time.June, 10)

	first, err := g.GenerateWindow("2025-06-01", 10)
	require.NoError(t, err)
	second, err := g.GenerateWindow("2025-06-01", 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateWindow_RoundTrip(t *testing.T) {
	g := seoulNoon(2025, time.June, 10)

	window, err := g.Window("", 5)
	require.NoError(t, err)

	for _, d := range window {
		parsed, err := ParseCalendarDate(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestGenerateWindow_DefaultGenerator(t *testing.T) {
	before := NewCalendarDate(time.Now().In(ReferenceLocation)).String()
	got, err := GenerateWindow("", 3)
	after := NewCalendarDate(time.Now().In(ReferenceLocation)).String()

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Contains(t, []string{before, after}, got[len(got)-1])
}

func TestCalendarDate_Ordering(t *testing.T) {
	a := CalendarDate{2025, time.January, 31}
	b := CalendarDate{2025, time.February, 1}

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(CalendarDate{2025, time.January, 31}))
	assert.Equal(t, b, a.AddDays(1))
	assert.Equal(t, CalendarDate{2024, time.December, 31}, CalendarDate{2025, time.January, 1}.AddDays(-1))
	assert.Equal(t, "2025-01-31", a.String())
}
