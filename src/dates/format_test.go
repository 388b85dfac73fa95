package dates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-stats/src/helpers"
)

func TestShortFormats(t *testing.T) {
	tests := []struct {
		name         string
		ts           string
		wantDateTime string
		wantDate     string
		wantTime     string
	}{
		{"naive morning", "2025-01-05T09:30:00", "01/05 09:30", "01/05", "09:30"},
		{"naive with fraction", "2025-12-31T23:05:07.123", "12/31 23:05", "12/31", "23:05"},
		{"keeps explicit offset", "2025-06-10T01:02:03+09:00", "06/10 01:02", "06/10", "01:02"},
		{"utc stays utc", "2025-06-09T16:02:03Z", "06/09 16:02", "06/09", "16:02"},
		{"plain date is midnight", "2025-03-04", "03/04 00:00", "03/04", "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDateTimeShort(tt.ts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDateTime, got)

			got, err = FormatDateShort(tt.ts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, got)

			got, err = FormatTimeShort(tt.ts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTime, got)

			labels, err := FormatLabels(tt.ts)
			require.NoError(t, err)
			assert.Equal(t, Labels{DateTime: tt.wantDateTime, Date: tt.wantDate, Time: tt.wantTime}, labels)
		})
	}
}

func TestShortFormats_InvalidInput(t *testing.T) {
	for _, ts := range []string{"", "   ", "yesterday", "2025-06-10T25:00:00"} {
		for _, fn := range []func(string) (string, error){FormatDateTimeShort, FormatDateShort, FormatTimeShort} {
			_, err := fn(ts)
			var inputErr *helpers.InvalidInputError
			assert.True(t, errors.As(err, &inputErr), "input %q: want InvalidInputError, got %v", ts, err)
		}
	}
}
