package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"ISO format", "2024-01-15", true, 2024, time.January, 15},
		{"Indian dash format", "15-01-2024", true, 2024, time.January, 15},
		{"Indian slash format", "15/01/2024", true, 2024, time.January, 15},
		{"Dotted format", "15.01.2024", true, 2024, time.January, 15},
		{"Full timestamp", "2024-01-15 10:30:45", true, 2024, time.January, 15},
		{"Month name", "15-Jan-2024", true, 2024, time.January, 15},
		{"Extra whitespace", "  2024-01-15  ", true, 2024, time.January, 15},
		{"Empty string", "", false, 0, 0, 0},
		{"Garbage", "not a date", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, _, err := ParseDate(tc.dateStr)
			if !tc.expectedOk {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedY, date.Year())
			assert.Equal(t, tc.expectedM, date.Month())
			assert.Equal(t, tc.expectedD, date.Day())
		})
	}
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "2024-01-15", CleanDateString("  2024-01-15 "))
	assert.Equal(t, "15 Jan 2024", CleanDateString("15   Jan   2024"))
}

func TestStartAndEndOfMonth(t *testing.T) {
	date := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(date))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), EndOfMonth(date))
}
