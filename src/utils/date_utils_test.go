package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordDateFormats(t *testing.T) {
	want := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	for _, s := range []string{
		"2024-01-05",
		"05-01-2024",
		"05/01/2024",
		"January 5, 2024",
		"Jan 5, 2024",
		"Date(2024,0,5)",
		"  2024-01-05  ",
	} {
		got, ok := ParseRecordDate(s)
		require.True(t, ok, "expected %q to parse", s)
		assert.True(t, got.Equal(want), "parsed %q to %v", s, got)
	}
}

func TestParseRecordDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not a date", "Date()", "13-13-13-13"} {
		_, ok := ParseRecordDate(s)
		assert.False(t, ok, "expected %q not to parse", s)
	}
}

func TestParseRecordDateGvizMonthIsZeroBased(t *testing.T) {
	got, ok := ParseRecordDate("Date(2024,11,31)")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), got)
}
