package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted for record dates, tried in order. The feed does not
// guarantee any particular format, so we accept the common spreadsheet ones.
var recordDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// gviz-style date constructor, e.g. "Date(2024,0,5)". Month is zero-based.
var gvizDateRe = regexp.MustCompile(`^Date\((\d+),(\d+),(\d+)(?:,\d+)*\)$`)

// ParseRecordDate parses a record's date field into a calendar date.
// Returns ok=false when the value is empty or matches no accepted format;
// callers must treat the sort key as undefined in that case rather than fail.
func ParseRecordDate(dateStr string) (time.Time, bool) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}, false
	}

	if m := gvizDateRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC), true
	}

	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
