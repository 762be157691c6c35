package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/lotofolio/backend/src/models"
)

func rec(name, date string) models.CanonicalRecord {
	return models.CanonicalRecord{ID: name + date, LotteryName: name, Date: date}
}

func dates(records []models.CanonicalRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Date
	}
	return out
}

func TestFilterEmptyQueryKeepsEverything(t *testing.T) {
	records := []models.CanonicalRecord{rec("Mega", "2024-01-05"), rec("Mini", "2024-03-01")}

	p := NewQueryProcessor().(*queryProcessorImpl)
	assert.Equal(t, records, p.Filter(records, ""))
	assert.Equal(t, records, p.Filter(records, "   "))
}

func TestFilterMatchesSubstringCaseInsensitive(t *testing.T) {
	records := []models.CanonicalRecord{
		rec("MegaMillions", "2024-01-05"),
		rec("Mini", "2024-03-01"),
	}

	p := NewQueryProcessor().(*queryProcessorImpl)
	got := p.Filter(records, "MEGA")
	require.Len(t, got, 1)
	assert.Equal(t, "MegaMillions", got[0].LotteryName)
}

func TestFilterSearchesAllFieldsButNotes(t *testing.T) {
	p := NewQueryProcessor().(*queryProcessorImpl)

	records := []models.CanonicalRecord{{
		ID:          "1",
		Date:        "2024-05-01",
		LotteryName: "Mega",
		Draw:        "D-17",
		Result:      "4 8 15",
		PrizeList:   "jackpot 1M",
		Notes:       "secret annotation",
	}}

	for _, q := range []string{"mega", "d-17", "4 8 15", "jackpot", "2024-05"} {
		assert.Len(t, p.Filter(records, q), 1, "query %q should match", q)
	}
	assert.Empty(t, p.Filter(records, "secret"), "notes are not searchable")
}

func TestSortDirections(t *testing.T) {
	records := []models.CanonicalRecord{
		rec("a", "2024-01-05"),
		rec("b", "2024-03-01"),
		rec("c", "2024-02-10"),
	}

	p := NewQueryProcessor().(*queryProcessorImpl)

	latest := p.Sort(records, models.SortLatest)
	assert.Equal(t, []string{"2024-03-01", "2024-02-10", "2024-01-05"}, dates(latest))

	earliest := p.Sort(records, models.SortEarliest)
	assert.Equal(t, []string{"2024-01-05", "2024-02-10", "2024-03-01"}, dates(earliest))

	// Input order untouched.
	assert.Equal(t, []string{"2024-01-05", "2024-03-01", "2024-02-10"}, dates(records))
}

func TestSortUnparseableDatesGoLastBothDirections(t *testing.T) {
	records := []models.CanonicalRecord{
		rec("a", "not a date"),
		rec("b", "2024-03-01"),
		rec("c", ""),
		rec("d", "2024-01-05"),
	}

	p := NewQueryProcessor().(*queryProcessorImpl)

	latest := p.Sort(records, models.SortLatest)
	assert.Equal(t, []string{"2024-03-01", "2024-01-05", "not a date", ""}, dates(latest))

	earliest := p.Sort(records, models.SortEarliest)
	assert.Equal(t, []string{"2024-01-05", "2024-03-01", "not a date", ""}, dates(earliest))
}

func TestSortEqualDatesKeepRelativeOrder(t *testing.T) {
	records := []models.CanonicalRecord{
		rec("first", "2024-01-05"),
		rec("second", "2024-01-05"),
		rec("third", "2024-01-05"),
	}

	p := NewQueryProcessor().(*queryProcessorImpl)
	for _, mode := range []models.SortMode{models.SortLatest, models.SortEarliest} {
		sorted := p.Sort(records, mode)
		require.Len(t, sorted, 3)
		assert.Equal(t, "first", sorted[0].LotteryName, "mode %s", mode)
		assert.Equal(t, "second", sorted[1].LotteryName, "mode %s", mode)
		assert.Equal(t, "third", sorted[2].LotteryName, "mode %s", mode)
	}
}

func TestRunFiltersThenSorts(t *testing.T) {
	records := []models.CanonicalRecord{
		rec("Mega", "2024-01-05"),
		rec("Mini", "2024-03-01"),
		rec("Mega", "2024-02-10"),
	}

	got := NewQueryProcessor().Run(records, "mega", models.SortLatest)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-02-10", got[0].Date)
	assert.Equal(t, "2024-01-05", got[1].Date)
}
