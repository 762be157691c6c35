package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/lotofolio/backend/src/models"
)

func TestNormalizeIsTotal(t *testing.T) {
	rows := []models.GenericRow{
		{},
		{"Completely": "unrelated", "Columns": "here"},
		{"Date": "2024-01-01"},
	}

	records := NewRecordProcessor().Normalize(rows)
	require.Len(t, records, 3, "every row yields exactly one record")

	for _, r := range records {
		assert.NotEmpty(t, r.ID)
	}
	assert.Equal(t, "", records[0].LotteryName)
	assert.Equal(t, "", records[1].Date)
	assert.Equal(t, "2024-01-01", records[2].Date)
}

func TestNormalizeLabelVariantsAreEquivalent(t *testing.T) {
	variants := []models.GenericRow{
		{"LotteryName": "X"},
		{"Lottery Name": "X"},
		{"lotteryname": "X"},
		{"LOTTERYNAME": "X"},
	}

	p := NewRecordProcessor()
	for _, row := range variants {
		records := p.Normalize([]models.GenericRow{row})
		require.Len(t, records, 1)
		assert.Equal(t, "X", records[0].LotteryName, "row %v", row)
	}
}

func TestNormalizeAllFields(t *testing.T) {
	rows := []models.GenericRow{{
		"Date":       "2024-05-01",
		"Lottery":    "Mega",
		"Draw":       "D-17",
		"Result":     "4 8 15 16 23 42",
		"Prize List": "1st: 1M",
		"Notes":      "rollover",
	}}

	records := NewRecordProcessor().Normalize(rows)
	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "2024-05-01", r.Date)
	assert.Equal(t, "Mega", r.LotteryName)
	assert.Equal(t, "D-17", r.Draw)
	assert.Equal(t, "4 8 15 16 23 42", r.Result)
	assert.Equal(t, "1st: 1M", r.PrizeList)
	assert.Equal(t, "rollover", r.Notes)
}

func TestNormalizeBlankCellDoesNotShadowVariant(t *testing.T) {
	// Every named column is keyed on every row of a tabular feed; a blank
	// "Date" cell must not hide the value sitting under the "date" variant.
	rows := []models.GenericRow{{
		"Date": "",
		"date": "2024-04-01",
	}}

	records := NewRecordProcessor().Normalize(rows)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-04-01", records[0].Date)
}

func TestNormalizeMintsDistinctIDs(t *testing.T) {
	rows := []models.GenericRow{{"Draw": "1"}, {"Draw": "2"}}

	records := NewRecordProcessor().Normalize(rows)
	require.Len(t, records, 2)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}
