// backend/src/processors/record_processor.go
package processors

import (
	"github.com/google/uuid"

	"github.com/username/lotofolio/backend/src/models"
)

// fieldLabels is the declarative column-mapping table: for each canonical
// field, the accepted feed column labels in priority order. Sheets in the
// wild disagree on spacing and casing, so each field takes a small fixed set
// of variants; the first one present on a row wins.
type fieldLabels struct {
	set    func(r *models.CanonicalRecord, v string)
	labels []string
}

var canonicalFields = []fieldLabels{
	{
		set:    func(r *models.CanonicalRecord, v string) { r.Date = v },
		labels: []string{"Date", "date", "DATE", "Draw Date", "DrawDate"},
	},
	{
		set:    func(r *models.CanonicalRecord, v string) { r.LotteryName = v },
		labels: []string{"LotteryName", "Lottery Name", "lotteryname", "LOTTERYNAME", "Lottery"},
	},
	{
		set:    func(r *models.CanonicalRecord, v string) { r.Draw = v },
		labels: []string{"Draw", "draw", "DRAW", "Draw Number", "DrawNumber"},
	},
	{
		set:    func(r *models.CanonicalRecord, v string) { r.Result = v },
		labels: []string{"Result", "result", "RESULT", "Winning Numbers"},
	},
	{
		set:    func(r *models.CanonicalRecord, v string) { r.PrizeList = v },
		labels: []string{"PrizeList", "Prize List", "prizelist", "PRIZELIST", "Prizes"},
	},
	{
		set:    func(r *models.CanonicalRecord, v string) { r.Notes = v },
		labels: []string{"Notes", "notes", "NOTES", "Note"},
	},
}

type recordProcessorImpl struct{}

// NewRecordProcessor creates a new instance of RecordProcessor.
func NewRecordProcessor() RecordProcessor {
	return &recordProcessorImpl{}
}

// Normalize maps every generic row onto the canonical schema. It is total:
// each input row yields exactly one record, with every field set (possibly to
// the empty string) even when the feed has zero matching columns. No date or
// content validation happens here; normalization is purely structural.
func (p *recordProcessorImpl) Normalize(rows []models.GenericRow) []models.CanonicalRecord {
	records := make([]models.CanonicalRecord, 0, len(rows))
	for _, row := range rows {
		record := models.CanonicalRecord{ID: uuid.NewString()}
		for _, field := range canonicalFields {
			field.set(&record, resolveLabel(row, field.labels))
		}
		records = append(records, record)
	}
	return records
}

// resolveLabel returns the row's value under the first accepted label that
// carries one, or the empty string when none does. Tabular feeds key every
// named column on every row, so a present-but-blank cell must not shadow a
// variant column that actually holds the value.
func resolveLabel(row models.GenericRow, labels []string) string {
	for _, label := range labels {
		if v := row[label]; v != "" {
			return v
		}
	}
	return ""
}
