// backend/src/processors/query_processor.go
package processors

import (
	"sort"
	"strings"

	"github.com/username/lotofolio/backend/src/models"
	"github.com/username/lotofolio/backend/src/utils"
)

type queryProcessorImpl struct{}

// NewQueryProcessor creates a new instance of QueryProcessor.
func NewQueryProcessor() QueryProcessor {
	return &queryProcessorImpl{}
}

// Run produces the view-ready list: filter first, then sort. Pure function
// over its inputs; it never errors, malformed record data degrades to the
// empty-string / undefined-sort-key behavior instead.
func (p *queryProcessorImpl) Run(records []models.CanonicalRecord, query string, mode models.SortMode) []models.CanonicalRecord {
	return p.Sort(p.Filter(records, query), mode)
}

// Filter keeps the records whose searchable text contains the query,
// case-insensitively. An empty (or all-whitespace) query keeps everything,
// order preserved. Plain substring match, no tokenization.
func (p *queryProcessorImpl) Filter(records []models.CanonicalRecord, query string) []models.CanonicalRecord {
	needle := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]models.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if needle == "" || strings.Contains(searchText(r), needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// searchText is the haystack one record exposes to the filter. Notes are
// deliberately not searchable.
func searchText(r models.CanonicalRecord) string {
	return strings.ToLower(strings.Join([]string{
		r.LotteryName, r.Result, r.Date, r.Draw, r.PrizeList,
	}, " "))
}

// Sort orders records by their parsed draw date, newest first for
// SortLatest and oldest first for SortEarliest. Records whose date does not
// parse sort after all parseable records in both directions, keeping their
// relative order; equal dates also keep their relative order (stable sort).
func (p *queryProcessorImpl) Sort(records []models.CanonicalRecord, mode models.SortMode) []models.CanonicalRecord {
	sorted := make([]models.CanonicalRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, okI := utils.ParseRecordDate(sorted[i].Date)
		tj, okJ := utils.ParseRecordDate(sorted[j].Date)

		// Unparseable dates go last regardless of direction.
		if okI != okJ {
			return okI
		}
		if !okI {
			return false
		}

		if mode == models.SortEarliest {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})
	return sorted
}
