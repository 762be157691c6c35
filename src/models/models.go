package models

// FeedCell is one cell of the feed table. The feed delivers an optional typed
// value ("v") plus an optional pre-formatted string ("f"); a missing cell
// arrives as JSON null.
type FeedCell struct {
	Value     interface{} `json:"v"`
	Formatted string      `json:"f"`
}

// FeedColumn describes one column of the feed table. Exports usually carry a
// human label, but some sheets only populate the machine id (A, B, C...).
type FeedColumn struct {
	Label string `json:"label"`
	ID    string `json:"id"`
}

type FeedRow struct {
	Cells []*FeedCell `json:"c"`
}

type FeedTable struct {
	Cols []FeedColumn `json:"cols"`
	Rows []FeedRow    `json:"rows"`
}

// FeedDocument is the JSON payload embedded inside the feed envelope.
type FeedDocument struct {
	Table FeedTable `json:"table"`
}

// GenericRow maps whatever column label the feed happened to use to that
// row's display-ready cell value. Normalization into the canonical schema
// happens later, in the record processor.
type GenericRow map[string]string

// SortMode selects the ordering of a query result.
type SortMode string

const (
	SortLatest   SortMode = "latest"   // newest draw date first
	SortEarliest SortMode = "earliest" // oldest draw date first
)

// ParseSortMode maps a user-supplied sort parameter to a SortMode, falling
// back to SortLatest for anything unrecognized. Sorting never errors.
func ParseSortMode(s string) SortMode {
	if SortMode(s) == SortEarliest {
		return SortEarliest
	}
	return SortLatest
}
