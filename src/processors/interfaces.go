package processors

import (
	"github.com/username/lotofolio/backend/src/models"
)

// RecordProcessor defines the interface for normalizing generic feed rows
// into canonical records.
type RecordProcessor interface {
	Normalize(rows []models.GenericRow) []models.CanonicalRecord
}

// QueryProcessor defines the interface for the filter+sort stage producing
// the view-ready record list.
type QueryProcessor interface {
	Run(records []models.CanonicalRecord, query string, mode models.SortMode) []models.CanonicalRecord
}
