package services

import (
	"context"
	"time"

	"github.com/username/lotofolio/backend/src/models"
)

// Feed load states reported by FeedStatus.
const (
	StateUnconfigured = "unconfigured" // sheet ID missing or placeholder
	StateNotLoaded    = "not_loaded"   // no load attempted yet
	StateFailed       = "failed"       // last load attempt failed
	StateLoaded       = "loaded"       // record set is current
)

// FeedStatus describes the outcome of the most recent load so the frontend
// can distinguish "no data after filtering" from "load failed" from
// "not yet configured".
type FeedStatus struct {
	State       string    `json:"state"`
	RecordCount int       `json:"record_count"`
	LastLoaded  time.Time `json:"last_loaded"`
	Message     string    `json:"message,omitempty"`
}

// FeedService owns the canonical record set and its load lifecycle.
type FeedService interface {
	// Refresh runs one whole load sequence: fetch, parse, normalize, swap.
	Refresh(ctx context.Context) error
	// Records answers one query: the filtered, ordered view of the current
	// record set, together with the status of the load that produced it.
	// The error reports the state of the last load, never a filtering or
	// sorting problem.
	Records(query string, mode models.SortMode) ([]models.CanonicalRecord, FeedStatus, error)
	// Record resolves a selection back to its canonical record.
	Record(id string) (models.CanonicalRecord, bool)
	Status() FeedStatus
}
