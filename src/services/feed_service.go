// backend/src/services/feed_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/lotofolio/backend/src/config"
	"github.com/username/lotofolio/backend/src/logger"
	"github.com/username/lotofolio/backend/src/models"
	"github.com/username/lotofolio/backend/src/parsers"
	"github.com/username/lotofolio/backend/src/processors"
)

const (
	// Cached rendered views, keyed per query+sort, flushed on every load.
	ckRecordsView = "res_records_%s_%s"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

var (
	// ErrNotConfigured is surfaced verbatim to the user; fixing it requires
	// reconfiguration, not a retry.
	ErrNotConfigured = errors.New("lottery feed is not configured: set SHEET_ID to your spreadsheet id")

	// ErrFeedUnavailable covers fetch failures. The user sees the same
	// generic message as for format errors; only the log gets the cause.
	ErrFeedUnavailable = errors.New("lottery feed unavailable")
)

type feedServiceImpl struct {
	client          FeedClient
	parser          parsers.Parser
	recordProcessor processors.RecordProcessor
	queryProcessor  processors.QueryProcessor
	viewCache       *cache.Cache
	sheetID         string

	mu         sync.RWMutex
	records    []models.CanonicalRecord
	byID       map[string]models.CanonicalRecord
	generation uint64
	version    uint64 // bumped every time a load outcome is published
	loaded     bool
	lastLoaded time.Time
	lastErr    error
}

func NewFeedService(
	client FeedClient,
	parser parsers.Parser,
	recordProcessor processors.RecordProcessor,
	queryProcessor processors.QueryProcessor,
	viewCache *cache.Cache,
	sheetID string,
) FeedService {
	return &feedServiceImpl{
		client:          client,
		parser:          parser,
		recordProcessor: recordProcessor,
		queryProcessor:  queryProcessor,
		viewCache:       viewCache,
		sheetID:         sheetID,
	}
}

func (s *feedServiceImpl) configured() bool {
	return s.sheetID != "" && s.sheetID != config.SheetIDPlaceholder
}

// Refresh runs one whole load sequence and swaps the record set wholesale.
// Each call claims a load generation; if another Refresh starts while this
// one is still fetching, the slower result is discarded on completion instead
// of overwriting newer state.
func (s *feedServiceImpl) Refresh(ctx context.Context) error {
	startTime := time.Now()
	logger.L.Info("Feed refresh START", "sheetID", s.sheetID)

	if !s.configured() {
		s.completeLoad(s.claimGeneration(), nil, ErrNotConfigured)
		return ErrNotConfigured
	}

	gen := s.claimGeneration()

	raw, err := s.client.FetchFeed(ctx)
	if err != nil {
		return s.completeLoad(gen, nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err))
	}

	rows, err := s.parser.Parse(strings.NewReader(raw))
	if err != nil {
		// Already tagged with parsers.ErrFeedFormat.
		return s.completeLoad(gen, nil, err)
	}

	records := s.recordProcessor.Normalize(rows)
	loadErr := s.completeLoad(gen, records, nil)
	logger.L.Info("Feed refresh END", "records", len(records), "duration", time.Since(startTime))
	return loadErr
}

func (s *feedServiceImpl) claimGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// completeLoad publishes the outcome of one load attempt. A load whose
// generation has been superseded reports its own result to its caller but
// leaves the shared state alone.
func (s *feedServiceImpl) completeLoad(gen uint64, records []models.CanonicalRecord, loadErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		logger.L.Info("Discarding superseded feed load", "generation", gen, "current", s.generation)
		return loadErr
	}

	s.version++

	if loadErr != nil {
		// A failed load never leaves a stale record set behind.
		logger.L.Error("Feed load failed", "error", loadErr)
		s.records = nil
		s.byID = nil
		s.loaded = false
		s.lastErr = loadErr
	} else {
		s.records = records
		s.byID = make(map[string]models.CanonicalRecord, len(records))
		for _, r := range records {
			s.byID[r.ID] = r
		}
		s.loaded = true
		s.lastLoaded = time.Now()
		s.lastErr = nil
	}

	s.viewCache.Flush()
	return loadErr
}

// Records answers one search/sort query over the current record set. The
// filter+sort pass itself never errors; the returned error only reports that
// the last load failed or that the feed is unconfigured. The returned status
// is taken in the same snapshot as the record set, so view and metadata
// always describe the same load.
func (s *feedServiceImpl) Records(query string, mode models.SortMode) ([]models.CanonicalRecord, FeedStatus, error) {
	s.mu.RLock()
	snapshot := s.records
	lastErr := s.lastErr
	version := s.version
	status := s.statusLocked()
	s.mu.RUnlock()

	if !s.configured() {
		return nil, status, ErrNotConfigured
	}
	if lastErr != nil {
		return nil, status, lastErr
	}

	cacheKey := fmt.Sprintf(ckRecordsView, mode, strings.ToLower(strings.TrimSpace(query)))
	if cached, found := s.viewCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for records view", "key", cacheKey)
		return cached.([]models.CanonicalRecord), status, nil
	}

	view := s.queryProcessor.Run(snapshot, query, mode)

	// A reload may have swapped the record set (and flushed this cache)
	// while the view was being computed; a view of the old set must not be
	// written back. Only cache it if the load it describes is still current.
	s.mu.RLock()
	current := version == s.version
	s.mu.RUnlock()
	if current {
		s.viewCache.Set(cacheKey, view, cache.DefaultExpiration)
	}
	return view, status, nil
}

// Record resolves a selection (a record ID from the current load cycle) back
// to its canonical record.
func (s *feedServiceImpl) Record(id string) (models.CanonicalRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	return r, ok
}

func (s *feedServiceImpl) Status() FeedStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusLocked()
}

// statusLocked builds the status snapshot; callers hold s.mu.
func (s *feedServiceImpl) statusLocked() FeedStatus {
	switch {
	case !s.configured():
		return FeedStatus{State: StateUnconfigured, Message: ErrNotConfigured.Error()}
	case s.lastErr != nil:
		return FeedStatus{State: StateFailed, Message: "unable to load lottery results"}
	case !s.loaded:
		return FeedStatus{State: StateNotLoaded}
	default:
		return FeedStatus{
			State:       StateLoaded,
			RecordCount: len(s.records),
			LastLoaded:  s.lastLoaded,
		}
	}
}
