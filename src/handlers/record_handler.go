// backend/src/handlers/record_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/username/lotofolio/backend/src/logger"
	"github.com/username/lotofolio/backend/src/models"
	"github.com/username/lotofolio/backend/src/services"
	"github.com/username/lotofolio/backend/src/utils"
)

type RecordHandler struct {
	feedService services.FeedService
}

func NewRecordHandler(service services.FeedService) *RecordHandler {
	return &RecordHandler{
		feedService: service,
	}
}

type recordsResponse struct {
	Records     []models.CanonicalRecord `json:"records"`
	Count       int                      `json:"count"`
	Total       int                      `json:"total"`
	LastUpdated time.Time                `json:"last_updated"`
}

// HandleGetRecords serves the filtered, sorted record view. Query params:
// q (free-text search) and sort ("latest" or "earliest"; anything else falls
// back to "latest"). An empty result after filtering is a normal 200, not an
// error.
func (h *RecordHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	mode := models.ParseSortMode(r.URL.Query().Get("sort"))

	records, status, err := h.feedService.Records(query, mode)
	if err != nil {
		h.sendLoadError(w, err)
		return
	}
	if records == nil {
		records = []models.CanonicalRecord{}
	}

	response := recordsResponse{
		Records:     records,
		Count:       len(records),
		Total:       status.RecordCount,
		LastUpdated: status.LastLoaded,
	}

	currentETag, etagErr := utils.GenerateETag(response)
	if etagErr != nil {
		logger.L.Error("Failed to generate ETag for records view", "error", etagErr)
	}

	w.Header().Set("Cache-Control", "no-cache, private")

	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		clientETags := strings.Split(r.Header.Get("If-None-Match"), ",")
		for _, cETag := range clientETags {
			if strings.TrimSpace(cETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.L.Error("Error generating JSON response for records view", "error", err)
	}
}

// HandleGetRecord serves the detail view for one selected record.
func (h *RecordHandler) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	record, ok := h.feedService.Record(id)
	if !ok {
		utils.SendJSONError(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(record); err != nil {
		logger.L.Error("Error generating JSON response for record detail", "id", id, "error", err)
	}
}

// HandleRefresh restarts the whole load sequence and reports the fresh
// status. Recovery after a failed load only happens through this endpoint;
// there is no automatic retry.
func (h *RecordHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.feedService.Refresh(r.Context()); err != nil {
		h.sendLoadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.feedService.Status()); err != nil {
		logger.L.Error("Error generating JSON response for refresh", "error", err)
	}
}

func (h *RecordHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.feedService.Status()); err != nil {
		logger.L.Error("Error generating JSON response for status", "error", err)
	}
}

// sendLoadError maps load failures onto the two user-visible categories:
// configuration problems are surfaced verbatim, everything else (network and
// format failures alike) collapses into one generic message with the cause
// kept to the log.
func (h *RecordHandler) sendLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNotConfigured) {
		utils.SendJSONError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	logger.L.Error("Feed load error", "error", err)
	utils.SendJSONError(w, "unable to load lottery results", http.StatusBadGateway)
}
