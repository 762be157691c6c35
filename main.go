package main

import (
	"context"
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/lotofolio/backend/src/config"
	"github.com/username/lotofolio/backend/src/handlers"
	"github.com/username/lotofolio/backend/src/logger"
	"github.com/username/lotofolio/backend/src/parsers"
	"github.com/username/lotofolio/backend/src/processors"
	"github.com/username/lotofolio/backend/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == config.Cfg.AllowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Lotofolio backend server starting...")

	logger.L.Info("Initializing view cache...")
	viewCache := cache.New(services.DefaultCacheExpiration, services.CacheCleanupInterval)

	logger.L.Info("Initializing services and handlers...")
	feedClient := services.NewHTTPFeedClient(
		config.Cfg.FeedURL(),
		config.Cfg.FetchTimeout,
		config.Cfg.MaxFeedSizeBytes,
	)
	feedParser := parsers.NewFeedParser()
	recordProcessor := processors.NewRecordProcessor()
	queryProcessor := processors.NewQueryProcessor()

	feedService := services.NewFeedService(
		feedClient, feedParser, recordProcessor, queryProcessor,
		viewCache, config.Cfg.SheetID,
	)
	recordHandler := handlers.NewRecordHandler(feedService)

	// One load attempt up front. A failure here is not fatal: the server
	// still comes up and reports the failed state until a user refresh.
	logger.L.Info("Running initial feed load...")
	loadCtx, cancel := context.WithTimeout(context.Background(), config.Cfg.FetchTimeout)
	if err := feedService.Refresh(loadCtx); err != nil {
		logger.L.Error("Initial feed load failed", "error", err)
	}
	cancel()

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("GET /api/records", recordHandler.HandleGetRecords)
	apiRouter.HandleFunc("GET /api/records/{id}", recordHandler.HandleGetRecord)
	apiRouter.HandleFunc("POST /api/refresh", recordHandler.HandleRefresh)
	apiRouter.HandleFunc("GET /api/status", recordHandler.HandleGetStatus)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "LOTOFOLIO Backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
