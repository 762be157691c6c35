package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SheetIDPlaceholder is the known placeholder value shipped in .env.example.
// While SHEET_ID is this (or empty) the feed service refuses to fetch and
// reports a configuration error instead.
const SheetIDPlaceholder = "YOUR_SHEET_ID"

type AppConfig struct {
	Port     string
	LogLevel string

	SheetID          string
	SheetName        string
	FeedURLTemplate  string
	FetchTimeout     time.Duration
	MaxFeedSizeBytes int64

	AllowedOrigin string
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	sheetID := getEnv("SHEET_ID", SheetIDPlaceholder)
	if sheetID == SheetIDPlaceholder {
		log.Println("WARNING: SHEET_ID is not set. The feed will not load until it is configured.")
	}

	fetchTimeoutStr := getEnv("FEED_FETCH_TIMEOUT", "15s")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil {
		log.Printf("WARNING: Invalid FEED_FETCH_TIMEOUT format '%s'. Using default 15s. Error: %v", fetchTimeoutStr, err)
		fetchTimeout = 15 * time.Second
	}

	maxFeedSizeBytesStr := getEnv("MAX_FEED_SIZE_BYTES", "10485760")
	maxFeedSizeBytes, err := strconv.ParseInt(maxFeedSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_FEED_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxFeedSizeBytesStr, err)
		maxFeedSizeBytes = 10 * 1024 * 1024
	}

	Cfg = &AppConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SheetID:          sheetID,
		SheetName:        getEnv("SHEET_NAME", "Results"),
		FeedURLTemplate:  getEnv("FEED_URL_TEMPLATE", "https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%s"),
		FetchTimeout:     fetchTimeout,
		MaxFeedSizeBytes: maxFeedSizeBytes,

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, SheetName=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.SheetName)
}

// FeedURL renders the feed URL template with the configured sheet ID and
// sheet name.
func (c *AppConfig) FeedURL() string {
	return fmt.Sprintf(c.FeedURLTemplate, url.PathEscape(c.SheetID), url.QueryEscape(c.SheetName))
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}
