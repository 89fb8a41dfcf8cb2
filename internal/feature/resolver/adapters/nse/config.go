// Package nse provides a client for the NSE equity listing archive.
package nse

import (
	"os"
	"time"
)

// Config holds configuration for the NSE archive client.
type Config struct {
	BaseURL   string        // Base URL for the archive (e.g., "https://nsearchives.nseindia.com")
	UserAgent string        // The archive rejects requests without a browser-like User-Agent
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads NSE archive configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("NSE_ARCHIVE_BASE_URL")
	if base == "" {
		base = "https://nsearchives.nseindia.com"
	}
	return Config{
		BaseURL:   base,
		UserAgent: "Mozilla/5.0",
		Timeout:   10 * time.Second,
	}
}
