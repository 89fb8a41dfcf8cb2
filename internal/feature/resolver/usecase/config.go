// Package usecase implements the symbol resolution business logic.
package usecase

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultFuzzyCutoff is the minimum similarity score for a fuzzy match.
	// Hand-tuned; carried over from the previous service and not empirically
	// validated. Override with RESOLVER_FUZZY_CUTOFF.
	DefaultFuzzyCutoff = 0.5
	// DefaultFuzzyMinQueryLen is the query length above which the fuzzy scan
	// runs. Shorter queries produce too many spurious matches.
	DefaultFuzzyMinQueryLen = 2
	// DefaultBareTickerMaxLen is the length at or below which an alphabetic
	// query is ambiguous between a US ticker and an unsuffixed NSE one.
	// Hand-tuned; override with RESOLVER_BARE_TICKER_MAX_LEN.
	DefaultBareTickerMaxLen = 5
	// DefaultRefreshTTL is how long a directory snapshot stays fresh.
	DefaultRefreshTTL = 24 * time.Hour
)

// Config holds the resolver tuning parameters.
type Config struct {
	FuzzyCutoff      float64       // minimum similarity for the fuzzy stage
	FuzzyMinQueryLen int           // fuzzy stage only runs for longer queries
	BareTickerMaxLen int           // US/NSE ambiguity boundary for bare alphabetic queries
	RefreshTTL       time.Duration // directory snapshot time-to-live
}

// LoadConfig loads resolver configuration from environment variables,
// falling back to the defaults above.
func LoadConfig() Config {
	cfg := Config{
		FuzzyCutoff:      DefaultFuzzyCutoff,
		FuzzyMinQueryLen: DefaultFuzzyMinQueryLen,
		BareTickerMaxLen: DefaultBareTickerMaxLen,
		RefreshTTL:       DefaultRefreshTTL,
	}
	if v := os.Getenv("RESOLVER_FUZZY_CUTOFF"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			cfg.FuzzyCutoff = f
		}
	}
	if v := os.Getenv("RESOLVER_BARE_TICKER_MAX_LEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BareTickerMaxLen = n
		}
	}
	if v := os.Getenv("RESOLVER_REFRESH_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RefreshTTL = d
		}
	}
	return cfg
}
