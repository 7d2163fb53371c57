package engine

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// SearchResult is one raw entry from the external search capability.
// Missing fields default to empty strings; the adapter tolerates both.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// SearchProvider is the external search capability: given a query, return
// ranked results. Implementations may fail; callers treat failure as an
// empty result set.
type SearchProvider interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// LLMClient is the external text-generation capability. The reply is plain
// text that may or may not contain the JSON the caller asked for.
type LLMClient interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Config holds all engine configuration, injected from main.
type Config struct {
	SearchProvider SearchProvider
	LLMClient      LLMClient
	HTTPClient     *http.Client // fetch client; built with FetchTimeout if nil

	FetchTimeout    time.Duration // per-request fetch deadline (default 15s)
	MaxFullText     int           // JobRecord.FullText cap (default 5000)
	MaxRecoveryURLs int           // alternate sources tried per recovery (default 3)

	// Global cap on secondary recovery searches. Zero rate disables the cap.
	RecoveryPerMinute int
	RecoveryBurst     int

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var (
	cfg             Config
	recoveryLimiter *rate.Limiter
)

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 15 * time.Second
	}
	if c.MaxFullText <= 0 {
		c.MaxFullText = 5000
	}
	if c.MaxRecoveryURLs <= 0 {
		c.MaxRecoveryURLs = 3
	}
	if c.HTTPClient == nil {
		c.HTTPClient = newFetchClient(c.FetchTimeout)
	}
	cfg = c

	recoveryLimiter = nil
	if c.RecoveryPerMinute > 0 {
		burst := c.RecoveryBurst
		if burst <= 0 {
			burst = 3
		}
		recoveryLimiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(c.RecoveryPerMinute)), burst)
	}
}
