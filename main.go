// career-compass — Job search & career guidance MCP server.
//
// Exposes job_search, job_details, job_fit_score, course_suggest, and the
// job_tracker_* tools. Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nandaniipriya/career-compass/internal/engine"
	"github.com/nandaniipriya/career-compass/internal/engine/jobs"
	"github.com/nandaniipriya/career-compass/internal/jobserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	initEngine()

	slog.Info("starting career-compass",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "career-compass",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 7))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "career-compass",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

// llmCompleter adapts the chat client to the engine's completion interface.
type llmCompleter struct {
	client *llm.Client
}

func (c *llmCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	return c.client.Complete(ctx, system, prompt)
}

func initEngine() {
	c := engine.Config{
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 15*time.Second),
		MaxFullText:          env.Int("MAX_FULL_TEXT", 5000),
		MaxRecoveryURLs:      env.Int("MAX_RECOVERY_URLS", 3),
		RecoveryPerMinute:    env.Int("RECOVERY_RATE", 10),
		RecoveryBurst:        env.Int("RECOVERY_BURST", 3),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	bc, err := stealth.NewClient(stealth.WithTimeout(15))
	if err != nil {
		slog.Error("stealth client init failed", slog.Any("error", err))
	} else {
		c.SearchProvider = engine.NewDDGClient(bc, env.Str("DDG_REGION", "wt-wt"))
		slog.Info("search provider initialized")
	}

	apiKey := env.Str("LLM_API_KEY", "")
	if apiKey == "" {
		slog.Warn("LLM_API_KEY not set, fit scoring and course suggestions degraded")
	}
	c.LLMClient = &llmCompleter{client: llm.NewClient(
		env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		apiKey,
		env.Str("LLM_MODEL", "gemini-2.5-flash"),
		llm.WithMaxTokens(env.Int("LLM_MAX_TOKENS", 4096)),
		llm.WithTemperature(env.Float("LLM_TEMPERATURE", 0.1)),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)}

	engine.Init(c)

	// Application tracker (sqlite by default, Postgres when DATABASE_URL set)
	tracker, err := jobs.OpenTracker(context.Background(),
		env.Str("DATABASE_URL", ""),
		env.Str("DATA_DIR", "./data"),
	)
	if err != nil {
		slog.Warn("tracker init failed, tracker tools unavailable", slog.Any("error", err))
	} else {
		jobs.SetTracker(tracker)
		slog.Info("job tracker initialized")
	}

	engine.InitCache(env.Str("REDIS_URL", ""), env.Duration("CACHE_TTL", 15*time.Minute))
}
