package jobserver

import (
	"context"
	"fmt"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nandaniipriya/career-compass/internal/engine"
)

func registerJobDetails(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_details",
		Description: "Fetch a job listing URL and reconstruct a structured job record: description, requirements, salary, job type, benefits, application link, and a raw text snapshot. Always returns a fully populated record; fields that could not be extracted carry sentinel or generated values.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.JobDetailsInput) (*mcp.CallToolResult, engine.JobRecord, error) {
		if input.URL == "" {
			return nil, engine.JobRecord{}, fmt.Errorf("url is required")
		}
		if _, err := url.ParseRequestURI(input.URL); err != nil {
			return nil, engine.JobRecord{}, fmt.Errorf("url is not valid: %w", err)
		}

		return nil, jobRecordFor(ctx, input.URL), nil
	})
}

// jobRecordFor serves a JobRecord from cache or runs the full fetch+extract
// pipeline. Fetching is total, so this never fails.
func jobRecordFor(ctx context.Context, jobURL string) engine.JobRecord {
	cacheKey := engine.CacheKey("jd", jobURL)
	if rec, ok := engine.CacheGetJSON[engine.JobRecord](ctx, cacheKey); ok {
		return rec
	}
	rec := engine.FetchJobRecord(ctx, jobURL)
	engine.CacheSetJSON(ctx, cacheKey, rec)
	return rec
}
