package jobserver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nandaniipriya/career-compass/internal/engine"
)

func registerJobSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_search",
		Description: "Search the web for job listings matching a query and optional location. Returns lightweight listing stubs (title, company, url, location, snippet, source) in provider-ranked order. Company and location are inferred from result text, not authoritative.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.JobSearchInput) (*mcp.CallToolResult, engine.JobSearchOutput, error) {
		if input.Query == "" {
			return nil, engine.JobSearchOutput{}, fmt.Errorf("query is required")
		}

		cacheKey := engine.CacheKey("job_search", input.Query, input.Location, strconv.Itoa(input.Limit))
		if out, ok := engine.CacheGetJSON[engine.JobSearchOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		out := engine.JobSearchOutput{
			Query:    input.Query,
			Listings: engine.SearchJobs(ctx, input.Query, input.Location, input.Limit),
		}
		engine.CacheSetJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
