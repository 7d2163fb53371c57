package jobserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nandaniipriya/career-compass/internal/engine"
	"github.com/nandaniipriya/career-compass/internal/engine/jobs"
)

func registerJobFitScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_fit_score",
		Description: "Analyze how well a resume matches a job listing. Pass a job URL (the record is fetched or served from cache) or an inline description with optional requirements. Returns match percentage, matching/missing qualifications, resume improvement tips, and skills to develop. The status field reports whether the analysis is genuine or a degraded fallback.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.JobFitInput) (*mcp.CallToolResult, engine.FitAnalysis, error) {
		if input.URL == "" && input.Description == "" {
			return nil, engine.FitAnalysis{}, fmt.Errorf("url or description is required")
		}
		if input.Resume == "" {
			return nil, engine.FitAnalysis{}, fmt.Errorf("resume is required")
		}

		cacheKey := engine.CacheKey("fit", input.URL, input.Description,
			strings.Join(input.Requirements, "\n"), input.Resume)
		if fit, ok := engine.CacheGetJSON[engine.FitAnalysis](ctx, cacheKey); ok {
			return nil, fit, nil
		}

		var record engine.JobRecord
		if input.Description != "" {
			record = engine.JobRecord{
				Description:  input.Description,
				Requirements: input.Requirements,
			}
		} else {
			record = jobRecordFor(ctx, input.URL)
		}

		fit, err := jobs.AnalyzeJobFit(ctx, record, input.Resume)
		if err != nil {
			return nil, engine.FitAnalysis{}, err
		}
		// Degraded analyses are not cached: the next attempt may succeed.
		if fit.Status == engine.FitStatusOK {
			engine.CacheSetJSON(ctx, cacheKey, fit)
		}
		return nil, fit, nil
	})
}
