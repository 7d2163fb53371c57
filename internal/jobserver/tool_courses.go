package jobserver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nandaniipriya/career-compass/internal/engine"
	"github.com/nandaniipriya/career-compass/internal/engine/jobs"
)

func registerCourseSuggest(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "course_suggest",
		Description: "Recommend specific online courses for a list of skills to develop, typically the skills_to_develop output of job_fit_score. Returns one suggestion per skill with the course name, platform, and a short reason.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.CourseSuggestInput) (*mcp.CallToolResult, engine.CourseSuggestOutput, error) {
		if len(input.Skills) == 0 {
			return nil, engine.CourseSuggestOutput{}, fmt.Errorf("skills list is required")
		}

		cacheKey := engine.CacheKey("courses", normalizeSkills(input.Skills))
		if out, ok := engine.CacheGetJSON[engine.CourseSuggestOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		suggestions, err := jobs.SuggestCourses(ctx, input.Skills)
		if err != nil {
			return nil, engine.CourseSuggestOutput{}, err
		}

		out := engine.CourseSuggestOutput{Suggestions: suggestions}
		engine.CacheSetJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// normalizeSkills produces an order-insensitive cache key component so
// ["Go", "SQL"] and ["SQL", "Go"] share an entry.
func normalizeSkills(skills []string) string {
	norm := make([]string, 0, len(skills))
	for _, s := range skills {
		norm = append(norm, strings.ToLower(strings.TrimSpace(s)))
	}
	sort.Strings(norm)
	return strings.Join(norm, "|")
}
