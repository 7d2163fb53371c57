// Package jobserver exposes the job acquisition and analysis pipeline as MCP
// tools. Handlers validate input, consult the cache, and delegate to the
// engine; they never render UI.
package jobserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all career-compass tools on the given MCP server:
// job_search, job_details, job_fit_score, course_suggest, and the
// job_tracker_* family.
func RegisterTools(server *mcp.Server) {
	registerJobSearch(server)
	registerJobDetails(server)
	registerJobFitScore(server)
	registerCourseSuggest(server)
	registerTracker(server)
}
