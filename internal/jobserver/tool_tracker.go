package jobserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nandaniipriya/career-compass/internal/engine/jobs"
)

func registerTracker(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_add",
		Description: "Save a job to the application tracker. Title and company are required; status defaults to 'saved'. Returns the new entry's ID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input jobs.JobTrackerAddInput) (*mcp.CallToolResult, jobs.JobTrackerResult, error) {
		t, err := requireTracker()
		if err != nil {
			return nil, jobs.JobTrackerResult{}, err
		}
		if input.Title == "" || input.Company == "" {
			return nil, jobs.JobTrackerResult{}, fmt.Errorf("title and company are required")
		}
		res, err := t.Add(ctx, input)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_list",
		Description: "List tracked job applications, most recently updated first. Optionally filter by status (saved, applied, interview, offer, rejected).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input jobs.JobTrackerListInput) (*mcp.CallToolResult, jobs.JobTrackerListResult, error) {
		t, err := requireTracker()
		if err != nil {
			return nil, jobs.JobTrackerListResult{}, err
		}
		res, err := t.List(ctx, input)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_update",
		Description: "Update the status or notes of a tracked job application by ID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input jobs.JobTrackerUpdateInput) (*mcp.CallToolResult, jobs.JobTrackerResult, error) {
		t, err := requireTracker()
		if err != nil {
			return nil, jobs.JobTrackerResult{}, err
		}
		if input.ID == 0 {
			return nil, jobs.JobTrackerResult{}, fmt.Errorf("id is required")
		}
		res, err := t.Update(ctx, input)
		return nil, res, err
	})
}

func requireTracker() (*jobs.Tracker, error) {
	t := jobs.GetTracker()
	if t == nil {
		return nil, fmt.Errorf("job tracker is not available: storage failed to initialize")
	}
	return t, nil
}
