package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/records"
)

// ListUsersTool handles the list_users MCP tool.
type ListUsersTool struct {
	store records.Store
}

// NewListUsersTool creates a ListUsersTool.
func NewListUsersTool(store records.Store) *ListUsersTool {
	return &ListUsersTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ListUsersTool) Definition() mcp.Tool {
	return mcp.NewTool("list_users",
		mcp.WithDescription("List all user profiles currently stored in the system"),
		withFormat(),
	)
}

// Handle processes the list_users tool call.
func (t *ListUsersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatArg(req)
	if err != nil {
		return failure("Error listing users: %v", err), nil
	}

	users, err := records.Users(ctx, t.store)
	if err != nil {
		return failure("Error listing users: %v", err), nil
	}

	body, err := renderUsers(format, users)
	if err != nil {
		return failure("Error listing users: %v", err), nil
	}
	return success(fmt.Sprintf("All user profiles (%d total):\n%s", len(users), body)), nil
}

// ListJobsTool handles the list_jobs MCP tool.
type ListJobsTool struct {
	store records.Store
}

// NewListJobsTool creates a ListJobsTool.
func NewListJobsTool(store records.Store) *ListJobsTool {
	return &ListJobsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ListJobsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_jobs",
		mcp.WithDescription("List all job postings currently stored in the system"),
		withFormat(),
	)
}

// Handle processes the list_jobs tool call.
func (t *ListJobsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatArg(req)
	if err != nil {
		return failure("Error listing jobs: %v", err), nil
	}

	jobs, err := records.Jobs(ctx, t.store)
	if err != nil {
		return failure("Error listing jobs: %v", err), nil
	}

	body, err := renderJobs(format, jobs)
	if err != nil {
		return failure("Error listing jobs: %v", err), nil
	}
	return success(fmt.Sprintf("All job postings (%d total):\n%s", len(jobs), body)), nil
}
