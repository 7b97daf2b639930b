// Package resources implements MCP resource handlers for stored records.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (records://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/records"
)

// Resource URIs.
const (
	UsersURI = "records://users"
	JobsURI  = "records://jobs"
)

// Handler serves record listings.
type Handler struct {
	store records.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store records.Store) *Handler {
	return &Handler{store: store}
}

// UsersResource returns the MCP resource definition for the user list.
func (h *Handler) UsersResource() mcp.Resource {
	return mcp.NewResource(
		UsersURI,
		"User Profiles",
		mcp.WithResourceDescription("Every user profile created so far, in creation order"),
		mcp.WithMIMEType("application/json"),
	)
}

// JobsResource returns the MCP resource definition for the job list.
func (h *Handler) JobsResource() mcp.Resource {
	return mcp.NewResource(
		JobsURI,
		"Job Postings",
		mcp.WithResourceDescription("Every job posting created so far, in creation order"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleUsers returns the stored users as JSON.
func (h *Handler) HandleUsers(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	users, err := records.Users(ctx, h.store)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	if users == nil {
		users = []records.User{}
	}
	return jsonResource(req.Params.URI, users)
}

// HandleJobs returns the stored jobs as JSON.
func (h *Handler) HandleJobs(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jobs, err := records.Jobs(ctx, h.store)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	if jobs == nil {
		jobs = []records.Job{}
	}
	return jsonResource(req.Params.URI, jobs)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
