package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/entity"
	"github.com/HendryAvila/elicitd/internal/records"
	"github.com/HendryAvila/elicitd/internal/schema"
)

// SearchUsersTool handles the search_users MCP tool. The query is
// elicited when the call does not carry one.
type SearchUsersTool struct {
	store    records.Store
	elicitor Elicitor
}

// NewSearchUsersTool creates a SearchUsersTool.
func NewSearchUsersTool(store records.Store, elicitor Elicitor) *SearchUsersTool {
	return &SearchUsersTool{store: store, elicitor: elicitor}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchUsersTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Search user profiles by name, email, or role (case-insensitive substring match)"),
	}
	opts = append(opts, schema.Search().ToolOptions()...)
	opts = append(opts, withFormat())
	return mcp.NewTool("search_users", opts...)
}

var searchGathering = gathering{
	message:   "What would you like to search for?",
	catalogue: schema.Search(),
	subject:   "a search query",
	declined:  "User declined to provide a search query. No search was performed.",
	cancelled: "User cancelled the search.",
	failed:    "Error searching users",
}

// Handle processes the search_users tool call.
func (t *SearchUsersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatArg(req)
	if err != nil {
		return failure("Error searching users: %v", err), nil
	}

	in := entity.NewInput(req.GetArguments())
	if strings.TrimSpace(in.String("query")) == "" {
		missing := entity.Missing{Required: []string{"query"}}
		if res := gather(ctx, t.elicitor, searchGathering, req, in, missing); res != nil {
			return res, nil
		}
	}
	query := strings.TrimSpace(in.String("query"))
	if query == "" {
		return failure("Error searching users: a non-empty query is required"), nil
	}

	users, err := records.Users(ctx, t.store)
	if err != nil {
		return failure("Error searching users: %v", err), nil
	}
	matches := matchUsers(users, query)
	if len(matches) == 0 {
		return success(fmt.Sprintf("No users found matching %q.", query)), nil
	}

	body, err := renderUsers(format, matches)
	if err != nil {
		return failure("Error searching users: %v", err), nil
	}
	return success(fmt.Sprintf("Found %d user(s) matching %q:\n%s", len(matches), query, body)), nil
}

// matchUsers keeps users whose name, email, or role contains query,
// ignoring case.
func matchUsers(users []records.User, query string) []records.User {
	q := strings.ToLower(query)
	var out []records.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(u.Role), q) {
			out = append(out, u)
		}
	}
	return out
}
