package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/elicit"
	"github.com/HendryAvila/elicitd/internal/entity"
	"github.com/HendryAvila/elicitd/internal/schema"
)

// gathering describes how a creation tool asks for its missing fields
// and what it answers when the caller does not cooperate.
type gathering struct {
	message   string
	catalogue *schema.Catalogue
	subject   string // used in timeout messages
	declined  string
	cancelled string
	failed    string // prefix for unexpected errors
}

// gather elicits the missing fields of in and merges the accepted values
// into it. A non-nil result ends the tool call with that result.
func gather(ctx context.Context, el Elicitor, g gathering, req mcp.CallToolRequest, in entity.Input, missing entity.Missing) *mcp.CallToolResult {
	out, err := el.Elicit(ctx, elicit.Request{
		Message:       g.message,
		Catalogue:     g.catalogue,
		Required:      missing.Required,
		Optional:      missing.Optional,
		ProgressToken: progressToken(req),
	})
	if err != nil {
		if errors.Is(err, elicit.ErrTimeout) {
			return failure("timed out waiting for %s: %v", g.subject, err)
		}
		return failure("%s: %v", g.failed, err)
	}

	switch out.Action {
	case elicit.Accept:
		in.Merge(out.Content, missing.All())
		return nil
	case elicit.Decline:
		return failure("%s", g.declined)
	default:
		return failure("%s", g.cancelled)
	}
}
