// Package tools implements the MCP tool handlers for user profiles and
// job postings.
//
// Each tool is a struct holding its dependencies, with Definition()
// returning the mcp.Tool schema and Handle() processing a call. Creation
// tools fill gaps in their input through an Elicitor before committing.
package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/elicit"
)

// Elicitor runs one elicitation exchange. *elicit.Coordinator
// satisfies it.
type Elicitor interface {
	Elicit(ctx context.Context, req elicit.Request) (elicit.Outcome, error)
}

// Listing formats accepted by the format argument.
const (
	FormatJSON  = "json"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// progressToken returns the caller's progress token, or nil when the
// call carried none.
func progressToken(req mcp.CallToolRequest) mcp.ProgressToken {
	if req.Params.Meta == nil {
		return nil
	}
	return req.Params.Meta.ProgressToken
}

// withFormat declares the optional format argument of listing tools.
func withFormat() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Output format for the records: json (default), table, or yaml"),
		mcp.Enum(FormatJSON, FormatTable, FormatYAML),
	)
}

// formatArg reads and checks the format argument.
func formatArg(req mcp.CallToolRequest) (string, error) {
	format := req.GetString("format", FormatJSON)
	switch format {
	case FormatJSON, FormatTable, FormatYAML:
		return format, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q: use json, table, or yaml", format)
	}
}
