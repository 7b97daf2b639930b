package prompts

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/config"
)

// PostJobPrompt handles the post-job MCP prompt.
type PostJobPrompt struct{}

// NewPostJobPrompt creates a PostJobPrompt.
func NewPostJobPrompt() *PostJobPrompt {
	return &PostJobPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *PostJobPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("post-job",
		mcp.WithPromptDescription(
			"Publish a job posting. The server collects the details "+
				"you have not provided through a form.",
		),
	)
}

// Handle processes the post-job prompt request.
func (p *PostJobPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Post a job",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"I want to publish a job posting.\n\n" +
						"Please:\n" +
						"1. Call `create_job_details` with only the details I mention in this conversation\n" +
						"2. Job type must be one of: " + strings.Join(config.Keys(config.JobTypes()), ", ") + "\n" +
						"3. Priority, if given, must be one of: " + strings.Join(config.Keys(config.Priorities()), ", ") + "\n" +
						"4. Let the server's form collect everything else, then show me the created posting\n" +
						"5. Run `list_jobs` with format=table so I can see all open positions",
				),
			},
		},
	}, nil
}
