// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/config"
)

// OnboardUserPrompt handles the onboard-user MCP prompt.
// It guides the AI to create a profile, letting the server ask for
// whatever the user has not said yet.
type OnboardUserPrompt struct{}

// NewOnboardUserPrompt creates an OnboardUserPrompt.
func NewOnboardUserPrompt() *OnboardUserPrompt {
	return &OnboardUserPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *OnboardUserPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("onboard-user",
		mcp.WithPromptDescription(
			"Create a user profile. Anything you leave out is requested "+
				"through a form instead of guessed.",
		),
		mcp.WithArgument("name",
			mcp.ArgumentDescription("Full name of the new user"),
		),
		mcp.WithArgument("role",
			mcp.ArgumentDescription("Role in the organization: "+strings.Join(config.Keys(config.Roles()), ", ")),
		),
	)
}

// Handle processes the onboard-user prompt request.
func (p *OnboardUserPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments
	name, role := args["name"], args["role"]

	var known []string
	if name != "" {
		known = append(known, fmt.Sprintf("name=%q", name))
	}
	if role != "" {
		known = append(known, fmt.Sprintf("role=%q", role))
	}
	given := "no arguments"
	if len(known) > 0 {
		given = strings.Join(known, " and ")
	}

	description := "Onboard a new user"
	if name != "" {
		description = "Onboard user: " + name
	}

	return &mcp.GetPromptResult{
		Description: description,
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to create a user profile.\n\n"+
						"Please:\n"+
						"1. Call `create_user_profile` with %s\n"+
						"2. Do not invent email, age, or any other field I did not give you. "+
						"The server will ask me for them directly\n"+
						"3. If I decline or cancel the form, tell me nothing was saved\n"+
						"4. Finally run `list_users` and show me the new profile",
					given,
				)),
			},
		},
	}, nil
}
