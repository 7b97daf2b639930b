package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/entity"
	"github.com/HendryAvila/elicitd/internal/records"
	"github.com/HendryAvila/elicitd/internal/schema"
)

// CreateUserTool handles the create_user_profile MCP tool.
// Missing profile fields are elicited from the caller in one exchange.
type CreateUserTool struct {
	factory  *entity.Factory
	elicitor Elicitor
}

// NewCreateUserTool creates a CreateUserTool.
func NewCreateUserTool(factory *entity.Factory, elicitor Elicitor) *CreateUserTool {
	return &CreateUserTool{factory: factory, elicitor: elicitor}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateUserTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Create a new user profile with elicitation support for missing fields"),
	}
	opts = append(opts, schema.Users().ToolOptions()...)
	return mcp.NewTool("create_user_profile", opts...)
}

var userGathering = gathering{
	message:   "Please provide your user profile information",
	catalogue: schema.Users(),
	subject:   "profile information",
	declined:  "User declined to provide profile information. No profile was created.",
	cancelled: "User cancelled the profile creation process.",
	failed:    "Error creating user profile",
}

// Handle processes the create_user_profile tool call.
func (t *CreateUserTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := entity.NewInput(req.GetArguments())

	if missing := entity.Resolve(records.KindUser, in); !missing.Empty() {
		if res := gather(ctx, t.elicitor, userGathering, req, in, missing); res != nil {
			return res, nil
		}
	}

	user, err := t.factory.CreateUser(ctx, in)
	if err != nil {
		return failure("Error creating user profile: %v", err), nil
	}

	body, err := prettyJSON(user)
	if err != nil {
		return failure("Error creating user profile: %v", err), nil
	}
	return success("Successfully created user profile:\n" + body), nil
}
