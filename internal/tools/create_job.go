package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/entity"
	"github.com/HendryAvila/elicitd/internal/records"
	"github.com/HendryAvila/elicitd/internal/schema"
)

// CreateJobTool handles the create_job_details MCP tool.
// Missing required fields and any unset optional fields are elicited
// together; only the required ones are marked required in the form.
type CreateJobTool struct {
	factory  *entity.Factory
	elicitor Elicitor
}

// NewCreateJobTool creates a CreateJobTool.
func NewCreateJobTool(factory *entity.Factory, elicitor Elicitor) *CreateJobTool {
	return &CreateJobTool{factory: factory, elicitor: elicitor}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateJobTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Create a new job posting with elicitation support for missing fields"),
	}
	opts = append(opts, schema.Jobs().ToolOptions()...)
	return mcp.NewTool("create_job_details", opts...)
}

var jobGathering = gathering{
	message:   "Please provide job posting details",
	catalogue: schema.Jobs(),
	subject:   "job information",
	declined:  "User declined to provide job information. No job posting was created.",
	cancelled: "User cancelled the job creation process.",
	failed:    "Error creating job posting",
}

// Handle processes the create_job_details tool call.
func (t *CreateJobTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := entity.NewInput(req.GetArguments())

	// Optional gaps alone never trigger an exchange.
	if missing := entity.Resolve(records.KindJob, in); len(missing.Required) > 0 {
		if res := gather(ctx, t.elicitor, jobGathering, req, in, missing); res != nil {
			return res, nil
		}
	}

	job, err := t.factory.CreateJob(ctx, in)
	if err != nil {
		return failure("Error creating job posting: %v", err), nil
	}

	body, err := prettyJSON(job)
	if err != nil {
		return failure("Error creating job posting: %v", err), nil
	}
	return success("Successfully created job posting:\n" + body), nil
}
