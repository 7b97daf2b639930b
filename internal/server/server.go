// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts, and resources that depend on
// abstractions. No business logic lives here, only wiring.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/HendryAvila/elicitd/internal/config"
	"github.com/HendryAvila/elicitd/internal/elicit"
	"github.com/HendryAvila/elicitd/internal/entity"
	"github.com/HendryAvila/elicitd/internal/prompts"
	"github.com/HendryAvila/elicitd/internal/records"
	"github.com/HendryAvila/elicitd/internal/resources"
	"github.com/HendryAvila/elicitd/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
//
// The returned cleanup function closes the record store and must be
// called on shutdown (typically via defer). It is always non-nil.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, noop, err
	}

	// --- Create shared dependencies ---

	store, err := records.Open(cfg.Store)
	if err != nil {
		return nil, noop, fmt.Errorf("opening record store: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			slog.Warn("record store close", "error", err)
		}
	}
	slog.Info("record store ready", "driver", cfg.Store.Driver, "path", cfg.Store.Path)

	if cfg.Store.Seed {
		added, err := records.Seed(context.Background(), store)
		if err != nil {
			cleanup()
			return nil, noop, err
		}
		if added {
			slog.Info("seeded demo user profile")
		}
	}

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"elicitd",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithElicitation(),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// The server both sends elicitation requests and pushes progress
	// notifications to the session of the tool call in flight.
	coordinator := elicit.NewCoordinator(s, s, cfg.Elicitation)
	factory := entity.NewFactory(store)

	// --- Register tools ---

	createUser := tools.NewCreateUserTool(factory, coordinator)
	s.AddTool(createUser.Definition(), createUser.Handle)

	listUsers := tools.NewListUsersTool(store)
	s.AddTool(listUsers.Definition(), listUsers.Handle)

	searchUsers := tools.NewSearchUsersTool(store, coordinator)
	s.AddTool(searchUsers.Definition(), searchUsers.Handle)

	createJob := tools.NewCreateJobTool(factory, coordinator)
	s.AddTool(createJob.Definition(), createJob.Handle)

	listJobs := tools.NewListJobsTool(store)
	s.AddTool(listJobs.Definition(), listJobs.Handle)

	// --- Register prompts ---

	onboard := prompts.NewOnboardUserPrompt()
	s.AddPrompt(onboard.Definition(), onboard.Handle)

	postJob := prompts.NewPostJobPrompt()
	s.AddPrompt(postJob.Definition(), postJob.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(store)
	s.AddResource(resourceHandler.UsersResource(), resourceHandler.HandleUsers)
	s.AddResource(resourceHandler.JobsResource(), resourceHandler.HandleJobs)

	return s, cleanup, nil
}

// noop is the cleanup returned when nothing was opened.
func noop() {}

// serverInstructions tells the host how the tools behave.
func serverInstructions() string {
	return `elicitd stores user profiles and job postings.

## Tools
- create_user_profile: name, email, age, role
- create_job_details: jobTitle, description, job_type, salary, experience_years, plus optional company and scheduling details
- list_users, list_jobs: every stored record (format: json, table, or yaml)
- search_users: case-insensitive match on name, email, or role

## Missing fields
Call the create tools with only what the user actually told you. Never
invent values. When required fields are missing the server opens a form
on the client and asks the user directly. While the form is open the
server sends progress notifications if the call carried a progress token.

If the user declines or cancels the form, nothing is stored: tell them so
and do not retry on your own. A form left unanswered times out and the
call fails with a timeout error.`
}
