// Package elicit runs the interactive exchange that asks a tool's caller
// for the fields its invocation is missing.
//
// One exchange sends a prompt plus a sub-schema of the missing fields,
// keeps the caller's progress channel alive with a heartbeat while a
// human fills the form, bounds the wait with a timeout, and classifies
// the reply as accept, decline, or cancel.
package elicit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/elicitd/internal/config"
	"github.com/HendryAvila/elicitd/internal/schema"
)

// ErrTimeout is returned when the caller does not answer in time.
var ErrTimeout = errors.New("elicitation timed out")

const (
	methodElicitation = "elicitation/create"
	methodProgress    = "notifications/progress"
	progressTotal     = 100
)

// Requester sends an elicitation to the client. *server.MCPServer
// satisfies it.
type Requester interface {
	RequestElicitation(ctx context.Context, request mcp.ElicitationRequest) (*mcp.ElicitationResult, error)
}

// Notifier pushes a notification to the client of the current session.
// *server.MCPServer satisfies it.
type Notifier interface {
	SendNotificationToClient(ctx context.Context, method string, params map[string]any) error
}

// Request describes one exchange.
type Request struct {
	Message   string
	Catalogue *schema.Catalogue
	Required  []string
	Optional  []string
	// ProgressToken comes from the tool call's _meta. Without one no
	// heartbeat is sent.
	ProgressToken mcp.ProgressToken
}

// Coordinator drives elicitation exchanges.
type Coordinator struct {
	requester Requester
	notifier  Notifier
	cfg       config.ElicitationConfig
	newID     func() string
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(requester Requester, notifier Notifier, cfg config.ElicitationConfig) *Coordinator {
	return &Coordinator{
		requester: requester,
		notifier:  notifier,
		cfg:       cfg,
		newID:     uuid.NewString,
	}
}

// Elicit runs one exchange and classifies the reply. Decline and cancel
// are outcomes, not errors. A timeout returns an error wrapping
// ErrTimeout; cancellation or expiry of ctx returns ctx's error.
func (c *Coordinator) Elicit(ctx context.Context, req Request) (Outcome, error) {
	logger := slog.With("exchange", c.newID(), "catalogue", req.Catalogue.Name())
	requested := req.Catalogue.SubSchema(req.Required, req.Optional)

	stop := c.heartbeat(ctx, req.ProgressToken, req.Message, logger)
	defer stop()

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	logger.Info("elicitation requested",
		"message", req.Message,
		"fields", requested.Names(),
		"required", requested.Required,
	)

	type reply struct {
		res *mcp.ElicitationResult
		err error
	}
	// Buffered so the sender never blocks once we stop listening.
	replies := make(chan reply, 1)
	go func() {
		res, err := c.requester.RequestElicitation(reqCtx, mcp.ElicitationRequest{
			Request: mcp.Request{Method: methodElicitation},
			Params: mcp.ElicitationParams{
				Message:         req.Message,
				RequestedSchema: requested,
			},
		})
		replies <- reply{res: res, err: err}
	}()

	var r reply
	select {
	case r = <-replies:
	case <-reqCtx.Done():
		r = reply{err: reqCtx.Err()}
		if err := ctx.Err(); err != nil {
			r.err = err
		}
	}

	if r.err != nil {
		// A deadline on ctx itself is the host's, not ours.
		if ctx.Err() == nil && errors.Is(r.err, context.DeadlineExceeded) {
			logger.Warn("elicitation timed out", "timeout", c.cfg.Timeout)
			return Outcome{}, fmt.Errorf("%w after %s", ErrTimeout, c.cfg.Timeout)
		}
		logger.Warn("elicitation failed", "error", r.err)
		return Outcome{}, fmt.Errorf("requesting elicitation: %w", r.err)
	}

	out := Decode(r.res)
	logger.Info("elicitation resolved", "action", out.Action.String(), "fields", len(out.Content))
	return out, nil
}

// heartbeat starts the periodic progress notification for one exchange.
func (c *Coordinator) heartbeat(ctx context.Context, token mcp.ProgressToken, message string, logger *slog.Logger) (stop func()) {
	if token == nil || c.notifier == nil {
		return func() {}
	}
	return startHeartbeat(ctx, c.cfg.ProgressInterval, func(ctx context.Context) {
		err := c.notifier.SendNotificationToClient(ctx, methodProgress, map[string]any{
			"progressToken": token,
			"progress":      c.cfg.ProgressValue,
			"total":         progressTotal,
			"message":       message,
		})
		if err != nil {
			logger.Debug("progress notification failed", "error", err)
			return
		}
		logger.Debug("progress notification sent")
	})
}
