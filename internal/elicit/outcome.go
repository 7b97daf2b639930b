package elicit

import (
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
)

// Action is the caller's answer to an elicitation.
type Action int

const (
	// Cancel is the zero value: anything unrecognised is a cancellation.
	Cancel Action = iota
	Accept
	Decline
)

func (a Action) String() string {
	switch a {
	case Accept:
		return "accept"
	case Decline:
		return "decline"
	default:
		return "cancel"
	}
}

// Outcome is the classified result of one exchange. Content is set only
// for Accept.
type Outcome struct {
	Action  Action
	Content map[string]any
}

// Decode classifies a wire response. Accept needs an object payload;
// decline is taken as is; every other shape, including a nil result,
// an accept without content, or an unknown action, is Cancel.
func Decode(res *mcp.ElicitationResult) Outcome {
	if res == nil {
		slog.Debug("elicitation response missing, treating as cancel")
		return Outcome{Action: Cancel}
	}

	switch res.Action {
	case mcp.ElicitationResponseActionAccept:
		if content, ok := contentMap(res.Content); ok {
			return Outcome{Action: Accept, Content: content}
		}
		slog.Debug("elicitation accepted without content, treating as cancel")
	case mcp.ElicitationResponseActionDecline:
		return Outcome{Action: Decline}
	case mcp.ElicitationResponseActionCancel:
	default:
		slog.Debug("unrecognised elicitation action, treating as cancel", "action", string(res.Action))
	}
	return Outcome{Action: Cancel}
}

// contentMap normalises an accept payload into a JSON object.
func contentMap(v any) (map[string]any, bool) {
	switch c := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return c, true
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}
