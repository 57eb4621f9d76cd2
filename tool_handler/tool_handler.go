package toolhandler

import (
	"context"
	"errors"
)

// ErrInvalidParams marks argument validation failures so transports can
// distinguish a caller mistake from a tool that actually broke.
var ErrInvalidParams = errors.New("invalid tool parameters")

type ToolHandler interface {
	Spec() ToolSpec
	Invoke(ctx context.Context, req ToolRequest) (ToolResponse, error)
}

type ToolRequest struct {
	SessionId string         `json:"session_id,omitempty"`
	Arguments map[string]any `json:"arguments"`
}

type ToolResponse struct {
	// Content is the tool's result envelope, serialized as JSON.
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
