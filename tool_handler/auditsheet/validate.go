package auditsheet

import (
	"context"

	"github.com/auditmind/agent/audit"
	toolhandler "github.com/auditmind/agent/tool_handler"
)

type validateToolHandler struct {
	options toolhandler.Options
}

func (th *validateToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "validate_entries",
		Description: "Flags audit records with missing baseline evidence.",
		InputSchema: recordsSchema(),
	}
}

func (th *validateToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	records, err := requiredRecords(req.Arguments)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return success("validate_entries", map[string]any{
		"issues": audit.Validate(records),
	})
}

func NewValidateToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &validateToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
