package auditsheet

import (
	"context"

	"github.com/auditmind/agent/audit"
	toolhandler "github.com/auditmind/agent/tool_handler"
)

type assignToolHandler struct {
	options toolhandler.Options
}

func (th *assignToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "assign_conformity",
		Description: "Assigns a conformity level to each record by comparing its observation against the baseline evidence.",
		InputSchema: recordsSchema(),
	}
}

func (th *assignToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	records, err := requiredRecords(req.Arguments)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return success("assign_conformity", map[string]any{
		"records": audit.Assign(records),
	})
}

func NewAssignToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &assignToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
