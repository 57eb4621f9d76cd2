package auditsheet

import (
	"context"

	"github.com/auditmind/agent/audit"
	toolhandler "github.com/auditmind/agent/tool_handler"
)

type summarizeToolHandler struct {
	options toolhandler.Options
}

func (th *summarizeToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "summarize_findings",
		Description: "Returns a count and percentage of each conformity level across the records.",
		InputSchema: recordsSchema(),
	}
}

func (th *summarizeToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	records, err := requiredRecords(req.Arguments)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return success("summarize_findings", map[string]any{
		"summary":       audit.Summarize(records),
		"total_records": len(records),
	})
}

func NewSummarizeToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &summarizeToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
