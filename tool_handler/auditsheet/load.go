package auditsheet

import (
	"context"

	toolhandler "github.com/auditmind/agent/tool_handler"
	"github.com/auditmind/agent/workbook"
)

type loadToolHandler struct {
	options toolhandler.Options
}

func (th *loadToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "load_audit_sheet",
		Description: "Reads an Excel audit sheet and returns its rows as a list of records.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path":       map[string]any{"type": "string", "description": "Path to the xlsx workbook"},
				"sheet_name": map[string]any{"type": "string", "description": "Worksheet to read"},
			},
			"required": []string{"path", "sheet_name"},
		},
		Examples: []map[string]any{
			{"path": "/attack_data/Vendor_Self_Assessment.xlsx", "sheet_name": "GenAI Security Audit Sheet"},
		},
	}
}

func (th *loadToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	path, err := requiredString(req.Arguments, "path")
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	sheetName, err := requiredString(req.Arguments, "sheet_name")
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	records, err := workbook.Load(path, sheetName)
	if err != nil {
		return failure("load_audit_sheet", err, map[string]any{"records": []any{}})
	}

	return success("load_audit_sheet", map[string]any{
		"records":   records,
		"row_count": len(records),
	})
}

func NewLoadToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &loadToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
