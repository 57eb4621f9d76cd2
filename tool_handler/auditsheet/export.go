package auditsheet

import (
	"context"

	toolhandler "github.com/auditmind/agent/tool_handler"
	"github.com/auditmind/agent/workbook"
)

type exportToolHandler struct {
	options toolhandler.Options
}

func (th *exportToolHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "export_to_excel",
		Description: "Writes the provided records to a new Excel workbook.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"records": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "object"},
				},
				"output_path": map[string]any{"type": "string", "description": "Destination xlsx path"},
			},
			"required": []string{"records", "output_path"},
		},
	}
}

func (th *exportToolHandler) Invoke(_ context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	records, err := requiredRecords(req.Arguments)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	outputPath, err := requiredString(req.Arguments, "output_path")
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	if err := workbook.Export(records, outputPath, ""); err != nil {
		return failure("export_to_excel", err, map[string]any{"output_path": outputPath})
	}

	return success("export_to_excel", map[string]any{
		"output_path":   outputPath,
		"rows_exported": len(records),
	})
}

func NewExportToolHandler(opts ...toolhandler.Option) toolhandler.ToolHandler {
	return &exportToolHandler{
		options: toolhandler.NewOptions(opts...),
	}
}
