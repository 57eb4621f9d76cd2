package auditsheet

import toolhandler "github.com/auditmind/agent/tool_handler"

// All returns the full audit toolset in registration order.
func All(opts ...toolhandler.Option) []toolhandler.ToolHandler {
	return []toolhandler.ToolHandler{
		NewLoadToolHandler(opts...),
		NewValidateToolHandler(opts...),
		NewAssignToolHandler(opts...),
		NewSummarizeToolHandler(opts...),
		NewExportToolHandler(opts...),
	}
}
