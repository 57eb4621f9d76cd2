// Package auditsheet exposes the audit-sheet operations as tool
// handlers, one per operation, sharing the envelope the rest of the
// system expects: {"status": "success", ...} on success and
// {"status": "error", "message": ...} when the operation itself fails.
// Malformed arguments are surfaced as ErrInvalidParams instead so
// transports can reject them before anything runs.
package auditsheet

import (
	"encoding/json"
	"fmt"

	"github.com/auditmind/agent/audit"
	toolhandler "github.com/auditmind/agent/tool_handler"
	getsafe "github.com/auditmind/agent/util/get_safe"
)

func requiredString(args map[string]any, key string) (string, error) {
	s := getsafe.String(args, key)
	if len(s) == 0 {
		return "", fmt.Errorf("%w: %q must be a non-empty string", toolhandler.ErrInvalidParams, key)
	}
	return s, nil
}

func requiredRecords(args map[string]any) ([]audit.Record, error) {
	raw, ok := args["records"]
	if !ok {
		return nil, fmt.Errorf("%w: %q is required", toolhandler.ErrInvalidParams, "records")
	}

	switch v := raw.(type) {
	case []audit.Record:
		return v, nil
	case []map[string]any:
		records := make([]audit.Record, len(v))
		for i, m := range v {
			records[i] = audit.Record(m)
		}
		return records, nil
	case []any:
		records := make([]audit.Record, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %q must be a list of objects", toolhandler.ErrInvalidParams, "records")
			}
			records = append(records, audit.Record(m))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: %q must be a list of objects", toolhandler.ErrInvalidParams, "records")
	}
}

func success(name string, payload map[string]any) (toolhandler.ToolResponse, error) {
	payload["status"] = "success"
	b, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}
	return toolhandler.ToolResponse{
		Content:  string(b),
		Metadata: map[string]string{"source": "audit", "tool": name},
	}, nil
}

func failure(name string, failErr error, payload map[string]any) (toolhandler.ToolResponse, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["status"] = "error"
	payload["message"] = failErr.Error()
	b, err := json.Marshal(payload)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}
	return toolhandler.ToolResponse{
		Content:  string(b),
		Metadata: map[string]string{"source": "audit", "tool": name},
	}, nil
}

func recordsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"records": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "object"},
				"description": "Audit sheet rows as objects keyed by column name",
			},
		},
		"required": []string{"records"},
	}
}
