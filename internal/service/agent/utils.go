package agent

import (
	"encoding/json"
	"strings"

	getsafe "github.com/auditmind/agent/util/get_safe"
)

func splitCommand(payload string) (name string, args string) {
	parts := strings.Fields(payload)
	if len(parts) == 0 {
		return "", ""
	}

	name = parts[0]
	if len(payload) > len(name) {
		args = strings.TrimSpace(payload[len(name):])
	}

	return name, args
}

func parseToolArguments(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}
	var payload map[string]any
	if strings.HasPrefix(raw, "{") {
		if err := json.Unmarshal([]byte(raw), &payload); err == nil {
			return payload
		}
	}
	return map[string]any{"input": raw}
}

// parseToolCall recognizes a model reply of the form
// {"tool": "<name>", "params": {...}}, possibly wrapped in prose or a
// code fence. The model is instructed to answer tool requests with
// exactly one such object.
func parseToolCall(reply string) (name string, params map[string]any, ok bool) {
	candidate := extractObject(reply)
	if len(candidate) == 0 {
		return "", nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return "", nil, false
	}

	name = getsafe.String(payload, "tool")
	if len(name) == 0 {
		return "", nil, false
	}

	params = getsafe.Object(payload, "params")
	if params == nil {
		params = map[string]any{}
	}

	return name, params, true
}

// extractObject returns the first balanced {...} block in s, or "".
func extractObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
