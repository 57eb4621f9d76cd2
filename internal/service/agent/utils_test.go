package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommand(t *testing.T) {
	name, args := splitCommand(`summarize_findings {"records": []}`)
	assert.Equal(t, "summarize_findings", name)
	assert.Equal(t, `{"records": []}`, args)

	name, args = splitCommand("load_audit_sheet")
	assert.Equal(t, "load_audit_sheet", name)
	assert.Empty(t, args)

	name, _ = splitCommand("   ")
	assert.Empty(t, name)
}

func TestParseToolArguments(t *testing.T) {
	args := parseToolArguments(`{"path": "a.xlsx", "sheet_name": "Audit"}`)
	assert.Equal(t, "a.xlsx", args["path"])

	args = parseToolArguments("plain text")
	assert.Equal(t, "plain text", args["input"])

	assert.Empty(t, parseToolArguments(""))
}

func TestParseToolCall(t *testing.T) {
	name, params, ok := parseToolCall(`{"tool": "validate_entries", "params": {"records": []}}`)
	require.True(t, ok)
	assert.Equal(t, "validate_entries", name)
	assert.Contains(t, params, "records")

	// wrapped in prose and a code fence
	reply := "Sure, I'll check that.\n```json\n{\"tool\": \"summarize_findings\", \"params\": {\"records\": []}}\n```"
	name, _, ok = parseToolCall(reply)
	require.True(t, ok)
	assert.Equal(t, "summarize_findings", name)

	// no params defaults to empty map
	name, params, ok = parseToolCall(`{"tool": "load_audit_sheet"}`)
	require.True(t, ok)
	assert.Equal(t, "load_audit_sheet", name)
	assert.NotNil(t, params)

	// plain prose is not a tool call
	_, _, ok = parseToolCall("The summary shows mostly full conformity.")
	assert.False(t, ok)

	// an object without a tool key is not a tool call
	_, _, ok = parseToolCall(`{"summary": {"Full Conformity": 3}}`)
	assert.False(t, ok)
}

func TestExtractObjectNested(t *testing.T) {
	s := `prefix {"a": {"b": "}"}, "c": [1, 2]} suffix`
	assert.Equal(t, `{"a": {"b": "}"}, "c": [1, 2]}`, extractObject(s))

	assert.Empty(t, extractObject("no object here"))
	assert.Empty(t, extractObject("{unbalanced"))
}
