package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agent "github.com/auditmind/agent"
	"github.com/auditmind/agent/reports"
	"github.com/auditmind/agent/retriever/memory"
	"github.com/auditmind/agent/tool_handler/auditsheet"
)

type staticGenerator struct{}

func (staticGenerator) Generate(context.Context, string) (string, error) {
	return "ok", nil
}

func newTestHandler(t *testing.T) (*Handler, string) {
	t.Helper()

	dataDir := t.TempDir()
	adk := agent.New(memory.NewRetriever(), staticGenerator{}, auditsheet.All(), 8, "")

	return NewHandler(adk, reports.NewStore(dataDir)), dataDir
}

func do(t *testing.T, h *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if len(body) > 0 {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decode(t, rec)["message"])
}

func TestCreateSession(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/create_session", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["session_id"])
}

func TestRunTool(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/run", `{
		"tool": "summarize_findings",
		"params": {"records": [{"Conformity Level": "Full Conformity"}]}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, float64(1), payload["total_records"])
}

func TestRunUnknownTool(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/run", `{"tool": "nope", "params": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decode(t, rec)["detail"].(string)
	assert.Contains(t, detail, "Tool 'nope' not found")
	assert.Contains(t, detail, "load_audit_sheet")
}

func TestRunInvalidParams(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/run", `{"tool": "validate_entries", "params": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["detail"], "Parameter validation failed")
}

func TestRunBadBody(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/run", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReports(t *testing.T) {
	h, dataDir := newTestHandler(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dataDir, "VENDOR_REPORT.json"),
		[]byte(`{"target":"vendor-a"}`), 0o644))

	rec := do(t, h, http.MethodGet, "/api/get_reports", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var docs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "vendor-a", docs[0]["target"])
}

func TestGetAttackData(t *testing.T) {
	h, dataDir := newTestHandler(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dataDir, "scan.json"),
		[]byte(`{"findings": []}`), 0o644))

	rec := do(t, h, http.MethodGet, "/api/attack_data/scan.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), "findings")

	// top-level arrays are valid report documents
	require.NoError(t, os.WriteFile(
		filepath.Join(dataDir, "hosts.json"),
		[]byte(`[{"host":"10.0.0.1"}]`), 0o644))

	rec = do(t, h, http.MethodGet, "/api/attack_data/hosts.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var hosts []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hosts))
	require.Len(t, hosts, 1)

	rec = do(t, h, http.MethodGet, "/api/attack_data/missing.json", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode(t, rec)["detail"], "missing.json")
}

func TestCORSMiddleware(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	CORS(h.Router()).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/run", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
