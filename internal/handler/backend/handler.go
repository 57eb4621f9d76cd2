// Package backend exposes the audit toolset over HTTP for the UI: tool
// dispatch, session bootstrap, and the report artifacts the attack
// tooling drops into the shared data directory.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"

	"github.com/gorilla/mux"

	agent "github.com/auditmind/agent"
	"github.com/auditmind/agent/reports"
	toolhandler "github.com/auditmind/agent/tool_handler"
)

type RunRequest struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

type Handler struct {
	adk     *agent.ADK
	reports *reports.Store
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/status", h.Status).Methods(http.MethodGet)
	r.HandleFunc("/api/create_session", h.CreateSession).Methods(http.MethodPost)
	r.HandleFunc("/api/run", h.Run).Methods(http.MethodPost)
	r.HandleFunc("/api/get_reports", h.GetReports).Methods(http.MethodGet)
	r.HandleFunc("/api/attack_data/{filename}", h.GetAttackData).Methods(http.MethodGet)

	return r
}

func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "OK"})
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.adk.CreateSession(r.Context(), "")
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"session_id": id})
}

// Run invokes one of the agent's tools directly and returns its result
// envelope, bypassing the conversational interface.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	available := h.adk.ToolNames()
	if !slices.Contains(available, req.Tool) {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Tool '%s' not found. Available tools: %v", req.Tool, available))
		return
	}

	sessionId := r.Header.Get("X-Session-Id")
	slog.Info("running tool", "tool", req.Tool, "session", sessionId)

	result, err := h.adk.RunTool(r.Context(), sessionId, req.Tool, req.Params)
	if err != nil {
		if errors.Is(err, toolhandler.ErrInvalidParams) {
			writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Parameter validation failed for %s: %v", req.Tool, err))
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(result))
}

func (h *Handler) GetReports(w http.ResponseWriter, _ *http.Request) {
	docs, err := h.reports.List()
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) GetAttackData(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	doc, err := h.reports.Read(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("File %s not found", filename))
			return
		}
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

// writeDetail mirrors the error shape the UI already understands.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func NewHandler(adk *agent.ADK, store *reports.Store) *Handler {
	if adk == nil {
		panic("adk is required")
	}

	if store == nil {
		store = reports.NewStore("")
	}

	return &Handler{
		adk:     adk,
		reports: store,
	}
}
