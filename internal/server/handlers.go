package server

import (
	"encoding/json"
	"net/http"

	"github.com/michaelbrown/sqlgate/internal/sandbox"
)

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Verdict: "error", Message: msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// --- Validation handlers ---

type validateRequest struct {
	SQL     string `json:"sql"`
	SeedSQL string `json:"seed_sql"`
}

type okResponse struct {
	Verdict   string        `json:"verdict"`
	Columns   []string      `json:"columns"`
	Rows      []sandbox.Row `json:"rows"`
	Truncated bool          `json:"truncated,omitempty"`
}

type errorResponse struct {
	Verdict string `json:"verdict"`
	Message string `json:"message"`
}

// toResponse flattens a verdict into the wire shape. Both verdicts are
// served with HTTP 200; the verdict field is the outcome, not the transport.
func toResponse(v sandbox.Verdict) any {
	if !v.OK() {
		return errorResponse{Verdict: "error", Message: v.Failure.Message}
	}

	rows := v.Rows
	if rows == nil {
		rows = []sandbox.Row{}
	}
	cols := v.Columns
	if cols == nil {
		cols = []string{}
	}
	return okResponse{
		Verdict:   "ok",
		Columns:   cols,
		Rows:      rows,
		Truncated: v.Truncated,
	}
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	verdict := s.service.Validate(r.Context(), req.SQL, req.SeedSQL)
	writeJSON(w, http.StatusOK, toResponse(verdict))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLimits reports the active execution policy so a frontend can show
// the row cap and time bound to query authors.
func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	p := s.cfg.Policy()
	writeJSON(w, http.StatusOK, map[string]any{
		"query_timeout_ms": p.QueryTimeout.Milliseconds(),
		"max_rows":         p.MaxRows,
	})
}
