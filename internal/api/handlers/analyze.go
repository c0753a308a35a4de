package handlers

import (
	"encoding/json"
	"net/http"

	"scamintel-lab/internal/domain/services"
	"scamintel-lab/pkg/logger"
)

// maxAnalyzeTextLength caps the accepted message size in bytes. Scam
// messages are short; anything larger is not a message.
const maxAnalyzeTextLength = 64 * 1024

// AnalyzeHandler handles full content analysis requests
type AnalyzeHandler struct {
	analyzer *services.Analyzer
	logger   *logger.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler
func NewAnalyzeHandler(analyzer *services.Analyzer, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("analyze-handler"),
	}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req services.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" && req.URL == "" {
		h.respondError(w, http.StatusBadRequest, "text or url is required")
		return
	}

	if len(req.Text) > maxAnalyzeTextLength {
		h.respondError(w, http.StatusRequestEntityTooLarge, "text too large")
		return
	}

	result, err := h.analyzer.AnalyzeContent(r.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("content analysis failed")
		h.respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *AnalyzeHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *AnalyzeHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
