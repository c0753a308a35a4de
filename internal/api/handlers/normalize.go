package handlers

import (
	"encoding/json"
	"net/http"

	"scamintel-lab/internal/textnorm"
	"scamintel-lab/pkg/logger"
)

// NormalizeHandler exposes text normalization as a standalone endpoint
type NormalizeHandler struct {
	logger *logger.Logger
}

// NewNormalizeHandler creates a new NormalizeHandler
func NewNormalizeHandler(log *logger.Logger) *NormalizeHandler {
	return &NormalizeHandler{
		logger: log.WithComponent("normalize-handler"),
	}
}

// NormalizeRequest is the body for normalization requests.
type NormalizeRequest struct {
	Text string `json:"text"`

	// ArabicNumerals converts Latin digits to Arabic-Indic instead of
	// the default direction.
	ArabicNumerals bool `json:"arabic_numerals,omitempty"`
}

// NormalizeResponse carries the normalized text and detected languages.
type NormalizeResponse struct {
	Normalized string   `json:"normalized"`
	Languages  []string `json:"languages"`
}

// Normalize handles POST /api/v1/text/normalize
func (h *NormalizeHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.respondJSON(w, http.StatusOK, NormalizeResponse{
		Normalized: textnorm.Normalize(req.Text, req.ArabicNumerals),
		Languages:  textnorm.DetectLanguages(req.Text),
	})
}

func (h *NormalizeHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *NormalizeHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
