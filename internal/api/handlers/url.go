package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"scamintel-lab/internal/domain/services"
	"scamintel-lab/internal/intel"
	"scamintel-lab/pkg/logger"
)

// URLHandler handles URL intelligence API requests
type URLHandler struct {
	analyzer *services.Analyzer
	logger   *logger.Logger
}

// NewURLHandler creates a new URL handler
func NewURLHandler(analyzer *services.Analyzer, log *logger.Logger) *URLHandler {
	return &URLHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("url-handler"),
	}
}

// URLLookupRequest is the body for passive lookup requests.
type URLLookupRequest struct {
	URL string `json:"url"`
}

// URLScanRequest is the body for active scan requests. The opt-in flag
// must be set explicitly on every request.
type URLScanRequest struct {
	URL   string `json:"url"`
	OptIn bool   `json:"opt_in"`
}

// Lookup handles POST /api/v1/url/lookup
func (h *URLHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req URLLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" {
		h.respondError(w, http.StatusBadRequest, "url is required")
		return
	}

	summary, err := h.analyzer.Lookup(r.Context(), req.URL)
	if err != nil {
		h.logger.Error().Err(err).Str("url", req.URL).Msg("URL lookup failed")
		h.respondError(w, http.StatusBadGateway, "lookup failed")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// Scan handles POST /api/v1/url/scan
func (h *URLHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req URLScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" {
		h.respondError(w, http.StatusBadRequest, "url is required")
		return
	}

	summary, err := h.analyzer.Scan(r.Context(), req.URL, req.OptIn)
	if err != nil {
		switch {
		case errors.Is(err, intel.ErrActiveScanDisabled):
			h.respondError(w, http.StatusForbidden, "active scanning is disabled")
		case errors.Is(err, intel.ErrUserOptOut):
			h.respondError(w, http.StatusForbidden, "active scanning requires opt-in consent")
		case errors.Is(err, intel.ErrSensitiveURL):
			h.respondError(w, http.StatusUnprocessableEntity, "url contains sensitive parameters and will not be submitted")
		case errors.Is(err, intel.ErrInvalidURL):
			h.respondError(w, http.StatusBadRequest, "invalid url")
		default:
			h.logger.Error().Err(err).Str("url", req.URL).Msg("URL scan failed")
			h.respondError(w, http.StatusBadGateway, "scan failed")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

func (h *URLHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *URLHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
