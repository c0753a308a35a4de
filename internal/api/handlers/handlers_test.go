package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scamintel-lab/internal/config"
	"scamintel-lab/internal/domain/models"
	"scamintel-lab/internal/domain/services"
	"scamintel-lab/internal/heuristics"
	"scamintel-lab/internal/intel"
	"scamintel-lab/pkg/logger"
)

func newTestHandlers(intelCfg intel.Config) *Handlers {
	log := logger.NewDefault()
	engine := heuristics.NewEngine(log)
	client := intel.NewClient(intelCfg, log)
	analyzer := services.NewAnalyzer(engine, client, nil, config.AnalysisConfig{}, log)

	return NewHandlers(Dependencies{
		Analyzer: analyzer,
		Logger:   log,
	})
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandlers(intel.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health.Check(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %s", resp.Status)
	}
}

func TestReady_WithoutRedis(t *testing.T) {
	h := newTestHandlers(intel.Config{})

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	h.Health.Ready(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Checks["redis"] != "not configured" {
		t.Errorf("redis check = %s", resp.Checks["redis"])
	}
}

func TestAnalyze_RejectsEmptyRequest(t *testing.T) {
	h := newTestHandlers(intel.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	h.Analyze.Analyze(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAnalyze_RejectsBadJSON(t *testing.T) {
	h := newTestHandlers(intel.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()
	h.Analyze.Analyze(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAnalyze_ReturnsCombinedAnalysis(t *testing.T) {
	h := newTestHandlers(intel.Config{})

	body := `{"text":"URGENT: your account will be suspended, enter your password at https://bit.ly/x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Analyze.Analyze(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp models.CombinedAnalysis
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.ID == "" {
		t.Error("missing analysis id")
	}
	if resp.Heuristics == nil || resp.Heuristics.RiskScore == 0 {
		t.Error("heuristics missing from response")
	}
	if !resp.Heuristics.HasFlag(models.RedFlagShortlink) {
		t.Errorf("expected shortlink flag, got %v", resp.Heuristics.RedFlags)
	}
}

func TestURLLookup_RequiresURL(t *testing.T) {
	h := newTestHandlers(intel.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/url/lookup", strings.NewReader(`{"url":""}`))
	w := httptest.NewRecorder()
	h.URL.Lookup(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestURLLookup_NeutralWithoutProvider(t *testing.T) {
	h := newTestHandlers(intel.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/url/lookup",
		strings.NewReader(`{"url":"https://example.com"}`))
	w := httptest.NewRecorder()
	h.URL.Lookup(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.URLIntelSummary
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Source != models.SourceNone {
		t.Errorf("source = %s, want none", resp.Source)
	}
}

func TestURLScan_ConsentErrors(t *testing.T) {
	cases := []struct {
		name       string
		cfg        intel.Config
		body       string
		wantStatus int
	}{
		{
			"kill switch off",
			intel.Config{URLScanAPIKey: "k"},
			`{"url":"https://example.com","opt_in":true}`,
			http.StatusForbidden,
		},
		{
			"no opt-in",
			intel.Config{URLScanAPIKey: "k", AllowActiveURLScan: true},
			`{"url":"https://example.com","opt_in":false}`,
			http.StatusForbidden,
		},
		{
			"sensitive url",
			intel.Config{URLScanAPIKey: "k", AllowActiveURLScan: true},
			`{"url":"https://example.com/?token=abc","opt_in":true}`,
			http.StatusUnprocessableEntity,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newTestHandlers(c.cfg)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/url/scan", strings.NewReader(c.body))
			w := httptest.NewRecorder()
			h.URL.Scan(w, req)

			if w.Code != c.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, c.wantStatus, w.Body.String())
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	h := newTestHandlers(intel.Config{})

	body := `{"text":"  مَرْحَبًا   رمزك ٥٥٥  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/text/normalize", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Normalize.Normalize(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp NormalizeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Normalized != "مرحبا رمزك 555" {
		t.Errorf("normalized = %q", resp.Normalized)
	}
	if len(resp.Languages) != 1 || resp.Languages[0] != "ar" {
		t.Errorf("languages = %v", resp.Languages)
	}
}
