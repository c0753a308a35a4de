package intel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scamintel-lab/internal/domain/models"
)

type urlscanSubmitRequest struct {
	URL        string `json:"url"`
	Visibility string `json:"visibility"`
}

type urlscanSubmitResponse struct {
	Message string `json:"message"`
	UUID    string `json:"uuid"`
	Result  string `json:"result"`
	API     string `json:"api"`
}

type urlscanResultResponse struct {
	Verdict urlscanVerdict `json:"verdict"`
	Task    urlscanTask    `json:"task"`
}

type urlscanVerdict struct {
	Score      int      `json:"score"`
	Malicious  bool     `json:"malicious"`
	Categories []string `json:"categories"`
}

type urlscanTask struct {
	ReportURL string `json:"reportURL"`
}

// Scan submits the URL to urlscan.io and polls for the verdict. The
// consent gates are checked in a fixed order and the first failure
// wins: the remote-config kill switch, then the per-call user opt-in,
// then the sensitive-parameter check. A missing API key after the
// gates is not an error; it degrades to the neutral empty summary.
func (c *Client) Scan(ctx context.Context, rawURL string, userOptIn bool) (*models.URLIntelSummary, error) {
	if !c.config.AllowActiveURLScan {
		return nil, ErrActiveScanDisabled
	}
	if !userOptIn {
		return nil, ErrUserOptOut
	}
	if IsSensitiveURL(rawURL) {
		return nil, ErrSensitiveURL
	}
	if c.config.URLScanAPIKey == "" {
		c.logger.Warn().Msg("urlscan.io API key not configured, skipping scan")
		return models.EmptyIntelSummary(), nil
	}

	body, err := json.Marshal(urlscanSubmitRequest{URL: rawURL, Visibility: "public"})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	endpoint := strings.TrimSuffix(c.config.URLScanBaseURL, "/") + "/scan/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}
	req.Header.Set("API-Key", c.config.URLScanAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Provider: "urlscan.io", StatusCode: resp.StatusCode}
	}

	var submitResp urlscanSubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitResp); err != nil {
		return nil, fmt.Errorf("failed to decode urlscan.io submission response: %w", err)
	}

	c.logger.Info().Str("scan_uuid", submitResp.UUID).Msg("urlscan.io scan submitted")

	return c.pollScanResult(ctx, submitResp.API)
}

// pollScanResult polls the provider-assigned result endpoint. Each
// attempt waits a fixed delay first; a 404 means the scan is not ready
// yet. Exhausting the attempt budget yields a pending summary, not an
// error, and the caller may re-submit later.
func (c *Client) pollScanResult(ctx context.Context, apiURL string) (*models.URLIntelSummary, error) {
	for attempt := 0; attempt < c.config.PollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.config.PollDelay):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidURL, apiURL)
		}
		req.Header.Set("API-Key", c.config.URLScanAPIKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}

		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close()
			continue
		}

		var result urlscanResultResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to decode urlscan.io result: %w", decodeErr)
		}

		return mapURLScanResponse(result), nil
	}

	return models.NewURLIntelSummary(0, models.VerdictUnknown, models.SourceURLScan,
		[]string{"Scan submitted, results pending"}, nil, ""), nil
}

// mapURLScanResponse maps the provider verdict to the unified summary.
// The numeric score is treated as higher-is-riskier; an explicit
// malicious verdict overrides it and forces 100.
func mapURLScanResponse(resp urlscanResultResponse) *models.URLIntelSummary {
	riskScore := resp.Verdict.Score
	if resp.Verdict.Malicious {
		riskScore = 100
	}

	var verdict models.IntelVerdict
	switch {
	case resp.Verdict.Malicious || riskScore >= 70:
		verdict = models.VerdictMalicious
	case riskScore >= 30:
		verdict = models.VerdictSuspicious
	default:
		verdict = models.VerdictHarmless
	}

	var findings []string
	if resp.Verdict.Malicious {
		findings = append(findings, "Classified as malicious by urlscan.io")
	}
	if len(resp.Verdict.Categories) > 0 {
		findings = append(findings, "Categories: "+strings.Join(resp.Verdict.Categories, ", "))
	}

	return models.NewURLIntelSummary(riskScore, verdict, models.SourceURLScan,
		findings,
		map[string]int{"score": resp.Verdict.Score},
		resp.Task.ReportURL)
}
