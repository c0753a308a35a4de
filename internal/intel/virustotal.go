package intel

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"scamintel-lab/internal/domain/models"
)

// vtURLResponse is the subset of the VirusTotal v3 URL object the
// mapping needs.
type vtURLResponse struct {
	Data vtURLData `json:"data"`
}

type vtURLData struct {
	ID         string          `json:"id"`
	Attributes vtURLAttributes `json:"attributes"`
}

type vtURLAttributes struct {
	LastAnalysisStats vtAnalysisStats `json:"last_analysis_stats"`
}

type vtAnalysisStats struct {
	Malicious  int `json:"malicious"`
	Suspicious int `json:"suspicious"`
	Harmless   int `json:"harmless"`
	Undetected int `json:"undetected"`
}

// URLID returns the stable VirusTotal identifier for a URL: its
// unpadded base64 encoding. Reproducible, so repeated lookups of the
// same URL hit the same remote resource.
func URLID(rawURL string) string {
	return base64.StdEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(rawURL))
}

// Lookup performs a passive VirusTotal reputation lookup for the URL.
// Without a configured API key it returns the neutral empty summary; a
// 404 means the URL is unknown to the provider and is likewise not an
// error.
func (c *Client) Lookup(ctx context.Context, rawURL string) (*models.URLIntelSummary, error) {
	if c.config.VirusTotalAPIKey == "" {
		c.logger.Warn().Msg("VirusTotal API key not configured, skipping lookup")
		return models.EmptyIntelSummary(), nil
	}

	urlID := URLID(rawURL)

	endpoint := fmt.Sprintf("%s/urls/%s", c.config.VirusTotalBaseURL, urlID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}
	req.Header.Set("x-apikey", c.config.VirusTotalAPIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.NewURLIntelSummary(0, models.VerdictUnknown, models.SourceVirusTotal,
			[]string{"URL not found in VirusTotal database"}, nil, ""), nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Provider: "VirusTotal", StatusCode: resp.StatusCode}
	}

	var vtResp vtURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&vtResp); err != nil {
		return nil, fmt.Errorf("failed to decode VirusTotal response: %w", err)
	}

	summary := mapVirusTotalResponse(vtResp)

	c.logger.Debug().
		Int("risk_score", summary.RiskScore).
		Str("verdict", string(summary.Verdict)).
		Msg("VirusTotal lookup completed")

	return summary, nil
}

// mapVirusTotalResponse maps engine vote counters to the unified
// summary. Any malicious vote jumps the score to at least 50.
func mapVirusTotalResponse(resp vtURLResponse) *models.URLIntelSummary {
	stats := resp.Data.Attributes.LastAnalysisStats

	riskScore := 0
	if stats.Malicious > 0 {
		riskScore = 50 + min(50, stats.Malicious*10)
	} else if stats.Suspicious > 0 {
		riskScore = 20 + min(30, stats.Suspicious*10)
	}

	var verdict models.IntelVerdict
	switch {
	case riskScore >= 70:
		verdict = models.VerdictMalicious
	case riskScore >= 30:
		verdict = models.VerdictSuspicious
	case stats.Harmless > 0:
		verdict = models.VerdictHarmless
	default:
		verdict = models.VerdictUnknown
	}

	var findings []string
	if stats.Malicious > 0 {
		findings = append(findings, fmt.Sprintf("Flagged as malicious by %d security vendors", stats.Malicious))
	}
	if stats.Suspicious > 0 {
		findings = append(findings, fmt.Sprintf("Flagged as suspicious by %d security vendors", stats.Suspicious))
	}

	return models.NewURLIntelSummary(riskScore, verdict, models.SourceVirusTotal,
		findings,
		map[string]int{
			"malicious":  stats.Malicious,
			"suspicious": stats.Suspicious,
			"harmless":   stats.Harmless,
			"undetected": stats.Undetected,
		},
		"https://www.virustotal.com/gui/url/"+resp.Data.ID)
}
