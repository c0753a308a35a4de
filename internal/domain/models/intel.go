package models

import "time"

// IntelVerdict is the categorical risk conclusion for a URL.
type IntelVerdict string

const (
	VerdictMalicious  IntelVerdict = "malicious"
	VerdictSuspicious IntelVerdict = "suspicious"
	VerdictHarmless   IntelVerdict = "harmless"
	VerdictUnknown    IntelVerdict = "unknown"
)

// IntelSource identifies where a URL intelligence summary came from.
type IntelSource string

const (
	SourceVirusTotal IntelSource = "virustotal"
	SourceURLScan    IntelSource = "urlscan"
	SourceCache      IntelSource = "cache"
	SourceNone       IntelSource = "none"
)

// URLIntelSummary is the unified outcome of an external threat
// intelligence lookup for one URL. Intel sources are considered more
// authoritative than local heuristics, so the high-risk threshold is
// 70 rather than 50.
type URLIntelSummary struct {
	RiskScore int            `json:"risk_score"`
	Verdict   IntelVerdict   `json:"verdict"`
	Source    IntelSource    `json:"source"`
	Timestamp time.Time      `json:"timestamp"`
	Findings  []string       `json:"findings"`
	Stats     map[string]int `json:"stats"`
	ReportURL string         `json:"report_url,omitempty"`
}

// NewURLIntelSummary builds a summary with the score clamped to [0,100].
func NewURLIntelSummary(riskScore int, verdict IntelVerdict, source IntelSource,
	findings []string, stats map[string]int, reportURL string) *URLIntelSummary {

	if riskScore < 0 {
		riskScore = 0
	}
	if riskScore > 100 {
		riskScore = 100
	}
	if stats == nil {
		stats = map[string]int{}
	}

	return &URLIntelSummary{
		RiskScore: riskScore,
		Verdict:   verdict,
		Source:    source,
		Timestamp: time.Now().UTC(),
		Findings:  findings,
		Stats:     stats,
		ReportURL: reportURL,
	}
}

// EmptyIntelSummary is the neutral summary returned when no provider is
// configured. Not an error condition.
func EmptyIntelSummary() *URLIntelSummary {
	return NewURLIntelSummary(0, VerdictUnknown, SourceNone, nil, nil, "")
}

// IsHighRisk reports whether the score is at or above the intel
// high-risk threshold of 70.
func (s *URLIntelSummary) IsHighRisk() bool {
	return s.RiskScore >= 70
}

// URLIntelResult pairs a URL with its intelligence summary, or with the
// reason intelligence could not be gathered for it.
type URLIntelResult struct {
	URL     string           `json:"url"`
	Summary *URLIntelSummary `json:"summary,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// CombinedAnalysis is the top-level report of a full content analysis:
// the heuristic pass plus any per-URL intelligence enrichment.
type CombinedAnalysis struct {
	ID         string            `json:"id"`
	Heuristics *HeuristicsResult `json:"heuristics"`
	Intel      []URLIntelResult  `json:"intel,omitempty"`
	ActiveScan *URLIntelResult   `json:"active_scan,omitempty"`

	// CombinedScore is the maximum of the heuristic score and any
	// intel score.
	CombinedScore int       `json:"combined_score"`
	Timestamp     time.Time `json:"timestamp"`
}

// IsHighRisk uses the heuristic threshold on the combined score.
func (a *CombinedAnalysis) IsHighRisk() bool {
	return a.CombinedScore >= 50
}
