package models

// CommunicationChannel is the guessed origin of the analyzed message.
type CommunicationChannel string

const (
	ChannelSMS         CommunicationChannel = "sms"
	ChannelEmail       CommunicationChannel = "email"
	ChannelWhatsApp    CommunicationChannel = "whatsapp"
	ChannelSocialMedia CommunicationChannel = "social_media"
	ChannelUnknown     CommunicationChannel = "unknown"
)

// Description returns the display name for the channel.
func (c CommunicationChannel) Description() string {
	switch c {
	case ChannelSMS:
		return "SMS/Text Message"
	case ChannelEmail:
		return "Email"
	case ChannelWhatsApp:
		return "WhatsApp"
	case ChannelSocialMedia:
		return "Social Media"
	default:
		return "Unknown Channel"
	}
}

// RiskLevel buckets a 0-100 risk score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// HeuristicsResult is the outcome of a single heuristic analysis pass.
// It is constructed once per analysis and never mutated afterwards.
type HeuristicsResult struct {
	// RiskScore is the preliminary risk score, clamped to [0,100].
	RiskScore int `json:"risk_score"`

	// RedFlags are the detected indicators, duplicates collapsed.
	RedFlags []RedFlag `json:"red_flags"`

	// Channel is the guessed communication channel.
	Channel CommunicationChannel `json:"channel"`

	// ExtractedURLs in discovery order: text matches first, then the
	// explicitly supplied URL if any.
	ExtractedURLs []string `json:"extracted_urls"`

	// Shortlinks is the subsequence of ExtractedURLs served through
	// known shortening domains.
	Shortlinks []string `json:"shortlinks"`

	// HomoglyphDomains are hostnames (not full URLs) using look-alike
	// characters.
	HomoglyphDomains []string `json:"homoglyph_domains"`

	// Metadata holds decimal-string encoded counters
	// (urlCount, shortlinkCount, flagCount, textLength).
	Metadata map[string]string `json:"metadata"`
}

// NewHeuristicsResult builds an immutable result, clamping the score to
// [0,100] and collapsing duplicate flags while preserving first-seen
// order.
func NewHeuristicsResult(riskScore int, redFlags []RedFlag, channel CommunicationChannel,
	extractedURLs, shortlinks, homoglyphDomains []string, metadata map[string]string) *HeuristicsResult {

	if riskScore < 0 {
		riskScore = 0
	}
	if riskScore > 100 {
		riskScore = 100
	}
	if channel == "" {
		channel = ChannelUnknown
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	seen := make(map[RedFlag]bool, len(redFlags))
	deduped := make([]RedFlag, 0, len(redFlags))
	for _, f := range redFlags {
		if !seen[f] {
			seen[f] = true
			deduped = append(deduped, f)
		}
	}

	return &HeuristicsResult{
		RiskScore:        riskScore,
		RedFlags:         deduped,
		Channel:          channel,
		ExtractedURLs:    extractedURLs,
		Shortlinks:       shortlinks,
		HomoglyphDomains: homoglyphDomains,
		Metadata:         metadata,
	}
}

// RiskLevel buckets the score: <20 low, 20-49 medium, 50-79 high,
// >=80 critical.
func (r *HeuristicsResult) RiskLevel() RiskLevel {
	switch {
	case r.RiskScore < 20:
		return RiskLevelLow
	case r.RiskScore < 50:
		return RiskLevelMedium
	case r.RiskScore < 80:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}

// IsHighRisk reports whether the score is at or above the heuristic
// high-risk threshold of 50.
func (r *HeuristicsResult) IsHighRisk() bool {
	return r.RiskScore >= 50
}

// HasFlag reports whether the given flag was detected.
func (r *HeuristicsResult) HasFlag(flag RedFlag) bool {
	for _, f := range r.RedFlags {
		if f == flag {
			return true
		}
	}
	return false
}
