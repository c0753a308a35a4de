// Package heuristics implements rule-based phishing and scam detection
// over bilingual (Arabic/English) text and URLs. All detection is
// pattern matching against fixed tables; there is no model and no
// network access, and analysis never fails.
package heuristics

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"scamintel-lab/internal/domain/models"
	"scamintel-lab/pkg/logger"
)

// urlPattern finds embedded links. It is script-agnostic so URLs
// adjacent to Arabic text are still picked up; trailing punctuation
// (including RTL punctuation) is trimmed afterwards.
var urlPattern = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"']+`)

const trailingPunct = ".,;:!?…«»\"')]}،؛؟"

var (
	ipv4Pattern = regexp.MustCompile(`^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$`)
	// Full (non-compressed) IPv6 literals only.
	ipv6Pattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`)
)

// Engine analyzes text and URLs for deceptive patterns. It is
// stateless and safe for concurrent use.
type Engine struct {
	logger *logger.Logger
}

// NewEngine creates a new heuristics engine
func NewEngine(log *logger.Logger) *Engine {
	return &Engine{
		logger: log.WithComponent("heuristics"),
	}
}

// Analyze inspects free text plus an optional explicit URL and returns
// the heuristic risk assessment. The explicit URL, when non-empty, is
// appended after URLs discovered in the text and analyzed the same way.
func (e *Engine) Analyze(text, explicitURL string) *models.HeuristicsResult {
	var redFlags []models.RedFlag
	var shortlinks []string
	var homoglyphDomains []string

	extractedURLs := ExtractURLs(text)
	if explicitURL != "" {
		extractedURLs = append(extractedURLs, explicitURL)
	}

	for _, u := range extractedURLs {
		urlResult := e.analyzeURL(u)
		redFlags = append(redFlags, urlResult.flags...)
		if urlResult.isShortlink {
			shortlinks = append(shortlinks, u)
		}
		if urlResult.homoglyphDomain != "" {
			homoglyphDomains = append(homoglyphDomains, urlResult.homoglyphDomain)
		}
	}

	redFlags = append(redFlags, analyzeContent(text)...)

	channel := guessChannel(text, extractedURLs)
	riskScore := riskScoreFor(redFlags)

	deduped := dedupeFlags(redFlags)
	metadata := map[string]string{
		"urlCount":       strconv.Itoa(len(extractedURLs)),
		"shortlinkCount": strconv.Itoa(len(shortlinks)),
		"flagCount":      strconv.Itoa(len(deduped)),
		"textLength":     strconv.Itoa(utf8.RuneCountInString(text)),
	}

	return models.NewHeuristicsResult(riskScore, deduped, channel,
		extractedURLs, shortlinks, homoglyphDomains, metadata)
}

// ExtractURLs scans text for embedded links and returns them in
// discovery order.
func ExtractURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, trailingPunct)
		if m != "" {
			urls = append(urls, m)
		}
	}
	return urls
}

type urlAnalysis struct {
	flags           []models.RedFlag
	isShortlink     bool
	homoglyphDomain string
}

// analyzeURL runs the per-URL checks. Unparseable URLs are silently
// skipped: no flags, no error.
func (e *Engine) analyzeURL(rawURL string) urlAnalysis {
	var result urlAnalysis

	u, err := url.Parse(strings.ToLower(rawURL))
	if err != nil {
		return result
	}

	if host := u.Hostname(); host != "" {
		for _, domain := range shortlinkDomains {
			if strings.Contains(host, domain) {
				result.flags = append(result.flags, models.RedFlagShortlink)
				result.isShortlink = true
				break
			}
		}

		for _, tld := range riskyTLDs {
			if strings.HasSuffix(host, tld) {
				result.flags = append(result.flags, models.RedFlagRiskyTLD)
				break
			}
		}

		if containsHomoglyphs(host) {
			result.flags = append(result.flags, models.RedFlagHomoglyphDomain)
			result.homoglyphDomain = host
		}

		if isIPAddress(host) {
			result.flags = append(result.flags, models.RedFlagIPAddress)
		}

		if subdomains := strings.Count(host, ".") + 1 - 2; subdomains > 3 {
			result.flags = append(result.flags, models.RedFlagExcessiveSubdomains)
		}

		if containsMixedScripts(host) {
			result.flags = append(result.flags, models.RedFlagMixedLanguageURL)
		}

		if impersonatesBank(host) {
			result.flags = append(result.flags, models.RedFlagBankImpersonation)
		}
	}

	if u.Scheme == "http" {
		result.flags = append(result.flags, models.RedFlagNoHTTPS)
	}

	if port := u.Port(); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n != 80 && n != 443 && n != 8080 {
			result.flags = append(result.flags, models.RedFlagUnusualPort)
		}
	}

	return result
}

// containsHomoglyphs reports whether any character in the hostname is a
// known look-alike substitute for a Latin letter.
func containsHomoglyphs(host string) bool {
	for _, r := range host {
		if homoglyphRunes[r] {
			return true
		}
	}
	return false
}

func isIPAddress(host string) bool {
	return ipv4Pattern.MatchString(host) || ipv6Pattern.MatchString(host)
}

// containsMixedScripts reports whether the hostname mixes characters
// from two or more of the Latin, Arabic and Cyrillic scripts.
func containsMixedScripts(host string) bool {
	var hasLatin, hasArabic, hasCyrillic bool
	for _, r := range host {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLatin = true
		case r >= 0x0600 && r <= 0x06FF:
			hasArabic = true
		case r >= 0x0400 && r <= 0x04FF:
			hasCyrillic = true
		}
	}

	count := 0
	for _, has := range []bool{hasLatin, hasArabic, hasCyrillic} {
		if has {
			count++
		}
	}
	return count > 1
}

// impersonatesBank reports whether the hostname carries a known bank
// brand without actually being that bank's domain.
func impersonatesBank(host string) bool {
	for _, domain := range legitimateBankDomains {
		brand, _, _ := strings.Cut(domain, ".")
		if len(brand) < 4 {
			// Short brand tokens (nbk, cib, qnb...) are too
			// collision-prone for substring matching.
			continue
		}
		if strings.Contains(host, brand) && !strings.HasSuffix(host, domain) {
			return true
		}
	}
	return false
}

// analyzeContent runs the phrase checks over the full text. Within each
// phrase list the first match wins and the rest of the list is not
// checked. Arabic phrases are matched literally on the raw text, not
// diacritic-normalized first; diacritics inserted mid-word will defeat
// the match.
func analyzeContent(text string) []models.RedFlag {
	var flags []models.RedFlag
	lowerText := strings.ToLower(text)

	phraseChecks := []struct {
		phrases  []string
		haystack string
		flag     models.RedFlag
	}{
		{arabicUrgencyPhrases, text, models.RedFlagArabicUrgency},
		{arabicPenaltyPhrases, text, models.RedFlagArabicPenalty},
		{arabicOTPPhrases, text, models.RedFlagArabicOTP},
		{arabicBankPhrases, text, models.RedFlagArabicBankImpersonation},
		{englishUrgencyPhrases, lowerText, models.RedFlagUrgencyPhrase},
		{englishPenaltyPhrases, lowerText, models.RedFlagPenaltyThreat},
		{englishOTPPhrases, lowerText, models.RedFlagOTPRequest},
	}

	for _, check := range phraseChecks {
		for _, phrase := range check.phrases {
			if strings.Contains(check.haystack, phrase) {
				flags = append(flags, check.flag)
				break
			}
		}
	}

	if strings.Contains(lowerText, "password") || strings.Contains(lowerText, "credentials") {
		flags = append(flags, models.RedFlagPasswordRequest)
	}

	if strings.Contains(lowerText, "account") &&
		(strings.Contains(lowerText, "suspend") || strings.Contains(lowerText, "lock")) {
		flags = append(flags, models.RedFlagAccountSuspension)
	}

	if strings.Contains(lowerText, "winner") || strings.Contains(lowerText, "prize") ||
		strings.Contains(lowerText, "lottery") {
		flags = append(flags, models.RedFlagPrizeWinner)
	}

	if strings.Contains(lowerText, "transfer money") || strings.Contains(lowerText, "send money") {
		flags = append(flags, models.RedFlagMoneyTransfer)
	}

	return flags
}

// guessChannel picks the most likely originating channel, first match
// wins: WhatsApp markers, then email markers, then short single-block
// text as SMS, then social platform URLs.
func guessChannel(text string, urls []string) models.CommunicationChannel {
	lowerText := strings.ToLower(text)

	if strings.TrimSpace(text) == "" {
		return models.ChannelUnknown
	}

	if strings.Contains(lowerText, "whatsapp") || strings.Contains(lowerText, "واتساب") {
		return models.ChannelWhatsApp
	}

	if strings.Contains(lowerText, "@") || strings.Contains(lowerText, "email") ||
		strings.Contains(lowerText, "بريد") {
		return models.ChannelEmail
	}

	if utf8.RuneCountInString(text) < 160 && !strings.Contains(text, "\n\n") {
		return models.ChannelSMS
	}

	for _, u := range urls {
		lowerURL := strings.ToLower(u)
		for _, platform := range socialPlatforms {
			if strings.Contains(lowerURL, platform) {
				return models.ChannelSocialMedia
			}
		}
	}

	return models.ChannelUnknown
}

// riskScoreFor sums severity over the deduplicated flag set, so the
// same flag detected on several URLs contributes once. Clamped to 100
// by the result constructor.
func riskScoreFor(flags []models.RedFlag) int {
	total := 0
	for _, f := range dedupeFlags(flags) {
		total += f.Severity()
	}
	if total > 100 {
		total = 100
	}
	return total
}

func dedupeFlags(flags []models.RedFlag) []models.RedFlag {
	seen := make(map[models.RedFlag]bool, len(flags))
	out := make([]models.RedFlag, 0, len(flags))
	for _, f := range flags {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
