package models

// RedFlag is a single discrete indicator of deceptive intent detected
// in text or a URL. The set of flags is closed: every flag has a fixed
// severity weight and a human-readable description.
type RedFlag string

const (
	// URL-based flags
	RedFlagShortlink           RedFlag = "shortlink"
	RedFlagHomoglyphDomain     RedFlag = "homoglyph_domain"
	RedFlagRiskyTLD            RedFlag = "risky_tld"
	RedFlagSuspiciousURL       RedFlag = "suspicious_url"
	RedFlagIPAddress           RedFlag = "ip_address"
	RedFlagExcessiveSubdomains RedFlag = "excessive_subdomains"

	// Content-based flags
	RedFlagUrgencyPhrase     RedFlag = "urgency_phrase"
	RedFlagPenaltyThreat     RedFlag = "penalty_threat"
	RedFlagOTPRequest        RedFlag = "otp_request"
	RedFlagBankImpersonation RedFlag = "bank_impersonation"
	RedFlagPasswordRequest   RedFlag = "password_request"
	RedFlagAccountSuspension RedFlag = "account_suspension"
	RedFlagPrizeWinner       RedFlag = "prize_winner"
	RedFlagMoneyTransfer     RedFlag = "money_transfer"

	// Language-specific flags
	RedFlagArabicUrgency           RedFlag = "arabic_urgency"
	RedFlagArabicPenalty           RedFlag = "arabic_penalty"
	RedFlagArabicOTP               RedFlag = "arabic_otp"
	RedFlagArabicBankImpersonation RedFlag = "arabic_bank_impersonation"

	// Technical flags
	RedFlagMixedLanguageURL RedFlag = "mixed_language_url"
	RedFlagUnusualPort      RedFlag = "unusual_port"
	RedFlagNoHTTPS          RedFlag = "no_https"
)

// AllRedFlags lists every known flag.
var AllRedFlags = []RedFlag{
	RedFlagShortlink,
	RedFlagHomoglyphDomain,
	RedFlagRiskyTLD,
	RedFlagSuspiciousURL,
	RedFlagIPAddress,
	RedFlagExcessiveSubdomains,
	RedFlagUrgencyPhrase,
	RedFlagPenaltyThreat,
	RedFlagOTPRequest,
	RedFlagBankImpersonation,
	RedFlagPasswordRequest,
	RedFlagAccountSuspension,
	RedFlagPrizeWinner,
	RedFlagMoneyTransfer,
	RedFlagArabicUrgency,
	RedFlagArabicPenalty,
	RedFlagArabicOTP,
	RedFlagArabicBankImpersonation,
	RedFlagMixedLanguageURL,
	RedFlagUnusualPort,
	RedFlagNoHTTPS,
}

// redFlagSeverity maps each flag to its fixed severity weight. The
// mapping is total over AllRedFlags and never mutated at runtime.
var redFlagSeverity = map[RedFlag]int{
	RedFlagHomoglyphDomain:         30,
	RedFlagBankImpersonation:       30,
	RedFlagArabicBankImpersonation: 30,
	RedFlagOTPRequest:              30,
	RedFlagPasswordRequest:         30,

	RedFlagRiskyTLD:          20,
	RedFlagUrgencyPhrase:     20,
	RedFlagPenaltyThreat:     20,
	RedFlagAccountSuspension: 20,
	RedFlagArabicUrgency:     20,
	RedFlagArabicPenalty:     20,

	RedFlagShortlink:     15,
	RedFlagSuspiciousURL: 15,
	RedFlagArabicOTP:     15,
	RedFlagPrizeWinner:   15,
	RedFlagMoneyTransfer: 15,

	RedFlagIPAddress:           10,
	RedFlagExcessiveSubdomains: 10,
	RedFlagMixedLanguageURL:    10,
	RedFlagNoHTTPS:             10,

	RedFlagUnusualPort: 5,
}

var redFlagDescription = map[RedFlag]string{
	RedFlagShortlink:               "URL shortener detected",
	RedFlagHomoglyphDomain:         "Domain uses look-alike characters",
	RedFlagRiskyTLD:                "Suspicious top-level domain",
	RedFlagSuspiciousURL:           "URL contains suspicious patterns",
	RedFlagIPAddress:               "URL uses IP address instead of domain",
	RedFlagExcessiveSubdomains:     "Too many subdomains",
	RedFlagUrgencyPhrase:           "Urgency language detected",
	RedFlagPenaltyThreat:           "Penalty or threat language",
	RedFlagOTPRequest:              "Requests one-time password",
	RedFlagBankImpersonation:       "Possible bank impersonation",
	RedFlagPasswordRequest:         "Requests password or credentials",
	RedFlagAccountSuspension:       "Account suspension threat",
	RedFlagPrizeWinner:             "Prize or lottery claim",
	RedFlagMoneyTransfer:           "Money transfer request",
	RedFlagArabicUrgency:           "Arabic urgency phrase detected",
	RedFlagArabicPenalty:           "Arabic penalty threat",
	RedFlagArabicOTP:               "Arabic OTP request",
	RedFlagArabicBankImpersonation: "Arabic bank impersonation",
	RedFlagMixedLanguageURL:        "URL mixes multiple scripts",
	RedFlagUnusualPort:             "Non-standard port number",
	RedFlagNoHTTPS:                 "Insecure HTTP connection",
}

// Severity returns the fixed severity weight for the flag (5-30).
// Unknown flags weigh zero.
func (f RedFlag) Severity() int {
	return redFlagSeverity[f]
}

// Description returns the human-readable description for the flag.
func (f RedFlag) Description() string {
	return redFlagDescription[f]
}
