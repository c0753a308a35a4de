// Package intel queries external threat-intelligence providers for URL
// reputation: a passive VirusTotal lookup against historical data and
// an active urlscan.io scan that visits the URL and therefore requires
// explicit user consent. The client is stateless across calls; every
// operation is independently cancellable through its context.
package intel

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"scamintel-lab/pkg/logger"
)

const (
	defaultVirusTotalBaseURL = "https://www.virustotal.com/api/v3"
	defaultURLScanBaseURL    = "https://urlscan.io/api/v1"

	defaultPollAttempts = 5
	defaultPollDelay    = 2 * time.Second
)

// Config holds the injected provider configuration. It is read-only
// for the duration of a call; concurrent calls share it without
// synchronization.
type Config struct {
	VirusTotalAPIKey  string
	VirusTotalBaseURL string

	URLScanAPIKey  string
	URLScanBaseURL string

	// AllowActiveURLScan is the remote-config kill switch for active
	// scanning.
	AllowActiveURLScan bool

	PollAttempts   int
	PollDelay      time.Duration
	RequestTimeout time.Duration
}

// Client talks to the external reputation services.
type Client struct {
	config Config
	client *http.Client
	logger *logger.Logger
}

// NewClient creates a new intel client
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.VirusTotalBaseURL == "" {
		cfg.VirusTotalBaseURL = defaultVirusTotalBaseURL
	}
	if cfg.URLScanBaseURL == "" {
		cfg.URLScanBaseURL = defaultURLScanBaseURL
	}
	if cfg.PollAttempts <= 0 {
		cfg.PollAttempts = defaultPollAttempts
	}
	if cfg.PollDelay <= 0 {
		cfg.PollDelay = defaultPollDelay
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	return &Client{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: log.WithComponent("intel"),
	}
}

// sensitiveParams are query-parameter names that must never be
// forwarded to a scanning provider.
var sensitiveParams = []string{
	"token", "key", "password", "auth", "session", "access_token", "secret",
}

// IsSensitiveURL reports whether the URL carries secret-bearing query
// parameters. Parameter names are checked both as parsed query items
// and as a raw "name=" substring fallback for URLs that do not parse.
func IsSensitiveURL(rawURL string) bool {
	if u, err := url.Parse(rawURL); err == nil {
		for name := range u.Query() {
			lower := strings.ToLower(name)
			for _, p := range sensitiveParams {
				if lower == p {
					return true
				}
			}
		}
	}

	lowerURL := strings.ToLower(rawURL)
	for _, p := range sensitiveParams {
		if strings.Contains(lowerURL, p+"=") {
			return true
		}
	}

	return false
}
