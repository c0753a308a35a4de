// Package services composes the analysis pipeline: the heuristics pass
// runs first, then each extracted URL is optionally enriched with
// external threat intelligence.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"scamintel-lab/internal/config"
	"scamintel-lab/internal/domain/models"
	"scamintel-lab/internal/heuristics"
	"scamintel-lab/internal/infrastructure/cache"
	"scamintel-lab/internal/intel"
	"scamintel-lab/pkg/logger"
)

// AnalyzeRequest is the input to a full content analysis.
type AnalyzeRequest struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`

	// ActiveScanOptIn is the user's explicit consent for active
	// scanning of the supplied URL. Passed per call, never stored.
	ActiveScanOptIn bool `json:"active_scan_opt_in,omitempty"`
}

// IntelCache is the read-through store for passive intel summaries.
// Satisfied by cache.RedisCache; a nil cache degrades to always-miss.
type IntelCache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Analyzer runs heuristics and orchestrates per-URL intel enrichment.
type Analyzer struct {
	engine *heuristics.Engine
	intel  *intel.Client
	cache  IntelCache
	cfg    config.AnalysisConfig
	logger *logger.Logger
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(engine *heuristics.Engine, intelClient *intel.Client, c IntelCache,
	cfg config.AnalysisConfig, log *logger.Logger) *Analyzer {

	if cfg.MaxURLsPerRequest <= 0 {
		cfg.MaxURLsPerRequest = 10
	}
	if cfg.IntelConcurrency <= 0 {
		cfg.IntelConcurrency = 4
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}

	return &Analyzer{
		engine: engine,
		intel:  intelClient,
		cache:  c,
		cfg:    cfg,
		logger: log.WithComponent("analyzer"),
	}
}

// AnalyzeContent is the pipeline entry point. Heuristics always run;
// passive lookups run per extracted URL (bounded, concurrent); an
// active scan runs only for the explicitly supplied URL and only with
// consent. Per-URL intel failures are recorded on the result, they do
// not fail the analysis.
func (a *Analyzer) AnalyzeContent(ctx context.Context, req AnalyzeRequest) (*models.CombinedAnalysis, error) {
	start := time.Now()

	heur := a.engine.Analyze(req.Text, req.URL)

	analysis := &models.CombinedAnalysis{
		ID:            uuid.New().String(),
		Heuristics:    heur,
		CombinedScore: heur.RiskScore,
		Timestamp:     start.UTC(),
	}

	urls := heur.ExtractedURLs
	if len(urls) > a.cfg.MaxURLsPerRequest {
		urls = urls[:a.cfg.MaxURLsPerRequest]
	}

	if len(urls) > 0 {
		analysis.Intel = make([]models.URLIntelResult, len(urls))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.cfg.IntelConcurrency)
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				analysis.Intel[i] = a.lookupWithCache(gctx, u)
				return nil
			})
		}
		g.Wait()
	}

	if req.URL != "" && req.ActiveScanOptIn {
		result := models.URLIntelResult{URL: req.URL}
		summary, err := a.intel.Scan(ctx, req.URL, true)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Summary = summary
		}
		analysis.ActiveScan = &result
	}

	for _, r := range analysis.Intel {
		if r.Summary != nil && r.Summary.RiskScore > analysis.CombinedScore {
			analysis.CombinedScore = r.Summary.RiskScore
		}
	}
	if s := analysis.ActiveScan; s != nil && s.Summary != nil && s.Summary.RiskScore > analysis.CombinedScore {
		analysis.CombinedScore = s.Summary.RiskScore
	}

	a.logger.Info().
		Str("analysis_id", analysis.ID).
		Int("heuristic_score", heur.RiskScore).
		Int("combined_score", analysis.CombinedScore).
		Int("urls", len(heur.ExtractedURLs)).
		Str("channel", string(heur.Channel)).
		Dur("duration", time.Since(start)).
		Msg("content analysis completed")

	return analysis, nil
}

// Lookup performs a passive reputation lookup for one URL, going
// through the cache.
func (a *Analyzer) Lookup(ctx context.Context, rawURL string) (*models.URLIntelSummary, error) {
	if cached := a.cachedSummary(ctx, rawURL); cached != nil {
		return cached, nil
	}

	summary, err := a.intel.Lookup(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	a.storeSummary(ctx, rawURL, summary)
	return summary, nil
}

// Scan performs an active scan for one URL. Consent gating happens in
// the intel client; active results are never cached.
func (a *Analyzer) Scan(ctx context.Context, rawURL string, userOptIn bool) (*models.URLIntelSummary, error) {
	return a.intel.Scan(ctx, rawURL, userOptIn)
}

func (a *Analyzer) lookupWithCache(ctx context.Context, rawURL string) models.URLIntelResult {
	result := models.URLIntelResult{URL: rawURL}

	summary, err := a.Lookup(ctx, rawURL)
	if err != nil {
		a.logger.Warn().Err(err).Str("url", rawURL).Msg("passive lookup failed")
		result.Error = err.Error()
		return result
	}

	result.Summary = summary
	return result
}

// cachedSummary returns a cached passive summary, re-sourced as cache,
// or nil on a miss. Cache errors are treated as misses.
func (a *Analyzer) cachedSummary(ctx context.Context, rawURL string) *models.URLIntelSummary {
	if a.cache == nil {
		return nil
	}

	var summary models.URLIntelSummary
	if err := a.cache.GetJSON(ctx, cache.KeyIntelPrefix+intel.URLID(rawURL), &summary); err != nil {
		return nil
	}

	summary.Source = models.SourceCache
	return &summary
}

func (a *Analyzer) storeSummary(ctx context.Context, rawURL string, summary *models.URLIntelSummary) {
	if a.cache == nil || summary == nil || summary.Source == models.SourceNone {
		return
	}
	if err := a.cache.SetJSON(ctx, cache.KeyIntelPrefix+intel.URLID(rawURL), summary, a.cfg.CacheTTL); err != nil {
		a.logger.Warn().Err(err).Msg("failed to cache intel summary")
	}
}
