package handlers

import (
	"scamintel-lab/internal/domain/services"
	"scamintel-lab/internal/infrastructure/cache"
	"scamintel-lab/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health    *HealthHandler
	Analyze   *AnalyzeHandler
	URL       *URLHandler
	Normalize *NormalizeHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Analyzer *services.Analyzer
	Cache    *cache.RedisCache
	Logger   *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(deps.Cache, deps.Logger),
		Analyze:   NewAnalyzeHandler(deps.Analyzer, deps.Logger),
		URL:       NewURLHandler(deps.Analyzer, deps.Logger),
		Normalize: NewNormalizeHandler(deps.Logger),
	}
}
