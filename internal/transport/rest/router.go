package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hanscope/internal/config"
	"github.com/heartmarshall/hanscope/internal/transport/middleware"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Analyze *AnalyzeHandler
	Words   *WordsHandler
	Health  *HealthHandler
	Limiter *middleware.RateLimiter
}

// NewRouter builds the HTTP handler: routes plus the middleware stack.
func NewRouter(cfg config.ServerConfig, corsCfg config.CORSConfig, logger *slog.Logger, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.HandleFunc("POST /api/v1/analyze", deps.Analyze.Analyze)
	mux.HandleFunc("POST /api/v1/analyze/batch", deps.Analyze.AnalyzeBatch)

	mux.HandleFunc("GET /api/v1/words/{kind}", deps.Words.List)
	mux.HandleFunc("POST /api/v1/words/{kind}", deps.Words.Add)
	mux.HandleFunc("PUT /api/v1/words/{kind}", deps.Words.Replace)
	mux.HandleFunc("DELETE /api/v1/words/{kind}/{word}", deps.Words.Remove)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(corsCfg),
	}
	if deps.Limiter != nil && cfg.RateLimitPerMin > 0 {
		mws = append(mws, deps.Limiter.Limit(cfg.RateLimitPerMin))
	}

	return middleware.Chain(mws...)(mux)
}
