// Package analysis implements the comprehension analysis business logic.
package analysis

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hanscope/internal/analyzer"
	"github.com/heartmarshall/hanscope/internal/config"
	"github.com/heartmarshall/hanscope/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordListRepo interface {
	ListWords(ctx context.Context, kind domain.WordListKind) ([]string, error)
}

type pronunciationRenderer interface {
	Render(token string) []string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs comprehension analyses against the stored word lists.
type Service struct {
	log      *slog.Logger
	words    wordListRepo
	analyzer *analyzer.Analyzer
	renderer pronunciationRenderer
	cfg      config.AnalyzerConfig
}

// NewService creates a new Analysis service.
func NewService(
	logger *slog.Logger,
	words wordListRepo,
	fallback analyzer.FallbackSegmenter,
	renderer pronunciationRenderer,
	cfg config.AnalyzerConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "analysis"),
		words:    words,
		analyzer: analyzer.New(fallback, cfg.MaxWordLength),
		renderer: renderer,
		cfg:      cfg,
	}
}
