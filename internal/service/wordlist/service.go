// Package wordlist implements word-list management business logic.
package wordlist

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hanscope/internal/config"
	"github.com/heartmarshall/hanscope/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordListRepo interface {
	ListWords(ctx context.Context, kind domain.WordListKind) ([]string, error)
	ListEntries(ctx context.Context, kind domain.WordListKind) ([]domain.WordListEntry, error)
	AddWords(ctx context.Context, kind domain.WordListKind, words []string) (int, error)
	RemoveWord(ctx context.Context, kind domain.WordListKind, word string) error
	DeleteAll(ctx context.Context, kind domain.WordListKind) error
	Count(ctx context.Context, kind domain.WordListKind) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements word-list management.
type Service struct {
	log   *slog.Logger
	words wordListRepo
	tx    txManager
	cfg   config.WordListConfig
}

// NewService creates a new WordList service.
func NewService(logger *slog.Logger, words wordListRepo, tx txManager, cfg config.WordListConfig) *Service {
	return &Service{
		log:   logger.With("service", "wordlist"),
		words: words,
		tx:    tx,
		cfg:   cfg,
	}
}
