package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hanscope/internal/domain"
)

// SeedWords inserts the given words onto a word list directly, bypassing
// the repository under test.
func SeedWords(t *testing.T, pool *pgxpool.Pool, kind domain.WordListKind, words ...string) {
	t.Helper()
	ctx := context.Background()

	for _, w := range words {
		_, err := pool.Exec(ctx,
			`INSERT INTO word_list_entries (kind, word) VALUES ($1, $2)
			 ON CONFLICT (kind, word) DO NOTHING`,
			kind.String(), w,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWords insert %q: %v", w, err)
		}
	}
}

// TruncateWords clears all word lists between tests.
func TruncateWords(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE word_list_entries`); err != nil {
		t.Fatalf("testhelper: TruncateWords: %v", err)
	}
}
