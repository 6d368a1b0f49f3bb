// Package wordlist implements the word-list repository using PostgreSQL.
package wordlist

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hanscope/internal/adapter/postgres"
	"github.com/heartmarshall/hanscope/internal/domain"
)

const table = "word_list_entries"

// qb builds queries with PostgreSQL placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides word-list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word-list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListWords returns all words on the given list, oldest first.
func (r *Repo) ListWords(ctx context.Context, kind domain.WordListKind) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("word").
		From(table).
		Where(squirrel.Eq{"kind": kind.String()}).
		OrderBy("created_at ASC", "word ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "list words")
	}

	var words []string
	if err := pgxscan.ScanAll(&words, rows); err != nil {
		return nil, mapError(err, "scan words")
	}
	return words, nil
}

// ListEntries returns full entries for the given list, oldest first.
func (r *Repo) ListEntries(ctx context.Context, kind domain.WordListKind) ([]domain.WordListEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("id", "kind", "word", "created_at").
		From(table).
		Where(squirrel.Eq{"kind": kind.String()}).
		OrderBy("created_at ASC", "word ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "list entries")
	}

	var entries []domain.WordListEntry
	if err := pgxscan.ScanAll(&entries, rows); err != nil {
		return nil, mapError(err, "scan entries")
	}
	return entries, nil
}

// AddWords inserts words onto the given list, skipping duplicates.
// Returns the number of words actually inserted.
func (r *Repo) AddWords(ctx context.Context, kind domain.WordListKind, words []string) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Insert(table).Columns("kind", "word")
	for _, w := range words {
		builder = builder.Values(kind.String(), w)
	}
	sql, args, err := builder.
		Suffix("ON CONFLICT (kind, word) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapError(err, "add words")
	}
	return int(tag.RowsAffected()), nil
}

// RemoveWord deletes one word from the given list.
// Returns domain.ErrNotFound if the word is not on the list.
func (r *Repo) RemoveWord(ctx context.Context, kind domain.WordListKind, word string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"kind": kind.String(), "word": word}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "remove word")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %q (%s): %w", word, kind, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every word on the given list. Used by Replace inside
// a transaction.
func (r *Repo) DeleteAll(ctx context.Context, kind domain.WordListKind) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"kind": kind.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "delete all")
	}
	return nil
}

// Count returns the number of words on the given list.
func (r *Repo) Count(ctx context.Context, kind domain.WordListKind) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"kind": kind.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, mapError(err, "count words")
	}
	return count, nil
}
