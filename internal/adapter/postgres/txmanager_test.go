package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hanscope/internal/adapter/postgres"
	"github.com/heartmarshall/hanscope/internal/adapter/postgres/testhelper"
)

// wordExists checks whether a word is present on the known list.
func wordExists(t *testing.T, pool *pgxpool.Pool, word string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM word_list_entries WHERE kind = 'known' AND word = $1)`,
		word,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("wordExists query: %v", err)
	}
	return exists
}

func insertKnownWord(ctx context.Context, pool *pgxpool.Pool, word string) error {
	q := postgres.QuerierFromCtx(ctx, pool)
	_, err := q.Exec(ctx,
		`INSERT INTO word_list_entries (kind, word) VALUES ('known', $1)`,
		word,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	word := "提交测试"

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertKnownWord(ctx, pool, word)
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !wordExists(t, pool, word) {
		t.Fatal("expected word to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	word := "回滚测试"
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if execErr := insertKnownWord(ctx, pool, word); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if wordExists(t, pool, word) {
		t.Fatal("expected word NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	word := "恐慌测试"

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		// Verify data was rolled back.
		if wordExists(t, pool, word) {
			t.Fatal("expected word NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertKnownWord(ctx, pool, word); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	word := "上下文测试"

	// Insert inside a transaction, then verify it's visible within the same tx
	// but NOT outside until commit.
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertKnownWord(ctx, pool, word); err != nil {
			return err
		}

		// Should be visible within the transaction.
		q := postgres.QuerierFromCtx(ctx, pool)
		var exists bool
		err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM word_list_entries WHERE kind = 'known' AND word = $1)`,
			word,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected word to be visible within the transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	// After commit, also visible outside.
	if !wordExists(t, pool, word) {
		t.Fatal("expected word to exist after committed transaction")
	}
}
