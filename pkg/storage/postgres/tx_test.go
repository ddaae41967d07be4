package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pylintd/pkg/domain"
	"pylintd/pkg/storage"
	"pylintd/pkg/storage/postgres"
)

func pendingAnalysis(userID domain.UserID, source string) domain.Analysis {
	return domain.Analysis{
		UserID:     userID,
		FileName:   domain.DefaultFileName,
		Source:     source,
		SourceHash: domain.SourceHash(domain.DefaultFileName, source),
		Status:     domain.AnalysisStatusPending,
	}
}

func countByHash(t *testing.T, db *sql.DB, hash string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM analyses WHERE source_hash = $1`, hash)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, inner.Ping(ctx), storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	committed := pendingAnalysis(userID, "a = 1\n")
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.StoreAnalyses(ctx, committed)
	require.NoError(t, err)
	require.Equal(t, 0, countByHash(t, db, committed.SourceHash))
	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countByHash(t, db, committed.SourceHash))

	rolledBack := pendingAnalysis(userID, "b = 2\n")
	txStorage, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.StoreAnalyses(ctx, rolledBack)
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())
	require.Equal(t, 0, countByHash(t, db, rolledBack.SourceHash))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	ok := pendingAnalysis(userID, "ok = True\n")
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreAnalyses(ctx, ok)

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countByHash(t, db, ok.SourceHash))

	boom := errors.New("boom")
	failed := pendingAnalysis(userID, "failed = True\n")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreAnalyses(ctx, failed)
		require.NoError(t, e)

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countByHash(t, db, failed.SourceHash))

	require.Panics(t, func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, _ = s.StoreAnalyses(ctx, pendingAnalysis(userID, "panic = True\n"))
			panic("boom")
		})
	})
	require.Equal(t, 0, countByHash(t, db, domain.SourceHash(domain.DefaultFileName, "panic = True\n")))
}
