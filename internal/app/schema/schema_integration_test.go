//go:build integration

package schema_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/schema"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/db"
)

func newTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return &db.PostgresDB{Pool: pool}
}

func TestApplyFile_IsIdempotent(t *testing.T) {
	database := newTestDB(t)
	applier := schema.NewApplier(database)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "schema.sql")
	content := `
		CREATE TABLE IF NOT EXISTS faculty (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE
		);`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, applier.ApplyFile(ctx, path))

	// Applying the same file again must not fail
	require.NoError(t, applier.ApplyFile(ctx, path))
}

func TestApplyFile_MalformedSQL(t *testing.T) {
	database := newTestDB(t)
	applier := schema.NewApplier(database)

	path := filepath.Join(t.TempDir(), "bad.sql")
	require.NoError(t, os.WriteFile(path, []byte("CREATE TABEL faculty"), 0o600))

	require.Error(t, applier.ApplyFile(context.Background(), path))
}
