//go:build integration

package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinjohn-15/IWP-CIA-3/internal/seed"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS faculty (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE
		)`)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, "TRUNCATE faculty RESTART IDENTITY")
	require.NoError(t, err)

	return pool
}

func TestRun_SeedsEmptyTableOnce(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	inserted, err := seed.Run(ctx, pool, "", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 10, inserted)

	// Second run finds a populated table and does nothing
	inserted, err = seed.Run(ctx, pool, "", zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestRun_UsesSeedFile(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Dr. Ada Lovelace", "Dr. Alan Turing"]`), 0o600))

	inserted, err := seed.Run(ctx, pool, path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	var count int64
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM faculty").Scan(&count))
	assert.Equal(t, int64(2), count)
}
