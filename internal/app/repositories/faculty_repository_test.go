//go:build integration

package repositories_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/models"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/repositories"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/apperrors"
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

func TestFacultyRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewFacultyRepository(newTestPool(t))
	ctx := context.Background()

	id, err := repo.CreateFaculty(ctx, &models.Faculty{Name: "Dr. Anita Sharma"})
	require.NoError(t, err)
	require.Positive(t, id)

	faculty, err := repo.GetFacultyByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, faculty.ID)
	assert.Equal(t, "Dr. Anita Sharma", faculty.Name)
}

func TestFacultyRepository_GetMissingID(t *testing.T) {
	repo := repositories.NewFacultyRepository(newTestPool(t))

	_, err := repo.GetFacultyByID(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestFacultyRepository_DuplicateName(t *testing.T) {
	repo := repositories.NewFacultyRepository(newTestPool(t))
	ctx := context.Background()

	_, err := repo.CreateFaculty(ctx, &models.Faculty{Name: "Dr. Arun Nair"})
	require.NoError(t, err)

	_, err = repo.CreateFaculty(ctx, &models.Faculty{Name: "Dr. Arun Nair"})
	assert.ErrorIs(t, err, apperrors.ErrFacultyAlreadyExists)
}

func TestFacultyRepository_ListOrdersAndFilters(t *testing.T) {
	repo := repositories.NewFacultyRepository(newTestPool(t))
	ctx := context.Background()

	for _, name := range []string{"Dr. Vikram Reddy", "Dr. Anita Sharma", "Dr. Arun Nair"} {
		_, err := repo.CreateFaculty(ctx, &models.Faculty{Name: name})
		require.NoError(t, err)
	}

	all, err := repo.ListFaculties(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Dr. Anita Sharma", all[0].Name)
	assert.Equal(t, "Dr. Arun Nair", all[1].Name)
	assert.Equal(t, "Dr. Vikram Reddy", all[2].Name)

	// Filter is a case-insensitive substring match
	filtered, err := repo.ListFaculties(ctx, "SHARMA")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Dr. Anita Sharma", filtered[0].Name)

	// No matches still yields an empty, non-nil slice
	none, err := repo.ListFaculties(ctx, "zz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFacultyRepository_Delete(t *testing.T) {
	repo := repositories.NewFacultyRepository(newTestPool(t))
	ctx := context.Background()

	id, err := repo.CreateFaculty(ctx, &models.Faculty{Name: "Dr. Kavita Rao"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteFaculty(ctx, id))

	_, err = repo.GetFacultyByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)

	err = repo.DeleteFaculty(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestFacultyRepository_Count(t *testing.T) {
	repo := repositories.NewFacultyRepository(newTestPool(t))
	ctx := context.Background()

	count, err := repo.CountFaculties(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	for _, name := range []string{"Dr. Manoj Kumar", "Dr. Priya Thomas"} {
		_, err := repo.CreateFaculty(ctx, &models.Faculty{Name: name})
		require.NoError(t, err)
	}

	count, err = repo.CountFaculties(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
