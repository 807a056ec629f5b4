package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kevinjohn-15/IWP-CIA-3/internal/app/models"
	appRepos "github.com/kevinjohn-15/IWP-CIA-3/internal/app/repositories"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/apperrors"
)

// defaultFacultyNames is the fallback used when no seed file is available.
var defaultFacultyNames = []string{
	"Dr. Anita Sharma",
	"Dr. Arun Nair",
	"Dr. Deepa Menon",
	"Dr. Joseph Varghese",
	"Dr. Kavita Rao",
	"Dr. Manoj Kumar",
	"Dr. Priya Thomas",
	"Dr. Rajesh Iyer",
	"Dr. Sneha Pillai",
	"Dr. Vikram Reddy",
}

// Run inserts initial faculty rows when the table is empty.
// It returns the number of rows inserted.
func Run(ctx context.Context, dbPool *pgxpool.Pool, seedPath string, lgr zerolog.Logger) (int, error) {
	facultyRepo := appRepos.NewFacultyRepository(dbPool)

	count, err := facultyRepo.CountFaculties(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count existing faculties: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("count", count).Msg("Faculty table already populated, skipping seed")
		return 0, nil
	}

	names, err := loadSeedNames(seedPath, lgr)
	if err != nil {
		return 0, err
	}

	lgr.Info().Int("names", len(names)).Msg("Seeding faculty table...")

	inserted := 0
	for _, name := range names {
		faculty := &appModels.Faculty{Name: name}
		if _, err := facultyRepo.CreateFaculty(ctx, faculty); err != nil {
			if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
				lgr.Warn().Str("name", name).Msg("Faculty already exists, skipping")
				continue
			}
			return inserted, fmt.Errorf("failed to seed faculty %q: %w", name, err)
		}
		inserted++
	}

	lgr.Info().Int("inserted", inserted).Msg("Faculty seed completed")
	return inserted, nil
}

// loadSeedNames reads a JSON array of names from seedPath.
// A missing file falls back to the built-in default list.
func loadSeedNames(seedPath string, lgr zerolog.Logger) ([]string, error) {
	if seedPath == "" {
		return defaultFacultyNames, nil
	}

	content, err := os.ReadFile(seedPath)
	if err != nil {
		if os.IsNotExist(err) {
			lgr.Info().Str("path", seedPath).Msg("No seed file found, using default faculty names")
			return defaultFacultyNames, nil
		}
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var names []string
	if err := json.Unmarshal(content, &names); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", seedPath, err)
	}

	// Keep trimmed, non-empty names only
	valid := names[:0]
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}
	if len(valid) == 0 {
		lgr.Warn().Str("path", seedPath).Msg("Seed file contains no usable names, using default faculty names")
		return defaultFacultyNames, nil
	}

	return valid, nil
}
