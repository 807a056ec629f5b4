package schema

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/db"
)

// Applier executes schema definition files against the database
type Applier struct {
	db *db.PostgresDB
}

// NewApplier creates a new applier
func NewApplier(database *db.PostgresDB) *Applier {
	return &Applier{
		db: database,
	}
}

// ApplyFile executes SQL statements from a schema file.
// Statements use create-if-not-exists semantics so the file can be
// applied on every startup.
func (a *Applier) ApplyFile(ctx context.Context, filePath string) error {
	// Read file
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	log.Printf("Applying schema file: %s", filePath)

	// Run the whole file in a single transaction
	err = a.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during schema execution: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Schema file successfully applied: %s", filePath)
	return nil
}
