package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/repositories"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/bootstrap"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/db"
)

var (
	configPath string
	schemaPath string
	seedPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Faculty directory database bootstrapper",
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default configs/config.yaml)")

	// apply command
	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the schema and seed the faculty table if empty",
		RunE:  runApply,
	}
	applyCmd.Flags().StringVar(&schemaPath, "schema", "", "path to schema file (overrides config)")
	applyCmd.Flags().StringVar(&seedPath, "seed", "", "path to seed file (overrides config)")

	// status command
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report the current faculty row count",
		RunE:  runStatus,
	}

	rootCmd.AddCommand(applyCmd, statusCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runApply applies the schema file and seeds the table when empty.
func runApply(cmd *cobra.Command, args []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	if schemaPath != "" {
		cfg.Bootstrap.SchemaPath = schemaPath
	}
	if seedPath != "" {
		cfg.Bootstrap.SeedPath = seedPath
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	lgr.Info().Msg("Bootstrap completed successfully.")
	return nil
}

// statusReport is the JSON body written by the status command.
type statusReport struct {
	Database    string `json:"database"`
	FacultyRows int64  `json:"faculty_rows"`
}

// runStatus reports connectivity and the current faculty row count as JSON.
func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	facultyRepo := repositories.NewFacultyRepository(database.Pool)
	count, err := facultyRepo.CountFaculties(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count faculties: %w", err)
	}

	out, err := json.MarshalIndent(statusReport{Database: "ok", FacultyRows: count}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode status report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
