package main

import (
	"errors"

	"github.com/deppfellow/v1-api/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Apply the migrations embedded in the binary to the configured
PostgreSQL database. Requires V1API_DATABASE__ENABLED=true.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, loggerService, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	if !cfg.Database.Enabled {
		return errors.New("database is not enabled, set V1API_DATABASE__ENABLED=true")
	}

	return database.Migrate(cmd.Context(), logger, cfg)
}
