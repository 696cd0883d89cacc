package cmd

import (
	"github.com/spf13/cobra"

	"legaldesk/internal/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migration.NewMigration(cfg.DB, nil).Up(); err != nil {
			return err
		}
		log.Info("migrations applied", "driver", cfg.DB.Driver)
		return nil
	},
}
