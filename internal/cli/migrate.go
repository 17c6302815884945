package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"board-service/internal/config"
	"board-service/internal/infrastructure/db/postgres"
)

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(v)
			if err := cfg.ValidateStore(); err != nil {
				return err
			}
			logger := newLogger(cfg)

			db, err := openDatabase(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			if err := postgres.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("schema is up to date", "driver", cfg.DatabaseDriver)
			return nil
		},
	}
}

func openDatabase(cfg *config.Config, logger *log.Logger) (*gorm.DB, error) {
	return postgres.Open(cfg.DatabaseDriver, cfg.DatabaseURL, logger)
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
