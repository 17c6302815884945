// Package cli implements the board-service command line.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"board-service/internal/config"
	"board-service/internal/infrastructure"
)

const (
	exitSuccess   = 0
	exitUserError = 1
)

// NewRootCmd creates the top-level command with every subcommand registered.
// Flags are bound to v, so they override the environment.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:          "board-service",
		Short:        "Kanban board backend",
		Long:         "board-service serves users, boards, columns and cards over HTTP.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("database-driver", "", "database driver: postgres or sqlite (env DATABASE_DRIVER)")
	root.PersistentFlags().String("database-url", "", "database DSN (env DATABASE_URL)")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	root.PersistentFlags().String("log-format", "", "text, json or logfmt (env LOG_FORMAT)")
	bindFlag(v, root, config.KeyDatabaseDriver, "database-driver")
	bindFlag(v, root, config.KeyDatabaseURL, "database-url")
	bindFlag(v, root, config.KeyLogLevel, "log-level")
	bindFlag(v, root, config.KeyLogFormat, "log-format")

	root.AddCommand(newServeCmd(v))
	root.AddCommand(newMigrateCmd(v))
	root.AddCommand(newCreateSuperuserCmd(v))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := config.LoadDotEnv(); err != nil {
		log.Error("environment", "err", err)
		os.Exit(exitUserError)
	}
	if err := NewRootCmd(config.New()).Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func newLogger(cfg *config.Config) *log.Logger {
	logger := infrastructure.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	log.SetDefault(logger)
	return logger
}
