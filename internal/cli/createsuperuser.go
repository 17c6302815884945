package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"board-service/internal/application/command"
	"board-service/internal/config"
	"board-service/internal/infrastructure/db/postgres"
)

func newCreateSuperuserCmd(v *viper.Viper) *cobra.Command {
	var cmdArgs command.CreateSuperuserCommand

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmdArgs.Email == "" || cmdArgs.Password == "" {
				return errors.New("--email and --password are required")
			}
			if cmdArgs.Name == "" {
				cmdArgs.Name = cmdArgs.Email
			}

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

			deps, err := newApp(cmd.Context(), cfg, db, logger)
			if err != nil {
				return err
			}
			defer deps.close()

			user, err := deps.services.Users.CreateSuperuser(cmd.Context(), &cmdArgs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "superuser %s created with id %d\n", user.Email, user.Id)
			return nil
		},
	}

	cmd.Flags().StringVar(&cmdArgs.Email, "email", "", "email address of the new administrator")
	cmd.Flags().StringVar(&cmdArgs.Name, "name", "", "display name (defaults to the email)")
	cmd.Flags().StringVar(&cmdArgs.Password, "password", "", "password of the new administrator")
	return cmd
}
